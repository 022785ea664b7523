// internal/services/admin_service.go
package services

import (
	"fmt"
	"time"

	"github.com/agrikom/agrimarket-backend/internal/models"
	"github.com/agrikom/agrimarket-backend/internal/repository"
)

// AdminService backs the admin dashboard: user administration and
// platform stats. Article moderation lives on ArticleService.
type AdminService struct {
	users    repository.UserRepository
	products repository.ProductRepository
	articles repository.ArticleRepository
}

type PlatformStats struct {
	TotalUsers      int            `json:"total_users"`
	UsersByRole     map[string]int `json:"users_by_role"`
	TotalProducts   int            `json:"total_products"`
	ActiveProducts  int            `json:"active_products"`
	PendingArticles int            `json:"pending_articles"`
}

func NewAdminService(users repository.UserRepository, products repository.ProductRepository, articles repository.ArticleRepository) *AdminService {
	return &AdminService{users: users, products: products, articles: articles}
}

func (s *AdminService) ListUsers() ([]models.User, error) {
	return s.users.List()
}

func (s *AdminService) SetUserStatus(ownerKey string, status models.UserStatus) (*models.User, error) {
	user, err := s.users.FindByOwnerKey(ownerKey)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if user == nil {
		return nil, ErrNotFound
	}

	user.Status = status
	user.UpdatedAt = time.Now()
	if err := s.users.Save(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

func (s *AdminService) Stats() (*PlatformStats, error) {
	users, err := s.users.List()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	products, err := s.products.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	pending, err := s.articles.ListPending()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pending articles: %w", err)
	}

	stats := &PlatformStats{
		TotalUsers:      len(users),
		UsersByRole:     make(map[string]int),
		TotalProducts:   len(products),
		PendingArticles: len(pending),
	}
	for i := range users {
		stats.UsersByRole[string(users[i].Role)]++
	}
	for i := range products {
		if models.IsActiveStatus(products[i].Status) {
			stats.ActiveProducts++
		}
	}
	return stats, nil
}
