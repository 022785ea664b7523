// internal/repository/remote_articles.go
package repository

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/agrikom/agrimarket-backend/internal/models"
)

// RemoteArticles serves both the educational_articles table and the views
// the local store keeps as separate namespaces (pending queue, published
// list); on the relational side those are status filters.
type RemoteArticles struct {
	db *gorm.DB
}

func NewRemoteArticles(db *gorm.DB) *RemoteArticles {
	return &RemoteArticles{db: db}
}

func (r *RemoteArticles) Save(a *models.Article) error {
	if err := r.db.Save(a).Error; err != nil {
		return fmt.Errorf("failed to save article: %w", err)
	}
	return nil
}

func (r *RemoteArticles) Get(id uuid.UUID) (*models.Article, error) {
	var a models.Article
	if err := r.db.First(&a, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch article: %w", err)
	}
	return &a, nil
}

func (r *RemoteArticles) ListByAuthor(authorKey string) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Where("author_key = ?", authorKey).
		Order("created_at ASC").
		Find(&articles).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list author articles: %w", err)
	}
	return articles, nil
}

func (r *RemoteArticles) ListPending() ([]models.Article, error) {
	return r.listByStatus(models.ArticleStatusPending)
}

func (r *RemoteArticles) ListPublished() ([]models.Article, error) {
	return r.listByStatus(models.ArticleStatusPublished)
}

func (r *RemoteArticles) listByStatus(status models.ArticleStatus) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Where("status = ?", status).
		Order("created_at ASC").
		Find(&articles).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list %s articles: %w", status, err)
	}
	return articles, nil
}
