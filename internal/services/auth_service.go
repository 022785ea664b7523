// internal/services/auth_service.go
package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/agrikom/agrimarket-backend/internal/config"
	"github.com/agrikom/agrimarket-backend/internal/models"
	"github.com/agrikom/agrimarket-backend/internal/repository"
	"github.com/agrikom/agrimarket-backend/internal/utils"
)

type AuthService struct {
	users repository.UserRepository
	cfg   *config.Config
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required,username,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,strong_password"`
	Role     string `json:"role" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	User         *models.User `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresIn    int64        `json:"expires_in"`
}

func NewAuthService(users repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{users: users, cfg: cfg}
}

func (s *AuthService) Register(req *RegisterRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	role := models.UserRole(req.Role)
	// Admin accounts are provisioned out of band, never self-registered.
	if !models.ValidRole(role) || role == models.UserRoleAdmin {
		return nil, ErrInvalidRole
	}

	if existing, err := s.users.FindByEmail(req.Email); err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	} else if existing != nil {
		return nil, fmt.Errorf("email already registered")
	}
	if existing, err := s.users.FindByOwnerKey(models.OwnerKey(role, req.Username)); err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	} else if existing != nil {
		return nil, fmt.Errorf("username already taken for this role")
	}

	now := time.Now()
	user := &models.User{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:    req.Username,
		Email:       req.Email,
		Role:        role,
		Status:      models.UserStatusActive,
		ProfileData: models.JSONB{},
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.users.Save(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"owner": user.OwnerKey(),
	}).Info("auth: user registered")

	return s.issueTokens(user)
}

func (s *AuthService) Login(req *LoginRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user, err := s.users.FindByEmail(req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if user == nil || user.CheckPassword(req.Password) != nil {
		return nil, fmt.Errorf("invalid credentials")
	}
	if user.Status != models.UserStatusActive {
		return nil, ErrForbidden
	}

	now := time.Now()
	user.LastLoginAt = &now
	user.UpdatedAt = now
	if err := s.users.Save(user); err != nil {
		logrus.WithError(err).Warn("auth: last login update failed")
	}

	return s.issueTokens(user)
}

// Refresh exchanges a valid refresh token for a fresh token pair.
func (s *AuthService) Refresh(refreshToken string) (*AuthResponse, error) {
	userID, err := utils.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token: %w", err)
	}

	users, err := s.users.List()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	for i := range users {
		if users[i].ID.String() == userID {
			return s.issueTokens(&users[i])
		}
	}
	return nil, ErrNotFound
}

func (s *AuthService) issueTokens(user *models.User) (*AuthResponse, error) {
	access, err := utils.GenerateJWT(user.ID, user.Username, string(user.Role), user.OwnerKey(), s.cfg.JWT.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	refresh, err := utils.GenerateRefreshToken(user.ID, s.cfg.JWT.RefreshTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}
	return &AuthResponse{
		User:         user,
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(s.cfg.JWT.AccessTokenTTL) * 3600,
	}, nil
}
