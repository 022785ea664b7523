// internal/services/auth_service_test.go
package services

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/agrikom/agrimarket-backend/internal/config"
	"github.com/agrikom/agrimarket-backend/internal/localstore"
	"github.com/agrikom/agrimarket-backend/internal/repository"
	"github.com/agrikom/agrimarket-backend/internal/utils"
)

type AuthServiceTestSuite struct {
	suite.Suite
	auth *AuthService
}

func (suite *AuthServiceTestSuite) SetupTest() {
	store, err := localstore.Open(filepath.Join(suite.T().TempDir(), "auth.db"))
	require.NoError(suite.T(), err)
	suite.T().Cleanup(func() { store.Close() })

	cfg := &config.Config{
		JWT: config.JWTConfig{
			SecretKey:       "test-secret",
			AccessTokenTTL:  1,
			RefreshTokenTTL: 2,
		},
	}
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	repos := repository.New(nil, store)
	suite.auth = NewAuthService(repos.Users, cfg)
}

func (suite *AuthServiceTestSuite) register(username, email, role string) *AuthResponse {
	resp, err := suite.auth.Register(&RegisterRequest{
		Username: username,
		Email:    email,
		Password: "Password123",
		Role:     role,
	})
	suite.Require().NoError(err)
	return resp
}

func (suite *AuthServiceTestSuite) TestRegisterIssuesTokensAndOwnerKey() {
	resp := suite.register("alice", "alice@example.com", "seller")

	suite.NotEmpty(resp.AccessToken)
	suite.NotEmpty(resp.RefreshToken)
	suite.Equal("seller:alice", resp.User.OwnerKey())

	claims, err := utils.ValidateJWT(resp.AccessToken)
	suite.Require().NoError(err)
	suite.Equal("seller:alice", claims.OwnerKey)
	suite.Equal("seller", claims.Role)
}

func (suite *AuthServiceTestSuite) TestAdminRegistrationIsRejected() {
	_, err := suite.auth.Register(&RegisterRequest{
		Username: "root",
		Email:    "root@example.com",
		Password: "Password123",
		Role:     "admin",
	})
	suite.ErrorIs(err, ErrInvalidRole)
}

func (suite *AuthServiceTestSuite) TestUnknownRoleIsRejected() {
	_, err := suite.auth.Register(&RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "Password123",
		Role:     "superuser",
	})
	suite.ErrorIs(err, ErrInvalidRole)
}

func (suite *AuthServiceTestSuite) TestDuplicateEmailIsRejected() {
	suite.register("alice", "alice@example.com", "seller")

	_, err := suite.auth.Register(&RegisterRequest{
		Username: "alice2",
		Email:    "alice@example.com",
		Password: "Password123",
		Role:     "buyer",
	})
	suite.Error(err)
}

func (suite *AuthServiceTestSuite) TestSameUsernameDifferentRolesAreDistinctIdentities() {
	suite.register("alice", "alice-seller@example.com", "seller")
	resp := suite.register("alice", "alice-buyer@example.com", "buyer")

	suite.Equal("buyer:alice", resp.User.OwnerKey())
}

func (suite *AuthServiceTestSuite) TestLoginVerifiesPassword() {
	suite.register("alice", "alice@example.com", "seller")

	resp, err := suite.auth.Login(&LoginRequest{
		Email:    "alice@example.com",
		Password: "Password123",
	})
	suite.Require().NoError(err)
	suite.NotEmpty(resp.AccessToken)
	suite.NotNil(resp.User.LastLoginAt)

	_, err = suite.auth.Login(&LoginRequest{
		Email:    "alice@example.com",
		Password: "WrongPassword1",
	})
	suite.Error(err)
}

func (suite *AuthServiceTestSuite) TestWeakPasswordFailsValidation() {
	_, err := suite.auth.Register(&RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "short",
		Role:     "seller",
	})
	suite.Error(err)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
