package services

import (
	"context"
	"time"

	"github.com/crewpay/crewpay-backend/internal/core/domain"
	"github.com/crewpay/crewpay-backend/internal/dto"
)

// UserSvcFacade defines the login-user operations.
type UserSvcFacade interface {
	// RegisterUser creates a new login user with a hashed password.
	RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)

	// AuthenticateUser verifies email and password and returns the user.
	AuthenticateUser(ctx context.Context, email string, password string) (*domain.User, error)

	// GetUserByID retrieves a user by its unique identifier.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindOrCreateGoogleUser links or creates a user from a Google profile.
	FindOrCreateGoogleUser(ctx context.Context, info domain.GoogleUserInfo) (*domain.User, error)

	// StoreRefreshTokenHash persists the hash and expiry of a freshly issued refresh token.
	StoreRefreshTokenHash(ctx context.Context, userID string, refreshToken string, expiry time.Time) error
}
