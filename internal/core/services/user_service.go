package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/crewpay/crewpay-backend/internal/apperrors"
	"github.com/crewpay/crewpay-backend/internal/core/domain"
	portsrepo "github.com/crewpay/crewpay-backend/internal/core/ports/repositories"
	portssvc "github.com/crewpay/crewpay-backend/internal/core/ports/services"
	"github.com/crewpay/crewpay-backend/internal/dto"
	"github.com/crewpay/crewpay-backend/internal/utils"
	"github.com/google/uuid"
)

// userService manages login accounts for both password and Google sign-in.
type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new login-user service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{
		BaseService: newBaseService(),
		userRepo:    userRepo,
	}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// RegisterUser creates a new login user with a hashed password.
func (s *userService) RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error) {
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := s.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         domain.RoleEmployee,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     domain.AdminProcessor,
			LastUpdatedAt: now,
			LastUpdatedBy: domain.AdminProcessor,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	s.LogInfo(ctx, "User registered", slog.String("user_id", user.UserID))
	return &user, nil
}

// AuthenticateUser verifies email and password and returns the user.
// Both an unknown email and a wrong password yield ErrUnauthorized so the
// response does not reveal which accounts exist.
func (s *userService) AuthenticateUser(ctx context.Context, email string, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("invalid credentials: %w", apperrors.ErrUnauthorized)
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	if user.PasswordHash == "" || !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, fmt.Errorf("invalid credentials: %w", apperrors.ErrUnauthorized)
	}
	return user, nil
}

// GetUserByID retrieves a user by its unique identifier.
func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user %s: %w", userID, err)
	}
	return user, nil
}

// FindOrCreateGoogleUser links or creates a user from a Google profile. An
// existing account with the same email is linked to the Google subject;
// otherwise a fresh employee account is created without a password.
func (s *userService) FindOrCreateGoogleUser(ctx context.Context, info domain.GoogleUserInfo) (*domain.User, error) {
	user, err := s.userRepo.FindUserByGoogleID(ctx, info.ID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to find user by google id: %w", err)
	}

	user, err = s.userRepo.FindUserByEmail(ctx, info.Email)
	if err == nil {
		user.GoogleID = info.ID
		user.LastUpdatedAt = s.Now()
		user.LastUpdatedBy = user.UserID
		if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
			return nil, fmt.Errorf("failed to link google account: %w", err)
		}
		s.LogInfo(ctx, "Google account linked", slog.String("user_id", user.UserID))
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}

	now := s.Now()
	created := domain.User{
		UserID:   uuid.NewString(),
		Name:     info.Name,
		Email:    info.Email,
		Role:     domain.RoleEmployee,
		GoogleID: info.ID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     domain.AdminProcessor,
			LastUpdatedAt: now,
			LastUpdatedBy: domain.AdminProcessor,
		},
	}
	if err := s.userRepo.SaveUser(ctx, created); err != nil {
		return nil, fmt.Errorf("failed to create google user: %w", err)
	}

	s.LogInfo(ctx, "User created via Google sign-in", slog.String("user_id", created.UserID))
	return &created, nil
}

// StoreRefreshTokenHash persists the hash and expiry of a freshly issued
// refresh token. Only the hash ever reaches the database.
func (s *userService) StoreRefreshTokenHash(ctx context.Context, userID string, refreshToken string, expiry time.Time) error {
	hash := utils.HashRefreshToken(refreshToken)
	if err := s.userRepo.UpdateRefreshTokenHash(ctx, userID, &hash, &expiry); err != nil {
		return fmt.Errorf("failed to store refresh token hash for user %s: %w", userID, err)
	}
	return nil
}
