package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Isha-commits965/wellness-tracker-backend/internal/domain/entity"
	"github.com/Isha-commits965/wellness-tracker-backend/internal/domain/repository"
	"github.com/Isha-commits965/wellness-tracker-backend/internal/domain/service"
	"github.com/Isha-commits965/wellness-tracker-backend/pkg/hash"
	pkgjwt "github.com/Isha-commits965/wellness-tracker-backend/pkg/jwt"
	"github.com/Isha-commits965/wellness-tracker-backend/pkg/validation"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// authService implements service.AuthService
type authService struct {
	userRepo     repository.UserRepository
	hasher       *hash.Hasher
	tokenManager *pkgjwt.TokenManager
	log          *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo repository.UserRepository,
	hasher *hash.Hasher,
	tokenManager *pkgjwt.TokenManager,
	log *zap.Logger,
) service.AuthService {
	return &authService{
		userRepo:     userRepo,
		hasher:       hasher,
		tokenManager: tokenManager,
		log:          log,
	}
}

// Register validates and creates a new user with a hashed password
func (s *authService) Register(ctx context.Context, userCreate *entity.UserCreate) (*entity.User, error) {
	email := strings.ToLower(strings.TrimSpace(userCreate.Email))
	username := strings.TrimSpace(userCreate.Username)

	if err := validation.ValidateEmail(email); err != nil {
		return nil, invalid(err)
	}
	if err := validation.ValidateUsername(username); err != nil {
		return nil, invalid(err)
	}
	if err := validation.ValidatePassword(userCreate.Password); err != nil {
		return nil, invalid(err)
	}
	if userCreate.FullName != nil {
		if err := validation.ValidateLength("full_name", *userCreate.FullName, validation.MaxNameLength); err != nil {
			return nil, invalid(err)
		}
	}

	exists, err := s.userRepo.ExistsByEmailOrUsername(ctx, email, username)
	if err != nil {
		return nil, fmt.Errorf("failed to check user existence: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("email or username already registered: %w", repository.ErrConflict)
	}

	passwordHash, err := s.hasher.Hash(userCreate.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        email,
		Username:     username,
		PasswordHash: passwordHash,
		FullName:     userCreate.FullName,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.log.Info("user registered", zap.String("user_id", user.ID.String()))
	return user, nil
}

// Login checks credentials and issues an access token
func (s *authService) Login(ctx context.Context, email, password string) (*entity.AccessToken, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid credentials", service.ErrUnauthorized)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		if errors.Is(err, hash.ErrMismatch) {
			return nil, fmt.Errorf("%w: invalid credentials", service.ErrUnauthorized)
		}
		return nil, err
	}

	token, expiresAt, err := s.tokenManager.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &entity.AccessToken{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresAt:   expiresAt,
	}, nil
}

// ValidateAccessToken returns the user ID carried by a valid token
func (s *authService) ValidateAccessToken(ctx context.Context, accessToken string) (uuid.UUID, error) {
	claims, err := s.tokenManager.ValidateAccessToken(accessToken)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", service.ErrUnauthorized, err)
	}
	return claims.UserID, nil
}

// GetUser retrieves an active user
func (s *authService) GetUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}
