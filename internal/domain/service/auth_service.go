package service

import (
	"context"

	"github.com/Isha-commits965/wellness-tracker-backend/internal/domain/entity"

	"github.com/google/uuid"
)

// AuthService defines business logic for registration and tokens
type AuthService interface {
	// Register validates and creates a new user with a hashed password
	Register(ctx context.Context, userCreate *entity.UserCreate) (*entity.User, error)

	// Login checks credentials and issues an access token
	Login(ctx context.Context, email, password string) (*entity.AccessToken, error)

	// ValidateAccessToken returns the user ID carried by a valid token
	ValidateAccessToken(ctx context.Context, accessToken string) (uuid.UUID, error)

	// GetUser retrieves an active user
	GetUser(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
