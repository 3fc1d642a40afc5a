package repository

import (
	"context"

	"github.com/Isha-commits965/wellness-tracker-backend/internal/domain/entity"

	"github.com/google/uuid"
)

// UserRepository defines the interface for user persistence
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *entity.User) error

	// GetByID retrieves an active user by ID
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// GetByEmail retrieves an active user by email
	GetByEmail(ctx context.Context, email string) (*entity.User, error)

	// ExistsByEmailOrUsername checks whether either identifier is taken
	ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error)

	// ListActiveIDs returns the IDs of all active users
	ListActiveIDs(ctx context.Context) ([]uuid.UUID, error)
}
