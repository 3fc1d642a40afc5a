package repository

import (
	"context"

	"github.com/Isha-commits965/wellness-tracker-backend/internal/domain/entity"

	"github.com/google/uuid"
)

// GoalRepository defines the interface for goal persistence
type GoalRepository interface {
	// Create creates a new goal
	Create(ctx context.Context, goal *entity.Goal) error

	// GetByIDAndUserID retrieves a goal by ID and user ID
	GetByIDAndUserID(ctx context.Context, goalID, userID uuid.UUID) (*entity.Goal, error)

	// List retrieves a user's goals, newest first; completed filters when non-nil
	List(ctx context.Context, userID uuid.UUID, completed *bool) ([]*entity.Goal, error)

	// Update updates a goal
	Update(ctx context.Context, goal *entity.Goal) error

	// Delete removes a goal
	Delete(ctx context.Context, goalID, userID uuid.UUID) error
}
