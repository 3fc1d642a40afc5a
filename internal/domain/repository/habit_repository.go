package repository

import (
	"context"

	"github.com/Isha-commits965/wellness-tracker-backend/internal/domain/entity"

	"github.com/google/uuid"
)

// HabitRepository defines the interface for habit persistence
type HabitRepository interface {
	// Create creates a new habit
	Create(ctx context.Context, habit *entity.Habit) error

	// GetByIDAndUserID retrieves a habit by ID and user ID (for authorization)
	GetByIDAndUserID(ctx context.Context, habitID, userID uuid.UUID) (*entity.Habit, error)

	// GetByUserID retrieves all habits for a user
	GetByUserID(ctx context.Context, userID uuid.UUID, activeOnly bool) ([]*entity.Habit, error)

	// Update updates a habit
	Update(ctx context.Context, habit *entity.Habit) error

	// Delete soft deletes a habit (sets is_active = false)
	Delete(ctx context.Context, habitID, userID uuid.UUID) error
}

// CheckInRepository defines the interface for check-in persistence
type CheckInRepository interface {
	// Upsert inserts a check-in or overwrites completed/notes of the one
	// already stored for (user, habit, date)
	Upsert(ctx context.Context, checkIn *entity.CheckIn) error

	// GetByIDAndUserID retrieves a check-in by ID and user ID
	GetByIDAndUserID(ctx context.Context, checkInID, userID uuid.UUID) (*entity.CheckIn, error)

	// List retrieves a user's check-ins, newest first
	List(ctx context.Context, userID uuid.UUID, filter entity.CheckInFilter) ([]*entity.CheckIn, error)

	// Update updates a check-in
	Update(ctx context.Context, checkIn *entity.CheckIn) error
}
