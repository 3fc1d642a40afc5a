package service

import (
	"context"

	"github.com/Isha-commits965/wellness-tracker-backend/internal/domain/entity"

	"github.com/google/uuid"
)

// HabitService defines the interface for habit business logic
type HabitService interface {
	// CreateHabit creates a new active habit
	CreateHabit(ctx context.Context, userID uuid.UUID, in *entity.HabitCreate) (*entity.Habit, error)

	// GetHabit retrieves a habit by ID
	GetHabit(ctx context.Context, habitID, userID uuid.UUID) (*entity.Habit, error)

	// ListHabits retrieves the user's active habits
	ListHabits(ctx context.Context, userID uuid.UUID) ([]*entity.Habit, error)

	// UpdateHabit applies a partial update
	UpdateHabit(ctx context.Context, habitID, userID uuid.UUID, update *entity.HabitUpdate) (*entity.Habit, error)

	// DeleteHabit soft deletes a habit
	DeleteHabit(ctx context.Context, habitID, userID uuid.UUID) error

	// CheckIn records or overwrites the check-in of a habit for a day
	CheckIn(ctx context.Context, userID uuid.UUID, in *entity.CheckInCreate) (*entity.CheckIn, error)

	// ListCheckIns retrieves check-ins, newest first
	ListCheckIns(ctx context.Context, userID uuid.UUID, filter entity.CheckInFilter) ([]*entity.CheckIn, error)

	// UpdateCheckIn applies a partial update to a check-in
	UpdateCheckIn(ctx context.Context, checkInID, userID uuid.UUID, update *entity.CheckInUpdate) (*entity.CheckIn, error)
}
