package repository

import (
	"context"

	"github.com/Isha-commits965/wellness-tracker-backend/internal/domain/entity"

	"github.com/google/uuid"
)

// MoodRepository defines the interface for mood entry persistence
type MoodRepository interface {
	// Create creates a mood entry; ErrConflict if one exists for the date
	Create(ctx context.Context, entry *entity.MoodEntry) error

	// GetByIDAndUserID retrieves a mood entry by ID and user ID
	GetByIDAndUserID(ctx context.Context, entryID, userID uuid.UUID) (*entity.MoodEntry, error)

	// List retrieves a user's mood entries within the range, newest first
	List(ctx context.Context, userID uuid.UUID, dates entity.DateRange) ([]*entity.MoodEntry, error)

	// Update updates a mood entry
	Update(ctx context.Context, entry *entity.MoodEntry) error

	// Delete removes a mood entry
	Delete(ctx context.Context, entryID, userID uuid.UUID) error
}
