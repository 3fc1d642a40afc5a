package repository

import (
	"context"

	"github.com/Isha-commits965/wellness-tracker-backend/internal/domain/entity"

	"github.com/google/uuid"
)

// JournalRepository defines the interface for journal entry persistence
type JournalRepository interface {
	// Create creates a journal entry; ErrConflict if one exists for the date
	Create(ctx context.Context, entry *entity.JournalEntry) error

	// GetByIDAndUserID retrieves a journal entry by ID and user ID
	GetByIDAndUserID(ctx context.Context, entryID, userID uuid.UUID) (*entity.JournalEntry, error)

	// List retrieves a user's journal entries within the range, newest first
	List(ctx context.Context, userID uuid.UUID, dates entity.DateRange) ([]*entity.JournalEntry, error)

	// Recent retrieves up to limit entries dated before the given day, newest first
	Recent(ctx context.Context, userID uuid.UUID, before entity.Date, limit int) ([]*entity.JournalEntry, error)

	// Update updates a journal entry
	Update(ctx context.Context, entry *entity.JournalEntry) error

	// Delete removes a journal entry
	Delete(ctx context.Context, entryID, userID uuid.UUID) error
}
