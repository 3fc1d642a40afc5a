package service

import (
	"context"

	"github.com/Isha-commits965/wellness-tracker-backend/internal/analytics"
	"github.com/Isha-commits965/wellness-tracker-backend/internal/domain/entity"

	"github.com/google/uuid"
)

// JournalService defines the interface for journaling with the companion
type JournalService interface {
	// CreateEntry writes the entry of a day and asks the companion to respond
	CreateEntry(ctx context.Context, userID uuid.UUID, in *entity.JournalEntryCreate) (*entity.JournalEntry, error)

	GetEntry(ctx context.Context, entryID, userID uuid.UUID) (*entity.JournalEntry, error)
	ListEntries(ctx context.Context, userID uuid.UUID, dates entity.DateRange) ([]*entity.JournalEntry, error)

	// UpdateEntry applies a partial update; changed content gets a fresh companion reply
	UpdateEntry(ctx context.Context, entryID, userID uuid.UUID, update *entity.JournalEntryUpdate) (*entity.JournalEntry, error)

	DeleteEntry(ctx context.Context, entryID, userID uuid.UUID) error

	// RegenerateResponse asks the companion again for an existing entry
	RegenerateResponse(ctx context.Context, entryID, userID uuid.UUID) (*entity.JournalEntry, error)

	// WeeklyStats summarizes the seven days ending today
	WeeklyStats(ctx context.Context, userID uuid.UUID) (*analytics.JournalSummary, error)
}
