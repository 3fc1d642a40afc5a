package service

import (
	"context"

	"github.com/Isha-commits965/wellness-tracker-backend/internal/analytics"
	"github.com/Isha-commits965/wellness-tracker-backend/internal/domain/entity"

	"github.com/google/uuid"
)

// MoodService defines the interface for mood tracking
type MoodService interface {
	CreateEntry(ctx context.Context, userID uuid.UUID, in *entity.MoodEntryCreate) (*entity.MoodEntry, error)
	GetEntry(ctx context.Context, entryID, userID uuid.UUID) (*entity.MoodEntry, error)
	ListEntries(ctx context.Context, userID uuid.UUID, dates entity.DateRange) ([]*entity.MoodEntry, error)
	UpdateEntry(ctx context.Context, entryID, userID uuid.UUID, update *entity.MoodEntryUpdate) (*entity.MoodEntry, error)
	DeleteEntry(ctx context.Context, entryID, userID uuid.UUID) error

	// Trends charts the last days days up to today
	Trends(ctx context.Context, userID uuid.UUID, days int) (*analytics.MoodTrend, error)

	// WeeklyStats summarizes the seven days ending today
	WeeklyStats(ctx context.Context, userID uuid.UUID) (*analytics.MoodPeriod, error)
}
