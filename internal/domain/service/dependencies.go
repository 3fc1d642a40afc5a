package service

import (
	"context"

	"github.com/Isha-commits965/wellness-tracker-backend/internal/domain/entity"

	"github.com/google/uuid"
)

// Clock supplies the reference date in the configured time zone
type Clock interface {
	Today() entity.Date
}

// Event types published on writes
const (
	EventHabitCheckedIn = "habit.checked_in"
	EventMoodLogged     = "mood.logged"
	EventJournalWritten = "journal.written"
	EventGoalCompleted  = "goal.completed"
	EventWeeklyDigest   = "digest.weekly"
)

// EventPublisher publishes domain events keyed by user
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, userID uuid.UUID, payload map[string]any) error
}

// AnalyticsCache stores computed analytics per user under a version that
// Invalidate bumps. Get reports the version it looked under and Set writes
// under the version it is given, so a result computed before a write is never
// served after it.
type AnalyticsCache interface {
	Get(ctx context.Context, userID uuid.UUID, key string, dst any) (version int64, hit bool, err error)
	Set(ctx context.Context, userID uuid.UUID, version int64, key string, value any) error
	Invalidate(ctx context.Context, userID uuid.UUID) error
}

// JournalCompanion produces a supportive reply to a journal entry
type JournalCompanion interface {
	Respond(ctx context.Context, content string, moodBefore *int, previous []*entity.JournalEntry) (*entity.CompanionReply, error)
}
