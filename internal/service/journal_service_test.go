package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Isha-commits965/wellness-tracker-backend/internal/domain/entity"
	"github.com/Isha-commits965/wellness-tracker-backend/internal/domain/repository"
	"github.com/Isha-commits965/wellness-tracker-backend/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type journalFixture struct {
	svc       service.JournalService
	repo      *memJournals
	companion *stubCompanion
	publisher *recordingPublisher
	today     entity.Date
}

func newJournalFixture() *journalFixture {
	f := &journalFixture{
		repo:      &memJournals{},
		companion: &stubCompanion{},
		publisher: &recordingPublisher{},
		today:     entity.MustParseDate("2024-03-13"),
	}
	f.svc = NewJournalService(f.repo, f.companion, fixedClock{f.today}, newMemCache(), f.publisher, zap.NewNop())
	return f
}

func TestJournalService_CreateCallsCompanion(t *testing.T) {
	ctx := context.Background()
	f := newJournalFixture()
	userID := uuid.New()

	for i := 5; i >= 1; i-- {
		d := f.today.AddDays(-i)
		_, err := f.svc.CreateEntry(ctx, userID, &entity.JournalEntryCreate{Date: &d, Content: "earlier"})
		require.NoError(t, err)
	}

	entry, err := f.svc.CreateEntry(ctx, userID, &entity.JournalEntryCreate{Content: "today was fine", MoodBefore: ptr(5)})
	require.NoError(t, err)
	assert.Equal(t, f.today, entry.Date)
	require.NotNil(t, entry.AIResponse)
	assert.Equal(t, "reply to: today was fine", *entry.AIResponse)
	require.NotNil(t, entry.MoodAfter)
	assert.Equal(t, 6, *entry.MoodAfter)
	assert.Equal(t, []string{"Take a short walk outside"}, entry.Suggestions)

	require.Len(t, f.companion.lastCtx, 3, "three most recent earlier entries")
	assert.Equal(t, f.today.AddDays(-1), f.companion.lastCtx[0].Date)

	assert.Len(t, f.publisher.ofType(service.EventJournalWritten), 6)
}

func TestJournalService_DuplicateDateSkipsCompanion(t *testing.T) {
	ctx := context.Background()
	f := newJournalFixture()
	userID := uuid.New()

	_, err := f.svc.CreateEntry(ctx, userID, &entity.JournalEntryCreate{Content: "first"})
	require.NoError(t, err)
	calls := f.companion.calls

	_, err = f.svc.CreateEntry(ctx, userID, &entity.JournalEntryCreate{Content: "second"})
	assert.ErrorIs(t, err, repository.ErrConflict)
	assert.Equal(t, calls, f.companion.calls)
}

func TestJournalService_Validation(t *testing.T) {
	ctx := context.Background()
	f := newJournalFixture()

	_, err := f.svc.CreateEntry(ctx, uuid.New(), &entity.JournalEntryCreate{Content: ""})
	assert.ErrorIs(t, err, service.ErrValidation)

	_, err = f.svc.CreateEntry(ctx, uuid.New(), &entity.JournalEntryCreate{Content: "x", MoodBefore: ptr(0)})
	assert.ErrorIs(t, err, service.ErrValidation)
}

func TestJournalService_CompanionFailureKeepsEntry(t *testing.T) {
	ctx := context.Background()
	f := newJournalFixture()
	f.companion.err = errors.New("boom")

	entry, err := f.svc.CreateEntry(ctx, uuid.New(), &entity.JournalEntryCreate{Content: "hello"})
	require.NoError(t, err)
	assert.Nil(t, entry.AIResponse)
	assert.Nil(t, entry.MoodAfter)
}

func TestJournalService_UpdateRegeneratesOnChange(t *testing.T) {
	ctx := context.Background()
	f := newJournalFixture()
	userID := uuid.New()

	entry, err := f.svc.CreateEntry(ctx, userID, &entity.JournalEntryCreate{Content: "v1", MoodBefore: ptr(4)})
	require.NoError(t, err)
	require.Equal(t, 1, f.companion.calls)
	assert.Equal(t, 5, *entry.MoodAfter)

	updated, err := f.svc.UpdateEntry(ctx, entry.ID, userID, &entity.JournalEntryUpdate{MoodBefore: entity.Some(6)})
	require.NoError(t, err)
	assert.Equal(t, 2, f.companion.calls, "mood_before changed")
	assert.Equal(t, 6, *updated.MoodBefore)
	assert.Equal(t, 7, *updated.MoodAfter)

	updated, err = f.svc.UpdateEntry(ctx, entry.ID, userID, &entity.JournalEntryUpdate{Content: entity.Some("v2")})
	require.NoError(t, err)
	assert.Equal(t, 3, f.companion.calls)
	assert.Equal(t, "reply to: v2", *updated.AIResponse)
	assert.Equal(t, 7, *updated.MoodAfter)

	_, err = f.svc.UpdateEntry(ctx, entry.ID, userID, &entity.JournalEntryUpdate{Content: entity.Some("v2"), MoodBefore: entity.Some(6)})
	require.NoError(t, err)
	assert.Equal(t, 3, f.companion.calls, "nothing changed")

	_, err = f.svc.UpdateEntry(ctx, entry.ID, userID, &entity.JournalEntryUpdate{Content: entity.Null[string]()})
	assert.ErrorIs(t, err, service.ErrValidation)

	regenerated, err := f.svc.RegenerateResponse(ctx, entry.ID, userID)
	require.NoError(t, err)
	assert.Equal(t, 4, f.companion.calls)
	assert.Equal(t, "reply to: v2", *regenerated.AIResponse)

	require.NoError(t, f.svc.DeleteEntry(ctx, entry.ID, userID))
	_, err = f.svc.GetEntry(ctx, entry.ID, userID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestJournalService_ClearingMoodBeforeClearsMoodAfter(t *testing.T) {
	ctx := context.Background()
	f := newJournalFixture()
	userID := uuid.New()

	entry, err := f.svc.CreateEntry(ctx, userID, &entity.JournalEntryCreate{Content: "v1", MoodBefore: ptr(4)})
	require.NoError(t, err)
	require.NotNil(t, entry.MoodAfter)

	updated, err := f.svc.UpdateEntry(ctx, entry.ID, userID, &entity.JournalEntryUpdate{MoodBefore: entity.Null[int]()})
	require.NoError(t, err)
	assert.Nil(t, updated.MoodBefore)
	assert.Nil(t, updated.MoodAfter)
	assert.Nil(t, updated.MoodImprovement())

	stored, err := f.svc.GetEntry(ctx, entry.ID, userID)
	require.NoError(t, err)
	assert.Nil(t, stored.MoodAfter)
}

func TestJournalService_MoodChangeWithFailingCompanionDropsMoodAfter(t *testing.T) {
	ctx := context.Background()
	f := newJournalFixture()
	userID := uuid.New()

	entry, err := f.svc.CreateEntry(ctx, userID, &entity.JournalEntryCreate{Content: "v1", MoodBefore: ptr(4)})
	require.NoError(t, err)

	f.companion.err = errors.New("boom")
	updated, err := f.svc.UpdateEntry(ctx, entry.ID, userID, &entity.JournalEntryUpdate{MoodBefore: entity.Some(8)})
	require.NoError(t, err)
	assert.Equal(t, 8, *updated.MoodBefore)
	assert.Nil(t, updated.MoodAfter)
}

func TestJournalService_WeeklyStats(t *testing.T) {
	ctx := context.Background()
	f := newJournalFixture()
	userID := uuid.New()

	stats, err := f.svc.WeeklyStats(ctx, userID)
	require.NoError(t, err)
	assert.Zero(t, stats.Count)
	assert.Nil(t, stats.AvgMoodBefore)
	assert.Nil(t, stats.MoodImprovement)

	for i, before := range []int{4, 6} {
		d := f.today.AddDays(-i)
		_, err := f.svc.CreateEntry(ctx, userID, &entity.JournalEntryCreate{Date: &d, Content: "entry", MoodBefore: ptr(before)})
		require.NoError(t, err)
	}
	old := f.today.AddDays(-7)
	_, err = f.svc.CreateEntry(ctx, userID, &entity.JournalEntryCreate{Date: &old, Content: "old", MoodBefore: ptr(1)})
	require.NoError(t, err)

	stats, err = f.svc.WeeklyStats(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Count)
	assert.Equal(t, 5.0, *stats.AvgMoodBefore)
	assert.Equal(t, 6.0, *stats.AvgMoodAfter)
	assert.Equal(t, 1.0, *stats.MoodImprovement)
}
