package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Isha-commits965/wellness-tracker-backend/internal/analytics"
	"github.com/Isha-commits965/wellness-tracker-backend/internal/domain/entity"
	"github.com/Isha-commits965/wellness-tracker-backend/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type analyticsFixture struct {
	svc       service.AnalyticsService
	repos     AnalyticsRepositories
	users     *memUsers
	habits    *memHabits
	checkIns  *memCheckIns
	moods     *memMoods
	journals  *memJournals
	cache     *memCache
	publisher *recordingPublisher
	today     entity.Date
	userID    uuid.UUID
	read      *entity.Habit
}

func newAnalyticsFixture(t *testing.T) *analyticsFixture {
	t.Helper()
	ctx := context.Background()

	f := &analyticsFixture{
		users:     newMemUsers(),
		habits:    newMemHabits(),
		checkIns:  &memCheckIns{},
		moods:     &memMoods{},
		journals:  &memJournals{},
		cache:     newMemCache(),
		publisher: &recordingPublisher{},
		today:     entity.MustParseDate("2024-03-13"), // Wednesday
		userID:    uuid.New(),
	}
	f.repos = AnalyticsRepositories{
		Users: f.users, Habits: f.habits, CheckIns: f.checkIns, Moods: f.moods, Journals: f.journals,
	}
	f.svc = NewAnalyticsService(f.repos, f.cache, f.publisher, fixedClock{f.today}, analytics.StreakStrict, zap.NewNop())

	require.NoError(t, f.users.Create(ctx, &entity.User{ID: f.userID, Email: "a@example.com", IsActive: true}))

	f.read = &entity.Habit{ID: uuid.New(), UserID: f.userID, Name: "Read", IsActive: true}
	walk := &entity.Habit{ID: uuid.New(), UserID: f.userID, Name: "Walk", IsActive: true}
	require.NoError(t, f.habits.Create(ctx, f.read))
	require.NoError(t, f.habits.Create(ctx, walk))

	for i := 0; i < 3; i++ {
		require.NoError(t, f.checkIns.Upsert(ctx, &entity.CheckIn{
			ID: uuid.New(), UserID: f.userID, HabitID: f.read.ID, Date: f.today.AddDays(-i), Completed: true,
		}))
	}
	// last week, for the digest
	require.NoError(t, f.checkIns.Upsert(ctx, &entity.CheckIn{
		ID: uuid.New(), UserID: f.userID, HabitID: walk.ID, Date: f.today.AddDays(-7), Completed: true,
	}))

	require.NoError(t, f.moods.Create(ctx, &entity.MoodEntry{ID: uuid.New(), UserID: f.userID, Date: f.today.AddDays(-1), MoodScore: 6}))
	require.NoError(t, f.journals.Create(ctx, &entity.JournalEntry{
		ID: uuid.New(), UserID: f.userID, Date: f.today, Content: "x", MoodBefore: ptr(4), MoodAfter: ptr(6),
	}))
	return f
}

func TestAnalyticsService_Dashboard(t *testing.T) {
	ctx := context.Background()
	f := newAnalyticsFixture(t)

	dash, err := f.svc.Dashboard(ctx, f.userID, nil)
	require.NoError(t, err)
	assert.Equal(t, f.today, dash.Date)
	assert.Equal(t, 1, dash.Today.HabitsCompleted)
	assert.Equal(t, 2, dash.Today.HabitsTotal)
	assert.False(t, dash.Mood.Recorded, "no mood entry today")
	assert.Nil(t, dash.Mood.MoodScore)
	assert.True(t, dash.Journal.Written)
	assert.Equal(t, 2, *dash.Journal.MoodImprovement)
	require.Len(t, dash.Streaks, 2)
	assert.Equal(t, 3, dash.Streaks[0].Current)
	assert.Equal(t, 3, dash.Week.HabitsCompleted)

	yesterday := f.today.AddDays(-1)
	dash, err = f.svc.Dashboard(ctx, f.userID, &yesterday)
	require.NoError(t, err)
	assert.True(t, dash.Mood.Recorded)
	assert.Equal(t, 6, *dash.Mood.MoodScore)
	assert.False(t, dash.Journal.Written)
}

func TestAnalyticsService_CachesUntilInvalidated(t *testing.T) {
	ctx := context.Background()
	f := newAnalyticsFixture(t)

	first, err := f.svc.HabitStreaks(ctx, f.userID)
	require.NoError(t, err)
	assert.Equal(t, 1, f.cache.sets)

	// A write that bypasses invalidation is not seen
	require.NoError(t, f.checkIns.Upsert(ctx, &entity.CheckIn{
		ID: uuid.New(), UserID: f.userID, HabitID: f.read.ID, Date: f.today.AddDays(-3), Completed: true,
	}))
	second, err := f.svc.HabitStreaks(ctx, f.userID)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, f.cache.sets)

	require.NoError(t, f.cache.Invalidate(ctx, f.userID))
	third, err := f.svc.HabitStreaks(ctx, f.userID)
	require.NoError(t, err)
	assert.Equal(t, 4, third[0].Current)
}

func TestAnalyticsService_WriteDuringComputeIsNotCached(t *testing.T) {
	ctx := context.Background()
	f := newAnalyticsFixture(t)

	// A check-in lands after the snapshot was read but before the result is stored
	f.cache.beforeSet = func() {
		f.cache.beforeSet = nil
		require.NoError(t, f.checkIns.Upsert(ctx, &entity.CheckIn{
			ID: uuid.New(), UserID: f.userID, HabitID: f.read.ID, Date: f.today.AddDays(-3), Completed: true,
		}))
		require.NoError(t, f.cache.Invalidate(ctx, f.userID))
	}

	first, err := f.svc.HabitStreaks(ctx, f.userID)
	require.NoError(t, err)
	assert.Equal(t, 3, first[0].Current)

	second, err := f.svc.HabitStreaks(ctx, f.userID)
	require.NoError(t, err)
	assert.Equal(t, 4, second[0].Current)
	assert.Equal(t, 2, f.cache.sets)
}

func TestAnalyticsService_WeeklyStatsAndCalendar(t *testing.T) {
	ctx := context.Background()
	f := newAnalyticsFixture(t)

	weeks, err := f.svc.WeeklyStats(ctx, f.userID, 2)
	require.NoError(t, err)
	require.Len(t, weeks, 2)
	assert.Equal(t, entity.MustParseDate("2024-03-11"), weeks[0].Start)
	assert.Equal(t, 3, weeks[0].HabitsCompleted)
	assert.Equal(t, 21.4, weeks[0].CompletionRate)
	assert.Equal(t, 1, weeks[1].HabitsCompleted)

	_, err = f.svc.WeeklyStats(ctx, f.userID, 0)
	assert.ErrorIs(t, err, analytics.ErrInvalidArgument)

	cal, err := f.svc.Calendar(ctx, f.userID, 2024, 3)
	require.NoError(t, err)
	require.Len(t, cal.Days, 31)
	assert.Equal(t, 1, cal.Days[12].HabitsCompleted)
	assert.True(t, cal.Days[12].HasJournal)

	_, err = f.svc.Calendar(ctx, f.userID, 2024, 0)
	assert.ErrorIs(t, err, analytics.ErrInvalidArgument)
}

func TestAnalyticsService_MoodTrends(t *testing.T) {
	ctx := context.Background()
	f := newAnalyticsFixture(t)

	trend, err := f.svc.MoodTrends(ctx, f.userID, 7)
	require.NoError(t, err)
	require.Len(t, trend.Points, 1)
	assert.Equal(t, 6.0, *trend.Summary.AvgMood)

	_, err = f.svc.MoodTrends(ctx, f.userID, MaxTrendDays+1)
	assert.ErrorIs(t, err, service.ErrValidation)
}

func TestAnalyticsService_SendWeeklyDigests(t *testing.T) {
	ctx := context.Background()
	f := newAnalyticsFixture(t)

	require.NoError(t, f.svc.SendWeeklyDigests(ctx))
	digests := f.publisher.ofType(service.EventWeeklyDigest)
	require.Len(t, digests, 1)
	assert.Equal(t, f.userID, digests[0].userID)
	assert.Equal(t, "2024-03-04", digests[0].payload["week_start"])
	assert.Equal(t, "2024-03-10", digests[0].payload["week_end"])
	assert.Equal(t, 1, digests[0].payload["habits_completed"])
	assert.NotContains(t, digests[0].payload, "avg_mood")

	f.publisher.err = errors.New("broker down")
	assert.Error(t, f.svc.SendWeeklyDigests(ctx))
}
