package service

import (
	"context"
	"testing"

	"github.com/Isha-commits965/wellness-tracker-backend/internal/domain/entity"
	"github.com/Isha-commits965/wellness-tracker-backend/internal/domain/repository"
	"github.com/Isha-commits965/wellness-tracker-backend/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type habitFixture struct {
	svc       service.HabitService
	habits    *memHabits
	checkIns  *memCheckIns
	cache     *memCache
	publisher *recordingPublisher
	today     entity.Date
}

func newHabitFixture() *habitFixture {
	f := &habitFixture{
		habits:    newMemHabits(),
		checkIns:  &memCheckIns{},
		cache:     newMemCache(),
		publisher: &recordingPublisher{},
		today:     entity.MustParseDate("2024-03-13"),
	}
	f.svc = NewHabitService(f.habits, f.checkIns, fixedClock{f.today}, f.cache, f.publisher, zap.NewNop())
	return f
}

func TestHabitService_CreateDefaults(t *testing.T) {
	ctx := context.Background()
	f := newHabitFixture()
	userID := uuid.New()

	habit, err := f.svc.CreateHabit(ctx, userID, &entity.HabitCreate{Name: "Read"})
	require.NoError(t, err)
	assert.Equal(t, entity.FrequencyDaily, habit.TargetFrequency)
	assert.True(t, habit.IsActive)
	assert.Equal(t, userID, habit.UserID)
	assert.Equal(t, 1, f.cache.invalidated)

	_, err = f.svc.CreateHabit(ctx, userID, &entity.HabitCreate{Name: "  "})
	assert.ErrorIs(t, err, service.ErrValidation)

	_, err = f.svc.CreateHabit(ctx, userID, &entity.HabitCreate{Name: "Run", TargetFrequency: "hourly"})
	assert.ErrorIs(t, err, service.ErrValidation)
}

func TestHabitService_UpdateAndSoftDelete(t *testing.T) {
	ctx := context.Background()
	f := newHabitFixture()
	userID := uuid.New()

	habit, err := f.svc.CreateHabit(ctx, userID, &entity.HabitCreate{Name: "Read", Category: ptr("learning")})
	require.NoError(t, err)

	updated, err := f.svc.UpdateHabit(ctx, habit.ID, userID, &entity.HabitUpdate{
		Name:     entity.Some("Read more"),
		Category: entity.Null[string](),
	})
	require.NoError(t, err)
	assert.Equal(t, "Read more", updated.Name)
	assert.Nil(t, updated.Category)

	_, err = f.svc.UpdateHabit(ctx, habit.ID, userID, &entity.HabitUpdate{Name: entity.Null[string]()})
	assert.ErrorIs(t, err, service.ErrValidation)

	_, err = f.svc.UpdateHabit(ctx, habit.ID, uuid.New(), &entity.HabitUpdate{Name: entity.Some("x")})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	require.NoError(t, f.svc.DeleteHabit(ctx, habit.ID, userID))
	list, err := f.svc.ListHabits(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, list)

	got, err := f.svc.GetHabit(ctx, habit.ID, userID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
}

func TestHabitService_CheckInUpserts(t *testing.T) {
	ctx := context.Background()
	f := newHabitFixture()
	userID := uuid.New()

	habit, err := f.svc.CreateHabit(ctx, userID, &entity.HabitCreate{Name: "Read"})
	require.NoError(t, err)

	first, err := f.svc.CheckIn(ctx, userID, &entity.CheckInCreate{HabitID: habit.ID, Completed: false})
	require.NoError(t, err)
	assert.Equal(t, f.today, first.Date, "missing date defaults to today")

	second, err := f.svc.CheckIn(ctx, userID, &entity.CheckInCreate{
		HabitID: habit.ID, Date: f.today, Completed: true, Notes: ptr("done"),
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	list, err := f.svc.ListCheckIns(ctx, userID, entity.CheckInFilter{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].Completed)
	require.NotNil(t, list[0].Notes)
	assert.Equal(t, "done", *list[0].Notes)

	events := f.publisher.ofType(service.EventHabitCheckedIn)
	require.Len(t, events, 2)
	assert.Equal(t, true, events[1].payload["completed"])
	assert.Equal(t, "2024-03-13", events[1].payload["date"])
}

func TestHabitService_CheckInForeignHabit(t *testing.T) {
	ctx := context.Background()
	f := newHabitFixture()

	habit, err := f.svc.CreateHabit(ctx, uuid.New(), &entity.HabitCreate{Name: "Read"})
	require.NoError(t, err)

	_, err = f.svc.CheckIn(ctx, uuid.New(), &entity.CheckInCreate{HabitID: habit.ID, Completed: true})
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.Empty(t, f.checkIns.checkIns)
}

func TestHabitService_ListAndUpdateCheckIns(t *testing.T) {
	ctx := context.Background()
	f := newHabitFixture()
	userID := uuid.New()

	habit, err := f.svc.CreateHabit(ctx, userID, &entity.HabitCreate{Name: "Read"})
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		_, err := f.svc.CheckIn(ctx, userID, &entity.CheckInCreate{HabitID: habit.ID, Date: f.today.AddDays(-i), Completed: true})
		require.NoError(t, err)
	}

	start, end := f.today.AddDays(-3), f.today.AddDays(-1)
	list, err := f.svc.ListCheckIns(ctx, userID, entity.CheckInFilter{HabitID: &habit.ID, StartDate: &start, EndDate: &end})
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, end, list[0].Date, "newest first")

	_, err = f.svc.ListCheckIns(ctx, userID, entity.CheckInFilter{StartDate: &end, EndDate: &start})
	assert.ErrorIs(t, err, service.ErrValidation)

	updated, err := f.svc.UpdateCheckIn(ctx, list[0].ID, userID, &entity.CheckInUpdate{Completed: entity.Some(false)})
	require.NoError(t, err)
	assert.False(t, updated.Completed)

	_, err = f.svc.UpdateCheckIn(ctx, list[0].ID, userID, &entity.CheckInUpdate{Completed: entity.Null[bool]()})
	assert.ErrorIs(t, err, service.ErrValidation)
}
