package analytics

import (
	"testing"

	"github.com/Isha-commits965/wellness-tracker-backend/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalendar_FebruaryNonLeapHasEveryDay(t *testing.T) {
	cal, err := Calendar(Snapshot{}, 2023, 2)
	require.NoError(t, err)
	require.Len(t, cal.Days, 28)

	for i, day := range cal.Days {
		assert.Equal(t, entity.NewDate(2023, 2, i+1), day.Date)
		assert.Zero(t, day.HabitsCompleted)
		assert.Zero(t, day.HabitsTotal)
		assert.Nil(t, day.MoodScore)
		assert.False(t, day.HasJournal)
		assert.Nil(t, day.MoodImprovement)
	}
}

func TestCalendar_LeapFebruary(t *testing.T) {
	cal, err := Calendar(Snapshot{}, 2024, 2)
	require.NoError(t, err)
	assert.Len(t, cal.Days, 29)
	assert.Equal(t, d("2024-02-29"), cal.Days[28].Date)
}

func TestCalendar_Overlay(t *testing.T) {
	s, _, _, _ := fixture()
	cal, err := Calendar(s, 2024, 3)
	require.NoError(t, err)
	require.Len(t, cal.Days, 31)
	assert.Equal(t, 2024, cal.Year)
	assert.Equal(t, 3, cal.Month)

	day13 := cal.Days[12]
	assert.Equal(t, d("2024-03-13"), day13.Date)
	assert.Equal(t, 1, day13.HabitsCompleted, "inactive habit excluded")
	assert.Equal(t, 2, day13.HabitsTotal)
	require.NotNil(t, day13.MoodScore)
	assert.Equal(t, 8, *day13.MoodScore)
	assert.True(t, day13.HasJournal)
	require.NotNil(t, day13.MoodImprovement)
	assert.Equal(t, 2, *day13.MoodImprovement)

	day12 := cal.Days[11]
	assert.Equal(t, 2, day12.HabitsCompleted)
	assert.True(t, day12.HasJournal)
	assert.Nil(t, day12.MoodImprovement, "no mood_after recorded")

	day1 := cal.Days[0]
	assert.Zero(t, day1.HabitsTotal)
	assert.Nil(t, day1.MoodScore)
}

func TestCalendar_InvalidMonth(t *testing.T) {
	_, err := Calendar(Snapshot{}, 2024, 13)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
