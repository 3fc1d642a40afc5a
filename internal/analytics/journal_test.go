package analytics

import (
	"testing"

	"github.com/Isha-commits965/wellness-tracker-backend/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeJournal(t *testing.T) {
	w, err := NewWindow(d("2024-03-07"), d("2024-03-13"))
	require.NoError(t, err)

	entries := []*entity.JournalEntry{
		{Date: d("2024-03-13"), MoodBefore: ptr(4), MoodAfter: ptr(5)},
		{Date: d("2024-03-10"), MoodBefore: ptr(6), MoodAfter: ptr(8)},
		{Date: d("2024-03-09"), MoodBefore: ptr(5)},
		{Date: d("2024-03-01"), MoodBefore: ptr(1), MoodAfter: ptr(10)},
	}

	sum := SummarizeJournal(entries, w)
	assert.Equal(t, 3, sum.Count)
	require.NotNil(t, sum.AvgMoodBefore)
	assert.Equal(t, 5.0, *sum.AvgMoodBefore)
	require.NotNil(t, sum.AvgMoodAfter)
	assert.Equal(t, 6.5, *sum.AvgMoodAfter)
	require.NotNil(t, sum.MoodImprovement)
	assert.Equal(t, 1.5, *sum.MoodImprovement)
}

func TestSummarizeJournal_NoData(t *testing.T) {
	w, err := NewWindow(d("2024-03-07"), d("2024-03-13"))
	require.NoError(t, err)

	sum := SummarizeJournal(nil, w)
	assert.Zero(t, sum.Count)
	assert.Nil(t, sum.AvgMoodBefore)
	assert.Nil(t, sum.AvgMoodAfter)
	assert.Nil(t, sum.MoodImprovement)

	sum = SummarizeJournal([]*entity.JournalEntry{{Date: d("2024-03-08"), MoodBefore: ptr(3)}}, w)
	assert.Equal(t, 1, sum.Count)
	assert.Nil(t, sum.MoodImprovement, "improvement needs both averages")
}
