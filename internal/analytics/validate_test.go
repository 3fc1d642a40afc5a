package analytics

import (
	"testing"

	"github.com/Isha-commits965/wellness-tracker-backend/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestValidateSnapshot(t *testing.T) {
	s, _, _, _ := fixture()
	assert.NoError(t, ValidateSnapshot(s))
	assert.NoError(t, ValidateSnapshot(Snapshot{}))
}

func TestValidateSnapshot_Violations(t *testing.T) {
	habit := uuid.New()

	tests := []struct {
		name string
		snap Snapshot
	}{
		{
			name: "duplicate check-in",
			snap: Snapshot{CheckIns: []*entity.CheckIn{
				{HabitID: habit, Date: d("2024-03-01")},
				{HabitID: habit, Date: d("2024-03-01"), Completed: true},
			}},
		},
		{
			name: "duplicate mood day",
			snap: Snapshot{Moods: []*entity.MoodEntry{mood("2024-03-01", 5, nil, nil), mood("2024-03-01", 6, nil, nil)}},
		},
		{
			name: "mood score out of range",
			snap: Snapshot{Moods: []*entity.MoodEntry{mood("2024-03-01", 11, nil, nil)}},
		},
		{
			name: "stress out of range",
			snap: Snapshot{Moods: []*entity.MoodEntry{mood("2024-03-01", 5, nil, ptr(0))}},
		},
		{
			name: "duplicate journal day",
			snap: Snapshot{Journals: []*entity.JournalEntry{{Date: d("2024-03-01")}, {Date: d("2024-03-01")}}},
		},
		{
			name: "journal mood out of range",
			snap: Snapshot{Journals: []*entity.JournalEntry{{Date: d("2024-03-01"), MoodAfter: ptr(12)}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, ValidateSnapshot(tt.snap), ErrDataIntegrity)
		})
	}
}

func TestValidate_DifferentHabitsSameDayAllowed(t *testing.T) {
	err := ValidateCheckIns([]*entity.CheckIn{
		{HabitID: uuid.New(), Date: d("2024-03-01")},
		{HabitID: uuid.New(), Date: d("2024-03-01")},
	})
	assert.NoError(t, err)
}
