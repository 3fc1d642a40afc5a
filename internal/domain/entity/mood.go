package entity

import (
	"time"

	"github.com/google/uuid"
)

// Score bounds shared by mood, energy, stress and journal ratings
const (
	MinScore = 1
	MaxScore = 10
)

// MoodEntry is a daily mood reading. At most one per (user, date).
type MoodEntry struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"user_id"`

	Date        Date    `json:"date"`
	MoodScore   int     `json:"mood_score"`
	EnergyLevel *int    `json:"energy_level"`
	StressLevel *int    `json:"stress_level"`
	Notes       *string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MoodEntryUpdate is a partial update of a mood entry
type MoodEntryUpdate struct {
	MoodScore   Patch[int]    `json:"mood_score"`
	EnergyLevel Patch[int]    `json:"energy_level"`
	StressLevel Patch[int]    `json:"stress_level"`
	Notes       Patch[string] `json:"notes"`
}

// ApplyTo copies the set fields into m
func (u MoodEntryUpdate) ApplyTo(m *MoodEntry) {
	u.MoodScore.Apply(&m.MoodScore)
	u.EnergyLevel.ApplyPtr(&m.EnergyLevel)
	u.StressLevel.ApplyPtr(&m.StressLevel)
	u.Notes.ApplyPtr(&m.Notes)
}

// DateRange is an optional inclusive filter on entry dates
type DateRange struct {
	Start *Date
	End   *Date
}

// MoodEntryCreate represents a mood entry to record
type MoodEntryCreate struct {
	Date        Date    `json:"date"`
	MoodScore   int     `json:"mood_score"`
	EnergyLevel *int    `json:"energy_level,omitempty"`
	StressLevel *int    `json:"stress_level,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}
