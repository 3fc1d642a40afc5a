package entity

import (
	"time"

	"github.com/google/uuid"
)

// Frequency is the target cadence of a habit
type Frequency string

const (
	FrequencyDaily  Frequency = "daily"
	FrequencyWeekly Frequency = "weekly"
)

// Habit represents a user's habit
type Habit struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"user_id"`

	// Basic info
	Name            string    `json:"name"`
	Description     *string   `json:"description,omitempty"`
	Category        *string   `json:"category,omitempty"` // e.g. "health", "productivity", "mindfulness"
	TargetFrequency Frequency `json:"target_frequency"`

	// Inactive habits keep their check-ins but drop out of aggregates
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HabitUpdate is a partial update of a habit
type HabitUpdate struct {
	Name            Patch[string]    `json:"name"`
	Description     Patch[string]    `json:"description"`
	Category        Patch[string]    `json:"category"`
	TargetFrequency Patch[Frequency] `json:"target_frequency"`
	IsActive        Patch[bool]      `json:"is_active"`
}

// ApplyTo copies the set fields into h
func (u HabitUpdate) ApplyTo(h *Habit) {
	u.Name.Apply(&h.Name)
	u.Description.ApplyPtr(&h.Description)
	u.Category.ApplyPtr(&h.Category)
	u.TargetFrequency.Apply(&h.TargetFrequency)
	u.IsActive.Apply(&h.IsActive)
}

// CheckIn records whether a habit was done on a calendar day.
// There is at most one check-in per (user, habit, date).
type CheckIn struct {
	ID      uuid.UUID `json:"id"`
	UserID  uuid.UUID `json:"user_id"`
	HabitID uuid.UUID `json:"habit_id"`

	Date      Date    `json:"date"`
	Completed bool    `json:"completed"`
	Notes     *string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CheckInUpdate is a partial update of a check-in
type CheckInUpdate struct {
	Completed Patch[bool]   `json:"completed"`
	Notes     Patch[string] `json:"notes"`
}

// ApplyTo copies the set fields into c
func (u CheckInUpdate) ApplyTo(c *CheckIn) {
	u.Completed.Apply(&c.Completed)
	u.Notes.ApplyPtr(&c.Notes)
}

// CheckInFilter narrows a check-in listing; zero fields are unbounded
type CheckInFilter struct {
	HabitID   *uuid.UUID
	StartDate *Date
	EndDate   *Date
}

// HabitCreate represents data needed to create a habit
type HabitCreate struct {
	Name            string    `json:"name"`
	Description     *string   `json:"description,omitempty"`
	Category        *string   `json:"category,omitempty"`
	TargetFrequency Frequency `json:"target_frequency"`
}

// CheckInCreate represents a check-in to record
type CheckInCreate struct {
	HabitID   uuid.UUID `json:"habit_id"`
	Date      Date      `json:"date"`
	Completed bool      `json:"completed"`
	Notes     *string   `json:"notes,omitempty"`
}
