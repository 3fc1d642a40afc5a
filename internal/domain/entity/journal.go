package entity

import (
	"time"

	"github.com/google/uuid"
)

// JournalEntry is a free-text daily entry. At most one per (user, date).
type JournalEntry struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"user_id"`

	Date    Date   `json:"date"`
	Content string `json:"content"`

	// Companion output, opaque to analytics once persisted
	AIResponse  *string  `json:"ai_response"`
	Suggestions []string `json:"suggestions"`

	MoodBefore *int `json:"mood_before"`
	MoodAfter  *int `json:"mood_after"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MoodImprovement returns mood_after - mood_before, or nil unless both are recorded
func (j *JournalEntry) MoodImprovement() *int {
	if j.MoodBefore == nil || j.MoodAfter == nil {
		return nil
	}
	delta := *j.MoodAfter - *j.MoodBefore
	return &delta
}

// JournalEntryUpdate is a partial update of a journal entry
type JournalEntryUpdate struct {
	Content    Patch[string] `json:"content"`
	MoodBefore Patch[int]    `json:"mood_before"`
}

// ApplyTo copies the set fields into j
func (u JournalEntryUpdate) ApplyTo(j *JournalEntry) {
	u.Content.Apply(&j.Content)
	u.MoodBefore.ApplyPtr(&j.MoodBefore)
}

// CompanionReply is what the journaling companion produces for an entry
type CompanionReply struct {
	Response    string   `json:"response"`
	MoodAfter   *int     `json:"mood_after"`
	Suggestions []string `json:"suggestions"`
}

// JournalEntryCreate represents a journal entry to write; a nil Date means today
type JournalEntryCreate struct {
	Date       *Date  `json:"date,omitempty"`
	Content    string `json:"content"`
	MoodBefore *int   `json:"mood_before,omitempty"`
}
