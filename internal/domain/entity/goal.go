package entity

import (
	"time"

	"github.com/google/uuid"
)

// Goal is a user-defined target with an optional due date
type Goal struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"user_id"`

	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	TargetDate  *Date   `json:"target_date"`
	IsCompleted bool    `json:"is_completed"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GoalUpdate is a partial update of a goal
type GoalUpdate struct {
	Title       Patch[string] `json:"title"`
	Description Patch[string] `json:"description"`
	TargetDate  Patch[Date]   `json:"target_date"`
	IsCompleted Patch[bool]   `json:"is_completed"`
}

// ApplyTo copies the set fields into g
func (u GoalUpdate) ApplyTo(g *Goal) {
	u.Title.Apply(&g.Title)
	u.Description.ApplyPtr(&g.Description)
	u.TargetDate.ApplyPtr(&g.TargetDate)
	u.IsCompleted.Apply(&g.IsCompleted)
}

// GoalCreate represents a goal to create
type GoalCreate struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	TargetDate  *Date   `json:"target_date,omitempty"`
}
