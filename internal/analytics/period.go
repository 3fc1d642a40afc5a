package analytics

import (
	"fmt"
	"time"

	"github.com/Isha-commits965/wellness-tracker-backend/internal/domain/entity"

	"github.com/google/uuid"
)

// MaxTrailingWeeks bounds TrailingWeeks
const MaxTrailingWeeks = 52

// PeriodKind is the granularity of a rollup
type PeriodKind string

const (
	PeriodWeek  PeriodKind = "week"
	PeriodMonth PeriodKind = "month"
)

// Period is a week (Monday to Sunday) or a calendar month
type Period struct {
	Kind PeriodKind `json:"kind"`
	Window
}

// WeekOf returns the Monday-start week containing anchor
func WeekOf(anchor entity.Date) Period {
	offset := (int(anchor.Weekday()) + 6) % 7 // Monday = 0
	start := anchor.AddDays(-offset)
	return Period{Kind: PeriodWeek, Window: Window{Start: start, End: start.AddDays(6)}}
}

// TrailingWeeks returns the week containing anchor followed by the n-1 weeks before it
func TrailingWeeks(anchor entity.Date, n int) ([]Period, error) {
	if n < 1 || n > MaxTrailingWeeks {
		return nil, fmt.Errorf("%w: weeks must be between 1 and %d, got %d", ErrInvalidArgument, MaxTrailingWeeks, n)
	}
	weeks := make([]Period, 0, n)
	for k := 0; k < n; k++ {
		weeks = append(weeks, WeekOf(anchor.AddDays(-7*k)))
	}
	return weeks, nil
}

// MonthOf returns the calendar month
func MonthOf(year, month int) (Period, error) {
	if month < 1 || month > 12 {
		return Period{}, fmt.Errorf("%w: month must be between 1 and 12, got %d", ErrInvalidArgument, month)
	}
	if year < 1 || year > 9999 {
		return Period{}, fmt.Errorf("%w: year out of range: %d", ErrInvalidArgument, year)
	}
	first := entity.NewDate(year, time.Month(month), 1)
	last := entity.NewDate(year, time.Month(month)+1, 0)
	return Period{Kind: PeriodMonth, Window: Window{Start: first, End: last}}, nil
}

// Snapshot is the slice of a user's event log an aggregate works on
type Snapshot struct {
	Habits   []*entity.Habit
	CheckIns []*entity.CheckIn
	Moods    []*entity.MoodEntry
	Journals []*entity.JournalEntry
}

func (s Snapshot) activeHabits() map[uuid.UUID]struct{} {
	active := make(map[uuid.UUID]struct{}, len(s.Habits))
	for _, h := range s.Habits {
		if h.IsActive {
			active[h.ID] = struct{}{}
		}
	}
	return active
}

type habitDay struct {
	habitID uuid.UUID
	date    entity.Date
}

// completedIn counts distinct (habit, day) completions of active habits inside w
func (s Snapshot) completedIn(w Window, active map[uuid.UUID]struct{}) int {
	done := make(map[habitDay]struct{})
	for _, c := range s.CheckIns {
		if !c.Completed || !w.Contains(c.Date) {
			continue
		}
		if _, ok := active[c.HabitID]; !ok {
			continue
		}
		done[habitDay{c.HabitID, c.Date}] = struct{}{}
	}
	return len(done)
}

// PeriodStats is the rollup of one period
type PeriodStats struct {
	Period
	ActiveHabits    int      `json:"active_habits"`
	HabitsCompleted int      `json:"habits_completed"`
	HabitsPossible  int      `json:"total_habits"`
	CompletionRate  float64  `json:"completion_rate"`
	AvgMood         *float64 `json:"avg_mood"`
	MoodEntries     int      `json:"mood_entries"`
	JournalEntries  int      `json:"journal_entries"`
}

// SummarizePeriod rolls habit completion, mood and journal activity up over p.
// The completion rate is completed / (active habits * days), as a percentage.
func SummarizePeriod(s Snapshot, p Period) PeriodStats {
	active := s.activeHabits()
	stats := PeriodStats{
		Period:       p,
		ActiveHabits: len(active),
	}
	stats.HabitsCompleted = s.completedIn(p.Window, active)
	stats.HabitsPossible = len(active) * p.Days()
	stats.CompletionRate = percent(stats.HabitsCompleted, stats.HabitsPossible)

	mood := SummarizeWindow(s.Moods, p.Window)
	stats.AvgMood = mood.AvgMood
	stats.MoodEntries = mood.Count

	for _, j := range s.Journals {
		if p.Contains(j.Date) {
			stats.JournalEntries++
		}
	}
	return stats
}

// WeeklyStats summarizes the n weeks ending with the week of anchor, newest first
func WeeklyStats(s Snapshot, anchor entity.Date, n int) ([]PeriodStats, error) {
	weeks, err := TrailingWeeks(anchor, n)
	if err != nil {
		return nil, err
	}
	out := make([]PeriodStats, 0, len(weeks))
	for _, w := range weeks {
		out = append(out, SummarizePeriod(s, w))
	}
	return out, nil
}
