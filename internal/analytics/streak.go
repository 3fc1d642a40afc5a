package analytics

import (
	"fmt"
	"slices"

	"github.com/Isha-commits965/wellness-tracker-backend/internal/domain/entity"

	"github.com/google/uuid"
)

// StreakPolicy decides what a gap between the reference date and the most
// recent completion does to the current streak.
type StreakPolicy string

const (
	// StreakStrict zeroes the current streak unless the latest completion is
	// the reference date or the day before it.
	StreakStrict StreakPolicy = "strict"

	// StreakLenient counts the unbroken run ending at the latest completion,
	// however long ago that was.
	StreakLenient StreakPolicy = "lenient"
)

// ParseStreakPolicy parses a policy name; empty means strict
func ParseStreakPolicy(s string) (StreakPolicy, error) {
	switch StreakPolicy(s) {
	case "", StreakStrict:
		return StreakStrict, nil
	case StreakLenient:
		return StreakLenient, nil
	default:
		return "", fmt.Errorf("%w: unknown streak policy %q", ErrInvalidArgument, s)
	}
}

// Streak is the streak state of one habit
type Streak struct {
	Current       int          `json:"current_streak"`
	Longest       int          `json:"longest_streak"`
	LastCompleted *entity.Date `json:"last_completed"`
}

// ComputeStreaks walks completion dates (distinct, most recent first) and
// returns the current and longest runs of consecutive days relative to ref.
// Completions dated after ref never extend the current streak.
func ComputeStreaks(completedDesc []entity.Date, ref entity.Date, policy StreakPolicy) Streak {
	var s Streak
	if len(completedDesc) == 0 {
		return s
	}

	last := completedDesc[0]
	s.LastCompleted = &last
	s.Current = currentStreak(completedDesc, ref, policy)
	s.Longest = longestStreak(completedDesc)
	return s
}

func currentStreak(completedDesc []entity.Date, ref entity.Date, policy StreakPolicy) int {
	i := 0
	for i < len(completedDesc) && completedDesc[i].After(ref) {
		i++
	}
	if i == len(completedDesc) {
		return 0
	}

	expected := completedDesc[i]
	if policy != StreakLenient {
		if gap := ref.DaysSince(expected); gap > 1 {
			return 0
		}
	}

	count := 0
	for ; i < len(completedDesc); i++ {
		if completedDesc[i] != expected {
			break
		}
		count++
		expected = expected.AddDays(-1)
	}
	return count
}

func longestStreak(completedDesc []entity.Date) int {
	longest, run := 0, 0
	for i, d := range completedDesc {
		if i > 0 && d == completedDesc[i-1].AddDays(-1) {
			run++
		} else {
			run = 1
		}
		longest = max(longest, run)
	}
	return longest
}

// CompletedDates extracts the distinct completed days of one habit, most recent first
func CompletedDates(checkIns []*entity.CheckIn, habitID uuid.UUID) []entity.Date {
	seen := make(map[entity.Date]struct{})
	dates := make([]entity.Date, 0)
	for _, c := range checkIns {
		if c.HabitID != habitID || !c.Completed {
			continue
		}
		if _, ok := seen[c.Date]; ok {
			continue
		}
		seen[c.Date] = struct{}{}
		dates = append(dates, c.Date)
	}
	slices.SortFunc(dates, func(a, b entity.Date) int { return b.Compare(a) })
	return dates
}

// HabitStreak is the streak of a named habit
type HabitStreak struct {
	HabitID   uuid.UUID `json:"habit_id"`
	HabitName string    `json:"habit_name"`
	Streak
}

// HabitStreaks computes streaks for every active habit, in the order the habits are given
func HabitStreaks(habits []*entity.Habit, checkIns []*entity.CheckIn, ref entity.Date, policy StreakPolicy) []HabitStreak {
	out := make([]HabitStreak, 0, len(habits))
	for _, h := range habits {
		if !h.IsActive {
			continue
		}
		out = append(out, HabitStreak{
			HabitID:   h.ID,
			HabitName: h.Name,
			Streak:    ComputeStreaks(CompletedDates(checkIns, h.ID), ref, policy),
		})
	}
	return out
}
