package analytics

import (
	"slices"

	"github.com/Isha-commits965/wellness-tracker-backend/internal/domain/entity"
)

// DueSoonDays is how far ahead an incomplete goal counts as due soon
const DueSoonDays = 7

// GoalsSummary is the goal overview as of a reference date
type GoalsSummary struct {
	Total          int            `json:"total_goals"`
	Completed      int            `json:"completed_goals"`
	Pending        int            `json:"pending_goals"`
	CompletionRate float64        `json:"completion_rate"`
	DueSoon        []*entity.Goal `json:"due_soon"`
	Overdue        []*entity.Goal `json:"overdue"`
}

// GoalsOverview counts goals and picks out incomplete ones that are overdue
// (target before ref) or due within DueSoonDays of ref. Both lists are
// ordered by target date.
func GoalsOverview(goals []*entity.Goal, ref entity.Date) GoalsSummary {
	sum := GoalsSummary{
		Total:   len(goals),
		DueSoon: make([]*entity.Goal, 0),
		Overdue: make([]*entity.Goal, 0),
	}
	horizon := ref.AddDays(DueSoonDays)
	for _, g := range goals {
		if g.IsCompleted {
			sum.Completed++
			continue
		}
		if g.TargetDate == nil {
			continue
		}
		switch {
		case g.TargetDate.Before(ref):
			sum.Overdue = append(sum.Overdue, g)
		case !g.TargetDate.After(horizon):
			sum.DueSoon = append(sum.DueSoon, g)
		}
	}
	sum.Pending = sum.Total - sum.Completed
	sum.CompletionRate = percent(sum.Completed, sum.Total)

	byTarget := func(a, b *entity.Goal) int { return a.TargetDate.Compare(*b.TargetDate) }
	slices.SortStableFunc(sum.DueSoon, byTarget)
	slices.SortStableFunc(sum.Overdue, byTarget)
	return sum
}
