package analytics

import (
	"github.com/Isha-commits965/wellness-tracker-backend/internal/domain/entity"
)

// JournalSummary aggregates journal entries over a window
type JournalSummary struct {
	Window
	Count           int      `json:"total_entries"`
	AvgMoodBefore   *float64 `json:"avg_mood_before"`
	AvgMoodAfter    *float64 `json:"avg_mood_after"`
	MoodImprovement *float64 `json:"mood_improvement"`
}

// SummarizeJournal averages mood before and after over the entries inside w.
// The improvement is the difference of the two averages and is nil unless both exist.
func SummarizeJournal(entries []*entity.JournalEntry, w Window) JournalSummary {
	sum := JournalSummary{Window: w}
	var before, after []int
	for _, j := range entries {
		if !w.Contains(j.Date) {
			continue
		}
		sum.Count++
		if j.MoodBefore != nil {
			before = append(before, *j.MoodBefore)
		}
		if j.MoodAfter != nil {
			after = append(after, *j.MoodAfter)
		}
	}
	sum.AvgMoodBefore = mean(before)
	sum.AvgMoodAfter = mean(after)
	if sum.AvgMoodBefore != nil && sum.AvgMoodAfter != nil {
		delta := round2(*sum.AvgMoodAfter - *sum.AvgMoodBefore)
		sum.MoodImprovement = &delta
	}
	return sum
}
