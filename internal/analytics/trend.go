package analytics

import (
	"fmt"
	"slices"

	"github.com/Isha-commits965/wellness-tracker-backend/internal/domain/entity"
)

// Window is an inclusive range of calendar days
type Window struct {
	Start entity.Date `json:"start_date"`
	End   entity.Date `json:"end_date"`
}

// NewWindow validates that start and end are set and ordered
func NewWindow(start, end entity.Date) (Window, error) {
	if start.IsZero() || end.IsZero() {
		return Window{}, fmt.Errorf("%w: window bounds are required", ErrInvalidArgument)
	}
	if end.Before(start) {
		return Window{}, fmt.Errorf("%w: window end %s is before start %s", ErrInvalidArgument, end, start)
	}
	return Window{Start: start, End: end}, nil
}

// LastDays returns [ref-days, ref]
func LastDays(ref entity.Date, days int) (Window, error) {
	if days < 0 {
		return Window{}, fmt.Errorf("%w: days must not be negative, got %d", ErrInvalidArgument, days)
	}
	return NewWindow(ref.AddDays(-days), ref)
}

// Contains reports whether d falls inside the window
func (w Window) Contains(d entity.Date) bool {
	return d.Between(w.Start, w.End)
}

// Days returns the number of calendar days covered
func (w Window) Days() int {
	return w.End.DaysSince(w.Start) + 1
}

// TrendPoint is one day of the mood series
type TrendPoint struct {
	Date        entity.Date `json:"date"`
	MoodScore   int         `json:"mood_score"`
	EnergyLevel *int        `json:"energy_level"`
	StressLevel *int        `json:"stress_level"`
}

// ComputeTrend returns the entries inside w in ascending date order
func ComputeTrend(entries []*entity.MoodEntry, w Window) []TrendPoint {
	points := make([]TrendPoint, 0, len(entries))
	for _, e := range entries {
		if !w.Contains(e.Date) {
			continue
		}
		points = append(points, TrendPoint{
			Date:        e.Date,
			MoodScore:   e.MoodScore,
			EnergyLevel: e.EnergyLevel,
			StressLevel: e.StressLevel,
		})
	}
	slices.SortStableFunc(points, func(a, b TrendPoint) int { return a.Date.Compare(b.Date) })
	return points
}

// MoodSummary aggregates a set of mood entries. Averages are nil when no entry
// carries the field.
type MoodSummary struct {
	AvgMood      *float64    `json:"avg_mood"`
	AvgEnergy    *float64    `json:"avg_energy"`
	AvgStress    *float64    `json:"avg_stress"`
	Count        int         `json:"count"`
	Distribution map[int]int `json:"mood_distribution"`
}

// Summarize averages every entry it is given
func Summarize(entries []*entity.MoodEntry) MoodSummary {
	var moods, energy, stress []int
	dist := make(map[int]int)
	for _, e := range entries {
		moods = append(moods, e.MoodScore)
		dist[e.MoodScore]++
		if e.EnergyLevel != nil {
			energy = append(energy, *e.EnergyLevel)
		}
		if e.StressLevel != nil {
			stress = append(stress, *e.StressLevel)
		}
	}

	return MoodSummary{
		AvgMood:      mean(moods),
		AvgEnergy:    mean(energy),
		AvgStress:    mean(stress),
		Count:        len(entries),
		Distribution: dist,
	}
}

// SummarizeWindow summarizes only the entries inside w
func SummarizeWindow(entries []*entity.MoodEntry, w Window) MoodSummary {
	return Summarize(filterMoods(entries, w))
}

func filterMoods(entries []*entity.MoodEntry, w Window) []*entity.MoodEntry {
	var out []*entity.MoodEntry
	for _, e := range entries {
		if w.Contains(e.Date) {
			out = append(out, e)
		}
	}
	return out
}

// MoodTrend is a charted window of mood readings with its summary
type MoodTrend struct {
	Window
	Points  []TrendPoint `json:"points"`
	Summary MoodSummary  `json:"summary"`
}

// BuildMoodTrend charts and summarizes the entries inside w
func BuildMoodTrend(entries []*entity.MoodEntry, w Window) MoodTrend {
	return MoodTrend{
		Window:  w,
		Points:  ComputeTrend(entries, w),
		Summary: SummarizeWindow(entries, w),
	}
}

// MoodPeriod is the summary of a window without the series
type MoodPeriod struct {
	Window
	MoodSummary
}
