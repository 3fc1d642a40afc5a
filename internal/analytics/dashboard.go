package analytics

import (
	"github.com/Isha-commits965/wellness-tracker-backend/internal/domain/entity"
)

// TodaySummary is habit progress on the reference date
type TodaySummary struct {
	HabitsCompleted int     `json:"habits_completed"`
	HabitsTotal     int     `json:"habits_total"`
	CompletionRate  float64 `json:"completion_rate"`
}

// MoodSnapshot is the mood entry of the reference date. Recorded is false and
// every score nil when there is none.
type MoodSnapshot struct {
	Recorded    bool `json:"recorded"`
	MoodScore   *int `json:"mood_score"`
	EnergyLevel *int `json:"energy_level"`
	StressLevel *int `json:"stress_level"`
}

// JournalSnapshot is the journal entry of the reference date
type JournalSnapshot struct {
	Written         bool `json:"written"`
	MoodBefore      *int `json:"mood_before"`
	MoodAfter       *int `json:"mood_after"`
	MoodImprovement *int `json:"mood_improvement"`
}

// Dashboard is the single-day overview
type Dashboard struct {
	Date    entity.Date     `json:"date"`
	Today   TodaySummary    `json:"today"`
	Week    PeriodStats     `json:"week"`
	Mood    MoodSnapshot    `json:"mood"`
	Journal JournalSnapshot `json:"journal"`
	Streaks []HabitStreak   `json:"streaks"`
}

// ComposeDashboard builds the overview of ref from the snapshot
func ComposeDashboard(s Snapshot, ref entity.Date, policy StreakPolicy) Dashboard {
	active := s.activeHabits()
	today := Window{Start: ref, End: ref}
	completed := s.completedIn(today, active)

	d := Dashboard{
		Date: ref,
		Today: TodaySummary{
			HabitsCompleted: completed,
			HabitsTotal:     len(active),
			CompletionRate:  percent(completed, len(active)),
		},
		Week:    SummarizePeriod(s, WeekOf(ref)),
		Streaks: HabitStreaks(s.Habits, s.CheckIns, ref, policy),
	}

	for _, m := range s.Moods {
		if m.Date == ref {
			d.Mood = MoodSnapshot{
				Recorded:    true,
				MoodScore:   intPtr(m.MoodScore),
				EnergyLevel: m.EnergyLevel,
				StressLevel: m.StressLevel,
			}
			break
		}
	}

	for _, j := range s.Journals {
		if j.Date == ref {
			d.Journal = JournalSnapshot{
				Written:         true,
				MoodBefore:      j.MoodBefore,
				MoodAfter:       j.MoodAfter,
				MoodImprovement: j.MoodImprovement(),
			}
			break
		}
	}

	return d
}

func intPtr(v int) *int { return &v }
