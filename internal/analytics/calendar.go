package analytics

import (
	"github.com/Isha-commits965/wellness-tracker-backend/internal/domain/entity"
)

// CalendarDay is one cell of the month grid
type CalendarDay struct {
	Date            entity.Date `json:"date"`
	HabitsCompleted int         `json:"habits_completed"`
	HabitsTotal     int         `json:"habits_total"`
	MoodScore       *int        `json:"mood_score"`
	HasJournal      bool        `json:"has_journal"`
	MoodImprovement *int        `json:"mood_improvement"`
}

// CalendarMonth holds a record for every day of the month, in order
type CalendarMonth struct {
	Year  int           `json:"year"`
	Month int           `json:"month"`
	Days  []CalendarDay `json:"days"`
}

// Calendar builds the month grid. Days with no activity are present with zero
// counts and nil markers.
func Calendar(s Snapshot, year, month int) (CalendarMonth, error) {
	p, err := MonthOf(year, month)
	if err != nil {
		return CalendarMonth{}, err
	}

	days := make([]CalendarDay, p.Days())
	for i := range days {
		days[i].Date = p.Start.AddDays(i)
	}
	cell := func(d entity.Date) *CalendarDay {
		if !p.Contains(d) {
			return nil
		}
		return &days[d.DaysSince(p.Start)]
	}

	active := s.activeHabits()
	seen := make(map[habitDay]struct{})
	for _, c := range s.CheckIns {
		if _, ok := active[c.HabitID]; !ok {
			continue
		}
		day := cell(c.Date)
		if day == nil {
			continue
		}
		key := habitDay{c.HabitID, c.Date}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		day.HabitsTotal++
		if c.Completed {
			day.HabitsCompleted++
		}
	}

	for _, m := range s.Moods {
		if day := cell(m.Date); day != nil {
			score := m.MoodScore
			day.MoodScore = &score
		}
	}

	for _, j := range s.Journals {
		if day := cell(j.Date); day != nil {
			day.HasJournal = true
			day.MoodImprovement = j.MoodImprovement()
		}
	}

	return CalendarMonth{Year: year, Month: month, Days: days}, nil
}
