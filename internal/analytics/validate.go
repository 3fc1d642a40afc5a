package analytics

import (
	"fmt"

	"github.com/Isha-commits965/wellness-tracker-backend/internal/domain/entity"
)

// ValidateSnapshot checks the history fetched for one user before it is aggregated
func ValidateSnapshot(s Snapshot) error {
	if err := ValidateCheckIns(s.CheckIns); err != nil {
		return err
	}
	if err := ValidateMoods(s.Moods); err != nil {
		return err
	}
	return ValidateJournals(s.Journals)
}

// ValidateCheckIns rejects two check-ins for the same habit and day
func ValidateCheckIns(checkIns []*entity.CheckIn) error {
	seen := make(map[habitDay]struct{}, len(checkIns))
	for _, c := range checkIns {
		key := habitDay{c.HabitID, c.Date}
		if _, dup := seen[key]; dup {
			return fmt.Errorf("%w: duplicate check-in for habit %s on %s", ErrDataIntegrity, c.HabitID, c.Date)
		}
		seen[key] = struct{}{}
	}
	return nil
}

// ValidateMoods rejects duplicate days and scores outside 1-10
func ValidateMoods(entries []*entity.MoodEntry) error {
	seen := make(map[entity.Date]struct{}, len(entries))
	for _, e := range entries {
		if _, dup := seen[e.Date]; dup {
			return fmt.Errorf("%w: duplicate mood entry on %s", ErrDataIntegrity, e.Date)
		}
		seen[e.Date] = struct{}{}

		if err := checkScore("mood_score", &e.MoodScore, e.Date); err != nil {
			return err
		}
		if err := checkScore("energy_level", e.EnergyLevel, e.Date); err != nil {
			return err
		}
		if err := checkScore("stress_level", e.StressLevel, e.Date); err != nil {
			return err
		}
	}
	return nil
}

// ValidateJournals rejects duplicate days and mood ratings outside 1-10
func ValidateJournals(entries []*entity.JournalEntry) error {
	seen := make(map[entity.Date]struct{}, len(entries))
	for _, j := range entries {
		if _, dup := seen[j.Date]; dup {
			return fmt.Errorf("%w: duplicate journal entry on %s", ErrDataIntegrity, j.Date)
		}
		seen[j.Date] = struct{}{}

		if err := checkScore("mood_before", j.MoodBefore, j.Date); err != nil {
			return err
		}
		if err := checkScore("mood_after", j.MoodAfter, j.Date); err != nil {
			return err
		}
	}
	return nil
}

func checkScore(field string, v *int, d entity.Date) error {
	if v == nil {
		return nil
	}
	if *v < entity.MinScore || *v > entity.MaxScore {
		return fmt.Errorf("%w: %s %d on %s is outside %d-%d", ErrDataIntegrity, field, *v, d, entity.MinScore, entity.MaxScore)
	}
	return nil
}
