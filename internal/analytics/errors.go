// Package analytics derives streaks, trends and period rollups from a user's
// habit, mood and journal history. Every function is a pure computation over
// the snapshot and reference date it is given; nothing here reads the clock,
// touches storage or logs.
package analytics

import (
	"errors"
	"math"
)

var (
	// ErrInvalidArgument is returned for malformed windows and period parameters
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDataIntegrity is returned when fetched history breaks the one-entry-per-day
	// or score-range rules
	ErrDataIntegrity = errors.New("data integrity violation")
)

// round rounds half away from zero to the given number of decimals
func round(x float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(x*p) / p
}

func round2(x float64) float64 { return round(x, 2) }

// ratio returns num/den rounded half up to the given number of decimals.
// It works on integers so midpoints such as 41/40 = 1.025 are not lost to
// binary representation. num must be >= 0 and den > 0.
func ratio(num, den, places int) float64 {
	scale := 1
	for i := 0; i < places; i++ {
		scale *= 10
	}
	q := (2*num*scale + den) / (2 * den)
	return float64(q) / float64(scale)
}

// percent returns part/whole as a percentage with one decimal, 0 when whole is 0
func percent(part, whole int) float64 {
	if whole <= 0 {
		return 0
	}
	return ratio(part*100, whole, 1)
}

// mean returns the average of non-negative values rounded to two decimals,
// or nil when there are none
func mean(values []int) *float64 {
	if len(values) == 0 {
		return nil
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	avg := ratio(sum, len(values), 2)
	return &avg
}
