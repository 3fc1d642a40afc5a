package analytics

import (
	"math/big"
	"testing"

	"github.com/Isha-commits965/wellness-tracker-backend/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mood(date string, score int, energy, stress *int) *entity.MoodEntry {
	return &entity.MoodEntry{Date: d(date), MoodScore: score, EnergyLevel: energy, StressLevel: stress}
}

func ptr(v int) *int { return &v }

func TestNewWindow(t *testing.T) {
	w, err := NewWindow(d("2024-03-01"), d("2024-03-07"))
	require.NoError(t, err)
	assert.Equal(t, 7, w.Days())

	w, err = NewWindow(d("2024-03-01"), d("2024-03-01"))
	require.NoError(t, err)
	assert.Equal(t, 1, w.Days())

	_, err = NewWindow(d("2024-03-07"), d("2024-03-01"))
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = NewWindow(entity.Date{}, d("2024-03-01"))
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestLastDays(t *testing.T) {
	w, err := LastDays(d("2024-03-31"), 30)
	require.NoError(t, err)
	assert.Equal(t, d("2024-03-01"), w.Start)
	assert.Equal(t, d("2024-03-31"), w.End)

	_, err = LastDays(d("2024-03-31"), -1)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestComputeTrend_FiltersAndOrdersAscending(t *testing.T) {
	entries := []*entity.MoodEntry{
		mood("2024-03-05", 6, nil, nil),
		mood("2024-02-28", 2, nil, nil),
		mood("2024-03-01", 8, ptr(7), nil),
		mood("2024-03-08", 9, nil, nil),
		mood("2024-03-03", 5, nil, ptr(4)),
	}
	w, err := NewWindow(d("2024-03-01"), d("2024-03-07"))
	require.NoError(t, err)

	got := ComputeTrend(entries, w)
	require.Len(t, got, 3)
	assert.Equal(t, d("2024-03-01"), got[0].Date)
	assert.Equal(t, d("2024-03-03"), got[1].Date)
	assert.Equal(t, d("2024-03-05"), got[2].Date)
	assert.Equal(t, ptr(7), got[0].EnergyLevel)
	assert.Equal(t, ptr(4), got[1].StressLevel)
}

func TestComputeTrend_Empty(t *testing.T) {
	w, err := NewWindow(d("2024-03-01"), d("2024-03-07"))
	require.NoError(t, err)
	got := ComputeTrend([]*entity.MoodEntry{mood("2024-01-01", 5, nil, nil)}, w)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSummarize_EmptyIsAbsentNotZero(t *testing.T) {
	s := Summarize(nil)
	assert.Nil(t, s.AvgMood)
	assert.Nil(t, s.AvgEnergy)
	assert.Nil(t, s.AvgStress)
	assert.Equal(t, 0, s.Count)
	assert.Empty(t, s.Distribution)

	w, err := NewWindow(d("2024-03-01"), d("2024-03-07"))
	require.NoError(t, err)
	s = SummarizeWindow([]*entity.MoodEntry{mood("2024-04-01", 5, nil, nil)}, w)
	assert.Nil(t, s.AvgMood)
	assert.Equal(t, 0, s.Count)
}

func TestSummarize_Rounding(t *testing.T) {
	tests := []struct {
		name   string
		scores []int
		want   float64
	}{
		{"exact half", []int{7, 8}, 7.5},
		{"repeating rounds up", []int{7, 8, 8}, 7.67},
		{"repeating rounds down", []int{7, 7, 8}, 7.33},
		{"single", []int{4}, 4},
		// 41/40 = 1.025 is not representable in binary
		{"midpoint over forty entries", append(repeat(1, 39), 2), 1.03},
		{"midpoint 87/40", append(repeat(2, 33), 3, 3, 3, 3, 3, 3, 3), 2.18},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var entries []*entity.MoodEntry
			for i, s := range tt.scores {
				entries = append(entries, mood(d("2024-03-01").AddDays(i).String(), s, nil, nil))
			}
			got := Summarize(entries)
			require.NotNil(t, got.AvgMood)
			assert.Equal(t, tt.want, *got.AvgMood)
		})
	}
}

func repeat(v, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func TestRatio_MatchesExactHalfUp(t *testing.T) {
	half := big.NewRat(1, 2)
	for n := 1; n <= 120; n++ {
		for sum := 0; sum <= 10*n; sum++ {
			exact := new(big.Rat).SetFrac64(int64(sum*100), int64(n))
			q := new(big.Int).Quo(exact.Num(), exact.Denom())
			frac := new(big.Rat).Sub(exact, new(big.Rat).SetInt(q))
			if frac.Cmp(half) >= 0 {
				q.Add(q, big.NewInt(1))
			}
			want := float64(q.Int64()) / 100

			if got := ratio(sum, n, 2); got != want {
				t.Fatalf("ratio(%d, %d, 2) = %v, want %v", sum, n, got, want)
			}
		}
	}
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 0.0, percent(3, 0))
	assert.Equal(t, 33.3, percent(1, 3))
	assert.Equal(t, 66.7, percent(2, 3))
	// 1/16 = 6.25%
	assert.Equal(t, 6.3, percent(1, 16))
	assert.Equal(t, 100.0, percent(7, 7))
}

func TestRound_HalfUp(t *testing.T) {
	assert.Equal(t, 0.13, round2(0.125))
	assert.Equal(t, 2.5, round(2.45, 1))
	assert.Equal(t, 3.0, round(2.5, 0))
}

func TestSummarize_OptionalFieldDenominators(t *testing.T) {
	entries := []*entity.MoodEntry{
		mood("2024-03-01", 6, ptr(4), nil),
		mood("2024-03-02", 8, nil, ptr(3)),
		mood("2024-03-03", 8, ptr(5), nil),
	}
	s := Summarize(entries)
	assert.Equal(t, 3, s.Count)
	require.NotNil(t, s.AvgMood)
	assert.Equal(t, 7.33, *s.AvgMood)
	require.NotNil(t, s.AvgEnergy)
	assert.Equal(t, 4.5, *s.AvgEnergy)
	require.NotNil(t, s.AvgStress)
	assert.Equal(t, 3.0, *s.AvgStress)
	assert.Equal(t, map[int]int{6: 1, 8: 2}, s.Distribution)
}
