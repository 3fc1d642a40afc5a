package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, time.February, d.Month())
	assert.Equal(t, 29, d.Day())
	assert.Equal(t, "2024-02-29", d.String())

	for _, bad := range []string{"", "2023-02-29", "2024/01/01", "2024-1-1", "yesterday"} {
		_, err := ParseDate(bad)
		assert.Error(t, err, bad)
	}
}

func TestDateOf_UsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	ts := time.Date(2024, 3, 10, 20, 0, 0, 0, time.UTC).In(loc)
	assert.Equal(t, MustParseDate("2024-03-11"), DateOf(ts))
}

func TestDate_Arithmetic(t *testing.T) {
	d := MustParseDate("2024-03-01")
	assert.Equal(t, MustParseDate("2024-02-29"), d.AddDays(-1))
	assert.Equal(t, MustParseDate("2025-03-01"), d.AddDays(365))
	assert.Equal(t, 1, d.DaysSince(MustParseDate("2024-02-29")))
	assert.Equal(t, -30, MustParseDate("2024-01-01").DaysSince(MustParseDate("2024-01-31")))

	assert.True(t, d.Between(d, d))
	assert.True(t, d.Between(d.AddDays(-1), d.AddDays(1)))
	assert.False(t, d.Between(d.AddDays(1), d.AddDays(2)))
	assert.Equal(t, -1, d.Compare(d.AddDays(1)))
	assert.Equal(t, 0, d.Compare(MustParseDate("2024-03-01")))
}

func TestDate_ComparableAsMapKey(t *testing.T) {
	a := DateOf(time.Date(2024, 3, 1, 23, 59, 0, 0, time.UTC))
	b := NewDate(2024, 3, 1)
	assert.True(t, a == b)

	m := map[Date]int{a: 1}
	assert.Equal(t, 1, m[b])
}

func TestDate_JSON(t *testing.T) {
	type payload struct {
		Date Date  `json:"date"`
		Opt  *Date `json:"opt"`
	}

	raw, err := json.Marshal(payload{Date: MustParseDate("2024-03-05")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2024-03-05","opt":null}`, string(raw))

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"date":"2024-12-31","opt":"2025-01-01"}`), &p))
	assert.Equal(t, MustParseDate("2024-12-31"), p.Date)
	require.NotNil(t, p.Opt)
	assert.Equal(t, MustParseDate("2025-01-01"), *p.Opt)

	assert.Error(t, json.Unmarshal([]byte(`{"date":"2024-13-01"}`), &p))
}

func TestDate_Scan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, MustParseDate("2024-03-05"), d)

	require.NoError(t, d.Scan("2024-04-01"))
	assert.Equal(t, MustParseDate("2024-04-01"), d)

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan(42))

	v, err := Date{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}
