package timeplan

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-06-04")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-04", d.String())
	assert.Equal(t, 3, d.ISOWeekday()) // a Wednesday

	_, err = ParseDate("04/06/2025")
	assert.Error(t, err)
}

func TestISOWeekdaySundayIsSeven(t *testing.T) {
	d := NewDate(2025, time.June, 1) // Sunday
	assert.Equal(t, 7, d.ISOWeekday())
	assert.Equal(t, 1, d.AddDays(1).ISOWeekday()) // Monday
}

func TestAddDaysAcrossMonth(t *testing.T) {
	d := NewDate(2025, time.June, 1)
	assert.Equal(t, "2025-05-31", d.AddDays(-1).String())
	assert.Equal(t, "2025-07-01", d.AddDays(30).String())
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2025, time.February, 15)
	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-02-15"`, string(b))

	var out DateOnly
	require.NoError(t, json.Unmarshal([]byte(`"2025-02-15"`), &out))
	assert.True(t, out.EqualDate(d))
}

func TestClockParseAndFormat(t *testing.T) {
	ct, err := ParseClock("10:00")
	require.NoError(t, err)
	assert.Equal(t, 600, ct.Minutes)
	assert.Equal(t, "10:00", ct.String())

	// driver may hand back seconds
	ct, err = ParseClock("23:45:00")
	require.NoError(t, err)
	assert.Equal(t, "23:45", ct.String())

	_, err = ParseClock("25:00")
	assert.Error(t, err)
	assert.False(t, IsValidClockString("9:00"))
	assert.False(t, IsValidClockString("nope!"))
	assert.True(t, IsValidClockString("09:00"))
}

func TestAddHours(t *testing.T) {
	start := NewClock(10, 0)
	assert.Equal(t, "11:30", start.AddHours(1.5).String())
	assert.Equal(t, "10:45", start.AddHours(0.75).String())
}

func TestAddHoursWrapsWithinDay(t *testing.T) {
	late := NewClock(23, 0)
	// minute-of-day arithmetic mod 1440, no date rollover
	assert.Equal(t, "00:30", late.AddHours(1.5).String())
	assert.Equal(t, "23:00", late.AddHours(24).String())
}

func TestClockSQLValue(t *testing.T) {
	v, err := NewClock(9, 5).Value()
	require.NoError(t, err)
	assert.Equal(t, "09:05:00", v)
}
