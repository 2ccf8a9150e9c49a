package timeplan

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"
)

const minutesPerDay = 24 * 60

// ClockTime is a wall-clock time of day stored as minute-of-day (0..1439).
// Wire format "HH:MM", Postgres TIME on the storage side.
type ClockTime struct {
	Minutes int
}

func NewClock(hour, minute int) ClockTime {
	return ClockTime{Minutes: hour*60 + minute}
}

// ParseClock reads "HH:MM" (also tolerates "HH:MM:SS" from the driver).
func ParseClock(s string) (ClockTime, error) {
	var ct ClockTime
	return ct, ct.parse(s)
}

func (ct *ClockTime) parse(s string) error {
	s = strings.TrimSpace(s)
	layout := "15:04"
	if len(s) == 8 { // "HH:MM:SS"
		layout = "15:04:05"
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return err
	}
	ct.Minutes = t.Hour()*60 + t.Minute()
	return nil
}

// IsValidClockString reports whether s is a well-formed "HH:MM".
func IsValidClockString(s string) bool {
	if len(strings.TrimSpace(s)) != 5 {
		return false
	}
	_, err := ParseClock(s)
	return err == nil
}

func (ct ClockTime) Hour() int   { return ct.Minutes / 60 }
func (ct ClockTime) Minute() int { return ct.Minutes % 60 }

func (ct ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", ct.Hour(), ct.Minute())
}

// AddHours adds a fractional-hour duration, wrapping within the day
// (mod 1440). No calendar rollover is produced: 23:00 + 1.5h = 00:30.
func (ct ClockTime) AddHours(hours float64) ClockTime {
	add := int(math.Round(hours * 60))
	m := (ct.Minutes + add) % minutesPerDay
	if m < 0 {
		m += minutesPerDay
	}
	return ClockTime{Minutes: m}
}

// Scan accepts time.Time, string or []byte from the driver.
func (ct *ClockTime) Scan(v any) error {
	switch x := v.(type) {
	case time.Time:
		ct.Minutes = x.Hour()*60 + x.Minute()
		return nil
	case []byte:
		return ct.parse(string(x))
	case string:
		return ct.parse(x)
	case nil:
		ct.Minutes = 0
		return nil
	default:
		return fmt.Errorf("clocktime: unsupported Scan type %T", v)
	}
}

// Value sends "HH:MM:SS" so Postgres TIME accepts it.
func (ct ClockTime) Value() (driver.Value, error) {
	return fmt.Sprintf("%02d:%02d:00", ct.Hour(), ct.Minute()), nil
}

func (ClockTime) GormDataType() string { return "time" }

func (ct ClockTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(ct.String())
}

func (ct *ClockTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	return ct.parse(s)
}
