package timeplan

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// DateOnly is a calendar date (no clock, no zone). Wire format "YYYY-MM-DD",
// Postgres DATE on the storage side.
type DateOnly struct{ time.Time }

func NewDate(year int, month time.Month, day int) DateOnly {
	return DateOnly{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateFrom truncates a time.Time to its calendar date.
func DateFrom(t time.Time) DateOnly {
	return NewDate(t.Year(), t.Month(), t.Day())
}

func Today() DateOnly { return DateFrom(time.Now()) }

// ParseDate reads "YYYY-MM-DD".
func ParseDate(s string) (DateOnly, error) {
	var d DateOnly
	return d, d.parse(s)
}

func (d *DateOnly) parse(s string) error {
	s = strings.TrimSpace(s)
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return err
	}
	d.Time = t.UTC()
	return nil
}

func (d DateOnly) String() string { return d.Format(dateLayout) }

// AddDays shifts the date by n calendar days (n may be negative).
func (d DateOnly) AddDays(n int) DateOnly {
	return DateFrom(d.AddDate(0, 0, n))
}

// Before/After/Equal compare by calendar date only.
func (d DateOnly) BeforeDate(o DateOnly) bool { return d.String() < o.String() }
func (d DateOnly) AfterDate(o DateOnly) bool  { return d.String() > o.String() }
func (d DateOnly) EqualDate(o DateOnly) bool  { return d.String() == o.String() }

// ISOWeekday: Monday=1 .. Sunday=7.
func (d DateOnly) ISOWeekday() int {
	wd := int(d.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// Scan accepts time.Time, string or []byte from the driver.
func (d *DateOnly) Scan(v any) error {
	switch x := v.(type) {
	case time.Time:
		*d = DateFrom(x)
		return nil
	case []byte:
		return d.parse(string(x))
	case string:
		return d.parse(x)
	case nil:
		d.Time = time.Time{}
		return nil
	default:
		return fmt.Errorf("dateonly: unsupported Scan type %T", v)
	}
}

func (d DateOnly) Value() (driver.Value, error) {
	if d.Time.IsZero() {
		return nil, nil
	}
	return d.Format(dateLayout), nil
}

func (DateOnly) GormDataType() string { return "date" }

func (d DateOnly) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return json.Marshal(nil)
	}
	return json.Marshal(d.Format(dateLayout))
}

func (d *DateOnly) UnmarshalJSON(b []byte) error {
	var s *string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == nil || strings.TrimSpace(*s) == "" {
		d.Time = time.Time{}
		return nil
	}
	return d.parse(*s)
}
