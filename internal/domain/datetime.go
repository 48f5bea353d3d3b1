package domain

import (
	"fmt"
	"time"
)

// Schedule timestamp layouts used by the dataset and the API. Schedule
// times carry no zone; all comparisons happen on the naive timeline.
const (
	DateTimeLayout = "2006-01-02T15:04:05"
	DateLayout     = "2006-01-02"
)

// DateTime is a schedule timestamp in the dataset's bare layout. It embeds
// time.Time for arithmetic and comparison, and overrides the JSON form so
// no zone suffix ever appears on the wire.
type DateTime struct {
	time.Time
}

// ParseDateTime parses a timestamp in the DateTimeLayout form.
func ParseDateTime(s string) (DateTime, error) {
	parsed, err := time.Parse(DateTimeLayout, s)
	if err != nil {
		return DateTime{}, fmt.Errorf("parse date-time %q: %w", s, err)
	}
	return DateTime{Time: parsed}, nil
}

// ParseDate parses a day-granular date in the DateLayout form.
func ParseDate(s string) (time.Time, error) {
	parsed, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return parsed, nil
}

// String renders the timestamp in the dataset layout.
func (d DateTime) String() string {
	return d.Format(DateTimeLayout)
}

// MarshalJSON renders the timestamp as a quoted DateTimeLayout string.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON parses a quoted DateTimeLayout string.
func (d *DateTime) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("parse date-time: expected a quoted string, got %s", data)
	}
	parsed, err := ParseDateTime(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
