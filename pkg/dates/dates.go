// Package dates converts between API date strings and gorm date columns.
package dates

import (
	"fmt"
	"time"

	"gorm.io/datatypes"
)

var layouts = []string{
	time.DateOnly,
	time.RFC3339,
	time.RFC3339Nano,
}

// Parse accepts YYYY-MM-DD or an RFC 3339 timestamp and keeps the date part.
func Parse(s string) (datatypes.Date, error) {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return datatypes.Date(time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)), nil
		}
	}
	return datatypes.Date{}, fmt.Errorf("invalid date %q", s)
}

// ParseOptional returns nil for nil or empty input.
func ParseOptional(s *string) (*datatypes.Date, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	d, err := Parse(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Format renders d as YYYY-MM-DD.
func Format(d datatypes.Date) string {
	return time.Time(d).Format(time.DateOnly)
}

func FormatOptional(d *datatypes.Date) *string {
	if d == nil {
		return nil
	}
	s := Format(*d)
	return &s
}

// Before reports whether a is strictly earlier than b.
func Before(a, b datatypes.Date) bool {
	return time.Time(a).Before(time.Time(b))
}
