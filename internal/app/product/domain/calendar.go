package domain

import (
	"strings"
	"time"

	"cloud.google.com/go/civil"
)

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

// ParseDate parses a calendar date. Both "2024-01-31" and full RFC 3339
// timestamps are accepted; for timestamps only the calendar part in the
// timestamp's own offset is kept. field names the input in the error.
func ParseDate(field, s string) (civil.Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return civil.Date{}, NewValidationError(field, "is required")
	}

	if d, err := civil.ParseDate(s); err == nil {
		return d, nil
	}

	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return civil.DateOf(t), nil
	}

	return civil.Date{}, NewValidationError(field, "must be a calendar date (YYYY-MM-DD)")
}

// ParseOptionalDate parses a date that may be absent. An empty string yields nil.
func ParseOptionalDate(field, s string) (*civil.Date, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	d, err := ParseDate(field, s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// DaysBetween returns the whole number of days from "from" to "to".
// The result is negative when "to" is earlier.
func DaysBetween(from, to civil.Date) int {
	return to.DaysSince(from)
}

func isZeroDate(d civil.Date) bool {
	return d == civil.Date{}
}
