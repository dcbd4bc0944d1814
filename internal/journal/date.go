package journal

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire format of every calendar date in the app.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string into midnight UTC of that day.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

// FormatDate renders t's calendar date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Civil strips the time of day from t, read in t's own location, and returns
// that calendar day as midnight UTC. UTC days are always 24h long, so AddDate
// and Sub on civil values never drift across DST transitions.
func Civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today returns now's calendar date as YYYY-MM-DD.
func Today(now time.Time) string {
	return FormatDate(Civil(now))
}
