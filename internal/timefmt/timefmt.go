// Package timefmt normalizes the heterogeneous date and time-of-day strings
// produced by attendance terminals and legacy clients into canonical forms:
// dates as YYYY-MM-DD and times of day as HH:MM:SS.
package timefmt

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	apperrors "roster-backend/internal/errors"
)

const (
	// DateLayout is the one canonical calendar-date format accepted and emitted.
	DateLayout = "2006-01-02"
	// TimeLayout is the canonical time-of-day format.
	TimeLayout = "15:04:05"
)

var (
	fullTimeRe    = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}$`)
	hourMinuteRe  = regexp.MustCompile(`^\d{2}:\d{2}$`)
	shortHourRe   = regexp.MustCompile(`^\d{1}:\d{2}$`)
	canonicalDate = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// NormalizeTime converts a free-form time-of-day string to HH:MM:SS.
// Accepted shapes: HH:MM:SS (unchanged), HH:MM and H:MM (seconds padded,
// single-digit hours zero-padded). Minutes must always be two digits, so
// "9:5" is rejected.
func NormalizeTime(t string) (string, error) {
	t = strings.TrimSpace(t)
	if t == "" {
		return "", apperrors.ErrMissingTime
	}

	switch {
	case fullTimeRe.MatchString(t):
		return t, nil
	case hourMinuteRe.MatchString(t):
		return t + ":00", nil
	case shortHourRe.MatchString(t):
		return "0" + t + ":00", nil
	}

	return "", fmt.Errorf("%w: %q", apperrors.ErrInvalidTimeFormat, t)
}

// ParseDate parses a canonical YYYY-MM-DD calendar date. The resulting time
// carries midnight UTC; it is a date container, not an instant.
func ParseDate(d string) (time.Time, error) {
	d = strings.TrimSpace(d)
	if !canonicalDate.MatchString(d) {
		return time.Time{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidDateFormat, d)
	}
	parsed, err := time.ParseInLocation(DateLayout, d, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidDateFormat, d)
	}
	return parsed, nil
}

// FormatDate renders a calendar date in the canonical YYYY-MM-DD form.
func FormatDate(d time.Time) string {
	return d.Format(DateLayout)
}

// Combine places a time-of-day onto a calendar date. Hours and minutes (and
// seconds when explicit) are set in a UTC container; callers must treat the
// result as wall clock held in UTC, not as a true UTC instant.
func Combine(date time.Time, t string) (time.Time, error) {
	normalized, err := NormalizeTime(t)
	if err != nil {
		return time.Time{}, err
	}
	tod, err := time.Parse(TimeLayout, normalized)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidTimeFormat, t)
	}
	return time.Date(date.Year(), date.Month(), date.Day(),
		tod.Hour(), tod.Minute(), tod.Second(), 0, time.UTC), nil
}
