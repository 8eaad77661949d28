package timefmt_test

import (
	"errors"
	"testing"
	"time"

	apperrors "roster-backend/internal/errors"
	"roster-backend/internal/timefmt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTime(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
		wantErr  error
	}{
		{name: "full HH:MM:SS unchanged", input: "09:05:30", expected: "09:05:30"},
		{name: "HH:MM gets seconds", input: "09:05", expected: "09:05:00"},
		{name: "single digit hour zero padded", input: "9:05", expected: "09:05:00"},
		{name: "surrounding whitespace trimmed", input: "  08:00  ", expected: "08:00:00"},
		{name: "single digit minute rejected", input: "9:5", wantErr: apperrors.ErrInvalidTimeFormat},
		{name: "missing minutes rejected", input: "09", wantErr: apperrors.ErrInvalidTimeFormat},
		{name: "am pm notation rejected", input: "9:05 AM", wantErr: apperrors.ErrInvalidTimeFormat},
		{name: "empty input is missing time", input: "", wantErr: apperrors.ErrMissingTime},
		{name: "whitespace only is missing time", input: "   ", wantErr: apperrors.ErrMissingTime},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := timefmt.NormalizeTime(tc.input)
			if tc.wantErr != nil {
				assert.True(t, errors.Is(err, tc.wantErr), "expected %v, got %v", tc.wantErr, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestParseDate(t *testing.T) {
	t.Run("canonical date", func(t *testing.T) {
		d, err := timefmt.ParseDate("2025-01-01")
		require.NoError(t, err)
		assert.Equal(t, 2025, d.Year())
		assert.Equal(t, time.January, d.Month())
		assert.Equal(t, 1, d.Day())
		assert.Equal(t, time.UTC, d.Location())
	})

	t.Run("legacy MM/DD/YYYY rejected", func(t *testing.T) {
		_, err := timefmt.ParseDate("01/31/2025")
		assert.True(t, errors.Is(err, apperrors.ErrInvalidDateFormat))
	})

	t.Run("impossible calendar date rejected", func(t *testing.T) {
		_, err := timefmt.ParseDate("2025-02-30")
		assert.True(t, errors.Is(err, apperrors.ErrInvalidDateFormat))
	})
}

func TestCombine(t *testing.T) {
	date, err := timefmt.ParseDate("2025-06-15")
	require.NoError(t, err)

	t.Run("minutes only, zero seconds", func(t *testing.T) {
		ts, err := timefmt.Combine(date, "08:30")
		require.NoError(t, err)
		assert.Equal(t, "2025-06-15T08:30:00Z", ts.Format(time.RFC3339))
	})

	t.Run("explicit seconds preserved", func(t *testing.T) {
		ts, err := timefmt.Combine(date, "23:59:59")
		require.NoError(t, err)
		assert.Equal(t, "2025-06-15T23:59:59Z", ts.Format(time.RFC3339))
	})

	t.Run("invalid time propagates", func(t *testing.T) {
		_, err := timefmt.Combine(date, "9:5")
		assert.True(t, errors.Is(err, apperrors.ErrInvalidTimeFormat))
	})
}
