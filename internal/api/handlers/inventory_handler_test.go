package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportRangeCoversWholeEndDay(t *testing.T) {
	start, end, err := reportRange("2026-03-01", "2026-03-14")

	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), start)

	// A row written in the final second of the end day, with sub-second
	// precision, is still inside the range.
	lastMoment := time.Date(2026, 3, 14, 23, 59, 59, 500_000_000, time.UTC)
	assert.False(t, lastMoment.After(end))

	// Midnight of the next day is outside.
	nextDay := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	assert.True(t, nextDay.After(end))
}

func TestReportRangeSingleDay(t *testing.T) {
	start, end, err := reportRange("2026-03-14", "2026-03-14")

	require.NoError(t, err)
	assert.True(t, end.After(start))
	assert.Equal(t, time.Date(2026, 3, 14, 23, 59, 59, 999_999_999, time.UTC), end)
}

func TestReportRangeRejectsMalformedDates(t *testing.T) {
	_, _, err := reportRange("14-03-2026", "2026-03-14")
	assert.Error(t, err)

	_, _, err = reportRange("2026-03-01", "tomorrow")
	assert.Error(t, err)
}
