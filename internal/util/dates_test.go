package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSameDayRespectsLocation(t *testing.T) {
	shanghai, err := time.LoadLocation("Asia/Shanghai")
	if err != nil {
		t.Skip("tzdata unavailable")
	}

	// 23:00 UTC on Sep 9 is already Sep 10 in Shanghai.
	late := time.Date(2025, 9, 9, 23, 0, 0, 0, time.UTC)
	next := time.Date(2025, 9, 10, 1, 0, 0, 0, time.UTC)

	assert.False(t, SameDay(late, next, time.UTC))
	assert.True(t, SameDay(late, next, shanghai))
}

func TestSameDaySameInstant(t *testing.T) {
	now := time.Date(2025, 9, 9, 12, 30, 0, 0, time.UTC)
	assert.True(t, SameDay(now, now.Add(5*time.Hour), time.UTC))
	assert.False(t, SameDay(now, now.Add(12*time.Hour), time.UTC))
}

func TestParseDay(t *testing.T) {
	day := ParseDay("2025-09-09", time.UTC)
	assert.Equal(t, 2025, day.Year())
	assert.Equal(t, time.September, day.Month())
	assert.Equal(t, 9, day.Day())

	assert.True(t, ParseDay("09/09/2025", time.UTC).IsZero())
	assert.True(t, ParseDay("", time.UTC).IsZero())
}
