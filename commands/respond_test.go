package commands

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatTimer(t *testing.T) {
	assert.Equal(t, "00:00:00", FormatTimer(0))
	assert.Equal(t, "00:00:59", FormatTimer(59*time.Second))
	assert.Equal(t, "00:01:40", FormatTimer(100*time.Second))
	assert.Equal(t, "02:05:09", FormatTimer(2*time.Hour+5*time.Minute+9*time.Second))
	assert.Equal(t, "26:00:00", FormatTimer(26*time.Hour))
}

func TestFormatTimerClampsNegative(t *testing.T) {
	assert.Equal(t, "00:00:00", FormatTimer(-5*time.Second))
}
