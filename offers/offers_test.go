package offers

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewJobBounds(t *testing.T) {
	for n := 0; n < 200; n++ {
		o := NewJob(500, 700, 2)

		assert.GreaterOrEqual(t, o.Pay, 500)
		assert.LessOrEqual(t, o.Pay, 700)
		assert.Equal(t, 500, o.BasePay)
		assert.GreaterOrEqual(t, o.ExpReward, 100)
		assert.LessOrEqual(t, o.ExpReward, 200)
		assert.False(t, o.Risky)
	}
}

func TestNewJobFillsTemplate(t *testing.T) {
	for n := 0; n < 200; n++ {
		o := NewJob(500, 700, 2)

		assert.NotEmpty(t, o.Title)
		assert.NotEmpty(t, o.Description)
		assert.False(t, strings.Contains(o.Description, "%position%"),
			"description still has the placeholder: %s", o.Description)
	}
}

func TestNewCrimeIsRisky(t *testing.T) {
	for n := 0; n < 200; n++ {
		o := NewCrime(1000, 1200, 5)

		assert.True(t, o.Risky)
		assert.GreaterOrEqual(t, o.OutcomeDraw, 0.0)
		assert.Less(t, o.OutcomeDraw, 1.0)
		assert.GreaterOrEqual(t, o.Pay, 1000)
		assert.LessOrEqual(t, o.Pay, 1200)
	}
}

func TestCooldownDuration(t *testing.T) {
	o := NewJob(500, 700, 8)
	assert.Equal(t, 8*time.Hour, o.CooldownDuration())
}
