package offers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuccessChanceCenteredOnLevelTen(t *testing.T) {
	assert.InDelta(t, 0.65, SuccessChance(10), 1e-9)
}

func TestSuccessChanceStaysInBand(t *testing.T) {
	prev := 0.0
	for level := 1; level <= 100; level++ {
		c := SuccessChance(level)
		assert.Greater(t, c, 0.5)
		assert.Less(t, c, 0.8)
		assert.Greater(t, c, prev, "chance should rise with level")
		prev = c
	}
}

func TestRobSuccessChanceEqualLevels(t *testing.T) {
	assert.InDelta(t, 0.8, RobSuccessChance(20, 20), 1e-9)
}

func TestRobSuccessChanceFallsWithDistance(t *testing.T) {
	near := RobSuccessChance(50, 45)
	far := RobSuccessChance(50, 10)
	assert.Greater(t, near, far)
}

// A slightly lower-level actor gets the underdog bonus stacked on near-equal
// levels, pushing the chance above the crime ceiling. Intentional.
func TestRobSuccessChanceUnderdogExceedsBand(t *testing.T) {
	assert.Greater(t, RobSuccessChance(9, 10), 0.8)
}

func TestResolveSafeOfferAlwaysSucceeds(t *testing.T) {
	o := NewJob(500, 700, 2)

	// Level 1 has the worst odds; a safe offer must not care.
	out := Resolve(o, 1)

	assert.True(t, out.Success)
	assert.Equal(t, o.Pay, out.Cash)
	assert.Equal(t, o.ExpReward, out.Exp)
}

func TestResolveCrimeSuccessPaysLevelBonus(t *testing.T) {
	o := NewCrime(500, 700, 2)
	o.OutcomeDraw = 0

	out := Resolve(o, 12)

	assert.True(t, out.Success)
	assert.Equal(t, o.Pay+10*12, out.Cash)
	assert.Equal(t, o.ExpReward, out.Exp)
}

func TestResolveCrimeFailureCostsPay(t *testing.T) {
	o := NewCrime(500, 700, 2)
	o.OutcomeDraw = 1

	out := Resolve(o, 12)

	assert.False(t, out.Success)
	assert.Equal(t, -o.Pay, out.Cash)
	assert.Equal(t, -o.ExpReward, out.Exp)
}
