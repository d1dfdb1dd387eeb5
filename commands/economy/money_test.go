package economy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"RayBot/database"
)

func TestMovePoolConservesTotal(t *testing.T) {
	b := database.Balance{Cash: 300, Bank: 50}

	require.NoError(t, movePool(&b.Cash, &b.Bank, 120))

	assert.Equal(t, 180, b.Cash)
	assert.Equal(t, 170, b.Bank)
	assert.Equal(t, 350, b.Total())
}

func TestMovePoolExactBalance(t *testing.T) {
	b := database.Balance{Cash: 300}

	require.NoError(t, movePool(&b.Cash, &b.Bank, 300))

	assert.Equal(t, 0, b.Cash)
	assert.Equal(t, 300, b.Bank)
}

func TestMovePoolRejectsZeroAndNegative(t *testing.T) {
	b := database.Balance{Cash: 300, Bank: 50}

	assert.ErrorIs(t, movePool(&b.Cash, &b.Bank, 0), errNoAmount)
	assert.ErrorIs(t, movePool(&b.Cash, &b.Bank, -10), errNoAmount)
	assert.Equal(t, 300, b.Cash)
	assert.Equal(t, 50, b.Bank)
}

func TestMovePoolRejectsOverdraft(t *testing.T) {
	b := database.Balance{Cash: 300, Bank: 50}

	assert.ErrorIs(t, movePool(&b.Cash, &b.Bank, 301), errInsufficient)
	assert.Equal(t, 300, b.Cash)
	assert.Equal(t, 50, b.Bank)
}

func TestMovePoolBetweenUsers(t *testing.T) {
	giver := database.Balance{Cash: 500}
	taker := database.Balance{Cash: 20}

	require.NoError(t, movePool(&giver.Cash, &taker.Cash, 200))

	assert.Equal(t, 300, giver.Cash)
	assert.Equal(t, 220, taker.Cash)
	assert.Equal(t, 520, giver.Total()+taker.Total())
}
