package experience

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"RayBot/commands"
)

func TestTradeAmountsFloorsToRate(t *testing.T) {
	cash, exp := tradeAmounts(105)
	assert.Equal(t, 100, cash)
	assert.Equal(t, 10, exp)

	cash, exp = tradeAmounts(100)
	assert.Equal(t, 100, cash)
	assert.Equal(t, 10, exp)

	cash, exp = tradeAmounts(10)
	assert.Equal(t, 10, cash)
	assert.Equal(t, 1, exp)
}

func TestTradeAmountsBelowRate(t *testing.T) {
	cash, exp := tradeAmounts(9)
	assert.Equal(t, 0, cash)
	assert.Equal(t, 0, exp)

	cash, exp = tradeAmounts(0)
	assert.Equal(t, 0, cash)
	assert.Equal(t, 0, exp)

	cash, exp = tradeAmounts(-50)
	assert.Equal(t, 0, cash)
	assert.Equal(t, 0, exp)
}

func TestTradeCanceledEmbedIsNeutral(t *testing.T) {
	embed := tradeCanceledEmbed()

	assert.Equal(t, commands.ColorNeutral, embed.Color)
	assert.Len(t, embed.Fields, 1)
}
