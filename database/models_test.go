package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExperienceAddLevelsUp(t *testing.T) {
	e := Experience{Level: 1, NextLevelPoints: 100}

	e.Add(100)

	assert.Equal(t, 2, e.Level)
	assert.Equal(t, 400, e.NextLevelPoints)
	assert.Equal(t, 100, e.Points)
}

func TestExperienceAddWalksSeveralLevels(t *testing.T) {
	e := Experience{Level: 1, NextLevelPoints: 100}

	e.Add(10000)

	// Hitting a threshold exactly crosses it: 10000 is level 11's floor.
	assert.Equal(t, 11, e.Level)
	assert.Equal(t, 12100, e.NextLevelPoints)
}

func TestExperienceAddLevelsDown(t *testing.T) {
	e := Experience{Points: 450, Level: 3, NextLevelPoints: 900}

	e.Add(-400)

	assert.Equal(t, 50, e.Points)
	assert.Equal(t, 1, e.Level)
	assert.Equal(t, 100, e.NextLevelPoints)
}

func TestExperienceAddClampsAtZero(t *testing.T) {
	e := Experience{Points: 50, Level: 1, NextLevelPoints: 100}

	e.Add(-500)

	assert.Equal(t, 0, e.Points)
	assert.Equal(t, 1, e.Level)
	assert.Equal(t, 100, e.NextLevelPoints)
}

func TestExperienceThresholdInvariant(t *testing.T) {
	e := Experience{Level: 1, NextLevelPoints: 100}
	deltas := []int{30, 500, -200, 12345, -9999, 777}

	for _, d := range deltas {
		e.Add(d)

		assert.Equal(t, e.Level*e.Level*100, e.NextLevelPoints)
		assert.Less(t, e.Points, e.NextLevelPoints)
		if e.Level > 1 {
			assert.GreaterOrEqual(t, e.Points, (e.Level-1)*(e.Level-1)*100)
		}
	}
}

func TestBalanceTotal(t *testing.T) {
	b := Balance{Cash: 100, Bank: 250, Card: 50}
	assert.Equal(t, 400, b.Total())
}

func TestNewUserDefaults(t *testing.T) {
	u := NewUser("123", "ray")

	assert.Equal(t, "123", u.ID)
	assert.Equal(t, 1, u.Experience.Level)
	assert.Equal(t, 100, u.Experience.NextLevelPoints)
	assert.Equal(t, 0, u.Balance.Total())
	assert.Nil(t, u.Cooldown("work"))
}

func TestSetCooldownReplacesSameKind(t *testing.T) {
	u := NewUser("123", "ray")
	first := time.Now().Add(time.Hour)
	second := time.Now().Add(2 * time.Hour)

	u.SetCooldown("work", first, "chan1")
	u.SetCooldown("crime", first, "chan1")
	u.SetCooldown("work", second, "chan2")

	assert.Len(t, u.Cooldowns, 2)
	cd := u.Cooldown("work")
	assert.NotNil(t, cd)
	assert.Equal(t, second, cd.EndTime)
	assert.Equal(t, "chan2", cd.ChannelID)
}

func TestClearCooldown(t *testing.T) {
	u := NewUser("123", "ray")
	u.SetCooldown("work", time.Now().Add(time.Hour), "chan1")
	u.SetCooldown("rob", time.Now().Add(time.Hour), "chan1")

	u.ClearCooldown("work")

	assert.Nil(t, u.Cooldown("work"))
	assert.NotNil(t, u.Cooldown("rob"))
}

func TestAddItemCreatesCategoryAndStacks(t *testing.T) {
	u := NewUser("123", "ray")
	item := StoreItem{ID: "bc", Name: "Basic Charges", Type: ItemAmmo, Price: 100, Emote: "🔸", Rounds: 10}

	u.AddItem(item, 2)
	u.AddItem(item, 3)

	assert.Len(t, u.Inventory, 1)
	cat := u.Inventory[0]
	assert.Equal(t, ItemAmmo, cat.ID)
	assert.Len(t, cat.Items, 1)
	assert.Equal(t, 5, cat.Items[0].Amount)
	assert.Equal(t, 20, cat.Items[0].Worth)
}

func TestAddItemSeparateKinds(t *testing.T) {
	u := NewUser("123", "ray")

	u.AddItem(StoreItem{ID: "bc", Name: "Basic Charges", Type: ItemAmmo, Price: 100}, 1)
	u.AddItem(StoreItem{ID: "ws", Name: "Wooden Shield", Type: ItemShield, Price: 150}, 1)

	assert.Len(t, u.Inventory, 2)
	assert.Equal(t, ItemAmmo, u.Inventory[0].ID)
	assert.Equal(t, ItemShield, u.Inventory[1].ID)
}

func TestStoreLookups(t *testing.T) {
	s := Store{Categories: []StoreCategory{
		{ID: "ammo", Items: []StoreItem{{ID: "bc"}, {ID: "hc"}}},
		{ID: "food", Items: []StoreItem{{ID: "on"}}},
	}}

	assert.NotNil(t, s.Item("on"))
	assert.Nil(t, s.Item("nope"))
	assert.NotNil(t, s.Category("food"))
	assert.Nil(t, s.Category("nope"))
}
