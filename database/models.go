package database

import (
	"fmt"
	"time"
)

// Item kinds carried by the store and user inventories. Kind-specific fields
// live on the flat item structs below, discriminated by Type.
const (
	ItemAmmo   = "ammo"
	ItemShield = "shield"
	ItemFood   = "food"
)

// Balance holds the three pools of money a user can have.
type Balance struct {
	Cash int `bson:"cash"`
	Bank int `bson:"bank"`
	Card int `bson:"card"`
}

// Total is the user's net worth across all pools.
func (b Balance) Total() int {
	return b.Cash + b.Bank + b.Card
}

// Experience tracks leveling progress. NextLevelPoints is always level² × 100.
type Experience struct {
	Points          int `bson:"points"`
	Level           int `bson:"level"`
	NextLevelPoints int `bson:"nextLevelPoints"`
}

// Add applies a point delta and walks the level up or down until the points
// sit inside the current level's band again. The floor is level 1 with zero
// points; points can never go negative.
func (e *Experience) Add(points int) {
	e.Points += points
	if e.Points < 0 {
		e.Points = 0
	}

	for e.Points >= e.NextLevelPoints {
		e.Level++
		e.NextLevelPoints = e.Level * e.Level * 100
	}
	for e.Level > 1 && e.Points < (e.Level-1)*(e.Level-1)*100 {
		e.Level--
		e.NextLevelPoints = e.Level * e.Level * 100
	}
}

// Cooldown blocks a command until EndTime passes. ChannelID is where the
// "cooldown finished" notification gets delivered.
type Cooldown struct {
	Type      string    `bson:"type"`
	EndTime   time.Time `bson:"endTime"`
	ChannelID string    `bson:"channelId"`
}

// InventoryItem is an item owned by a user. Worth is what the item sells
// back for (a fifth of the store price at purchase time).
type InventoryItem struct {
	ID     string `bson:"_id"`
	Name   string `bson:"name"`
	Type   string `bson:"type"`
	Amount int    `bson:"amount"`
	Worth  int    `bson:"worth"`
	Emote  string `bson:"emote"`

	// Kind-specific fields, populated depending on Type.
	Accuracy   float64 `bson:"accuracy,omitempty"`
	Damage     float64 `bson:"damage,omitempty"`
	Rounds     int     `bson:"rounds,omitempty"`
	Health     int     `bson:"health,omitempty"`
	Strength   float64 `bson:"strength,omitempty"`
	HealthGain int     `bson:"healthGain,omitempty"`
	Buff       string  `bson:"buff,omitempty"`
}

// Description renders the inventory listing for the item.
func (it InventoryItem) Description() string {
	desc := fmt.Sprintf("Amount: %d\nCode: %s", it.Amount, it.ID)
	switch it.Type {
	case ItemAmmo:
		desc += fmt.Sprintf("\nAccuracy: %.0f%%\nDamage: x%g\nRounds: %d", it.Accuracy*100, it.Damage, it.Rounds)
	case ItemShield:
		desc += fmt.Sprintf("\nHealth: %dHP\nStrength: x%g", it.Health, it.Strength)
	case ItemFood:
		desc += fmt.Sprintf("\nHealth Gain: %dHP\nBuff: %s", it.HealthGain, it.Buff)
	}
	return desc
}

// InventoryCategory groups a user's items by kind.
type InventoryCategory struct {
	ID          string          `bson:"_id"`
	Name        string          `bson:"name"`
	Description string          `bson:"description"`
	Emote       string          `bson:"emote"`
	Items       []InventoryItem `bson:"items"`
}

// User is the per-user economy document, keyed by the Discord snowflake.
type User struct {
	ID         string              `bson:"_id"`
	Username   string              `bson:"username"`
	Balance    Balance             `bson:"balance"`
	Experience Experience          `bson:"experience"`
	Cooldowns  []Cooldown          `bson:"cooldowns"`
	Inventory  []InventoryCategory `bson:"inventory"`
}

// NewUser builds a fresh user document with zeroed balance and level 1.
func NewUser(id, username string) *User {
	return &User{
		ID:       id,
		Username: username,
		Experience: Experience{
			Level:           1,
			NextLevelPoints: 100,
		},
	}
}

// Cooldown returns the user's cooldown of the given kind, or nil.
func (u *User) Cooldown(kind string) *Cooldown {
	for i := range u.Cooldowns {
		if u.Cooldowns[i].Type == kind {
			return &u.Cooldowns[i]
		}
	}
	return nil
}

// SetCooldown records a cooldown of the given kind, replacing any existing
// entry of that kind so at most one is ever active.
func (u *User) SetCooldown(kind string, endTime time.Time, channelID string) {
	cd := Cooldown{Type: kind, EndTime: endTime, ChannelID: channelID}
	for i := range u.Cooldowns {
		if u.Cooldowns[i].Type == kind {
			u.Cooldowns[i] = cd
			return
		}
	}
	u.Cooldowns = append(u.Cooldowns, cd)
}

// ClearCooldown removes the user's cooldown of the given kind, if any.
func (u *User) ClearCooldown(kind string) {
	for i := range u.Cooldowns {
		if u.Cooldowns[i].Type == kind {
			u.Cooldowns = append(u.Cooldowns[:i], u.Cooldowns[i+1:]...)
			return
		}
	}
}

// Inventory category metadata per item kind, used when a user first picks up
// an item of that kind.
var kindCategories = map[string]InventoryCategory{
	ItemAmmo:   {ID: ItemAmmo, Name: "Ammo", Description: "Charges and rounds for your laser", Emote: "🔸"},
	ItemShield: {ID: ItemShield, Name: "Shields", Description: "Protection against incoming shots", Emote: "🛡️"},
	ItemFood:   {ID: ItemFood, Name: "Food", Description: "Snacks to keep your pet happy", Emote: "🍙"},
}

// AddItem merges the given store item into the user's inventory, creating the
// kind category on first pickup and stacking amounts on repeats.
func (u *User) AddItem(item StoreItem, amount int) {
	var category *InventoryCategory
	for i := range u.Inventory {
		if u.Inventory[i].ID == item.Type {
			category = &u.Inventory[i]
			break
		}
	}
	if category == nil {
		meta, ok := kindCategories[item.Type]
		if !ok {
			meta = InventoryCategory{ID: item.Type, Name: item.Type, Description: "Miscellaneous items", Emote: "📦"}
		}
		u.Inventory = append(u.Inventory, meta)
		category = &u.Inventory[len(u.Inventory)-1]
	}

	for i := range category.Items {
		if category.Items[i].ID == item.ID {
			category.Items[i].Amount += amount
			return
		}
	}

	category.Items = append(category.Items, InventoryItem{
		ID:         item.ID,
		Name:       item.Name,
		Type:       item.Type,
		Amount:     amount,
		Worth:      item.Price / 5,
		Emote:      item.Emote,
		Accuracy:   item.Accuracy,
		Damage:     item.Damage,
		Rounds:     item.Rounds,
		Health:     item.Health,
		Strength:   item.Strength,
		HealthGain: item.HealthGain,
		Buff:       item.Buff,
	})
}

// StoreItem is a purchasable catalog item. Same tagged-union layout as
// InventoryItem, with a price instead of an owned amount.
type StoreItem struct {
	ID    string `bson:"_id" json:"id"`
	Name  string `bson:"name" json:"name"`
	Type  string `bson:"type" json:"type"`
	Price int    `bson:"price" json:"price"`
	Emote string `bson:"emote" json:"emote"`

	Accuracy   float64 `bson:"accuracy,omitempty" json:"accuracy,omitempty"`
	Damage     float64 `bson:"damage,omitempty" json:"damage,omitempty"`
	Rounds     int     `bson:"rounds,omitempty" json:"rounds,omitempty"`
	Health     int     `bson:"health,omitempty" json:"health,omitempty"`
	Strength   float64 `bson:"strength,omitempty" json:"strength,omitempty"`
	HealthGain int     `bson:"healthGain,omitempty" json:"healthGain,omitempty"`
	Buff       string  `bson:"buff,omitempty" json:"buff,omitempty"`
}

// Description renders the store listing for the item.
func (it StoreItem) Description() string {
	desc := fmt.Sprintf("Price: %s%d\nCode: %s", EmoteCoin, it.Price, it.ID)
	switch it.Type {
	case ItemAmmo:
		desc += fmt.Sprintf("\nAccuracy: %.0f%%\nDamage: x%g\nRounds: %d", it.Accuracy*100, it.Damage, it.Rounds)
	case ItemShield:
		desc += fmt.Sprintf("\nHealth: %dHP\nStrength: x%g", it.Health, it.Strength)
	case ItemFood:
		desc += fmt.Sprintf("\nHealth Gain: %dHP\nBuff: %s", it.HealthGain, it.Buff)
	}
	return desc
}

// EmoteCoin is the currency emote used across listings and replies.
const EmoteCoin = "<:raycoin:684043360624705606>"

// StoreCategory is a named group of items in the catalog.
type StoreCategory struct {
	ID          string      `bson:"_id" json:"id"`
	Name        string      `bson:"name" json:"name"`
	Description string      `bson:"description" json:"description"`
	Emote       string      `bson:"emote" json:"emote"`
	Items       []StoreItem `bson:"items" json:"items"`
}

// Store is the global catalog document.
type Store struct {
	ID         string          `bson:"_id"`
	Categories []StoreCategory `bson:"categories"`
}

// Item looks an item up by its code across all categories.
func (s *Store) Item(code string) *StoreItem {
	for i := range s.Categories {
		for j := range s.Categories[i].Items {
			if s.Categories[i].Items[j].ID == code {
				return &s.Categories[i].Items[j]
			}
		}
	}
	return nil
}

// Category looks a category up by its ID.
func (s *Store) Category(id string) *StoreCategory {
	for i := range s.Categories {
		if s.Categories[i].ID == id {
			return &s.Categories[i]
		}
	}
	return nil
}
