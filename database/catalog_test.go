package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validSeed = `{
  "categories": [
    {
      "id": "ammo",
      "name": "Ammo",
      "description": "Charges and rounds for your laser",
      "emote": "🔸",
      "items": [
        {"id": "bc", "name": "Basic Charges", "type": "ammo", "price": 100, "emote": "🔸", "accuracy": 0.65, "damage": 1, "rounds": 10}
      ]
    }
  ]
}`

func TestParseSeed(t *testing.T) {
	store, err := ParseSeed([]byte(validSeed))
	require.NoError(t, err)

	assert.Equal(t, "global", store.ID)
	require.Len(t, store.Categories, 1)
	cat := store.Categories[0]
	assert.Equal(t, "ammo", cat.ID)
	require.Len(t, cat.Items, 1)
	assert.Equal(t, "bc", cat.Items[0].ID)
	assert.Equal(t, 100, cat.Items[0].Price)
	assert.Equal(t, 10, cat.Items[0].Rounds)
}

func TestParseSeedRejectsUnknownType(t *testing.T) {
	seed := `{"categories": [{"id": "x", "name": "X", "description": "d", "emote": "e",
		"items": [{"id": "i", "name": "I", "type": "gadget", "price": 100, "emote": "e"}]}]}`

	_, err := ParseSeed([]byte(seed))
	assert.Error(t, err)
}

func TestParseSeedRejectsFreeItems(t *testing.T) {
	seed := `{"categories": [{"id": "x", "name": "X", "description": "d", "emote": "e",
		"items": [{"id": "i", "name": "I", "type": "food", "price": 0, "emote": "e"}]}]}`

	_, err := ParseSeed([]byte(seed))
	assert.Error(t, err)
}

func TestParseSeedRejectsEmptyCatalog(t *testing.T) {
	_, err := ParseSeed([]byte(`{"categories": []}`))
	assert.Error(t, err)
}

func TestParseSeedRejectsBadJSON(t *testing.T) {
	_, err := ParseSeed([]byte(`{"categories": [`))
	assert.Error(t, err)
}
