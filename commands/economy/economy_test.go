package economy

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"RayBot/commands"
	"RayBot/offers"
)

func offerClick(customID string, values ...string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionMessageComponent,
			Data: discordgo.MessageComponentInteractionData{
				CustomID: customID,
				Values:   values,
			},
		},
	}
}

func TestChosenOfferMapsMenuValues(t *testing.T) {
	offs := []offers.Offer{
		offers.NewJob(500, 700, 2),
		offers.NewJob(1000, 1200, 5),
		offers.NewJob(1500, 1700, 8),
	}

	for n, v := range offerValues {
		offer, picked, err := chosenOffer(offerClick(customIDOfferMenu, v), offs)
		require.NoError(t, err)
		require.True(t, picked)
		assert.Equal(t, offs[n], offer)
	}
}

func TestChosenOfferCancelButton(t *testing.T) {
	offs := []offers.Offer{offers.NewJob(500, 700, 2)}

	_, picked, err := chosenOffer(offerClick(customIDCancelButton), offs)

	require.NoError(t, err)
	assert.False(t, picked)
}

func TestChosenOfferUnknownValueIsAnError(t *testing.T) {
	offs := []offers.Offer{offers.NewJob(500, 700, 2)}

	_, picked, err := chosenOffer(offerClick(customIDOfferMenu, "offerNine"), offs)
	assert.Error(t, err)
	assert.False(t, picked)

	_, picked, err = chosenOffer(offerClick("someOtherButton"), offs)
	assert.Error(t, err)
	assert.False(t, picked)

	_, picked, err = chosenOffer(offerClick(customIDOfferMenu), offs)
	assert.Error(t, err)
	assert.False(t, picked)
}

func TestChosenOfferValueBeyondOffers(t *testing.T) {
	// Two offers on the message, a click claiming the third slot.
	offs := []offers.Offer{
		offers.NewJob(500, 700, 2),
		offers.NewJob(1000, 1200, 5),
	}

	_, picked, err := chosenOffer(offerClick(customIDOfferMenu, offerValues[2]), offs)

	assert.Error(t, err)
	assert.False(t, picked)
}

func TestCanceledEmbedsAreNeutral(t *testing.T) {
	for _, embed := range []*discordgo.MessageEmbed{
		workCanceledEmbed(),
		crimeCanceledEmbed(),
		storeClosedEmbed(),
		inventoryClosedEmbed(),
	} {
		assert.Equal(t, commands.ColorNeutral, embed.Color)
		require.Len(t, embed.Fields, 1)
		assert.NotEmpty(t, embed.Fields[0].Name)
		assert.NotEmpty(t, embed.Fields[0].Value)
	}
}
