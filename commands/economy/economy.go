// Package economy implements the money side of the bot: earning, moving,
// stealing, and spending coins.
package economy

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"RayBot/bot"
	"RayBot/commands"
	"RayBot/metrics"
	"RayBot/offers"
)

// Cooldown kinds recorded on user documents.
const (
	kindWork  = "work"
	kindCrime = "crime"
	kindRob   = "rob"
)

// Component custom IDs shared by the offer dialogs.
const (
	customIDOfferMenu    = "offerSelect"
	customIDCancelButton = "cancelButton"
)

var offerValues = []string{"offerOne", "offerTwo", "offerThree"}
var optionEmotes = []string{commands.EmoteOption1, commands.EmoteOption2, commands.EmoteOption3}

// offerEmbed lists the three proposals as numbered fields.
func offerEmbed(title, prompt string, offs []offers.Offer) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Color: commands.ColorWarm,
		Title: title,
	}
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:  prompt,
		Value: "You have 30 seconds to decide!",
	})
	for n, o := range offs {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  optionEmotes[n] + " " + o.Title,
			Value: o.Description,
		})
	}
	return embed
}

// offerComponents builds the select menu plus a cancel button.
func offerComponents(placeholder string, offs []offers.Offer) []discordgo.MessageComponent {
	var options []discordgo.SelectMenuOption
	for n, o := range offs {
		options = append(options, discordgo.SelectMenuOption{
			Label:       o.Title,
			Value:       offerValues[n],
			Description: descriptionFor(o),
		})
	}

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.SelectMenu{
					MenuType:    discordgo.StringSelectMenu,
					CustomID:    customIDOfferMenu,
					Placeholder: placeholder,
					Options:     options,
				},
			},
		},
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Cancel",
					Style:    discordgo.DangerButton,
					CustomID: customIDCancelButton,
				},
			},
		},
	}
}

func descriptionFor(o offers.Offer) string {
	if o.CooldownHours == 1 {
		return "Cooldown: 1 hour"
	}
	return fmt.Sprintf("Cooldown: %d hours", o.CooldownHours)
}

// chosenOffer maps the component interaction back to an offer. picked is
// false when the user hit cancel; an interaction that is neither a known menu
// value nor the cancel button is an error, since the components on the
// message can't produce one.
func chosenOffer(i *discordgo.InteractionCreate, offs []offers.Offer) (offer offers.Offer, picked bool, err error) {
	data := i.MessageComponentData()
	if data.CustomID == customIDCancelButton {
		return offers.Offer{}, false, nil
	}
	if data.CustomID == customIDOfferMenu && len(data.Values) > 0 {
		for n, v := range offerValues {
			if v == data.Values[0] && n < len(offs) {
				return offs[n], true, nil
			}
		}
	}
	return offers.Offer{}, false, fmt.Errorf("unexpected offer component %q %v", data.CustomID, data.Values)
}

// fail logs the error and replaces the reply with the generic apology.
func fail(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate, command string, err error) {
	metrics.CommandErrorsTotal.WithLabelValues(command).Inc()
	b.Log.Error().Err(err).Str("command", command).Msg("command failed")
	commands.Edit(s, i, commands.ResultEmbed(commands.ColorError,
		commands.EmoteNo+" That's not right!",
		"Looks like there was an issue with the command!"))
}
