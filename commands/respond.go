package commands

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
)

// Embed colors used across all replies.
const (
	ColorWarm    = 0xffc27e // in-progress and info replies
	ColorError   = 0xff7a90 // rejections and failures
	ColorNeutral = 0x80dbb5 // cancellations and happy endings
	ColorLevel   = 0xc77eff // experience displays
)

// Custom emotes used in reply text.
const (
	EmoteCoin    = "<:raycoin:684043360624705606>"
	EmoteXP      = "<:xpbulb:575143722086432782>"
	EmoteYes     = "<:yes:785336714566172714>"
	EmoteNo      = "<:no:785336733696262154>"
	EmoteMaybe   = "<:maybe:785336724850737153>"
	EmoteOption1 = "<:option1:785555664856547378>"
	EmoteOption2 = "<:option2:785555675144257536>"
	EmoteOption3 = "<:option3:785555684799938630>"
)

// Defer acknowledges the interaction so the handler has time to hit the
// database before replying.
func Defer(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
}

// Edit replaces the deferred reply with the given embed and strips any
// components unless new ones are passed.
func Edit(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed, components ...discordgo.MessageComponent) (*discordgo.Message, error) {
	embeds := []*discordgo.MessageEmbed{embed}
	if components == nil {
		components = []discordgo.MessageComponent{}
	}
	return s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Embeds:     &embeds,
		Components: &components,
	})
}

// ResultEmbed builds the single-field embed shape used for nearly every
// reply.
func ResultEmbed(color int, name, value string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Color: color,
		Fields: []*discordgo.MessageEmbedField{
			{Name: name, Value: value},
		},
	}
}

// User returns the invoking user whether the interaction came from a guild
// or a DM.
func User(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}

// Options collects the interaction's options by name.
func Options(i *discordgo.InteractionCreate) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	opts := i.ApplicationCommandData().Options
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(opts))
	for _, opt := range opts {
		m[opt.Name] = opt
	}
	return m
}

// NotifyChannelID is where cooldown-finished notifications for this
// interaction should go: the invoking channel, or the user themselves when
// there isn't one.
func NotifyChannelID(i *discordgo.InteractionCreate) string {
	if i.ChannelID != "" {
		return i.ChannelID
	}
	return User(i).ID
}

// FormatTimer renders a duration as an hh:mm:ss countdown.
func FormatTimer(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}
