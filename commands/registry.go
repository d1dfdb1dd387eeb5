package commands

import (
	"github.com/bwmarrin/discordgo"

	"RayBot/bot"
	"RayBot/metrics"
)

// HandlerFunc is the signature for slash command handlers.
type HandlerFunc func(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate)

// SlashCommand pairs a command's registration schema with its handler.
type SlashCommand struct {
	Name        string
	Description string
	Options     []*discordgo.ApplicationCommandOption
	Handler     HandlerFunc
}

var registry = make(map[string]*SlashCommand)

// Register adds a command to the registry. Called from each command file's
// init.
func Register(cmd *SlashCommand) {
	registry[cmd.Name] = cmd
}

// All returns the application command schemas for bulk registration.
func All() []*discordgo.ApplicationCommand {
	var cmds []*discordgo.ApplicationCommand
	for _, cmd := range registry {
		cmds = append(cmds, &discordgo.ApplicationCommand{
			Name:        cmd.Name,
			Description: cmd.Description,
			Options:     cmd.Options,
		})
	}
	return cmds
}

// Dispatch routes an application command interaction to its handler.
func Dispatch(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	name := i.ApplicationCommandData().Name
	cmd, ok := registry[name]
	if !ok {
		b.Log.Warn().Str("command", name).Msg("unknown slash command")
		return
	}

	// Bots can't hold accounts, so any user option resolving to one ends
	// the interaction before the handler runs.
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Type != discordgo.ApplicationCommandOptionUser {
			continue
		}
		if target := opt.UserValue(s); target != nil && target.Bot {
			s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
				Type: discordgo.InteractionResponseChannelMessageWithSource,
				Data: &discordgo.InteractionResponseData{
					Embeds: []*discordgo.MessageEmbed{ResultEmbed(ColorError,
						EmoteNo+" Not a valid user!",
						"I'm sorry to say this but I'm unable to allow bots to participate in these commands! Please select a different user.")},
					Flags: discordgo.MessageFlagsEphemeral,
				},
			})
			return
		}
	}

	metrics.CommandsTotal.WithLabelValues(name).Inc()

	defer func() {
		if r := recover(); r != nil {
			metrics.CommandErrorsTotal.WithLabelValues(name).Inc()
			b.Log.Error().Str("command", name).Interface("panic", r).Msg("command handler panicked")
			Edit(s, i, ResultEmbed(ColorError, EmoteNo+" That's not right!",
				"Looks like there was an issue with the command!"))
		}
	}()

	cmd.Handler(b, s, i)
}
