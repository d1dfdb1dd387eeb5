// Package experience implements the leveling side of the bot.
package experience

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"RayBot/bot"
	"RayBot/commands"
	"RayBot/metrics"
)

func init() {
	commands.Register(&commands.SlashCommand{
		Name:        "level",
		Description: "Check your level and experience!",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "user",
				Description: "Whose level to check (yours if omitted)",
			},
		},
		Handler: Level,
	})
}

// Level shows experience points and progress to the next level, for the
// caller or for whoever they point it at.
func Level(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	if err := commands.Defer(s, i); err != nil {
		b.Log.Error().Err(err).Msg("defer level reply")
		return
	}

	ctx := context.Background()
	user := commands.User(i)
	if opt, ok := commands.Options(i)["user"]; ok {
		user = opt.UserValue(s)
	}
	account, err := b.Users.GetOrCreate(ctx, user.ID, user.Username)
	if err != nil {
		fail(b, s, i, "level", err)
		return
	}

	exp := account.Experience
	commands.Edit(s, i, &discordgo.MessageEmbed{
		Color: commands.ColorLevel,
		Title: fmt.Sprintf("%s's level", account.Username),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Level", Value: fmt.Sprintf("%d", exp.Level), Inline: true},
			{Name: "Experience", Value: fmt.Sprintf("%s%d", commands.EmoteXP, exp.Points), Inline: true},
			{Name: "Next level", Value: fmt.Sprintf("%s%d to go", commands.EmoteXP, exp.NextLevelPoints-exp.Points)},
		},
	})
}

func fail(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate, command string, err error) {
	metrics.CommandErrorsTotal.WithLabelValues(command).Inc()
	b.Log.Error().Err(err).Str("command", command).Msg("command failed")
	commands.Edit(s, i, commands.ResultEmbed(commands.ColorError,
		commands.EmoteNo+" That's not right!",
		"Looks like there was an issue with the command!"))
}
