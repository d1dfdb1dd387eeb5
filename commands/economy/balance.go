package economy

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"RayBot/bot"
	"RayBot/commands"
)

func init() {
	commands.Register(&commands.SlashCommand{
		Name:        "balance",
		Description: "Check how many coins you have!",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "user",
				Description: "Whose balance to check (yours if omitted)",
			},
		},
		Handler: Balance,
	})
}

// Balance shows the three money pools and their total, for the caller or for
// whoever they point it at.
func Balance(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	if err := commands.Defer(s, i); err != nil {
		b.Log.Error().Err(err).Msg("defer balance reply")
		return
	}

	ctx := context.Background()
	user := commands.User(i)
	if opt, ok := commands.Options(i)["user"]; ok {
		user = opt.UserValue(s)
	}
	account, err := b.Users.GetOrCreate(ctx, user.ID, user.Username)
	if err != nil {
		fail(b, s, i, "balance", err)
		return
	}

	commands.Edit(s, i, &discordgo.MessageEmbed{
		Color: commands.ColorWarm,
		Title: fmt.Sprintf("%s's balance", account.Username),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Cash", Value: fmt.Sprintf("%s%d", commands.EmoteCoin, account.Balance.Cash), Inline: true},
			{Name: "Bank", Value: fmt.Sprintf("%s%d", commands.EmoteCoin, account.Balance.Bank), Inline: true},
			{Name: "Card", Value: fmt.Sprintf("%s%d", commands.EmoteCoin, account.Balance.Card), Inline: true},
			{Name: "Net worth", Value: fmt.Sprintf("%s%d", commands.EmoteCoin, account.Balance.Total())},
		},
	})
}
