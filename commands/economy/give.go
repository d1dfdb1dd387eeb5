package economy

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"RayBot/bot"
	"RayBot/commands"
)

func init() {
	commands.Register(&commands.SlashCommand{
		Name:        "give",
		Description: "Give some of your cash to another user!",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "user",
				Description: "Who to give coins to",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "amount",
				Description: "How many coins to give",
				Required:    true,
			},
		},
		Handler: Give,
	})
}

// Give transfers cash between two accounts. Only cash on hand moves; the
// recipient gets it as cash too.
func Give(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	if err := commands.Defer(s, i); err != nil {
		b.Log.Error().Err(err).Msg("defer give reply")
		return
	}

	ctx := context.Background()
	user := commands.User(i)
	opts := commands.Options(i)
	targetUser := opts["user"].UserValue(s)
	amount := int(opts["amount"].IntValue())

	if targetUser.ID == user.ID {
		commands.Edit(s, i, commands.ResultEmbed(commands.ColorError,
			commands.EmoteNo+" That's just moving coins around!",
			"You can't give coins to yourself."))
		return
	}
	account, err := b.Users.GetOrCreate(ctx, user.ID, user.Username)
	if err != nil {
		fail(b, s, i, "give", err)
		return
	}

	target, err := b.Users.GetOrCreate(ctx, targetUser.ID, targetUser.Username)
	if err != nil {
		fail(b, s, i, "give", err)
		return
	}

	switch err := movePool(&account.Balance.Cash, &target.Balance.Cash, amount); {
	case errors.Is(err, errNoAmount):
		commands.Edit(s, i, commands.ResultEmbed(commands.ColorError,
			commands.EmoteNo+" Invalid amount!",
			"You'll have to give at least "+commands.EmoteCoin+"1."))
		return
	case errors.Is(err, errInsufficient):
		commands.Edit(s, i, commands.ResultEmbed(commands.ColorError,
			commands.EmoteNo+" Not enough cash!",
			fmt.Sprintf("You only have %s%d on hand.", commands.EmoteCoin, account.Balance.Cash)))
		return
	}

	if err := b.Users.Save(ctx, account); err != nil {
		fail(b, s, i, "give", err)
		return
	}
	if err := b.Users.Save(ctx, target); err != nil {
		fail(b, s, i, "give", err)
		return
	}

	commands.Edit(s, i, commands.ResultEmbed(commands.ColorNeutral,
		commands.EmoteYes+" Coins given!",
		fmt.Sprintf("You gave %s%d to **%s**. How generous!", commands.EmoteCoin, amount, target.Username)))
}
