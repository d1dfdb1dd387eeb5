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
		Name:        "deposit",
		Description: "Deposit your cash into the bank!",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "amount",
				Description: "How many coins to deposit (everything if omitted)",
			},
		},
		Handler: Deposit,
	})
}

// Deposit moves cash into the bank. Without an amount it moves everything on
// hand. Banked coins are safe from robbery.
func Deposit(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	if err := commands.Defer(s, i); err != nil {
		b.Log.Error().Err(err).Msg("defer deposit reply")
		return
	}

	ctx := context.Background()
	user := commands.User(i)
	account, err := b.Users.GetOrCreate(ctx, user.ID, user.Username)
	if err != nil {
		fail(b, s, i, "deposit", err)
		return
	}

	amount := account.Balance.Cash
	if opt, ok := commands.Options(i)["amount"]; ok {
		amount = int(opt.IntValue())
	}

	switch err := movePool(&account.Balance.Cash, &account.Balance.Bank, amount); {
	case errors.Is(err, errNoAmount):
		commands.Edit(s, i, commands.ResultEmbed(commands.ColorError,
			commands.EmoteNo+" Invalid amount!",
			"You'll need some cash on hand before you can deposit anything."))
		return
	case errors.Is(err, errInsufficient):
		commands.Edit(s, i, commands.ResultEmbed(commands.ColorError,
			commands.EmoteNo+" Not enough cash!",
			fmt.Sprintf("You only have %s%d on hand.", commands.EmoteCoin, account.Balance.Cash)))
		return
	}

	if err := b.Users.Save(ctx, account); err != nil {
		fail(b, s, i, "deposit", err)
		return
	}

	commands.Edit(s, i, commands.ResultEmbed(commands.ColorNeutral,
		commands.EmoteYes+" Deposit made!",
		fmt.Sprintf("You deposited %s%d into the bank. Your balance is now %s%d.",
			commands.EmoteCoin, amount, commands.EmoteCoin, account.Balance.Bank)))
}
