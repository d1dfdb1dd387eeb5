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
		Name:        "withdraw",
		Description: "Withdraw coins from your bank!",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "amount",
				Description: "How many coins to withdraw (everything if omitted)",
			},
		},
		Handler: Withdraw,
	})
}

// Withdraw moves banked coins back to cash on hand. Without an amount it
// empties the bank.
func Withdraw(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	if err := commands.Defer(s, i); err != nil {
		b.Log.Error().Err(err).Msg("defer withdraw reply")
		return
	}

	ctx := context.Background()
	user := commands.User(i)
	account, err := b.Users.GetOrCreate(ctx, user.ID, user.Username)
	if err != nil {
		fail(b, s, i, "withdraw", err)
		return
	}

	amount := account.Balance.Bank
	if opt, ok := commands.Options(i)["amount"]; ok {
		amount = int(opt.IntValue())
	}

	switch err := movePool(&account.Balance.Bank, &account.Balance.Cash, amount); {
	case errors.Is(err, errNoAmount):
		commands.Edit(s, i, commands.ResultEmbed(commands.ColorError,
			commands.EmoteNo+" Invalid amount!",
			"There's nothing in your bank to withdraw."))
		return
	case errors.Is(err, errInsufficient):
		commands.Edit(s, i, commands.ResultEmbed(commands.ColorError,
			commands.EmoteNo+" Not enough in the bank!",
			fmt.Sprintf("You only have %s%d banked.", commands.EmoteCoin, account.Balance.Bank)))
		return
	}

	if err := b.Users.Save(ctx, account); err != nil {
		fail(b, s, i, "withdraw", err)
		return
	}

	commands.Edit(s, i, commands.ResultEmbed(commands.ColorNeutral,
		commands.EmoteYes+" Withdrawal made!",
		fmt.Sprintf("You withdrew %s%d from the bank. You now have %s%d on hand.",
			commands.EmoteCoin, amount, commands.EmoteCoin, account.Balance.Cash)))
}
