package experience

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"RayBot/bot"
	"RayBot/commands"
	"RayBot/dialog"
	"RayBot/metrics"
)

func init() {
	commands.Register(&commands.SlashCommand{
		Name:        "exchange",
		Description: "Trade your coins for experience!",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "amount",
				Description: "How many coins to trade in (10 coins per experience point)",
				Required:    true,
			},
		},
		Handler: Exchange,
	})
}

// Exchange rate: coins spent per experience point gained.
const coinsPerPoint = 10

const (
	customIDConfirmButton = "confirmButton"
	customIDCancelButton  = "cancelButton"
)

// Exchange converts cash into experience at a flat rate after a confirm
// prompt. Amounts that don't divide evenly are rounded down and the user is
// told before confirming.
func Exchange(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	if err := commands.Defer(s, i); err != nil {
		b.Log.Error().Err(err).Msg("defer exchange reply")
		return
	}

	ctx := context.Background()
	user := commands.User(i)
	amount := int(commands.Options(i)["amount"].IntValue())

	cashAmount, expAmount := tradeAmounts(amount)
	if expAmount <= 0 {
		commands.Edit(s, i, commands.ResultEmbed(commands.ColorError,
			commands.EmoteNo+" Not enough to trade!",
			fmt.Sprintf("The exchange rate is %s%d per %s1.", commands.EmoteCoin, coinsPerPoint, commands.EmoteXP)))
		return
	}

	account, err := b.Users.GetOrCreate(ctx, user.ID, user.Username)
	if err != nil {
		fail(b, s, i, "exchange", err)
		return
	}

	if cashAmount > account.Balance.Cash {
		commands.Edit(s, i, commands.ResultEmbed(commands.ColorError,
			commands.EmoteNo+" Not enough cash!",
			fmt.Sprintf("That trade costs %s%d but you only have %s%d on hand.",
				commands.EmoteCoin, cashAmount, commands.EmoteCoin, account.Balance.Cash)))
		return
	}

	d, err := b.Dialogs.Open(user.ID, "exchange")
	if errors.Is(err, dialog.ErrBusy) {
		commands.Edit(s, i, commands.ResultEmbed(commands.ColorError,
			commands.EmoteNo+" One trade at a time!",
			"You already have an exchange waiting for confirmation."))
		return
	}
	defer d.Close()

	embed := &discordgo.MessageEmbed{
		Color: commands.ColorWarm,
		Title: "Experience exchange",
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:  commands.EmoteMaybe + " Confirm your trade",
				Value: fmt.Sprintf("Trade %s%d for %s%d?", commands.EmoteCoin, cashAmount, commands.EmoteXP, expAmount),
			},
		},
	}
	if cashAmount != amount {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Heads up",
			Value: fmt.Sprintf("%s%d doesn't divide evenly, so the trade was rounded down.", commands.EmoteCoin, amount),
		})
	}

	msg, err := commands.Edit(s, i, embed,
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Confirm",
					Style:    discordgo.SuccessButton,
					CustomID: customIDConfirmButton,
				},
				discordgo.Button{
					Label:    "Cancel",
					Style:    discordgo.DangerButton,
					CustomID: customIDCancelButton,
				},
			},
		})
	if err != nil {
		fail(b, s, i, "exchange", err)
		return
	}
	d.Bind(msg.ID)

	choice, ok := d.Await()
	if !ok {
		metrics.DialogsTotal.WithLabelValues("exchange", "timeout").Inc()
		commands.Edit(s, i, tradeCanceledEmbed())
		return
	}
	d.Close()

	if choice.MessageComponentData().CustomID != customIDConfirmButton {
		metrics.DialogsTotal.WithLabelValues("exchange", "canceled").Inc()
		commands.Edit(s, i, tradeCanceledEmbed())
		return
	}
	metrics.DialogsTotal.WithLabelValues("exchange", "resolved").Inc()

	account.Balance.Cash -= cashAmount
	account.Experience.Add(expAmount)

	if err := b.Users.Save(ctx, account); err != nil {
		fail(b, s, i, "exchange", err)
		return
	}

	commands.Edit(s, i, commands.ResultEmbed(commands.ColorNeutral,
		commands.EmoteYes+" Trade complete!",
		fmt.Sprintf("You traded %s%d for %s%d. You're now level %d!",
			commands.EmoteCoin, cashAmount, commands.EmoteXP, expAmount, account.Experience.Level)))
}

// tradeAmounts converts a requested coin spend into the coins actually
// charged and the experience gained, rounding down to a whole point.
func tradeAmounts(requested int) (cash, exp int) {
	exp = requested / coinsPerPoint
	if exp < 0 {
		exp = 0
	}
	return exp * coinsPerPoint, exp
}

// tradeCanceledEmbed is the terminal reply when the trade wasn't confirmed,
// on cancel and on timeout alike.
func tradeCanceledEmbed() *discordgo.MessageEmbed {
	return commands.ResultEmbed(commands.ColorNeutral,
		commands.EmoteMaybe+" Trade canceled!",
		"Your coins stayed put.")
}
