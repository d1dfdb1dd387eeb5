package economy

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"RayBot/bot"
	"RayBot/commands"
	"RayBot/dialog"
	"RayBot/metrics"
	"RayBot/offers"
)

func init() {
	commands.Register(&commands.SlashCommand{
		Name:        "crime",
		Description: "Commit a crime for a chance at bigger payouts!",
		Handler:     Crime,
	})
}

// Crime is the risky twin of Work: the same offer dialog, but the outcome is
// decided against a level-scaled success chance, and failure costs money and
// experience. The cooldown applies either way.
func Crime(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	if err := commands.Defer(s, i); err != nil {
		b.Log.Error().Err(err).Msg("defer crime reply")
		return
	}

	ctx := context.Background()
	user := commands.User(i)
	account, err := b.Users.GetOrCreate(ctx, user.ID, user.Username)
	if err != nil {
		fail(b, s, i, "crime", err)
		return
	}

	if cd := account.Cooldown(kindCrime); cd != nil {
		if time.Now().Before(cd.EndTime) {
			commands.Edit(s, i, commands.ResultEmbed(commands.ColorError,
				commands.EmoteNo+" Lay low for a while!",
				fmt.Sprintf("The heat is still on! You can commit another crime in %s.", commands.FormatTimer(time.Until(cd.EndTime)))))
			return
		}
		account.ClearCooldown(kindCrime)
	}

	d, err := b.Dialogs.Open(user.ID, kindCrime)
	if errors.Is(err, dialog.ErrBusy) {
		commands.Edit(s, i, commands.ResultEmbed(commands.ColorError,
			commands.EmoteNo+" One crime at a time!",
			"You're already casing a job. Decide on that one first."))
		return
	}
	defer d.Close()

	offs := []offers.Offer{
		offers.NewCrime(500, 700, 2),
		offers.NewCrime(1000, 1200, 5),
		offers.NewCrime(1500, 1700, 8),
	}

	chance := offers.SuccessChance(account.Experience.Level)
	embed := offerEmbed("Time for a crime!", "Please select one of the following crimes.", offs)
	for n, o := range offs {
		embed.Fields[n+1].Value += fmt.Sprintf("\nPay: %s%d\nSuccess chance: %.0f%%", commands.EmoteCoin, o.BasePay, chance*100)
	}

	msg, err := commands.Edit(s, i, embed, offerComponents("Select a crime", offs)...)
	if err != nil {
		fail(b, s, i, "crime", err)
		return
	}
	d.Bind(msg.ID)

	choice, ok := d.Await()
	if !ok {
		metrics.DialogsTotal.WithLabelValues("crime", "timeout").Inc()
		commands.Edit(s, i, crimeCanceledEmbed())
		return
	}
	d.Close()

	offer, picked, err := chosenOffer(choice, offs)
	if err != nil {
		fail(b, s, i, "crime", err)
		return
	}
	if !picked {
		metrics.DialogsTotal.WithLabelValues("crime", "canceled").Inc()
		commands.Edit(s, i, crimeCanceledEmbed())
		return
	}
	metrics.DialogsTotal.WithLabelValues("crime", "resolved").Inc()

	outcome := offers.Resolve(offer, account.Experience.Level)
	account.Balance.Cash += outcome.Cash
	account.Experience.Add(outcome.Exp)
	account.SetCooldown(kindCrime, time.Now().Add(offer.CooldownDuration()), commands.NotifyChannelID(i))

	if err := b.Users.Save(ctx, account); err != nil {
		fail(b, s, i, "crime", err)
		return
	}

	if outcome.Success {
		commands.Edit(s, i, commands.ResultEmbed(commands.ColorNeutral,
			commands.EmoteYes+" You got away with it!",
			fmt.Sprintf("The **%s** job went off without a hitch. You made %s%d and gained %s%d!\nLay low for the next %d hours.",
				offer.Title, commands.EmoteCoin, outcome.Cash, commands.EmoteXP, outcome.Exp, offer.CooldownHours)))
		return
	}

	commands.Edit(s, i, commands.ResultEmbed(commands.ColorError,
		commands.EmoteNo+" You got caught!",
		fmt.Sprintf("The **%s** job went sideways. You lost %s%d and %s%d.\nThe heat stays on for %d hours.",
			offer.Title, commands.EmoteCoin, -outcome.Cash, commands.EmoteXP, -outcome.Exp, offer.CooldownHours)))
}

// crimeCanceledEmbed is the terminal reply when nothing was picked, on cancel
// and on timeout alike.
func crimeCanceledEmbed() *discordgo.MessageEmbed {
	return commands.ResultEmbed(commands.ColorNeutral,
		commands.EmoteMaybe+" Crime canceled!",
		"A life of honesty it is.")
}
