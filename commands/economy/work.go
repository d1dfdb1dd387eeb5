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
		Name:        "work",
		Description: "Start working to earn coins and experience!",
		Handler:     Work,
	})
}

// Work presents three job offers and pays out whichever one the user picks.
// Jobs always succeed; the price is the cooldown.
func Work(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	if err := commands.Defer(s, i); err != nil {
		b.Log.Error().Err(err).Msg("defer work reply")
		return
	}

	ctx := context.Background()
	user := commands.User(i)
	account, err := b.Users.GetOrCreate(ctx, user.ID, user.Username)
	if err != nil {
		fail(b, s, i, "work", err)
		return
	}

	if cd := account.Cooldown(kindWork); cd != nil {
		if time.Now().Before(cd.EndTime) {
			commands.Edit(s, i, commands.ResultEmbed(commands.ColorError,
				commands.EmoteNo+" Slow down, workaholic!",
				fmt.Sprintf("You've already worked recently! You can work again in %s.", commands.FormatTimer(time.Until(cd.EndTime)))))
			return
		}
		// Expired but not yet swept; drop it quietly.
		account.ClearCooldown(kindWork)
	}

	d, err := b.Dialogs.Open(user.ID, kindWork)
	if errors.Is(err, dialog.ErrBusy) {
		commands.Edit(s, i, commands.ResultEmbed(commands.ColorError,
			commands.EmoteNo+" You're already working!",
			"Finish up your current job offers before asking for more."))
		return
	}
	defer d.Close()

	offs := []offers.Offer{
		offers.NewJob(500, 700, 2),
		offers.NewJob(1000, 1200, 5),
		offers.NewJob(1500, 1700, 8),
	}

	embed := offerEmbed("It's time to work!", "Please select one of the following job offers.", offs)
	for n, o := range offs {
		embed.Fields[n+1].Value += fmt.Sprintf("\nPay: %s%d", commands.EmoteCoin, o.BasePay)
	}

	msg, err := commands.Edit(s, i, embed, offerComponents("Select a job", offs)...)
	if err != nil {
		fail(b, s, i, "work", err)
		return
	}
	d.Bind(msg.ID)

	choice, ok := d.Await()
	if !ok {
		metrics.DialogsTotal.WithLabelValues("work", "timeout").Inc()
		commands.Edit(s, i, workCanceledEmbed())
		return
	}
	d.Close()

	offer, picked, err := chosenOffer(choice, offs)
	if err != nil {
		fail(b, s, i, "work", err)
		return
	}
	if !picked {
		metrics.DialogsTotal.WithLabelValues("work", "canceled").Inc()
		commands.Edit(s, i, workCanceledEmbed())
		return
	}
	metrics.DialogsTotal.WithLabelValues("work", "resolved").Inc()

	outcome := offers.Resolve(offer, account.Experience.Level)
	account.Balance.Cash += outcome.Cash
	account.Experience.Add(outcome.Exp)
	account.SetCooldown(kindWork, time.Now().Add(offer.CooldownDuration()), commands.NotifyChannelID(i))

	if err := b.Users.Save(ctx, account); err != nil {
		fail(b, s, i, "work", err)
		return
	}

	commands.Edit(s, i, commands.ResultEmbed(commands.ColorNeutral,
		commands.EmoteYes+" Congratulations on the new job!",
		fmt.Sprintf("You worked as a **%s** and earned %s%d and %s%d!\nYou can work again in %d hours.",
			offer.Title, commands.EmoteCoin, outcome.Cash, commands.EmoteXP, outcome.Exp, offer.CooldownHours)))
}

// workCanceledEmbed is the terminal reply when nothing was picked, on cancel
// and on timeout alike.
func workCanceledEmbed() *discordgo.MessageEmbed {
	return commands.ResultEmbed(commands.ColorNeutral,
		commands.EmoteMaybe+" Work canceled!",
		"Maybe another time then.")
}
