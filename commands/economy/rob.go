package economy

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/bwmarrin/discordgo"

	"RayBot/bot"
	"RayBot/commands"
	"RayBot/offers"
)

func init() {
	commands.Register(&commands.SlashCommand{
		Name:        "rob",
		Description: "Try to rob another user's cash!",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "user",
				Description: "Who to rob",
				Required:    true,
			},
		},
		Handler: Rob,
	})
}

// robCooldown applies after every attempt, successful or not.
const robCooldown = time.Hour

// Rob moves a tenth-halved slice of the target's cash to the actor on
// success, and the same amount the other way on failure. Only cash on hand is
// ever at stake; banked and carded money can't be robbed.
func Rob(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	if err := commands.Defer(s, i); err != nil {
		b.Log.Error().Err(err).Msg("defer rob reply")
		return
	}

	ctx := context.Background()
	user := commands.User(i)
	targetUser := commands.Options(i)["user"].UserValue(s)

	if targetUser.ID == user.ID {
		commands.Edit(s, i, commands.ResultEmbed(commands.ColorError,
			commands.EmoteNo+" You can't rob yourself!",
			"Try picking literally anyone else."))
		return
	}

	account, err := b.Users.GetOrCreate(ctx, user.ID, user.Username)
	if err != nil {
		fail(b, s, i, "rob", err)
		return
	}

	if cd := account.Cooldown(kindRob); cd != nil {
		if time.Now().Before(cd.EndTime) {
			commands.Edit(s, i, commands.ResultEmbed(commands.ColorError,
				commands.EmoteNo+" Not so fast!",
				fmt.Sprintf("You're still on the run from your last heist! You can rob again in %s.", commands.FormatTimer(time.Until(cd.EndTime)))))
			return
		}
		account.ClearCooldown(kindRob)
	}

	target, err := b.Users.GetOrCreate(ctx, targetUser.ID, targetUser.Username)
	if err != nil {
		fail(b, s, i, "rob", err)
		return
	}

	if target.Balance.Cash <= 0 {
		commands.Edit(s, i, commands.ResultEmbed(commands.ColorError,
			commands.EmoteNo+" Not worth the trouble!",
			fmt.Sprintf("**%s** doesn't have any cash on them.", target.Username)))
		return
	}

	// A tenth of the target's cash, split in half, rounded up.
	amount := (target.Balance.Cash + 19) / 20
	chance := offers.RobSuccessChance(account.Experience.Level, target.Experience.Level)
	success := rand.Float64() <= chance

	if success {
		target.Balance.Cash -= amount
		account.Balance.Cash += amount
	} else {
		account.Balance.Cash -= amount
		target.Balance.Cash += amount
	}
	account.SetCooldown(kindRob, time.Now().Add(robCooldown), commands.NotifyChannelID(i))

	if err := b.Users.Save(ctx, account); err != nil {
		fail(b, s, i, "rob", err)
		return
	}
	if err := b.Users.Save(ctx, target); err != nil {
		fail(b, s, i, "rob", err)
		return
	}

	if success {
		commands.Edit(s, i, commands.ResultEmbed(commands.ColorNeutral,
			commands.EmoteYes+" The heist paid off!",
			fmt.Sprintf("You slipped %s%d out of **%s**'s pocket without them noticing!\nBetter lay low for the next hour.",
				commands.EmoteCoin, amount, target.Username)))
		return
	}

	commands.Edit(s, i, commands.ResultEmbed(commands.ColorError,
		commands.EmoteNo+" You got caught red-handed!",
		fmt.Sprintf("**%s** caught you mid-grab and shook you down for %s%d instead!\nNo more robbing for the next hour.",
			target.Username, commands.EmoteCoin, amount)))
}
