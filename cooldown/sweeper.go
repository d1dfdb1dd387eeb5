// Package cooldown runs the background sweep that clears expired cooldowns
// and tells users they're free to work again.
package cooldown

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	"RayBot/commands"
	"RayBot/database"
	"RayBot/metrics"
)

// Interval between sweeps. Cooldown replies show a live countdown, so a
// minute of notification lag is fine.
const Interval = time.Minute

// Sweeper periodically removes expired cooldowns and posts a notification to
// the channel each cooldown was started from.
type Sweeper struct {
	session *discordgo.Session
	users   *database.Users
	log     zerolog.Logger
}

func NewSweeper(session *discordgo.Session, users *database.Users, log zerolog.Logger) *Sweeper {
	return &Sweeper{session: session, users: users, log: log}
}

// Run sweeps every Interval until the context is canceled.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

// sweep collects everyone with an expired cooldown, removes the entries in
// one bulk update, then sends the notifications. A notification that fails to
// deliver is logged and forgotten; the cooldown is already gone.
func (s *Sweeper) sweep(ctx context.Context) {
	now := time.Now()

	users, err := s.users.FindExpiredCooldowns(ctx, now)
	if err != nil {
		s.log.Error().Err(err).Msg("cooldown sweep query failed")
		return
	}
	if len(users) == 0 {
		return
	}

	if err := s.users.PullExpiredCooldowns(ctx, now); err != nil {
		s.log.Error().Err(err).Msg("cooldown sweep removal failed")
		return
	}

	for _, u := range users {
		for _, cd := range u.Cooldowns {
			if cd.EndTime.After(now) {
				continue
			}
			metrics.CooldownsSweptTotal.Inc()
			s.notify(u, cd)
		}
	}
}

func (s *Sweeper) notify(u database.User, cd database.Cooldown) {
	embed := notificationEmbed(u, cd)
	_, err := s.session.ChannelMessageSendComplex(cd.ChannelID, &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{embed},
	})
	if err != nil {
		s.log.Warn().Err(err).
			Str("user", u.ID).
			Str("kind", cd.Type).
			Str("channel", cd.ChannelID).
			Msg("cooldown notification failed")
	}
}

func notificationEmbed(u database.User, cd database.Cooldown) *discordgo.MessageEmbed {
	mention := fmt.Sprintf("<@%s>", u.ID)
	switch cd.Type {
	case "work":
		return commands.ResultEmbed(commands.ColorNeutral,
			commands.EmoteYes+" Break's over!",
			mention+" You can get back to work whenever you're ready.")
	case "crime":
		return commands.ResultEmbed(commands.ColorNeutral,
			commands.EmoteYes+" The heat has died down!",
			mention+" The streets are yours again.")
	case "rob":
		return commands.ResultEmbed(commands.ColorNeutral,
			commands.EmoteYes+" The coast is clear!",
			mention+" Nobody's watching their pockets anymore.")
	}
	return commands.ResultEmbed(commands.ColorNeutral,
		commands.EmoteYes+" Cooldown finished!",
		mention+" You're good to go again.")
}
