package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"RayBot/bot"
	"RayBot/commands"
	"RayBot/config"
	"RayBot/cooldown"
	"RayBot/database"
	"RayBot/ops"

	// Command packages register themselves on import.
	_ "RayBot/commands/economy"
	_ "RayBot/commands/experience"
)

func main() {
	// A missing .env is fine in production, env vars win either way.
	godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		errLog := zerolog.New(os.Stderr)
		errLog.Fatal().Err(err).Msg("load config")
	}

	log := newLogger(cfg)

	db, closeDB, err := database.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to mongo")
	}
	defer closeDB(context.Background())

	users := database.NewUsers(db)
	if err := users.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("ensure indexes")
	}

	cache := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	defer cache.Close()

	catalog := database.NewCatalog(db, cache, log)
	if err := catalog.SeedIfEmpty(ctx, cfg.StoreSeed); err != nil {
		log.Fatal().Err(err).Msg("seed store catalog")
	}

	b, err := bot.New(cfg.DiscordToken, users, catalog, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create bot")
	}

	b.Session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		log.Info().Str("user", r.User.Username).Msg("logged in")
	})
	b.Session.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		switch i.Type {
		case discordgo.InteractionApplicationCommand:
			commands.Dispatch(b, s, i)
		case discordgo.InteractionMessageComponent:
			// Ack immediately so the click never times out, then hand the
			// event to whichever dialog is bound to the message.
			s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
				Type: discordgo.InteractionResponseDeferredMessageUpdate,
			})
			b.Dialogs.Deliver(i)
		}
	})

	if err := b.Session.Open(); err != nil {
		log.Fatal().Err(err).Msg("open discord session")
	}
	defer b.Session.Close()

	appID := b.Session.State.User.ID
	if _, err := b.Session.ApplicationCommandBulkOverwrite(appID, cfg.GuildID, commands.All()); err != nil {
		log.Fatal().Err(err).Msg("register slash commands")
	}
	log.Info().Int("count", len(commands.All())).Str("guild", cfg.GuildID).Msg("slash commands registered")

	sweeper := cooldown.NewSweeper(b.Session, users, log)
	go sweeper.Run(ctx)

	opsServer := ops.New(log, func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return db.Client().Ping(ctx, nil)
	})
	go func() {
		if err := opsServer.Start(cfg.OpsAddr); err != nil {
			log.Error().Err(err).Msg("ops server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := opsServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("ops server shutdown")
	}
}

func newLogger(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		level = zerolog.InfoLevel
	}

	out := zerolog.New(os.Stderr)
	if cfg.LogPretty {
		out = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	return out.Level(level).With().Timestamp().Logger()
}
