package bot

import (
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	"RayBot/database"
	"RayBot/dialog"
)

// Bot bundles the Discord session with the shared collaborators every
// command handler needs.
type Bot struct {
	Session *discordgo.Session
	Users   *database.Users
	Catalog *database.Catalog
	Dialogs *dialog.Table
	Log     zerolog.Logger
}

func New(token string, users *database.Users, catalog *database.Catalog, log zerolog.Logger) (*Bot, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, err
	}
	session.Identify.Intents = discordgo.IntentsGuilds

	return &Bot{
		Session: session,
		Users:   users,
		Catalog: catalog,
		Dialogs: dialog.NewTable(),
		Log:     log,
	}, nil
}
