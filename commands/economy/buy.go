package economy

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"RayBot/bot"
	"RayBot/commands"
	"RayBot/database"
)

func init() {
	commands.Register(&commands.SlashCommand{
		Name:        "buy",
		Description: "Buy an item from the store!",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "item",
				Description: "The item code (browse /store to find it)",
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "amount",
				Description: "How many to buy",
				MinValue:    float64Ptr(1),
			},
		},
		Handler: Buy,
	})
}

func float64Ptr(f float64) *float64 { return &f }

// Buy purchases a catalog item by its code, paying with cash on hand.
func Buy(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	if err := commands.Defer(s, i); err != nil {
		b.Log.Error().Err(err).Msg("defer buy reply")
		return
	}

	ctx := context.Background()
	opts := commands.Options(i)

	itemOpt, ok := opts["item"]
	if !ok {
		commands.Edit(s, i, commands.ResultEmbed(commands.ColorWarm,
			commands.EmoteMaybe+" What would you like?",
			"Browse the wares with /store and pass the item's code to this command."))
		return
	}
	code := itemOpt.StringValue()

	amount := 1
	if opt, ok := opts["amount"]; ok {
		amount = int(opt.IntValue())
	}
	if amount < 1 {
		amount = 1
	}

	catalog, err := b.Catalog.Get(ctx)
	if errors.Is(err, database.ErrNoCatalog) {
		commands.Edit(s, i, commands.ResultEmbed(commands.ColorError,
			commands.EmoteNo+" Sorry, we're closed!",
			"The store has nothing in stock right now. Check back later!"))
		return
	}
	if err != nil {
		fail(b, s, i, "buy", err)
		return
	}

	item := catalog.Item(code)
	if item == nil {
		commands.Edit(s, i, commands.ResultEmbed(commands.ColorError,
			commands.EmoteNo+" Can't find that item!",
			fmt.Sprintf("Nothing in the store goes by the code `%s`. Double-check it with /store.", code)))
		return
	}

	user := commands.User(i)
	account, err := b.Users.GetOrCreate(ctx, user.ID, user.Username)
	if err != nil {
		fail(b, s, i, "buy", err)
		return
	}

	cost := item.Price * amount
	if cost > account.Balance.Cash {
		commands.Edit(s, i, commands.ResultEmbed(commands.ColorError,
			commands.EmoteNo+" Not enough cash!",
			fmt.Sprintf("That'll run you %s%d but you only have %s%d on hand.",
				commands.EmoteCoin, cost, commands.EmoteCoin, account.Balance.Cash)))
		return
	}

	account.Balance.Cash -= cost
	account.AddItem(*item, amount)

	if err := b.Users.Save(ctx, account); err != nil {
		fail(b, s, i, "buy", err)
		return
	}

	commands.Edit(s, i, commands.ResultEmbed(commands.ColorNeutral,
		commands.EmoteYes+" Item bought!",
		fmt.Sprintf("You spent %s%d and received %d × %s **%s**. Pleasure doing business!",
			commands.EmoteCoin, cost, amount, item.Emote, item.Name)))
}
