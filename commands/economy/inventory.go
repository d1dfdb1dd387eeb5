package economy

import (
	"context"
	"errors"

	"github.com/bwmarrin/discordgo"

	"RayBot/bot"
	"RayBot/commands"
	"RayBot/database"
	"RayBot/dialog"
	"RayBot/metrics"
	"RayBot/paginate"
)

func init() {
	commands.Register(&commands.SlashCommand{
		Name:        "inventory",
		Description: "Look through everything you own!",
		Handler:     Inventory,
	})
}

// Inventory is the store browser pointed at the caller's own items.
func Inventory(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	if err := commands.Defer(s, i); err != nil {
		b.Log.Error().Err(err).Msg("defer inventory reply")
		return
	}

	ctx := context.Background()
	user := commands.User(i)
	account, err := b.Users.GetOrCreate(ctx, user.ID, user.Username)
	if err != nil {
		fail(b, s, i, "inventory", err)
		return
	}

	if len(account.Inventory) == 0 {
		commands.Edit(s, i, commands.ResultEmbed(commands.ColorWarm,
			commands.EmoteMaybe+" Nothing to see here!",
			"Your inventory is empty. The store would love to fix that."))
		return
	}

	d, err := b.Dialogs.Open(user.ID, "inventory")
	if errors.Is(err, dialog.ErrBusy) {
		commands.Edit(s, i, commands.ResultEmbed(commands.ColorError,
			commands.EmoteNo+" Hands full!",
			"You're already digging through your inventory."))
		return
	}
	defer d.Close()

	var options []discordgo.SelectMenuOption
	for _, cat := range account.Inventory {
		options = append(options, discordgo.SelectMenuOption{
			Label:       cat.Name,
			Value:       cat.ID,
			Description: cat.Description,
		})
	}

	var category *database.InventoryCategory
	page := 1
	for {
		var embed *discordgo.MessageEmbed
		var total int
		if category == nil {
			embed = inventoryCategoriesEmbed(account, page)
			total = len(account.Inventory)
		} else {
			embed = inventoryItemsEmbed(category, page)
			total = len(category.Items)
		}

		comps := browserComponents(options, "Pick a category", paginate.PageControls(total, page, browsePerPage))
		msg, err := commands.Edit(s, i, embed, comps...)
		if err != nil {
			fail(b, s, i, "inventory", err)
			return
		}
		d.Bind(msg.ID)

		choice, ok := d.Await()
		if !ok {
			metrics.DialogsTotal.WithLabelValues("inventory", "timeout").Inc()
			commands.Edit(s, i, inventoryClosedEmbed())
			return
		}

		data := choice.MessageComponentData()
		switch data.CustomID {
		case customIDCategoryMenu:
			if len(data.Values) > 0 {
				category = inventoryCategory(account, data.Values[0])
				page = 1
			}
		case customIDBackButton:
			if page > 1 {
				page--
			}
		case customIDNextButton:
			if page < paginate.Pages(total, browsePerPage) {
				page++
			}
		case customIDCancelButton:
			metrics.DialogsTotal.WithLabelValues("inventory", "resolved").Inc()
			commands.Edit(s, i, inventoryClosedEmbed())
			return
		}
	}
}

// inventoryClosedEmbed ends the browser, whether the user closed it or walked
// away.
func inventoryClosedEmbed() *discordgo.MessageEmbed {
	return commands.ResultEmbed(commands.ColorNeutral,
		commands.EmoteYes+" All packed up!",
		"Your things are right where you left them.")
}

func inventoryCategory(u *database.User, id string) *database.InventoryCategory {
	for n := range u.Inventory {
		if u.Inventory[n].ID == id {
			return &u.Inventory[n]
		}
	}
	return nil
}

func inventoryCategoriesEmbed(u *database.User, page int) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Color:       commands.ColorWarm,
		Title:       u.Username + "'s inventory",
		Description: "Pick a category below to see your items.",
		Footer:      pageFooter(page, len(u.Inventory)),
	}
	for _, cat := range paginate.Slice(u.Inventory, page, browsePerPage) {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  cat.Emote + " " + cat.Name,
			Value: cat.Description,
		})
	}
	return embed
}

func inventoryItemsEmbed(category *database.InventoryCategory, page int) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Color:       commands.ColorWarm,
		Title:       category.Emote + " " + category.Name,
		Description: category.Description,
		Footer:      pageFooter(page, len(category.Items)),
	}
	for _, item := range paginate.Slice(category.Items, page, browsePerPage) {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  item.Emote + " " + item.Name,
			Value: item.Description(),
		})
	}
	return embed
}
