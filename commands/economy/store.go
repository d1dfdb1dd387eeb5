package economy

import (
	"context"
	"errors"
	"fmt"

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
		Name:        "store",
		Description: "Browse the store for things to buy!",
		Handler:     StoreBrowser,
	})
}

// Listings per page in the store and inventory browsers.
const browsePerPage = 5

// Component custom IDs shared by the two browsers.
const (
	customIDCategoryMenu = "categorySelect"
	customIDBackButton   = "backButton"
	customIDNextButton   = "nextButton"
)

// StoreBrowser opens the interactive catalog view: a category picker plus
// page buttons, alive until the user closes it or goes idle.
func StoreBrowser(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	if err := commands.Defer(s, i); err != nil {
		b.Log.Error().Err(err).Msg("defer store reply")
		return
	}

	ctx := context.Background()
	catalog, err := b.Catalog.Get(ctx)
	if errors.Is(err, database.ErrNoCatalog) {
		commands.Edit(s, i, commands.ResultEmbed(commands.ColorError,
			commands.EmoteNo+" Sorry, we're closed!",
			"The store has nothing in stock right now. Check back later!"))
		return
	}
	if err != nil {
		fail(b, s, i, "store", err)
		return
	}

	user := commands.User(i)
	d, err := b.Dialogs.Open(user.ID, "store")
	if errors.Is(err, dialog.ErrBusy) {
		commands.Edit(s, i, commands.ResultEmbed(commands.ColorError,
			commands.EmoteNo+" One browse at a time!",
			"You already have the store open somewhere."))
		return
	}
	defer d.Close()

	var options []discordgo.SelectMenuOption
	for _, cat := range catalog.Categories {
		options = append(options, discordgo.SelectMenuOption{
			Label:       cat.Name,
			Value:       cat.ID,
			Description: cat.Description,
		})
	}

	var category *database.StoreCategory
	page := 1
	for {
		var embed *discordgo.MessageEmbed
		var total int
		if category == nil {
			embed = storeCategoriesEmbed(catalog, page)
			total = len(catalog.Categories)
		} else {
			embed = storeItemsEmbed(category, page)
			total = len(category.Items)
		}

		comps := browserComponents(options, "Pick a category", paginate.PageControls(total, page, browsePerPage))
		msg, err := commands.Edit(s, i, embed, comps...)
		if err != nil {
			fail(b, s, i, "store", err)
			return
		}
		d.Bind(msg.ID)

		choice, ok := d.Await()
		if !ok {
			metrics.DialogsTotal.WithLabelValues("store", "timeout").Inc()
			commands.Edit(s, i, storeClosedEmbed())
			return
		}

		data := choice.MessageComponentData()
		switch data.CustomID {
		case customIDCategoryMenu:
			if len(data.Values) > 0 {
				category = catalog.Category(data.Values[0])
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
			metrics.DialogsTotal.WithLabelValues("store", "resolved").Inc()
			commands.Edit(s, i, storeClosedEmbed())
			return
		}
	}
}

// storeClosedEmbed ends the browser, whether the user closed it or walked
// away.
func storeClosedEmbed() *discordgo.MessageEmbed {
	return commands.ResultEmbed(commands.ColorNeutral,
		commands.EmoteYes+" Store closed!",
		"Come back whenever you're ready to spend.")
}

func storeCategoriesEmbed(catalog *database.Store, page int) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Color:       commands.ColorWarm,
		Title:       "Welcome to the store!",
		Description: "Pick a category below to see what's in stock.",
		Footer:      pageFooter(page, len(catalog.Categories)),
	}
	for _, cat := range paginate.Slice(catalog.Categories, page, browsePerPage) {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  cat.Emote + " " + cat.Name,
			Value: cat.Description,
		})
	}
	return embed
}

func storeItemsEmbed(category *database.StoreCategory, page int) *discordgo.MessageEmbed {
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

func pageFooter(page, total int) *discordgo.MessageEmbedFooter {
	pages := paginate.Pages(total, browsePerPage)
	if pages < 1 {
		pages = 1
	}
	return &discordgo.MessageEmbedFooter{
		Text: fmt.Sprintf("Page %d of %d", page, pages),
	}
}

// browserComponents is the shared control strip: a select menu on top, then
// back/next pagers and a close button.
func browserComponents(options []discordgo.SelectMenuOption, placeholder string, controls paginate.Controls) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.SelectMenu{
					MenuType:    discordgo.StringSelectMenu,
					CustomID:    customIDCategoryMenu,
					Placeholder: placeholder,
					Options:     options,
				},
			},
		},
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Back",
					Style:    discordgo.SecondaryButton,
					CustomID: customIDBackButton,
					Disabled: !controls.BackEnabled,
				},
				discordgo.Button{
					Label:    "Next",
					Style:    discordgo.SecondaryButton,
					CustomID: customIDNextButton,
					Disabled: !controls.NextEnabled,
				},
				discordgo.Button{
					Label:    "Close",
					Style:    discordgo.DangerButton,
					CustomID: customIDCancelButton,
				},
			},
		},
	}
}
