package command

import (
	"errors"
	"fmt"
	"log"

	"github.com/susu3304/emojialbum/internal/album"
	"github.com/susu3304/emojialbum/internal/catalog"
)

const welcomeText = "Welcome to emoji album!\n\n🎲 Send /roll to get your first emojis!\n\n📖 Send /album to see all your emojis!"

// Dispatcher maps a validated command plus the acting username to one
// ledger operation and the reply to send back. Every per-request failure
// comes back as reply text; nothing here panics or crashes the process.
type Dispatcher struct {
	catalog  *catalog.Catalog
	ledger   *album.Ledger
	drawSize int
}

func NewDispatcher(c *catalog.Catalog, ledger *album.Ledger, drawSize int) *Dispatcher {
	return &Dispatcher{catalog: c, ledger: ledger, drawSize: drawSize}
}

// Execute runs one command for the given user and builds its reply.
func (d *Dispatcher) Execute(cmd Command, user string) Reply {
	switch cmd.Kind {
	case Start:
		return reply(welcomeText)
	case Roll:
		return d.roll(user)
	case Album:
		return d.album(user)
	case Send:
		return d.send(cmd, user)
	}
	return errorReply("Command not found. Type or press / to see all available commands.")
}

func (d *Dispatcher) roll(user string) Reply {
	items, err := album.Draw(d.catalog, d.drawSize)
	if err != nil {
		log.Printf("Failed to draw emojis for %s: %v", user, err)
		return errorReply("Could not roll new emojis, please try again.")
	}
	d.ledger.Credit(user, items...)

	return reply("You have rolled:\n\n\n" + album.RenderItems(items))
}

func (d *Dispatcher) album(user string) Reply {
	holdings := d.ledger.View(user)
	if len(holdings) == 0 {
		return reply("You still have no emojis in your album! Type /roll to get some!")
	}
	return reply("Your album:\n\n\n" + album.Render(holdings))
}

func (d *Dispatcher) send(cmd Command, user string) Reply {
	item, err := d.catalog.Item(cmd.Icon)
	if err != nil {
		return errorReply("Emoji not valid, or there's a space missing between the emoji and the username")
	}

	err = d.ledger.Transfer(user, cmd.To, item, cmd.Quantity)
	switch {
	case err == nil:
		return reply(fmt.Sprintf("You have successfully sent %d %s to @%s!", cmd.Quantity, cmd.Icon, cmd.To))
	case errors.Is(err, album.ErrInvalidQuantity):
		return errorReply("The quantity should be a positive number, for example: 3")
	case errors.Is(err, album.ErrInsufficientHoldings):
		return errorReply(fmt.Sprintf("You don't have enough %s to send", cmd.Icon))
	case errors.Is(err, album.ErrUnknownRecipient):
		return errorReply(fmt.Sprintf("Could not find user @%s. Make sure the user has talked to the bot at least once", cmd.To))
	default:
		log.Printf("Failed to transfer %d %s from %s to %s: %v", cmd.Quantity, cmd.Icon, user, cmd.To, err)
		return errorReply("Something went wrong, please try again.")
	}
}

func reply(text string) Reply {
	return Reply{Text: text, Buttons: QuickReplies}
}

func errorReply(text string) Reply {
	return reply("Error: " + text)
}
