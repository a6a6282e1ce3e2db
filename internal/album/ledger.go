package album

import (
	"errors"
	"sync"

	"github.com/susu3304/emojialbum/internal/catalog"
)

var (
	ErrInvalidQuantity      = errors.New("quantity must be a positive number")
	ErrInsufficientHoldings = errors.New("not enough of that emoji to send")
	ErrUnknownRecipient     = errors.New("recipient has never talked to the bot")
)

// Holdings is one user's multiset of owned emojis. Every stored quantity is
// strictly positive; an entry that reaches zero is removed.
type Holdings map[catalog.Item]int

// Ledger is the shared store mapping usernames to their albums. All
// operations take the single lock for their whole duration, so no caller
// ever observes a half-applied transfer.
type Ledger struct {
	mu     sync.Mutex
	albums map[string]Holdings
}

func NewLedger() *Ledger {
	return &Ledger{albums: make(map[string]Holdings)}
}

// Credit adds one of each item to the user's album. The album record is
// materialized even for an empty batch; holding a record at all is what
// makes a user a valid transfer recipient.
func (l *Ledger) Credit(user string, items ...catalog.Item) {
	l.mu.Lock()
	defer l.mu.Unlock()

	holdings, ok := l.albums[user]
	if !ok {
		holdings = make(Holdings)
		l.albums[user] = holdings
	}
	for _, item := range items {
		holdings[item]++
	}
}

// View returns a copy of the user's holdings. A user that was never
// credited reads as an empty album, not an error.
func (l *Ledger) View(user string) Holdings {
	l.mu.Lock()
	defer l.mu.Unlock()

	holdings := l.albums[user]
	out := make(Holdings, len(holdings))
	for item, quantity := range holdings {
		out[item] = quantity
	}
	return out
}

// Known reports whether the user has an album record, whatever its
// contents. A user becomes known on first credit, including an empty one.
func (l *Ledger) Known(user string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	_, ok := l.albums[user]
	return ok
}

// Transfer moves quantity of item from one album to another. The balance
// check and both mutations happen under one lock hold; a failed transfer
// leaves both albums untouched.
func (l *Ledger) Transfer(from, to string, item catalog.Item, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	sender := l.albums[from]
	if sender[item] < quantity {
		return ErrInsufficientHoldings
	}
	recipient, ok := l.albums[to]
	if !ok {
		return ErrUnknownRecipient
	}

	sender[item] -= quantity
	if sender[item] == 0 {
		delete(sender, item)
	}
	recipient[item] += quantity
	return nil
}
