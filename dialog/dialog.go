// Package dialog owns the short interactive exchanges behind the economy
// commands: present choices on a reply message, wait a bounded window for
// exactly one qualifying component interaction, then settle.
//
// It also owns the per-user, per-command lock table that stops a user from
// opening two dialogs of the same kind at once.
package dialog

import (
	"errors"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
)

// Window is the wait window for a follow-up interaction. The busy lock
// auto-expires after the same duration as a backstop.
const Window = 30 * time.Second

// ErrBusy means the user already has an open dialog of this kind.
var ErrBusy = errors.New("dialog already open")

// Table tracks open dialogs, keyed by user and command kind.
type Table struct {
	mu   sync.Mutex
	open map[string]*Dialog
}

func NewTable() *Table {
	return &Table{open: make(map[string]*Dialog)}
}

// Dialog is one open interactive exchange. Close releases the busy lock and
// is safe to call from any exit path; only the first call has an effect.
type Dialog struct {
	table  *Table
	key    string
	userID string

	mu        sync.Mutex
	messageID string

	events chan *discordgo.InteractionCreate
	closed chan struct{}
	once   sync.Once
	expiry *time.Timer
}

// Open acquires the busy lock for (userID, kind) and returns the dialog
// handle, or ErrBusy if one is already open. The lock auto-expires after
// Window in case a caller ever fails to Close.
func (t *Table) Open(userID, kind string) (*Dialog, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	key := userID + "/" + kind
	if _, exists := t.open[key]; exists {
		return nil, ErrBusy
	}

	d := &Dialog{
		table:  t,
		key:    key,
		userID: userID,
		events: make(chan *discordgo.InteractionCreate, 1),
		closed: make(chan struct{}),
	}
	d.expiry = time.AfterFunc(Window, d.Close)
	t.open[key] = d
	return d, nil
}

// Deliver routes a component interaction to the open dialog bound to its
// message, provided it comes from the dialog's own user. Everyone else's
// clicks are dropped, not queued. Reports whether a dialog accepted it.
func (t *Table) Deliver(i *discordgo.InteractionCreate) bool {
	if i.Message == nil {
		return false
	}

	t.mu.Lock()
	var target *Dialog
	for _, d := range t.open {
		if d.MessageID() == i.Message.ID {
			target = d
			break
		}
	}
	t.mu.Unlock()

	if target == nil || interactionUserID(i) != target.userID {
		return false
	}

	select {
	case target.events <- i:
		return true
	default:
		// A second click raced the first one in; the dialog only ever
		// consumes one event, so drop it.
		return false
	}
}

func (t *Table) remove(key string) {
	t.mu.Lock()
	delete(t.open, key)
	t.mu.Unlock()
}

// Bind attaches the dialog to the reply message carrying its components.
func (d *Dialog) Bind(messageID string) {
	d.mu.Lock()
	d.messageID = messageID
	d.mu.Unlock()
}

// MessageID returns the bound reply message ID, or empty if not yet bound.
func (d *Dialog) MessageID() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.messageID
}

// Await blocks until one qualifying interaction arrives or the wait window
// lapses. It reports false on timeout (or if the dialog was closed early).
// Exactly one of the two outcomes fires. Paginated views call Await once per
// hop, so each call renews the lock's auto-expiry for another window.
func (d *Dialog) Await() (*discordgo.InteractionCreate, bool) {
	d.expiry.Reset(Window)
	timer := time.NewTimer(Window)
	defer timer.Stop()

	select {
	case i := <-d.events:
		return i, true
	case <-timer.C:
		return nil, false
	case <-d.closed:
		return nil, false
	}
}

// Close releases the busy lock. Idempotent.
func (d *Dialog) Close() {
	d.once.Do(func() {
		d.expiry.Stop()
		d.table.remove(d.key)
		close(d.closed)
	})
}

func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}
