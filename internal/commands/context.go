package commands

import (
	"github.com/pixil98/go-mud-rules/internal/combat"
	"github.com/pixil98/go-mud-rules/internal/game"
	"github.com/pixil98/go-mud-rules/internal/party"
	"github.com/pixil98/go-mud-rules/internal/schema"
)

// Context is the handle a batch of commands is reduced against. It owns
// the world reference and accumulates declared events and errors.
type Context struct {
	world   *game.World
	catalog schema.Catalog
	parties *party.Manager

	events []*Event
	errors []DeclaredError
}

// ContextOpt configures a Context.
type ContextOpt func(*Context)

// WithPartyManager replaces the default party manager.
func WithPartyManager(m *party.Manager) ContextOpt {
	return func(c *Context) {
		c.parties = m
	}
}

func NewContext(w *game.World, catalog schema.Catalog, opts ...ContextOpt) *Context {
	c := &Context{world: w, catalog: catalog}
	for _, opt := range opts {
		opt(c)
	}
	if c.parties == nil {
		c.parties = party.NewManager(w)
	}
	return c
}

func (c *Context) World() *game.World      { return c.world }
func (c *Context) Catalog() schema.Catalog { return c.catalog }
func (c *Context) Parties() *party.Manager { return c.parties }

// DeclareEvent records an event draft. Drafts are finalized before the
// command that declared them finishes.
func (c *Context) DeclareEvent(ev Event) {
	c.events = append(c.events, &ev)
}

// DeclareError records a failure of the command with the given id.
func (c *Context) DeclareError(code Code, cmdID, msg string) {
	c.errors = append(c.errors, DeclaredError{
		Code:    code,
		Kind:    code.Kind(),
		Trace:   cmdID,
		Message: msg,
	})
}

// Failed declares an error and returns the context.
func (c *Context) Failed(cmdID string, code Code, msg string) *Context {
	c.DeclareError(code, cmdID, msg)
	return c
}

// DeclaredEvents returns copies of every event declared so far.
func (c *Context) DeclaredEvents() []Event {
	out := make([]Event, 0, len(c.events))
	for _, ev := range c.events {
		out = append(out, *ev)
	}
	return out
}

// DeclaredErrors returns every error declared so far.
func (c *Context) DeclaredErrors() []DeclaredError {
	return append([]DeclaredError(nil), c.errors...)
}

// DeclaredEventsByCommand returns the events traced to one command.
func (c *Context) DeclaredEventsByCommand(cmdID string) []Event {
	var out []Event
	for _, ev := range c.events {
		if ev.Trace == cmdID {
			out = append(out, *ev)
		}
	}
	return out
}

// ErrorsByCommand returns the errors traced to one command.
func (c *Context) ErrorsByCommand(cmdID string) []DeclaredError {
	var out []DeclaredError
	for _, e := range c.errors {
		if e.Trace == cmdID {
			out = append(out, e)
		}
	}
	return out
}

// Session opens a combat session.
func (c *Context) Session(id string) (*combat.Session, error) {
	return combat.Open(c.world, c.catalog, id)
}

// CreateSession registers a pending session at location.
func (c *Context) CreateSession(location string) (*combat.Session, error) {
	return combat.Create(c.world, c.catalog, location)
}

// Gear is what the catalog knows about an item's schema.
type Gear struct {
	Slot      string
	SetupTime float64
	Weapon    *schema.Weapon
	Armor     *schema.Armor
}

// Gear looks up the definition behind an item.
func (c *Context) Gear(it *game.Item) (Gear, bool) {
	if c.catalog == nil || it == nil {
		return Gear{}, false
	}
	if w, ok := c.catalog.Weapon(it.Schema); ok {
		return Gear{Slot: w.EquipSlot(), SetupTime: w.SetupTime, Weapon: w}, true
	}
	if a, ok := c.catalog.Armor(it.Schema); ok {
		return Gear{Slot: a.Slot, SetupTime: a.SetupTime, Armor: a}, true
	}
	return Gear{}, false
}

// finalize stamps the realized cost on every draft of a command.
func (c *Context) finalize(cmdID string, cost combat.Cost) {
	for _, ev := range c.events {
		if ev.Trace == cmdID && ev.Cost == nil {
			realized := cost
			ev.Cost = &realized
		}
	}
}

// discard drops the drafts of a command that failed.
func (c *Context) discard(cmdID string) {
	kept := c.events[:0]
	for _, ev := range c.events {
		if ev.Trace != cmdID {
			kept = append(kept, ev)
		}
	}
	c.events = kept
}
