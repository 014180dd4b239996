package commands

import (
	"fmt"
	"testing"

	"github.com/pixil98/go-mud-rules/internal/game"
	"github.com/pixil98/go-mud-rules/internal/schema"
)

var testCatalog = schema.Static{
	Weapons: map[string]*schema.Weapon{
		"longsword": {Name: "Longsword", Kind: schema.WeaponMelee, SetupTime: 1, Damage: 4},
		"shortbow":  {Name: "Shortbow", Kind: schema.WeaponRanged, SetupTime: 3, Damage: 3, Range: 10},
	},
	Armors: map[string]*schema.Armor{
		"chainmail": {Name: "Chainmail", Slot: "body", SetupTime: 4, Defense: 1, APPenalty: 1},
	},
}

type fixture struct {
	world *game.World
	ctx   *Context
	proc  *Processor
	res   *Resolver
	n     int
}

// newFixture builds a hall with a yard to the north and four actors in the
// hall. Agility falls from alice (10) to dave (7). Alice carries a
// longsword, a shortbow and chainmail.
func newFixture(t *testing.T) *fixture {
	t.Helper()

	ids := 0
	w := game.NewWorld(game.WithIDGenerator(func() string {
		ids++
		return fmt.Sprintf("gen-%d", ids)
	}))
	hall := game.NewPlace("hall", "Great Hall")
	hall.Exits["north"] = game.Exit{PlaceId: "yard"}
	yard := game.NewPlace("yard", "Yard")
	yard.Exits["south"] = game.Exit{PlaceId: "hall"}
	for _, p := range []*game.Place{hall, yard} {
		if err := w.AddPlace(p); err != nil {
			t.Fatalf("adding place: %v", err)
		}
	}

	for i, id := range []string{"alice", "bob", "carol", "dave"} {
		a := game.NewActor(id, id, "hall")
		a.Vitals = game.Vitals{Health: 20, MaxHealth: 20, Energy: 30, MaxEnergy: 30}
		a.Agility = 10 - i
		if err := w.AddActor(a); err != nil {
			t.Fatalf("adding actor: %v", err)
		}
	}
	alice := w.Actor("alice")
	alice.Inventory.Add(&game.Item{Id: "sword-1", Schema: "longsword"})
	alice.Inventory.Add(&game.Item{Id: "bow-1", Schema: "shortbow"})
	alice.Inventory.Add(&game.Item{Id: "mail-1", Schema: "chainmail"})

	p := NewProcessor()
	return &fixture{
		world: w,
		ctx:   NewContext(w, testCatalog),
		proc:  p,
		res:   NewResolver(w, p),
	}
}

// run reduces one command built from args, with session inferred from the
// actor, and returns its id.
func (f *fixture) run(actor string, args Args) string {
	f.n++
	cmd := NewCommand(fmt.Sprintf("cmd-%d", f.n), actor, args)
	if a := f.world.Actor(actor); a != nil {
		cmd.Session = a.Session
	}
	f.proc.Process(f.ctx, cmd)
	return cmd.Id
}

// dispatch resolves and reduces an intent and returns its id.
func (f *fixture) dispatch(in Intent) string {
	f.n++
	in.Id = fmt.Sprintf("intent-%d", f.n)
	f.res.Dispatch(f.ctx, in)
	return in.Id
}

// engage puts alice (BRAVO) and bob (ALPHA) into a running session with
// alice to act first.
func (f *fixture) engage(t *testing.T) *game.CombatSession {
	t.Helper()
	id := f.run("alice", &EngageArgs{Target: "bob"})
	if errs := f.ctx.ErrorsByCommand(id); len(errs) > 0 {
		t.Fatalf("engage failed: %v", errs)
	}
	return f.world.Session(f.world.Actor("alice").Session)
}

func (f *fixture) codes(cmdID string) []Code {
	var out []Code
	for _, e := range f.ctx.ErrorsByCommand(cmdID) {
		out = append(out, e.Code)
	}
	return out
}

func (f *fixture) eventTypes(cmdID string) []EventType {
	var out []EventType
	for _, ev := range f.ctx.DeclaredEventsByCommand(cmdID) {
		out = append(out, ev.Type)
	}
	return out
}

// expectRejected asserts a command failed with exactly one error of code
// and no events.
func (f *fixture) expectRejected(t *testing.T, cmdID string, code Code) {
	t.Helper()
	codes := f.codes(cmdID)
	if len(codes) != 1 || codes[0] != code {
		t.Fatalf("codes = %v, want [%s]", codes, code)
	}
	if evs := f.eventTypes(cmdID); len(evs) != 0 {
		t.Fatalf("rejected command declared events %v", evs)
	}
}

func (f *fixture) expectAccepted(t *testing.T, cmdID string, events ...EventType) {
	t.Helper()
	if codes := f.codes(cmdID); len(codes) != 0 {
		t.Fatalf("unexpected errors %v", f.ctx.ErrorsByCommand(cmdID))
	}
	got := f.eventTypes(cmdID)
	if fmt.Sprint(got) != fmt.Sprint(events) {
		t.Fatalf("events = %v, want %v", got, events)
	}
}
