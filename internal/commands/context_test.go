package commands

import (
	"testing"

	"github.com/pixil98/go-mud-rules/internal/combat"
	"github.com/pixil98/go-mud-rules/internal/game"
	"github.com/pixil98/go-testutil"
)

func TestContext_Declarations(t *testing.T) {
	pc := NewContext(game.NewWorld(), testCatalog)

	pc.DeclareEvent(Event{Type: EventCombatAttacked, Trace: "a"})
	pc.DeclareEvent(Event{Type: EventCombatDone, Trace: "b"})
	pc.DeclareEvent(Event{Type: EventTurnStarted, Trace: "a"})
	got := pc.Failed("c", CodeForbidden, "no")

	testutil.AssertEqual(t, "returns itself", got == pc, true)
	testutil.AssertEqual(t, "events", len(pc.DeclaredEvents()), 3)
	testutil.AssertEqual(t, "by command", len(pc.DeclaredEventsByCommand("a")), 2)
	testutil.AssertEqual(t, "errors", len(pc.DeclaredErrors()), 1)
	testutil.AssertEqual(t, "error kind", pc.DeclaredErrors()[0].Kind, KindForbidden)
	testutil.AssertEqual(t, "error trace", pc.DeclaredErrors()[0].Trace, "c")
}

func TestContext_FinalizeAndDiscard(t *testing.T) {
	pc := NewContext(game.NewWorld(), testCatalog)
	pc.DeclareEvent(Event{Type: EventCombatAttacked, Trace: "a"})
	pc.DeclareEvent(Event{Type: EventCombatDone, Trace: "b"})

	pc.finalize("a", combat.Cost{ActionPoints: 2})
	evs := pc.DeclaredEventsByCommand("a")
	if evs[0].Cost == nil {
		t.Fatal("cost not finalized")
	}
	testutil.AssertEqual(t, "cost", evs[0].Cost.ActionPoints, 2.0)
	testutil.AssertEqual(t, "other untouched", pc.DeclaredEventsByCommand("b")[0].Cost == nil, true)

	pc.discard("a")
	testutil.AssertEqual(t, "discarded", len(pc.DeclaredEventsByCommand("a")), 0)
	testutil.AssertEqual(t, "kept", len(pc.DeclaredEvents()), 1)
}

func TestContext_Gear(t *testing.T) {
	pc := NewContext(game.NewWorld(), testCatalog)

	gear, ok := pc.Gear(&game.Item{Id: "s", Schema: "longsword"})
	testutil.AssertEqual(t, "weapon found", ok, true)
	testutil.AssertEqual(t, "weapon slot", gear.Slot, "main-hand")

	gear, ok = pc.Gear(&game.Item{Id: "m", Schema: "chainmail"})
	testutil.AssertEqual(t, "armor found", ok, true)
	testutil.AssertEqual(t, "armor setup", gear.SetupTime, 4.0)

	_, ok = pc.Gear(&game.Item{Id: "x", Schema: "teapot"})
	testutil.AssertEqual(t, "unknown", ok, false)
}
