package commands

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/pixil98/go-mud-rules/internal/game"
	"github.com/pixil98/go-testutil"
)

func TestResolver_Plan(t *testing.T) {
	tests := map[string]struct {
		engaged bool
		intent  Intent
		expPlan string
		expErr  error
	}{
		"attack outside a fight engages": {
			intent:  Intent{Actor: "alice", Verb: "attack", Target: "bob"},
			expPlan: "[ENGAGE ATTACK]",
		},
		"shoot outside a fight engages": {
			intent:  Intent{Actor: "alice", Verb: "Shoot", Target: "bob"},
			expPlan: "[ENGAGE RANGE]",
		},
		"attack inside a fight": {
			engaged: true,
			intent:  Intent{Actor: "alice", Verb: "hit", Target: "bob"},
			expPlan: "[ATTACK]",
		},
		"defend never engages": {
			intent:  Intent{Actor: "alice", Verb: "guard", Target: "bob"},
			expPlan: "[DEFEND]",
		},
		"direction verb": {
			intent:  Intent{Actor: "alice", Verb: " North "},
			expPlan: "[MOVE]",
		},
		"unknown verb": {
			intent: Intent{Actor: "alice", Verb: "dance"},
			expErr: ErrUnknownVerb,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t)
			if tt.engaged {
				f.engage(t)
			}

			plan, err := f.res.Plan(tt.intent)

			if tt.expErr != nil {
				if !errors.Is(err, tt.expErr) {
					t.Fatalf("err = %v, want %v", err, tt.expErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "plan", fmt.Sprint(plan), tt.expPlan)
		})
	}
}

func TestResolver_Command(t *testing.T) {
	f := newFixture(t)
	f.run("alice", &EngageArgs{Target: "bob"})
	sid := f.world.Actor("alice").Session
	f.run("alice", &TargetArgs{Target: "bob"})

	t.Run("default target", func(t *testing.T) {
		cmd, err := f.res.Command(Intent{Id: "i", Actor: "alice", Verb: "strike"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		testutil.AssertEqual(t, "type", cmd.Type, TypeStrike)
		testutil.AssertEqual(t, "location", cmd.Location, "hall")
		testutil.AssertEqual(t, "session", cmd.Session, sid)
		testutil.AssertEqual(t, "target", cmd.Args.(*StrikeArgs).Target, "bob")
	})

	t.Run("travel clears the session", func(t *testing.T) {
		cmd, err := f.res.Command(Intent{Id: "i", Actor: "alice", Verb: "north"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		testutil.AssertEqual(t, "session", cmd.Session, "")
		testutil.AssertEqual(t, "direction", cmd.Args.(*MoveArgs).Direction, "north")
	})

	t.Run("step keeps the session", func(t *testing.T) {
		cmd, err := f.res.Command(Intent{Id: "i", Actor: "alice", Verb: "step", Distance: 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		testutil.AssertEqual(t, "session", cmd.Session, sid)
	})

	t.Run("join through a combatant", func(t *testing.T) {
		cmd, err := f.res.Command(Intent{Id: "i", Actor: "carol", Verb: "join", Target: "bob", Team: game.TeamAlpha})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		testutil.AssertEqual(t, "session", cmd.Session, sid)
		testutil.AssertEqual(t, "team", cmd.Args.(*SessionJoinArgs).Team, game.TeamAlpha)
	})

	t.Run("party verbs", func(t *testing.T) {
		cmd, err := f.res.Command(Intent{Id: "i", Actor: "carol", Verb: "decline", Target: "dave"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		testutil.AssertEqual(t, "owner", cmd.Args.(*PartyRejectArgs).Owner, "dave")
	})
}

func TestResolver_Dispatch(t *testing.T) {
	tests := map[string]struct {
		intent    Intent
		expCodes  string
		expEvents string
	}{
		"unknown verb": {
			intent:   Intent{Actor: "alice", Verb: "dance"},
			expCodes: "[INVALID_SYNTAX]",
		},
		"walk north": {
			intent:    Intent{Actor: "alice", Verb: "go", Direction: "north"},
			expCodes:  "[]",
			expEvents: "[actor.moved]",
		},
		"invite by name": {
			intent:    Intent{Actor: "alice", Verb: "invite", Target: "carol"},
			expCodes:  "[]",
			expEvents: "[party.created party.invited]",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t)

			id := f.dispatch(tt.intent)

			testutil.AssertEqual(t, "codes", fmt.Sprint(f.codes(id)), tt.expCodes)
			testutil.AssertEqual(t, "events", fmt.Sprint(f.eventTypes(id)), tt.expEvents)
		})
	}
}

func TestResolver_FailedEngageSkipsAttack(t *testing.T) {
	f := newFixture(t)
	f.world.Actor("bob").Location = "yard"

	id := f.dispatch(Intent{Actor: "alice", Verb: "attack", Target: "bob"})

	f.expectRejected(t, id+".engage", CodeInvalidTarget)
	f.expectRejected(t, id, CodeInvalidTarget)
	if msg := f.ctx.ErrorsByCommand(id)[0].Message; !strings.HasPrefix(msg, "engaging bob: ") {
		t.Errorf("message = %q, want engaging prefix", msg)
	}
	testutil.AssertEqual(t, "sessions", len(f.world.Sessions()), 0)
}
