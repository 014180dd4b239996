package combat

import (
	"errors"
	"slices"
	"testing"

	"github.com/pixil98/go-mud-rules/internal/game"
	"github.com/pixil98/go-testutil"
)

func TestSession_AddCombatant(t *testing.T) {
	tests := map[string]struct {
		setup  func(w *game.World, s *Session)
		actor  string
		team   game.Team
		expErr error
	}{
		"seats actor": {
			actor: "carol",
			team:  game.TeamAlpha,
		},
		"unknown actor": {
			actor:  "nobody",
			team:   game.TeamAlpha,
			expErr: game.ErrActorNotFound,
		},
		"bad team": {
			actor:  "carol",
			team:   "GAMMA",
			expErr: ErrInvalidTeam,
		},
		"already fighting elsewhere": {
			setup: func(w *game.World, s *Session) {
				w.Actor("carol").Session = "other"
			},
			actor:  "carol",
			team:   game.TeamAlpha,
			expErr: ErrAlreadyInSession,
		},
		"elsewhere": {
			setup: func(w *game.World, s *Session) {
				_ = w.AddPlace(game.NewPlace("yard", "Yard"))
				_ = w.MoveActor("carol", "yard")
			},
			actor:  "carol",
			team:   game.TeamAlpha,
			expErr: ErrWrongLocation,
		},
		"roster fixed once started": {
			setup: func(w *game.World, s *Session) {
				_ = s.Start()
			},
			actor:  "carol",
			team:   game.TeamAlpha,
			expErr: ErrNotPending,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			w, s := newArena(t,
				fighter{id: "alice", team: game.TeamBravo},
				fighter{id: "bob", team: game.TeamAlpha},
			)
			carol := game.NewActor("carol", "Carol", "pit")
			_ = w.AddActor(carol)
			if tt.setup != nil {
				tt.setup(w, s)
			}

			err := s.AddCombatant(tt.actor, tt.team)
			if !errors.Is(err, tt.expErr) {
				t.Fatalf("err = %v, want %v", err, tt.expErr)
			}
			if tt.expErr != nil {
				testutil.AssertEqual(t, "not seated", s.Has(tt.actor), false)
				return
			}
			testutil.AssertEqual(t, "seated", s.Has("carol"), true)
			testutil.AssertEqual(t, "back-reference", carol.Session, s.Id())
			testutil.AssertEqual(t, "position", s.State().Combatants["carol"].Position, AlphaLine)
		})
	}
}

func TestSession_RemoveCombatant(t *testing.T) {
	w, s := newArena(t,
		fighter{id: "alice", team: game.TeamBravo},
		fighter{id: "bob", team: game.TeamAlpha},
	)

	if err := s.RemoveCombatant("bob"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "unseated", s.Has("bob"), false)
	testutil.AssertEqual(t, "back-reference cleared", w.Actor("bob").Session, "")

	if err := s.RemoveCombatant("bob"); !errors.Is(err, ErrNotCombatant) {
		t.Errorf("err = %v, want %v", err, ErrNotCombatant)
	}
}

func TestSession_Start(t *testing.T) {
	tests := map[string]struct {
		fighters []fighter
		expErr   error
		expOrder []string
	}{
		"agility first": {
			fighters: []fighter{
				{id: "alice", team: game.TeamBravo, agility: 1},
				{id: "bob", team: game.TeamAlpha, agility: 5},
			},
			expOrder: []string{"bob", "alice"},
		},
		"bravo wins agility ties": {
			fighters: []fighter{
				{id: "alice", team: game.TeamAlpha, agility: 3},
				{id: "bob", team: game.TeamBravo, agility: 3},
			},
			expOrder: []string{"bob", "alice"},
		},
		"actor id breaks remaining ties": {
			fighters: []fighter{
				{id: "dave", team: game.TeamBravo},
				{id: "carl", team: game.TeamBravo},
				{id: "bob", team: game.TeamAlpha},
			},
			expOrder: []string{"carl", "dave", "bob"},
		},
		"one team only": {
			fighters: []fighter{
				{id: "alice", team: game.TeamBravo},
				{id: "bob", team: game.TeamBravo},
			},
			expErr: ErrMissingTeam,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, s := newArena(t, tt.fighters...)

			err := s.Start()
			if !errors.Is(err, tt.expErr) {
				t.Fatalf("err = %v, want %v", err, tt.expErr)
			}
			if tt.expErr != nil {
				testutil.AssertEqual(t, "status", s.Status(), game.SessionPending)
				return
			}
			if !slices.Equal(s.Initiative(), tt.expOrder) {
				t.Errorf("initiative = %v, want %v", s.Initiative(), tt.expOrder)
			}
			testutil.AssertEqual(t, "status", s.Status(), game.SessionRunning)
			testutil.AssertEqual(t, "round", s.Round(), 1)
			testutil.AssertEqual(t, "current", s.Current(), tt.expOrder[0])
		})
	}
}

func TestSession_StartOpenedBy(t *testing.T) {
	tests := map[string]struct {
		fighters []fighter
		opener   string
		expOrder []string
		expErr   error
	}{
		"slower opener goes first": {
			fighters: []fighter{
				{id: "bob", team: game.TeamBravo, agility: 2},
				{id: "alice", team: game.TeamAlpha, agility: 9},
			},
			opener:   "bob",
			expOrder: []string{"bob", "alice"},
		},
		"rest keep initiative": {
			fighters: []fighter{
				{id: "carl", team: game.TeamBravo, agility: 1},
				{id: "alice", team: game.TeamAlpha, agility: 9},
				{id: "bob", team: game.TeamAlpha, agility: 5},
			},
			opener:   "carl",
			expOrder: []string{"carl", "alice", "bob"},
		},
		"opener not seated": {
			fighters: []fighter{
				{id: "bob", team: game.TeamBravo},
				{id: "alice", team: game.TeamAlpha},
			},
			opener: "zed",
			expErr: ErrNotCombatant,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, s := newArena(t, tt.fighters...)

			err := s.StartOpenedBy(tt.opener)
			if !errors.Is(err, tt.expErr) {
				t.Fatalf("err = %v, want %v", err, tt.expErr)
			}
			if tt.expErr != nil {
				testutil.AssertEqual(t, "status", s.Status(), game.SessionPending)
				return
			}
			if !slices.Equal(s.Initiative(), tt.expOrder) {
				t.Errorf("initiative = %v, want %v", s.Initiative(), tt.expOrder)
			}
			testutil.AssertEqual(t, "current", s.Current(), tt.opener)
		})
	}
}

func TestSession_Transitions(t *testing.T) {
	tests := map[string]struct {
		steps  []func(s *Session) error
		expErr error
		expEnd game.SessionStatus
	}{
		"pause and resume": {
			steps:  []func(s *Session) error{(*Session).Start, (*Session).Pause, (*Session).Resume},
			expEnd: game.SessionRunning,
		},
		"pause while pending": {
			steps:  []func(s *Session) error{(*Session).Pause},
			expErr: ErrInvalidTransition,
			expEnd: game.SessionPending,
		},
		"resume while running": {
			steps:  []func(s *Session) error{(*Session).Start, (*Session).Resume},
			expErr: ErrInvalidTransition,
			expEnd: game.SessionRunning,
		},
		"start twice": {
			steps:  []func(s *Session) error{(*Session).Start, (*Session).Start},
			expErr: ErrInvalidTransition,
			expEnd: game.SessionRunning,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, s := newArena(t,
				fighter{id: "alice", team: game.TeamBravo},
				fighter{id: "bob", team: game.TeamAlpha},
			)
			var err error
			for _, step := range tt.steps {
				if err = step(s); err != nil {
					break
				}
			}
			if !errors.Is(err, tt.expErr) {
				t.Fatalf("err = %v, want %v", err, tt.expErr)
			}
			testutil.AssertEqual(t, "status", s.Status(), tt.expEnd)
		})
	}
}

func TestSession_CheckTurn(t *testing.T) {
	_, s := newArena(t,
		fighter{id: "alice", team: game.TeamBravo, agility: 2},
		fighter{id: "bob", team: game.TeamAlpha},
	)

	if err := s.CheckTurn("alice"); !errors.Is(err, ErrNotRunning) {
		t.Errorf("pending: err = %v, want %v", err, ErrNotRunning)
	}
	_ = s.Start()
	if err := s.CheckTurn("alice"); err != nil {
		t.Errorf("current: unexpected error: %v", err)
	}
	if err := s.CheckTurn("bob"); !errors.Is(err, ErrNotYourTurn) {
		t.Errorf("other: err = %v, want %v", err, ErrNotYourTurn)
	}
	_ = s.Pause()
	if err := s.CheckTurn("alice"); !errors.Is(err, ErrNotRunning) {
		t.Errorf("paused: err = %v, want %v", err, ErrNotRunning)
	}
	_ = s.Resume()
	s.State().Combatants["bob"].Incapacitated = true
	if err := s.CheckTurn("bob"); !errors.Is(err, ErrIncapacitated) {
		t.Errorf("incapacitated: err = %v, want %v", err, ErrIncapacitated)
	}
}

func TestSession_ArmorPenalty(t *testing.T) {
	w, s := newArena(t,
		fighter{id: "alice", team: game.TeamBravo, wear: "chainmail"},
		fighter{id: "bob", team: game.TeamAlpha},
	)

	testutil.AssertEqual(t, "natural", s.State().Combatants["alice"].AP.Natural, NaturalAP)
	testutil.AssertEqual(t, "max", s.State().Combatants["alice"].AP.Max, NaturalAP-1)

	_, _ = w.Actor("alice").UnequipToInventory("alice-armor")
	s.RefreshMaxAP("alice")
	testutil.AssertEqual(t, "max unarmored", s.State().Combatants["alice"].AP.Max, NaturalAP)
}

func TestOpen(t *testing.T) {
	w, s := newArena(t, fighter{id: "alice", team: game.TeamBravo})

	got, err := Open(w, testCatalog, s.Id())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "same state", got.State() == s.State(), true)

	if _, err := Open(w, testCatalog, "missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("err = %v, want %v", err, ErrSessionNotFound)
	}
}
