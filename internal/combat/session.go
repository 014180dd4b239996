package combat

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/pixil98/go-mud-rules/internal/game"
	"github.com/pixil98/go-mud-rules/internal/schema"
)

// NaturalAP is the per-turn action point budget of an unencumbered combatant.
const NaturalAP = 4.0

// Starting positions on the battlefield line.
const (
	BravoLine = 0.0
	AlphaLine = 1.0
)

// Session drives one combat session stored in the world.
type Session struct {
	world   *game.World
	catalog schema.Catalog
	state   *game.CombatSession
}

// Open wraps an existing session.
func Open(w *game.World, catalog schema.Catalog, sessionID string) (*Session, error) {
	st := w.Session(sessionID)
	if st == nil {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	return &Session{world: w, catalog: catalog, state: st}, nil
}

// Create registers a new pending session at location.
func Create(w *game.World, catalog schema.Catalog, location string) (*Session, error) {
	if w.Place(location) == nil {
		return nil, fmt.Errorf("%w: %s", game.ErrPlaceNotFound, location)
	}
	st := game.NewCombatSession(w.NewID(), location)
	if err := w.AddSession(st); err != nil {
		return nil, err
	}
	return &Session{world: w, catalog: catalog, state: st}, nil
}

func (s *Session) Id() string                 { return s.state.Id }
func (s *Session) Location() string           { return s.state.Location }
func (s *Session) Status() game.SessionStatus { return s.state.Status }
func (s *Session) Round() int                 { return s.state.Round }
func (s *Session) State() *game.CombatSession { return s.state }
func (s *Session) Has(actorID string) bool    { return s.state.Has(actorID) }
func (s *Session) Initiative() []string       { return slices.Clone(s.state.Initiative) }

// Current returns the id of the combatant whose turn it is, or "".
func (s *Session) Current() string {
	if c := s.state.Current(); c != nil {
		return c.ActorId
	}
	return ""
}

// AddCombatant seats an actor on a team. Only pending sessions accept new
// combatants, and the actor must stand at the session location.
func (s *Session) AddCombatant(actorID string, team game.Team) error {
	if s.state.Status != game.SessionPending {
		return ErrNotPending
	}
	if !team.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidTeam, team)
	}
	a := s.world.Actor(actorID)
	if a == nil {
		return fmt.Errorf("%w: %s", game.ErrActorNotFound, actorID)
	}
	if a.Session != "" {
		return fmt.Errorf("%w: %s", ErrAlreadyInSession, a.Session)
	}
	if a.Location != s.state.Location {
		return ErrWrongLocation
	}

	pos := AlphaLine
	if team == game.TeamBravo {
		pos = BravoLine
	}
	c := &game.Combatant{
		ActorId:       actorID,
		Team:          team,
		Position:      pos,
		Incapacitated: a.Incapacitated(),
	}
	s.state.Combatants[actorID] = c
	a.Session = s.state.Id
	s.refreshMaxAP(c, a)
	c.AP.Current = c.AP.Max
	return nil
}

// RemoveCombatant unseats an actor from a pending session.
func (s *Session) RemoveCombatant(actorID string) error {
	if s.state.Status != game.SessionPending {
		return ErrNotPending
	}
	if !s.state.Has(actorID) {
		return ErrNotCombatant
	}
	delete(s.state.Combatants, actorID)
	if a := s.world.Actor(actorID); a != nil && a.Session == s.state.Id {
		a.Session = ""
	}
	return nil
}

// Start fixes initiative and hands the first turn out.
func (s *Session) Start() error {
	return s.start("")
}

// StartOpenedBy starts the session with actorID taking the first turn.
// The rest of the order follows initiative.
func (s *Session) StartOpenedBy(actorID string) error {
	if !s.state.Has(actorID) {
		return ErrNotCombatant
	}
	return s.start(actorID)
}

func (s *Session) start(opener string) error {
	if s.state.Status != game.SessionPending {
		return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, s.state.Status, game.SessionRunning)
	}
	if len(s.state.TeamMembers(game.TeamAlpha)) == 0 || len(s.state.TeamMembers(game.TeamBravo)) == 0 {
		return ErrMissingTeam
	}

	s.state.Initiative = s.initiativeOrder(opener)
	s.state.Status = game.SessionRunning
	s.state.Round = 1
	s.state.Turn = 0
	if s.currentState().Incapacitated {
		s.advance()
	} else {
		s.beginTurn()
	}
	return nil
}

// Pause freezes turn progression.
func (s *Session) Pause() error {
	if s.state.Status != game.SessionRunning {
		return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, s.state.Status, game.SessionPaused)
	}
	s.state.Status = game.SessionPaused
	return nil
}

// Resume continues a paused session where it left off.
func (s *Session) Resume() error {
	if s.state.Status != game.SessionPaused {
		return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, s.state.Status, game.SessionRunning)
	}
	s.state.Status = game.SessionRunning
	return nil
}

// Combatant returns the action API for one combatant.
func (s *Session) Combatant(actorID string) (*Combatant, error) {
	c, ok := s.state.Combatants[actorID]
	if !ok {
		return nil, ErrNotCombatant
	}
	a := s.world.Actor(actorID)
	if a == nil {
		return nil, fmt.Errorf("%w: %s", game.ErrActorNotFound, actorID)
	}
	return &Combatant{session: s, state: c, actor: a}, nil
}

// CheckTurn reports whether actorID may act right now.
func (s *Session) CheckTurn(actorID string) error {
	if s.state.Status != game.SessionRunning {
		return ErrNotRunning
	}
	if c, ok := s.state.Combatants[actorID]; ok && c.Incapacitated {
		return ErrIncapacitated
	}
	if s.Current() != actorID {
		return ErrNotYourTurn
	}
	return nil
}

// RefreshMaxAP recomputes a combatant's effective budget after its
// equipment changed. Current AP is clipped to the new maximum.
func (s *Session) RefreshMaxAP(actorID string) {
	c, ok := s.state.Combatants[actorID]
	if !ok {
		return
	}
	if a := s.world.Actor(actorID); a != nil {
		s.refreshMaxAP(c, a)
	}
}

func (s *Session) refreshMaxAP(c *game.Combatant, a *game.Actor) {
	c.AP.Natural = NaturalAP
	c.AP.Max = max(0, NaturalAP-armorPenalty(s.catalog, a))
	c.AP.Current = min(c.AP.Current, c.AP.Max)
}

// initiativeOrder sorts by agility descending, then BRAVO ahead of ALPHA,
// then actor id. A non-empty opener goes ahead of everyone.
func (s *Session) initiativeOrder(opener string) []string {
	ids := make([]string, 0, len(s.state.Combatants))
	for id := range s.state.Combatants {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(x, y string) int {
		if x == opener || y == opener {
			return cmp.Compare(boolRank(y == opener), boolRank(x == opener))
		}
		ax, ay := s.world.Actor(x), s.world.Actor(y)
		if ax != nil && ay != nil {
			if c := cmp.Compare(ay.Agility, ax.Agility); c != 0 {
				return c
			}
		}
		if c := cmp.Compare(teamRank(s.state.Combatants[x].Team), teamRank(s.state.Combatants[y].Team)); c != 0 {
			return c
		}
		return cmp.Compare(x, y)
	})
	return ids
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}

func teamRank(t game.Team) int {
	if t == game.TeamBravo {
		return 0
	}
	return 1
}

func armorPenalty(catalog schema.Catalog, a *game.Actor) float64 {
	if catalog == nil {
		return 0
	}
	var total float64
	for _, it := range a.Equipment.Slots {
		if armor, ok := catalog.Armor(it.Schema); ok {
			total += armor.APPenalty
		}
	}
	return total
}
