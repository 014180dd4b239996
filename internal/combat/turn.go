package combat

import "github.com/pixil98/go-mud-rules/internal/game"

// TurnChange describes the turn handed out by an advance.
type TurnChange struct {
	Round    int    `json:"round"`
	Current  string `json:"current"`
	NewRound bool   `json:"new_round"`
}

// AdvanceIfExhausted passes the turn on when the current combatant has no
// action points left or can no longer act.
func (s *Session) AdvanceIfExhausted() (TurnChange, bool) {
	if s.state.Status != game.SessionRunning {
		return TurnChange{}, false
	}
	cur := s.currentState()
	if cur == nil || (cur.AP.Current > 0 && !cur.Incapacitated) {
		return TurnChange{}, false
	}
	return s.advance(), true
}

func (s *Session) currentState() *game.Combatant {
	return s.state.Current()
}

// advance moves to the next combatant able to act, wrapping into a new
// round. If nobody can act the turn stays put.
func (s *Session) advance() TurnChange {
	n := len(s.state.Initiative)
	change := TurnChange{}
	turn := s.state.Turn
	round := s.state.Round
	for range n {
		turn++
		if turn >= n {
			turn = 0
			round++
			change.NewRound = true
		}
		if c := s.state.Combatants[s.state.Initiative[turn]]; c != nil && !c.Incapacitated {
			s.state.Turn = turn
			s.state.Round = round
			s.beginTurn()
			change.Round = round
			change.Current = c.ActorId
			return change
		}
	}
	return TurnChange{Round: s.state.Round, Current: s.Current()}
}

// beginTurn refills the current combatant and drops its stances.
func (s *Session) beginTurn() {
	c := s.currentState()
	if c == nil {
		return
	}
	c.AP.Current = c.AP.Max
	c.Defending = false
	c.Guarding = ""
}
