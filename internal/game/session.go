package game

// SessionStatus is the lifecycle phase of a combat session.
type SessionStatus string

const (
	SessionPending SessionStatus = "PENDING"
	SessionRunning SessionStatus = "RUNNING"
	SessionPaused  SessionStatus = "PAUSED"
)

// Team is one side of a fight.
type Team string

const (
	TeamAlpha Team = "ALPHA"
	TeamBravo Team = "BRAVO"
)

// Valid reports whether t names a known team.
func (t Team) Valid() bool {
	return t == TeamAlpha || t == TeamBravo
}

// ActionPoints is a combatant's per-turn budget.
type ActionPoints struct {
	// Natural is the budget before equipment penalties.
	Natural float64 `json:"natural"`
	// Max is the effective budget refilled at the start of each turn.
	Max     float64 `json:"max"`
	Current float64 `json:"current"`
}

// Combatant is an actor's seat in a combat session.
type Combatant struct {
	ActorId       string       `json:"actor"`
	Team          Team         `json:"team"`
	AP            ActionPoints `json:"ap"`
	Target        string       `json:"target,omitempty"`
	Position      float64      `json:"position"`
	Defending     bool         `json:"defending"`
	Guarding      string       `json:"guarding,omitempty"`
	Incapacitated bool         `json:"incapacitated"`
}

// CombatSession is a fight taking place at a single location.
type CombatSession struct {
	Id         string                `json:"id"`
	Location   string                `json:"location"`
	Status     SessionStatus         `json:"status"`
	Combatants map[string]*Combatant `json:"combatants"`
	// Initiative is the fixed turn order, set when the session starts.
	Initiative []string `json:"initiative,omitempty"`
	Round      int      `json:"round"`
	// Turn indexes Initiative.
	Turn int `json:"turn"`
}

// NewCombatSession creates an empty pending session.
func NewCombatSession(id, location string) *CombatSession {
	return &CombatSession{
		Id:         id,
		Location:   location,
		Status:     SessionPending,
		Combatants: make(map[string]*Combatant),
	}
}

// Current returns the combatant whose turn it is, or nil before the
// session has started.
func (s *CombatSession) Current() *Combatant {
	if s.Status == SessionPending || len(s.Initiative) == 0 {
		return nil
	}
	return s.Combatants[s.Initiative[s.Turn]]
}

// Has reports whether actorID fights in the session.
func (s *CombatSession) Has(actorID string) bool {
	_, ok := s.Combatants[actorID]
	return ok
}

// TeamMembers returns the ids of the combatants on team t, unordered.
func (s *CombatSession) TeamMembers(t Team) []string {
	var ids []string
	for id, c := range s.Combatants {
		if c.Team == t {
			ids = append(ids, id)
		}
	}
	return ids
}
