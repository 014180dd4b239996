package commands

import "github.com/pixil98/go-mud-rules/internal/combat"

// Event is a fact produced by a command. Trace is the id of that command.
type Event struct {
	Type     EventType `json:"type"`
	Trace    string    `json:"trace"`
	Actor    string    `json:"actor,omitempty"`
	Location string    `json:"location,omitempty"`
	Payload  any       `json:"payload,omitempty"`
	// Cost is the realized price of the action, set on events of commands
	// that went through action point accounting.
	Cost *combat.Cost `json:"cost,omitempty"`
}

// Payloads.

type SessionPayload struct {
	Session  string `json:"session"`
	Location string `json:"location,omitempty"`
	Round    int    `json:"round,omitempty"`
	Current  string `json:"current,omitempty"`
}

type CombatantPayload struct {
	Session string `json:"session"`
	Actor   string `json:"actor"`
	Team    string `json:"team,omitempty"`
}

type DefendPayload struct {
	Ally string `json:"ally,omitempty"`
}

type PositionPayload struct {
	Position float64 `json:"position"`
}

type TargetPayload struct {
	Target string `json:"target"`
}

type TravelPayload struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Direction string `json:"direction"`
}

type EquipmentPayload struct {
	Item   string `json:"item"`
	Schema string `json:"schema"`
	Slot   string `json:"slot"`
}

type PartyPayload struct {
	Party  string `json:"party"`
	Owner  string `json:"owner,omitempty"`
	Member string `json:"member,omitempty"`
}
