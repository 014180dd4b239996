package messaging

import "github.com/pixil98/go-mud-rules/internal/commands"

const (
	// CommandSubject carries JSON commands into the rules engine.
	CommandSubject = "rules.commands"
	// IntentSubject carries JSON intents into the rules engine.
	IntentSubject = "rules.intents"
	// ErrorSubject carries every declared error.
	ErrorSubject = "rules.errors"

	eventPrefix     = "rules.events."
	narrationPrefix = "rules.narration."
)

// EventSubject is where events of type t are published.
func EventSubject(t commands.EventType) string {
	return eventPrefix + string(t)
}

// NarrationSubject is where prose for one actor is published.
func NarrationSubject(actorID string) string {
	return narrationPrefix + actorID
}
