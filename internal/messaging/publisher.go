package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-mud-rules/internal/commands"
	"github.com/pixil98/go-mud-rules/internal/display"
	"github.com/pixil98/go-mud-rules/internal/driver"
)

// Publisher sends raw messages on a subject.
type Publisher interface {
	Publish(subject string, data []byte) error
}

// ErrorMessage is the body published on ErrorSubject.
type ErrorMessage struct {
	commands.DeclaredError
	Actor string `json:"actor,omitempty"`
}

// NatsPublisher fans outcomes out to NATS subjects: every event on its type
// subject, every error on ErrorSubject, and prose for the acting actor on
// that actor's narration subject.
type NatsPublisher struct {
	pub      Publisher
	narrator *display.Narrator
}

// NewNatsPublisher wraps a Publisher. A nil narrator publishes no prose.
func NewNatsPublisher(pub Publisher, narrator *display.Narrator) *NatsPublisher {
	return &NatsPublisher{pub: pub, narrator: narrator}
}

func (p *NatsPublisher) Deliver(_ context.Context, o driver.Outcome) error {
	el := errors.NewErrorList()

	for _, ev := range o.Events {
		el.Add(p.publishJSON(EventSubject(ev.Type), ev))
		el.Add(p.narrate(ev))
	}

	for _, de := range o.Errors {
		el.Add(p.publishJSON(ErrorSubject, ErrorMessage{DeclaredError: de, Actor: o.Actor}))
		if p.narrator != nil && o.Actor != "" {
			el.Add(p.pub.Publish(NarrationSubject(o.Actor), []byte(p.narrator.NarrateError(de))))
		}
	}

	return el.Err()
}

func (p *NatsPublisher) publishJSON(subject string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding message for %s: %w", subject, err)
	}
	if err := p.pub.Publish(subject, data); err != nil {
		return fmt.Errorf("publishing to %s: %w", subject, err)
	}
	return nil
}

func (p *NatsPublisher) narrate(ev commands.Event) error {
	if p.narrator == nil || ev.Actor == "" {
		return nil
	}
	text, ok, err := p.narrator.Narrate(ev)
	if err != nil || !ok {
		return err
	}
	return p.pub.Publish(NarrationSubject(ev.Actor), []byte(text))
}
