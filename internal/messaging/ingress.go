package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/pixil98/go-mud-rules/internal/commands"
)

// Subscriber delivers raw messages published on a subject.
type Subscriber interface {
	Subscribe(subject string, handler func(data []byte)) (func(), error)
}

// Submitter queues work for the rules driver.
type Submitter interface {
	Submit(ctx context.Context, cmd commands.Command) error
	SubmitIntent(ctx context.Context, in commands.Intent) error
}

// Ingress feeds commands and intents published on NATS to the driver.
type Ingress struct {
	sub    Subscriber
	target Submitter
	ready  <-chan struct{}
}

// NewIngress subscribes once ready is closed. A nil ready subscribes at
// once.
func NewIngress(sub Subscriber, target Submitter, ready <-chan struct{}) *Ingress {
	return &Ingress{sub: sub, target: target, ready: ready}
}

func (i *Ingress) Start(ctx context.Context) error {
	if i.ready != nil {
		select {
		case <-i.ready:
		case <-ctx.Done():
			return nil
		}
	}

	unsubCmd, err := i.sub.Subscribe(CommandSubject, func(data []byte) {
		i.onCommand(ctx, data)
	})
	if err != nil {
		return fmt.Errorf("subscribing to %s: %w", CommandSubject, err)
	}
	defer unsubCmd()

	unsubIntent, err := i.sub.Subscribe(IntentSubject, func(data []byte) {
		i.onIntent(ctx, data)
	})
	if err != nil {
		return fmt.Errorf("subscribing to %s: %w", IntentSubject, err)
	}
	defer unsubIntent()

	slog.InfoContext(ctx, "accepting commands", "commands", CommandSubject, "intents", IntentSubject)
	<-ctx.Done()
	return nil
}

// onCommand queues a decoded command. A command whose args do not decode is
// still queued without args so the rejection is declared like any other.
func (i *Ingress) onCommand(ctx context.Context, data []byte) {
	var cmd commands.Command
	if err := json.Unmarshal(data, &cmd); err != nil {
		var head struct {
			Id    string               `json:"id"`
			Type  commands.CommandType `json:"type"`
			Actor string               `json:"actor"`
		}
		if json.Unmarshal(data, &head) != nil {
			slog.WarnContext(ctx, "dropping malformed command", "error", err)
			return
		}
		cmd = commands.Command{Id: head.Id, Type: head.Type, Actor: head.Actor}
	}
	if err := i.target.Submit(ctx, cmd); err != nil {
		slog.WarnContext(ctx, "queueing command", "command", cmd.Id, "error", err)
	}
}

func (i *Ingress) onIntent(ctx context.Context, data []byte) {
	var in commands.Intent
	if err := json.Unmarshal(data, &in); err != nil {
		slog.WarnContext(ctx, "dropping malformed intent", "error", err)
		return
	}
	if err := i.target.SubmitIntent(ctx, in); err != nil {
		slog.WarnContext(ctx, "queueing intent", "intent", in.Id, "error", err)
	}
}
