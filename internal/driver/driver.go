package driver

import (
	"context"
	"log/slog"
	"time"

	"github.com/pixil98/go-mud-rules/internal/commands"
	"github.com/pixil98/go-mud-rules/internal/game"
	"github.com/pixil98/go-mud-rules/internal/party"
	"github.com/pixil98/go-mud-rules/internal/schema"
)

const (
	DefaultTickLength = time.Second * 2
	DefaultQueueSize  = 256
)

// Ticker has periodic work, such as flushing a sink.
type Ticker interface {
	Tick(context.Context) error
}

// Sink receives the outcome of every request the driver reduces.
type Sink interface {
	Deliver(ctx context.Context, o Outcome) error
}

// Outcome is everything one request declared.
type Outcome struct {
	Trace  string                   `json:"trace"`
	Actor  string                   `json:"actor,omitempty"`
	At     time.Time                `json:"at"`
	Events []commands.Event         `json:"events,omitempty"`
	Errors []commands.DeclaredError `json:"errors,omitempty"`
}

// Accepted reports whether the request declared no errors.
func (o Outcome) Accepted() bool {
	return len(o.Errors) == 0
}

type request struct {
	cmd    *commands.Command
	intent *commands.Intent
}

// RulesDriver owns the world. Requests are queued and reduced one at a time
// on the goroutine running Start, so the rules never see two writers.
type RulesDriver struct {
	tickLength time.Duration
	queueSize  int
	tickers    []Ticker
	sinks      []Sink
	parties    *party.Manager
	now        func() time.Time

	world     *game.World
	catalog   schema.Catalog
	processor *commands.Processor
	resolver  *commands.Resolver
	queue     chan request
}

func NewRulesDriver(w *game.World, catalog schema.Catalog, opts ...RulesDriverOpt) *RulesDriver {
	d := &RulesDriver{
		tickLength: DefaultTickLength,
		queueSize:  DefaultQueueSize,
		now:        time.Now,
		world:      w,
		catalog:    catalog,
		processor:  commands.NewProcessor(),
	}

	for _, opt := range opts {
		opt(d)
	}

	if d.parties == nil {
		d.parties = party.NewManager(w)
	}
	for _, s := range d.sinks {
		if t, ok := s.(Ticker); ok {
			d.tickers = append(d.tickers, t)
		}
	}
	d.resolver = commands.NewResolver(w, d.processor)
	d.queue = make(chan request, d.queueSize)

	return d
}

// Submit queues a command. It blocks while the queue is full.
func (d *RulesDriver) Submit(ctx context.Context, cmd commands.Command) error {
	return d.enqueue(ctx, request{cmd: &cmd})
}

// SubmitIntent queues an intent for resolution. It blocks while the queue
// is full.
func (d *RulesDriver) SubmitIntent(ctx context.Context, in commands.Intent) error {
	return d.enqueue(ctx, request{intent: &in})
}

func (d *RulesDriver) enqueue(ctx context.Context, req request) error {
	select {
	case d.queue <- req:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *RulesDriver) Start(ctx context.Context) error {
	ticker := time.NewTicker(d.tickLength)
	defer ticker.Stop()

	slog.InfoContext(ctx, "rules driver started", "tick", d.tickLength, "queue", d.queueSize)
	for {
		select {
		case <-ctx.Done():
			return nil
		case req := <-d.queue:
			d.reduce(ctx, req)
		case <-ticker.C:
			err := d.Tick(ctx)
			if err != nil {
				return err
			}
		}
	}
}

func (d *RulesDriver) Tick(ctx context.Context) error {
	for _, t := range d.tickers {
		if err := t.Tick(ctx); err != nil {
			return err
		}
	}
	return nil
}

// reduce runs one request against a fresh processing context and hands the
// outcome to every sink.
func (d *RulesDriver) reduce(ctx context.Context, req request) Outcome {
	pc := commands.NewContext(d.world, d.catalog, commands.WithPartyManager(d.parties))

	var o Outcome
	switch {
	case req.cmd != nil:
		cmd := *req.cmd
		if cmd.Id == "" {
			cmd.Id = d.world.NewID()
		}
		d.processor.Process(pc, cmd)
		o.Trace, o.Actor = cmd.Id, cmd.Actor
	case req.intent != nil:
		in := *req.intent
		if in.Id == "" {
			in.Id = d.world.NewID()
		}
		d.resolver.Dispatch(pc, in)
		o.Trace, o.Actor = in.Id, in.Actor
	}
	o.At = d.now()
	o.Events = pc.DeclaredEvents()
	o.Errors = pc.DeclaredErrors()

	for _, s := range d.sinks {
		if err := s.Deliver(ctx, o); err != nil {
			slog.WarnContext(ctx, "delivering outcome", "trace", o.Trace, "error", err)
		}
	}
	return o
}
