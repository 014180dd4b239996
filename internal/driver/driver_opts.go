package driver

import (
	"time"

	"github.com/pixil98/go-mud-rules/internal/party"
)

type RulesDriverOpt func(*RulesDriver)

func WithTickLength(tickLength time.Duration) RulesDriverOpt {
	return func(d *RulesDriver) {
		d.tickLength = tickLength
	}
}

// WithQueueSize bounds how many requests may wait to be reduced.
func WithQueueSize(size int) RulesDriverOpt {
	return func(d *RulesDriver) {
		if size >= 0 {
			d.queueSize = size
		}
	}
}

// WithSinks adds outcome consumers. Sinks that are also Tickers get ticked.
func WithSinks(sinks ...Sink) RulesDriverOpt {
	return func(d *RulesDriver) {
		d.sinks = append(d.sinks, sinks...)
	}
}

func WithTickers(tickers ...Ticker) RulesDriverOpt {
	return func(d *RulesDriver) {
		d.tickers = append(d.tickers, tickers...)
	}
}

// WithPartyManager shares a party manager, and its successor policy, across
// every request.
func WithPartyManager(m *party.Manager) RulesDriverOpt {
	return func(d *RulesDriver) {
		d.parties = m
	}
}

func WithClock(now func() time.Time) RulesDriverOpt {
	return func(d *RulesDriver) {
		d.now = now
	}
}
