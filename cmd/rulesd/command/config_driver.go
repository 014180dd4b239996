package command

import (
	"fmt"
	"time"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-mud-rules/internal/driver"
	"github.com/pixil98/go-mud-rules/internal/game"
	"github.com/pixil98/go-mud-rules/internal/schema"
)

type DriverConfig struct {
	TickInterval string `json:"tick_interval"`
	QueueSize    int    `json:"queue_size"`
}

func (c *DriverConfig) validate() error {
	el := errors.NewErrorList()

	if c.TickInterval != "" {
		d, err := time.ParseDuration(c.TickInterval)
		if err != nil {
			el.Add(fmt.Errorf("parsing tick_interval: %w", err))
		} else if d < time.Second {
			el.Add(fmt.Errorf("tick_interval must be at least 1 second"))
		}
	}
	if c.QueueSize < 0 {
		el.Add(fmt.Errorf("queue_size must not be negative"))
	}

	return el.Err()
}

func (c *DriverConfig) buildDriver(w *game.World, catalog schema.Catalog, sinks ...driver.Sink) (*driver.RulesDriver, error) {
	opts := []driver.RulesDriverOpt{driver.WithSinks(sinks...)}
	if c.TickInterval != "" {
		d, err := time.ParseDuration(c.TickInterval)
		if err != nil {
			return nil, fmt.Errorf("parsing tick_interval: %w", err)
		}
		opts = append(opts, driver.WithTickLength(d))
	}
	if c.QueueSize > 0 {
		opts = append(opts, driver.WithQueueSize(c.QueueSize))
	}
	return driver.NewRulesDriver(w, catalog, opts...), nil
}
