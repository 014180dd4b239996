package command

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/pixil98/go-errors"
)

type Config struct {
	Storage   StorageConfig   `json:"storage"`
	Nats      NatsConfig      `json:"nats"`
	Journal   JournalConfig   `json:"journal"`
	Driver    DriverConfig    `json:"driver"`
	Narration NarrationConfig `json:"narration"`
}

func (c *Config) Validate() error {
	el := errors.NewErrorList()

	el.Add(c.Storage.validate())
	el.Add(c.Nats.validate())
	el.Add(c.Journal.validate())
	el.Add(c.Driver.validate())
	el.Add(c.Narration.validate())

	return el.Err()
}

// applyEnv overlays RULES_* environment variables on the file config.
func (c *Config) applyEnv() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parsing environment: %w", err)
	}
	return nil
}

type NarrationConfig struct {
	Enabled bool `json:"enabled"`
	Width   int  `json:"width"`
}

func (c *NarrationConfig) validate() error {
	if c.Width < 0 {
		return fmt.Errorf("narration width must not be negative")
	}
	return nil
}
