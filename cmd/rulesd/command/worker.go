package command

import (
	"fmt"

	"github.com/pixil98/go-mud-rules/internal/display"
	"github.com/pixil98/go-mud-rules/internal/driver"
	"github.com/pixil98/go-mud-rules/internal/messaging"
	"github.com/pixil98/go-service"
)

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	catalog, err := cfg.Storage.BuildCatalog()
	if err != nil {
		return nil, err
	}
	world, err := cfg.Storage.BuildWorld()
	if err != nil {
		return nil, err
	}

	natsServer, err := cfg.Nats.buildNatsServer()
	if err != nil {
		return nil, fmt.Errorf("creating nats server: %w", err)
	}

	var narrator *display.Narrator
	if cfg.Narration.Enabled {
		narrator, err = display.NewNarrator(display.WithWidth(cfg.Narration.Width))
		if err != nil {
			return nil, fmt.Errorf("creating narrator: %w", err)
		}
	}

	workers := service.WorkerList{
		"nats": natsServer,
	}

	sinks := []driver.Sink{messaging.NewNatsPublisher(natsServer, narrator)}
	if cfg.Journal.enabled() {
		j := cfg.Journal.buildWriter()
		sinks = append(sinks, j)
		workers["journal"] = j
	}

	// Setup the rules driver
	rules, err := cfg.Driver.buildDriver(world, catalog, sinks...)
	if err != nil {
		return nil, fmt.Errorf("creating driver: %w", err)
	}
	workers["driver"] = rules
	workers["ingress"] = messaging.NewIngress(natsServer, rules, natsServer.Ready())

	return workers, nil
}
