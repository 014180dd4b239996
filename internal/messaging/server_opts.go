package messaging

import "time"

// DefaultClientName identifies the rules engine's connection in server
// monitoring.
const DefaultClientName = "rules"

// NatsServerOpt configures the embedded broker that carries commands,
// intents, events and narration.
type NatsServerOpt func(*NatsServer)

// WithStartTimeout bounds how long Start waits for the broker to accept
// connections before the rules workers give up.
func WithStartTimeout(d time.Duration) NatsServerOpt {
	return func(n *NatsServer) {
		n.startupTimeout = d
	}
}

// WithHost sets the interface front-ends connect to.
func WithHost(host string) NatsServerOpt {
	return func(n *NatsServer) {
		n.host = host
	}
}

// WithPort sets the listening port. -1 picks a free port, which tests use.
func WithPort(port int) NatsServerOpt {
	return func(n *NatsServer) {
		n.port = port
	}
}

// WithClientName names the engine's own connection. Empty names are ignored.
func WithClientName(name string) NatsServerOpt {
	return func(n *NatsServer) {
		if name != "" {
			n.clientName = name
		}
	}
}
