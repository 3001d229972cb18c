package client

import "time"

// Option configures a Client at construction time.
type Option func(*config)

type config struct {
	network        string
	timeout        time.Duration
	hooks          *Hooks
	requestIDSeed  int32
	useFixedSeedID bool
}

var defaultConfig = config{
	network: "udp",
	timeout: 5 * time.Second,
	hooks:   DefaultHooks,
}

// WithNetwork overrides the network the client's local port is bound on
// and targets are resolved against. Default "udp".
func WithNetwork(network string) Option {
	return func(c *config) { c.network = network }
}

// WithTimeout bounds how long a single request/response round trip may
// take before Get/GetNext/Set return a timeout error. Default 5s.
func WithTimeout(d time.Duration) Option {
	return func(c *config) { c.timeout = d }
}

// WithHooks overrides the trace hooks. Any nil field is filled in from
// NoOpHooks at construction time.
func WithHooks(h *Hooks) Option {
	return func(c *config) { c.hooks = h }
}

// WithRequestIDSeed fixes the first request_id value a Client issues,
// instead of the default randomized seed. Intended for deterministic
// tests; production callers should leave this unset.
func WithRequestIDSeed(seed int32) Option {
	return func(c *config) {
		c.requestIDSeed = seed
		c.useFixedSeedID = true
	}
}
