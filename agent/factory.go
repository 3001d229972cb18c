package agent

import "time"

// Option configures an Agent at construction time.
type Option func(*config)

type config struct {
	hooks           *Hooks
	readTimeout     time.Duration
	maxDatagramSize int
}

var defaultConfig = config{
	hooks:           DefaultHooks,
	readTimeout:     500 * time.Millisecond,
	maxDatagramSize: 4096,
}

// WithHooks overrides the trace hooks. Any nil field is filled in from
// NoOpHooks at construction time.
func WithHooks(h *Hooks) Option {
	return func(c *config) { c.hooks = h }
}

// WithReadTimeout bounds how long a single receive blocks before the loop
// re-checks for cooperative shutdown. Default 500ms.
func WithReadTimeout(d time.Duration) Option {
	return func(c *config) { c.readTimeout = d }
}

// WithMaxDatagramSize bounds the largest ingress datagram the agent will
// read. Default 4096.
func WithMaxDatagramSize(n int) Option {
	return func(c *config) { c.maxDatagramSize = n }
}
