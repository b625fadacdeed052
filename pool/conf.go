package pool

import "time"

// Option is a functional option for configuring the pool.
type Option func(*poolConfig)

type poolConfig struct {
	stallTimeout time.Duration
	onState      func(id int, s State)
}

// WithStallTimeout bounds how long JoinAll waits for the workers.
// Zero or a negative duration, the default, waits forever.
func WithStallTimeout(d time.Duration) Option {
	return func(cfg *poolConfig) {
		if d > 0 {
			cfg.stallTimeout = d
		}
	}
}

// WithStateHook registers a function called on every state transition of
// every handle. It is called from the goroutine causing the transition,
// so it must be safe for concurrent use.
func WithStateHook(fn func(id int, s State)) Option {
	return func(cfg *poolConfig) {
		cfg.onState = fn
	}
}
