package config

import "time"

// DispatcherConfig contains event dispatcher pool configuration.
// These values control how queued events are polled, claimed, and dispatched.
type DispatcherConfig struct {
	// WorkerCount is the number of dispatcher goroutines per replica/pod.
	// Each worker independently claims and dispatches events.
	WorkerCount int `yaml:"worker_count"`

	// PollInterval is the base interval for checking unprocessed events.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// MaxRetries is how many times an event is released back to the queue
	// after an infrastructure failure before it is dropped.
	MaxRetries int `yaml:"max_retries"`
}

// DefaultDispatcherConfig returns the built-in dispatcher defaults.
func DefaultDispatcherConfig() *DispatcherConfig {
	return &DispatcherConfig{
		WorkerCount:        5,
		PollInterval:       1 * time.Second,
		PollIntervalJitter: 500 * time.Millisecond,
		MaxRetries:         3,
	}
}
