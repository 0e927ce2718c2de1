package config

import "time"

// PollerConfig controls the polling engine.
type PollerConfig struct {
	// Tick is the cadence of the internal polling loop.
	Tick time.Duration `yaml:"tick"`

	// BatchSize is how many due automations are polled concurrently.
	BatchSize int `yaml:"batch_size"`

	// InterBatchDelay smooths load on upstream services between batches.
	InterBatchDelay time.Duration `yaml:"inter_batch_delay"`
}

// DefaultPollerConfig returns the built-in poller defaults.
func DefaultPollerConfig() *PollerConfig {
	return &PollerConfig{
		Tick:            5 * time.Minute,
		BatchSize:       5,
		InterBatchDelay: 1 * time.Second,
	}
}

// SchedulerConfig controls the schedule engine.
type SchedulerConfig struct {
	// BatchSize is how many due automations are dispatched concurrently.
	BatchSize int `yaml:"batch_size"`

	// InterBatchDelay smooths load between dispatch batches.
	InterBatchDelay time.Duration `yaml:"inter_batch_delay"`

	// SafetyBuffer is subtracted from the interval cutoff so a batch that
	// finished late does not push the next run to the following slot.
	SafetyBuffer time.Duration `yaml:"safety_buffer"`

	// TimeOfDayWindow is the width of the slot a time_of_day target must
	// fall into to be considered due.
	TimeOfDayWindow time.Duration `yaml:"time_of_day_window"`
}

// DefaultSchedulerConfig returns the built-in scheduler defaults.
func DefaultSchedulerConfig() *SchedulerConfig {
	return &SchedulerConfig{
		BatchSize:       5,
		InterBatchDelay: 1 * time.Second,
		SafetyBuffer:    10 * time.Minute,
		TimeOfDayWindow: 5 * time.Minute,
	}
}

// ExecutorConfig controls action execution.
type ExecutorConfig struct {
	// ActionTimeout bounds a single tool invocation.
	ActionTimeout time.Duration `yaml:"action_timeout"`
}

// DefaultExecutorConfig returns the built-in executor defaults.
func DefaultExecutorConfig() *ExecutorConfig {
	return &ExecutorConfig{
		ActionTimeout: 30 * time.Second,
	}
}

// RegistryConfig locates the external tool registry service.
type RegistryConfig struct {
	// Addr is the gRPC target of the tool registry.
	Addr string `yaml:"addr"`

	// Timeout bounds registry metadata lookups (not tool execution).
	Timeout time.Duration `yaml:"timeout"`
}

// DefaultRegistryConfig returns the built-in registry defaults.
func DefaultRegistryConfig() *RegistryConfig {
	return &RegistryConfig{
		Addr:    "localhost:50051",
		Timeout: 10 * time.Second,
	}
}
