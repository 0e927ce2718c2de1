package config

import (
	"errors"
	"fmt"
)

// Validator performs validation on a loaded Config.
type Validator struct {
	cfg *Config
}

// NewValidator creates a validator over a loaded config.
func NewValidator(cfg *Config) *Validator {
	return &Validator{cfg: cfg}
}

// ValidateAll validates every configuration section, collecting all errors.
func (v *Validator) ValidateAll() error {
	var errs []error

	errs = append(errs, v.validateServer()...)
	errs = append(errs, v.validateDispatcher()...)
	errs = append(errs, v.validatePoller()...)
	errs = append(errs, v.validateScheduler()...)
	errs = append(errs, v.validateExecutor()...)
	errs = append(errs, v.validateRegistry()...)

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrValidationFailed, errors.Join(errs...))
	}
	return nil
}

func (v *Validator) validateServer() []error {
	var errs []error
	if v.cfg.Server.Addr == "" {
		errs = append(errs, NewValidationError("server", "addr", ErrInvalidValue))
	}
	return errs
}

func (v *Validator) validateDispatcher() []error {
	var errs []error
	d := v.cfg.Dispatcher
	if d.WorkerCount < 1 {
		errs = append(errs, NewValidationError("dispatcher", "worker_count",
			fmt.Errorf("%w: must be >= 1, got %d", ErrInvalidValue, d.WorkerCount)))
	}
	if d.PollInterval <= 0 {
		errs = append(errs, NewValidationError("dispatcher", "poll_interval",
			fmt.Errorf("%w: must be positive, got %v", ErrInvalidValue, d.PollInterval)))
	}
	if d.PollIntervalJitter < 0 {
		errs = append(errs, NewValidationError("dispatcher", "poll_interval_jitter",
			fmt.Errorf("%w: must be non-negative, got %v", ErrInvalidValue, d.PollIntervalJitter)))
	}
	if d.MaxRetries < 0 {
		errs = append(errs, NewValidationError("dispatcher", "max_retries",
			fmt.Errorf("%w: must be non-negative, got %d", ErrInvalidValue, d.MaxRetries)))
	}
	return errs
}

func (v *Validator) validatePoller() []error {
	var errs []error
	p := v.cfg.Poller
	if p.Tick <= 0 {
		errs = append(errs, NewValidationError("poller", "tick",
			fmt.Errorf("%w: must be positive, got %v", ErrInvalidValue, p.Tick)))
	}
	if p.BatchSize < 1 {
		errs = append(errs, NewValidationError("poller", "batch_size",
			fmt.Errorf("%w: must be >= 1, got %d", ErrInvalidValue, p.BatchSize)))
	}
	if p.InterBatchDelay < 0 {
		errs = append(errs, NewValidationError("poller", "inter_batch_delay",
			fmt.Errorf("%w: must be non-negative, got %v", ErrInvalidValue, p.InterBatchDelay)))
	}
	return errs
}

func (v *Validator) validateScheduler() []error {
	var errs []error
	s := v.cfg.Scheduler
	if s.BatchSize < 1 {
		errs = append(errs, NewValidationError("scheduler", "batch_size",
			fmt.Errorf("%w: must be >= 1, got %d", ErrInvalidValue, s.BatchSize)))
	}
	if s.SafetyBuffer < 0 {
		errs = append(errs, NewValidationError("scheduler", "safety_buffer",
			fmt.Errorf("%w: must be non-negative, got %v", ErrInvalidValue, s.SafetyBuffer)))
	}
	if s.TimeOfDayWindow <= 0 {
		errs = append(errs, NewValidationError("scheduler", "time_of_day_window",
			fmt.Errorf("%w: must be positive, got %v", ErrInvalidValue, s.TimeOfDayWindow)))
	}
	return errs
}

func (v *Validator) validateExecutor() []error {
	var errs []error
	if v.cfg.Executor.ActionTimeout <= 0 {
		errs = append(errs, NewValidationError("executor", "action_timeout",
			fmt.Errorf("%w: must be positive, got %v", ErrInvalidValue, v.cfg.Executor.ActionTimeout)))
	}
	return errs
}

func (v *Validator) validateRegistry() []error {
	var errs []error
	if v.cfg.Registry.Addr == "" {
		errs = append(errs, NewValidationError("registry", "addr", ErrInvalidValue))
	}
	return errs
}
