package config

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidYAML marks a triggerflow.yaml that failed to parse.
	ErrInvalidYAML = errors.New("invalid YAML syntax")

	// ErrValidationFailed wraps the joined per-field validation errors.
	ErrValidationFailed = errors.New("configuration validation failed")

	// ErrInvalidValue marks a single out-of-range field value.
	ErrInvalidValue = errors.New("invalid field value")
)

// ValidationError carries the section and field a validation failure
// belongs to.
type ValidationError struct {
	Component string
	Field     string
	Err       error
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: field '%s': %v", e.Component, e.Field, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Component, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// NewValidationError builds a ValidationError for one section field.
func NewValidationError(component, field string, err error) *ValidationError {
	return &ValidationError{Component: component, Field: field, Err: err}
}

// LoadError carries the file a load failure came from.
type LoadError struct {
	File string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load %s: %v", e.File, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// NewLoadError builds a LoadError for one config file.
func NewLoadError(file string, err error) *LoadError {
	return &LoadError{File: file, Err: err}
}
