// Package tools defines the engine's view of the external tool registry:
// metadata lookup, execution dispatch, and the service-tag classification
// the poller uses to pick aggregation defaults.
package tools

import (
	"context"
	"errors"
)

// ErrToolNotFound is returned when the registry has no tool with the
// requested name.
var ErrToolNotFound = errors.New("tool not found")

// HealthTag is the registry tag marking health/fitness data sources.
const HealthTag = "Health and Wellness"

// Tool is the registry-side metadata for one callable.
type Tool struct {
	Name             string
	Description      string
	ParametersSchema string
	ReturnsSchema    string
	Service          string
	Tags             []string
}

// HasTag reports whether the tool carries the given registry tag.
func (t *Tool) HasTag(tag string) bool {
	for _, candidate := range t.Tags {
		if candidate == tag {
			return true
		}
	}
	return false
}

// Registry is the tool-registry collaborator contract. The production
// implementation is a gRPC client (see grpc.go); tests substitute a stub.
type Registry interface {
	// GetByName returns tool metadata, or ErrToolNotFound.
	GetByName(ctx context.Context, name string) (*Tool, error)

	// ListTools returns all tools, optionally filtered by service.
	ListTools(ctx context.Context, service string) ([]*Tool, error)

	// Execute invokes the tool and returns its decoded JSON result as a
	// dynamic value (map, slice, or scalar). The caller owns the deadline.
	Execute(ctx context.Context, name string, params map[string]any, ownerID string, opts ExecuteOptions) (any, error)
}

// ExecuteOptions carries per-invocation context passed through to the
// registry.
type ExecuteOptions struct {
	RequestID    string
	IsAutomation bool
}
