package tools

import (
	"context"
	"fmt"
	"sync"
)

// StubRegistry is an in-memory Registry for tests. Handlers are keyed by
// tool name; calls are recorded for assertion.
type StubRegistry struct {
	mu       sync.Mutex
	tools    map[string]*Tool
	handlers map[string]func(params map[string]any) (any, error)
	calls    []StubCall
}

// StubCall records one Execute invocation.
type StubCall struct {
	Tool    string
	Params  map[string]any
	OwnerID string
}

// NewStubRegistry creates an empty stub registry.
func NewStubRegistry() *StubRegistry {
	return &StubRegistry{
		tools:    make(map[string]*Tool),
		handlers: make(map[string]func(params map[string]any) (any, error)),
	}
}

// Register adds a tool with a handler. Metadata may be nil, in which case a
// minimal definition is synthesized.
func (s *StubRegistry) Register(name string, tool *Tool, handler func(params map[string]any) (any, error)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if tool == nil {
		tool = &Tool{Name: name}
	}
	s.tools[name] = tool
	s.handlers[name] = handler
}

// GetByName implements Registry.
func (s *StubRegistry) GetByName(ctx context.Context, name string) (*Tool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tool, ok := s.tools[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrToolNotFound, name)
	}
	return tool, nil
}

// ListTools implements Registry.
func (s *StubRegistry) ListTools(ctx context.Context, service string) ([]*Tool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*Tool
	for _, tool := range s.tools {
		if service == "" || tool.Service == service {
			out = append(out, tool)
		}
	}
	return out, nil
}

// Execute implements Registry.
func (s *StubRegistry) Execute(ctx context.Context, name string, params map[string]any, ownerID string, opts ExecuteOptions) (any, error) {
	s.mu.Lock()
	handler, ok := s.handlers[name]
	s.calls = append(s.calls, StubCall{Tool: name, Params: params, OwnerID: ownerID})
	s.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrToolNotFound, name)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return handler(params)
}

// Calls returns the recorded Execute invocations.
func (s *StubRegistry) Calls() []StubCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]StubCall, len(s.calls))
	copy(out, s.calls)
	return out
}

// CallsTo returns the recorded invocations of one tool.
func (s *StubRegistry) CallsTo(name string) []StubCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []StubCall
	for _, c := range s.calls {
		if c.Tool == name {
			out = append(out, c)
		}
	}
	return out
}
