// Package executor walks an automation's declarative action list: it builds
// the execution context, evaluates per-action conditions, resolves templated
// parameters, and dispatches tools through the registry.
//
// The executor performs no I/O of its own beyond tool dispatch — given
// identical inputs (automation, trigger data, user, clock, registry
// behavior) it produces identical results. Tool failures are non-fatal by
// default; only the usage-limit sentinel aborts a run.
package executor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/triggerflow/triggerflow/pkg/condition"
	"github.com/triggerflow/triggerflow/pkg/models"
	"github.com/triggerflow/triggerflow/pkg/notify"
	"github.com/triggerflow/triggerflow/pkg/template"
	"github.com/triggerflow/triggerflow/pkg/tools"
)

// DefaultActionTimeout bounds a single tool invocation.
const DefaultActionTimeout = 30 * time.Second

// Executor dispatches automation actions against the tool registry.
type Executor struct {
	registry      tools.Registry
	notifier      notify.Notifier
	resolver      *template.Resolver
	actionTimeout time.Duration
	now           func() time.Time
}

// Option customizes an Executor.
type Option func(*Executor)

// WithActionTimeout overrides the per-action timeout.
func WithActionTimeout(d time.Duration) Option {
	return func(e *Executor) { e.actionTimeout = d }
}

// WithClock fixes the executor clock (used by tests and replay).
func WithClock(now func() time.Time) Option {
	return func(e *Executor) {
		e.now = now
		e.resolver = template.NewResolverAt(now)
	}
}

// New creates an Executor. The notifier may be nil (notifications
// disabled).
func New(registry tools.Registry, notifier notify.Notifier, opts ...Option) *Executor {
	e := &Executor{
		registry:      registry,
		notifier:      notifier,
		resolver:      template.NewResolver(),
		actionTimeout: DefaultActionTimeout,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Input is everything one run needs. TriggerData is the event payload;
// Variables are the author's free-form values.
type Input struct {
	AutomationID   string
	AutomationName string
	OwnerID        string
	Actions        []models.Action
	Variables      map[string]any
	TriggerData    map[string]any
	User           models.UserInfo
	RequestID      string
}

// Execute runs the action list in declared order and returns the aggregate
// result. It never returns an error: every failure mode is folded into the
// result so the caller can log it uniformly.
func (e *Executor) Execute(ctx context.Context, in Input) *models.ExecutionResult {
	start := e.now()
	log := slog.With("automation_id", in.AutomationID, "owner_id", in.OwnerID)

	execCtx := e.buildContext(in)

	var (
		results         []models.ActionResult
		actionsExecuted int
		actionsFailed   int
		errorParts      []string
	)

	for _, action := range in.Actions {
		actionStart := e.now()

		if action.Condition != nil {
			if !condition.Evaluate(action.Condition, execCtx, e.resolver) {
				results = append(results, models.ActionResult{
					ActionID:        action.ID,
					Tool:            action.Tool,
					Success:         true,
					DurationMs:      int(e.now().Sub(actionStart).Milliseconds()),
					Skipped:         true,
					ConditionResult: boolPtr(false),
				})
				log.Info("Action skipped, condition not met", "action_id", action.ID)
				continue
			}
		}

		resolvedParams := e.resolver.ResolveParameters(action.Parameters, execCtx)

		log.Info("Executing action", "action_id", action.ID, "tool", action.Tool)
		output, execErr := e.executeTool(ctx, action.Tool, resolvedParams, in)

		durationMs := int(e.now().Sub(actionStart).Milliseconds())
		actionsExecuted++

		// Usage-limit sentinel arrives as a structured "success" payload.
		// It aborts the remainder of the run without counting the action as
		// an ordinary failure.
		if execErr == nil && models.IsUsageLimit(output) {
			return e.abortOnUsageLimit(ctx, in, output, action, results, actionsExecuted, durationMs, start, log)
		}

		if execErr != nil {
			actionsFailed++
			errorParts = append(errorParts, fmt.Sprintf("%s: %v", action.ID, execErr))
			results = append(results, models.ActionResult{
				ActionID:        action.ID,
				Tool:            action.Tool,
				Success:         false,
				DurationMs:      durationMs,
				Error:           execErr.Error(),
				ConditionResult: conditionResult(action),
			})
			log.Warn("Action failed", "action_id", action.ID, "error", execErr)
			continue
		}

		if action.OutputAs != "" {
			execCtx[action.OutputAs] = bindOutput(output)
		}

		results = append(results, models.ActionResult{
			ActionID:        action.ID,
			Tool:            action.Tool,
			Success:         true,
			DurationMs:      durationMs,
			Output:          output,
			ConditionResult: conditionResult(action),
		})
		log.Info("Action completed", "action_id", action.ID)
	}

	status := models.StatusCompleted
	success := true
	switch {
	case actionsFailed == 0:
	case actionsFailed < actionsExecuted:
		status = models.StatusPartialFailure
	default:
		status = models.StatusFailed
		success = false
	}

	result := &models.ExecutionResult{
		Success:         success,
		Status:          status,
		ActionsExecuted: actionsExecuted,
		ActionsFailed:   actionsFailed,
		ActionResults:   results,
		DurationMs:      int(e.now().Sub(start).Milliseconds()),
		ErrorSummary:    strings.Join(errorParts, "; "),
	}

	if status == models.StatusFailed && e.notifier != nil {
		if err := e.notifier.NotifyAutomationFailed(ctx, in.OwnerID, in.AutomationID, in.AutomationName, result.ErrorSummary); err != nil {
			log.Error("Failed to send automation failure notification", "error", err)
		}
	}

	return result
}

// buildContext assembles the template/condition context. Order matters:
// trigger_data spreads first so {{field}} works, the reserved keys override
// any colliding payload fields, and user variables override everything.
func (e *Executor) buildContext(in Input) map[string]any {
	ctx := make(map[string]any, len(in.TriggerData)+len(in.Variables)+2)
	for k, v := range in.TriggerData {
		ctx[k] = v
	}
	ctx["user"] = in.User.ContextMap()
	ctx["trigger_data"] = in.TriggerData
	for k, v := range in.Variables {
		ctx[k] = v
	}
	return ctx
}

// executeTool dispatches one tool invocation under the per-action timeout.
func (e *Executor) executeTool(ctx context.Context, tool string, params map[string]any, in Input) (any, error) {
	toolCtx, cancel := context.WithTimeout(ctx, e.actionTimeout)
	defer cancel()

	output, err := e.registry.Execute(toolCtx, tool, params, in.OwnerID, tools.ExecuteOptions{
		RequestID:    in.RequestID,
		IsAutomation: true,
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(toolCtx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("tool execution timed out after %v", e.actionTimeout)
		}
		return nil, err
	}

	// Registries that report errors in-band use an "Error:" prefix.
	if s, ok := output.(string); ok && strings.HasPrefix(s, "Error:") {
		return nil, errors.New(s)
	}

	return output, nil
}

// abortOnUsageLimit records the sentinel action, notifies the owner, and
// ends the run with usage_limit_exceeded. Subsequent actions never execute.
func (e *Executor) abortOnUsageLimit(ctx context.Context, in Input, output any, action models.Action, results []models.ActionResult, actionsExecuted, durationMs int, start time.Time, log *slog.Logger) *models.ExecutionResult {
	obj, _ := output.(map[string]any)
	service, _ := obj["service"].(string)
	if service == "" {
		service = "unknown"
	}
	message, _ := obj["message"].(string)
	if message == "" {
		message = "Usage limit reached"
	}

	log.Warn("Usage limit exceeded, aborting automation",
		"action_id", action.ID, "service", service)

	if e.notifier != nil {
		name := in.AutomationName
		if name == "" {
			name = "Your automation"
		}
		if err := e.notifier.NotifyUsageLimitExceeded(ctx, in.OwnerID, in.AutomationID, name); err != nil {
			log.Error("Failed to send usage limit notification", "error", err)
		}
	}

	results = append(results, models.ActionResult{
		ActionID:        action.ID,
		Tool:            action.Tool,
		Success:         false,
		DurationMs:      durationMs,
		Error:           fmt.Sprintf("Usage limit exceeded: %s", message),
		ConditionResult: conditionResult(action),
	})

	return &models.ExecutionResult{
		Success:         false,
		Status:          models.StatusUsageLimitExceeded,
		ActionsExecuted: actionsExecuted,
		ActionsFailed:   1,
		ActionResults:   results,
		DurationMs:      int(e.now().Sub(start).Milliseconds()),
		ErrorSummary:    fmt.Sprintf("Usage limit exceeded for %s", service),
	}
}

// bindOutput prepares a tool return for context binding: string outputs are
// probed for embedded JSON, object outputs are normalized so flattened
// template paths resolve alongside the documented nested ones.
func bindOutput(output any) any {
	processed := output
	if s, ok := output.(string); ok {
		processed = extractJSON(s)
	}
	if obj, ok := processed.(map[string]any); ok {
		return normalizeForContext(obj)
	}
	return processed
}

func conditionResult(action models.Action) *bool {
	if action.Condition == nil {
		return nil
	}
	return boolPtr(true)
}

func boolPtr(b bool) *bool { return &b }
