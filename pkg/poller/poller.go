// Package poller drives polling-triggered automations: it selects due
// automations, invokes their source tools with cursor-substituted
// parameters, filters the returned items against the stored cursor,
// aggregates them into queue events, and advances the cursor.
package poller

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/triggerflow/triggerflow/ent"
	"github.com/triggerflow/triggerflow/ent/automation"
	"github.com/triggerflow/triggerflow/pkg/config"
	"github.com/triggerflow/triggerflow/pkg/models"
	"github.com/triggerflow/triggerflow/pkg/queue"
	"github.com/triggerflow/triggerflow/pkg/template"
	"github.com/triggerflow/triggerflow/pkg/tools"
)

// Metrics summarize one polling run.
type Metrics struct {
	AutomationsPolled int `json:"automations_polled"`
	ItemsFound        int `json:"items_found"`
	ItemsFiltered     int `json:"items_filtered"`
	EventsCreated     int `json:"events_created"`
	Errors            int `json:"errors"`
	DurationMs        int `json:"duration_ms"`
}

// Poller polls due automations against the tool registry.
type Poller struct {
	client   *ent.Client
	queue    *queue.Queue
	registry tools.Registry
	tags     *tools.TagCatalog
	cfg      *config.PollerConfig
	resolver *template.Resolver
	now      func() time.Time
}

// New creates a Poller.
func New(client *ent.Client, q *queue.Queue, registry tools.Registry, tags *tools.TagCatalog, cfg *config.PollerConfig) *Poller {
	return &Poller{
		client:   client,
		queue:    q,
		registry: registry,
		tags:     tags,
		cfg:      cfg,
		resolver: template.NewResolver(),
		now:      time.Now,
	}
}

// RunDue polls every due automation, optionally restricted to one service
// category. Automations are processed in batches with an inter-batch delay
// to avoid stampeding upstream services.
func (p *Poller) RunDue(ctx context.Context, category string) (*Metrics, error) {
	start := p.now()

	due, err := p.client.Automation.Query().
		Where(
			automation.ActiveEQ(true),
			automation.TriggerTypeEQ(automation.TriggerTypePolling),
			automation.Or(
				automation.NextPollAtIsNil(),
				automation.NextPollAtLTE(start),
			),
		).
		Order(ent.Asc(automation.FieldNextPollAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("querying due automations: %w", err)
	}

	if category != "" {
		due = filterByCategory(due, category)
	}

	metrics := &Metrics{}
	var mu sync.Mutex

	for batchStart := 0; batchStart < len(due); batchStart += p.cfg.BatchSize {
		if batchStart > 0 {
			select {
			case <-ctx.Done():
				return metrics, ctx.Err()
			case <-time.After(p.cfg.InterBatchDelay):
			}
		}

		batchEnd := batchStart + p.cfg.BatchSize
		if batchEnd > len(due) {
			batchEnd = len(due)
		}

		var wg sync.WaitGroup
		for _, auto := range due[batchStart:batchEnd] {
			wg.Add(1)
			go func(auto *ent.Automation) {
				defer wg.Done()
				found, filtered, created, err := p.pollOne(ctx, auto)
				mu.Lock()
				defer mu.Unlock()
				metrics.AutomationsPolled++
				metrics.ItemsFound += found
				metrics.ItemsFiltered += filtered
				metrics.EventsCreated += created
				if err != nil {
					metrics.Errors++
				}
			}(auto)
		}
		wg.Wait()
	}

	metrics.DurationMs = int(p.now().Sub(start).Milliseconds())
	slog.Info("Polling run complete",
		"automations_polled", metrics.AutomationsPolled,
		"items_found", metrics.ItemsFound,
		"items_filtered", metrics.ItemsFiltered,
		"events_created", metrics.EventsCreated,
		"errors", metrics.Errors,
		"duration_ms", metrics.DurationMs)
	return metrics, nil
}

// ForcePoll polls one automation immediately, regardless of next_poll_at.
func (p *Poller) ForcePoll(ctx context.Context, automationID string) (*Metrics, error) {
	start := p.now()
	auto, err := p.client.Automation.Get(ctx, automationID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("automation %s not found", automationID)
		}
		return nil, fmt.Errorf("loading automation: %w", err)
	}
	if auto.TriggerType != automation.TriggerTypePolling {
		return nil, fmt.Errorf("automation %s is not a polling automation", automationID)
	}

	found, filtered, created, pollErr := p.pollOne(ctx, auto)
	metrics := &Metrics{
		AutomationsPolled: 1,
		ItemsFound:        found,
		ItemsFiltered:     filtered,
		EventsCreated:     created,
		DurationMs:        int(p.now().Sub(start).Milliseconds()),
	}
	if pollErr != nil {
		metrics.Errors = 1
	}
	return metrics, pollErr
}

// pollOne runs the per-automation protocol: materialize parameters, invoke
// the source tool, extract and filter items, aggregate, enqueue, advance
// the cursor.
func (p *Poller) pollOne(ctx context.Context, auto *ent.Automation) (found, filtered, created int, err error) {
	log := slog.With("automation_id", auto.ID, "owner_id", auto.OwnerID)

	var cfg models.PollingTriggerConfig
	if err := models.DecodeTriggerConfig(auto.TriggerConfig, &cfg); err != nil {
		log.Warn("Malformed polling trigger_config", "error", err)
		p.advancePoll(ctx, auto, "", cfg)
		return 0, 0, 0, fmt.Errorf("decoding trigger_config: %w", err)
	}
	if cfg.SourceTool == "" {
		log.Warn("Polling automation missing source_tool")
		p.advancePoll(ctx, auto, "", cfg)
		return 0, 0, 0, fmt.Errorf("automation %s missing source_tool", auto.ID)
	}

	cursor := ""
	if auto.LastPollCursor != nil {
		cursor = *auto.LastPollCursor
	}

	params := p.materializeParams(cfg, cursor)

	output, execErr := p.registry.Execute(ctx, cfg.SourceTool, params, auto.OwnerID, tools.ExecuteOptions{IsAutomation: true})
	if execErr != nil {
		log.Warn("Source tool failed, advancing next poll", "tool", cfg.SourceTool, "error", execErr)
		p.advancePoll(ctx, auto, cursor, cfg)
		return 0, 0, 0, fmt.Errorf("executing %s: %w", cfg.SourceTool, execErr)
	}

	items := extractItems(output)
	found = len(items)

	newItems := p.filterNew(items, cursor)
	filtered = found - len(newItems)

	mode := p.aggregationMode(ctx, cfg)
	serviceName := cfg.Service
	if serviceName == "" {
		serviceName = cfg.SourceTool
	}
	eventType := cfg.EventType
	if eventType == "" {
		eventType = "poll_result"
	}

	var events []models.InboundEvent
	if len(newItems) > 0 {
		var dropped int
		events, dropped = p.buildEvents(auto.ID, serviceName, eventType, mode, cfg.Filter, newItems, output)
		filtered += dropped
	}

	for _, ev := range events {
		ev.OwnerID = auto.OwnerID
		ok, enqueueErr := p.queue.Enqueue(ctx, ev)
		if enqueueErr != nil {
			log.Error("Failed to enqueue poll event", "event_id", ev.EventID, "error", enqueueErr)
			continue
		}
		if ok {
			created++
		}
	}

	nextCursor := p.advanceCursor(cursor, newItems)
	p.advancePoll(ctx, auto, nextCursor, cfg)

	log.Info("Poll complete",
		"tool", cfg.SourceTool,
		"mode", mode,
		"items_found", found,
		"items_filtered", filtered,
		"events_created", created)
	return found, filtered, created, nil
}

// materializeParams resolves template placeholders in tool_params. The
// cursor substitutes {{last_cursor}} (defaulting to yesterday); health
// tools get start_date/end_date defaults spanning cursor to today.
func (p *Poller) materializeParams(cfg models.PollingTriggerConfig, cursor string) map[string]any {
	now := p.now().UTC()
	yesterday := now.AddDate(0, 0, -1).Format("2006-01-02")

	cursorValue := cursor
	if cursorValue == "" {
		cursorValue = yesterday
	}

	templateCtx := map[string]any{"last_cursor": cursorValue}
	params := p.resolver.ResolveParameters(cfg.ToolParams, templateCtx)
	if params == nil {
		params = map[string]any{}
	}

	if looksLikeHealthTool(cfg.SourceTool) {
		if _, ok := params["start_date"]; !ok {
			start := yesterday
			if classifyCursor(cursorValue) == kindISO {
				start = cursorValue[:10]
			}
			params["start_date"] = start
		}
		if _, ok := params["end_date"]; !ok {
			params["end_date"] = now.Format("2006-01-02")
		}
	}

	return params
}

// filterNew keeps items whose date sorts after the cursor; items without a
// date are admitted iff their value signature differs from the cursor.
func (p *Poller) filterNew(items []map[string]any, cursor string) []map[string]any {
	if cursor == "" {
		return items
	}
	var out []map[string]any
	for _, item := range items {
		date := itemDate(item)
		if date == "" {
			if valueSignature(item) != cursor {
				out = append(out, item)
			}
			continue
		}
		if isNewer(date, cursor) {
			out = append(out, item)
		}
	}
	return out
}

// aggregationMode resolves the effective mode: explicit config wins, then
// the health-service default (latest), then per_item.
func (p *Poller) aggregationMode(ctx context.Context, cfg models.PollingTriggerConfig) string {
	if cfg.AggregationMode != "" {
		return cfg.AggregationMode
	}
	if p.tags != nil && p.tags.IsHealthTool(ctx, cfg.SourceTool) {
		return models.AggregationLatest
	}
	return models.AggregationPerItem
}

// advanceCursor computes the new cursor from the most recent item.
func (p *Poller) advanceCursor(cursor string, newItems []map[string]any) string {
	next := cursor
	for _, item := range newItems {
		value := itemDate(item)
		if value == "" {
			value = valueSignature(item)
		}
		next = maxCursor(next, value)
	}
	return next
}

// advancePoll writes the cursor and the next poll due time.
func (p *Poller) advancePoll(ctx context.Context, auto *ent.Automation, cursor string, cfg models.PollingTriggerConfig) {
	minutes := cfg.PollingIntervalMinutes
	if minutes <= 0 && auto.PollingIntervalMinutes != nil {
		minutes = *auto.PollingIntervalMinutes
	}
	if minutes <= 0 {
		minutes = defaultInterval(cfg.Service, cfg.SourceTool)
	}

	update := auto.Update().
		SetNextPollAt(p.now().Add(time.Duration(minutes) * time.Minute))
	if cursor != "" {
		update = update.SetLastPollCursor(cursor)
	}
	if err := update.Exec(ctx); err != nil {
		slog.Error("Failed to advance poll state", "automation_id", auto.ID, "error", err)
	}
}

func filterByCategory(autos []*ent.Automation, category string) []*ent.Automation {
	var out []*ent.Automation
	for _, auto := range autos {
		var cfg models.PollingTriggerConfig
		if err := models.DecodeTriggerConfig(auto.TriggerConfig, &cfg); err != nil {
			continue
		}
		if strings.EqualFold(cfg.Service, category) ||
			strings.HasPrefix(strings.ToLower(cfg.SourceTool), strings.ToLower(category)) {
			out = append(out, auto)
		}
	}
	return out
}
