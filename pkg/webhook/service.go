// Package webhook implements multi-tenant webhook ingress: one endpoint per
// service, with protocol handshakes, per-service signature verification,
// payload parsing, tenant resolution, service-specific filtering, and
// idempotent enqueue.
package webhook

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/triggerflow/triggerflow/ent"
	"github.com/triggerflow/triggerflow/ent/automation"
	"github.com/triggerflow/triggerflow/pkg/condition"
	"github.com/triggerflow/triggerflow/pkg/config"
	"github.com/triggerflow/triggerflow/pkg/credentials"
	"github.com/triggerflow/triggerflow/pkg/events"
	"github.com/triggerflow/triggerflow/pkg/models"
	"github.com/triggerflow/triggerflow/pkg/queue"
	"github.com/triggerflow/triggerflow/pkg/template"
	"github.com/triggerflow/triggerflow/pkg/tools"
)

// Request is the transport-independent view of an inbound webhook call.
type Request struct {
	Service string
	Method  string
	Query   url.Values
	Headers http.Header
	Body    []byte
}

// Result tells the HTTP layer what to respond. Text takes precedence over
// JSON when set (handshake echoes are plain text).
type Result struct {
	Status int
	Text   string
	JSON   map[string]any
}

// Service is the webhook ingress pipeline.
type Service struct {
	client    *ent.Client
	queue     *queue.Queue
	store     *credentials.Store
	registry  tools.Registry
	publisher *events.Publisher
	cfg       *config.WebhookConfig
	resolver  *template.Resolver
}

// NewService creates the ingress service. The publisher may be nil
// (streaming disabled); the registry is required for Gmail history
// filtering but may be nil when Gmail ingress is unused.
func NewService(client *ent.Client, q *queue.Queue, store *credentials.Store, registry tools.Registry, publisher *events.Publisher, cfg *config.WebhookConfig) *Service {
	return &Service{
		client:    client,
		queue:     q,
		store:     store,
		registry:  registry,
		publisher: publisher,
		cfg:       cfg,
		resolver:  template.NewResolver(),
	}
}

// Process runs the full handler sequence and always returns a Result; the
// HTTP layer translates it verbatim. Enqueue happens synchronously (it is a
// single insert) but automation execution never does.
func (s *Service) Process(ctx context.Context, req *Request) *Result {
	log := slog.With("service", req.Service)

	// 1. Protocol handshakes precede all other logic.
	if result := s.handshake(req); result != nil {
		return result
	}

	// 2. Signature verification.
	if err := s.verifySignature(req); err != nil {
		log.Warn("Webhook signature verification failed", "error", err)
		return &Result{Status: http.StatusUnauthorized, JSON: map[string]any{"error": "invalid signature"}}
	}

	// 3. Parse.
	parsed, err := parse(req.Service, req.Body, req.Headers)
	if err != nil {
		log.Warn("Webhook parse failed", "error", err)
		return &Result{Status: http.StatusBadRequest, JSON: map[string]any{"error": err.Error()}}
	}

	// 4. Tenant resolution (oldest integration wins on shared workspaces).
	ownerID := parsed.ownerID
	if ownerID == "" {
		ownerID, err = s.store.ResolveOwner(ctx, canonicalService(req.Service), parsed.workspaceID)
		if err != nil {
			log.Info("No integration for webhook tenant", "workspace_id", parsed.workspaceID)
			return &Result{Status: http.StatusOK, JSON: map[string]any{"status": "ignored", "reason": "no matching integration"}}
		}
	}

	// 5. Gmail two-phase history filtering.
	inbound := parsed.events
	if parsed.gmailHistoryID != "" {
		inbound = s.expandGmailHistory(ctx, ownerID, parsed)
	}

	// 6/7. Automation-side filter with loss-free default, then enqueue.
	received := len(inbound)
	enqueued := 0
	for _, ev := range inbound {
		ev.OwnerID = ownerID
		if !s.anyAutomationWants(ctx, ownerID, ev) {
			log.Info("Event filtered by automations", "event_id", ev.EventID, "event_type", ev.EventType)
			continue
		}
		created, err := s.queue.Enqueue(ctx, ev)
		if err != nil {
			log.Error("Failed to enqueue webhook event", "event_id", ev.EventID, "error", err)
			continue
		}
		if created {
			enqueued++
			s.publishEnqueued(ctx, ev)
		}
	}

	resp := map[string]any{
		"status":   "accepted",
		"received": received,
		"enqueued": enqueued,
	}
	// Filtered deliveries (Gmail history with no new messages, automation
	// filters dropping everything, duplicate redeliveries) still get a 2xx;
	// the flag tells the sender nothing was enqueued.
	if enqueued == 0 {
		resp["filtered"] = true
	}
	return &Result{Status: http.StatusOK, JSON: resp}
}

// handshake answers the per-service verification protocols. Returns nil
// when the request is a regular delivery.
func (s *Service) handshake(req *Request) *Result {
	// Fitbit subscriber verification: GET ?verify=<code>.
	if req.Service == "fitbit" && req.Method == http.MethodGet {
		if code := req.Query.Get("verify"); code != "" {
			if code == s.cfg.FitbitVerificationCode && code != "" {
				return &Result{Status: http.StatusNoContent}
			}
			return &Result{Status: http.StatusNotFound}
		}
	}

	// Microsoft Graph endpoint validation: echo the token as text/plain.
	if token := req.Query.Get("validationToken"); token != "" {
		return &Result{Status: http.StatusOK, Text: token}
	}

	// Slack URL verification and Notion endpoint verification arrive in the
	// body of an otherwise normal POST.
	if len(req.Body) > 0 && req.Body[0] == '{' {
		var probe struct {
			Type              string `json:"type"`
			Challenge         string `json:"challenge"`
			VerificationToken string `json:"verification_token"`
		}
		if err := json.Unmarshal(req.Body, &probe); err == nil {
			if probe.Type == "url_verification" && probe.Challenge != "" {
				return &Result{Status: http.StatusOK, Text: probe.Challenge}
			}
			if probe.VerificationToken != "" {
				// Surface the token so the operator can copy it into the
				// Notion integration settings.
				slog.Info("Received Notion verification token", "token", probe.VerificationToken)
				return &Result{Status: http.StatusOK, JSON: map[string]any{
					"verification_token": probe.VerificationToken,
				}}
			}
		}
	}

	return nil
}

// anyAutomationWants applies the automation-side filter: the event is kept
// when at least one matching webhook automation passes its filter, or when
// no automation matches at all (loss-free default).
func (s *Service) anyAutomationWants(ctx context.Context, ownerID string, ev models.InboundEvent) bool {
	candidates, err := s.client.Automation.Query().
		Where(
			automation.OwnerIDEQ(ownerID),
			automation.ActiveEQ(true),
			automation.TriggerTypeEQ(automation.TriggerTypeWebhook),
		).
		All(ctx)
	if err != nil {
		slog.Error("Failed to load automations for webhook filter", "owner_id", ownerID, "error", err)
		// Prefer loss-free behavior: enqueue and let the dispatcher decide.
		return true
	}

	matched := 0
	for _, auto := range candidates {
		var cfg models.WebhookTriggerConfig
		if err := models.DecodeTriggerConfig(auto.TriggerConfig, &cfg); err != nil {
			continue
		}
		if !strings.EqualFold(cfg.Service, ev.Service) || !cfg.MatchesEventType(ev.EventType) {
			continue
		}
		matched++

		filter := cfg.FilterCondition()
		if filter == nil {
			return true
		}
		filterCtx := map[string]any{"trigger_data": ev.Data}
		if condition.EvaluateFilter(filter, filterCtx, s.resolver) {
			return true
		}
	}

	// No automation matched: keep the event rather than silently drop it.
	return matched == 0
}

func (s *Service) publishEnqueued(ctx context.Context, ev models.InboundEvent) {
	if s.publisher == nil {
		return
	}
	err := s.publisher.PublishEventEnqueued(ctx, events.EventEnqueuedPayload{
		Type:      events.EventTypeEventEnqueued,
		OwnerID:   ev.OwnerID,
		Service:   ev.Service,
		EventType: ev.EventType,
		EventID:   ev.EventID,
		Timestamp: time.Now().Format(time.RFC3339Nano),
	})
	if err != nil {
		slog.Warn("Failed to publish event enqueued", "event_id", ev.EventID, "error", err)
	}
}

// canonicalService maps endpoint aliases onto the service name stored on
// integration rows.
func canonicalService(service string) string {
	switch service {
	case "google":
		return "gmail"
	case "outlook":
		return "microsoft"
	default:
		return service
	}
}
