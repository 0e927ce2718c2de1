package webhook

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/triggerflow/triggerflow/pkg/models"
)

// parsedPayload is the normalized parse output. Events carry no owner yet;
// tenant resolution fills it in. Either workspaceID (external tenant id) or
// ownerID (services whose payload already carries the internal id) is set.
type parsedPayload struct {
	workspaceID string
	ownerID     string
	events      []models.InboundEvent

	// Gmail notifications carry only a history cursor; the service resolves
	// actual message ids in a second phase.
	gmailHistoryID    string
	gmailEmailAddress string
}

// parse dispatches to the per-service payload parser.
func parse(service string, body []byte, headers headerGetter) (*parsedPayload, error) {
	switch service {
	case "slack":
		return parseSlack(body)
	case "gmail", "google":
		return parseGmail(body)
	case "microsoft", "outlook":
		return parseMicrosoft(body)
	case "notion":
		return parseNotion(body)
	case "todoist":
		return parseTodoist(body)
	case "fitbit":
		return parseFitbit(body)
	case "github":
		return parseGitHub(body, headers)
	default:
		return nil, fmt.Errorf("unsupported webhook service %q", service)
	}
}

// headerGetter is the subset of http.Header the parsers need.
type headerGetter interface {
	Get(key string) string
}

// parseSlack handles Events API envelopes: {team_id, event_id, event:{type,
// ts, ...}}.
func parseSlack(body []byte) (*parsedPayload, error) {
	var envelope map[string]any
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("malformed slack payload: %w", err)
	}

	teamID := stringField(envelope, "team_id")
	if teamID == "" {
		return nil, fmt.Errorf("slack payload missing team_id")
	}

	event, _ := envelope["event"].(map[string]any)
	if event == nil {
		return nil, fmt.Errorf("slack payload missing event")
	}

	eventID := stringField(envelope, "event_id")
	if eventID == "" {
		eventID = stringField(event, "ts")
	}
	if eventID == "" {
		return nil, fmt.Errorf("slack payload missing event_id and ts")
	}

	return &parsedPayload{
		workspaceID: teamID,
		events: []models.InboundEvent{{
			Service:   "slack",
			EventType: stringField(event, "type"),
			EventID:   eventID,
			Data:      event,
		}},
	}, nil
}

// parseGmail unwraps the Pub/Sub push envelope: message.data is
// base64-encoded JSON {emailAddress, historyId}.
func parseGmail(body []byte) (*parsedPayload, error) {
	var envelope struct {
		Message struct {
			Data string `json:"data"`
		} `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("malformed pub/sub envelope: %w", err)
	}
	if envelope.Message.Data == "" {
		return nil, fmt.Errorf("pub/sub envelope missing message data")
	}

	decoded, err := base64.StdEncoding.DecodeString(envelope.Message.Data)
	if err != nil {
		// Pub/Sub uses URL-safe encoding in some delivery paths.
		decoded, err = base64.URLEncoding.DecodeString(envelope.Message.Data)
		if err != nil {
			return nil, fmt.Errorf("decoding pub/sub data: %w", err)
		}
	}

	var notification struct {
		EmailAddress string          `json:"emailAddress"`
		HistoryID    json.RawMessage `json:"historyId"`
	}
	if err := json.Unmarshal(decoded, &notification); err != nil {
		return nil, fmt.Errorf("malformed gmail notification: %w", err)
	}
	if notification.EmailAddress == "" {
		return nil, fmt.Errorf("gmail notification missing emailAddress")
	}

	return &parsedPayload{
		workspaceID:       notification.EmailAddress,
		gmailHistoryID:    strings.Trim(string(notification.HistoryID), `"`),
		gmailEmailAddress: notification.EmailAddress,
	}, nil
}

// parseMicrosoft handles Graph change notification batches. Notifications
// whose change_type is "updated" (flag/read-state churn) are dropped; only
// "created" propagates. clientState already carries the internal owner id.
func parseMicrosoft(body []byte) (*parsedPayload, error) {
	var envelope struct {
		Value []map[string]any `json:"value"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("malformed graph notification: %w", err)
	}
	if len(envelope.Value) == 0 {
		return nil, fmt.Errorf("graph notification missing value array")
	}

	out := &parsedPayload{}
	for _, notification := range envelope.Value {
		changeType := stringField(notification, "changeType")
		if strings.EqualFold(changeType, "updated") {
			continue
		}
		if out.ownerID == "" {
			out.ownerID = stringField(notification, "clientState")
		}

		eventID := ""
		if resourceData, ok := notification["resourceData"].(map[string]any); ok {
			eventID = stringField(resourceData, "id")
		}
		if eventID == "" {
			eventID = fmt.Sprintf("%s_%s",
				stringField(notification, "subscriptionId"),
				stringField(notification, "resource"))
		}

		out.events = append(out.events, models.InboundEvent{
			Service:   "microsoft",
			EventType: changeType,
			EventID:   eventID,
			Data:      notification,
		})
	}
	if out.ownerID == "" && len(out.events) == 0 {
		// Every notification was filtered; still a successful parse.
		out.ownerID = stringField(envelope.Value[0], "clientState")
	}
	return out, nil
}

// parseNotion handles workspace event payloads: {id, type, workspace_id,
// entity:{...}}.
func parseNotion(body []byte) (*parsedPayload, error) {
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("malformed notion payload: %w", err)
	}

	workspaceID := stringField(payload, "workspace_id")
	if workspaceID == "" {
		if workspace, ok := payload["workspace"].(map[string]any); ok {
			workspaceID = stringField(workspace, "id")
		}
	}
	if workspaceID == "" {
		return nil, fmt.Errorf("notion payload missing workspace id")
	}

	eventID := stringField(payload, "id")
	if eventID == "" {
		return nil, fmt.Errorf("notion payload missing event id")
	}

	return &parsedPayload{
		workspaceID: workspaceID,
		events: []models.InboundEvent{{
			Service:   "notion",
			EventType: stringField(payload, "type"),
			EventID:   eventID,
			Data:      payload,
		}},
	}, nil
}

// parseTodoist handles sync webhooks: {event_name, user_id, event_data:{id,
// ...}}.
func parseTodoist(body []byte) (*parsedPayload, error) {
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("malformed todoist payload: %w", err)
	}

	userID := stringField(payload, "user_id")
	if userID == "" {
		return nil, fmt.Errorf("todoist payload missing user_id")
	}
	eventName := stringField(payload, "event_name")

	eventData, _ := payload["event_data"].(map[string]any)
	if eventData == nil {
		eventData = payload
	}
	entityID := stringField(eventData, "id")
	if entityID == "" {
		return nil, fmt.Errorf("todoist payload missing event_data.id")
	}

	return &parsedPayload{
		workspaceID: userID,
		events: []models.InboundEvent{{
			Service:   "todoist",
			EventType: eventName,
			EventID:   fmt.Sprintf("%s_%s", entityID, eventName),
			Data:      eventData,
		}},
	}, nil
}

// parseFitbit handles subscription notification arrays:
// [{collectionType, date, ownerId, subscriptionId}].
func parseFitbit(body []byte) (*parsedPayload, error) {
	var notifications []map[string]any
	if err := json.Unmarshal(body, &notifications); err != nil {
		return nil, fmt.Errorf("malformed fitbit payload: %w", err)
	}
	if len(notifications) == 0 {
		return nil, fmt.Errorf("empty fitbit notification array")
	}

	out := &parsedPayload{
		workspaceID: stringField(notifications[0], "ownerId"),
	}
	if out.workspaceID == "" {
		return nil, fmt.Errorf("fitbit payload missing ownerId")
	}

	for _, notification := range notifications {
		collection := stringField(notification, "collectionType")
		out.events = append(out.events, models.InboundEvent{
			Service:   "fitbit",
			EventType: collection,
			EventID: fmt.Sprintf("%s_%s_%s",
				collection,
				stringField(notification, "date"),
				stringField(notification, "subscriptionId")),
			Data: notification,
		})
	}
	return out, nil
}

// parseGitHub handles repository webhooks; the event type and delivery id
// arrive in headers.
func parseGitHub(body []byte, headers headerGetter) (*parsedPayload, error) {
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("malformed github payload: %w", err)
	}

	deliveryID := headers.Get("X-GitHub-Delivery")
	if deliveryID == "" {
		return nil, fmt.Errorf("github payload missing X-GitHub-Delivery header")
	}

	workspaceID := ""
	if repo, ok := payload["repository"].(map[string]any); ok {
		workspaceID = stringField(repo, "full_name")
	}
	if workspaceID == "" {
		return nil, fmt.Errorf("github payload missing repository.full_name")
	}

	return &parsedPayload{
		workspaceID: workspaceID,
		events: []models.InboundEvent{{
			Service:   "github",
			EventType: headers.Get("X-GitHub-Event"),
			EventID:   deliveryID,
			Data:      payload,
		}},
	}, nil
}

// stringField reads a field as a string, rendering JSON numbers without an
// exponent (Todoist ids arrive as numbers).
func stringField(m map[string]any, key string) string {
	switch v := m[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	default:
		return ""
	}
}
