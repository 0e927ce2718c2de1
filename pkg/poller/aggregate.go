package poller

import (
	"fmt"
	"time"

	"github.com/triggerflow/triggerflow/pkg/condition"
	"github.com/triggerflow/triggerflow/pkg/models"
)

// buildEvents turns the new items into queue events per the aggregation
// mode. Returns the events plus how many items the trigger filter dropped.
func (p *Poller) buildEvents(autoID, serviceName, eventType, mode string, filter *models.Condition, newItems []map[string]any, rawOutput any) ([]models.InboundEvent, int) {
	passes := func(payload any) bool {
		if filter == nil {
			return true
		}
		return condition.EvaluateFilter(filter, map[string]any{"trigger_data": payload}, p.resolver)
	}

	switch mode {
	case models.AggregationBatch:
		surviving := filterItems(newItems, passes)
		dropped := len(newItems) - len(surviving)
		if len(surviving) == 0 {
			return nil, dropped
		}
		return []models.InboundEvent{{
			Service:   serviceName,
			EventType: eventType,
			EventID:   p.syntheticEventID(serviceName, "batch"),
			Data: map[string]any{
				"type":          eventType,
				"automation_id": autoID,
				"items":         anySlice(surviving),
				"count":         len(surviving),
				"_aggregation":  models.AggregationBatch,
			},
		}}, dropped

	case models.AggregationSummary:
		surviving := filterItems(newItems, passes)
		dropped := len(newItems) - len(surviving)
		if len(surviving) == 0 {
			return nil, dropped
		}
		data := map[string]any{
			"type":          eventType,
			"automation_id": autoID,
			"latest":        surviving[len(surviving)-1],
			"_aggregation":  models.AggregationSummary,
		}
		for field, stats := range numericStats(surviving) {
			data[field+"_stats"] = stats
		}
		return []models.InboundEvent{{
			Service:   serviceName,
			EventType: eventType,
			EventID:   p.syntheticEventID(serviceName, "summary"),
			Data:      data,
		}}, dropped

	case models.AggregationLatest:
		// The filter runs against the raw tool output so filter paths keep
		// matching the tool's documented return schema.
		if !passes(rawOutput) {
			return nil, len(newItems)
		}
		return []models.InboundEvent{{
			Service:   serviceName,
			EventType: eventType,
			EventID:   p.syntheticEventID(serviceName, "latest"),
			Data:      latestPayload(autoID, eventType, rawOutput),
		}}, 0

	default: // per_item
		var events []models.InboundEvent
		dropped := 0
		for _, item := range newItems {
			if !passes(item) {
				dropped++
				continue
			}
			data := make(map[string]any, len(item)+2)
			for k, v := range item {
				data[k] = v
			}
			data["type"] = eventType
			data["automation_id"] = autoID
			events = append(events, models.InboundEvent{
				Service:   serviceName,
				EventType: eventType,
				EventID:   itemEventID(serviceName, item),
				Data:      data,
			})
		}
		return events, dropped
	}
}

func filterItems(items []map[string]any, passes func(any) bool) []map[string]any {
	var out []map[string]any
	for _, item := range items {
		if passes(item) {
			out = append(out, item)
		}
	}
	return out
}

// latestPayload preserves the raw output's top-level shape: objects keep
// their keys, arrays stay arrays under items (never spread into numbered
// keys), primitives become a message.
func latestPayload(autoID, eventType string, rawOutput any) map[string]any {
	switch v := rawOutput.(type) {
	case map[string]any:
		data := make(map[string]any, len(v)+3)
		for k, val := range v {
			data[k] = val
		}
		data["type"] = eventType
		data["automation_id"] = autoID
		data["_aggregation"] = models.AggregationLatest
		return data
	case []any:
		return map[string]any{
			"type":          eventType,
			"automation_id": autoID,
			"items":         v,
			"count":         len(v),
			"_aggregation":  models.AggregationLatest,
		}
	default:
		return map[string]any{
			"type":          eventType,
			"automation_id": autoID,
			"message":       v,
			"_aggregation":  models.AggregationLatest,
		}
	}
}

// numericStats computes min/max/avg for every numeric field of the first
// item across the surviving set.
func numericStats(items []map[string]any) map[string]map[string]float64 {
	stats := make(map[string]map[string]float64)
	for field := range items[0] {
		if _, ok := models.AsFloat(items[0][field]); !ok {
			continue
		}
		var (
			minV, maxV, sum float64
			count           int
		)
		for _, item := range items {
			v, ok := models.AsFloat(item[field])
			if !ok {
				continue
			}
			if count == 0 || v < minV {
				minV = v
			}
			if count == 0 || v > maxV {
				maxV = v
			}
			sum += v
			count++
		}
		if count == 0 {
			continue
		}
		stats[field] = map[string]float64{
			"min": minV,
			"max": maxV,
			"avg": sum / float64(count),
		}
	}
	return stats
}

// itemEventID derives a stable dedup id for one item so re-polling the same
// item cannot enqueue it twice.
func itemEventID(serviceName string, item map[string]any) string {
	id := stringValue(item["id"])
	if id == "" {
		id = stringValue(item["event_id"])
	}
	if id == "" {
		id = valueSignature(item)
	}
	if date := itemDate(item); date != "" {
		return fmt.Sprintf("%s_%s_%s", serviceName, id, date)
	}
	return fmt.Sprintf("%s_%s", serviceName, id)
}

// syntheticEventID names one-per-poll aggregate events.
func (p *Poller) syntheticEventID(serviceName, mode string) string {
	return fmt.Sprintf("%s_%s_%d", serviceName, mode, p.now().UnixNano()/int64(time.Millisecond))
}

func anySlice(items []map[string]any) []any {
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}
