package condition

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/triggerflow/triggerflow/pkg/models"
	"github.com/triggerflow/triggerflow/pkg/template"
)

func testCtx() map[string]any {
	return map[string]any{
		"trigger_data": map[string]any{
			"text":     "URGENT: prod is down",
			"score":    72.0,
			"status":   "open",
			"assignee": nil,
			"labels":   "bug,incident",
		},
		"threshold": "80",
	}
}

func boolPtr(b bool) *bool { return &b }

func TestEvaluateClauses(t *testing.T) {
	res := template.NewResolver()
	ctx := testCtx()

	tests := []struct {
		name string
		cond *models.Condition
		want bool
	}{
		{"nil condition passes", nil, true},
		{"equals", &models.Condition{Path: "trigger_data.status", Op: "==", Value: "open"}, true},
		{"eq alias", &models.Condition{Path: "trigger_data.status", Op: "eq", Value: "open"}, true},
		{"default op is equals", &models.Condition{Path: "trigger_data.status", Value: "open"}, true},
		{"not equals", &models.Condition{Path: "trigger_data.status", Op: "!=", Value: "closed"}, true},
		{"numeric equality across types", &models.Condition{Path: "trigger_data.score", Op: "==", Value: "72"}, true},
		{"less than", &models.Condition{Path: "trigger_data.score", Op: "<", Value: 80.0}, true},
		{"greater or equal", &models.Condition{Path: "trigger_data.score", Op: ">=", Value: 72.0}, true},
		{"numeric op on non-number fails", &models.Condition{Path: "trigger_data.text", Op: ">", Value: 1.0}, false},
		{"contains folds case by default", &models.Condition{Path: "trigger_data.text", Op: "contains", Value: "urgent"}, true},
		{"contains case-sensitive", &models.Condition{Path: "trigger_data.text", Op: "contains", Value: "urgent", CaseInsensitive: boolPtr(false)}, false},
		{"not_contains", &models.Condition{Path: "trigger_data.text", Op: "not_contains", Value: "staging"}, true},
		{"starts_with", &models.Condition{Path: "trigger_data.text", Op: "starts_with", Value: "urgent:"}, true},
		{"ends_with", &models.Condition{Path: "trigger_data.text", Op: "ends_with", Value: "down"}, true},
		{"contains_any hit", &models.Condition{Path: "trigger_data.labels", Op: "contains_any", Value: []any{"feature", "incident"}}, true},
		{"contains_any miss", &models.Condition{Path: "trigger_data.labels", Op: "contains_any", Value: []any{"feature", "docs"}}, false},
		{"contains_any scalar expected", &models.Condition{Path: "trigger_data.labels", Op: "contains_any", Value: "bug"}, true},
		{"exists", &models.Condition{Path: "trigger_data.text", Op: "exists"}, true},
		{"not_exists on null field", &models.Condition{Path: "trigger_data.assignee", Op: "not_exists"}, true},
		{"not_exists on missing field", &models.Condition{Path: "trigger_data.nope", Op: "not_exists"}, true},
		{"missing path fails comparison", &models.Condition{Path: "trigger_data.nope", Op: "==", Value: "x"}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Evaluate(tc.cond, ctx, res))
		})
	}
}

func TestEvaluatePathPrefixTolerance(t *testing.T) {
	res := template.NewResolver()
	ctx := testCtx()

	// Authors write paths with and without the trigger_data prefix; both
	// resolve.
	withPrefix := &models.Condition{Path: "trigger_data.status", Op: "==", Value: "open"}
	withoutPrefix := &models.Condition{Path: "status", Op: "==", Value: "open"}
	assert.True(t, Evaluate(withPrefix, ctx, res))
	assert.True(t, Evaluate(withoutPrefix, ctx, res))
}

func TestEvaluateTemplatedValue(t *testing.T) {
	res := template.NewResolver()
	ctx := testCtx()

	// The expected value is itself a template; the resolved "80" is coerced
	// to a number so the comparison stays numeric.
	cond := &models.Condition{Path: "trigger_data.score", Op: "<", Value: "{{threshold}}"}
	assert.True(t, Evaluate(cond, ctx, res))
}

func TestEvaluateLogicalClauses(t *testing.T) {
	res := template.NewResolver()
	ctx := testCtx()

	urgent := &models.Condition{Path: "trigger_data.text", Op: "contains", Value: "urgent"}
	lowScore := &models.Condition{Path: "trigger_data.score", Op: "<", Value: 50.0}
	open := &models.Condition{Path: "trigger_data.status", Op: "==", Value: "open"}

	t.Run("and", func(t *testing.T) {
		assert.True(t, Evaluate(&models.Condition{Operator: "AND", Clauses: []*models.Condition{urgent, open}}, ctx, res))
		assert.False(t, Evaluate(&models.Condition{Operator: "AND", Clauses: []*models.Condition{urgent, lowScore}}, ctx, res))
	})

	t.Run("or", func(t *testing.T) {
		assert.True(t, Evaluate(&models.Condition{Operator: "OR", Clauses: []*models.Condition{lowScore, open}}, ctx, res))
		assert.False(t, Evaluate(&models.Condition{Operator: "OR", Clauses: []*models.Condition{lowScore, lowScore}}, ctx, res))
	})

	t.Run("default operator is and", func(t *testing.T) {
		assert.False(t, Evaluate(&models.Condition{Clauses: []*models.Condition{urgent, lowScore}}, ctx, res))
	})

	t.Run("lowercase operator accepted", func(t *testing.T) {
		assert.True(t, Evaluate(&models.Condition{Operator: "or", Clauses: []*models.Condition{lowScore, open}}, ctx, res))
	})

	t.Run("nested groups", func(t *testing.T) {
		inner := &models.Condition{Operator: "OR", Clauses: []*models.Condition{lowScore, open}}
		outer := &models.Condition{Operator: "AND", Clauses: []*models.Condition{urgent, inner}}
		assert.True(t, Evaluate(outer, ctx, res))
	})

	t.Run("empty clause list passes", func(t *testing.T) {
		assert.True(t, Evaluate(&models.Condition{Operator: "AND"}, ctx, res))
	})
}

func TestUnknownOperatorDegradation(t *testing.T) {
	res := template.NewResolver()
	ctx := testCtx()
	cond := &models.Condition{Path: "trigger_data.status", Op: "matches_regex", Value: "o.*"}

	// Action guards fail closed; trigger filters admit so authoring mistakes
	// never drop events.
	assert.False(t, Evaluate(cond, ctx, res))
	assert.True(t, EvaluateFilter(cond, ctx, res))
}
