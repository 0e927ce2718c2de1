// Package condition evaluates structured condition clauses over an
// execution context. Conditions guard individual actions and filter events
// at the trigger boundary; the two call sites differ only in how an unknown
// operator degrades (action guard fails closed, trigger filter passes
// through so authoring mistakes never drop events).
package condition

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/triggerflow/triggerflow/pkg/models"
	"github.com/triggerflow/triggerflow/pkg/template"
)

// Evaluate evaluates an action-guard condition. A nil condition passes.
// Unresolvable paths and unknown operators evaluate to false.
func Evaluate(cond *models.Condition, ctx map[string]any, res *template.Resolver) bool {
	return evaluate(cond, ctx, res, false)
}

// EvaluateFilter evaluates a trigger-boundary filter. A nil filter always
// admits. Unknown operators log a warning and admit the event.
func EvaluateFilter(cond *models.Condition, ctx map[string]any, res *template.Resolver) bool {
	return evaluate(cond, ctx, res, true)
}

func evaluate(cond *models.Condition, ctx map[string]any, res *template.Resolver, filterMode bool) bool {
	if cond == nil {
		return true
	}

	if cond.IsClause() {
		return evaluateClause(cond, ctx, res, filterMode)
	}

	if len(cond.Clauses) == 0 {
		return true
	}

	operator := strings.ToUpper(cond.Operator)
	if operator == "" {
		operator = "AND"
	}

	// Short-circuits in declared clause order.
	switch operator {
	case "AND":
		for _, clause := range cond.Clauses {
			if !evaluate(clause, ctx, res, filterMode) {
				return false
			}
		}
		return true
	case "OR":
		for _, clause := range cond.Clauses {
			if evaluate(clause, ctx, res, filterMode) {
				return true
			}
		}
		return false
	default:
		slog.Warn("Unknown logical operator in condition", "operator", cond.Operator)
		return false
	}
}

func evaluateClause(clause *models.Condition, ctx map[string]any, res *template.Resolver, filterMode bool) bool {
	op := clause.Op
	if op == "" {
		op = "=="
	}

	expected := clause.Value
	if s, ok := expected.(string); ok && template.ContainsTemplate(s) {
		expected = coerceNumericString(res.Resolve(s, ctx))
	}

	actual := lookupPath(ctx, clause.Path)

	return compare(actual, op, expected, caseInsensitive(clause), filterMode)
}

// lookupPath resolves the clause path, tolerating author inconsistency
// around the trigger_data prefix: the bare path and both the prefixed and
// de-prefixed variants are tried in order.
func lookupPath(ctx map[string]any, path string) any {
	if value := models.GetPath(ctx, path); value != nil {
		return value
	}
	if stripped, ok := strings.CutPrefix(path, "trigger_data."); ok {
		return models.GetPath(ctx, stripped)
	}
	return models.GetPath(ctx, "trigger_data."+path)
}

func caseInsensitive(clause *models.Condition) bool {
	if clause.CaseInsensitive == nil {
		return true
	}
	return *clause.CaseInsensitive
}

func compare(actual any, op string, expected any, foldCase, filterMode bool) bool {
	// Existence operators treat null and undefined alike.
	switch op {
	case "exists":
		return actual != nil
	case "not_exists":
		return actual == nil
	}

	if actual == nil {
		return false
	}

	switch op {
	case "<", ">", "<=", ">=":
		a, okA := models.AsFloat(actual)
		e, okE := models.AsFloat(expected)
		if !okA || !okE {
			slog.Warn("Cannot compare non-numeric values",
				"actual", actual, "op", op, "expected", expected)
			return false
		}
		switch op {
		case "<":
			return a < e
		case ">":
			return a > e
		case "<=":
			return a <= e
		default:
			return a >= e
		}

	case "==", "eq":
		return equal(actual, expected)
	case "!=", "neq":
		return !equal(actual, expected)

	case "contains":
		return strings.Contains(fold(actual, foldCase), fold(expected, foldCase))
	case "not_contains":
		return !strings.Contains(fold(actual, foldCase), fold(expected, foldCase))
	case "starts_with":
		return strings.HasPrefix(fold(actual, foldCase), fold(expected, foldCase))
	case "ends_with":
		return strings.HasSuffix(fold(actual, foldCase), fold(expected, foldCase))
	case "contains_any":
		haystack := fold(actual, foldCase)
		values, ok := expected.([]any)
		if !ok {
			return strings.Contains(haystack, fold(expected, foldCase))
		}
		for _, v := range values {
			if strings.Contains(haystack, fold(v, foldCase)) {
				return true
			}
		}
		return false

	default:
		slog.Warn("Unknown comparison operator", "op", op)
		return filterMode
	}
}

// equal compares numerically when both sides parse as numbers, otherwise by
// exact stringified value.
func equal(actual, expected any) bool {
	a, okA := models.AsFloat(actual)
	e, okE := models.AsFloat(expected)
	if okA && okE {
		return a == e
	}
	return valueString(actual) == valueString(expected)
}

func fold(v any, foldCase bool) string {
	s := valueString(v)
	if foldCase {
		return strings.ToLower(s)
	}
	return s
}

func valueString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// coerceNumericString converts a resolved template value to a number when it
// looks like one, so numeric comparisons against templated thresholds work.
func coerceNumericString(s string) any {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
