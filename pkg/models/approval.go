// Package models contains request/response and domain value types shared
// across services, the approval gate, and the API layer.
package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Constraint kinds for approval rule argument matching.
const (
	ConstraintExact   = "exact"
	ConstraintPattern = "pattern"
	ConstraintAny     = "any"
)

// Specificity weights per constraint kind. An exact match is worth more than
// a pattern; "any" contributes nothing, so an empty constraint map scores 0
// and loses precedence to any non-empty rule.
const (
	specificityExact   = 3
	specificityPattern = 2
	specificityAny     = 0
)

// ArgConstraint is a single per-argument constraint of an approval rule.
// Canonical JSON form is {"kind":"exact","value":"ops@x.com"}. Two legacy
// forms are accepted on decode: the bare string "*" (≡ any) and any other
// bare scalar (≡ exact on its string rendering).
type ArgConstraint struct {
	Kind  string `json:"kind"`
	Value string `json:"value,omitempty"`
}

// UnmarshalJSON decodes both the canonical object form and legacy scalars.
func (c *ArgConstraint) UnmarshalJSON(data []byte) error {
	// Try canonical object form first.
	type canonical ArgConstraint
	var obj canonical
	if err := json.Unmarshal(data, &obj); err == nil && obj.Kind != "" {
		*c = ArgConstraint(obj)
		return c.validate()
	}

	// Legacy scalar forms.
	var scalar interface{}
	if err := json.Unmarshal(data, &scalar); err != nil {
		return fmt.Errorf("invalid arg constraint: %w", err)
	}
	switch v := scalar.(type) {
	case string:
		if v == "*" {
			*c = ArgConstraint{Kind: ConstraintAny}
		} else {
			*c = ArgConstraint{Kind: ConstraintExact, Value: v}
		}
	case float64:
		*c = ArgConstraint{Kind: ConstraintExact, Value: trimFloat(v)}
	case bool:
		*c = ArgConstraint{Kind: ConstraintExact, Value: fmt.Sprintf("%t", v)}
	default:
		return fmt.Errorf("invalid arg constraint: unsupported form %T", scalar)
	}
	return nil
}

func (c *ArgConstraint) validate() error {
	switch c.Kind {
	case ConstraintExact, ConstraintPattern:
		return nil
	case ConstraintAny:
		c.Value = ""
		return nil
	default:
		return fmt.Errorf("invalid arg constraint kind %q", c.Kind)
	}
}

// Specificity returns the precedence weight contributed by this constraint.
func (c ArgConstraint) Specificity() int {
	switch c.Kind {
	case ConstraintExact:
		return specificityExact
	case ConstraintPattern:
		return specificityPattern
	default:
		return specificityAny
	}
}

// ConstraintSetSpecificity sums the specificity of a full constraint map.
func ConstraintSetSpecificity(constraints map[string]ArgConstraint) int {
	total := 0
	for _, c := range constraints {
		total += c.Specificity()
	}
	return total
}

// trimFloat renders a JSON number without a trailing ".0" for integral values.
func trimFloat(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%v", v)
}

// ExecutionResult is the persisted outcome of running an approved action.
type ExecutionResult struct {
	Success    bool        `json:"success"`
	Result     interface{} `json:"result,omitempty"`
	Error      string      `json:"error,omitempty"`
	ExecutedAt time.Time   `json:"executed_at"`
}

// RuleSpec is the input for creating a standing approval rule.
type RuleSpec struct {
	ToolName            string                   `json:"tool_name"`
	ArgConstraints      map[string]ArgConstraint `json:"arg_constraints,omitempty"`
	Description         string                   `json:"description,omitempty"`
	ExpiresAt           *time.Time               `json:"expires_at,omitempty"`
	MaxUses             *int                     `json:"max_uses,omitempty"`
	RiskTier            string                   `json:"risk_tier,omitempty"`
	CreatedFromActionID string                   `json:"created_from_action_id,omitempty"`
}
