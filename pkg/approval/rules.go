package approval

import (
	"fmt"
	"regexp"
	"sort"
	"time"

	"github.com/butlerhq/butlerd/ent"
	"github.com/butlerhq/butlerd/pkg/models"
)

// MatchArgs reports whether a rule's constraint map matches a concrete
// argument map. An empty constraint map matches any invocation. A constraint
// on an argument the call does not carry fails the match (except "any",
// which never constrains).
func MatchArgs(constraints map[string]models.ArgConstraint, args map[string]interface{}) bool {
	for key, c := range constraints {
		switch c.Kind {
		case models.ConstraintAny:
			continue
		case models.ConstraintExact:
			v, ok := args[key]
			if !ok || argString(v) != c.Value {
				return false
			}
		case models.ConstraintPattern:
			v, ok := args[key]
			if !ok {
				return false
			}
			re, err := regexp.Compile(c.Value)
			if err != nil {
				// An uncompilable pattern can never match; the rule simply
				// does not apply.
				return false
			}
			if !re.MatchString(argString(v)) {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// argString renders an argument value the way constraint values are stored.
func argString(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		if val == float64(int64(val)) {
			return fmt.Sprintf("%d", int64(val))
		}
		return fmt.Sprintf("%v", val)
	case bool:
		return fmt.Sprintf("%t", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// candidateRules filters active, unexpired, not-exhausted rules for a tool
// whose constraints match the call args, and sorts them by deterministic
// precedence.
func candidateRules(rules []*ent.ApprovalRule, args map[string]interface{}, now time.Time) []*ent.ApprovalRule {
	var out []*ent.ApprovalRule
	for _, r := range rules {
		if !r.Active {
			continue
		}
		if r.ExpiresAt != nil && !r.ExpiresAt.After(now) {
			continue
		}
		if r.MaxUses != nil && r.UseCount >= *r.MaxUses {
			continue
		}
		if !MatchArgs(r.ArgConstraints, args) {
			continue
		}
		out = append(out, r)
	}
	sortByPrecedence(out)
	return out
}

// sortByPrecedence orders candidate rules:
//  1. constraint specificity descending (exact=3 > pattern=2 > any=0)
//  2. bounded scope (expires_at or max_uses set) before unbounded
//  3. newer created_at before older
//  4. lexically smaller rule_id as the final tiebreak
func sortByPrecedence(rules []*ent.ApprovalRule) {
	sort.SliceStable(rules, func(i, j int) bool {
		a, b := rules[i], rules[j]

		sa := models.ConstraintSetSpecificity(a.ArgConstraints)
		sb := models.ConstraintSetSpecificity(b.ArgConstraints)
		if sa != sb {
			return sa > sb
		}

		ba := a.ExpiresAt != nil || a.MaxUses != nil
		bb := b.ExpiresAt != nil || b.MaxUses != nil
		if ba != bb {
			return ba
		}

		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}

		return a.ID < b.ID
	})
}

// sensitiveConstraintNames is the name heuristic for building constraints
// from a parked action's args: these argument names pin to exact values,
// everything else relaxes to "any".
var sensitiveConstraintNames = map[string]struct{}{
	"to":        {},
	"recipient": {},
	"email":     {},
	"url":       {},
	"amount":    {},
	"password":  {},
	"token":     {},
}

// ConstraintsFromArgs derives a rule constraint map from a concrete call.
// Module-declared sensitive names take precedence; the built-in name
// heuristic backs them up.
func ConstraintsFromArgs(args map[string]interface{}, moduleSensitive []string) map[string]models.ArgConstraint {
	extra := make(map[string]struct{}, len(moduleSensitive))
	for _, name := range moduleSensitive {
		extra[name] = struct{}{}
	}

	out := make(map[string]models.ArgConstraint, len(args))
	for key, v := range args {
		_, declared := extra[key]
		_, heuristic := sensitiveConstraintNames[key]
		if declared || heuristic {
			out[key] = models.ArgConstraint{Kind: models.ConstraintExact, Value: argString(v)}
		} else {
			out[key] = models.ArgConstraint{Kind: models.ConstraintAny}
		}
	}
	return out
}

// validateRuleInvariant enforces the high/critical rule requirements.
func validateRuleInvariant(spec models.RuleSpec) error {
	if spec.RiskTier != "high" && spec.RiskTier != "critical" {
		return nil
	}
	concrete := false
	for _, c := range spec.ArgConstraints {
		if c.Kind == models.ConstraintExact || c.Kind == models.ConstraintPattern {
			concrete = true
			break
		}
	}
	if !concrete {
		return ErrRuleInvariant
	}
	if spec.ExpiresAt == nil && spec.MaxUses == nil {
		return ErrRuleInvariant
	}
	return nil
}
