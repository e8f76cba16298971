package approval

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/butlerhq/butlerd/ent"
	"github.com/butlerhq/butlerd/pkg/models"
)

func TestMatchArgs(t *testing.T) {
	tests := []struct {
		name        string
		constraints map[string]models.ArgConstraint
		args        map[string]interface{}
		want        bool
	}{
		{
			name:        "empty constraint map matches anything",
			constraints: map[string]models.ArgConstraint{},
			args:        map[string]interface{}{"to": "someone@example.com"},
			want:        true,
		},
		{
			name: "exact match",
			constraints: map[string]models.ArgConstraint{
				"to": {Kind: models.ConstraintExact, Value: "ops@example.com"},
			},
			args: map[string]interface{}{"to": "ops@example.com"},
			want: true,
		},
		{
			name: "exact mismatch",
			constraints: map[string]models.ArgConstraint{
				"to": {Kind: models.ConstraintExact, Value: "ops@example.com"},
			},
			args: map[string]interface{}{"to": "other@example.com"},
			want: false,
		},
		{
			name: "exact against missing arg fails",
			constraints: map[string]models.ArgConstraint{
				"to": {Kind: models.ConstraintExact, Value: "ops@example.com"},
			},
			args: map[string]interface{}{"body": "hi"},
			want: false,
		},
		{
			name: "any ignores missing arg",
			constraints: map[string]models.ArgConstraint{
				"body": {Kind: models.ConstraintAny},
			},
			args: map[string]interface{}{"to": "x"},
			want: true,
		},
		{
			name: "pattern match",
			constraints: map[string]models.ArgConstraint{
				"to": {Kind: models.ConstraintPattern, Value: `^.*@example\.com$`},
			},
			args: map[string]interface{}{"to": "anyone@example.com"},
			want: true,
		},
		{
			name: "pattern mismatch",
			constraints: map[string]models.ArgConstraint{
				"to": {Kind: models.ConstraintPattern, Value: `^.*@example\.com$`},
			},
			args: map[string]interface{}{"to": "anyone@evil.com"},
			want: false,
		},
		{
			name: "uncompilable pattern never matches",
			constraints: map[string]models.ArgConstraint{
				"to": {Kind: models.ConstraintPattern, Value: `([`},
			},
			args: map[string]interface{}{"to": "anything"},
			want: false,
		},
		{
			name: "numeric arg compared by string rendering",
			constraints: map[string]models.ArgConstraint{
				"chat_id": {Kind: models.ConstraintExact, Value: "42"},
			},
			args: map[string]interface{}{"chat_id": float64(42)},
			want: true,
		},
		{
			name: "unknown kind never matches",
			constraints: map[string]models.ArgConstraint{
				"to": {Kind: "fuzzy", Value: "x"},
			},
			args: map[string]interface{}{"to": "x"},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchArgs(tt.constraints, tt.args))
		})
	}
}

func exactRule(id string, createdAt time.Time, constraints map[string]models.ArgConstraint) *ent.ApprovalRule {
	return &ent.ApprovalRule{
		ID:             id,
		ToolName:       "bot_email_send",
		ArgConstraints: constraints,
		Active:         true,
		CreatedAt:      createdAt,
	}
}

func TestCandidateRules(t *testing.T) {
	now := time.Now().UTC()
	args := map[string]interface{}{"to": "ops@example.com"}
	exact := map[string]models.ArgConstraint{
		"to": {Kind: models.ConstraintExact, Value: "ops@example.com"},
	}

	t.Run("inactive rules excluded", func(t *testing.T) {
		r := exactRule("r1", now, exact)
		r.Active = false
		assert.Empty(t, candidateRules([]*ent.ApprovalRule{r}, args, now))
	})

	t.Run("expired rules excluded, boundary inclusive", func(t *testing.T) {
		r := exactRule("r1", now, exact)
		boundary := now
		r.ExpiresAt = &boundary
		assert.Empty(t, candidateRules([]*ent.ApprovalRule{r}, args, now))

		later := now.Add(time.Minute)
		r.ExpiresAt = &later
		assert.Len(t, candidateRules([]*ent.ApprovalRule{r}, args, now), 1)
	})

	t.Run("exhausted rules excluded", func(t *testing.T) {
		r := exactRule("r1", now, exact)
		max := 3
		r.MaxUses = &max
		r.UseCount = 3
		assert.Empty(t, candidateRules([]*ent.ApprovalRule{r}, args, now))

		r.UseCount = 2
		assert.Len(t, candidateRules([]*ent.ApprovalRule{r}, args, now), 1)
	})

	t.Run("non-matching rules excluded", func(t *testing.T) {
		r := exactRule("r1", now, map[string]models.ArgConstraint{
			"to": {Kind: models.ConstraintExact, Value: "other@example.com"},
		})
		assert.Empty(t, candidateRules([]*ent.ApprovalRule{r}, args, now))
	})
}

func TestSortByPrecedence(t *testing.T) {
	now := time.Now().UTC()
	exact := map[string]models.ArgConstraint{
		"to": {Kind: models.ConstraintExact, Value: "ops@example.com"},
	}
	pattern := map[string]models.ArgConstraint{
		"to": {Kind: models.ConstraintPattern, Value: `@example\.com$`},
	}
	any := map[string]models.ArgConstraint{
		"to": {Kind: models.ConstraintAny},
	}

	t.Run("specificity wins", func(t *testing.T) {
		a := exactRule("a", now, any)
		p := exactRule("b", now, pattern)
		e := exactRule("c", now, exact)
		rules := []*ent.ApprovalRule{a, p, e}
		sortByPrecedence(rules)
		assert.Equal(t, []string{"c", "b", "a"}, []string{rules[0].ID, rules[1].ID, rules[2].ID})
	})

	t.Run("bounded before unbounded at equal specificity", func(t *testing.T) {
		unbounded := exactRule("a", now, exact)
		bounded := exactRule("b", now, exact)
		max := 5
		bounded.MaxUses = &max
		rules := []*ent.ApprovalRule{unbounded, bounded}
		sortByPrecedence(rules)
		assert.Equal(t, "b", rules[0].ID)
	})

	t.Run("newer before older", func(t *testing.T) {
		older := exactRule("a", now.Add(-time.Hour), exact)
		newer := exactRule("b", now, exact)
		rules := []*ent.ApprovalRule{older, newer}
		sortByPrecedence(rules)
		assert.Equal(t, "b", rules[0].ID)
	})

	t.Run("lexical rule id as final tiebreak", func(t *testing.T) {
		r1 := exactRule("bbb", now, exact)
		r2 := exactRule("aaa", now, exact)
		rules := []*ent.ApprovalRule{r1, r2}
		sortByPrecedence(rules)
		assert.Equal(t, "aaa", rules[0].ID)
	})
}

func TestConstraintsFromArgs(t *testing.T) {
	args := map[string]interface{}{
		"to":      "ops@example.com",
		"body":    "weekly report attached",
		"chat_id": float64(42),
	}

	t.Run("heuristic names pin to exact, rest relax to any", func(t *testing.T) {
		got := ConstraintsFromArgs(args, nil)
		require.Len(t, got, 3)
		assert.Equal(t, models.ArgConstraint{Kind: models.ConstraintExact, Value: "ops@example.com"}, got["to"])
		assert.Equal(t, models.ArgConstraint{Kind: models.ConstraintAny}, got["body"])
		assert.Equal(t, models.ArgConstraint{Kind: models.ConstraintAny}, got["chat_id"])
	})

	t.Run("module declarations extend the heuristic", func(t *testing.T) {
		got := ConstraintsFromArgs(args, []string{"chat_id"})
		assert.Equal(t, models.ArgConstraint{Kind: models.ConstraintExact, Value: "42"}, got["chat_id"])
	})
}

func TestValidateRuleInvariant(t *testing.T) {
	max := 10
	exact := map[string]models.ArgConstraint{
		"to": {Kind: models.ConstraintExact, Value: "ops@example.com"},
	}
	anyOnly := map[string]models.ArgConstraint{
		"to": {Kind: models.ConstraintAny},
	}

	tests := []struct {
		name    string
		spec    models.RuleSpec
		wantErr bool
	}{
		{
			name: "medium tier needs nothing",
			spec: models.RuleSpec{RiskTier: "medium"},
		},
		{
			name:    "high tier without concrete constraint rejected",
			spec:    models.RuleSpec{RiskTier: "high", ArgConstraints: anyOnly, MaxUses: &max},
			wantErr: true,
		},
		{
			name:    "high tier without scope bound rejected",
			spec:    models.RuleSpec{RiskTier: "high", ArgConstraints: exact},
			wantErr: true,
		},
		{
			name: "high tier with constraint and max uses accepted",
			spec: models.RuleSpec{RiskTier: "high", ArgConstraints: exact, MaxUses: &max},
		},
		{
			name:    "critical tier held to the same bar",
			spec:    models.RuleSpec{RiskTier: "critical", ArgConstraints: anyOnly},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateRuleInvariant(tt.spec)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrRuleInvariant)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
