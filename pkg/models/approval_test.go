package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgConstraintUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want ArgConstraint
	}{
		{
			name: "canonical object form",
			in:   `{"kind":"exact","value":"ops@example.com"}`,
			want: ArgConstraint{Kind: ConstraintExact, Value: "ops@example.com"},
		},
		{
			name: "canonical pattern form",
			in:   `{"kind":"pattern","value":"@example\\.com$"}`,
			want: ArgConstraint{Kind: ConstraintPattern, Value: `@example\.com$`},
		},
		{
			name: "legacy star means any",
			in:   `"*"`,
			want: ArgConstraint{Kind: ConstraintAny},
		},
		{
			name: "legacy bare string means exact",
			in:   `"ops@example.com"`,
			want: ArgConstraint{Kind: ConstraintExact, Value: "ops@example.com"},
		},
		{
			name: "legacy integral number renders without decimal",
			in:   `42`,
			want: ArgConstraint{Kind: ConstraintExact, Value: "42"},
		},
		{
			name: "legacy bool renders as string",
			in:   `true`,
			want: ArgConstraint{Kind: ConstraintExact, Value: "true"},
		},
		{
			name: "any form drops a stray value",
			in:   `{"kind":"any","value":"ignored"}`,
			want: ArgConstraint{Kind: ConstraintAny},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got ArgConstraint
			require.NoError(t, json.Unmarshal([]byte(tt.in), &got))
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unknown kind rejected", func(t *testing.T) {
		var got ArgConstraint
		assert.Error(t, json.Unmarshal([]byte(`{"kind":"fuzzy"}`), &got))
	})

	t.Run("array form rejected", func(t *testing.T) {
		var got ArgConstraint
		assert.Error(t, json.Unmarshal([]byte(`["a"]`), &got))
	})
}

func TestConstraintSetSpecificity(t *testing.T) {
	assert.Equal(t, 0, ConstraintSetSpecificity(nil))
	assert.Equal(t, 5, ConstraintSetSpecificity(map[string]ArgConstraint{
		"to":   {Kind: ConstraintExact, Value: "x"},
		"body": {Kind: ConstraintPattern, Value: ".*"},
		"cc":   {Kind: ConstraintAny},
	}))
}
