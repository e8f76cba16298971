package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseActionInput(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want map[string]interface{}
	}{
		{
			name: "empty input",
			in:   "",
			want: map[string]interface{}{},
		},
		{
			name: "json object",
			in:   `{"to": "ops@example.com", "count": 3}`,
			want: map[string]interface{}{"to": "ops@example.com", "count": float64(3)},
		},
		{
			name: "json non-object wrapped",
			in:   `[1, 2]`,
			want: map[string]interface{}{"input": []interface{}{float64(1), float64(2)}},
		},
		{
			name: "json scalar wrapped",
			in:   `42`,
			want: map[string]interface{}{"input": float64(42)},
		},
		{
			name: "yaml with nesting",
			in:   "to: ops@example.com\nattachments:\n  - report.pdf",
			want: map[string]interface{}{
				"to":          "ops@example.com",
				"attachments": []interface{}{"report.pdf"},
			},
		},
		{
			name: "flat key-value pairs",
			in:   "to: ops@example.com, urgent: true",
			want: map[string]interface{}{"to": "ops@example.com", "urgent": true},
		},
		{
			name: "equals-separated pairs",
			in:   "chat_id=42\ntext=hello",
			want: map[string]interface{}{"chat_id": float64(42), "text": "hello"},
		},
		{
			name: "prose falls through to raw",
			in:   "please send the weekly report",
			want: map[string]interface{}{"input": "please send the weekly report"},
		},
		{
			name: "malformed input falls through to raw",
			in:   `{not valid json at all}`,
			want: map[string]interface{}{"input": `{not valid json at all}`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseActionInput(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCoerceValue(t *testing.T) {
	assert.Equal(t, true, coerceValue("TRUE"))
	assert.Equal(t, false, coerceValue("false"))
	assert.Nil(t, coerceValue("null"))
	assert.Nil(t, coerceValue("none"))
	assert.Equal(t, float64(7), coerceValue("7"))
	assert.Equal(t, 2.5, coerceValue("2.5"))
	assert.Equal(t, "plain", coerceValue("plain"))
}

func TestNormalizeArgs(t *testing.T) {
	t.Run("nil becomes empty map", func(t *testing.T) {
		got, err := NormalizeArgs(nil)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("map passes through", func(t *testing.T) {
		in := map[string]interface{}{"to": "x"}
		got, err := NormalizeArgs(in)
		require.NoError(t, err)
		assert.Equal(t, in, got)
	})

	t.Run("string goes through the cascade", func(t *testing.T) {
		got, err := NormalizeArgs(`{"to": "x"}`)
		require.NoError(t, err)
		assert.Equal(t, map[string]interface{}{"to": "x"}, got)
	})

	t.Run("unsupported shape rejected", func(t *testing.T) {
		_, err := NormalizeArgs(42)
		assert.Error(t, err)
	})
}
