package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandEnv(t *testing.T) {
	tests := []struct {
		name  string
		input string
		env   map[string]string
		want  string
	}{
		{
			name:  "simple substitution with {{.VAR}}",
			input: `token = "{{.TELEGRAM_BOT_TOKEN}}"`,
			env:   map[string]string{"TELEGRAM_BOT_TOKEN": "secret123"},
			want:  `token = "secret123"`,
		},
		{
			name:  "literal ${VAR} is NOT expanded (no collision)",
			input: `pattern = "${USER_ID}"`,
			env:   map[string]string{"USER_ID": "123"},
			want:  `pattern = "${USER_ID}"`,
		},
		{
			name:  "regex dollar signs pass through",
			input: `value = "^secret.*$"`,
			env:   map[string]string{},
			want:  `value = "^secret.*$"`,
		},
		{
			name:  "multiple substitutions in one line",
			input: `dsn = "{{.DB_HOST}}:{{.DB_PORT}}"`,
			env:   map[string]string{"DB_HOST": "localhost", "DB_PORT": "5432"},
			want:  `dsn = "localhost:5432"`,
		},
		{
			name:  "missing variable expands to empty",
			input: `key = "{{.MISSING_VAR}}"`,
			env:   map[string]string{},
			want:  `key = ""`,
		},
		{
			name:  "invalid template syntax passes through untouched",
			input: `weird = "{{.UNCLOSED"`,
			env:   map[string]string{},
			want:  `weird = "{{.UNCLOSED"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			got := ExpandEnv([]byte(tt.input))
			assert.Equal(t, tt.want, string(got))
		})
	}
}
