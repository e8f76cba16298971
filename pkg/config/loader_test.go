package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "butler.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestInitializeDefaultsMerged(t *testing.T) {
	path := writeConfig(t, `
name = "alfred"

[modules.approvals.gated_tools.bot_email_send]
risk_tier = "high"
`)

	cfg, err := Initialize(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "alfred", cfg.Name)
	assert.Equal(t, "UTC", cfg.Timezone)
	assert.Equal(t, "UTC", cfg.Location().String())

	// Unset approvals fields picked up the defaults.
	approvals := cfg.Modules.Approvals
	require.NotNil(t, approvals)
	assert.True(t, approvals.IsEnabled())
	assert.Equal(t, 48, approvals.DefaultExpiryHours)
	assert.Equal(t, "medium", approvals.DefaultRiskTier)
	assert.True(t, approvals.IsGated("bot_email_send"))
	assert.Equal(t, "high", approvals.RiskTierFor("bot_email_send"))

	// Queue and worker defaults.
	assert.Equal(t, 2, cfg.Queue.WorkerCount)
	assert.Equal(t, 600, cfg.Worker.TimeoutSec)
}

func TestInitializeExplicitDisableSurvivesDefaults(t *testing.T) {
	path := writeConfig(t, `
name = "alfred"

[modules.approvals]
enabled = false
`)

	cfg, err := Initialize(context.Background(), path)
	require.NoError(t, err)

	// `enabled = false` must not be clobbered by the defaults merge.
	assert.False(t, cfg.Modules.Approvals.IsEnabled())
	assert.False(t, cfg.Modules.Approvals.IsGated("bot_email_send"))
}

func TestInitializeModuleSettingsCaptured(t *testing.T) {
	path := writeConfig(t, `
name = "alfred"

[modules.approvals]
default_risk_tier = "low"

[modules.telegram]
bot_token = "abc"
poll_seconds = 5

[modules.email]
smtp_host = "mail.example.com"
`)

	cfg, err := Initialize(context.Background(), path)
	require.NoError(t, err)

	// Core-owned tables are not duplicated into ModuleSettings.
	assert.NotContains(t, cfg.ModuleSettings, "approvals")
	assert.NotContains(t, cfg.ModuleSettings, "scheduler")

	require.Contains(t, cfg.ModuleSettings, "telegram")
	assert.Equal(t, "abc", cfg.ModuleSettings["telegram"]["bot_token"])
	require.Contains(t, cfg.ModuleSettings, "email")
	assert.Equal(t, "mail.example.com", cfg.ModuleSettings["email"]["smtp_host"])
}

func TestInitializeEnvExpansion(t *testing.T) {
	t.Setenv("BUTLER_TEST_NAME", "jeeves")
	path := writeConfig(t, `
name = "{{.BUTLER_TEST_NAME}}"
`)

	cfg, err := Initialize(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "jeeves", cfg.Name)
}

func TestInitializeValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "missing butler name",
			content: `timezone = "UTC"`,
			wantErr: "butler name is required",
		},
		{
			name: "invalid timezone",
			content: `
name = "alfred"
timezone = "Mars/Olympus"
`,
			wantErr: "invalid timezone",
		},
		{
			name: "invalid risk tier",
			content: `
name = "alfred"

[modules.approvals]
default_risk_tier = "apocalyptic"
`,
			wantErr: "invalid default_risk_tier",
		},
		{
			name: "invalid cron expression",
			content: `
name = "alfred"

[[modules.scheduler.tasks]]
name = "digest"
cron = "not a cron"
prompt = "Summarize the day"
`,
			wantErr: "invalid cron",
		},
		{
			name: "duplicate task name",
			content: `
name = "alfred"

[[modules.scheduler.tasks]]
name = "digest"
cron = "0 8 * * *"
prompt = "Morning digest"

[[modules.scheduler.tasks]]
name = "digest"
cron = "0 20 * * *"
prompt = "Evening digest"
`,
			wantErr: "duplicate task name",
		},
		{
			name: "task with neither cron nor start_at",
			content: `
name = "alfred"

[[modules.scheduler.tasks]]
name = "digest"
prompt = "Summarize the day"
`,
			wantErr: "either cron or start_at is required",
		},
		{
			name: "routing rule without butler",
			content: `
name = "alfred"

[[routing.rules]]
channel = "telegram"
`,
			wantErr: "channel and butler are required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			_, err := Initialize(context.Background(), path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestInitializeMissingFile(t *testing.T) {
	_, err := Initialize(context.Background(), filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}
