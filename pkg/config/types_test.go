package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

func TestApprovalsConfigIsEnabled(t *testing.T) {
	var nilCfg *ApprovalsConfig
	assert.False(t, nilCfg.IsEnabled())

	assert.True(t, (&ApprovalsConfig{}).IsEnabled())
	assert.True(t, (&ApprovalsConfig{Enabled: boolPtr(true)}).IsEnabled())
	assert.False(t, (&ApprovalsConfig{Enabled: boolPtr(false)}).IsEnabled())
}

func TestApprovalsConfigPerToolOverrides(t *testing.T) {
	cfg := &ApprovalsConfig{
		DefaultExpiryHours: 48,
		DefaultRiskTier:    "medium",
		GatedTools: map[string]GatedToolConfig{
			"bot_email_send":     {ExpiryHours: intPtr(6), RiskTier: "high"},
			"user_telegram_send": {},
		},
	}

	assert.Equal(t, 6*time.Hour, cfg.ExpiryFor("bot_email_send"))
	assert.Equal(t, "high", cfg.RiskTierFor("bot_email_send"))

	// Tools without overrides fall back to the module defaults.
	assert.Equal(t, 48*time.Hour, cfg.ExpiryFor("user_telegram_send"))
	assert.Equal(t, "medium", cfg.RiskTierFor("user_telegram_send"))

	assert.True(t, cfg.IsGated("bot_email_send"))
	assert.False(t, cfg.IsGated("calendar_read"))

	cfg.Enabled = boolPtr(false)
	assert.False(t, cfg.IsGated("bot_email_send"))
}

func TestRoutingTargetButler(t *testing.T) {
	routing := &RoutingConfig{
		Rules: []RoutingRule{
			{Channel: "telegram", Role: "family", Butler: "household"},
			{Channel: "telegram", Butler: "frontdesk"},
			{Channel: "email", Butler: "frontdesk"},
		},
	}

	// Exact (channel, role) beats the channel-only rule.
	assert.Equal(t, "household", routing.TargetButler("telegram", "family", "self"))
	assert.Equal(t, "frontdesk", routing.TargetButler("telegram", "guest", "self"))
	assert.Equal(t, "frontdesk", routing.TargetButler("email", "owner", "self"))

	// No rule matches: fall back to the receiving butler.
	assert.Equal(t, "self", routing.TargetButler("sms", "owner", "self"))
}

func TestDurationFallbacks(t *testing.T) {
	q := &QueueConfig{}
	assert.Equal(t, 2*time.Second, q.PollInterval())
	assert.Equal(t, 30*time.Second, q.GracefulShutdownTimeout())
	assert.Equal(t, 60*time.Second, q.NotifyFlushInterval())

	q = &QueueConfig{PollIntervalSec: 5, ShutdownTimeoutSec: 10, NotifyFlushIntervalSec: 15}
	assert.Equal(t, 5*time.Second, q.PollInterval())
	assert.Equal(t, 10*time.Second, q.GracefulShutdownTimeout())
	assert.Equal(t, 15*time.Second, q.NotifyFlushInterval())

	w := &WorkerConfig{}
	assert.Equal(t, 10*time.Minute, w.Timeout())
	assert.Equal(t, 10*time.Second, w.GracePeriod())

	var s *SchedulerConfig
	assert.Equal(t, 30*time.Second, s.TickInterval())
	assert.Equal(t, 10*time.Second, (&SchedulerConfig{TickSeconds: 10}).TickInterval())
}
