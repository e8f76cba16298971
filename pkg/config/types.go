// Package config loads and validates per-butler TOML configuration.
package config

import (
	"time"
)

// ButlerConfig is the top-level per-butler configuration file structure.
type ButlerConfig struct {
	Name     string `toml:"name"`
	Timezone string `toml:"timezone"`

	Modules ModulesConfig `toml:"modules"`
	Routing RoutingConfig `toml:"routing"`
	Worker  WorkerConfig  `toml:"worker"`
	Queue   QueueConfig   `toml:"queue"`

	// ModuleSettings carries the raw per-module tables ([modules.<name>])
	// for modules the core does not interpret itself. Populated by the
	// loader from a second generic decode pass.
	ModuleSettings map[string]map[string]interface{} `toml:"-"`

	// Location resolved from Timezone during validation.
	location *time.Location
}

// Location returns the butler's resolved timezone.
func (c *ButlerConfig) Location() *time.Location {
	if c.location == nil {
		return time.UTC
	}
	return c.location
}

// ModulesConfig groups the module tables the core interprets directly.
type ModulesConfig struct {
	Approvals *ApprovalsConfig `toml:"approvals"`
	Scheduler *SchedulerConfig `toml:"scheduler"`
}

// ApprovalsConfig configures the approval gate.
type ApprovalsConfig struct {
	// Enabled is a pointer so an explicit `enabled = false` survives the
	// defaults merge; unset means enabled.
	Enabled            *bool                      `toml:"enabled"`
	DefaultExpiryHours int                        `toml:"default_expiry_hours"`
	DefaultRiskTier    string                     `toml:"default_risk_tier"`
	GatedTools         map[string]GatedToolConfig `toml:"gated_tools"`
}

// IsEnabled reports whether the approval gate is on. A present
// [modules.approvals] table defaults to enabled.
func (a *ApprovalsConfig) IsEnabled() bool {
	return a != nil && (a.Enabled == nil || *a.Enabled)
}

// GatedToolConfig is the per-tool override inside the gated tool set.
type GatedToolConfig struct {
	ExpiryHours *int   `toml:"expiry_hours"`
	RiskTier    string `toml:"risk_tier"`
}

// ExpiryFor returns the pending-action expiry for a gated tool: the per-tool
// override when present, else the module default.
func (a *ApprovalsConfig) ExpiryFor(toolName string) time.Duration {
	hours := a.DefaultExpiryHours
	if gt, ok := a.GatedTools[toolName]; ok && gt.ExpiryHours != nil {
		hours = *gt.ExpiryHours
	}
	return time.Duration(hours) * time.Hour
}

// RiskTierFor returns the risk tier for a gated tool, falling back to the
// module default.
func (a *ApprovalsConfig) RiskTierFor(toolName string) string {
	if gt, ok := a.GatedTools[toolName]; ok && gt.RiskTier != "" {
		return gt.RiskTier
	}
	return a.DefaultRiskTier
}

// IsGated reports whether a tool name is in the configured gated set.
func (a *ApprovalsConfig) IsGated(toolName string) bool {
	if !a.IsEnabled() {
		return false
	}
	_, ok := a.GatedTools[toolName]
	return ok
}

// SchedulerConfig configures the task scheduler.
type SchedulerConfig struct {
	TickSeconds int                `toml:"tick_seconds"`
	Tasks       []StaticTaskConfig `toml:"tasks"`
}

// TickInterval returns the tick loop interval.
func (s *SchedulerConfig) TickInterval() time.Duration {
	if s == nil || s.TickSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(s.TickSeconds) * time.Second
}

// StaticTaskConfig is one [[modules.scheduler.tasks]] entry. Static tasks
// are reconciled at boot: created if missing, disabled if removed, never
// deleted.
type StaticTaskConfig struct {
	Name    string     `toml:"name"`
	Cron    string     `toml:"cron"`
	StartAt *time.Time `toml:"start_at"`
	Prompt  string     `toml:"prompt"`
}

// RoutingConfig maps inbound channel identities to target butlers.
type RoutingConfig struct {
	Rules []RoutingRule `toml:"rules"`
}

// RoutingRule is a static (channel_type, role) → butler mapping.
type RoutingRule struct {
	Channel string `toml:"channel"`
	Role    string `toml:"role"`
	Butler  string `toml:"butler"`
}

// TargetButler resolves the target butler for a channel type and sender role.
// Falls back to the butler's own name when no rule matches.
func (r *RoutingConfig) TargetButler(channelType, role, fallback string) string {
	// Exact (channel, role) match wins over channel-only rules.
	for _, rule := range r.Rules {
		if rule.Channel == channelType && rule.Role == role {
			return rule.Butler
		}
	}
	for _, rule := range r.Rules {
		if rule.Channel == channelType && rule.Role == "" {
			return rule.Butler
		}
	}
	return fallback
}

// WorkerConfig configures the worker subprocess launch.
type WorkerConfig struct {
	Command       string   `toml:"command"`
	Args          []string `toml:"args"`
	Persona       string   `toml:"persona"`
	TimeoutSec    int      `toml:"timeout_seconds"`
	GraceSec      int      `toml:"grace_seconds"`
	SessionBudget float64  `toml:"session_budget"`
}

// Timeout returns the per-session wall clock limit.
func (w *WorkerConfig) Timeout() time.Duration {
	if w.TimeoutSec <= 0 {
		return 10 * time.Minute
	}
	return time.Duration(w.TimeoutSec) * time.Second
}

// GracePeriod returns the SIGTERM-to-SIGKILL grace window on shutdown.
func (w *WorkerConfig) GracePeriod() time.Duration {
	if w.GraceSec <= 0 {
		return 10 * time.Second
	}
	return time.Duration(w.GraceSec) * time.Second
}

// QueueConfig configures the executor worker pool.
type QueueConfig struct {
	WorkerCount            int `toml:"worker_count"`
	PollIntervalSec        int `toml:"poll_interval_seconds"`
	ShutdownTimeoutSec     int `toml:"shutdown_timeout_seconds"`
	NotifyFlushIntervalSec int `toml:"notify_flush_interval_seconds"`
}

// PollInterval returns the executor queue poll interval.
func (q *QueueConfig) PollInterval() time.Duration {
	if q.PollIntervalSec <= 0 {
		return 2 * time.Second
	}
	return time.Duration(q.PollIntervalSec) * time.Second
}

// GracefulShutdownTimeout returns the pool drain budget on shutdown.
func (q *QueueConfig) GracefulShutdownTimeout() time.Duration {
	if q.ShutdownTimeoutSec <= 0 {
		return 30 * time.Second
	}
	return time.Duration(q.ShutdownTimeoutSec) * time.Second
}

// NotifyFlushInterval returns the owner-notification batching window.
func (q *QueueConfig) NotifyFlushInterval() time.Duration {
	if q.NotifyFlushIntervalSec <= 0 {
		return 60 * time.Second
	}
	return time.Duration(q.NotifyFlushIntervalSec) * time.Second
}
