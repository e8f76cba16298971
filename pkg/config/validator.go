package config

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

var validRiskTiers = map[string]bool{
	"low":      true,
	"medium":   true,
	"high":     true,
	"critical": true,
}

// cronParser accepts standard 5-field cron expressions, no seconds field.
var cronParser = cron.NewParser(
	cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow,
)

// ParseCron validates and parses a 5-field cron expression.
func ParseCron(expr string) (cron.Schedule, error) {
	return cronParser.Parse(expr)
}

// ParseCronIn parses a 5-field cron expression whose fields are evaluated
// in the given location rather than the server's local time.
func ParseCronIn(expr string, loc *time.Location) (cron.Schedule, error) {
	return cronParser.Parse("CRON_TZ=" + loc.String() + " " + expr)
}

// validate checks the loaded configuration for fatal problems. Unknown gated
// tool names are validated later, at module load, against the registered
// tool set (the registry does not exist yet at config time).
func validate(cfg *ButlerConfig) error {
	if cfg.Name == "" {
		return fmt.Errorf("butler name is required")
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return fmt.Errorf("invalid timezone %q: %w", cfg.Timezone, err)
	}
	cfg.location = loc

	if err := validateApprovals(cfg.Modules.Approvals); err != nil {
		return err
	}
	if err := validateScheduler(cfg.Modules.Scheduler); err != nil {
		return err
	}
	for i, rule := range cfg.Routing.Rules {
		if rule.Channel == "" || rule.Butler == "" {
			return fmt.Errorf("routing rule %d: channel and butler are required", i)
		}
	}
	return nil
}

func validateApprovals(a *ApprovalsConfig) error {
	if a == nil {
		return nil
	}
	if a.DefaultExpiryHours <= 0 {
		return fmt.Errorf("approvals: default_expiry_hours must be positive")
	}
	if !validRiskTiers[a.DefaultRiskTier] {
		return fmt.Errorf("approvals: invalid default_risk_tier %q", a.DefaultRiskTier)
	}
	for tool, gt := range a.GatedTools {
		if gt.RiskTier != "" && !validRiskTiers[gt.RiskTier] {
			return fmt.Errorf("approvals: gated tool %q: invalid risk_tier %q", tool, gt.RiskTier)
		}
		if gt.ExpiryHours != nil && *gt.ExpiryHours <= 0 {
			return fmt.Errorf("approvals: gated tool %q: expiry_hours must be positive", tool)
		}
	}
	return nil
}

func validateScheduler(s *SchedulerConfig) error {
	if s == nil {
		return nil
	}
	seen := make(map[string]bool, len(s.Tasks))
	for _, task := range s.Tasks {
		if task.Name == "" {
			return fmt.Errorf("scheduler: task name is required")
		}
		if seen[task.Name] {
			return fmt.Errorf("scheduler: duplicate task name %q", task.Name)
		}
		seen[task.Name] = true

		if task.Prompt == "" {
			return fmt.Errorf("scheduler: task %q: prompt is required", task.Name)
		}
		switch {
		case task.Cron != "":
			if _, err := ParseCron(task.Cron); err != nil {
				return fmt.Errorf("scheduler: task %q: invalid cron %q: %w", task.Name, task.Cron, err)
			}
		case task.StartAt != nil:
			// one-shot
		default:
			return fmt.Errorf("scheduler: task %q: either cron or start_at is required", task.Name)
		}
	}
	return nil
}
