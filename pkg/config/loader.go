package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"dario.cat/mergo"
	"github.com/pelletier/go-toml/v2"
)

// Initialize loads, validates, and returns a ready-to-use butler
// configuration. This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Read the TOML file
//  2. Expand environment variables ({{.VAR}} template syntax)
//  3. Decode into the typed structure
//  4. Decode a second generic pass for uninterpreted [modules.*] tables
//  5. Merge defaults for unset fields
//  6. Validate
func Initialize(_ context.Context, path string) (*ButlerConfig, error) {
	log := slog.With("config_path", path)
	log.Info("Initializing butler configuration")

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	raw = ExpandEnv(raw)

	cfg := &ButlerConfig{}
	if err := toml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := decodeModuleSettings(raw, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse module tables: %w", err)
	}

	if err := mergo.Merge(cfg, defaultConfig()); err != nil {
		return nil, fmt.Errorf("failed to merge defaults: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	log.Info("Configuration initialized",
		"butler", cfg.Name,
		"timezone", cfg.Timezone,
		"gated_tools", len(cfg.Modules.Approvals.GatedTools),
		"static_tasks", len(cfg.Modules.Scheduler.Tasks),
		"routing_rules", len(cfg.Routing.Rules),
		"modules", len(cfg.ModuleSettings))

	return cfg, nil
}

// decodeModuleSettings captures the raw [modules.<name>] tables that the
// core does not interpret (domain modules configure themselves from these).
func decodeModuleSettings(raw []byte, cfg *ButlerConfig) error {
	var generic struct {
		Modules map[string]map[string]interface{} `toml:"modules"`
	}
	if err := toml.Unmarshal(raw, &generic); err != nil {
		return err
	}

	cfg.ModuleSettings = make(map[string]map[string]interface{})
	for name, settings := range generic.Modules {
		// approvals and scheduler are owned by the core.
		if name == "approvals" || name == "scheduler" {
			continue
		}
		cfg.ModuleSettings[name] = settings
	}
	return nil
}
