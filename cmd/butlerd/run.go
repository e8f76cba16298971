package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/butlerhq/butlerd/pkg/config"
	"github.com/butlerhq/butlerd/pkg/database"
	"github.com/butlerhq/butlerd/pkg/models"
)

// cmdRun triggers one worker session through the spawner and waits for it.
// The session goes through the same gate and audit path as any other trigger.
func cmdRun(args []string) error {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	configPath := fs.String("config", getEnv("BUTLERD_CONFIG", defaultConfigPath), "path to the butler TOML config")
	prompt := fs.String("prompt", "", "prompt for the worker session")
	_ = fs.Parse(args)

	if *prompt == "" {
		return fmt.Errorf("--prompt is required")
	}

	ctx := context.Background()
	cfg, err := config.Initialize(ctx, *configPath)
	if err != nil {
		return err
	}

	butler := cfg.Name
	if fs.NArg() > 0 {
		butler = fs.Arg(0)
	}

	dbCfg, err := database.LoadConfigFromEnv()
	if err != nil {
		return err
	}
	db, err := database.NewClient(ctx, dbCfg)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	rt, err := buildRuntime(ctx, cfg, db, newLogTransport())
	if err != nil {
		return err
	}
	defer rt.loader.Shutdown(ctx)

	sessionID, outcome, err := rt.spawner.SpawnWait(ctx, models.Trigger{
		Kind:   models.TriggerManual,
		Butler: butler,
		Prompt: *prompt,
	})
	if err != nil {
		return err
	}

	fmt.Printf("session: %s\n", sessionID)
	if outcome != nil {
		if outcome.Err != "" {
			fmt.Printf("error: %s\n", outcome.Err)
		}
		if outcome.OutputSummary != "" {
			fmt.Printf("summary: %s\n", outcome.OutputSummary)
		}
		fmt.Printf("cost: %.4f\n", outcome.Cost)
	}
	return nil
}

// cmdList prints the butler configurations found in a directory.
func cmdList(args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	dir := fs.String("config-dir", getEnv("BUTLERD_CONFIG_DIR", "."), "directory containing butler TOML configs")
	_ = fs.Parse(args)

	paths, err := filepath.Glob(filepath.Join(*dir, "*.toml"))
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		fmt.Printf("no butler configs in %s\n", *dir)
		return nil
	}

	ctx := context.Background()
	for _, path := range paths {
		cfg, err := config.Initialize(ctx, path)
		if err != nil {
			slog.Warn("Skipping invalid config", "path", path, "error", err)
			continue
		}
		fmt.Printf("%-20s timezone=%-20s gated_tools=%d static_tasks=%d  (%s)\n",
			cfg.Name, cfg.Timezone,
			len(cfg.Modules.Approvals.GatedTools),
			len(cfg.Modules.Scheduler.Tasks),
			filepath.Base(path))
	}
	return nil
}

const configScaffold = `name = %q
timezone = "UTC"

[modules.approvals]
enabled = true
default_expiry_hours = 48
default_risk_tier = "medium"

# Gate a tool by listing it here. Per-tool overrides are optional.
# [modules.approvals.gated_tools.bot_email_send]
# expiry_hours = 24
# risk_tier = "high"

[modules.scheduler]
tick_seconds = 30

# [[modules.scheduler.tasks]]
# name = "morning-brief"
# cron = "0 7 * * *"
# prompt = "Prepare the morning brief."

# [[routing.rules]]
# channel = "telegram"
# role = "owner"
# butler = %q

[worker]
command = "butler-worker"
timeout_seconds = 600
grace_seconds = 10
`

// cmdInit scaffolds a butler config file. Existing files are never
// overwritten.
func cmdInit(args []string) error {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	name := fs.String("name", "butler", "butler name")
	output := fs.String("output", defaultConfigPath, "config file to create")
	_ = fs.Parse(args)

	if _, err := os.Stat(*output); err == nil {
		return fmt.Errorf("%s already exists, refusing to overwrite", *output)
	}

	content := fmt.Sprintf(configScaffold, *name, *name)
	if err := os.WriteFile(*output, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	fmt.Printf("wrote %s\n", *output)
	return nil
}
