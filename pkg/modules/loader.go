package modules

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/butlerhq/butlerd/ent"
	"github.com/butlerhq/butlerd/pkg/config"
	"github.com/butlerhq/butlerd/pkg/mcp"
	"github.com/butlerhq/butlerd/pkg/models"
)

// Loader resolves module order, validates tool surfaces, and wires handlers
// into the registry.
type Loader struct {
	client   *ent.Client
	db       *sql.DB
	registry *mcp.Registry
	cfg      *config.ButlerConfig

	loaded []Module
}

// NewLoader creates a Loader. db may be nil when no module carries
// migrations.
func NewLoader(client *ent.Client, db *sql.DB, registry *mcp.Registry, cfg *config.ButlerConfig) *Loader {
	return &Loader{client: client, db: db, registry: registry, cfg: cfg}
}

// Load registers all modules in dependency order, applies their migrations,
// and validates their tool surfaces. Validation failures abort the boot:
// an unvalidated tool surface must never reach a worker.
func (l *Loader) Load(ctx context.Context, mods []Module) error {
	ordered, err := resolveOrder(mods)
	if err != nil {
		return err
	}

	for _, m := range ordered {
		if err := l.loadOne(ctx, m); err != nil {
			return fmt.Errorf("module %q: %w", m.Name(), err)
		}
		l.loaded = append(l.loaded, m)
		slog.Info("Module loaded", "module", m.Name())
	}

	if err := l.validateGatedConfig(); err != nil {
		return err
	}
	l.mergeAlwaysGated()

	for _, m := range l.loaded {
		if err := m.OnStartup(ctx); err != nil {
			return fmt.Errorf("module %q startup: %w", m.Name(), err)
		}
	}
	return nil
}

// Shutdown runs module shutdown hooks in reverse load order.
func (l *Loader) Shutdown(ctx context.Context) {
	for i := len(l.loaded) - 1; i >= 0; i-- {
		m := l.loaded[i]
		if err := m.OnShutdown(ctx); err != nil {
			slog.Warn("Module shutdown failed", "module", m.Name(), "error", err)
		}
	}
}

// CredentialsEnv returns the union of env var names loaded modules require,
// sorted and deduplicated.
func (l *Loader) CredentialsEnv() []string {
	seen := make(map[string]bool)
	for _, m := range l.loaded {
		for _, name := range m.CredentialsEnv() {
			seen[name] = true
		}
	}
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func (l *Loader) loadOne(ctx context.Context, m Module) error {
	if err := validateDescriptors(m.Descriptors()); err != nil {
		return err
	}

	for i, stmt := range m.Migrations() {
		if l.db == nil {
			return fmt.Errorf("migration %d declared but no database handle available", i)
		}
		if _, err := l.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d failed: %w", i, err)
		}
	}

	before := make(map[string]bool, len(l.registry.Names()))
	for _, name := range l.registry.Names() {
		before[name] = true
	}

	settings := l.cfg.ModuleSettings[m.Name()]
	if err := m.RegisterTools(l.registry, settings, l.client); err != nil {
		return err
	}

	// Every tool the module just registered must match exactly one of its
	// declared descriptors.
	declared := make(map[string]bool)
	for _, d := range m.Descriptors().All() {
		declared[d.Name] = true
	}
	for _, name := range l.registry.Names() {
		if before[name] {
			continue
		}
		if !declared[name] {
			return fmt.Errorf("registered tool %q has no descriptor", name)
		}
	}
	return nil
}

// validateDescriptors enforces the identity prefix and uniqueness rules on
// a module's declared surface.
func validateDescriptors(d Descriptors) error {
	seen := make(map[string]bool)
	for _, desc := range d.All() {
		if !strings.HasPrefix(desc.Name, "user_") && !strings.HasPrefix(desc.Name, "bot_") {
			return fmt.Errorf("tool %q: names must begin with user_ or bot_", desc.Name)
		}
		if seen[desc.Name] {
			return fmt.Errorf("tool %q declared in more than one descriptor list", desc.Name)
		}
		seen[desc.Name] = true

		switch desc.ApprovalDefault {
		case "", models.ApprovalNone, models.ApprovalConditional, models.ApprovalAlways:
		default:
			return fmt.Errorf("tool %q: invalid approval_default %q", desc.Name, desc.ApprovalDefault)
		}
	}
	return nil
}

// validateGatedConfig rejects configured gated tool names that no module
// registered. This runs after load, once the registered set is complete.
func (l *Loader) validateGatedConfig() error {
	approvals := l.cfg.Modules.Approvals
	if approvals == nil {
		return nil
	}
	for tool := range approvals.GatedTools {
		if !l.registry.Has(tool) {
			return fmt.Errorf("gated tool %q is not registered by any module", tool)
		}
	}
	return nil
}

// mergeAlwaysGated folds descriptors whose effective approval default is
// "always" into the gated set, so the heuristic holds even when the config
// file omits them.
func (l *Loader) mergeAlwaysGated() {
	approvals := l.cfg.Modules.Approvals
	if !approvals.IsEnabled() {
		return
	}
	if approvals.GatedTools == nil {
		approvals.GatedTools = make(map[string]config.GatedToolConfig)
	}
	for _, m := range l.loaded {
		for _, desc := range m.Descriptors().All() {
			if desc.EffectiveApprovalDefault() != models.ApprovalAlways {
				continue
			}
			if _, ok := approvals.GatedTools[desc.Name]; !ok {
				approvals.GatedTools[desc.Name] = config.GatedToolConfig{}
				slog.Info("Tool gated by approval default", "tool", desc.Name)
			}
		}
	}
}

// resolveOrder topologically sorts modules by their dependencies.
func resolveOrder(mods []Module) ([]Module, error) {
	byName := make(map[string]Module, len(mods))
	for _, m := range mods {
		if _, ok := byName[m.Name()]; ok {
			return nil, fmt.Errorf("duplicate module name %q", m.Name())
		}
		byName[m.Name()] = m
	}

	var (
		ordered []Module
		state   = make(map[string]int) // 0 unvisited, 1 visiting, 2 done
		visit   func(m Module) error
	)
	visit = func(m Module) error {
		switch state[m.Name()] {
		case 1:
			return fmt.Errorf("dependency cycle through module %q", m.Name())
		case 2:
			return nil
		}
		state[m.Name()] = 1
		for _, dep := range m.Dependencies() {
			dm, ok := byName[dep]
			if !ok {
				return fmt.Errorf("module %q depends on unknown module %q", m.Name(), dep)
			}
			if err := visit(dm); err != nil {
				return err
			}
		}
		state[m.Name()] = 2
		ordered = append(ordered, m)
		return nil
	}

	// Deterministic load order for modules with no dependency relation.
	names := make([]string, 0, len(mods))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := visit(byName[name]); err != nil {
			return nil, err
		}
	}
	return ordered, nil
}
