// Package modules defines the inward module boundary: the interface feature
// bundles implement, the loader that validates and wires them, and the
// built-in modules every butler carries.
package modules

import (
	"context"

	"github.com/butlerhq/butlerd/ent"
	"github.com/butlerhq/butlerd/pkg/mcp"
	"github.com/butlerhq/butlerd/pkg/models"
)

// Descriptors are a module's four tool-I/O lists, split by identity prefix
// and direction. Every tool the module registers must appear in exactly one
// list.
type Descriptors struct {
	UserInputs  []models.ToolDescriptor
	UserOutputs []models.ToolDescriptor
	BotInputs   []models.ToolDescriptor
	BotOutputs  []models.ToolDescriptor
}

// All returns the four lists flattened.
func (d Descriptors) All() []models.ToolDescriptor {
	out := make([]models.ToolDescriptor, 0,
		len(d.UserInputs)+len(d.UserOutputs)+len(d.BotInputs)+len(d.BotOutputs))
	out = append(out, d.UserInputs...)
	out = append(out, d.UserOutputs...)
	out = append(out, d.BotInputs...)
	out = append(out, d.BotOutputs...)
	return out
}

// Module is one self-contained feature bundle.
type Module interface {
	// Name identifies the module in config tables and logs.
	Name() string

	// Dependencies lists module names that must load first.
	Dependencies() []string

	// Descriptors declares the module's tool surface.
	Descriptors() Descriptors

	// RegisterTools binds handlers into the registry. settings is the raw
	// [modules.<name>] table from the butler's config file.
	RegisterTools(reg *mcp.Registry, settings map[string]interface{}, client *ent.Client) error

	// Migrations returns idempotent SQL statements for module-owned tables,
	// applied in order at load time.
	Migrations() []string

	// CredentialsEnv lists env var names the module needs at runtime. The
	// spawner forwards them to worker subprocesses.
	CredentialsEnv() []string

	// OnStartup runs after all modules are registered and validated.
	OnStartup(ctx context.Context) error

	// OnShutdown runs during daemon shutdown, reverse load order.
	OnShutdown(ctx context.Context) error
}

