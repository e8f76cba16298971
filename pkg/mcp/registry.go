// Package mcp is the butler's tool surface: the registry of named tools
// modules expose to worker subprocesses, and the dispatcher every worker
// tool call funnels through.
package mcp

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"sync"

	"github.com/butlerhq/butlerd/pkg/models"
)

// toolNameRegex validates registered tool names: word characters and
// underscores, starting with a letter.
var toolNameRegex = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// HandlerFunc is one tool's implementation. Args arrive as a decoded JSON
// object; the return value is the tool's data payload.
type HandlerFunc func(ctx context.Context, args map[string]interface{}) (interface{}, error)

// RegisteredTool pairs a tool descriptor with its handler and owning module.
type RegisteredTool struct {
	Descriptor models.ToolDescriptor
	Handler    HandlerFunc
	Module     string
}

// Registry holds the tool set assembled at module load. It implements
// approval.Invoker: the gate calls back into it to run handlers.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]*RegisteredTool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]*RegisteredTool)}
}

// Register adds one tool. Names must be unique across modules; a collision
// is a load-time error, not a runtime override.
func (r *Registry) Register(module string, desc models.ToolDescriptor, handler HandlerFunc) error {
	if !toolNameRegex.MatchString(desc.Name) {
		return fmt.Errorf("invalid tool name %q: must match %s", desc.Name, toolNameRegex)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.tools[desc.Name]; ok {
		return fmt.Errorf("tool %q already registered by module %q", desc.Name, existing.Module)
	}
	r.tools[desc.Name] = &RegisteredTool{
		Descriptor: desc,
		Handler:    handler,
		Module:     module,
	}
	return nil
}

// Get returns a registered tool.
func (r *Registry) Get(name string) (*RegisteredTool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tools[name]
	return t, ok
}

// Has reports whether a tool name is registered, regardless of handler.
func (r *Registry) Has(name string) bool {
	_, ok := r.Get(name)
	return ok
}

// HasHandler reports whether a registered tool carries a runnable handler.
func (r *Registry) HasHandler(name string) bool {
	t, ok := r.Get(name)
	return ok && t.Handler != nil
}

// RequiresApproval reports whether a tool's effective approval default is
// "always". The gate consults this even when the approvals module is
// disabled: such tools must never execute ungated.
func (r *Registry) RequiresApproval(name string) bool {
	t, ok := r.Get(name)
	return ok && t.Descriptor.EffectiveApprovalDefault() == models.ApprovalAlways
}

// Invoke runs a tool's handler directly, without gate interposition. Only
// the gate and the executor call this.
func (r *Registry) Invoke(ctx context.Context, name string, args map[string]interface{}) (interface{}, error) {
	t, ok := r.Get(name)
	if !ok {
		return nil, fmt.Errorf("unknown tool %q", name)
	}
	if t.Handler == nil {
		return nil, fmt.Errorf("tool %q has no handler", name)
	}
	return t.Handler(ctx, args)
}

// Descriptors returns all registered tool descriptors sorted by name. The
// spawner serializes this as the worker's tool manifest.
func (r *Registry) Descriptors() []models.ToolDescriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.ToolDescriptor, 0, len(r.tools))
	for _, t := range r.tools {
		out = append(out, t.Descriptor)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Names returns all registered tool names sorted.
func (r *Registry) Names() []string {
	descs := r.Descriptors()
	out := make([]string, len(descs))
	for i, d := range descs {
		out[i] = d.Name
	}
	return out
}
