package mcp

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/butlerhq/butlerd/pkg/approval"
	"github.com/butlerhq/butlerd/pkg/models"
)

// Dispatcher is the single path a worker's tool calls take: name validation,
// argument normalization, then the approval gate. Handlers never run without
// passing through here or through the executor pool.
type Dispatcher struct {
	registry *Registry
	gate     *approval.Gate
}

// NewDispatcher creates a Dispatcher over a registry and gate.
func NewDispatcher(registry *Registry, gate *approval.Gate) *Dispatcher {
	return &Dispatcher{registry: registry, gate: gate}
}

// Dispatch handles one tool call from a worker. rawArgs may be a decoded
// JSON object or a raw string (some workers emit loosely formatted
// arguments); both normalize to a map before gating.
func (d *Dispatcher) Dispatch(ctx context.Context, sessionID, toolName string, rawArgs interface{}, agentSummary string) *models.ToolResult {
	if !d.registry.Has(toolName) {
		return models.ErrorResult("UnknownTool",
			fmt.Sprintf("unknown tool %q; see the tool manifest for available tools", toolName))
	}

	args, err := NormalizeArgs(rawArgs)
	if err != nil {
		return models.ErrorResult("InvalidArguments", err.Error())
	}

	result, err := d.gate.Intercept(ctx, toolName, args, sessionID, agentSummary)
	if err != nil {
		slog.Error("Tool dispatch failed",
			"tool_name", toolName, "session_id", sessionID, "error", err)
		return models.ErrorResult("DispatchError", "internal error dispatching tool call")
	}
	return result
}

// NormalizeArgs converts whatever argument shape a worker sent into the
// map the gate and handlers expect.
func NormalizeArgs(rawArgs interface{}) (map[string]interface{}, error) {
	switch v := rawArgs.(type) {
	case nil:
		return map[string]interface{}{}, nil
	case map[string]interface{}:
		return v, nil
	case string:
		return ParseActionInput(v)
	default:
		return nil, fmt.Errorf("unsupported argument shape %T", rawArgs)
	}
}
