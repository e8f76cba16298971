package modules

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/butlerhq/butlerd/ent"
	"github.com/butlerhq/butlerd/pkg/kvstore"
	"github.com/butlerhq/butlerd/pkg/mcp"
	"github.com/butlerhq/butlerd/pkg/models"
	"github.com/butlerhq/butlerd/pkg/scheduler"
)

// AdminModule gives workers the butler's own housekeeping surface: runtime
// schedule management and key-value memory.
type AdminModule struct {
	tasks *scheduler.Service
	kv    *kvstore.Store
}

// NewAdminModule creates the admin module.
func NewAdminModule(tasks *scheduler.Service, kv *kvstore.Store) *AdminModule {
	return &AdminModule{tasks: tasks, kv: kv}
}

func (a *AdminModule) Name() string             { return "admin" }
func (a *AdminModule) Dependencies() []string   { return nil }
func (a *AdminModule) Migrations() []string     { return nil }
func (a *AdminModule) CredentialsEnv() []string { return nil }

func (a *AdminModule) Descriptors() Descriptors {
	return Descriptors{
		BotOutputs: []models.ToolDescriptor{
			{
				Name:            "bot_schedule_create",
				Description:     "Create a recurring or one-shot scheduled task",
				ApprovalDefault: models.ApprovalConditional,
			},
			{
				Name:            "bot_schedule_cancel",
				Description:     "Disable a scheduled task",
				ApprovalDefault: models.ApprovalNone,
			},
			{
				Name:            "bot_memory_store",
				Description:     "Store a fact in the butler's long-lived memory",
				ApprovalDefault: models.ApprovalNone,
			},
		},
		BotInputs: []models.ToolDescriptor{
			{
				Name:            "bot_schedule_list",
				Description:     "List the butler's scheduled tasks",
				ApprovalDefault: models.ApprovalNone,
			},
			{
				Name:            "bot_memory_recall",
				Description:     "Recall a fact from the butler's long-lived memory",
				ApprovalDefault: models.ApprovalNone,
			},
		},
	}
}

func (a *AdminModule) RegisterTools(reg *mcp.Registry, _ map[string]interface{}, _ *ent.Client) error {
	handlers := map[string]mcp.HandlerFunc{
		"bot_schedule_create": a.scheduleCreate,
		"bot_schedule_cancel": a.scheduleCancel,
		"bot_schedule_list":   a.scheduleList,
		"bot_memory_store":    a.memoryStore,
		"bot_memory_recall":   a.memoryRecall,
	}
	for _, desc := range a.Descriptors().All() {
		if err := reg.Register(a.Name(), desc, handlers[desc.Name]); err != nil {
			return err
		}
	}
	return nil
}

func (a *AdminModule) OnStartup(context.Context) error  { return nil }
func (a *AdminModule) OnShutdown(context.Context) error { return nil }

func (a *AdminModule) scheduleCreate(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	req := models.CreateTaskRequest{
		Name:   stringArg(args, "name"),
		Cron:   stringArg(args, "cron"),
		Prompt: stringArg(args, "prompt"),
	}
	if raw := stringArg(args, "start_at"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, fmt.Errorf("invalid start_at %q: %w", raw, err)
		}
		req.StartAt = &t
	}

	task, err := a.tasks.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"task_id": task.ID,
		"name":    task.Name,
	}, nil
}

func (a *AdminModule) scheduleCancel(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	taskID := stringArg(args, "task_id")
	if taskID == "" {
		return nil, fmt.Errorf("task_id is required")
	}
	task, err := a.tasks.Toggle(ctx, taskID, false)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"task_id": task.ID, "enabled": task.Enabled}, nil
}

func (a *AdminModule) scheduleList(ctx context.Context, _ map[string]interface{}) (interface{}, error) {
	tasks, err := a.tasks.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]map[string]interface{}, 0, len(tasks))
	for _, t := range tasks {
		entry := map[string]interface{}{
			"task_id": t.ID,
			"name":    t.Name,
			"cron":    t.Cron,
			"enabled": t.Enabled,
			"source":  string(t.Source),
		}
		if t.NextRunAt != nil {
			entry["next_run_at"] = t.NextRunAt.Format(time.RFC3339)
		}
		out = append(out, entry)
	}
	return map[string]interface{}{"tasks": out}, nil
}

// Context assembles the memory block for a worker's system prompt from all
// stored facts. Satisfies the spawner's memory surface.
func (a *AdminModule) Context(ctx context.Context, _ string, _ string) (string, error) {
	entries, err := a.kv.ListPrefix(ctx, "memory:")
	if err != nil {
		return "", err
	}
	if len(entries) == 0 {
		return "", nil
	}

	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("Known facts:\n")
	for _, k := range keys {
		fmt.Fprintf(&b, "- %s: %v\n", strings.TrimPrefix(k, "memory:"), entries[k]["value"])
	}
	return b.String(), nil
}

// StoreEpisode records a finished session's observations.
func (a *AdminModule) StoreEpisode(ctx context.Context, butler, sessionID, observations string) error {
	return a.kv.Set(ctx, "episode:"+sessionID, map[string]interface{}{
		"butler":       butler,
		"observations": observations,
		"stored_at":    time.Now().UTC().Format(time.RFC3339),
	})
}

func (a *AdminModule) memoryStore(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	key := stringArg(args, "key")
	if key == "" {
		return nil, fmt.Errorf("key is required")
	}
	value, ok := args["value"]
	if !ok {
		return nil, fmt.Errorf("value is required")
	}
	if err := a.kv.Set(ctx, "memory:"+key, map[string]interface{}{"value": value}); err != nil {
		return nil, err
	}
	return map[string]interface{}{"stored": true, "key": key}, nil
}

func (a *AdminModule) memoryRecall(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	key := stringArg(args, "key")
	if key == "" {
		return nil, fmt.Errorf("key is required")
	}
	value, found, err := a.kv.Get(ctx, "memory:"+key)
	if err != nil {
		return nil, err
	}
	if !found {
		return map[string]interface{}{"found": false}, nil
	}
	return map[string]interface{}{"found": true, "value": value["value"]}, nil
}
