package modules

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/butlerhq/butlerd/ent"
	"github.com/butlerhq/butlerd/pkg/config"
	"github.com/butlerhq/butlerd/pkg/mcp"
	"github.com/butlerhq/butlerd/pkg/models"
)

// fakeModule is a configurable Module for loader tests.
type fakeModule struct {
	name        string
	deps        []string
	descriptors Descriptors
	register    func(reg *mcp.Registry) error
	loadedInto  *[]string
}

func (f *fakeModule) Name() string             { return f.name }
func (f *fakeModule) Dependencies() []string   { return f.deps }
func (f *fakeModule) Descriptors() Descriptors { return f.descriptors }
func (f *fakeModule) Migrations() []string     { return nil }
func (f *fakeModule) CredentialsEnv() []string { return nil }
func (f *fakeModule) OnShutdown(context.Context) error { return nil }

func (f *fakeModule) RegisterTools(reg *mcp.Registry, _ map[string]interface{}, _ *ent.Client) error {
	if f.register != nil {
		return f.register(reg)
	}
	for _, d := range f.descriptors.All() {
		if err := reg.Register(f.name, d, func(context.Context, map[string]interface{}) (interface{}, error) {
			return map[string]interface{}{}, nil
		}); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeModule) OnStartup(context.Context) error {
	if f.loadedInto != nil {
		*f.loadedInto = append(*f.loadedInto, f.name)
	}
	return nil
}

func testLoaderConfig() *config.ButlerConfig {
	return &config.ButlerConfig{
		Name: "alfred",
		Modules: config.ModulesConfig{
			Approvals: &config.ApprovalsConfig{
				DefaultExpiryHours: 48,
				DefaultRiskTier:    "medium",
			},
		},
	}
}

func TestLoadOrderFollowsDependencies(t *testing.T) {
	var startups []string
	email := &fakeModule{
		name: "email",
		deps: []string{"contacts"},
		descriptors: Descriptors{
			BotOutputs: []models.ToolDescriptor{{Name: "bot_email_send"}},
		},
		loadedInto: &startups,
	}
	contacts := &fakeModule{
		name: "contacts",
		descriptors: Descriptors{
			BotInputs: []models.ToolDescriptor{{Name: "bot_contacts_list"}},
		},
		loadedInto: &startups,
	}

	loader := NewLoader(nil, nil, mcp.NewRegistry(), testLoaderConfig())
	require.NoError(t, loader.Load(context.Background(), []Module{email, contacts}))

	assert.Equal(t, []string{"contacts", "email"}, startups)
	assert.Equal(t, []string{"bot_contacts_list", "bot_email_send"}, loader.registry.Names())
}

func TestLoadRejectsDependencyCycle(t *testing.T) {
	a := &fakeModule{name: "a", deps: []string{"b"}}
	b := &fakeModule{name: "b", deps: []string{"a"}}

	loader := NewLoader(nil, nil, mcp.NewRegistry(), testLoaderConfig())
	err := loader.Load(context.Background(), []Module{a, b})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dependency cycle")
}

func TestLoadRejectsUnknownDependency(t *testing.T) {
	m := &fakeModule{name: "email", deps: []string{"contacts"}}

	loader := NewLoader(nil, nil, mcp.NewRegistry(), testLoaderConfig())
	err := loader.Load(context.Background(), []Module{m})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown module "contacts"`)
}

func TestLoadRejectsDuplicateModuleName(t *testing.T) {
	loader := NewLoader(nil, nil, mcp.NewRegistry(), testLoaderConfig())
	err := loader.Load(context.Background(), []Module{
		&fakeModule{name: "email"},
		&fakeModule{name: "email"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate module name")
}

func TestValidateDescriptors(t *testing.T) {
	tests := []struct {
		name    string
		desc    Descriptors
		wantErr string
	}{
		{
			name: "valid surface",
			desc: Descriptors{
				UserInputs: []models.ToolDescriptor{{Name: "user_telegram_fetch"}},
				BotOutputs: []models.ToolDescriptor{{Name: "bot_email_send", ApprovalDefault: models.ApprovalAlways}},
			},
		},
		{
			name: "missing identity prefix",
			desc: Descriptors{
				BotInputs: []models.ToolDescriptor{{Name: "calendar_read"}},
			},
			wantErr: "must begin with user_ or bot_",
		},
		{
			name: "duplicate across lists",
			desc: Descriptors{
				BotInputs:  []models.ToolDescriptor{{Name: "bot_calendar_read"}},
				BotOutputs: []models.ToolDescriptor{{Name: "bot_calendar_read"}},
			},
			wantErr: "more than one descriptor list",
		},
		{
			name: "invalid approval default",
			desc: Descriptors{
				BotOutputs: []models.ToolDescriptor{{Name: "bot_email_send", ApprovalDefault: "sometimes"}},
			},
			wantErr: "invalid approval_default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateDescriptors(tt.desc)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadRejectsUndeclaredRegisteredTool(t *testing.T) {
	m := &fakeModule{
		name: "email",
		descriptors: Descriptors{
			BotOutputs: []models.ToolDescriptor{{Name: "bot_email_send"}},
		},
		register: func(reg *mcp.Registry) error {
			// Registers a tool absent from its descriptor lists.
			return reg.Register("email", models.ToolDescriptor{Name: "bot_email_purge"},
				func(context.Context, map[string]interface{}) (interface{}, error) { return nil, nil })
		},
	}

	loader := NewLoader(nil, nil, mcp.NewRegistry(), testLoaderConfig())
	err := loader.Load(context.Background(), []Module{m})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has no descriptor")
}

func TestLoadRejectsUnregisteredGatedTool(t *testing.T) {
	cfg := testLoaderConfig()
	cfg.Modules.Approvals.GatedTools = map[string]config.GatedToolConfig{
		"bot_missing_tool": {},
	}
	m := &fakeModule{
		name: "email",
		descriptors: Descriptors{
			BotOutputs: []models.ToolDescriptor{{Name: "bot_email_send"}},
		},
	}

	loader := NewLoader(nil, nil, mcp.NewRegistry(), cfg)
	err := loader.Load(context.Background(), []Module{m})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `gated tool "bot_missing_tool" is not registered`)
}

func TestMergeAlwaysGated(t *testing.T) {
	cfg := testLoaderConfig()
	m := &fakeModule{
		name: "telegram",
		descriptors: Descriptors{
			UserOutputs: []models.ToolDescriptor{
				{Name: "user_telegram_send"}, // safety net gates it even unmarked
			},
			BotOutputs: []models.ToolDescriptor{
				{Name: "bot_telegram_send", ApprovalDefault: models.ApprovalAlways},
			},
			BotInputs: []models.ToolDescriptor{
				{Name: "bot_telegram_fetch"},
			},
		},
	}

	loader := NewLoader(nil, nil, mcp.NewRegistry(), cfg)
	require.NoError(t, loader.Load(context.Background(), []Module{m}))

	gated := cfg.Modules.Approvals.GatedTools
	assert.Contains(t, gated, "user_telegram_send")
	assert.Contains(t, gated, "bot_telegram_send")
	assert.NotContains(t, gated, "bot_telegram_fetch")
}

func TestCredentialsEnvUnion(t *testing.T) {
	loader := NewLoader(nil, nil, mcp.NewRegistry(), testLoaderConfig())
	loader.loaded = []Module{
		&credsModule{fakeModule{name: "telegram"}, []string{"TELEGRAM_BOT_TOKEN", "HTTP_PROXY"}},
		&credsModule{fakeModule{name: "email"}, []string{"SMTP_PASSWORD", "HTTP_PROXY"}},
	}
	assert.Equal(t,
		[]string{"HTTP_PROXY", "SMTP_PASSWORD", "TELEGRAM_BOT_TOKEN"},
		loader.CredentialsEnv())
}

type credsModule struct {
	fakeModule
	env []string
}

func (c *credsModule) CredentialsEnv() []string { return c.env }
