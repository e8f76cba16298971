package mcp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/butlerhq/butlerd/pkg/models"
)

func echoHandler(_ context.Context, args map[string]interface{}) (interface{}, error) {
	return args, nil
}

func TestRegistryRegister(t *testing.T) {
	r := NewRegistry()

	require.NoError(t, r.Register("messaging",
		models.ToolDescriptor{Name: "bot_email_send"}, echoHandler))
	assert.True(t, r.Has("bot_email_send"))
	assert.True(t, r.HasHandler("bot_email_send"))

	t.Run("collision rejected", func(t *testing.T) {
		err := r.Register("other",
			models.ToolDescriptor{Name: "bot_email_send"}, echoHandler)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already registered by module \"messaging\"")
	})

	t.Run("invalid names rejected", func(t *testing.T) {
		for _, name := range []string{"", "9tool", "Tool", "has space", "has-dash"} {
			err := r.Register("m", models.ToolDescriptor{Name: name}, echoHandler)
			assert.Error(t, err, "name %q", name)
		}
	})

	t.Run("nil handler registers but is not runnable", func(t *testing.T) {
		require.NoError(t, r.Register("messaging",
			models.ToolDescriptor{Name: "bot_email_fetch"}, nil))
		assert.True(t, r.Has("bot_email_fetch"))
		assert.False(t, r.HasHandler("bot_email_fetch"))

		_, err := r.Invoke(context.Background(), "bot_email_fetch", nil)
		assert.Error(t, err)
	})
}

func TestRegistryInvoke(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register("messaging",
		models.ToolDescriptor{Name: "bot_email_send"}, echoHandler))

	out, err := r.Invoke(context.Background(), "bot_email_send",
		map[string]interface{}{"to": "x"})
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"to": "x"}, out)

	_, err = r.Invoke(context.Background(), "no_such_tool", nil)
	assert.Error(t, err)
}

func TestRegistryDescriptors(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register("m", models.ToolDescriptor{Name: "zeta"}, echoHandler))
	require.NoError(t, r.Register("m", models.ToolDescriptor{Name: "alpha"}, echoHandler))

	assert.Equal(t, []string{"alpha", "zeta"}, r.Names())
}
