package worker

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/butlerhq/butlerd/pkg/config"
	"github.com/butlerhq/butlerd/pkg/mcp"
	"github.com/butlerhq/butlerd/pkg/models"
)

func newTestSpawner() *Spawner {
	return &Spawner{
		cfg:        &config.WorkerConfig{},
		dispatcher: mcp.NewDispatcher(mcp.NewRegistry(), nil),
	}
}

func TestToolLoopFinalMessage(t *testing.T) {
	stdout := strings.Join([]string{
		`{"type":"log","message":"starting"}`,
		``,
		`this line is not json`,
		`{"type":"final","summary":"sent the reminder","cost":0.12}`,
	}, "\n")

	s := newTestSpawner()
	outcome := s.toolLoop(context.Background(), "sess-1", strings.NewReader(stdout),
		func(toolResultMessage) error { return nil })

	require.NotNil(t, outcome)
	assert.Equal(t, "sent the reminder", outcome.OutputSummary)
	assert.Equal(t, 0.12, outcome.Cost)
	assert.Empty(t, outcome.Err)
}

func TestToolLoopFinalWithError(t *testing.T) {
	stdout := `{"type":"final","error":"model refused the task"}`

	s := newTestSpawner()
	outcome := s.toolLoop(context.Background(), "sess-1", strings.NewReader(stdout),
		func(toolResultMessage) error { return nil })

	require.NotNil(t, outcome)
	assert.Equal(t, "model refused the task", outcome.Err)
}

func TestToolLoopAnswersToolCalls(t *testing.T) {
	stdout := strings.Join([]string{
		`{"type":"tool_call","id":"call-1","tool":"bot_nonexistent","args":{}}`,
		`{"type":"final","summary":"done"}`,
	}, "\n")

	var replies []toolResultMessage
	s := newTestSpawner()
	outcome := s.toolLoop(context.Background(), "sess-1", strings.NewReader(stdout),
		func(msg toolResultMessage) error {
			replies = append(replies, msg)
			return nil
		})

	require.NotNil(t, outcome)
	require.Len(t, replies, 1)
	assert.Equal(t, "tool_result", replies[0].Type)
	assert.Equal(t, "call-1", replies[0].ID)
	require.NotNil(t, replies[0].Result)
	assert.Equal(t, models.ToolStatusError, replies[0].Result.Status)
	assert.Equal(t, "UnknownTool", replies[0].Result.ErrorType)
}

func TestToolLoopEOFWithoutFinal(t *testing.T) {
	stdout := `{"type":"log","message":"crashing now"}`

	s := newTestSpawner()
	outcome := s.toolLoop(context.Background(), "sess-1", strings.NewReader(stdout),
		func(toolResultMessage) error { return nil })

	assert.Nil(t, outcome)
}

func TestToolLoopStopsWhenReplyFails(t *testing.T) {
	stdout := strings.Join([]string{
		`{"type":"tool_call","id":"call-1","tool":"bot_nonexistent","args":{}}`,
		`{"type":"final","summary":"never reached"}`,
	}, "\n")

	s := newTestSpawner()
	outcome := s.toolLoop(context.Background(), "sess-1", strings.NewReader(stdout),
		func(toolResultMessage) error { return errors.New("stdin closed") })

	// A dead stdin means the worker cannot make progress; the loop bails
	// and launch reports the session as ended without a final message.
	assert.Nil(t, outcome)
}

func TestLaunchRequiresCommand(t *testing.T) {
	s := newTestSpawner()
	_, err := s.launch(context.Background(), initMessage{SessionID: "sess-1"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "worker command not configured")
}
