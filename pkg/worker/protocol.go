package worker

import "github.com/butlerhq/butlerd/pkg/models"

// The stdio protocol between the daemon and a worker subprocess: the daemon
// writes one init message, then the worker emits newline-delimited JSON
// messages on stdout. Every tool_call gets exactly one tool_result on the
// worker's stdin; a final message ends the session.

// initMessage is the first line written to the worker's stdin.
type initMessage struct {
	Type         string                  `json:"type"`
	SessionID    string                  `json:"session_id"`
	Butler       string                  `json:"butler"`
	SystemPrompt string                  `json:"system_prompt"`
	Prompt       string                  `json:"prompt"`
	Tools        []models.ToolDescriptor `json:"tools"`
}

// workerMessage is one stdout line from the worker.
type workerMessage struct {
	Type    string      `json:"type"` // "tool_call", "final" or "log"
	ID      string      `json:"id,omitempty"`
	Tool    string      `json:"tool,omitempty"`
	Args    interface{} `json:"args,omitempty"`
	Summary string      `json:"summary,omitempty"`
	Cost    float64     `json:"cost,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

// toolResultMessage answers one tool_call on the worker's stdin.
type toolResultMessage struct {
	Type   string             `json:"type"`
	ID     string             `json:"id"`
	Result *models.ToolResult `json:"result"`
}
