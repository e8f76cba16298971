package worker

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"sync"
	"syscall"
	"time"

	"github.com/butlerhq/butlerd/pkg/models"
)

// maxLineBytes bounds one protocol line from the worker.
const maxLineBytes = 4 * 1024 * 1024

// launch runs one worker subprocess to completion: start, init handshake,
// tool-call loop, terminate. On context cancellation the process gets
// SIGTERM, then SIGKILL after the grace period.
func (s *Spawner) launch(ctx context.Context, init initMessage, env []string) (*models.SessionOutcome, error) {
	if s.cfg.Command == "" {
		return nil, fmt.Errorf("worker command not configured")
	}

	cmd := exec.Command(s.cfg.Command, s.cfg.Args...)
	cmd.Env = env

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to open worker stdin: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to open worker stdout: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to open worker stderr: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start worker: %w", err)
	}

	log := slog.With("session_id", init.SessionID, "pid", cmd.Process.Pid)

	// Termination watchdog: SIGTERM on cancellation, SIGKILL after grace.
	watchDone := make(chan struct{})
	defer close(watchDone)
	go func() {
		select {
		case <-watchDone:
			return
		case <-ctx.Done():
		}
		log.Warn("Terminating worker", "reason", ctx.Err())
		_ = cmd.Process.Signal(syscall.SIGTERM)
		select {
		case <-watchDone:
		case <-time.After(s.cfg.GracePeriod()):
			log.Warn("Worker did not exit in grace period, killing")
			_ = cmd.Process.Kill()
		}
	}()

	go logStderr(stderr, log)

	enc := json.NewEncoder(stdin)
	var encMu sync.Mutex
	if err := enc.Encode(init); err != nil {
		_ = cmd.Process.Kill()
		_ = cmd.Wait()
		return nil, fmt.Errorf("failed to send init: %w", err)
	}

	outcome := s.toolLoop(ctx, init.SessionID, stdout, func(msg toolResultMessage) error {
		encMu.Lock()
		defer encMu.Unlock()
		return enc.Encode(msg)
	})

	_ = stdin.Close()
	waitErr := cmd.Wait()

	if outcome == nil {
		switch {
		case ctx.Err() == context.DeadlineExceeded:
			return &models.SessionOutcome{Err: fmt.Sprintf("worker timed out after %v", s.cfg.Timeout())}, nil
		case ctx.Err() != nil:
			return &models.SessionOutcome{Err: "worker cancelled"}, nil
		case waitErr != nil:
			return &models.SessionOutcome{Err: fmt.Sprintf("worker exited without final message: %v", waitErr)}, nil
		default:
			return &models.SessionOutcome{Err: "worker exited without final message"}, nil
		}
	}
	return outcome, nil
}

// toolLoop reads worker messages until a final message or EOF. Every
// tool_call is answered through the dispatcher, which is where the approval
// gate interposes.
func (s *Spawner) toolLoop(ctx context.Context, sessionID string, stdout io.Reader, reply func(toolResultMessage) error) *models.SessionOutcome {
	scanner := bufio.NewScanner(stdout)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)
	log := slog.With("session_id", sessionID)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var msg workerMessage
		if err := json.Unmarshal(line, &msg); err != nil {
			log.Warn("Unparseable worker message, ignoring", "error", err)
			continue
		}

		switch msg.Type {
		case "tool_call":
			result := s.dispatcher.Dispatch(ctx, sessionID, msg.Tool, msg.Args, msg.Summary)
			if err := reply(toolResultMessage{Type: "tool_result", ID: msg.ID, Result: result}); err != nil {
				log.Warn("Failed to write tool result to worker", "error", err)
				return nil
			}
		case "final":
			return &models.SessionOutcome{
				OutputSummary: msg.Summary,
				Err:           msg.Error,
				Cost:          msg.Cost,
			}
		case "log":
			log.Debug("Worker log", "message", msg.Message)
		default:
			log.Warn("Unknown worker message type", "type", msg.Type)
		}
	}
	if err := scanner.Err(); err != nil {
		log.Warn("Worker stdout read failed", "error", err)
	}
	return nil
}

func logStderr(stderr io.Reader, log *slog.Logger) {
	scanner := bufio.NewScanner(stderr)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)
	for scanner.Scan() {
		log.Debug("Worker stderr", "line", scanner.Text())
	}
}
