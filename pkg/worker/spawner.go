// Package worker spawns and supervises the butler's worker subprocesses.
// The spawner is the only component that creates sessions; ingest, schedule,
// and manual triggers all funnel through it.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/butlerhq/butlerd/ent"
	"github.com/butlerhq/butlerd/ent/session"
	"github.com/butlerhq/butlerd/pkg/config"
	"github.com/butlerhq/butlerd/pkg/events"
	"github.com/butlerhq/butlerd/pkg/identity"
	"github.com/butlerhq/butlerd/pkg/masking"
	"github.com/butlerhq/butlerd/pkg/mcp"
	"github.com/butlerhq/butlerd/pkg/models"
)

// Memory is the optional memory module surface the spawner calls. Both
// operations are fail-open: a memory failure never blocks a session.
type Memory interface {
	Context(ctx context.Context, prompt, butler string) (string, error)
	StoreEpisode(ctx context.Context, butler, sessionID, observations string) error
}

// Spawner launches worker subprocesses and records their sessions.
type Spawner struct {
	client      *ent.Client
	cfg         *config.WorkerConfig
	registry    *mcp.Registry
	dispatcher  *mcp.Dispatcher
	resolver    *identity.Resolver
	masker      *masking.Service
	publisher   *events.Publisher
	memory      Memory
	credentials func() []string
	butlerName  string
}

// NewSpawner creates a Spawner. memory and publisher may be nil; credentials
// returns the env var names loaded modules declared.
func NewSpawner(
	client *ent.Client,
	cfg *config.WorkerConfig,
	registry *mcp.Registry,
	dispatcher *mcp.Dispatcher,
	resolver *identity.Resolver,
	masker *masking.Service,
	publisher *events.Publisher,
	memory Memory,
	credentials func() []string,
	butlerName string,
) *Spawner {
	return &Spawner{
		client:      client,
		cfg:         cfg,
		registry:    registry,
		dispatcher:  dispatcher,
		resolver:    resolver,
		masker:      masker,
		publisher:   publisher,
		memory:      memory,
		credentials: credentials,
		butlerName:  butlerName,
	}
}

// Spawn creates the session and runs the worker in the background. The
// session ID is returned immediately so callers can link it.
func (s *Spawner) Spawn(ctx context.Context, trigger models.Trigger) (string, error) {
	sessionID, err := s.createSession(ctx, trigger)
	if err != nil {
		return "", err
	}
	go func() {
		// The session outlives the caller's request context.
		runCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Timeout())
		defer cancel()
		s.runSession(runCtx, sessionID, trigger)
	}()
	return sessionID, nil
}

// SpawnWait runs a worker session to completion and returns its outcome.
func (s *Spawner) SpawnWait(ctx context.Context, trigger models.Trigger) (string, *models.SessionOutcome, error) {
	sessionID, err := s.createSession(ctx, trigger)
	if err != nil {
		return "", nil, err
	}
	runCtx, cancel := context.WithTimeout(ctx, s.cfg.Timeout())
	defer cancel()
	outcome := s.runSession(runCtx, sessionID, trigger)
	return sessionID, outcome, nil
}

// RunTask implements scheduler.Runner.
func (s *Spawner) RunTask(ctx context.Context, task *ent.ScheduledTask) (*models.SessionOutcome, error) {
	_, outcome, err := s.SpawnWait(ctx, models.Trigger{
		Kind:   models.TriggerSchedule,
		Butler: s.butlerName,
		Prompt: task.Prompt,
		TaskID: task.ID,
	})
	return outcome, err
}

func (s *Spawner) createSession(ctx context.Context, trigger models.Trigger) (string, error) {
	sessionID := uuid.New().String()
	input := trigger.Prompt
	if trigger.IdentityPreamble != "" {
		input = trigger.IdentityPreamble + "\n" + input
	}

	butler := trigger.Butler
	if butler == "" {
		butler = s.butlerName
	}

	_, err := s.client.Session.Create().
		SetID(sessionID).
		SetButler(butler).
		SetTriggerKind(session.TriggerKind(trigger.Kind)).
		SetStartedAt(time.Now().UTC()).
		SetInputPrompt(s.masker.MaskString(input)).
		Save(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	if s.publisher != nil {
		s.publisher.NotifySession(ctx, "started", sessionID)
	}
	return sessionID, nil
}

// runSession launches the subprocess, supervises its tool loop, and
// finalizes the session row. Always returns a non-nil outcome.
func (s *Spawner) runSession(ctx context.Context, sessionID string, trigger models.Trigger) *models.SessionOutcome {
	log := slog.With("session_id", sessionID, "trigger", trigger.Kind)
	log.Info("Worker session starting")

	init := initMessage{
		Type:         "init",
		SessionID:    sessionID,
		Butler:       s.butlerName,
		SystemPrompt: s.composeSystemPrompt(ctx, trigger),
		Prompt:       trigger.Prompt,
		Tools:        s.registry.Descriptors(),
	}

	outcome, err := s.launch(ctx, init, s.composeEnv(ctx, sessionID))
	if err != nil {
		outcome = &models.SessionOutcome{Err: err.Error()}
	}

	s.finalizeSession(sessionID, trigger, outcome)
	log.Info("Worker session finished", "error", outcome.Err != "")
	return outcome
}

// composeSystemPrompt joins the static persona, the memory module's context
// block, and the identity preamble. Memory failures degrade to an empty
// block.
func (s *Spawner) composeSystemPrompt(ctx context.Context, trigger models.Trigger) string {
	parts := []string{s.cfg.Persona}

	if s.memory != nil {
		block, err := s.memory.Context(ctx, trigger.Prompt, s.butlerName)
		if err != nil {
			slog.Warn("Memory context lookup failed, continuing without it", "error", err)
		} else if block != "" {
			parts = append(parts, block)
		}
	}

	if trigger.IdentityPreamble != "" {
		parts = append(parts, trigger.IdentityPreamble)
	}
	return strings.Join(parts, "\n\n")
}

// composeEnv builds the subprocess environment: module-declared credential
// vars passed through from the daemon, plus the owner's secured channel
// values. Secret values never appear in logs.
func (s *Spawner) composeEnv(ctx context.Context, sessionID string) []string {
	env := []string{
		"BUTLER_SESSION_ID=" + sessionID,
		"BUTLER_NAME=" + s.butlerName,
		"PATH=" + os.Getenv("PATH"),
		"HOME=" + os.Getenv("HOME"),
	}

	for _, name := range s.credentials() {
		if value, ok := os.LookupEnv(name); ok {
			env = append(env, name+"="+value)
		} else {
			slog.Warn("Module credential env var not set", "name", name)
		}
	}

	owner, err := s.resolver.Owner(ctx)
	if err != nil {
		slog.Warn("Owner lookup for secured channels failed", "error", err)
		return env
	}
	channels, err := s.resolver.Channels(ctx, owner.ID, true)
	if err != nil {
		slog.Warn("Secured channel lookup failed", "error", err)
		return env
	}
	for _, ch := range channels {
		if !ch.Secured {
			continue
		}
		name := "BUTLER_SECURED_" + strings.ToUpper(ch.ChannelType)
		env = append(env, name+"="+ch.ChannelValue)
	}
	return env
}

// finalizeSession records the outcome and stores the episode. Persistence
// uses a fresh context: the session context may already be cancelled.
func (s *Spawner) finalizeSession(sessionID string, trigger models.Trigger, outcome *models.SessionOutcome) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	update := s.client.Session.UpdateOneID(sessionID).
		SetEndedAt(time.Now().UTC()).
		SetCost(outcome.Cost)
	if outcome.OutputSummary != "" {
		update.SetOutputSummary(s.masker.MaskString(outcome.OutputSummary))
	}
	if outcome.Err != "" {
		update.SetError(s.masker.MaskString(outcome.Err))
	}
	if err := update.Exec(ctx); err != nil {
		slog.Error("Failed to finalize session", "session_id", sessionID, "error", err)
	}

	if s.memory != nil && outcome.Err == "" {
		butler := trigger.Butler
		if butler == "" {
			butler = s.butlerName
		}
		if err := s.memory.StoreEpisode(ctx, butler, sessionID, outcome.OutputSummary); err != nil {
			slog.Warn("Episode store failed, session finalized anyway",
				"session_id", sessionID, "error", err)
		}
	}

	if s.publisher != nil {
		s.publisher.NotifySession(ctx, "ended", sessionID)
	}
}
