package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/butlerhq/butlerd/ent"
	"github.com/butlerhq/butlerd/ent/pendingaction"
	"github.com/butlerhq/butlerd/pkg/approval"
	"github.com/butlerhq/butlerd/pkg/config"
	"github.com/butlerhq/butlerd/pkg/events"
)

// Worker is a single executor-pool worker that polls for and runs approved
// actions.
type Worker struct {
	id        string
	epoch     string
	client    *ent.Client
	config    *config.QueueConfig
	executor  *approval.Executor
	publisher *events.Publisher
	stopCh    chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup

	mu               sync.RWMutex
	status           WorkerStatus
	currentActionID  string
	actionsProcessed int
	lastActivity     time.Time
}

// NewWorker creates one pool worker. publisher may be nil.
func NewWorker(id, epoch string, client *ent.Client, cfg *config.QueueConfig, executor *approval.Executor, publisher *events.Publisher) *Worker {
	return &Worker{
		id:           id,
		epoch:        epoch,
		client:       client,
		config:       cfg,
		executor:     executor,
		publisher:    publisher,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker and waits for its current action to finish.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the worker's health snapshot.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:               w.id,
		Status:           w.status,
		CurrentActionID:  w.currentActionID,
		ActionsProcessed: w.actionsProcessed,
		LastActivity:     w.lastActivity,
	}
}

func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id)
	log.Info("Executor worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Executor worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, executor worker shutting down")
			return
		default:
			if err := w.pollAndExecute(ctx); err != nil {
				if errors.Is(err, ErrNoActionsAvailable) {
					w.sleep(w.config.PollInterval())
					continue
				}
				log.Error("Error executing action", "error", err)
				w.sleep(time.Second)
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndExecute claims the oldest unclaimed approved action and runs it
// from its persisted args.
func (w *Worker) pollAndExecute(ctx context.Context) error {
	action, err := w.claimNextAction(ctx)
	if err != nil {
		return err
	}

	log := slog.With("action_id", action.ID, "tool_name", action.ToolName, "worker_id", w.id)
	log.Info("Approved action claimed", "dispatch_epoch", w.epoch)

	w.setStatus(WorkerStatusWorking, action.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	result, err := w.executor.RunPersisted(ctx, action)
	if err != nil {
		if errors.Is(err, approval.ErrInvalidTransition) {
			// Someone moved the action off approved while we held the claim.
			// The handler already ran; there is nothing safe to redo.
			log.Error("Action status changed during execution, result not recorded", "error", err)
			return nil
		}
		return err
	}

	if w.publisher != nil {
		ruleID := ""
		if action.RuleID != nil {
			ruleID = *action.RuleID
		}
		w.publisher.NotifyApproval(ctx, "executed", action.ID, ruleID)
	}

	w.mu.Lock()
	w.actionsProcessed++
	w.mu.Unlock()

	log.Info("Approved action executed", "success", result.Success)
	return nil
}

// claimNextAction claims the oldest approved, unclaimed action. The claim is
// a FOR UPDATE SKIP LOCKED select plus a dispatch_epoch write, so two
// workers (or two processes) never hold the same action.
func (w *Worker) claimNextAction(ctx context.Context) (*ent.PendingAction, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	action, err := tx.PendingAction.Query().
		Where(
			pendingaction.StatusEQ(pendingaction.StatusApproved),
			pendingaction.DispatchEpochIsNil(),
			pendingaction.NeedsReconciliation(false),
		).
		Order(ent.Asc(pendingaction.FieldRequestedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoActionsAvailable
		}
		return nil, fmt.Errorf("failed to query approved actions: %w", err)
	}

	action, err = action.Update().
		SetDispatchEpoch(w.epoch).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim action: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return action, nil
}

func (w *Worker) setStatus(status WorkerStatus, actionID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentActionID = actionID
	w.lastActivity = time.Now()
}
