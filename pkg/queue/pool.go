package queue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/butlerhq/butlerd/ent"
	"github.com/butlerhq/butlerd/ent/pendingaction"
	"github.com/butlerhq/butlerd/pkg/approval"
	"github.com/butlerhq/butlerd/pkg/config"
	"github.com/butlerhq/butlerd/pkg/events"
)

// WorkerPool manages the executor workers for one butler process.
type WorkerPool struct {
	epoch     string
	client    *ent.Client
	config    *config.QueueConfig
	executor  *approval.Executor
	publisher *events.Publisher
	workers   []*Worker
	started   bool
}

// NewWorkerPool creates a pool with a fresh dispatch epoch. publisher may be
// nil.
func NewWorkerPool(client *ent.Client, cfg *config.QueueConfig, executor *approval.Executor, publisher *events.Publisher) *WorkerPool {
	workerCount := cfg.WorkerCount
	if workerCount <= 0 {
		workerCount = 2
	}
	return &WorkerPool{
		epoch:     approval.BootEpoch(),
		client:    client,
		config:    cfg,
		executor:  executor,
		publisher: publisher,
		workers:   make([]*Worker, 0, workerCount),
	}
}

// Epoch returns this boot's dispatch epoch.
func (p *WorkerPool) Epoch() string {
	return p.epoch
}

// Start reconciles stale claims from previous boots, then spawns the
// workers. Safe to call once; duplicate calls are no-ops.
func (p *WorkerPool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call")
		return nil
	}
	p.started = true

	if err := p.reconcileForeignClaims(ctx); err != nil {
		return err
	}

	count := cap(p.workers)
	slog.Info("Starting executor pool", "dispatch_epoch", p.epoch, "worker_count", count)
	for i := 0; i < count; i++ {
		workerID := fmt.Sprintf("executor-%d", i)
		worker := NewWorker(workerID, p.epoch, p.client, p.config, p.executor, p.publisher)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}
	return nil
}

// Stop signals all workers and waits for in-flight executions to finish.
func (p *WorkerPool) Stop() {
	slog.Info("Stopping executor pool")
	for _, worker := range p.workers {
		worker.Stop()
	}
	slog.Info("Executor pool stopped")
}

// reconcileForeignClaims flags approved actions claimed by a previous boot.
// Whether the claimed execution ran before the crash is unknowable, so the
// action is surfaced for owner review rather than retried.
func (p *WorkerPool) reconcileForeignClaims(ctx context.Context) error {
	n, err := p.client.PendingAction.Update().
		Where(
			pendingaction.StatusEQ(pendingaction.StatusApproved),
			pendingaction.DispatchEpochNotNil(),
			pendingaction.DispatchEpochNEQ(p.epoch),
			pendingaction.NeedsReconciliation(false),
		).
		SetNeedsReconciliation(true).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to reconcile stale claims: %w", err)
	}
	if n > 0 {
		slog.Warn("Found approved actions claimed by a previous run, flagged for review",
			"count", n, "dispatch_epoch", p.epoch)
	}
	return nil
}

// Health returns the pool's health snapshot.
func (p *WorkerPool) Health(ctx context.Context) *PoolHealth {
	queueDepth, errQ := p.client.PendingAction.Query().
		Where(
			pendingaction.StatusEQ(pendingaction.StatusApproved),
			pendingaction.DispatchEpochIsNil(),
		).
		Count(ctx)
	if errQ != nil {
		slog.Error("Failed to query queue depth for health check", "error", errQ)
	}

	reconcile, errR := p.client.PendingAction.Query().
		Where(pendingaction.NeedsReconciliation(true)).
		Count(ctx)
	if errR != nil {
		slog.Error("Failed to query reconciliation backlog for health check", "error", errR)
	}

	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == WorkerStatusWorking {
			activeWorkers++
		}
	}

	dbHealthy := errQ == nil && errR == nil
	var dbError string
	if errQ != nil {
		dbError = fmt.Sprintf("queue depth query failed: %v", errQ)
	} else if errR != nil {
		dbError = fmt.Sprintf("reconciliation query failed: %v", errR)
	}

	return &PoolHealth{
		IsHealthy:     len(p.workers) > 0 && dbHealthy,
		DBReachable:   dbHealthy,
		DBError:       dbError,
		DispatchEpoch: p.epoch,
		ActiveWorkers: activeWorkers,
		TotalWorkers:  len(p.workers),
		QueueDepth:    queueDepth,
		Reconcile:     reconcile,
		WorkerStats:   workerStats,
	}
}
