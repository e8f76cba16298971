// Package queue runs the executor pool: a bounded set of workers that claim
// approved actions and run them exactly once. Claims are scoped to a
// per-boot dispatch epoch so a crash between claim and execution is visible
// at the next boot instead of being silently retried.
package queue

import (
	"errors"
	"time"
)

// ErrNoActionsAvailable signals an empty claim poll.
var ErrNoActionsAvailable = errors.New("no approved actions available")

// WorkerStatus is the current state of one pool worker.
type WorkerStatus string

const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// WorkerHealth is one worker's health snapshot.
type WorkerHealth struct {
	ID               string       `json:"id"`
	Status           WorkerStatus `json:"status"`
	CurrentActionID  string       `json:"current_action_id,omitempty"`
	ActionsProcessed int          `json:"actions_processed"`
	LastActivity     time.Time    `json:"last_activity"`
}

// PoolHealth is the pool-level health snapshot served by the dashboard.
type PoolHealth struct {
	IsHealthy     bool           `json:"is_healthy"`
	DBReachable   bool           `json:"db_reachable"`
	DBError       string         `json:"db_error,omitempty"`
	DispatchEpoch string         `json:"dispatch_epoch"`
	ActiveWorkers int            `json:"active_workers"`
	TotalWorkers  int            `json:"total_workers"`
	QueueDepth    int            `json:"queue_depth"`
	Reconcile     int            `json:"needs_reconciliation"`
	WorkerStats   []WorkerHealth `json:"worker_stats"`
}
