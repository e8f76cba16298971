package events

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/butlerhq/butlerd/pkg/kvstore"
)

// SendFunc delivers one out-of-band message to the owner. The notifier only
// ever targets the owner, so the send path bypasses the approval gate —
// owner-directed sends are auto-approved by definition, and gating the
// notifier on itself would cycle.
type SendFunc func(ctx context.Context, message string) error

// Notifier delivers out-of-band owner notifications: new pending approvals
// (batched to limit friction), unknown-sender first contact (once per channel
// identifier), and scheduled-task failure summaries.
type Notifier struct {
	send  SendFunc
	kv    *kvstore.Store
	flush time.Duration

	mu      sync.Mutex
	pending []string
	stopCh  chan struct{}
	stopped sync.Once
	wg      sync.WaitGroup
}

// NewNotifier creates a Notifier. flush is the pending-approval batching
// window.
func NewNotifier(send SendFunc, kv *kvstore.Store, flush time.Duration) *Notifier {
	return &Notifier{
		send:   send,
		kv:     kv,
		flush:  flush,
		stopCh: make(chan struct{}),
	}
}

// Start begins the batch flush loop.
func (n *Notifier) Start(ctx context.Context) {
	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		ticker := time.NewTicker(n.flush)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				n.flushPending(ctx)
			case <-n.stopCh:
				// Final flush so queued notifications are not lost on shutdown.
				n.flushPending(ctx)
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop flushes and stops the loop.
func (n *Notifier) Stop() {
	n.stopped.Do(func() { close(n.stopCh) })
	n.wg.Wait()
}

// PendingApproval queues a pending-approval notice for the next batch flush.
func (n *Notifier) PendingApproval(actionID, toolName, summary string) {
	line := fmt.Sprintf("- %s (%s)", toolName, actionID)
	if summary != "" {
		line += ": " + summary
	}
	n.mu.Lock()
	n.pending = append(n.pending, line)
	n.mu.Unlock()
}

func (n *Notifier) flushPending(ctx context.Context) {
	n.mu.Lock()
	batch := n.pending
	n.pending = nil
	n.mu.Unlock()

	if len(batch) == 0 {
		return
	}

	msg := fmt.Sprintf("%d action(s) awaiting your approval:\n%s",
		len(batch), strings.Join(batch, "\n"))
	if err := n.send(ctx, msg); err != nil {
		slog.Warn("Failed to deliver pending-approval notification",
			"count", len(batch), "error", err)
		// Re-queue for the next flush rather than dropping.
		n.mu.Lock()
		n.pending = append(batch, n.pending...)
		n.mu.Unlock()
	}
}

// UnknownSenderKey is the one-shot KV flag for first-contact notifications.
func UnknownSenderKey(channelType, channelValue string) string {
	return fmt.Sprintf("identity:unknown_notified:%s:%s", channelType, channelValue)
}

// UnknownSender notifies the owner about a first contact from an unknown
// channel identity. Exactly one notification per (type, value) across the
// butler's lifetime, guarded by a KV flag.
func (n *Notifier) UnknownSender(ctx context.Context, channelType, channelValue, contactID string) error {
	created, err := n.kv.SetIfAbsent(ctx, UnknownSenderKey(channelType, channelValue), map[string]interface{}{
		"contact_id":  contactID,
		"notified_at": time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("failed to set unknown-sender flag: %w", err)
	}
	if !created {
		return nil
	}

	msg := fmt.Sprintf(
		"Unknown sender reached out via %s (%s). A temporary contact (%s) was created; messages are handled with reduced trust until you identify them.",
		channelType, channelValue, contactID)
	if err := n.send(ctx, msg); err != nil {
		return fmt.Errorf("failed to deliver unknown-sender notification: %w", err)
	}
	return nil
}

// TaskFailure notifies the owner that a scheduled task's worker run failed.
func (n *Notifier) TaskFailure(ctx context.Context, taskName, errMsg string) {
	msg := fmt.Sprintf("Scheduled task %q failed: %s", taskName, errMsg)
	if err := n.send(ctx, msg); err != nil {
		slog.Warn("Failed to deliver task-failure notification",
			"task", taskName, "error", err)
	}
}
