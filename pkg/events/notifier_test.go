package events

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/butlerhq/butlerd/pkg/kvstore"
	dbtest "github.com/butlerhq/butlerd/test/database"
)

type sendRecorder struct {
	mu       sync.Mutex
	messages []string
	fail     bool
}

func (r *sendRecorder) send(_ context.Context, msg string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return errors.New("channel down")
	}
	r.messages = append(r.messages, msg)
	return nil
}

func (r *sendRecorder) all() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.messages...)
}

func TestNotifierBatchesPendingApprovals(t *testing.T) {
	rec := &sendRecorder{}
	n := NewNotifier(rec.send, nil, time.Hour)

	n.PendingApproval("a-1", "bot_email_send", "sending report")
	n.PendingApproval("a-2", "bot_telegram_send", "")

	// No flush has run yet.
	assert.Empty(t, rec.all())

	n.flushPending(context.Background())
	msgs := rec.all()
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0], "2 action(s) awaiting your approval")
	assert.Contains(t, msgs[0], "bot_email_send (a-1): sending report")
	assert.Contains(t, msgs[0], "bot_telegram_send (a-2)")

	// An empty queue flushes to nothing.
	n.flushPending(context.Background())
	assert.Len(t, rec.all(), 1)
}

func TestNotifierRequeuesOnSendFailure(t *testing.T) {
	rec := &sendRecorder{fail: true}
	n := NewNotifier(rec.send, nil, time.Hour)

	n.PendingApproval("a-1", "bot_email_send", "")
	n.flushPending(context.Background())
	assert.Empty(t, rec.all())

	// Delivery recovers; the queued notice is not lost.
	rec.mu.Lock()
	rec.fail = false
	rec.mu.Unlock()

	n.flushPending(context.Background())
	msgs := rec.all()
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0], "a-1")
}

func TestNotifierStopFlushes(t *testing.T) {
	rec := &sendRecorder{}
	n := NewNotifier(rec.send, nil, time.Hour)
	n.Start(context.Background())

	n.PendingApproval("a-1", "bot_email_send", "")
	n.Stop()

	msgs := rec.all()
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0], "a-1")
}

func TestNotifierUnknownSenderOncePerChannel(t *testing.T) {
	ctx := context.Background()
	db := dbtest.NewTestClient(t)
	kv := kvstore.NewStore(db.Client)

	rec := &sendRecorder{}
	n := NewNotifier(rec.send, kv, time.Hour)

	require.NoError(t, n.UnknownSender(ctx, "telegram", "556677", "contact-1"))
	require.Len(t, rec.all(), 1)
	assert.Contains(t, rec.all()[0], "telegram (556677)")
	assert.Contains(t, rec.all()[0], "contact-1")

	// Same identity again: the KV flag suppresses the repeat.
	require.NoError(t, n.UnknownSender(ctx, "telegram", "556677", "contact-1"))
	assert.Len(t, rec.all(), 1)

	// A different identity gets its own notification.
	require.NoError(t, n.UnknownSender(ctx, "email", "x@example.com", "contact-2"))
	assert.Len(t, rec.all(), 2)
}
