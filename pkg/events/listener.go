package events

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
)

// Handler receives decoded NOTIFY payloads from the listener.
type Handler func(channel, payload string)

// Listener holds a dedicated pgx connection in LISTEN mode and dispatches
// notifications to a handler. Used by the dashboard to push approval and
// session changes to clients without polling.
type Listener struct {
	connString string
	channels   []string
	handler    Handler

	conn       *pgx.Conn
	connMu     sync.Mutex
	cancelLoop context.CancelFunc
	loopDone   chan struct{}
}

// NewListener creates a Listener for the given NOTIFY channels.
func NewListener(connString string, channels []string, handler Handler) *Listener {
	return &Listener{
		connString: connString,
		channels:   channels,
		handler:    handler,
	}
}

// Start establishes the dedicated LISTEN connection and begins receiving.
func (l *Listener) Start(ctx context.Context) error {
	conn, err := pgx.Connect(ctx, l.connString)
	if err != nil {
		return fmt.Errorf("failed to connect for LISTEN: %w", err)
	}

	for _, ch := range l.channels {
		if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{ch}.Sanitize()); err != nil {
			_ = conn.Close(ctx)
			return fmt.Errorf("failed to LISTEN %s: %w", ch, err)
		}
	}

	l.connMu.Lock()
	l.conn = conn
	l.connMu.Unlock()

	loopCtx, cancel := context.WithCancel(ctx)
	l.cancelLoop = cancel
	l.loopDone = make(chan struct{})
	go func() {
		defer close(l.loopDone)
		l.receiveLoop(loopCtx)
	}()

	slog.Info("Notify listener started", "channels", l.channels)
	return nil
}

// Stop cancels the receive loop and closes the connection.
func (l *Listener) Stop(ctx context.Context) {
	if l.cancelLoop != nil {
		l.cancelLoop()
	}
	if l.loopDone != nil {
		select {
		case <-l.loopDone:
		case <-time.After(5 * time.Second):
			slog.Warn("Notify listener receive loop did not exit in time")
		}
	}

	l.connMu.Lock()
	defer l.connMu.Unlock()
	if l.conn != nil {
		_ = l.conn.Close(ctx)
		l.conn = nil
	}
}

// receiveLoop is the sole goroutine touching the pgx connection.
func (l *Listener) receiveLoop(ctx context.Context) {
	for {
		n, err := l.conn.WaitForNotification(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			slog.Warn("Notify listener receive error, reconnecting", "error", err)
			if !l.reconnect(ctx) {
				return
			}
			continue
		}
		l.handler(n.Channel, n.Payload)
	}
}

// reconnect re-establishes the LISTEN connection after a receive failure.
// Returns false when the context is done.
func (l *Listener) reconnect(ctx context.Context) bool {
	backoff := time.Second
	for {
		select {
		case <-ctx.Done():
			return false
		case <-time.After(backoff):
		}

		conn, err := pgx.Connect(ctx, l.connString)
		if err == nil {
			ok := true
			for _, ch := range l.channels {
				if _, lerr := conn.Exec(ctx, "LISTEN "+pgx.Identifier{ch}.Sanitize()); lerr != nil {
					_ = conn.Close(ctx)
					ok = false
					break
				}
			}
			if ok {
				l.connMu.Lock()
				old := l.conn
				l.conn = conn
				l.connMu.Unlock()
				if old != nil {
					_ = old.Close(ctx)
				}
				slog.Info("Notify listener reconnected")
				return true
			}
		}

		if backoff < 30*time.Second {
			backoff *= 2
		}
	}
}
