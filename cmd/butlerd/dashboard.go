package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/butlerhq/butlerd/pkg/api"
	"github.com/butlerhq/butlerd/pkg/approval"
	"github.com/butlerhq/butlerd/pkg/database"
	"github.com/butlerhq/butlerd/pkg/events"
	"github.com/butlerhq/butlerd/pkg/scheduler"
	"github.com/butlerhq/butlerd/pkg/services"
	"github.com/butlerhq/butlerd/pkg/version"
)

// cmdDashboard serves the read API detached from a butler process. Decisions
// made here land in the same tables the daemon polls, so an approved action
// executes on whichever daemon claims it.
func cmdDashboard(args []string) error {
	fs := flag.NewFlagSet("dashboard", flag.ExitOnError)
	host := fs.String("host", getEnv("BUTLERD_HOST", ""), "bind host")
	port := fs.String("port", getEnv("BUTLERD_PORT", "40200"), "bind port")
	butler := fs.String("butler", getEnv("BUTLER_NAME", "butler"), "butler name this database belongs to")
	tzName := fs.String("tz", getEnv("BUTLERD_TZ", "UTC"), "timezone for schedule computations")
	_ = fs.Parse(args)

	if os.Getenv("DATABASE_URL") == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	loc, err := time.LoadLocation(*tzName)
	if err != nil {
		return fmt.Errorf("invalid timezone %q: %w", *tzName, err)
	}

	ctx := context.Background()
	dbCfg, err := database.LoadConfigFromEnv()
	if err != nil {
		return err
	}
	db, err := database.NewClient(ctx, dbCfg)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	publisher := events.NewPublisher(db.DB())
	server, err := api.NewServer(&api.Backend{
		Name:      *butler,
		Queries:   services.NewApprovalQueryService(db.Client),
		Sessions:  services.NewSessionService(db.Client),
		Decisions: approval.NewService(db.Client, publisher),
		Tasks:     scheduler.NewService(db.Client, loc),
		Ping: func(ctx context.Context) error {
			return db.DB().PingContext(ctx)
		},
	})
	if err != nil {
		return err
	}

	// Tail the daemon's NOTIFY channels so an operator watching the
	// dashboard logs sees approval and session activity as it happens.
	listener := events.NewListener(dbCfg.DSN(),
		[]string{events.ApprovalsChannel, events.SessionsChannel},
		func(channel, payload string) {
			slog.Info("Event", "channel", channel, "payload", payload)
		})
	if err := listener.Start(ctx); err != nil {
		slog.Warn("Event listener unavailable, continuing without live tail", "error", err)
	} else {
		defer listener.Stop(ctx)
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.Start(*host + ":" + *port); err != nil {
			errCh <- err
		}
	}()
	slog.Info("Dashboard API started",
		"version", version.Full(), "butler", *butler, "addr", *host+":"+*port)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
