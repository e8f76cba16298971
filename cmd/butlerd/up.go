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
	"github.com/butlerhq/butlerd/pkg/config"
	"github.com/butlerhq/butlerd/pkg/database"
	"github.com/butlerhq/butlerd/pkg/events"
	"github.com/butlerhq/butlerd/pkg/identity"
	"github.com/butlerhq/butlerd/pkg/kvstore"
	"github.com/butlerhq/butlerd/pkg/masking"
	"github.com/butlerhq/butlerd/pkg/mcp"
	"github.com/butlerhq/butlerd/pkg/modules"
	"github.com/butlerhq/butlerd/pkg/queue"
	"github.com/butlerhq/butlerd/pkg/scheduler"
	"github.com/butlerhq/butlerd/pkg/services"
	"github.com/butlerhq/butlerd/pkg/switchboard"
	"github.com/butlerhq/butlerd/pkg/version"
	"github.com/butlerhq/butlerd/pkg/worker"
)

// runtime bundles one butler's wired components.
type runtime struct {
	cfg *config.ButlerConfig
	db  *database.Client

	masker     *masking.Service
	resolver   *identity.Resolver
	kv         *kvstore.Store
	publisher  *events.Publisher
	notifier   *events.Notifier
	registry   *mcp.Registry
	gate       *approval.Gate
	decisions  *approval.Service
	executor   *approval.Executor
	pool       *queue.WorkerPool
	dispatcher *mcp.Dispatcher
	tasks      *scheduler.Service
	sched      *scheduler.Scheduler
	spawner    *worker.Spawner
	board      *switchboard.Switchboard
	loader     *modules.Loader
	admin      *modules.AdminModule
}

// targetArgs are the argument names that identify a message recipient. Rules
// derived from a parked send pin these to exact values.
var targetArgs = []string{"to", "recipient", "chat_id", "contact_id", "channel"}

// buildRuntime wires one butler's components over an open database client.
// Modules are loaded last so every tool lands in a fully wired registry.
func buildRuntime(ctx context.Context, cfg *config.ButlerConfig, db *database.Client, transport modules.Transport) (*runtime, error) {
	rt := &runtime{cfg: cfg, db: db}

	rt.masker = masking.NewService(nil)
	rt.resolver = identity.NewResolver(db.Client)
	rt.kv = kvstore.NewStore(db.Client)
	rt.publisher = events.NewPublisher(db.DB())
	rt.notifier = events.NewNotifier(ownerSend(rt.resolver, transport), rt.kv, cfg.Queue.NotifyFlushInterval())

	rt.registry = mcp.NewRegistry()
	rt.gate = approval.NewGate(db.Client, cfg.Modules.Approvals, rt.resolver, rt.registry, rt.masker, rt.publisher, rt.notifier)
	rt.decisions = approval.NewService(db.Client, rt.publisher)
	rt.executor = approval.NewExecutor(db.Client, rt.registry, rt.masker)
	rt.pool = queue.NewWorkerPool(db.Client, &cfg.Queue, rt.executor, rt.publisher)
	rt.dispatcher = mcp.NewDispatcher(rt.registry, rt.gate)

	rt.tasks = scheduler.NewService(db.Client, cfg.Location())
	rt.admin = modules.NewAdminModule(rt.tasks, rt.kv)
	rt.loader = modules.NewLoader(db.Client, db.DB(), rt.registry, cfg)

	rt.spawner = worker.NewSpawner(
		db.Client, &cfg.Worker, rt.registry, rt.dispatcher, rt.resolver,
		rt.masker, rt.publisher, rt.admin, rt.loader.CredentialsEnv, cfg.Name,
	)
	rt.sched = scheduler.New(db.Client, cfg.Modules.Scheduler, cfg.Location(), rt.spawner, rt.notifier, rt.decisions.ExpireStale)
	rt.board = switchboard.New(db.Client, rt.resolver, &cfg.Routing, cfg.Name, rt.notifier, rt.spawner)

	mods := []modules.Module{
		modules.NewMessagingModule(transport),
		rt.admin,
	}
	if err := rt.loader.Load(ctx, mods); err != nil {
		return nil, fmt.Errorf("failed to load modules: %w", err)
	}

	// Recipient args on outbound sends pin to exact values when a rule is
	// derived from a parked action.
	for _, tool := range []string{"user_telegram_send", "user_telegram_reply", "bot_telegram_send", "bot_email_send"} {
		rt.gate.DeclareSensitiveArgs(tool, targetArgs)
		rt.decisions.DeclareSensitiveArgs(tool, targetArgs)
	}

	return rt, nil
}

// ownerSend builds the notifier's delivery function: resolve the owner's
// first registered channel and send through the module transport. Owner
// notifications never pass the approval gate.
func ownerSend(resolver *identity.Resolver, transport modules.Transport) events.SendFunc {
	return func(ctx context.Context, message string) error {
		owner, err := resolver.Owner(ctx)
		if err != nil {
			return fmt.Errorf("failed to resolve owner for notification: %w", err)
		}
		channels, err := resolver.Channels(ctx, owner.ID, false)
		if err != nil {
			return fmt.Errorf("failed to load owner channels: %w", err)
		}
		if len(channels) == 0 || transport == nil {
			slog.Info("Owner notification (no deliverable channel)", "message", message)
			return nil
		}
		ch := channels[0]
		_, err = transport.Send(ctx, ch.ChannelType, ch.ChannelValue, message)
		return err
	}
}

func cmdUp(args []string) error {
	fs := flag.NewFlagSet("up", flag.ExitOnError)
	configPath := fs.String("config", getEnv("BUTLERD_CONFIG", defaultConfigPath), "path to the butler TOML config")
	host := fs.String("host", getEnv("BUTLERD_HOST", ""), "API bind host")
	port := fs.String("port", getEnv("BUTLERD_PORT", "40200"), "API bind port")
	_ = fs.Parse(args)

	ctx := context.Background()

	cfg, err := config.Initialize(ctx, *configPath)
	if err != nil {
		return err
	}

	dbCfg, err := database.LoadConfigFromEnv()
	if err != nil {
		return err
	}
	db, err := database.NewClient(ctx, dbCfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL", "butler", cfg.Name)

	rt, err := buildRuntime(ctx, cfg, db, newLogTransport())
	if err != nil {
		return err
	}

	rt.notifier.Start(ctx)
	if err := rt.pool.Start(ctx); err != nil {
		return fmt.Errorf("failed to start executor pool: %w", err)
	}
	if err := rt.sched.Start(ctx); err != nil {
		return fmt.Errorf("failed to start scheduler: %w", err)
	}

	server, err := api.NewServer(&api.Backend{
		Name:      cfg.Name,
		Queries:   services.NewApprovalQueryService(db.Client),
		Sessions:  services.NewSessionService(db.Client),
		Decisions: rt.decisions,
		Tasks:     rt.tasks,
		Pool:      rt.pool,
		Ping: func(ctx context.Context) error {
			return db.DB().PingContext(ctx)
		},
	})
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.Start(*host + ":" + *port); err != nil {
			errCh <- err
		}
	}()

	slog.Info("Butler daemon started",
		"version", version.Full(),
		"butler", cfg.Name,
		"workers", cfg.Queue.WorkerCount,
		"addr", *host+":"+*port)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("API server error triggered shutdown", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout())
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Warn("API server shutdown failed", "error", err)
	}
	rt.sched.Stop()

	// The pool drains its in-flight actions; bound the wait.
	poolDone := make(chan struct{})
	go func() {
		rt.pool.Stop()
		close(poolDone)
	}()
	select {
	case <-poolDone:
		slog.Info("Executor pool stopped")
	case <-shutdownCtx.Done():
		slog.Warn("Executor pool shutdown timeout exceeded")
	}

	rt.notifier.Stop()
	rt.loader.Shutdown(ctx)
	slog.Info("Butler daemon stopped", "butler", cfg.Name)
	return nil
}

// logTransport is the default transport when no connector is deployed:
// sends are logged instead of delivered. Real deployments supply a Telegram
// or SMTP connector via the module settings.
type logTransport struct{}

func newLogTransport() modules.Transport { return logTransport{} }

func (logTransport) Send(_ context.Context, channelType, recipient, body string) (string, error) {
	slog.Info("Outbound message (log transport)",
		"channel_type", channelType, "recipient", recipient, "body_len", len(body))
	return fmt.Sprintf("log-%d", time.Now().UnixNano()), nil
}

func (logTransport) Fetch(_ context.Context, channelType string, _ int) ([]map[string]interface{}, error) {
	slog.Debug("Fetch on log transport always returns empty", "channel_type", channelType)
	return nil, nil
}
