// Package app initializes and orchestrates the main components of the
// job-warden application. It wires together the configuration, the workspace
// client, the chat transport, the event loop, the scheduler and the ops
// HTTP server.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/sevigo/job-warden/internal/bot"
	"github.com/sevigo/job-warden/internal/config"
	"github.com/sevigo/job-warden/internal/core"
	"github.com/sevigo/job-warden/internal/databricks"
	"github.com/sevigo/job-warden/internal/dispatch"
	"github.com/sevigo/job-warden/internal/metrics"
	"github.com/sevigo/job-warden/internal/scheduler"
	"github.com/sevigo/job-warden/internal/server"
	"github.com/sevigo/job-warden/internal/telegram"
)

// eventQueueSize bounds the dispatch queue. Load is ten daily ticks plus
// whatever one human taps; anything deeper than this means the workspace is
// unreachable and events should be rejected, not hoarded.
const eventQueueSize = 64

// App holds the main application components.
type App struct {
	cfg       *config.Config
	logger    *slog.Logger
	transport *telegram.Transport
	loop      *dispatch.Loop
	scheduler *scheduler.Scheduler
	server    *server.Server
}

// NewApp sets up the application with all its dependencies.
func NewApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	logger.Info("initializing job-warden",
		"databricks_host", cfg.DatabricksHost,
		"operator", cfg.OperatorEmail,
		"timezone", cfg.Timezone,
		"notify_times", cfg.NotifyTimes,
	)

	sink := metrics.NewPrometheusSink(prometheus.DefaultRegisterer)

	jobsClient, err := databricks.NewClient(cfg.DatabricksHost, cfg.DatabricksToken, cfg.OperatorEmail, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create workspace client: %w", err)
	}

	transport, err := telegram.New(cfg.BotToken, cfg.ChatID, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat transport: %w", err)
	}

	warden := bot.NewWarden(jobsClient, transport, loc, logger, sink)
	loop := dispatch.NewLoop(warden, eventQueueSize, logger, sink)
	transport.Bind(loop)

	sched, err := scheduler.New(cfg.NotifyTimes, loc, loop, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	logger.Info("job-warden initialized successfully")
	return &App{
		cfg:       cfg,
		logger:    logger,
		transport: transport,
		loop:      loop,
		scheduler: sched,
		server:    server.NewServer(cfg, logger),
	}, nil
}

// Start brings the bot online: scheduled ticks, chat polling, one immediate
// startup scan, and finally the ops HTTP server, which blocks until Stop.
func (a *App) Start(ctx context.Context) error {
	a.scheduler.Start()
	go a.transport.Start()

	// First scan right away, same as every scheduled firing later.
	if err := a.loop.Enqueue(ctx, newStartupTick()); err != nil {
		a.logger.Error("failed to enqueue startup scan", "error", err)
	}

	if err := a.server.Start(); err != nil {
		a.logger.Error("failed to start HTTP server", "error", err)
		return err
	}
	return nil
}

// Stop shuts the application down cleanly: no new chat events, no new
// ticks, drain what is queued, then close the HTTP server.
func (a *App) Stop() error {
	a.logger.Info("shutting down job-warden services")

	a.transport.Stop()
	a.scheduler.Stop()
	a.loop.Stop()

	if err := a.server.Stop(); err != nil {
		a.logger.Error("error during HTTP server shutdown", "error", err)
		return err
	}

	a.logger.Info("job-warden stopped successfully")
	return nil
}

func newStartupTick() core.TickEvent {
	return core.NewTickEvent(time.Now())
}
