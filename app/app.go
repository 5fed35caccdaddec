// Package app assembles the backend: storage, event bus, platform gateway
// and every module, wired onto one watermill router.
package app

import (
	"context"
	"fmt"
	"sync"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	nc "github.com/nats-io/nats.go"
	"github.com/uptrace/bun"

	"github.com/Harbour-City-League/roster-bot/app/eventbus"
	"github.com/Harbour-City-League/roster-bot/app/modules/freeagent"
	"github.com/Harbour-City-League/roster-bot/app/modules/guildconfig"
	"github.com/Harbour-City-League/roster-bot/app/modules/roster"
	"github.com/Harbour-City-League/roster-bot/app/modules/team"
	"github.com/Harbour-City-League/roster-bot/app/modules/transfer"
	"github.com/Harbour-City-League/roster-bot/app/observability"
	"github.com/Harbour-City-League/roster-bot/app/platform/natsgateway"
	"github.com/Harbour-City-League/roster-bot/config"
	"github.com/Harbour-City-League/roster-bot/db/bundb"
)

// App holds the wired application.
type App struct {
	Config        *config.Config
	Observability *observability.Observability
	EventBus      eventbus.EventBus
	Router        *message.Router

	GuildConfigModule *guildconfig.Module
	TeamModule        *team.Module
	FreeAgentModule   *freeagent.Module
	RosterModule      *roster.Module
	TransferModule    *transfer.Module

	db       *bun.DB
	natsConn *nc.Conn
}

// Initialize sets up every dependency and wires the modules. Module order
// matters only for wiring: guildconfig and freeagent expose repositories
// and services the later modules consume.
func (app *App) Initialize(ctx context.Context, cfg *config.Config, obs *observability.Observability) error {
	app.Config = cfg
	app.Observability = obs
	logger := obs.Logger

	db, err := bundb.NewDB(ctx, cfg.Postgres.DSN)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	conn, err := nc.Connect(cfg.NATS.URL,
		nc.RetryOnFailedConnect(true),
		nc.MaxReconnects(-1),
	)
	if err != nil {
		return fmt.Errorf("failed to connect to NATS: %w", err)
	}
	app.natsConn = conn

	bus, err := eventbus.NewEventBus(ctx, cfg.NATS.URL, logger)
	if err != nil {
		return fmt.Errorf("failed to create event bus: %w", err)
	}
	app.EventBus = bus

	if err := eventbus.EnsureAllStreams(ctx, bus); err != nil {
		return fmt.Errorf("failed to ensure streams: %w", err)
	}

	router, err := message.NewRouter(message.RouterConfig{}, watermill.NewSlogLogger(logger))
	if err != nil {
		return fmt.Errorf("failed to create router: %w", err)
	}
	router.AddMiddleware(middleware.CorrelationID, middleware.Recoverer)
	app.Router = router

	gateway := natsgateway.New(conn, logger,
		cfg.Gateway.RequestTimeout, cfg.Gateway.DMRatePerSecond, cfg.Gateway.DMBurst)

	guildConfigModule, err := guildconfig.NewModule(ctx, obs, bus, router, db)
	if err != nil {
		return fmt.Errorf("failed to initialize guildconfig module: %w", err)
	}
	app.GuildConfigModule = guildConfigModule

	freeAgentModule, err := freeagent.NewModule(ctx, obs, bus, router, db,
		guildConfigModule.Repo, gateway)
	if err != nil {
		return fmt.Errorf("failed to initialize freeagent module: %w", err)
	}
	app.FreeAgentModule = freeAgentModule

	teamModule, err := team.NewModule(ctx, obs, bus, router, db,
		freeAgentModule.Repo, gateway)
	if err != nil {
		return fmt.Errorf("failed to initialize team module: %w", err)
	}
	app.TeamModule = teamModule

	rosterModule, err := roster.NewModule(ctx, obs, bus, router, db,
		guildConfigModule.Repo, teamModule.Repo, freeAgentModule.Service, gateway)
	if err != nil {
		return fmt.Errorf("failed to initialize roster module: %w", err)
	}
	app.RosterModule = rosterModule

	transferModule, err := transfer.NewModule(ctx, obs, bus, router, db,
		guildConfigModule.Repo, teamModule.Repo, rosterModule.Service, freeAgentModule.Service,
		gateway, cfg.Transfer.OfferTTL, cfg.Transfer.SweepInterval)
	if err != nil {
		return fmt.Errorf("failed to initialize transfer module: %w", err)
	}
	app.TransferModule = transferModule

	return nil
}

// Run starts the metrics endpoint, the module loops and the router, then
// blocks until the context is canceled or the router stops.
func (app *App) Run(ctx context.Context) error {
	logger := app.Observability.Logger

	go func() {
		if err := app.Observability.ServeHTTP(); err != nil {
			logger.ErrorContext(ctx, "Metrics server stopped", "error", err)
		}
	}()

	var wg sync.WaitGroup
	wg.Add(5)
	go app.GuildConfigModule.Run(ctx, &wg)
	go app.TeamModule.Run(ctx, &wg)
	go app.FreeAgentModule.Run(ctx, &wg)
	go app.RosterModule.Run(ctx, &wg)
	go app.TransferModule.Run(ctx, &wg)

	logger.InfoContext(ctx, "Starting router")
	err := app.Router.Run(ctx)
	wg.Wait()
	return err
}

// Close releases every resource in reverse wiring order.
func (app *App) Close(ctx context.Context) error {
	var firstErr error
	record := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	for _, module := range []interface{ Close() error }{
		app.TransferModule, app.RosterModule, app.FreeAgentModule,
		app.TeamModule, app.GuildConfigModule,
	} {
		if module != nil {
			record(module.Close())
		}
	}
	if app.Router != nil {
		record(app.Router.Close())
	}
	if app.EventBus != nil {
		record(app.EventBus.Close())
	}
	if app.natsConn != nil {
		app.natsConn.Close()
	}
	if app.db != nil {
		record(app.db.Close())
	}
	if app.Observability != nil {
		record(app.Observability.Shutdown(ctx))
	}
	return firstErr
}
