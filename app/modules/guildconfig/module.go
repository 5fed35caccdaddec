// Package guildconfig assembles the guild configuration module.
package guildconfig

import (
	"context"
	"fmt"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/uptrace/bun"

	"github.com/Harbour-City-League/roster-bot/app/eventbus"
	guildconfigservice "github.com/Harbour-City-League/roster-bot/app/modules/guildconfig/application"
	guildconfighandlers "github.com/Harbour-City-League/roster-bot/app/modules/guildconfig/infrastructure/handlers"
	guildconfigdb "github.com/Harbour-City-League/roster-bot/app/modules/guildconfig/infrastructure/repositories"
	guildconfigrouter "github.com/Harbour-City-League/roster-bot/app/modules/guildconfig/infrastructure/router"
	"github.com/Harbour-City-League/roster-bot/app/observability"
)

// Module represents the guildconfig module.
type Module struct {
	Service    guildconfigservice.Service
	Repo       guildconfigdb.Repository
	obs        *observability.Observability
	cancelFunc context.CancelFunc
}

// NewModule creates and wires the guildconfig module.
func NewModule(
	ctx context.Context,
	obs *observability.Observability,
	bus eventbus.EventBus,
	router *message.Router,
	db *bun.DB,
) (*Module, error) {
	logger := obs.Logger
	logger.InfoContext(ctx, "Initializing guildconfig module")

	repo := guildconfigdb.NewRepository(db)
	service := guildconfigservice.NewGuildConfigService(repo, logger, obs.Metrics, obs.Tracer, db)
	handlers := guildconfighandlers.NewGuildConfigHandlers(service, logger, obs.Tracer)

	moduleRouter := guildconfigrouter.NewGuildConfigRouter(logger, router, bus, bus, obs.Tracer)
	if err := moduleRouter.Configure(handlers); err != nil {
		return nil, fmt.Errorf("failed to configure guildconfig router: %w", err)
	}

	return &Module{
		Service: service,
		Repo:    repo,
		obs:     obs,
	}, nil
}

// Run keeps the module alive until the context is canceled.
func (m *Module) Run(ctx context.Context, wg *sync.WaitGroup) {
	ctx, cancel := context.WithCancel(ctx)
	m.cancelFunc = cancel
	defer cancel()

	if wg != nil {
		defer wg.Done()
	}

	<-ctx.Done()
	m.obs.Logger.InfoContext(ctx, "Guildconfig module stopped")
}

// Close stops the module.
func (m *Module) Close() error {
	if m.cancelFunc != nil {
		m.cancelFunc()
	}
	return nil
}
