// Package freeagent assembles the free-agent board module.
package freeagent

import (
	"context"
	"fmt"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/uptrace/bun"

	"github.com/Harbour-City-League/roster-bot/app/eventbus"
	freeagentservice "github.com/Harbour-City-League/roster-bot/app/modules/freeagent/application"
	freeagenthandlers "github.com/Harbour-City-League/roster-bot/app/modules/freeagent/infrastructure/handlers"
	freeagentdb "github.com/Harbour-City-League/roster-bot/app/modules/freeagent/infrastructure/repositories"
	freeagentrouter "github.com/Harbour-City-League/roster-bot/app/modules/freeagent/infrastructure/router"
	guildconfigdb "github.com/Harbour-City-League/roster-bot/app/modules/guildconfig/infrastructure/repositories"
	"github.com/Harbour-City-League/roster-bot/app/observability"
	"github.com/Harbour-City-League/roster-bot/app/platform"
)

// Module represents the freeagent module.
type Module struct {
	Service    freeagentservice.Service
	Repo       freeagentdb.Repository
	obs        *observability.Observability
	cancelFunc context.CancelFunc
}

// NewModule creates and wires the freeagent module. The guild-config
// repository supplies the optional free-agent role; the platform client
// grants and revokes it.
func NewModule(
	ctx context.Context,
	obs *observability.Observability,
	bus eventbus.EventBus,
	router *message.Router,
	db *bun.DB,
	configs guildconfigdb.Repository,
	client platform.Client,
) (*Module, error) {
	logger := obs.Logger
	logger.InfoContext(ctx, "Initializing freeagent module")

	repo := freeagentdb.NewRepository(db)
	service := freeagentservice.NewFreeAgentService(repo, configs, client, client, logger, obs.Metrics, obs.Tracer, db)
	handlers := freeagenthandlers.NewFreeAgentHandlers(service, logger, obs.Tracer)

	moduleRouter := freeagentrouter.NewFreeAgentRouter(logger, router, bus, bus, obs.Tracer)
	if err := moduleRouter.Configure(handlers); err != nil {
		return nil, fmt.Errorf("failed to configure freeagent router: %w", err)
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
	m.obs.Logger.InfoContext(ctx, "Freeagent module stopped")
}

// Close stops the module.
func (m *Module) Close() error {
	if m.cancelFunc != nil {
		m.cancelFunc()
	}
	return nil
}
