// Package roster assembles the membership resolver and transaction engine.
package roster

import (
	"context"
	"fmt"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/uptrace/bun"

	"github.com/Harbour-City-League/roster-bot/app/eventbus"
	freeagentservice "github.com/Harbour-City-League/roster-bot/app/modules/freeagent/application"
	guildconfigdb "github.com/Harbour-City-League/roster-bot/app/modules/guildconfig/infrastructure/repositories"
	rosterservice "github.com/Harbour-City-League/roster-bot/app/modules/roster/application"
	rosterhandlers "github.com/Harbour-City-League/roster-bot/app/modules/roster/infrastructure/handlers"
	rosterrouter "github.com/Harbour-City-League/roster-bot/app/modules/roster/infrastructure/router"
	teamdb "github.com/Harbour-City-League/roster-bot/app/modules/team/infrastructure/repositories"
	"github.com/Harbour-City-League/roster-bot/app/observability"
	"github.com/Harbour-City-League/roster-bot/app/platform"
)

// Module represents the roster module.
type Module struct {
	Service    rosterservice.Service
	obs        *observability.Observability
	cancelFunc context.CancelFunc
}

// NewModule creates and wires the roster module. It owns no storage of
// its own: membership is derived from platform roles against the team
// registry, and the free-agent service handles board cleanup on sign.
func NewModule(
	ctx context.Context,
	obs *observability.Observability,
	bus eventbus.EventBus,
	router *message.Router,
	db *bun.DB,
	configs guildconfigdb.Repository,
	teams teamdb.Repository,
	agents freeagentservice.Service,
	client platform.Client,
) (*Module, error) {
	logger := obs.Logger
	logger.InfoContext(ctx, "Initializing roster module")

	service := rosterservice.NewRosterService(configs, teams, agents, client, logger, obs.Metrics, obs.Tracer, db)
	handlers := rosterhandlers.NewRosterHandlers(service, logger, obs.Tracer)

	moduleRouter := rosterrouter.NewRosterRouter(logger, router, bus, bus, obs.Tracer)
	if err := moduleRouter.Configure(handlers); err != nil {
		return nil, fmt.Errorf("failed to configure roster router: %w", err)
	}

	return &Module{
		Service: service,
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
	m.obs.Logger.InfoContext(ctx, "Roster module stopped")
}

// Close stops the module.
func (m *Module) Close() error {
	if m.cancelFunc != nil {
		m.cancelFunc()
	}
	return nil
}
