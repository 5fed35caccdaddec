// Package team assembles the team registry module.
package team

import (
	"context"
	"fmt"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/uptrace/bun"

	"github.com/Harbour-City-League/roster-bot/app/eventbus"
	freeagentdb "github.com/Harbour-City-League/roster-bot/app/modules/freeagent/infrastructure/repositories"
	teamservice "github.com/Harbour-City-League/roster-bot/app/modules/team/application"
	teamhandlers "github.com/Harbour-City-League/roster-bot/app/modules/team/infrastructure/handlers"
	teamdb "github.com/Harbour-City-League/roster-bot/app/modules/team/infrastructure/repositories"
	teamrouter "github.com/Harbour-City-League/roster-bot/app/modules/team/infrastructure/router"
	"github.com/Harbour-City-League/roster-bot/app/observability"
	"github.com/Harbour-City-League/roster-bot/app/platform"
)

// Module represents the team module.
type Module struct {
	Service    teamservice.Service
	Repo       teamdb.Repository
	obs        *observability.Observability
	cancelFunc context.CancelFunc
}

// NewModule creates and wires the team module. The free-agent repository
// feeds the roster export; the directory resolves live membership.
func NewModule(
	ctx context.Context,
	obs *observability.Observability,
	bus eventbus.EventBus,
	router *message.Router,
	db *bun.DB,
	agents freeagentdb.Repository,
	directory platform.Directory,
) (*Module, error) {
	logger := obs.Logger
	logger.InfoContext(ctx, "Initializing team module")

	repo := teamdb.NewRepository(db)
	service := teamservice.NewTeamService(repo, agents, directory, logger, obs.Metrics, obs.Tracer, db)
	handlers := teamhandlers.NewTeamHandlers(service, logger, obs.Tracer)

	moduleRouter := teamrouter.NewTeamRouter(logger, router, bus, bus, obs.Tracer)
	if err := moduleRouter.Configure(handlers); err != nil {
		return nil, fmt.Errorf("failed to configure team router: %w", err)
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
	m.obs.Logger.InfoContext(ctx, "Team module stopped")
}

// Close stops the module.
func (m *Module) Close() error {
	if m.cancelFunc != nil {
		m.cancelFunc()
	}
	return nil
}
