// Package transfer assembles the transfer negotiation module.
package transfer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/uptrace/bun"

	"github.com/Harbour-City-League/roster-bot/app/eventbus"
	freeagentservice "github.com/Harbour-City-League/roster-bot/app/modules/freeagent/application"
	guildconfigdb "github.com/Harbour-City-League/roster-bot/app/modules/guildconfig/infrastructure/repositories"
	rosterservice "github.com/Harbour-City-League/roster-bot/app/modules/roster/application"
	teamdb "github.com/Harbour-City-League/roster-bot/app/modules/team/infrastructure/repositories"
	transferservice "github.com/Harbour-City-League/roster-bot/app/modules/transfer/application"
	transferboard "github.com/Harbour-City-League/roster-bot/app/modules/transfer/infrastructure/board"
	transferhandlers "github.com/Harbour-City-League/roster-bot/app/modules/transfer/infrastructure/handlers"
	transferrouter "github.com/Harbour-City-League/roster-bot/app/modules/transfer/infrastructure/router"
	"github.com/Harbour-City-League/roster-bot/app/observability"
	"github.com/Harbour-City-League/roster-bot/app/platform"
	"github.com/Harbour-City-League/roster-bot/app/shared/attr"
)

// Module represents the transfer module.
type Module struct {
	Service       transferservice.Service
	Board         *transferboard.Board
	obs           *observability.Observability
	sweepInterval time.Duration
	cancelFunc    context.CancelFunc
}

// NewModule creates and wires the transfer module.
func NewModule(
	ctx context.Context,
	obs *observability.Observability,
	bus eventbus.EventBus,
	router *message.Router,
	db *bun.DB,
	configs guildconfigdb.Repository,
	teams teamdb.Repository,
	rosterSvc rosterservice.Service,
	agents freeagentservice.Service,
	client platform.Client,
	offerTTL time.Duration,
	sweepInterval time.Duration,
) (*Module, error) {
	logger := obs.Logger
	logger.InfoContext(ctx, "Initializing transfer module")

	board := transferboard.New()
	service := transferservice.NewTransferService(configs, teams, rosterSvc, agents, client, board,
		offerTTL, logger, obs.Metrics, obs.Tracer, db)
	handlers := transferhandlers.NewTransferHandlers(service, logger, obs.Tracer)

	moduleRouter := transferrouter.NewTransferRouter(logger, router, bus, bus, obs.Tracer)
	if err := moduleRouter.Configure(handlers); err != nil {
		return nil, fmt.Errorf("failed to configure transfer router: %w", err)
	}

	return &Module{
		Service:       service,
		Board:         board,
		obs:           obs,
		sweepInterval: sweepInterval,
	}, nil
}

// Run prunes expired and resolved offers until the context is canceled.
// Expiry itself is observed lazily on access; the sweep only reclaims
// memory and is silent.
func (m *Module) Run(ctx context.Context, wg *sync.WaitGroup) {
	ctx, cancel := context.WithCancel(ctx)
	m.cancelFunc = cancel
	defer cancel()

	if wg != nil {
		defer wg.Done()
	}

	ticker := time.NewTicker(m.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			m.obs.Logger.InfoContext(ctx, "Transfer module stopped")
			return
		case now := <-ticker.C:
			if dropped := m.Service.SweepExpired(now); dropped > 0 {
				m.obs.Logger.InfoContext(ctx, "Swept transfer offers",
					attr.Int("dropped", dropped))
			}
		}
	}
}

// Close stops the module.
func (m *Module) Close() error {
	if m.cancelFunc != nil {
		m.cancelFunc()
	}
	return nil
}
