package transferservice

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"

	freeagentservice "github.com/Harbour-City-League/roster-bot/app/modules/freeagent/application"
	guildconfigdb "github.com/Harbour-City-League/roster-bot/app/modules/guildconfig/infrastructure/repositories"
	rosterservice "github.com/Harbour-City-League/roster-bot/app/modules/roster/application"
	teamdb "github.com/Harbour-City-League/roster-bot/app/modules/team/infrastructure/repositories"
	transferboard "github.com/Harbour-City-League/roster-bot/app/modules/transfer/infrastructure/board"
	"github.com/Harbour-City-League/roster-bot/app/observability"
	"github.com/Harbour-City-League/roster-bot/app/platform"
	"github.com/Harbour-City-League/roster-bot/app/shared/rejections"
	"github.com/Harbour-City-League/roster-bot/app/shared/telemetry"
	sharedtypes "github.com/Harbour-City-League/roster-bot/app/shared/types"
)

// TransferService implements the Service interface. It negotiates on top
// of the roster module's derived membership and keeps pending offers on
// the in-memory board.
type TransferService struct {
	configs  guildconfigdb.Repository
	teams    teamdb.Repository
	roster   rosterservice.Service
	agents   freeagentservice.Service
	client   platform.Client
	board    *transferboard.Board
	offerTTL time.Duration
	db       *bun.DB
	deps     telemetry.Deps
	now      func() time.Time
}

// NewTransferService creates a new TransferService.
func NewTransferService(
	configs guildconfigdb.Repository,
	teams teamdb.Repository,
	roster rosterservice.Service,
	agents freeagentservice.Service,
	client platform.Client,
	board *transferboard.Board,
	offerTTL time.Duration,
	logger *slog.Logger,
	metrics observability.Metrics,
	tracer trace.Tracer,
	db *bun.DB,
) *TransferService {
	if logger == nil {
		logger = slog.Default()
	}
	return &TransferService{
		configs:  configs,
		teams:    teams,
		roster:   roster,
		agents:   agents,
		client:   client,
		board:    board,
		offerTTL: offerTTL,
		db:       db,
		deps: telemetry.Deps{
			Logger:  logger,
			Metrics: metrics,
			Tracer:  tracer,
			Service: "TransferService",
		},
		now: time.Now,
	}
}

// SweepExpired prunes terminal and expired offers from the board.
func (s *TransferService) SweepExpired(now time.Time) int {
	return s.board.Sweep(now)
}

func (s *TransferService) getConfig(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID) (*guildconfigdb.GuildConfig, error) {
	config, err := s.configs.GetConfig(ctx, db, guildID)
	if err != nil {
		if errors.Is(err, guildconfigdb.ErrNotFound) {
			return nil, rejections.ErrNotConfigured
		}
		return nil, err
	}
	return config, nil
}
