package rosterservice

import (
	"context"
	"errors"
	"log/slog"

	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"

	freeagentservice "github.com/Harbour-City-League/roster-bot/app/modules/freeagent/application"
	guildconfigdb "github.com/Harbour-City-League/roster-bot/app/modules/guildconfig/infrastructure/repositories"
	teamdb "github.com/Harbour-City-League/roster-bot/app/modules/team/infrastructure/repositories"
	"github.com/Harbour-City-League/roster-bot/app/observability"
	"github.com/Harbour-City-League/roster-bot/app/platform"
	"github.com/Harbour-City-League/roster-bot/app/shared/rejections"
	"github.com/Harbour-City-League/roster-bot/app/shared/telemetry"
	sharedtypes "github.com/Harbour-City-League/roster-bot/app/shared/types"
)

// ErrNilContext guards every operation.
var ErrNilContext = errors.New("context cannot be nil")

// RosterService implements the Service interface. Every transaction reads
// the guild config and team registry fresh and resolves membership from
// live platform roles, so a role change made by hand is picked up on the
// next command.
type RosterService struct {
	configs guildconfigdb.Repository
	teams   teamdb.Repository
	agents  freeagentservice.Service
	client  platform.Client
	db      *bun.DB
	deps    telemetry.Deps
}

// NewRosterService creates a new RosterService.
func NewRosterService(
	configs guildconfigdb.Repository,
	teams teamdb.Repository,
	agents freeagentservice.Service,
	client platform.Client,
	logger *slog.Logger,
	metrics observability.Metrics,
	tracer trace.Tracer,
	db *bun.DB,
) *RosterService {
	if logger == nil {
		logger = slog.Default()
	}
	return &RosterService{
		configs: configs,
		teams:   teams,
		agents:  agents,
		client:  client,
		db:      db,
		deps: telemetry.Deps{
			Logger:  logger,
			Metrics: metrics,
			Tracer:  tracer,
			Service: "RosterService",
		},
	}
}

// getConfig maps a missing config onto the not_configured rejection.
func (s *RosterService) getConfig(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID) (*guildconfigdb.GuildConfig, error) {
	config, err := s.configs.GetConfig(ctx, db, guildID)
	if err != nil {
		if errors.Is(err, guildconfigdb.ErrNotFound) {
			return nil, rejections.ErrNotConfigured
		}
		return nil, err
	}
	return config, nil
}

func hasRole(roles []sharedtypes.RoleID, role sharedtypes.RoleID) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

// isLeadership reports whether the role set carries transaction authority.
func isLeadership(roles []sharedtypes.RoleID, config *guildconfigdb.GuildConfig) bool {
	return hasRole(roles, config.ManagerRoleID) || hasRole(roles, config.AssistantRoleID)
}
