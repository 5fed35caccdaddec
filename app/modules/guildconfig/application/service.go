package guildconfigservice

import (
	"log/slog"

	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"

	guildconfigdb "github.com/Harbour-City-League/roster-bot/app/modules/guildconfig/infrastructure/repositories"
	"github.com/Harbour-City-League/roster-bot/app/observability"
	guildevents "github.com/Harbour-City-League/roster-bot/app/shared/events/guild"
	"github.com/Harbour-City-League/roster-bot/app/shared/telemetry"
)

// GuildConfigService implements the Service interface.
type GuildConfigService struct {
	repo guildconfigdb.Repository
	db   *bun.DB
	deps telemetry.Deps
}

// NewGuildConfigService creates a new GuildConfigService.
func NewGuildConfigService(
	repo guildconfigdb.Repository,
	logger *slog.Logger,
	metrics observability.Metrics,
	tracer trace.Tracer,
	db *bun.DB,
) *GuildConfigService {
	if logger == nil {
		logger = slog.Default()
	}
	return &GuildConfigService{
		repo: repo,
		db:   db,
		deps: telemetry.Deps{
			Logger:  logger,
			Metrics: metrics,
			Tracer:  tracer,
			Service: "GuildConfigService",
		},
	}
}

// toView converts the DB model to the wire representation.
func toView(config *guildconfigdb.GuildConfig) guildevents.GuildConfigView {
	return guildevents.GuildConfigView{
		GuildID:               config.GuildID,
		ManagerRoleID:         config.ManagerRoleID,
		AssistantRoleID:       config.AssistantRoleID,
		FreeAgentRoleID:       config.FreeAgentRoleID,
		AnnouncementChannelID: config.AnnouncementChannelID,
		TransferWindowOpen:    config.TransferWindowOpen,
	}
}
