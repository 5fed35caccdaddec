package freeagentservice

import (
	"log/slog"

	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"

	freeagentdb "github.com/Harbour-City-League/roster-bot/app/modules/freeagent/infrastructure/repositories"
	guildconfigdb "github.com/Harbour-City-League/roster-bot/app/modules/guildconfig/infrastructure/repositories"
	"github.com/Harbour-City-League/roster-bot/app/observability"
	"github.com/Harbour-City-League/roster-bot/app/platform"
	freeagentevents "github.com/Harbour-City-League/roster-bot/app/shared/events/freeagent"
	"github.com/Harbour-City-League/roster-bot/app/shared/telemetry"
)

// BrowseCap is the display limit for one browse page.
const BrowseCap = 20

// FreeAgentService implements the Service interface. The guild config
// supplies the optional free-agent role; the platform grants and revokes
// it alongside the stored listing.
type FreeAgentService struct {
	repo      freeagentdb.Repository
	configs   guildconfigdb.Repository
	directory platform.Directory
	roles     platform.RoleManager
	db        *bun.DB
	deps      telemetry.Deps
}

// NewFreeAgentService creates a new FreeAgentService.
func NewFreeAgentService(
	repo freeagentdb.Repository,
	configs guildconfigdb.Repository,
	directory platform.Directory,
	roles platform.RoleManager,
	logger *slog.Logger,
	metrics observability.Metrics,
	tracer trace.Tracer,
	db *bun.DB,
) *FreeAgentService {
	if logger == nil {
		logger = slog.Default()
	}
	return &FreeAgentService{
		repo:      repo,
		configs:   configs,
		directory: directory,
		roles:     roles,
		db:        db,
		deps: telemetry.Deps{
			Logger:  logger,
			Metrics: metrics,
			Tracer:  tracer,
			Service: "FreeAgentService",
		},
	}
}

// toView converts the DB model to the wire representation.
func toView(listing *freeagentdb.FreeAgentListing) freeagentevents.ListingView {
	return freeagentevents.ListingView{
		UserID:      listing.UserID,
		Region:      listing.Region,
		Position:    listing.Position,
		Description: listing.Description,
		CreatedAt:   listing.CreatedAt,
	}
}
