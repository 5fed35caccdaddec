package teamservice

import (
	"log/slog"

	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"

	freeagentdb "github.com/Harbour-City-League/roster-bot/app/modules/freeagent/infrastructure/repositories"
	teamdb "github.com/Harbour-City-League/roster-bot/app/modules/team/infrastructure/repositories"
	"github.com/Harbour-City-League/roster-bot/app/observability"
	"github.com/Harbour-City-League/roster-bot/app/platform"
	teamevents "github.com/Harbour-City-League/roster-bot/app/shared/events/team"
	"github.com/Harbour-City-League/roster-bot/app/shared/telemetry"
)

// DefaultRosterLimit is applied when a registration does not set a limit.
const DefaultRosterLimit = 20

// TeamService implements the Service interface. The free-agent repository
// and member directory feed the roster export and team view.
type TeamService struct {
	repo      teamdb.Repository
	agents    freeagentdb.Repository
	directory platform.Directory
	db        *bun.DB
	deps      telemetry.Deps
}

// NewTeamService creates a new TeamService.
func NewTeamService(
	repo teamdb.Repository,
	agents freeagentdb.Repository,
	directory platform.Directory,
	logger *slog.Logger,
	metrics observability.Metrics,
	tracer trace.Tracer,
	db *bun.DB,
) *TeamService {
	if logger == nil {
		logger = slog.Default()
	}
	return &TeamService{
		repo:      repo,
		agents:    agents,
		directory: directory,
		db:        db,
		deps: telemetry.Deps{
			Logger:  logger,
			Metrics: metrics,
			Tracer:  tracer,
			Service: "TeamService",
		},
	}
}

// toView converts the DB model to the wire representation.
func toView(team *teamdb.Team) teamevents.TeamView {
	view := teamevents.TeamView{
		GuildID:     team.GuildID,
		RoleID:      team.RoleID,
		Logo:        team.Logo,
		RosterLimit: team.RosterLimit,
	}
	if team.AnnouncementBackground != nil {
		view.Background = *team.AnnouncementBackground
	}
	return view
}
