package teamservice

import (
	"context"

	teamevents "github.com/Harbour-City-League/roster-bot/app/shared/events/team"
	"github.com/Harbour-City-League/roster-bot/app/shared/results"
	sharedtypes "github.com/Harbour-City-League/roster-bot/app/shared/types"
)

// TeamDetail is one team with its membership resolved from the platform.
type TeamDetail struct {
	Team        teamevents.TeamView
	Members     []sharedtypes.UserID
	MemberCount int
}

// ExportFile is a generated roster workbook ready for the gateway to attach.
type ExportFile struct {
	FileName string
	Data     []byte
}

// Result aliases to reduce generic verbosity.
type (
	TeamResult       = results.OperationResult[teamevents.TeamView, error]
	DeleteResult     = results.OperationResult[sharedtypes.RoleID, error]
	BackgroundResult = results.OperationResult[string, error]
	ListResult       = results.OperationResult[[]teamevents.TeamView, error]
	ViewResult       = results.OperationResult[TeamDetail, error]
	ExportResult     = results.OperationResult[ExportFile, error]
)

// Service defines team registry operations.
type Service interface {
	RegisterTeam(ctx context.Context, team teamevents.TeamView) (TeamResult, error)
	DeleteTeam(ctx context.Context, guildID sharedtypes.GuildID, roleID sharedtypes.RoleID) (DeleteResult, error)
	SetAnnouncementBackground(ctx context.Context, guildID sharedtypes.GuildID, roleID sharedtypes.RoleID, background string) (BackgroundResult, error)
	ListTeams(ctx context.Context, guildID sharedtypes.GuildID) (ListResult, error)
	GetTeamView(ctx context.Context, guildID sharedtypes.GuildID, roleID sharedtypes.RoleID) (ViewResult, error)
	ExportRoster(ctx context.Context, guildID sharedtypes.GuildID) (ExportResult, error)
}
