// Package teamevents defines topics and payloads for the team registry.
package teamevents

import (
	sharedtypes "github.com/Harbour-City-League/roster-bot/app/shared/types"
)

const (
	TeamRegisterRequestedV1 = "team.register.requested.v1"
	TeamRegisteredV1        = "team.registered.v1"
	TeamRegisterFailedV1    = "team.register.failed.v1"

	TeamDeleteRequestedV1 = "team.delete.requested.v1"
	TeamDeletedV1         = "team.deleted.v1"
	TeamDeleteFailedV1    = "team.delete.failed.v1"

	TeamBackgroundSetRequestedV1 = "team.background.set.requested.v1"
	TeamBackgroundSetV1          = "team.background.set.v1"
	TeamBackgroundSetFailedV1    = "team.background.set.failed.v1"

	TeamListRequestedV1 = "team.list.requested.v1"
	TeamListedV1        = "team.listed.v1"
	TeamListFailedV1    = "team.list.failed.v1"

	TeamViewRequestedV1 = "team.view.requested.v1"
	TeamViewedV1        = "team.viewed.v1"
	TeamViewFailedV1    = "team.view.failed.v1"

	RosterExportRequestedV1 = "team.roster.export.requested.v1"
	RosterExportedV1        = "team.roster.exported.v1"
	RosterExportFailedV1    = "team.roster.export.failed.v1"
)

// TeamRegisterRequestedPayloadV1 carries the admin setup_team command.
type TeamRegisterRequestedPayloadV1 struct {
	GuildID     sharedtypes.GuildID `json:"guild_id"`
	RoleID      sharedtypes.RoleID  `json:"role_id"`
	Logo        string              `json:"logo"`
	RosterLimit int                 `json:"roster_limit"`
}

// TeamView is the wire representation of one registered team.
type TeamView struct {
	GuildID     sharedtypes.GuildID `json:"guild_id"`
	RoleID      sharedtypes.RoleID  `json:"role_id"`
	Logo        string              `json:"logo"`
	RosterLimit int                 `json:"roster_limit"`
	Background  string              `json:"background,omitempty"`
}

// TeamRegisteredPayloadV1 confirms a registered team.
type TeamRegisteredPayloadV1 struct {
	GuildID sharedtypes.GuildID `json:"guild_id"`
	Team    TeamView            `json:"team"`
}

// TeamRegisterFailedPayloadV1 reports a rejected registration.
type TeamRegisterFailedPayloadV1 struct {
	GuildID sharedtypes.GuildID `json:"guild_id"`
	RoleID  sharedtypes.RoleID  `json:"role_id"`
	Reason  string              `json:"reason"`
}

// TeamDeleteRequestedPayloadV1 carries the admin team_delete command.
type TeamDeleteRequestedPayloadV1 struct {
	GuildID sharedtypes.GuildID `json:"guild_id"`
	RoleID  sharedtypes.RoleID  `json:"role_id"`
}

// TeamDeletedPayloadV1 confirms an unregistered team.
type TeamDeletedPayloadV1 struct {
	GuildID sharedtypes.GuildID `json:"guild_id"`
	RoleID  sharedtypes.RoleID  `json:"role_id"`
}

// TeamDeleteFailedPayloadV1 reports a rejected deletion.
type TeamDeleteFailedPayloadV1 struct {
	GuildID sharedtypes.GuildID `json:"guild_id"`
	RoleID  sharedtypes.RoleID  `json:"role_id"`
	Reason  string              `json:"reason"`
}

// TeamBackgroundSetRequestedPayloadV1 carries the set_embed command.
// Background "reset" clears the custom announcement background.
type TeamBackgroundSetRequestedPayloadV1 struct {
	GuildID    sharedtypes.GuildID `json:"guild_id"`
	RoleID     sharedtypes.RoleID  `json:"role_id"`
	Background string              `json:"background"`
}

// TeamBackgroundSetPayloadV1 confirms the stored background.
type TeamBackgroundSetPayloadV1 struct {
	GuildID    sharedtypes.GuildID `json:"guild_id"`
	RoleID     sharedtypes.RoleID  `json:"role_id"`
	Background string              `json:"background"`
}

// TeamBackgroundSetFailedPayloadV1 reports a rejected background change.
type TeamBackgroundSetFailedPayloadV1 struct {
	GuildID sharedtypes.GuildID `json:"guild_id"`
	RoleID  sharedtypes.RoleID  `json:"role_id"`
	Reason  string              `json:"reason"`
}

// TeamListRequestedPayloadV1 asks for every registered team.
type TeamListRequestedPayloadV1 struct {
	GuildID sharedtypes.GuildID `json:"guild_id"`
}

// TeamListedPayloadV1 returns every registered team.
type TeamListedPayloadV1 struct {
	GuildID sharedtypes.GuildID `json:"guild_id"`
	Teams   []TeamView          `json:"teams"`
}

// TeamListFailedPayloadV1 reports a failed listing.
type TeamListFailedPayloadV1 struct {
	GuildID sharedtypes.GuildID `json:"guild_id"`
	Reason  string              `json:"reason"`
}

// TeamViewRequestedPayloadV1 asks for one team with its current members.
type TeamViewRequestedPayloadV1 struct {
	GuildID sharedtypes.GuildID `json:"guild_id"`
	RoleID  sharedtypes.RoleID  `json:"role_id"`
}

// TeamViewedPayloadV1 returns a team with its resolved membership.
type TeamViewedPayloadV1 struct {
	GuildID     sharedtypes.GuildID  `json:"guild_id"`
	Team        TeamView             `json:"team"`
	Members     []sharedtypes.UserID `json:"members"`
	MemberCount int                  `json:"member_count"`
}

// TeamViewFailedPayloadV1 reports a failed view.
type TeamViewFailedPayloadV1 struct {
	GuildID sharedtypes.GuildID `json:"guild_id"`
	RoleID  sharedtypes.RoleID  `json:"role_id"`
	Reason  string              `json:"reason"`
}

// RosterExportRequestedPayloadV1 asks for the full-roster workbook.
type RosterExportRequestedPayloadV1 struct {
	GuildID sharedtypes.GuildID `json:"guild_id"`
}

// RosterExportedPayloadV1 carries the generated workbook for the gateway to
// attach. FileData is the raw xlsx bytes (base64 on the wire via JSON).
type RosterExportedPayloadV1 struct {
	GuildID  sharedtypes.GuildID `json:"guild_id"`
	FileName string              `json:"file_name"`
	FileData []byte              `json:"file_data"`
}

// RosterExportFailedPayloadV1 reports a failed export.
type RosterExportFailedPayloadV1 struct {
	GuildID sharedtypes.GuildID `json:"guild_id"`
	Reason  string              `json:"reason"`
}
