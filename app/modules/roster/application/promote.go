package rosterservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/Harbour-City-League/roster-bot/app/platform"
	"github.com/Harbour-City-League/roster-bot/app/shared/rejections"
	"github.com/Harbour-City-League/roster-bot/app/shared/results"
	"github.com/Harbour-City-League/roster-bot/app/shared/telemetry"
	sharedtypes "github.com/Harbour-City-League/roster-bot/app/shared/types"
)

// Promote grants the guild assistant role to a player on the actor's own
// team. Head managers only; assistants cannot mint other assistants.
func (s *RosterService) Promote(ctx context.Context, guildID sharedtypes.GuildID, actorID, playerID sharedtypes.UserID) (PromoteResult, error) {
	if ctx == nil {
		return PromoteResult{}, ErrNilContext
	}

	return telemetry.WithTelemetry(ctx, s.deps, "Promote", string(guildID),
		func(ctx context.Context) (PromoteResult, error) {
			return telemetry.RunInTx(ctx, s.db, func(ctx context.Context, db bun.IDB) (PromoteResult, error) {
				return s.promoteLogic(ctx, db, guildID, actorID, playerID)
			})
		})
}

func (s *RosterService) promoteLogic(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID, actorID, playerID sharedtypes.UserID) (PromoteResult, error) {
	reject := func(reason error) PromoteResult {
		return results.FailureResult[PromoteOutcome, error](reason)
	}

	config, err := s.getConfig(ctx, db, guildID)
	if err != nil {
		if errors.Is(err, rejections.ErrNotConfigured) {
			return reject(err), nil
		}
		return PromoteResult{}, err
	}

	actorRoles, err := s.client.MemberRoles(ctx, guildID, actorID)
	if err != nil {
		if errors.Is(err, platform.ErrMemberNotFound) {
			return reject(rejections.ErrMemberGone), nil
		}
		return PromoteResult{}, fmt.Errorf("failed to read actor roles: %w", err)
	}
	if !hasRole(actorRoles, config.ManagerRoleID) {
		return reject(rejections.ErrNotAuthorized), nil
	}

	teams, err := s.teams.ListTeams(ctx, db, guildID)
	if err != nil {
		return PromoteResult{}, err
	}
	team := resolveFromRoles(actorRoles, teams)
	if team == nil {
		return reject(rejections.ErrNoTeamRole), nil
	}

	playerRoles, err := s.client.MemberRoles(ctx, guildID, playerID)
	if err != nil {
		if errors.Is(err, platform.ErrMemberNotFound) {
			return reject(rejections.ErrMemberGone), nil
		}
		return PromoteResult{}, fmt.Errorf("failed to read player roles: %w", err)
	}
	if !hasRole(playerRoles, team.RoleID) {
		return reject(rejections.ErrNotOnTeam), nil
	}

	if err := s.client.GrantRole(ctx, guildID, playerID, config.AssistantRoleID); err != nil {
		return PromoteResult{}, fmt.Errorf("failed to grant assistant role: %w", err)
	}

	return results.SuccessResult[PromoteOutcome, error](PromoteOutcome{
		PlayerID:   playerID,
		TeamRole:   team.RoleID,
		Logo:       team.Logo,
		Background: team.Background,
		ChannelID:  config.AnnouncementChannelID,
	}), nil
}
