package rosterservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/Harbour-City-League/roster-bot/app/platform"
	"github.com/Harbour-City-League/roster-bot/app/shared/attr"
	"github.com/Harbour-City-League/roster-bot/app/shared/rejections"
	"github.com/Harbour-City-League/roster-bot/app/shared/results"
	"github.com/Harbour-City-League/roster-bot/app/shared/telemetry"
	sharedtypes "github.com/Harbour-City-League/roster-bot/app/shared/types"
)

// Release removes a player from the acting manager's team. The guild
// assistant role is stripped as well when the player holds it, so a
// released assistant does not keep authority over a team they left.
func (s *RosterService) Release(ctx context.Context, guildID sharedtypes.GuildID, actorID, playerID sharedtypes.UserID) (ReleaseResult, error) {
	if ctx == nil {
		return ReleaseResult{}, ErrNilContext
	}

	return telemetry.WithTelemetry(ctx, s.deps, "Release", string(guildID),
		func(ctx context.Context) (ReleaseResult, error) {
			return telemetry.RunInTx(ctx, s.db, func(ctx context.Context, db bun.IDB) (ReleaseResult, error) {
				return s.releaseLogic(ctx, db, guildID, actorID, playerID)
			})
		})
}

func (s *RosterService) releaseLogic(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID, actorID, playerID sharedtypes.UserID) (ReleaseResult, error) {
	reject := func(reason error) ReleaseResult {
		return results.FailureResult[ReleaseOutcome, error](reason)
	}

	config, err := s.getConfig(ctx, db, guildID)
	if err != nil {
		if errors.Is(err, rejections.ErrNotConfigured) {
			return reject(err), nil
		}
		return ReleaseResult{}, err
	}
	if !config.TransferWindowOpen {
		return reject(rejections.ErrWindowClosed), nil
	}

	actorRoles, err := s.client.MemberRoles(ctx, guildID, actorID)
	if err != nil {
		if errors.Is(err, platform.ErrMemberNotFound) {
			return reject(rejections.ErrMemberGone), nil
		}
		return ReleaseResult{}, fmt.Errorf("failed to read actor roles: %w", err)
	}
	if !isLeadership(actorRoles, config) {
		return reject(rejections.ErrNotAuthorized), nil
	}

	teams, err := s.teams.ListTeams(ctx, db, guildID)
	if err != nil {
		return ReleaseResult{}, err
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
		return ReleaseResult{}, fmt.Errorf("failed to read player roles: %w", err)
	}
	if !hasRole(playerRoles, team.RoleID) {
		return reject(rejections.ErrNotOnTeam), nil
	}

	if err := s.client.RevokeRole(ctx, guildID, playerID, team.RoleID); err != nil {
		return ReleaseResult{}, fmt.Errorf("failed to revoke team role: %w", err)
	}
	if hasRole(playerRoles, config.AssistantRoleID) {
		if err := s.client.RevokeRole(ctx, guildID, playerID, config.AssistantRoleID); err != nil {
			return ReleaseResult{}, fmt.Errorf("failed to revoke assistant role: %w", err)
		}
	}

	delivered, err := s.client.DirectMessage(ctx, playerID,
		fmt.Sprintf("You have been released from <@&%s>.", team.RoleID))
	if err != nil {
		s.deps.Logger.WarnContext(ctx, "Release DM failed",
			attr.String("player_id", string(playerID)), attr.Error(err))
		delivered = false
	}

	return results.SuccessResult[ReleaseOutcome, error](ReleaseOutcome{
		PlayerID:    playerID,
		TeamRole:    team.RoleID,
		Logo:        team.Logo,
		Background:  team.Background,
		ChannelID:   config.AnnouncementChannelID,
		DMDelivered: delivered,
	}), nil
}
