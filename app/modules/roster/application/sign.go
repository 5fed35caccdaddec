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

// Sign adds a player to the acting manager's team. The window must be
// open, the actor must resolve to a team with leadership authority, the
// player must be teamless and the roster under its cap. On success the
// team role is granted, any free-agent listing is cleared and the player
// gets a DM (best effort).
func (s *RosterService) Sign(ctx context.Context, guildID sharedtypes.GuildID, actorID, playerID sharedtypes.UserID) (SignResult, error) {
	if ctx == nil {
		return SignResult{}, ErrNilContext
	}

	return telemetry.WithTelemetry(ctx, s.deps, "Sign", string(guildID),
		func(ctx context.Context) (SignResult, error) {
			return telemetry.RunInTx(ctx, s.db, func(ctx context.Context, db bun.IDB) (SignResult, error) {
				return s.signLogic(ctx, db, guildID, actorID, playerID)
			})
		})
}

func (s *RosterService) signLogic(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID, actorID, playerID sharedtypes.UserID) (SignResult, error) {
	reject := func(reason error) SignResult {
		return results.FailureResult[SignOutcome, error](reason)
	}

	config, err := s.getConfig(ctx, db, guildID)
	if err != nil {
		if errors.Is(err, rejections.ErrNotConfigured) {
			return reject(err), nil
		}
		return SignResult{}, err
	}
	if !config.TransferWindowOpen {
		return reject(rejections.ErrWindowClosed), nil
	}

	actorRoles, err := s.client.MemberRoles(ctx, guildID, actorID)
	if err != nil {
		if errors.Is(err, platform.ErrMemberNotFound) {
			return reject(rejections.ErrMemberGone), nil
		}
		return SignResult{}, fmt.Errorf("failed to read actor roles: %w", err)
	}
	if !isLeadership(actorRoles, config) {
		return reject(rejections.ErrNotAuthorized), nil
	}

	teams, err := s.teams.ListTeams(ctx, db, guildID)
	if err != nil {
		return SignResult{}, err
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
		return SignResult{}, fmt.Errorf("failed to read player roles: %w", err)
	}
	if hasRole(playerRoles, team.RoleID) {
		return reject(rejections.ErrAlreadySigned), nil
	}
	if resolveFromRoles(playerRoles, teams) != nil {
		// Already on another registered team: that move is a transfer.
		return reject(rejections.ErrIllegalMove), nil
	}

	if team.RosterLimit > 0 {
		count, err := s.playerCount(ctx, guildID, config, team.RoleID)
		if err != nil {
			return SignResult{}, err
		}
		if count >= team.RosterLimit {
			return reject(rejections.ErrRosterFull), nil
		}
	}

	if err := s.client.GrantRole(ctx, guildID, playerID, team.RoleID); err != nil {
		return SignResult{}, fmt.Errorf("failed to grant team role: %w", err)
	}
	if err := s.agents.RemoveOnSign(ctx, guildID, playerID); err != nil {
		return SignResult{}, err
	}

	delivered, err := s.client.DirectMessage(ctx, playerID,
		fmt.Sprintf("You have been signed to <@&%s>.", team.RoleID))
	if err != nil {
		s.deps.Logger.WarnContext(ctx, "Sign DM failed",
			attr.String("player_id", string(playerID)), attr.Error(err))
		delivered = false
	}

	return results.SuccessResult[SignOutcome, error](SignOutcome{
		PlayerID:    playerID,
		TeamRole:    team.RoleID,
		Logo:        team.Logo,
		Background:  team.Background,
		ChannelID:   config.AnnouncementChannelID,
		DMDelivered: delivered,
	}), nil
}
