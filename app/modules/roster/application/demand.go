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

// Demand is a player's voluntary departure from their own team. It is
// exempt from the transfer window: leaving is always permitted. The team
// role is revoked, the free-agent role granted when configured, and the
// team's leadership is notified by DM (best effort).
func (s *RosterService) Demand(ctx context.Context, guildID sharedtypes.GuildID, actorID sharedtypes.UserID) (DemandResult, error) {
	if ctx == nil {
		return DemandResult{}, ErrNilContext
	}

	return telemetry.WithTelemetry(ctx, s.deps, "Demand", string(guildID),
		func(ctx context.Context) (DemandResult, error) {
			return telemetry.RunInTx(ctx, s.db, func(ctx context.Context, db bun.IDB) (DemandResult, error) {
				return s.demandLogic(ctx, db, guildID, actorID)
			})
		})
}

func (s *RosterService) demandLogic(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID, actorID sharedtypes.UserID) (DemandResult, error) {
	reject := func(reason error) DemandResult {
		return results.FailureResult[DemandOutcome, error](reason)
	}

	config, err := s.getConfig(ctx, db, guildID)
	if err != nil {
		if errors.Is(err, rejections.ErrNotConfigured) {
			return reject(err), nil
		}
		return DemandResult{}, err
	}

	actorRoles, err := s.client.MemberRoles(ctx, guildID, actorID)
	if err != nil {
		if errors.Is(err, platform.ErrMemberNotFound) {
			return reject(rejections.ErrMemberGone), nil
		}
		return DemandResult{}, fmt.Errorf("failed to read actor roles: %w", err)
	}

	teams, err := s.teams.ListTeams(ctx, db, guildID)
	if err != nil {
		return DemandResult{}, err
	}
	team := resolveFromRoles(actorRoles, teams)
	if team == nil {
		return reject(rejections.ErrNotInTeam), nil
	}

	// Snapshot leadership before the role change takes the actor off
	// the member list.
	members, err := s.client.MembersWithRole(ctx, guildID, team.RoleID)
	if err != nil {
		return DemandResult{}, fmt.Errorf("failed to list team members: %w", err)
	}
	managers, err := s.splitManagers(ctx, guildID, config, members)
	if err != nil {
		return DemandResult{}, err
	}

	if err := s.client.RevokeRole(ctx, guildID, actorID, team.RoleID); err != nil {
		return DemandResult{}, fmt.Errorf("failed to revoke team role: %w", err)
	}
	if config.FreeAgentRoleID != "" {
		if err := s.client.GrantRole(ctx, guildID, actorID, config.FreeAgentRoleID); err != nil {
			return DemandResult{}, fmt.Errorf("failed to grant free agent role: %w", err)
		}
	}

	notice := fmt.Sprintf("<@%s> has demanded a transfer and left <@&%s>.", actorID, team.RoleID)
	var notified []sharedtypes.UserID
	for _, manager := range append(managers.Heads, managers.Assistants...) {
		if manager == actorID {
			continue
		}
		delivered, err := s.client.DirectMessage(ctx, manager, notice)
		if err != nil {
			s.deps.Logger.WarnContext(ctx, "Demand notice failed",
				attr.String("manager_id", string(manager)), attr.Error(err))
			continue
		}
		if delivered {
			notified = append(notified, manager)
		}
	}

	return results.SuccessResult[DemandOutcome, error](DemandOutcome{
		ActorID:          actorID,
		TeamRole:         team.RoleID,
		Logo:             team.Logo,
		Background:       team.Background,
		ChannelID:        config.AnnouncementChannelID,
		NotifiedManagers: notified,
	}), nil
}
