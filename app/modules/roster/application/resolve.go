package rosterservice

import (
	"context"
	"errors"
	"fmt"

	guildconfigdb "github.com/Harbour-City-League/roster-bot/app/modules/guildconfig/infrastructure/repositories"
	teamdb "github.com/Harbour-City-League/roster-bot/app/modules/team/infrastructure/repositories"
	"github.com/Harbour-City-League/roster-bot/app/platform"
	sharedtypes "github.com/Harbour-City-League/roster-bot/app/shared/types"
)

// ResolveTeam derives the team a user belongs to: the intersection of
// their platform roles with the registered team roles. A user holding
// several registered team roles resolves to the lowest role ID, which
// keeps the answer stable across calls. Returns nil when the user is on
// no team or has left the guild.
func (s *RosterService) ResolveTeam(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.UserID) (*ResolvedTeam, error) {
	if ctx == nil {
		return nil, ErrNilContext
	}

	roles, err := s.client.MemberRoles(ctx, guildID, userID)
	if err != nil {
		if errors.Is(err, platform.ErrMemberNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read member roles: %w", err)
	}

	teams, err := s.teams.ListTeams(ctx, nil, guildID)
	if err != nil {
		return nil, err
	}

	return resolveFromRoles(roles, teams), nil
}

// resolveFromRoles is the pure core of ResolveTeam, shared by the
// transaction ops which already fetched the role set.
func resolveFromRoles(roles []sharedtypes.RoleID, teams []teamdb.Team) *ResolvedTeam {
	var match *teamdb.Team
	for i := range teams {
		if !hasRole(roles, teams[i].RoleID) {
			continue
		}
		if match == nil || teams[i].RoleID < match.RoleID {
			match = &teams[i]
		}
	}
	if match == nil {
		return nil
	}
	resolved := &ResolvedTeam{
		RoleID:      match.RoleID,
		Logo:        match.Logo,
		RosterLimit: match.RosterLimit,
	}
	if match.AnnouncementBackground != nil {
		resolved.Background = *match.AnnouncementBackground
	}
	return resolved
}

// playerCount counts how many of a team's members occupy roster slots.
// Holders of the guild manager or assistant role run the team rather than
// fill it, so they stay out of the capacity check. Members who left
// between the role listing and the role read are skipped.
func (s *RosterService) playerCount(ctx context.Context, guildID sharedtypes.GuildID, config *guildconfigdb.GuildConfig, teamRole sharedtypes.RoleID) (int, error) {
	members, err := s.client.MembersWithRole(ctx, guildID, teamRole)
	if err != nil {
		return 0, fmt.Errorf("failed to count roster: %w", err)
	}
	count := 0
	for _, member := range members {
		roles, err := s.client.MemberRoles(ctx, guildID, member)
		if err != nil {
			if errors.Is(err, platform.ErrMemberNotFound) {
				continue
			}
			return 0, fmt.Errorf("failed to read member roles: %w", err)
		}
		if isLeadership(roles, config) {
			continue
		}
		count++
	}
	return count, nil
}

// ResolveManagers splits a team's current members by leadership role.
// Holding the manager role wins over holding both.
func (s *RosterService) ResolveManagers(ctx context.Context, guildID sharedtypes.GuildID, teamRole sharedtypes.RoleID) (Managers, error) {
	if ctx == nil {
		return Managers{}, ErrNilContext
	}

	config, err := s.getConfig(ctx, nil, guildID)
	if err != nil {
		return Managers{}, err
	}

	members, err := s.client.MembersWithRole(ctx, guildID, teamRole)
	if err != nil {
		return Managers{}, fmt.Errorf("failed to list team members: %w", err)
	}

	return s.splitManagers(ctx, guildID, config, members)
}

func (s *RosterService) splitManagers(ctx context.Context, guildID sharedtypes.GuildID, config *guildconfigdb.GuildConfig, members []sharedtypes.UserID) (Managers, error) {
	var managers Managers
	for _, member := range members {
		roles, err := s.client.MemberRoles(ctx, guildID, member)
		if err != nil {
			if errors.Is(err, platform.ErrMemberNotFound) {
				continue
			}
			return Managers{}, fmt.Errorf("failed to read member roles: %w", err)
		}
		switch {
		case hasRole(roles, config.ManagerRoleID):
			managers.Heads = append(managers.Heads, member)
		case hasRole(roles, config.AssistantRoleID):
			managers.Assistants = append(managers.Assistants, member)
		}
	}
	return managers, nil
}
