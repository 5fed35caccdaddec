package rosterservice

import (
	"context"
	"sort"

	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace/noop"

	guildconfigdb "github.com/Harbour-City-League/roster-bot/app/modules/guildconfig/infrastructure/repositories"
	teamdb "github.com/Harbour-City-League/roster-bot/app/modules/team/infrastructure/repositories"
	"github.com/Harbour-City-League/roster-bot/app/platform"
	"github.com/Harbour-City-League/roster-bot/app/platform/platformtest"
	sharedtypes "github.com/Harbour-City-League/roster-bot/app/shared/types"
)

// harness wires a RosterService against an in-memory guild: a config, a
// team registry and a member-to-roles map backing the platform fake.
type harness struct {
	config  *guildconfigdb.GuildConfig
	teams   []teamdb.Team
	members map[sharedtypes.UserID][]sharedtypes.RoleID
	client  *platformtest.FakeClient
	agents  *FakeAgentsService
	service *RosterService
}

func newHarness() *harness {
	h := &harness{
		config: &guildconfigdb.GuildConfig{
			GuildID:               "guild-1",
			ManagerRoleID:         "role-manager",
			AssistantRoleID:       "role-assistant",
			FreeAgentRoleID:       "role-fa",
			AnnouncementChannelID: "chan-1",
			TransferWindowOpen:    true,
		},
		teams: []teamdb.Team{
			{RoleID: "role-team-a", GuildID: "guild-1", Logo: "a.png", RosterLimit: 2},
			{RoleID: "role-team-b", GuildID: "guild-1", Logo: "b.png", RosterLimit: 20},
		},
		members: map[sharedtypes.UserID][]sharedtypes.RoleID{},
		agents:  &FakeAgentsService{},
	}

	h.client = platformtest.NewFakeClient()
	h.client.MemberRolesFunc = func(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.UserID) ([]sharedtypes.RoleID, error) {
		roles, ok := h.members[userID]
		if !ok {
			return nil, platform.ErrMemberNotFound
		}
		return roles, nil
	}
	h.client.MembersWithRoleFunc = func(ctx context.Context, guildID sharedtypes.GuildID, roleID sharedtypes.RoleID) ([]sharedtypes.UserID, error) {
		var out []sharedtypes.UserID
		for user, roles := range h.members {
			for _, r := range roles {
				if r == roleID {
					out = append(out, user)
					break
				}
			}
		}
		sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
		return out, nil
	}
	h.client.GrantRoleFunc = func(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.UserID, roleID sharedtypes.RoleID) error {
		h.members[userID] = append(h.members[userID], roleID)
		return nil
	}
	h.client.RevokeRoleFunc = func(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.UserID, roleID sharedtypes.RoleID) error {
		kept := h.members[userID][:0]
		for _, r := range h.members[userID] {
			if r != roleID {
				kept = append(kept, r)
			}
		}
		h.members[userID] = kept
		return nil
	}

	configs := &FakeConfigRepository{
		GetConfigFunc: func(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID) (*guildconfigdb.GuildConfig, error) {
			if h.config == nil {
				return nil, guildconfigdb.ErrNotFound
			}
			return h.config, nil
		},
	}
	teams := &FakeTeamRepository{
		ListTeamsFunc: func(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID) ([]teamdb.Team, error) {
			return h.teams, nil
		},
	}

	h.service = NewRosterService(configs, teams, h.agents, h.client,
		nil, nil, noop.NewTracerProvider().Tracer("test"), nil)
	return h
}

func (h *harness) addMember(userID sharedtypes.UserID, roles ...sharedtypes.RoleID) {
	h.members[userID] = roles
}

func (h *harness) holds(userID sharedtypes.UserID, roleID sharedtypes.RoleID) bool {
	return hasRole(h.members[userID], roleID)
}
