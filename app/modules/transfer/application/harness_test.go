package transferservice

import (
	"context"
	"time"

	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace/noop"

	guildconfigdb "github.com/Harbour-City-League/roster-bot/app/modules/guildconfig/infrastructure/repositories"
	rosterservice "github.com/Harbour-City-League/roster-bot/app/modules/roster/application"
	teamdb "github.com/Harbour-City-League/roster-bot/app/modules/team/infrastructure/repositories"
	transferdomain "github.com/Harbour-City-League/roster-bot/app/modules/transfer/domain"
	transferboard "github.com/Harbour-City-League/roster-bot/app/modules/transfer/infrastructure/board"
	"github.com/Harbour-City-League/roster-bot/app/platform/platformtest"
	sharedtypes "github.com/Harbour-City-League/roster-bot/app/shared/types"
)

const testTTL = time.Hour

// harness wires a TransferService against in-memory collaborators with a
// frozen clock. The default guild has two teams: the actor manages
// role-team-a and the player sits on role-team-b, approved by manager-2.
type harness struct {
	config  *guildconfigdb.GuildConfig
	teams   map[sharedtypes.RoleID]*teamdb.Team
	roster  *FakeRosterService
	agents  *FakeAgentsService
	client  *platformtest.FakeClient
	board   *transferboard.Board
	clock   time.Time
	service *TransferService
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
		teams: map[sharedtypes.RoleID]*teamdb.Team{
			"role-team-a": {RoleID: "role-team-a", GuildID: "guild-1", Logo: "a.png", RosterLimit: 20},
			"role-team-b": {RoleID: "role-team-b", GuildID: "guild-1", Logo: "b.png", RosterLimit: 20},
		},
		roster: &FakeRosterService{},
		agents: &FakeAgentsService{},
		client: platformtest.NewFakeClient(),
		board:  transferboard.New(),
		clock:  time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC),
	}

	h.client.MemberRolesFunc = func(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.UserID) ([]sharedtypes.RoleID, error) {
		if userID == "manager-1" {
			return []sharedtypes.RoleID{"role-manager", "role-team-a"}, nil
		}
		return nil, nil
	}
	h.roster.ResolveTeamFunc = func(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.UserID) (*rosterservice.ResolvedTeam, error) {
		switch userID {
		case "manager-1":
			return &rosterservice.ResolvedTeam{RoleID: "role-team-a", Logo: "a.png", RosterLimit: 20}, nil
		case "player-1":
			return &rosterservice.ResolvedTeam{RoleID: "role-team-b", Logo: "b.png", RosterLimit: 20}, nil
		}
		return nil, nil
	}
	h.roster.ResolveManagersFunc = func(ctx context.Context, guildID sharedtypes.GuildID, teamRole sharedtypes.RoleID) (rosterservice.Managers, error) {
		return rosterservice.Managers{Heads: []sharedtypes.UserID{"manager-2"}}, nil
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
		GetTeamFunc: func(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID, roleID sharedtypes.RoleID) (*teamdb.Team, error) {
			team, ok := h.teams[roleID]
			if !ok {
				return nil, teamdb.ErrNotFound
			}
			return team, nil
		},
	}

	h.service = NewTransferService(configs, teams, h.roster, h.agents, h.client, h.board,
		testTTL, nil, nil, noop.NewTracerProvider().Tracer("test"), nil)
	h.service.now = func() time.Time { return h.clock }
	return h
}

// pendingOffer plants a live offer on the board, bypassing Propose.
func (h *harness) pendingOffer(id string) *transferdomain.Offer {
	offer := &transferdomain.Offer{
		ID:          id,
		GuildID:     "guild-1",
		RequesterID: "manager-1",
		PlayerID:    "player-1",
		FromTeam:    "role-team-b",
		ToTeam:      "role-team-a",
		ApproverID:  "manager-2",
		CreatedAt:   h.clock,
		Deadline:    h.clock.Add(testTTL),
		State:       transferdomain.StateProposed,
	}
	h.board.Add(offer)
	return offer
}
