package transferservice

import (
	"context"
	"sync"

	"github.com/uptrace/bun"

	freeagentservice "github.com/Harbour-City-League/roster-bot/app/modules/freeagent/application"
	guildconfigdb "github.com/Harbour-City-League/roster-bot/app/modules/guildconfig/infrastructure/repositories"
	rosterservice "github.com/Harbour-City-League/roster-bot/app/modules/roster/application"
	teamdb "github.com/Harbour-City-League/roster-bot/app/modules/team/infrastructure/repositories"
	sharedtypes "github.com/Harbour-City-League/roster-bot/app/shared/types"
)

// FakeConfigRepository is a hand-rolled fake for guildconfigdb.Repository.
type FakeConfigRepository struct {
	GetConfigFunc func(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID) (*guildconfigdb.GuildConfig, error)
}

func (f *FakeConfigRepository) GetConfig(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID) (*guildconfigdb.GuildConfig, error) {
	if f.GetConfigFunc != nil {
		return f.GetConfigFunc(ctx, db, guildID)
	}
	return nil, guildconfigdb.ErrNotFound
}

func (f *FakeConfigRepository) SaveConfig(ctx context.Context, db bun.IDB, config *guildconfigdb.GuildConfig) error {
	return nil
}

func (f *FakeConfigRepository) SetTransferWindow(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID, open bool) error {
	return nil
}

var _ guildconfigdb.Repository = (*FakeConfigRepository)(nil)

// FakeTeamRepository is a hand-rolled fake for teamdb.Repository.
type FakeTeamRepository struct {
	GetTeamFunc func(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID, roleID sharedtypes.RoleID) (*teamdb.Team, error)
}

func (f *FakeTeamRepository) GetTeam(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID, roleID sharedtypes.RoleID) (*teamdb.Team, error) {
	if f.GetTeamFunc != nil {
		return f.GetTeamFunc(ctx, db, guildID, roleID)
	}
	return nil, teamdb.ErrNotFound
}

func (f *FakeTeamRepository) SaveTeam(ctx context.Context, db bun.IDB, team *teamdb.Team) error {
	return nil
}

func (f *FakeTeamRepository) DeleteTeam(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID, roleID sharedtypes.RoleID) error {
	return nil
}

func (f *FakeTeamRepository) SetBackground(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID, roleID sharedtypes.RoleID, background *string) error {
	return nil
}

func (f *FakeTeamRepository) ListTeams(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID) ([]teamdb.Team, error) {
	return nil, nil
}

var _ teamdb.Repository = (*FakeTeamRepository)(nil)

// FakeRosterService is a hand-rolled fake for the roster service. Only
// the resolver methods matter here; the transaction ops are never called
// by the transfer workflow.
type FakeRosterService struct {
	ResolveTeamFunc     func(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.UserID) (*rosterservice.ResolvedTeam, error)
	ResolveManagersFunc func(ctx context.Context, guildID sharedtypes.GuildID, teamRole sharedtypes.RoleID) (rosterservice.Managers, error)
}

func (f *FakeRosterService) ResolveTeam(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.UserID) (*rosterservice.ResolvedTeam, error) {
	if f.ResolveTeamFunc != nil {
		return f.ResolveTeamFunc(ctx, guildID, userID)
	}
	return nil, nil
}

func (f *FakeRosterService) ResolveManagers(ctx context.Context, guildID sharedtypes.GuildID, teamRole sharedtypes.RoleID) (rosterservice.Managers, error) {
	if f.ResolveManagersFunc != nil {
		return f.ResolveManagersFunc(ctx, guildID, teamRole)
	}
	return rosterservice.Managers{}, nil
}

func (f *FakeRosterService) Sign(ctx context.Context, guildID sharedtypes.GuildID, actorID, playerID sharedtypes.UserID) (rosterservice.SignResult, error) {
	return rosterservice.SignResult{}, nil
}

func (f *FakeRosterService) Release(ctx context.Context, guildID sharedtypes.GuildID, actorID, playerID sharedtypes.UserID) (rosterservice.ReleaseResult, error) {
	return rosterservice.ReleaseResult{}, nil
}

func (f *FakeRosterService) Demand(ctx context.Context, guildID sharedtypes.GuildID, actorID sharedtypes.UserID) (rosterservice.DemandResult, error) {
	return rosterservice.DemandResult{}, nil
}

func (f *FakeRosterService) Promote(ctx context.Context, guildID sharedtypes.GuildID, actorID, playerID sharedtypes.UserID) (rosterservice.PromoteResult, error) {
	return rosterservice.PromoteResult{}, nil
}

var _ rosterservice.Service = (*FakeRosterService)(nil)

// FakeAgentsService is a hand-rolled fake for the free-agent service.
type FakeAgentsService struct {
	mu    sync.Mutex
	trace []string
}

func (f *FakeAgentsService) record(step string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.trace = append(f.trace, step)
}

func (f *FakeAgentsService) Trace() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeAgentsService) ListYourself(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.UserID, region sharedtypes.Region, position sharedtypes.Position, description string) (freeagentservice.ListingResult, error) {
	f.record("ListYourself")
	return freeagentservice.ListingResult{}, nil
}

func (f *FakeAgentsService) Withdraw(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.UserID) (freeagentservice.WithdrawResult, error) {
	f.record("Withdraw")
	return freeagentservice.WithdrawResult{}, nil
}

func (f *FakeAgentsService) BrowseFreeAgents(ctx context.Context, guildID sharedtypes.GuildID) (freeagentservice.BrowseResult, error) {
	f.record("BrowseFreeAgents")
	return freeagentservice.BrowseResult{}, nil
}

func (f *FakeAgentsService) RemoveOnSign(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.UserID) error {
	f.record("RemoveOnSign " + string(userID))
	return nil
}

var _ freeagentservice.Service = (*FakeAgentsService)(nil)
