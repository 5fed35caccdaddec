package rosterservice

import (
	"context"
	"sync"

	"github.com/uptrace/bun"

	freeagentservice "github.com/Harbour-City-League/roster-bot/app/modules/freeagent/application"
	guildconfigdb "github.com/Harbour-City-League/roster-bot/app/modules/guildconfig/infrastructure/repositories"
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
	GetTeamFunc   func(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID, roleID sharedtypes.RoleID) (*teamdb.Team, error)
	ListTeamsFunc func(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID) ([]teamdb.Team, error)
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
	if f.ListTeamsFunc != nil {
		return f.ListTeamsFunc(ctx, db, guildID)
	}
	return nil, nil
}

var _ teamdb.Repository = (*FakeTeamRepository)(nil)

// FakeAgentsService is a hand-rolled fake for the free-agent service.
type FakeAgentsService struct {
	mu    sync.Mutex
	trace []string

	RemoveOnSignFunc func(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.UserID) error
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
	if f.RemoveOnSignFunc != nil {
		return f.RemoveOnSignFunc(ctx, guildID, userID)
	}
	return nil
}

var _ freeagentservice.Service = (*FakeAgentsService)(nil)
