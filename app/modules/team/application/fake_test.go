package teamservice

import (
	"context"
	"sync"

	"github.com/uptrace/bun"

	freeagentdb "github.com/Harbour-City-League/roster-bot/app/modules/freeagent/infrastructure/repositories"
	teamdb "github.com/Harbour-City-League/roster-bot/app/modules/team/infrastructure/repositories"
	sharedtypes "github.com/Harbour-City-League/roster-bot/app/shared/types"
)

// FakeTeamRepository is a hand-rolled fake for teamdb.Repository.
type FakeTeamRepository struct {
	mu    sync.Mutex
	trace []string

	GetTeamFunc       func(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID, roleID sharedtypes.RoleID) (*teamdb.Team, error)
	SaveTeamFunc      func(ctx context.Context, db bun.IDB, team *teamdb.Team) error
	DeleteTeamFunc    func(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID, roleID sharedtypes.RoleID) error
	SetBackgroundFunc func(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID, roleID sharedtypes.RoleID, background *string) error
	ListTeamsFunc     func(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID) ([]teamdb.Team, error)
}

func NewFakeTeamRepository() *FakeTeamRepository {
	return &FakeTeamRepository{trace: []string{}}
}

func (f *FakeTeamRepository) record(step string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.trace = append(f.trace, step)
}

func (f *FakeTeamRepository) Trace() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeTeamRepository) GetTeam(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID, roleID sharedtypes.RoleID) (*teamdb.Team, error) {
	f.record("GetTeam")
	if f.GetTeamFunc != nil {
		return f.GetTeamFunc(ctx, db, guildID, roleID)
	}
	return nil, teamdb.ErrNotFound
}

func (f *FakeTeamRepository) SaveTeam(ctx context.Context, db bun.IDB, team *teamdb.Team) error {
	f.record("SaveTeam")
	if f.SaveTeamFunc != nil {
		return f.SaveTeamFunc(ctx, db, team)
	}
	return nil
}

func (f *FakeTeamRepository) DeleteTeam(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID, roleID sharedtypes.RoleID) error {
	f.record("DeleteTeam")
	if f.DeleteTeamFunc != nil {
		return f.DeleteTeamFunc(ctx, db, guildID, roleID)
	}
	return nil
}

func (f *FakeTeamRepository) SetBackground(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID, roleID sharedtypes.RoleID, background *string) error {
	f.record("SetBackground")
	if f.SetBackgroundFunc != nil {
		return f.SetBackgroundFunc(ctx, db, guildID, roleID, background)
	}
	return nil
}

func (f *FakeTeamRepository) ListTeams(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID) ([]teamdb.Team, error) {
	f.record("ListTeams")
	if f.ListTeamsFunc != nil {
		return f.ListTeamsFunc(ctx, db, guildID)
	}
	return nil, nil
}

var _ teamdb.Repository = (*FakeTeamRepository)(nil)

// FakeAgentRepository is a hand-rolled fake for freeagentdb.Repository.
type FakeAgentRepository struct {
	ListListingsFunc func(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID) ([]freeagentdb.FreeAgentListing, error)
}

func (f *FakeAgentRepository) GetListing(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID, userID sharedtypes.UserID) (*freeagentdb.FreeAgentListing, error) {
	return nil, freeagentdb.ErrNotFound
}

func (f *FakeAgentRepository) SaveListing(ctx context.Context, db bun.IDB, listing *freeagentdb.FreeAgentListing) error {
	return nil
}

func (f *FakeAgentRepository) DeleteListing(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID, userID sharedtypes.UserID) error {
	return nil
}

func (f *FakeAgentRepository) ListListings(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID) ([]freeagentdb.FreeAgentListing, error) {
	if f.ListListingsFunc != nil {
		return f.ListListingsFunc(ctx, db, guildID)
	}
	return nil, nil
}

var _ freeagentdb.Repository = (*FakeAgentRepository)(nil)
