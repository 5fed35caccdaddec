package freeagentservice

import (
	"context"
	"sync"

	"github.com/uptrace/bun"

	freeagentdb "github.com/Harbour-City-League/roster-bot/app/modules/freeagent/infrastructure/repositories"
	guildconfigdb "github.com/Harbour-City-League/roster-bot/app/modules/guildconfig/infrastructure/repositories"
	sharedtypes "github.com/Harbour-City-League/roster-bot/app/shared/types"
)

// FakeListingRepository is a hand-rolled fake for freeagentdb.Repository.
type FakeListingRepository struct {
	mu    sync.Mutex
	trace []string

	GetListingFunc    func(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID, userID sharedtypes.UserID) (*freeagentdb.FreeAgentListing, error)
	SaveListingFunc   func(ctx context.Context, db bun.IDB, listing *freeagentdb.FreeAgentListing) error
	DeleteListingFunc func(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID, userID sharedtypes.UserID) error
	ListListingsFunc  func(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID) ([]freeagentdb.FreeAgentListing, error)
}

func NewFakeListingRepository() *FakeListingRepository {
	return &FakeListingRepository{trace: []string{}}
}

func (f *FakeListingRepository) record(step string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.trace = append(f.trace, step)
}

func (f *FakeListingRepository) Trace() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeListingRepository) GetListing(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID, userID sharedtypes.UserID) (*freeagentdb.FreeAgentListing, error) {
	f.record("GetListing")
	if f.GetListingFunc != nil {
		return f.GetListingFunc(ctx, db, guildID, userID)
	}
	return nil, freeagentdb.ErrNotFound
}

func (f *FakeListingRepository) SaveListing(ctx context.Context, db bun.IDB, listing *freeagentdb.FreeAgentListing) error {
	f.record("SaveListing")
	if f.SaveListingFunc != nil {
		return f.SaveListingFunc(ctx, db, listing)
	}
	return nil
}

func (f *FakeListingRepository) DeleteListing(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID, userID sharedtypes.UserID) error {
	f.record("DeleteListing")
	if f.DeleteListingFunc != nil {
		return f.DeleteListingFunc(ctx, db, guildID, userID)
	}
	return nil
}

func (f *FakeListingRepository) ListListings(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID) ([]freeagentdb.FreeAgentListing, error) {
	f.record("ListListings")
	if f.ListListingsFunc != nil {
		return f.ListListingsFunc(ctx, db, guildID)
	}
	return nil, nil
}

var _ freeagentdb.Repository = (*FakeListingRepository)(nil)

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

func configWithFreeAgentRole(roleID sharedtypes.RoleID) *FakeConfigRepository {
	return &FakeConfigRepository{
		GetConfigFunc: func(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID) (*guildconfigdb.GuildConfig, error) {
			return &guildconfigdb.GuildConfig{
				GuildID:               guildID,
				ManagerRoleID:         "role-manager",
				AssistantRoleID:       "role-assistant",
				FreeAgentRoleID:       roleID,
				AnnouncementChannelID: "chan-1",
				TransferWindowOpen:    true,
			}, nil
		},
	}
}
