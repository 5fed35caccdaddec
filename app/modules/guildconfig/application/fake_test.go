package guildconfigservice

import (
	"context"
	"sync"

	"github.com/uptrace/bun"

	guildconfigdb "github.com/Harbour-City-League/roster-bot/app/modules/guildconfig/infrastructure/repositories"
	sharedtypes "github.com/Harbour-City-League/roster-bot/app/shared/types"
)

// FakeRepository is a hand-rolled fake for guildconfigdb.Repository.
type FakeRepository struct {
	mu    sync.Mutex
	trace []string

	GetConfigFunc         func(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID) (*guildconfigdb.GuildConfig, error)
	SaveConfigFunc        func(ctx context.Context, db bun.IDB, config *guildconfigdb.GuildConfig) error
	SetTransferWindowFunc func(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID, open bool) error
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{trace: []string{}}
}

func (f *FakeRepository) record(step string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.trace = append(f.trace, step)
}

func (f *FakeRepository) Trace() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeRepository) GetConfig(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID) (*guildconfigdb.GuildConfig, error) {
	f.record("GetConfig")
	if f.GetConfigFunc != nil {
		return f.GetConfigFunc(ctx, db, guildID)
	}
	return nil, guildconfigdb.ErrNotFound
}

func (f *FakeRepository) SaveConfig(ctx context.Context, db bun.IDB, config *guildconfigdb.GuildConfig) error {
	f.record("SaveConfig")
	if f.SaveConfigFunc != nil {
		return f.SaveConfigFunc(ctx, db, config)
	}
	return nil
}

func (f *FakeRepository) SetTransferWindow(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID, open bool) error {
	f.record("SetTransferWindow")
	if f.SetTransferWindowFunc != nil {
		return f.SetTransferWindowFunc(ctx, db, guildID, open)
	}
	return nil
}

var _ guildconfigdb.Repository = (*FakeRepository)(nil)
