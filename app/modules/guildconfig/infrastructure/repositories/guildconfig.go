package guildconfigdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	sharedtypes "github.com/Harbour-City-League/roster-bot/app/shared/types"
)

// ErrNotFound is returned when a guild has no configuration yet.
var ErrNotFound = errors.New("guild config not found")

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new guild-config repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

// resolveDB returns the provided db handle, falling back to the
// repository's default connection if db is nil.
func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

// GetConfig retrieves a guild's configuration.
func (r *Impl) GetConfig(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID) (*GuildConfig, error) {
	db = r.resolveDB(db)
	config := new(GuildConfig)
	err := db.NewSelect().
		Model(config).
		Where("guild_id = ?", guildID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get guild config: %w", err)
	}
	return config, nil
}

// SaveConfig creates or replaces a guild's configuration. The transfer
// window flag is preserved on replace.
func (r *Impl) SaveConfig(ctx context.Context, db bun.IDB, config *GuildConfig) error {
	db = r.resolveDB(db)
	config.UpdatedAt = time.Now()
	_, err := db.NewInsert().
		Model(config).
		On("CONFLICT (guild_id) DO UPDATE").
		Set("manager_role_id = EXCLUDED.manager_role_id").
		Set("assistant_role_id = EXCLUDED.assistant_role_id").
		Set("free_agent_role_id = EXCLUDED.free_agent_role_id").
		Set("announcement_channel_id = EXCLUDED.announcement_channel_id").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save guild config: %w", err)
	}
	return nil
}

// SetTransferWindow flips the guild-wide transfer window gate.
func (r *Impl) SetTransferWindow(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID, open bool) error {
	db = r.resolveDB(db)
	result, err := db.NewUpdate().
		Model((*GuildConfig)(nil)).
		Set("transfer_window_open = ?", open).
		Set("updated_at = ?", time.Now()).
		Where("guild_id = ?", guildID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to set transfer window: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
