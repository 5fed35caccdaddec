package freeagentdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	sharedtypes "github.com/Harbour-City-League/roster-bot/app/shared/types"
)

// ErrNotFound is returned when a user has no listing.
var ErrNotFound = errors.New("free agent listing not found")

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new free-agent repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

// GetListing retrieves one user's listing.
func (r *Impl) GetListing(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID, userID sharedtypes.UserID) (*FreeAgentListing, error) {
	db = r.resolveDB(db)
	listing := new(FreeAgentListing)
	err := db.NewSelect().
		Model(listing).
		Where("user_id = ?", userID).
		Where("guild_id = ?", guildID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get listing: %w", err)
	}
	return listing, nil
}

// SaveListing creates or replaces a user's listing. Relisting refreshes
// the created-at stamp so the advert sorts as new.
func (r *Impl) SaveListing(ctx context.Context, db bun.IDB, listing *FreeAgentListing) error {
	db = r.resolveDB(db)
	_, err := db.NewInsert().
		Model(listing).
		On("CONFLICT (user_id) DO UPDATE").
		Set("guild_id = EXCLUDED.guild_id").
		Set("region = EXCLUDED.region").
		Set("position = EXCLUDED.position").
		Set("description = EXCLUDED.description").
		Set("created_at = EXCLUDED.created_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save listing: %w", err)
	}
	return nil
}

// DeleteListing removes a user's listing.
func (r *Impl) DeleteListing(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID, userID sharedtypes.UserID) error {
	db = r.resolveDB(db)
	result, err := db.NewDelete().
		Model((*FreeAgentListing)(nil)).
		Where("user_id = ?", userID).
		Where("guild_id = ?", guildID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete listing: %w", err)
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

// ListListings returns every listing in the guild, newest first.
func (r *Impl) ListListings(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID) ([]FreeAgentListing, error) {
	db = r.resolveDB(db)
	var listings []FreeAgentListing
	err := db.NewSelect().
		Model(&listings).
		Where("guild_id = ?", guildID).
		Order("created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list listings: %w", err)
	}
	return listings, nil
}
