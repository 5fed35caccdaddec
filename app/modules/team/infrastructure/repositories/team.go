package teamdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	sharedtypes "github.com/Harbour-City-League/roster-bot/app/shared/types"
)

// ErrNotFound is returned when a role is not a registered team.
var ErrNotFound = errors.New("team not found")

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new team repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

// GetTeam retrieves one registered team by its platform role.
func (r *Impl) GetTeam(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID, roleID sharedtypes.RoleID) (*Team, error) {
	db = r.resolveDB(db)
	team := new(Team)
	err := db.NewSelect().
		Model(team).
		Where("role_id = ?", roleID).
		Where("guild_id = ?", guildID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return team, nil
}

// SaveTeam creates or replaces a registered team. The announcement
// background is preserved on replace.
func (r *Impl) SaveTeam(ctx context.Context, db bun.IDB, team *Team) error {
	db = r.resolveDB(db)
	team.UpdatedAt = time.Now()
	_, err := db.NewInsert().
		Model(team).
		On("CONFLICT (role_id) DO UPDATE").
		Set("guild_id = EXCLUDED.guild_id").
		Set("logo = EXCLUDED.logo").
		Set("roster_limit = EXCLUDED.roster_limit").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save team: %w", err)
	}
	return nil
}

// DeleteTeam unregisters a team. The platform role itself is untouched.
func (r *Impl) DeleteTeam(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID, roleID sharedtypes.RoleID) error {
	db = r.resolveDB(db)
	result, err := db.NewDelete().
		Model((*Team)(nil)).
		Where("role_id = ?", roleID).
		Where("guild_id = ?", guildID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
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

// SetBackground stores a custom announcement background. A nil background
// clears the override.
func (r *Impl) SetBackground(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID, roleID sharedtypes.RoleID, background *string) error {
	db = r.resolveDB(db)
	result, err := db.NewUpdate().
		Model((*Team)(nil)).
		Set("announcement_background = ?", background).
		Set("updated_at = ?", time.Now()).
		Where("role_id = ?", roleID).
		Where("guild_id = ?", guildID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to set background: %w", err)
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

// ListTeams returns every registered team in the guild, oldest first.
func (r *Impl) ListTeams(ctx context.Context, db bun.IDB, guildID sharedtypes.GuildID) ([]Team, error) {
	db = r.resolveDB(db)
	var teams []Team
	err := db.NewSelect().
		Model(&teams).
		Where("guild_id = ?", guildID).
		Order("created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return teams, nil
}
