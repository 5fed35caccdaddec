package teammigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		if _, err := db.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS teams (
				role_id VARCHAR(20) PRIMARY KEY,
				guild_id VARCHAR(20) NOT NULL,
				logo TEXT NOT NULL,
				roster_limit INT NOT NULL DEFAULT 20,
				announcement_background TEXT,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			);
		`); err != nil {
			return fmt.Errorf("failed to create teams table: %w", err)
		}
		if _, err := db.ExecContext(ctx, `
			CREATE INDEX IF NOT EXISTS teams_guild_id_idx ON teams (guild_id);
		`); err != nil {
			return fmt.Errorf("failed to create teams guild index: %w", err)
		}
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		if _, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS teams;`); err != nil {
			return fmt.Errorf("failed to drop teams table: %w", err)
		}
		return nil
	})
}
