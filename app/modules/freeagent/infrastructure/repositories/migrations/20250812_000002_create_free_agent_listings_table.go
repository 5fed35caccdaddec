package freeagentmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		if _, err := db.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS free_agent_listings (
				user_id VARCHAR(20) PRIMARY KEY,
				guild_id VARCHAR(20) NOT NULL,
				region VARCHAR(4) NOT NULL,
				position VARCHAR(8) NOT NULL,
				description TEXT NOT NULL,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			);
		`); err != nil {
			return fmt.Errorf("failed to create free_agent_listings table: %w", err)
		}
		if _, err := db.ExecContext(ctx, `
			CREATE INDEX IF NOT EXISTS free_agent_listings_guild_id_idx ON free_agent_listings (guild_id);
		`); err != nil {
			return fmt.Errorf("failed to create free_agent_listings guild index: %w", err)
		}
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		if _, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS free_agent_listings;`); err != nil {
			return fmt.Errorf("failed to drop free_agent_listings table: %w", err)
		}
		return nil
	})
}
