package guildconfigmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		if _, err := db.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS guild_configs (
				guild_id VARCHAR(20) PRIMARY KEY,
				manager_role_id VARCHAR(20) NOT NULL,
				assistant_role_id VARCHAR(20) NOT NULL,
				free_agent_role_id VARCHAR(20),
				announcement_channel_id VARCHAR(20) NOT NULL,
				transfer_window_open BOOLEAN NOT NULL DEFAULT TRUE,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			);
		`); err != nil {
			return fmt.Errorf("failed to create guild_configs table: %w", err)
		}
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		if _, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS guild_configs;`); err != nil {
			return fmt.Errorf("failed to drop guild_configs table: %w", err)
		}
		return nil
	})
}
