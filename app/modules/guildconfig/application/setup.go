package guildconfigservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	guildconfigdb "github.com/Harbour-City-League/roster-bot/app/modules/guildconfig/infrastructure/repositories"
	guildevents "github.com/Harbour-City-League/roster-bot/app/shared/events/guild"
	"github.com/Harbour-City-League/roster-bot/app/shared/results"
	"github.com/Harbour-City-League/roster-bot/app/shared/telemetry"
)

// SetupGuild creates or replaces a guild's configuration wholesale. The
// transfer-window flag is preserved when a config already exists and
// defaults to open on first setup.
func (s *GuildConfigService) SetupGuild(ctx context.Context, config guildevents.GuildConfigView) (ConfigResult, error) {
	if ctx == nil {
		return ConfigResult{}, ErrNilContext
	}

	return telemetry.WithTelemetry(ctx, s.deps, "SetupGuild", string(config.GuildID),
		func(ctx context.Context) (ConfigResult, error) {
			return telemetry.RunInTx(ctx, s.db, func(ctx context.Context, db bun.IDB) (ConfigResult, error) {
				return s.setupGuildLogic(ctx, db, config)
			})
		})
}

func (s *GuildConfigService) setupGuildLogic(ctx context.Context, db bun.IDB, config guildevents.GuildConfigView) (ConfigResult, error) {
	if config.GuildID == "" {
		return results.FailureResult[guildevents.GuildConfigView, error](ErrInvalidGuildID), nil
	}
	if config.ManagerRoleID == "" || config.AssistantRoleID == "" {
		return results.FailureResult[guildevents.GuildConfigView, error](ErrMissingRole), nil
	}
	if config.AnnouncementChannelID == "" {
		return results.FailureResult[guildevents.GuildConfigView, error](ErrMissingChannel), nil
	}

	windowOpen := true
	existing, err := s.repo.GetConfig(ctx, db, config.GuildID)
	if err != nil && !errors.Is(err, guildconfigdb.ErrNotFound) {
		return ConfigResult{}, fmt.Errorf("failed to check existing config: %w", err)
	}
	if existing != nil {
		windowOpen = existing.TransferWindowOpen
	}

	row := &guildconfigdb.GuildConfig{
		GuildID:               config.GuildID,
		ManagerRoleID:         config.ManagerRoleID,
		AssistantRoleID:       config.AssistantRoleID,
		FreeAgentRoleID:       config.FreeAgentRoleID,
		AnnouncementChannelID: config.AnnouncementChannelID,
		TransferWindowOpen:    windowOpen,
	}
	if err := s.repo.SaveConfig(ctx, db, row); err != nil {
		return ConfigResult{}, fmt.Errorf("failed to save config: %w", err)
	}

	return results.SuccessResult[guildevents.GuildConfigView, error](toView(row)), nil
}
