package freeagentservice

import (
	"context"
	"errors"
	"fmt"

	freeagentdb "github.com/Harbour-City-League/roster-bot/app/modules/freeagent/infrastructure/repositories"
	guildconfigdb "github.com/Harbour-City-League/roster-bot/app/modules/guildconfig/infrastructure/repositories"
	"github.com/Harbour-City-League/roster-bot/app/shared/attr"
	sharedtypes "github.com/Harbour-City-League/roster-bot/app/shared/types"
)

// RemoveOnSign clears a player's listing and free-agent role after a
// successful sign or transfer accept. A player who never listed is not an
// error; the hook is a no-op then.
func (s *FreeAgentService) RemoveOnSign(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.UserID) error {
	if ctx == nil {
		return ErrNilContext
	}

	err := s.repo.DeleteListing(ctx, nil, guildID, userID)
	if err != nil && !errors.Is(err, freeagentdb.ErrNotFound) {
		return fmt.Errorf("failed to clear listing: %w", err)
	}

	config, err := s.configs.GetConfig(ctx, nil, guildID)
	if err != nil {
		if errors.Is(err, guildconfigdb.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to read guild config: %w", err)
	}
	if config.FreeAgentRoleID == "" {
		return nil
	}
	if err := s.roles.RevokeRole(ctx, guildID, userID, config.FreeAgentRoleID); err != nil {
		return fmt.Errorf("failed to revoke free agent role: %w", err)
	}

	s.deps.Logger.InfoContext(ctx, "Cleared free agent listing on sign",
		attr.String("guild_id", string(guildID)),
		attr.String("user_id", string(userID)))
	return nil
}
