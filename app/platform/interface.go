// Package platform defines the capabilities the backend borrows from the
// chat-platform gateway: member introspection, role mutation, direct
// messages and interactive approval prompts. Everything here is externally
// owned state; the backend never caches it beyond a single request.
package platform

import (
	"context"
	"time"

	sharedtypes "github.com/Harbour-City-League/roster-bot/app/shared/types"
)

// Directory exposes read-only member and role introspection.
type Directory interface {
	// MemberRoles returns the roles the member currently holds, or
	// ErrMemberNotFound when they left the guild.
	MemberRoles(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.UserID) ([]sharedtypes.RoleID, error)
	// MembersWithRole returns every member holding the role.
	MembersWithRole(ctx context.Context, guildID sharedtypes.GuildID, roleID sharedtypes.RoleID) ([]sharedtypes.UserID, error)
	// MemberPresent reports whether the user is still in the guild.
	MemberPresent(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.UserID) (bool, error)
}

// RoleManager grants and revokes platform roles.
type RoleManager interface {
	GrantRole(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.UserID, roleID sharedtypes.RoleID) error
	RevokeRole(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.UserID, roleID sharedtypes.RoleID) error
}

// Messenger delivers direct notifications. Delivery failure is a result,
// not an error: delivered=false with a nil error means the user could not
// be reached (closed DMs, left the guild) and the caller should carry on.
type Messenger interface {
	DirectMessage(ctx context.Context, userID sharedtypes.UserID, content string) (delivered bool, err error)
}

// ApprovalRequest is the interactive prompt shown to a transfer approver.
type ApprovalRequest struct {
	OfferID     string
	GuildID     sharedtypes.GuildID
	ApproverID  sharedtypes.UserID
	RequesterID sharedtypes.UserID
	PlayerID    sharedtypes.UserID
	FromTeam    sharedtypes.RoleID
	ToTeam      sharedtypes.RoleID
	ExpiresAt   time.Time
}

// Prompter delivers interactive approval prompts. A returned error means
// the prompt never reached the approver and the proposal must be abandoned.
type Prompter interface {
	DeliverApproval(ctx context.Context, req ApprovalRequest) error
}

// Client bundles every gateway capability.
type Client interface {
	Directory
	RoleManager
	Messenger
	Prompter
}
