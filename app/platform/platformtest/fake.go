// Package platformtest provides a programmable platform.Client stub for
// service tests. Defaults model a healthy gateway: members exist, role
// mutations succeed, DMs deliver.
package platformtest

import (
	"context"
	"fmt"
	"sync"

	"github.com/Harbour-City-League/roster-bot/app/platform"
	sharedtypes "github.com/Harbour-City-League/roster-bot/app/shared/types"
)

// FakeClient implements platform.Client with per-method overrides.
type FakeClient struct {
	mu    sync.Mutex
	trace []string

	MemberRolesFunc     func(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.UserID) ([]sharedtypes.RoleID, error)
	MembersWithRoleFunc func(ctx context.Context, guildID sharedtypes.GuildID, roleID sharedtypes.RoleID) ([]sharedtypes.UserID, error)
	MemberPresentFunc   func(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.UserID) (bool, error)
	GrantRoleFunc       func(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.UserID, roleID sharedtypes.RoleID) error
	RevokeRoleFunc      func(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.UserID, roleID sharedtypes.RoleID) error
	DirectMessageFunc   func(ctx context.Context, userID sharedtypes.UserID, content string) (bool, error)
	DeliverApprovalFunc func(ctx context.Context, req platform.ApprovalRequest) error
}

// NewFakeClient initializes a FakeClient with an empty trace.
func NewFakeClient() *FakeClient {
	return &FakeClient{trace: []string{}}
}

// Trace returns the sequence of calls made to the fake.
func (f *FakeClient) Trace() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeClient) record(step string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.trace = append(f.trace, step)
}

func (f *FakeClient) MemberRoles(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.UserID) ([]sharedtypes.RoleID, error) {
	f.record("MemberRoles " + string(userID))
	if f.MemberRolesFunc != nil {
		return f.MemberRolesFunc(ctx, guildID, userID)
	}
	return nil, nil
}

func (f *FakeClient) MembersWithRole(ctx context.Context, guildID sharedtypes.GuildID, roleID sharedtypes.RoleID) ([]sharedtypes.UserID, error) {
	f.record("MembersWithRole " + string(roleID))
	if f.MembersWithRoleFunc != nil {
		return f.MembersWithRoleFunc(ctx, guildID, roleID)
	}
	return nil, nil
}

func (f *FakeClient) MemberPresent(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.UserID) (bool, error) {
	f.record("MemberPresent " + string(userID))
	if f.MemberPresentFunc != nil {
		return f.MemberPresentFunc(ctx, guildID, userID)
	}
	return true, nil
}

func (f *FakeClient) GrantRole(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.UserID, roleID sharedtypes.RoleID) error {
	f.record(fmt.Sprintf("GrantRole %s %s", userID, roleID))
	if f.GrantRoleFunc != nil {
		return f.GrantRoleFunc(ctx, guildID, userID, roleID)
	}
	return nil
}

func (f *FakeClient) RevokeRole(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.UserID, roleID sharedtypes.RoleID) error {
	f.record(fmt.Sprintf("RevokeRole %s %s", userID, roleID))
	if f.RevokeRoleFunc != nil {
		return f.RevokeRoleFunc(ctx, guildID, userID, roleID)
	}
	return nil
}

func (f *FakeClient) DirectMessage(ctx context.Context, userID sharedtypes.UserID, content string) (bool, error) {
	f.record("DirectMessage " + string(userID))
	if f.DirectMessageFunc != nil {
		return f.DirectMessageFunc(ctx, userID, content)
	}
	return true, nil
}

func (f *FakeClient) DeliverApproval(ctx context.Context, req platform.ApprovalRequest) error {
	f.record("DeliverApproval " + string(req.ApproverID))
	if f.DeliverApprovalFunc != nil {
		return f.DeliverApprovalFunc(ctx, req)
	}
	return nil
}

var _ platform.Client = (*FakeClient)(nil)
