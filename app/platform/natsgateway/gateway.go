// Package natsgateway implements platform.Client over NATS request/reply
// against the chat-gateway process. Each call is attempted exactly once
// with a per-call timeout; there is no retry policy.
package natsgateway

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	nc "github.com/nats-io/nats.go"
	"golang.org/x/time/rate"

	"github.com/Harbour-City-League/roster-bot/app/platform"
	"github.com/Harbour-City-League/roster-bot/app/shared/attr"
	sharedtypes "github.com/Harbour-City-League/roster-bot/app/shared/types"
)

// Request subjects served by the gateway process.
const (
	subjectMemberRoles     = "gateway.directory.member_roles"
	subjectMembersWithRole = "gateway.directory.members_with_role"
	subjectMemberPresent   = "gateway.directory.member_present"
	subjectGrantRole       = "gateway.role.grant"
	subjectRevokeRole      = "gateway.role.revoke"
	subjectDirectMessage   = "gateway.dm.send"
	subjectDeliverApproval = "gateway.prompt.approval"
)

// Gateway is the NATS-backed platform.Client.
type Gateway struct {
	conn      *nc.Conn
	logger    *slog.Logger
	timeout   time.Duration
	dmLimiter *rate.Limiter
}

var _ platform.Client = (*Gateway)(nil)

// New builds a Gateway. dmRate <= 0 disables DM pacing.
func New(conn *nc.Conn, logger *slog.Logger, timeout time.Duration, dmRate float64, dmBurst int) *Gateway {
	var limiter *rate.Limiter
	if dmRate > 0 {
		limiter = rate.NewLimiter(rate.Limit(dmRate), dmBurst)
	}
	return &Gateway{
		conn:      conn,
		logger:    logger,
		timeout:   timeout,
		dmLimiter: limiter,
	}
}

type memberRolesRequest struct {
	GuildID sharedtypes.GuildID `json:"guild_id"`
	UserID  sharedtypes.UserID  `json:"user_id"`
}

type membersWithRoleRequest struct {
	GuildID sharedtypes.GuildID `json:"guild_id"`
	RoleID  sharedtypes.RoleID  `json:"role_id"`
}

type roleMutationRequest struct {
	GuildID sharedtypes.GuildID `json:"guild_id"`
	UserID  sharedtypes.UserID  `json:"user_id"`
	RoleID  sharedtypes.RoleID  `json:"role_id"`
}

type directMessageRequest struct {
	UserID  sharedtypes.UserID `json:"user_id"`
	Content string             `json:"content"`
}

type approvalRequest struct {
	OfferID     string              `json:"offer_id"`
	GuildID     sharedtypes.GuildID `json:"guild_id"`
	ApproverID  sharedtypes.UserID  `json:"approver_id"`
	RequesterID sharedtypes.UserID  `json:"requester_id"`
	PlayerID    sharedtypes.UserID  `json:"player_id"`
	FromTeam    sharedtypes.RoleID  `json:"from_team"`
	ToTeam      sharedtypes.RoleID  `json:"to_team"`
	ExpiresAt   time.Time           `json:"expires_at"`
}

type gatewayResponse struct {
	OK        bool                 `json:"ok"`
	Error     string               `json:"error,omitempty"`
	NotFound  bool                 `json:"not_found,omitempty"`
	Delivered bool                 `json:"delivered,omitempty"`
	Present   bool                 `json:"present,omitempty"`
	RoleIDs   []sharedtypes.RoleID `json:"role_ids,omitempty"`
	UserIDs   []sharedtypes.UserID `json:"user_ids,omitempty"`
}

// request performs one request/reply round trip with the configured timeout.
func (g *Gateway) request(ctx context.Context, subject string, payload any) (*gatewayResponse, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal gateway request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	msg, err := g.conn.RequestWithContext(ctx, subject, data)
	if err != nil {
		return nil, fmt.Errorf("gateway request %s failed: %w", subject, err)
	}

	var resp gatewayResponse
	if err := json.Unmarshal(msg.Data, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode gateway response for %s: %w", subject, err)
	}
	return &resp, nil
}

func (g *Gateway) MemberRoles(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.UserID) ([]sharedtypes.RoleID, error) {
	resp, err := g.request(ctx, subjectMemberRoles, memberRolesRequest{GuildID: guildID, UserID: userID})
	if err != nil {
		return nil, err
	}
	if resp.NotFound {
		return nil, platform.ErrMemberNotFound
	}
	if !resp.OK {
		return nil, fmt.Errorf("gateway rejected member_roles: %s", resp.Error)
	}
	return resp.RoleIDs, nil
}

func (g *Gateway) MembersWithRole(ctx context.Context, guildID sharedtypes.GuildID, roleID sharedtypes.RoleID) ([]sharedtypes.UserID, error) {
	resp, err := g.request(ctx, subjectMembersWithRole, membersWithRoleRequest{GuildID: guildID, RoleID: roleID})
	if err != nil {
		return nil, err
	}
	if !resp.OK {
		return nil, fmt.Errorf("gateway rejected members_with_role: %s", resp.Error)
	}
	return resp.UserIDs, nil
}

func (g *Gateway) MemberPresent(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.UserID) (bool, error) {
	resp, err := g.request(ctx, subjectMemberPresent, memberRolesRequest{GuildID: guildID, UserID: userID})
	if err != nil {
		return false, err
	}
	if !resp.OK {
		return false, fmt.Errorf("gateway rejected member_present: %s", resp.Error)
	}
	return resp.Present, nil
}

func (g *Gateway) GrantRole(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.UserID, roleID sharedtypes.RoleID) error {
	resp, err := g.request(ctx, subjectGrantRole, roleMutationRequest{GuildID: guildID, UserID: userID, RoleID: roleID})
	if err != nil {
		return err
	}
	if !resp.OK {
		return fmt.Errorf("gateway rejected role grant: %s", resp.Error)
	}
	return nil
}

func (g *Gateway) RevokeRole(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.UserID, roleID sharedtypes.RoleID) error {
	resp, err := g.request(ctx, subjectRevokeRole, roleMutationRequest{GuildID: guildID, UserID: userID, RoleID: roleID})
	if err != nil {
		return err
	}
	if !resp.OK {
		return fmt.Errorf("gateway rejected role revoke: %s", resp.Error)
	}
	return nil
}

// DirectMessage sends a DM through the gateway. Unreachable recipients are
// reported as delivered=false with no error, so callers can treat delivery
// as a soft failure.
func (g *Gateway) DirectMessage(ctx context.Context, userID sharedtypes.UserID, content string) (bool, error) {
	if g.dmLimiter != nil {
		if err := g.dmLimiter.Wait(ctx); err != nil {
			return false, err
		}
	}

	resp, err := g.request(ctx, subjectDirectMessage, directMessageRequest{UserID: userID, Content: content})
	if err != nil {
		return false, err
	}
	if !resp.OK {
		g.logger.WarnContext(ctx, "Direct message not delivered",
			attr.String("user_id", string(userID)),
			attr.String("reason", resp.Error),
		)
		return false, nil
	}
	return resp.Delivered, nil
}

func (g *Gateway) DeliverApproval(ctx context.Context, req platform.ApprovalRequest) error {
	resp, err := g.request(ctx, subjectDeliverApproval, approvalRequest{
		OfferID:     req.OfferID,
		GuildID:     req.GuildID,
		ApproverID:  req.ApproverID,
		RequesterID: req.RequesterID,
		PlayerID:    req.PlayerID,
		FromTeam:    req.FromTeam,
		ToTeam:      req.ToTeam,
		ExpiresAt:   req.ExpiresAt,
	})
	if err != nil {
		return err
	}
	if !resp.OK {
		return fmt.Errorf("approval prompt not delivered: %s", resp.Error)
	}
	return nil
}
