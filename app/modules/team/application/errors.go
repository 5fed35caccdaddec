package teamservice

import "errors"

// Domain errors for the team registry. Handlers treat these as normal
// rejections (publish failure event, ack message), never as faults.
var (
	ErrInvalidGuildID = errors.New("invalid guild ID")
	ErrInvalidRoleID  = errors.New("invalid role ID")
	ErrMissingLogo    = errors.New("team logo is required")
	ErrTeamNotFound   = errors.New("role is not a registered team")
	ErrNoTeams        = errors.New("no teams are registered yet")
	ErrNilContext     = errors.New("context cannot be nil")
)
