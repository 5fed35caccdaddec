package freeagentservice

import "errors"

// Domain errors for the free-agent board. Handlers treat these as normal
// rejections (publish failure event, ack message), never as faults.
var (
	ErrInvalidGuildID  = errors.New("invalid guild ID")
	ErrInvalidUserID   = errors.New("invalid user ID")
	ErrInvalidRegion   = errors.New("unknown region")
	ErrInvalidPosition = errors.New("unknown position")
	ErrNotListed       = errors.New("you are not on the free agent board")
	ErrNilContext      = errors.New("context cannot be nil")
)
