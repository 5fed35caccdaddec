package guildconfigservice

import "errors"

// Domain errors for guild configuration. Handlers treat these as normal
// rejections (publish failure event, ack message), never as faults.
var (
	ErrInvalidGuildID = errors.New("invalid guild ID")
	ErrMissingRole    = errors.New("manager and assistant roles are required")
	ErrMissingChannel = errors.New("announcement channel is required")
	ErrConfigNotFound = errors.New("guild is not set up yet")
	ErrNilContext     = errors.New("context cannot be nil")
)
