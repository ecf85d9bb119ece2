package psm

import "errors"

var (
	ErrCalculating       = errors.New("estimation already running")
	ErrSessionClosed     = errors.New("session closed")
	ErrSessionNotFound   = errors.New("session not found")
	ErrUnknownModel      = errors.New("unknown scoring model")
	ErrUnknownMethod     = errors.New("unknown matching method")
	ErrCaliperOutOfRange = errors.New("caliper out of range")
)
