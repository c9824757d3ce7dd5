package domain

import "errors"

var (
	// Remote failures, one per kind callers branch on.
	ErrTransport    = errors.New("commerce api unreachable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrRemote       = errors.New("commerce api error")

	ErrLoginRequired = errors.New("login required")
	ErrAccessDenied  = errors.New("access denied")
)
