package util

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrEmailRegistered  = errors.New("email already registered")
	ErrUsernameTaken    = errors.New("username already taken")
	ErrRoadmapNotFound  = errors.New("roadmap not found")
	ErrPermissionDenied = errors.New("permission denied")

	// Generation pipeline failures. Both are absorbed by the orchestrator,
	// which substitutes fallback content instead of surfacing them.
	ErrUpstreamUnavailable = errors.New("upstream model unavailable")
	ErrMalformedOutput     = errors.New("malformed model output")
)
