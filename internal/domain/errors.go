package domain

import "errors"

// Caller contract violations. None of these are transient; do not retry.
var (
	ErrInvalidPath       = errors.New("path must contain at least one waypoint")
	ErrDuplicateWaypoint = errors.New("waypoint appears more than once in path")
	ErrWaypointNotFound  = errors.New("waypoint not found in path")
	ErrMissingSuccessor  = errors.New("waypoint has no successor in path")
	ErrPathNotFound      = errors.New("path not found")
)
