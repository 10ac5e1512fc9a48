package model

import (
	"errors"
	"fmt"
)

// Common errors used across the application
var (
	// User errors
	ErrUserNotFound = errors.New("user not found")

	// Game errors
	ErrGameNotFound  = errors.New("game not found")
	ErrGameLocked    = errors.New("game is locked for picks")
	ErrUnknownPlayer = errors.New("player is not on the game roster")

	// Pick errors
	ErrPickNotFound = errors.New("pick not found")

	// ErrUpstreamRejected is the sentinel for collaborator-reported
	// failures; match with errors.Is
	ErrUpstreamRejected = errors.New("upstream store rejected the request")
)

// UpstreamError carries the collaborator's reason for a rejected
// request when one was provided
type UpstreamError struct {
	Reason string
	Err    error
}

func (e *UpstreamError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("upstream rejected: %s", e.Reason)
	}
	return "upstream rejected the request"
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Is makes UpstreamError match ErrUpstreamRejected
func (e *UpstreamError) Is(target error) bool {
	return target == ErrUpstreamRejected
}

// NewUpstreamError wraps a collaborator failure with a reason
func NewUpstreamError(reason string, err error) *UpstreamError {
	return &UpstreamError{Reason: reason, Err: err}
}
