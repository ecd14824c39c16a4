package publish

import (
	"errors"
	"fmt"
	"net"
	"strings"
)

// ErrAborted is returned when the user declines the overwrite prompt.
var ErrAborted = errors.New("publish aborted by user")

// BuildError means the image could not be produced: missing context,
// bad dockerfile, or a failing build step.
type BuildError struct {
	Unit string
	Ref  string
	Err  error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("build %s (%s): %v", e.Unit, e.Ref, e.Err)
}

func (e *BuildError) Unwrap() error { return e.Err }

// AuthError means the registry rejected our credentials (or their absence).
type AuthError struct {
	Unit string
	Ref  string
	Err  error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("push %s (%s): registry auth: %v", e.Unit, e.Ref, e.Err)
}

func (e *AuthError) Unwrap() error { return e.Err }

// NetworkError means the registry was unreachable.
type NetworkError struct {
	Unit string
	Ref  string
	Err  error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("push %s (%s): registry unreachable: %v", e.Unit, e.Ref, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ConflictError means the registry refused to overwrite an existing
// immutable tag.
type ConflictError struct {
	Unit string
	Ref  string
	Err  error
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("push %s (%s): tag conflict: %v", e.Unit, e.Ref, e.Err)
}

func (e *ConflictError) Unwrap() error { return e.Err }

// classifyPushError sorts a push failure into the taxonomy. Registry errors
// reach us as flattened daemon messages, so the match is textual; transport
// failures are recognized structurally first.
func classifyPushError(unit, ref string, err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return &NetworkError{Unit: unit, Ref: ref, Err: err}
	}

	msg := strings.ToLower(err.Error())
	switch {
	case containsAny(msg,
		"unauthorized",
		"authentication required",
		"no basic auth credentials",
		"denied",
		"forbidden",
	):
		return &AuthError{Unit: unit, Ref: ref, Err: err}
	case containsAny(msg,
		"tag is immutable",
		"already exists",
		"conflict",
	):
		return &ConflictError{Unit: unit, Ref: ref, Err: err}
	case containsAny(msg,
		"connection refused",
		"no such host",
		"network is unreachable",
		"timeout",
		"timed out",
		"tls handshake",
	):
		return &NetworkError{Unit: unit, Ref: ref, Err: err}
	}

	return fmt.Errorf("push %s (%s): %w", unit, ref, err)
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
