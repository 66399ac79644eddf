// Package driven defines the port interfaces the application depends on.
package driven

import "errors"

// ErrUnavailable is returned by operations whose backing service was never
// configured (missing credentials). It signals "degrade gracefully", not a
// transient transport failure.
var ErrUnavailable = errors.New("service unavailable: not configured")

// ErrInvalidCredentials is returned by sign-in when the backend rejects the
// email/password pair.
var ErrInvalidCredentials = errors.New("invalid email or password")
