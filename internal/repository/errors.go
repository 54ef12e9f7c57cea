// Package repository defines error types that are reused across multiple
// repositories.  These sentinel values let higher layers distinguish an
// absent row from a failing store: the profile handler maps
// ErrProfileNotFound to HTTP 404 while any other error becomes a sanitized
// 500, and the resolver's fallback chain advances to the legacy store on
// either.
package repository

import "errors"

// ErrProfileNotFound is returned when no t106_user_profile row exists for
// the requested user id.
var ErrProfileNotFound = errors.New("profile not found")

// ErrLegacyUserNotFound is returned when no legacy users row exists for the
// requested user id.
var ErrLegacyUserNotFound = errors.New("legacy user not found")
