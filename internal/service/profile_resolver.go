// Package service holds the two authorization components behind the
// dashboard API: the profile resolver and the tile authorizer.  Both are
// stateless request/response lookups over the store; there are no retries,
// no caching and no shared mutable state between in-flight calls.
package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/spjimr/classroom-companion/internal/model"
)

// ErrEmptyUserID is returned when a resolver method is called without a
// user identifier.  Handlers translate it into HTTP 400 before any lookup.
var ErrEmptyUserID = errors.New("empty user id")

// ProfileStore is the slice of the repository the resolver needs.  The
// production implementation is *repository.ProfileRepo; tests substitute an
// in-memory store.
type ProfileStore interface {
	GetByUserID(ctx context.Context, userID string) (model.UserProfile, error)
	LegacyRoleByUserID(ctx context.Context, userID string) (string, error)
}

// ProfileResolver answers "what role and access status does this user
// have".  Resolve is the strict variant used by the profile endpoint;
// ResolveRole layers the migration-era fallback chain on top.
type ProfileResolver struct {
	store ProfileStore
	log   zerolog.Logger
}

func NewProfileResolver(store ProfileStore, log zerolog.Logger) *ProfileResolver {
	return &ProfileResolver{store: store, log: log.With().Str("component", "profile_resolver").Logger()}
}

// Resolve performs the strict single-row lookup against t106_user_profile.
// Fields come back verbatim.  Absent rows surface as
// repository.ErrProfileNotFound; anything else is a store failure.
func (r *ProfileResolver) Resolve(ctx context.Context, userID string) (model.UserProfile, error) {
	if userID == "" {
		return model.UserProfile{}, ErrEmptyUserID
	}
	return r.store.GetByUserID(ctx, userID)
}

// ResolveRole returns a usable role for the user no matter what state the
// stores are in.  The chain is:
//
//  1. t106_user_profile.primary_role
//  2. legacy users.role (migration window only)
//  3. model.RoleUser
//
// A failure at any tier is absorbed, logged, and the chain advances:
// authorization degrades to the most restrictive non-empty role rather than
// blocking rendering.  The obtained code is normalized because the two
// stores disagree on casing.
func (r *ProfileResolver) ResolveRole(ctx context.Context, userID string) (string, error) {
	if userID == "" {
		return "", ErrEmptyUserID
	}

	p, err := r.store.GetByUserID(ctx, userID)
	if err == nil {
		return model.NormalizeRole(p.PrimaryRole), nil
	}
	r.log.Warn().Err(err).Str("user_id", userID).Msg("t106 profile lookup failed, trying legacy users table")

	legacyRole, legacyErr := r.store.LegacyRoleByUserID(ctx, userID)
	if legacyErr != nil {
		r.log.Warn().Err(legacyErr).Str("user_id", userID).Msg("legacy lookup failed, defaulting role")
		return model.RoleUser, nil
	}
	return model.NormalizeRole(legacyRole), nil
}
