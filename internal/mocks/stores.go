// Package mocks provides in-memory implementations of the store interfaces
// used by the resolver and authorizer.  They reproduce real store behavior
// (filtering, ordering, not-found sentinels) so tests exercise component
// logic rather than stubbed answers.
package mocks

import (
	"context"
	"errors"
	"sort"

	"github.com/spjimr/classroom-companion/internal/model"
	"github.com/spjimr/classroom-companion/internal/repository"
)

// ErrStoreDown simulates an unreachable backend.
var ErrStoreDown = errors.New("store unavailable")

// ProfileStore is an in-memory stand-in for repository.ProfileRepo.
// FailPrimary and FailLegacy force the respective lookups to error,
// exercising the fallback chain.
type ProfileStore struct {
	Profiles    map[string]model.UserProfile // keyed by user_id
	LegacyRoles map[string]string            // keyed by legacy users.id
	FailPrimary bool
	FailLegacy  bool
}

func NewProfileStore() *ProfileStore {
	return &ProfileStore{
		Profiles:    make(map[string]model.UserProfile),
		LegacyRoles: make(map[string]string),
	}
}

func (s *ProfileStore) GetByUserID(_ context.Context, userID string) (model.UserProfile, error) {
	if s.FailPrimary {
		return model.UserProfile{}, ErrStoreDown
	}
	p, ok := s.Profiles[userID]
	if !ok {
		return model.UserProfile{}, repository.ErrProfileNotFound
	}
	return p, nil
}

func (s *ProfileStore) LegacyRoleByUserID(_ context.Context, userID string) (string, error) {
	if s.FailLegacy {
		return "", ErrStoreDown
	}
	role, ok := s.LegacyRoles[userID]
	if !ok {
		return "", repository.ErrLegacyUserNotFound
	}
	return role, nil
}

// TileStore is an in-memory stand-in for repository.TileRepo.  ListByRole
// applies the same predicate and ordering as the SQL query.
type TileStore struct {
	Rows []model.TileAccess
	Fail bool
}

func (s *TileStore) ListByRole(_ context.Context, roleCode string) ([]model.TileAccess, error) {
	if s.Fail {
		return nil, ErrStoreDown
	}
	out := make([]model.TileAccess, 0)
	for _, r := range s.Rows {
		if r.RoleCode == roleCode && r.CanView {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *TileStore) ListAll(_ context.Context) ([]model.TileAccess, error) {
	if s.Fail {
		return nil, ErrStoreDown
	}
	out := make([]model.TileAccess, len(s.Rows))
	copy(out, s.Rows)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
