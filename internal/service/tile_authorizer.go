package service

import (
	"context"
	"errors"

	"github.com/spjimr/classroom-companion/internal/model"
)

// ErrEmptyRole is returned when TilesFor is called without a role code.
var ErrEmptyRole = errors.New("empty role code")

// TileStore is the slice of the repository the authorizer needs.
type TileStore interface {
	ListByRole(ctx context.Context, roleCode string) ([]model.TileAccess, error)
	ListAll(ctx context.Context) ([]model.TileAccess, error)
}

// TileAuthorizer answers "which dashboard tiles may this role see".
type TileAuthorizer struct {
	store TileStore
}

func NewTileAuthorizer(store TileStore) *TileAuthorizer {
	return &TileAuthorizer{store: store}
}

// TilesFor returns the viewable tiles for a role code, in stable id order.
// The match is exact: callers normalize the code first.  An unknown role
// yields an empty slice, not an error.  Duplicate (role_code, tile_key)
// rows are passed through untouched; t104 enforces no uniqueness and
// de-duplicating here would hide the upstream data problem.
func (a *TileAuthorizer) TilesFor(ctx context.Context, roleCode string) ([]model.TileAccess, error) {
	if roleCode == "" {
		return nil, ErrEmptyRole
	}
	return a.store.ListByRole(ctx, roleCode)
}

// AccessMatrix returns every grant row including withheld ones.  Backs the
// admin endpoint behind the DEVELOPER role.
func (a *TileAuthorizer) AccessMatrix(ctx context.Context) ([]model.TileAccess, error) {
	return a.store.ListAll(ctx)
}
