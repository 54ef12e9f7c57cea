package repository

import (
	"context"
	"database/sql"

	"github.com/spjimr/classroom-companion/internal/model"
)

// TileRepo reads role-to-tile grants from t104_role_tile_access.
type TileRepo struct{ DB *sql.DB }

func NewTileRepo(db *sql.DB) *TileRepo { return &TileRepo{DB: db} }

// ListByRole returns the viewable tiles for an exact role code, ordered by
// id ascending.  t104 carries no display-order column yet, so id stands in
// as a stable sort key.  Unknown roles simply match zero rows.
func (r *TileRepo) ListByRole(ctx context.Context, roleCode string) ([]model.TileAccess, error) {
	const q = `SELECT id, role_code, tile_key, tile_label, can_view
	           FROM t104_role_tile_access
	           WHERE role_code = $1 AND can_view = TRUE
	           ORDER BY id`
	rows, err := r.DB.QueryContext(ctx, q, roleCode)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tiles := make([]model.TileAccess, 0)
	for rows.Next() {
		var t model.TileAccess
		if err := rows.Scan(&t.ID, &t.RoleCode, &t.TileKey, &t.TileLabel, &t.CanView); err != nil {
			return nil, err
		}
		tiles = append(tiles, t)
	}
	return tiles, rows.Err()
}

// ListAll returns every grant row, including can_view = FALSE ones.  Used
// by the admin access-matrix endpoint.
func (r *TileRepo) ListAll(ctx context.Context) ([]model.TileAccess, error) {
	const q = `SELECT id, role_code, tile_key, tile_label, can_view
	           FROM t104_role_tile_access
	           ORDER BY id`
	rows, err := r.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tiles := make([]model.TileAccess, 0)
	for rows.Next() {
		var t model.TileAccess
		if err := rows.Scan(&t.ID, &t.RoleCode, &t.TileKey, &t.TileLabel, &t.CanView); err != nil {
			return nil, err
		}
		tiles = append(tiles, t)
	}
	return tiles, rows.Err()
}
