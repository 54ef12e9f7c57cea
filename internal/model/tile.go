package model

// TileAccess represents a row in the `t104_role_tile_access` table.  Each
// row grants (or withholds, via CanView) one dashboard tile to one role.
// There is no uniqueness constraint on (role_code, tile_key): duplicate
// grants are possible and consumers must tolerate them.  ID doubles as the
// sort key; t104 has no denormalized display-order column yet, so ordering
// is stable but not display-meaningful.
type TileAccess struct {
	ID        uint64 // t104_role_tile_access.id
	RoleCode  string // t104_role_tile_access.role_code
	TileKey   string // t104_role_tile_access.tile_key
	TileLabel string // t104_role_tile_access.tile_label
	CanView   bool   // t104_role_tile_access.can_view
}
