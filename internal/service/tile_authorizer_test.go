package service_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/spjimr/classroom-companion/internal/mocks"
	"github.com/spjimr/classroom-companion/internal/model"
	"github.com/spjimr/classroom-companion/internal/service"
)

func programOfficeRows() []model.TileAccess {
	return []model.TileAccess{
		{ID: 1, RoleCode: "PROGRAM_OFFICE", TileKey: "onboard_batch", TileLabel: "Onboard Batch", CanView: true},
		{ID: 2, RoleCode: "PROGRAM_OFFICE", TileKey: "settings", TileLabel: "Settings", CanView: false},
		{ID: 3, RoleCode: "DEVELOPER", TileKey: "system_settings", TileLabel: "System Settings", CanView: true},
	}
}

func TestTilesFor_FiltersHiddenAndOtherRoles(t *testing.T) {
	a := service.NewTileAuthorizer(&mocks.TileStore{Rows: programOfficeRows()})

	tiles, err := a.TilesFor(context.Background(), "PROGRAM_OFFICE")
	if err != nil {
		t.Fatalf("TilesFor returned error: %v", err)
	}
	if len(tiles) != 1 {
		t.Fatalf("got %d tiles, want 1", len(tiles))
	}
	if tiles[0].TileKey != "onboard_batch" {
		t.Errorf("tile_key = %q, want %q", tiles[0].TileKey, "onboard_batch")
	}
}

func TestTilesFor_UnknownRoleIsEmptyNotError(t *testing.T) {
	a := service.NewTileAuthorizer(&mocks.TileStore{Rows: programOfficeRows()})

	tiles, err := a.TilesFor(context.Background(), "EXAM_OFFICE")
	if err != nil {
		t.Fatalf("TilesFor returned error: %v", err)
	}
	if len(tiles) != 0 {
		t.Errorf("got %d tiles, want 0", len(tiles))
	}
}

func TestTilesFor_EmptyRole(t *testing.T) {
	a := service.NewTileAuthorizer(&mocks.TileStore{})
	if _, err := a.TilesFor(context.Background(), ""); !errors.Is(err, service.ErrEmptyRole) {
		t.Errorf("err = %v, want ErrEmptyRole", err)
	}
}

func TestTilesFor_StableOrderAndIdempotence(t *testing.T) {
	rows := []model.TileAccess{
		{ID: 7, RoleCode: "DEVELOPER", TileKey: "attendance_hub", CanView: true},
		{ID: 2, RoleCode: "DEVELOPER", TileKey: "onboard_batch", CanView: true},
		{ID: 5, RoleCode: "DEVELOPER", TileKey: "manage_courses", CanView: true},
	}
	a := service.NewTileAuthorizer(&mocks.TileStore{Rows: rows})

	first, err := a.TilesFor(context.Background(), "DEVELOPER")
	if err != nil {
		t.Fatalf("TilesFor returned error: %v", err)
	}
	wantKeys := []string{"onboard_batch", "manage_courses", "attendance_hub"}
	for i, k := range wantKeys {
		if first[i].TileKey != k {
			t.Fatalf("position %d = %q, want %q (id-ascending order)", i, first[i].TileKey, k)
		}
	}

	second, err := a.TilesFor(context.Background(), "DEVELOPER")
	if err != nil {
		t.Fatalf("TilesFor returned error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("repeated calls with no writes must yield identical ordered output")
	}
}

func TestTilesFor_DuplicateGrantsPassThrough(t *testing.T) {
	rows := []model.TileAccess{
		{ID: 1, RoleCode: "TA", TileKey: "attendance_hub", CanView: true},
		{ID: 2, RoleCode: "TA", TileKey: "attendance_hub", CanView: true},
	}
	a := service.NewTileAuthorizer(&mocks.TileStore{Rows: rows})

	tiles, err := a.TilesFor(context.Background(), "TA")
	if err != nil {
		t.Fatalf("TilesFor returned error: %v", err)
	}
	if len(tiles) != 2 {
		t.Errorf("got %d tiles, want 2 (duplicates are not collapsed)", len(tiles))
	}
}

func TestAccessMatrix_IncludesWithheldRows(t *testing.T) {
	a := service.NewTileAuthorizer(&mocks.TileStore{Rows: programOfficeRows()})

	rows, err := a.AccessMatrix(context.Background())
	if err != nil {
		t.Fatalf("AccessMatrix returned error: %v", err)
	}
	if len(rows) != 3 {
		t.Errorf("got %d rows, want 3", len(rows))
	}
}
