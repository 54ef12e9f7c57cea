package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/spjimr/classroom-companion/internal/service"
)

// TileHandler bundles dependencies for the dashboard tile endpoints.
type TileHandler struct {
	Authorizer *service.TileAuthorizer
	Log        zerolog.Logger
}

func NewTileHandler(a *service.TileAuthorizer, log zerolog.Logger) *TileHandler {
	return &TileHandler{Authorizer: a, Log: log.With().Str("component", "tile_handler").Logger()}
}

// tileResp is the sanitized tile row exposed to the dashboard.  Internal
// columns (id, role_code, can_view) stay out of the list response.
type tileResp struct {
	TileKey   string `json:"tile_key"`
	TileLabel string `json:"tile_label"`
}

// matrixResp is the full grant row exposed to DEVELOPER sessions via the
// admin access-matrix endpoint.
type matrixResp struct {
	ID        uint64 `json:"id"`
	RoleCode  string `json:"role_code"`
	TileKey   string `json:"tile_key"`
	TileLabel string `json:"tile_label"`
	CanView   bool   `json:"can_view"`
}

// GetTiles lists the tiles the given role may view, in stable id order.
// The role code is matched exactly as supplied; clients normalize casing
// before calling.  An unknown role is an empty list, not an error, and the
// missing-parameter body is part of the frontend contract.
func (h *TileHandler) GetTiles(c echo.Context) error {
	role := strings.TrimSpace(c.QueryParam("role"))
	if role == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Missing role query parameter"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	tiles, err := h.Authorizer.TilesFor(ctx, role)
	if err != nil {
		h.Log.Error().Err(err).Str("role", role).Msg("tile lookup failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "tile lookup failed"})
	}

	resp := make([]tileResp, 0, len(tiles))
	for _, t := range tiles {
		resp = append(resp, tileResp{TileKey: t.TileKey, TileLabel: t.TileLabel})
	}
	return c.JSON(http.StatusOK, resp)
}

// GetAccessMatrix dumps every grant row, including withheld ones.  Routed
// behind RequireRole(DEVELOPER); backs the System Settings tile.
func (h *TileHandler) GetAccessMatrix(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rows, err := h.Authorizer.AccessMatrix(ctx)
	if err != nil {
		h.Log.Error().Err(err).Msg("access matrix lookup failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "tile lookup failed"})
	}

	resp := make([]matrixResp, 0, len(rows))
	for _, t := range rows {
		resp = append(resp, matrixResp{ID: t.ID, RoleCode: t.RoleCode, TileKey: t.TileKey, TileLabel: t.TileLabel, CanView: t.CanView})
	}
	return c.JSON(http.StatusOK, resp)
}
