package handler

import (
	"context"  // provides context with cancellation for DB calls
	"errors"   // sentinel comparison for repository errors
	"net/http" // HTTP status codes and primitives
	"time"     // timeouts for DB calls

	"github.com/labstack/echo/v4" // Echo framework for HTTP routing
	"github.com/rs/zerolog"       // structured logging for absorbed store errors

	"github.com/spjimr/classroom-companion/internal/middleware"
	"github.com/spjimr/classroom-companion/internal/repository"
	"github.com/spjimr/classroom-companion/internal/service"
)

// ProfileHandler bundles dependencies for the profile endpoints.
type ProfileHandler struct {
	Resolver *service.ProfileResolver
	Log      zerolog.Logger
}

func NewProfileHandler(r *service.ProfileResolver, log zerolog.Logger) *ProfileHandler {
	return &ProfileHandler{Resolver: r, Log: log.With().Str("component", "profile_handler").Logger()}
}

type profileResp struct {
	PrimaryRole  string `json:"primary_role"`
	AccessStatus string `json:"access_status"`
}

type roleResp struct {
	Role string `json:"role"`
}

// GetProfile returns the caller's t106 profile row verbatim.  Identity
// comes from the Identity middleware (bearer token, or the documented
// x-user-id dev header).  The missing-identity error body is part of the
// frontend contract and must not change.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	uid := middleware.UserID(c)
	if uid == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Missing x-user-id header"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	p, err := h.Resolver.Resolve(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "profile not found"})
		}
		// Store failures are logged with detail and sanitized outward.
		h.Log.Error().Err(err).Str("user_id", uid).Msg("profile lookup failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "profile lookup failed"})
	}
	return c.JSON(http.StatusOK, profileResp{PrimaryRole: p.PrimaryRole, AccessStatus: p.AccessStatus})
}

// GetRole returns the caller's effective role via the migration-era
// fallback chain (t106 -> legacy users -> USER), normalized to a canonical
// code.  Lookup failures are absorbed by the resolver, so this endpoint
// only ever fails for a missing identity.
func (h *ProfileHandler) GetRole(c echo.Context) error {
	uid := middleware.UserID(c)
	if uid == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Missing x-user-id header"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	// The resolver only errors on an empty user id, already rejected above;
	// keep the mapping honest if that invariant ever shifts.
	role, err := h.Resolver.ResolveRole(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}
	return c.JSON(http.StatusOK, roleResp{Role: role})
}
