package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/spjimr/classroom-companion/internal/handler"
	"github.com/spjimr/classroom-companion/internal/identity"
	"github.com/spjimr/classroom-companion/internal/middleware"
	"github.com/spjimr/classroom-companion/internal/model"
)

// RegisterRoutes registers routes that do not require identity on the
// provided Echo instance: the reachability banner and the health check.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/", handler.Root)
	e.GET("/healthz", handler.Health)
}

// RegisterAPI wires the dashboard read endpoints.  Everything under /api
// passes through the Identity middleware so handlers see a resolved caller
// when one exists; the individual handlers decide whether identity is
// required (the tiles endpoint takes the role from its query parameter and
// works unauthenticated).
func RegisterAPI(e *echo.Echo, p *handler.ProfileHandler, t *handler.TileHandler, v identity.Verifier) {
	api := e.Group("/api")
	api.Use(middleware.Identity(v))

	api.GET("/auth/profile", p.GetProfile)
	api.GET("/auth/role", p.GetRole)
	api.GET("/dashboard/tiles", t.GetTiles)

	// Admin surface: a verified DEVELOPER session only.  The x-user-id dev
	// header carries no role claim, so it can never reach these routes.
	admin := api.Group("/admin")
	admin.Use(middleware.RequireUser())
	admin.Use(middleware.RequireRole(model.RoleDeveloper))
	admin.GET("/role-tiles", t.GetAccessMatrix)
}
