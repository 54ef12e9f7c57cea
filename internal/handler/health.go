package handler // declare the package name; contains HTTP handlers

import (
	"net/http" // net/http provides status codes and response helpers

	"github.com/labstack/echo/v4" // echo is the web framework used for this project
)

// Root answers the bare-path probe the frontend uses to check the API is
// reachable before rendering the sign-in page.
func Root(c echo.Context) error {
	return c.String(http.StatusOK, "Classroom Companion backend is running")
}

// Health is a simple health-check endpoint used by load balancers and
// monitoring systems to verify that the service is running.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
