package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	domainerrors "skillswap/internal/domain/errors"
)

// APIInfo describes the service on the root endpoints.
type APIInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Docs    string `json:"docs"`
}

// Info serves the API description on / and /api.
func Info(c echo.Context) error {
	return c.JSON(http.StatusOK, APIInfo{
		Name:    "SkillSwap API",
		Version: "1.0.0",
		Docs:    "/api/health",
	})
}

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// pathID parses the numeric :id path parameter.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, domainerrors.BadRequest("id must be a number")
	}

	return id, nil
}
