package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/orglens/backend/internal/server/middleware"
)

// GetSilosHandler returns the per-department silo metrics of the most recent
// detection run.
func GetSilosHandler(c echo.Context) error {
	storage := c.(*middleware.AppContext).App.Storage
	ctx := c.Request().Context()

	silos, err := storage.GetLatestSilos(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	return c.JSON(http.StatusOK, silos)
}
