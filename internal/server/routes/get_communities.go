package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/orglens/backend/internal/server/middleware"
)

// GetCommunitiesHandler returns the communities of the most recent detection
// run, including their members.
func GetCommunitiesHandler(c echo.Context) error {
	storage := c.(*middleware.AppContext).App.Storage
	ctx := c.Request().Context()

	communities, err := storage.GetLatestCommunities(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	return c.JSON(http.StatusOK, communities)
}
