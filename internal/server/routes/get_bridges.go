package routes

import (
	"net/http"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"

	"github.com/orglens/backend/internal/server/middleware"
	"github.com/orglens/backend/pkg/influence"
)

// GetBridgesHandler returns the top bridge actors of the most recent
// detection run.
func GetBridgesHandler(c echo.Context) error {
	type getBridgesParams struct {
		Limit int `query:"limit" validate:"omitempty,min=1,max=100"`
	}

	params := new(getBridgesParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}
	if params.Limit == 0 {
		params.Limit = influence.DefaultConfig().BridgeLimit
	}

	storage := c.(*middleware.AppContext).App.Storage
	ctx := c.Request().Context()

	bridges, err := storage.GetLatestBridges(ctx, params.Limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	return c.JSON(http.StatusOK, bridges)
}
