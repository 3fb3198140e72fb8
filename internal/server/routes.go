package server

import (
	"github.com/orglens/backend/internal/server/routes"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo) {
	// Health check route
	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	apiRoutes := e.Group("/api")

	// Influence score routes
	apiRoutes.GET("/scores", routes.GetScoresHandler)

	// Network graph routes
	apiRoutes.GET("/graph", routes.GetGraphHandler)
	apiRoutes.GET("/graph/path", routes.GetGraphPathHandler)

	// Graph analysis routes
	apiRoutes.GET("/communities", routes.GetCommunitiesHandler)
	apiRoutes.GET("/silos", routes.GetSilosHandler)
	apiRoutes.GET("/bridges", routes.GetBridgesHandler)

	// Recompute route
	apiRoutes.POST("/recalculate", routes.RecalculateHandler)
}
