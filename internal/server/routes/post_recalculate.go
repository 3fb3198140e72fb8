package routes

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/orglens/backend/internal/queue"
	"github.com/orglens/backend/internal/server/middleware"
)

// RecalculateHandler publishes a recompute request. The worker picks it up
// and replaces the derived snapshot; the request returns immediately.
func RecalculateHandler(c echo.Context) error {
	ch := c.(*middleware.AppContext).App.Queue

	correlationID, err := gonanoid.New()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	msg := queue.QueueRecomputeMsg{
		Message:       "Recompute requested",
		CorrelationID: correlationID,
		RequestedBy:   c.RealIP(),
	}
	msgBytes, err := json.Marshal(msg)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	if err := queue.PublishFIFO(ch, queue.RecomputeQueue, msgBytes); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to queue recompute"})
	}

	return c.JSON(http.StatusAccepted, map[string]string{
		"status":         "queued",
		"correlation_id": correlationID,
	})
}
