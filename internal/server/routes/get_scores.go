package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/orglens/backend/internal/server/middleware"
	"github.com/orglens/backend/pkg/influence"
)

type scoreResponse struct {
	ActorID         int64   `json:"id"`
	Name            string  `json:"name"`
	Role            string  `json:"role"`
	Department      string  `json:"department"`
	Country         string  `json:"country"`
	EmailScore      float64 `json:"email_score"`
	TeamsScore      float64 `json:"teams_score"`
	UnifiedScore    float64 `json:"unified_score"`
	DominantChannel string  `json:"dominant_channel"`
	Rank            int     `json:"rank"`
	Badge           string  `json:"badge"`
}

// GetScoresHandler returns the current ranked influence scores. Scores are
// stored at full precision and rounded to one decimal here.
func GetScoresHandler(c echo.Context) error {
	storage := c.(*middleware.AppContext).App.Storage
	ctx := c.Request().Context()

	scores, err := storage.GetScores(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	res := make([]scoreResponse, len(scores))
	for i, s := range scores {
		res[i] = scoreResponse{
			ActorID:         s.ActorID,
			Name:            s.Name,
			Role:            s.Role,
			Department:      s.Department,
			Country:         s.Country,
			EmailScore:      influence.Round1(s.EmailScore),
			TeamsScore:      influence.Round1(s.TeamsScore),
			UnifiedScore:    influence.Round1(s.UnifiedScore),
			DominantChannel: s.DominantChannel,
			Rank:            s.Rank,
			Badge:           s.Badge,
		}
	}

	return c.JSON(http.StatusOK, res)
}
