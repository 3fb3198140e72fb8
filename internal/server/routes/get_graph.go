package routes

import (
	"net/http"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"

	"github.com/orglens/backend/internal/server/middleware"
	"github.com/orglens/backend/pkg/influence"
)

const defaultMaxNodes = 150

type graphNode struct {
	ID      int64 `json:"id"`
	Cluster int   `json:"cluster"`
}

type graphResponse struct {
	Nodes []graphNode      `json:"nodes"`
	Links []influence.Link `json:"links"`
}

// GetGraphHandler returns the filtered node/edge subgraph for interactive
// clients. Nodes carry a connected-component index for visual clustering.
func GetGraphHandler(c echo.Context) error {
	type getGraphParams struct {
		MaxNodes  int     `query:"max_nodes" validate:"omitempty,min=1"`
		MinWeight float64 `query:"min_weight" validate:"omitempty,min=0,max=1"`
	}

	params := new(getGraphParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}
	if params.MaxNodes == 0 {
		params.MaxNodes = defaultMaxNodes
	}

	storage := c.(*middleware.AppContext).App.Storage
	ctx := c.Request().Context()

	links, err := storage.GetLinks(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	filtered := influence.FilterLinks(links, params.MaxNodes, params.MinWeight)
	clusters := influence.Components(filtered)

	nodes := make([]graphNode, 0, len(clusters))
	for _, id := range influence.Nodes(filtered) {
		nodes = append(nodes, graphNode{ID: id, Cluster: clusters[id]})
	}

	return c.JSON(http.StatusOK, graphResponse{Nodes: nodes, Links: filtered})
}

type pathResponse struct {
	Found    bool     `json:"found"`
	Nodes    []int64  `json:"nodes,omitempty"`
	EdgeKeys []string `json:"edge_keys,omitempty"`
}

// GetGraphPathHandler returns the hop-count shortest path between two actors.
// The path is scoped to the same filtered subgraph the client is displaying,
// so the filter parameters must match the graph request.
func GetGraphPathHandler(c echo.Context) error {
	type getPathParams struct {
		Source    int64   `query:"source" validate:"required"`
		Target    int64   `query:"target" validate:"required"`
		MaxNodes  int     `query:"max_nodes" validate:"omitempty,min=1"`
		MinWeight float64 `query:"min_weight" validate:"omitempty,min=0,max=1"`
	}

	params := new(getPathParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}
	if params.MaxNodes == 0 {
		params.MaxNodes = defaultMaxNodes
	}

	storage := c.(*middleware.AppContext).App.Storage
	ctx := c.Request().Context()

	links, err := storage.GetLinks(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	filtered := influence.FilterLinks(links, params.MaxNodes, params.MinWeight)
	path, found := influence.ShortestPath(filtered, params.Source, params.Target)
	if !found {
		return c.JSON(http.StatusOK, pathResponse{Found: false})
	}

	return c.JSON(http.StatusOK, pathResponse{
		Found:    true,
		Nodes:    path.Nodes,
		EdgeKeys: path.EdgeKeys,
	})
}
