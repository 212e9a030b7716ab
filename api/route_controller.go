package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/katalvlaran/micromouse/bfs"
	"github.com/katalvlaran/micromouse/maze"
)

// RouteController serves route searches.
type RouteController struct{}

// NewRouteController initializes a RouteController.
func NewRouteController() *RouteController {
	return &RouteController{}
}

// Register registers the route endpoints.
func (rc *RouteController) Register(route *gin.RouterGroup) {
	routes := route.Group("/route")
	{
		routes.POST("", rc.route)
		routes.POST("/distances", rc.distances)
	}
}

// route solves the posted maze and returns the path with its distance field.
func (rc *RouteController) route(ctx *gin.Context) {
	id := uuid.New()
	g, ok := bindMaze(ctx, id)
	if !ok {
		return
	}
	res, err := bfs.Solve(g)
	if err != nil {
		var field *bfs.DistanceField
		if res != nil {
			field = res.Field
		}
		ctx.JSON(statusFor(err), &ErrorResponse{ID: id, Error: err.Error(), Distances: distanceTable(field)})
		return
	}
	ctx.JSON(http.StatusOK, &RouteResponse{
		ID:        id,
		Length:    len(res.Path),
		Path:      res.Path,
		Distances: distanceTable(res.Field),
	})
}

// distances returns only the distance field of the posted maze.
func (rc *RouteController) distances(ctx *gin.Context) {
	id := uuid.New()
	g, ok := bindMaze(ctx, id)
	if !ok {
		return
	}
	start, _ := g.Start()
	end, _ := g.End()
	df, err := bfs.Build(g, start, end)
	if err != nil {
		ctx.JSON(statusFor(err), &ErrorResponse{ID: id, Error: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, &DistancesResponse{ID: id, Reached: df.Reached(), Distances: distanceTable(df)})
}

// bindMaze decodes the request body into a Grid, answering 400 on failure.
func bindMaze(ctx *gin.Context, id uuid.UUID) (*maze.Grid, bool) {
	var request RouteRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, &ErrorResponse{ID: id, Error: err.Error()})
		return nil, false
	}
	g, err := maze.FromRows(request.Maze)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, &ErrorResponse{ID: id, Error: err.Error()})
		return nil, false
	}
	return g, true
}

// statusFor maps search errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, bfs.ErrMissingEndpoint), errors.Is(err, bfs.ErrUnreachable):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
