package api

import (
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-with-go/aoc-runner/internal/api/middleware"
	"github.com/povarna/generative-ai-with-go/aoc-runner/internal/runner"
)

func RegisterRoutes(container *restful.Container, handler *Handler) {
	ws := new(restful.WebService)

	ws.
		Path("/api/v1").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON)

	// Health endpoint
	ws.
		Route(ws.GET("health").
			To(handler.Health).
			Doc("Health check").
			Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
			Writes(HealthResponse{}).
			Returns(200, "OK", HealthResponse{}))

	ws.
		Route(ws.GET("/puzzles").
			To(handler.ListPuzzles).
			Doc("List implemented puzzles").
			Metadata(restfulspec.KeyOpenAPITags, []string{"puzzles"}).
			Writes([]PuzzleResponse{}).
			Returns(200, "OK", []PuzzleResponse{}))

	ws.
		Route(ws.GET("/puzzles/{year}/{day}").
			To(handler.Solve).
			Doc("Solve one part of a puzzle").
			Metadata(restfulspec.KeyOpenAPITags, []string{"puzzles"}).
			Param(ws.PathParameter("year", "Puzzle year").DataType("integer")).
			Param(ws.PathParameter("day", "Puzzle day (1-25)").DataType("integer")).
			Param(ws.QueryParameter("part", "Puzzle part (1 or 2, default: 1)").DataType("integer").Required(false)).
			Param(ws.HeaderParameter(SessionHeader, "Session credential, defaults to the server session").DataType("string").Required(false)).
			Writes(runner.Result{}).
			Returns(200, "OK", runner.Result{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(401, "Missing Credential", middleware.ErrorResponse{}).
			Returns(404, "Puzzle Not Implemented", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}).
			Returns(502, "Remote Error", middleware.ErrorResponse{}))

	container.Add(ws)
}
