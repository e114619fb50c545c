package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-with-go/aoc-runner/internal/api/middleware"
	"github.com/povarna/generative-ai-with-go/aoc-runner/internal/input"
	"github.com/povarna/generative-ai-with-go/aoc-runner/internal/puzzle"
	"github.com/povarna/generative-ai-with-go/aoc-runner/internal/runner"
	"github.com/rs/zerolog"
)

const (
	Version       = "1.0.0"
	SessionHeader = "X-Session-ID"
)

type Handler struct {
	runner  *runner.Runner
	session string
	logger  *zerolog.Logger
}

// NewHandler serves puzzles through r. session is used when a request does
// not carry its own credential.
func NewHandler(r *runner.Runner, session string, logger *zerolog.Logger) *Handler {
	return &Handler{
		runner:  r,
		session: session,
		logger:  logger,
	}
}

// Health handler GET /api/v1/health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	_ = resp.WriteHeaderAndEntity(http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: Version,
	})
}

// GET /api/v1/puzzles
func (h *Handler) ListPuzzles(req *restful.Request, resp *restful.Response) {
	entries := h.runner.List()

	puzzles := make([]PuzzleResponse, 0, len(entries))
	for _, e := range entries {
		puzzles = append(puzzles, PuzzleResponse{Year: e.Key.Year, Day: e.Key.Day, Name: e.Name})
	}

	_ = resp.WriteHeaderAndEntity(http.StatusOK, puzzles)
}

// GET /api/v1/puzzles/{year}/{day}?part=1|2
// Returns: runner.Result
func (h *Handler) Solve(req *restful.Request, resp *restful.Response) {
	key, err := parseKey(req.PathParameter("year"), req.PathParameter("day"))
	if err != nil {
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	var second bool
	switch req.QueryParameter("part") {
	case "", "1":
	case "2":
		second = true
	default:
		middleware.HandleError(resp, middleware.ErrInvalidPart, http.StatusBadRequest)
		return
	}

	credential := strings.TrimSpace(req.HeaderParameter(SessionHeader))
	if credential == "" {
		credential = h.session
	}

	h.logger.Info().Int("year", key.Year).Int("day", key.Day).Bool("second", second).Msg("Start solving")

	result, err := h.runner.Solve(req.Request.Context(), key, credential, second)
	if err != nil {
		status := statusFor(err)
		h.logger.Error().Err(err).Int("year", key.Year).Int("day", key.Day).Int("status", status).Msg("Failed to solve puzzle")
		middleware.HandleError(resp, err, status)
		return
	}

	_ = resp.WriteHeaderAndEntity(http.StatusOK, result)
}

func parseKey(yearParam string, dayParam string) (puzzle.Key, error) {
	year, err := strconv.Atoi(yearParam)
	if err != nil || year <= 0 {
		return puzzle.Key{}, middleware.ErrInvalidYear
	}
	day, err := strconv.Atoi(dayParam)
	if err != nil || day < puzzle.FirstDay || day > puzzle.LastDay {
		return puzzle.Key{}, middleware.ErrInvalidDay
	}
	return puzzle.Key{Year: year, Day: day}, nil
}

func statusFor(err error) int {
	var (
		netErr    *input.NetworkError
		decodeErr *input.DecodeError
	)

	switch {
	case errors.Is(err, runner.ErrNotImplemented):
		return http.StatusNotFound
	case errors.Is(err, input.ErrMissingCredential):
		return http.StatusUnauthorized
	case errors.As(err, &netErr), errors.As(err, &decodeErr):
		return http.StatusBadGateway
	default:
		// storage and solver failures
		return http.StatusInternalServerError
	}
}
