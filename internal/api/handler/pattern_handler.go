package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tanmaysharma231/Mcp-hackathon-healthcare/internal/domain"
	"github.com/tanmaysharma231/Mcp-hackathon-healthcare/internal/ingest"
	"github.com/tanmaysharma231/Mcp-hackathon-healthcare/internal/service"
	"github.com/tanmaysharma231/Mcp-hackathon-healthcare/pkg/problem"
)

// PatternHandler handles glucose pattern endpoints.
type PatternHandler struct {
	service service.PatternService
	source  ingest.Source
}

// NewPatternHandler creates a new PatternHandler.
func NewPatternHandler(service service.PatternService, source ingest.Source) *PatternHandler {
	return &PatternHandler{service: service, source: source}
}

// Get handles GET /v1/patterns
// @Summary Analyze glucose patterns
// @Description Summarize the series by hour of day, day of week, or overall distribution.
// @Tags patterns
// @Produce json
// @Param kind query string false "Pattern kind" Enums(hourly, daily, overall) default(hourly)
// @Success 200 {object} domain.PatternResponse "Pattern summary"
// @Failure 400 {object} problem.Problem "Unknown pattern kind"
// @Failure 422 {object} problem.Problem "Not enough usable data"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /patterns [get]
func (h *PatternHandler) Get(w http.ResponseWriter, r *http.Request) {
	kind := domain.PatternKind(r.URL.Query().Get("kind"))
	if kind == "" {
		kind = domain.PatternHourly
	}

	result, err := h.service.Analyze(r.Context(), h.source, kind)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			problem.BadRequest("kind must be one of: hourly, daily, overall").Write(w)
		case errors.Is(err, domain.ErrSchema):
			problem.UnprocessableEntity("Data source has no recognizable glucose column").Write(w)
		case errors.Is(err, domain.ErrInsufficientData):
			problem.UnprocessableEntity("Not enough readings to analyze patterns").Write(w)
		default:
			problem.InternalError("Failed to analyze patterns").Write(w)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
