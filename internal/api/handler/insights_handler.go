package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/tanmaysharma231/Mcp-hackathon-healthcare/internal/ingest"
	"github.com/tanmaysharma231/Mcp-hackathon-healthcare/internal/llm"
	"github.com/tanmaysharma231/Mcp-hackathon-healthcare/internal/service"
	"github.com/tanmaysharma231/Mcp-hackathon-healthcare/pkg/problem"
	"go.opentelemetry.io/otel/trace"
)

// InsightsHandler handles LLM-backed insights endpoints.
type InsightsHandler struct {
	service service.InsightsService
	source  ingest.Source
}

// NewInsightsHandler creates a new InsightsHandler.
func NewInsightsHandler(service service.InsightsService, source ingest.Source) *InsightsHandler {
	return &InsightsHandler{service: service, source: source}
}

// Get handles GET /v1/insights
// @Summary Get LLM-powered glucose insights
// @Description Generate a narrative over the forecast, pattern summaries, and overall statistics. Requires an OpenAI API key to be configured.
// @Tags insights
// @Produce json
// @Param horizon_hours query number false "Forecast horizon in hours" default(2) minimum(0.1) maximum(24)
// @Success 200 {object} domain.InsightsResponse "Insights with forecast and pattern data"
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 422 {object} problem.Problem "Not enough usable data"
// @Failure 500 {object} problem.Problem "Server error"
// @Failure 502 {object} problem.Problem "LLM request failed"
// @Failure 503 {object} problem.Problem "LLM service not configured"
// @Router /insights [get]
func (h *InsightsHandler) Get(w http.ResponseWriter, r *http.Request) {
	horizonHours := DefaultHorizonHours
	if raw := r.URL.Query().Get("horizon_hours"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			problem.BadRequest("horizon_hours must be a number").Write(w)
			return
		}
		horizonHours = parsed
	}
	if horizonHours <= 0 || horizonHours > 24 {
		problem.BadRequest("horizon_hours must be between 0 and 24").Write(w)
		return
	}

	result, err := h.service.Generate(r.Context(), h.source, horizonHours)
	if err != nil {
		switch {
		case errors.Is(err, llm.ErrOpenAIUnavailable):
			problem.New(http.StatusServiceUnavailable, "service-unavailable", "Service Unavailable", "OpenAI service is not configured").Write(w)
		case errors.Is(err, llm.ErrOpenAIRequest), errors.Is(err, llm.ErrOpenAIResponse):
			problem.New(http.StatusBadGateway, "llm-error", "LLM Error", "Failed to generate insights from LLM").Write(w)
		default:
			writeForecastError(w, err)
		}
		return
	}

	// Attach OTEL trace ID (if present) for correlating with traces
	span := trace.SpanFromContext(r.Context())
	if span.SpanContext().IsValid() {
		result.TraceID = span.SpanContext().TraceID().String()
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
