package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/tanmaysharma231/Mcp-hackathon-healthcare/internal/domain"
	"github.com/tanmaysharma231/Mcp-hackathon-healthcare/internal/ingest"
	"github.com/tanmaysharma231/Mcp-hackathon-healthcare/internal/service"
	"github.com/tanmaysharma231/Mcp-hackathon-healthcare/pkg/problem"
)

// DefaultHorizonHours is the forecast horizon used when the query omits one.
const DefaultHorizonHours = 2.0

// ForecastHandler handles glucose forecast endpoints.
type ForecastHandler struct {
	service service.ForecastService
	source  ingest.Source
}

// NewForecastHandler creates a new ForecastHandler.
func NewForecastHandler(service service.ForecastService, source ingest.Source) *ForecastHandler {
	return &ForecastHandler{service: service, source: source}
}

// Get handles GET /v1/forecast
// @Summary Forecast glucose
// @Description Predict glucose at 5-minute intervals over the requested horizon. Trains and persists a model on first use if none exists.
// @Tags forecast
// @Produce json
// @Param horizon_hours query number false "Forecast horizon in hours" default(2) minimum(0.1) maximum(24)
// @Success 200 {object} domain.ForecastResult "Multi-step forecast"
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 422 {object} problem.Problem "Not enough usable data to forecast"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /forecast [get]
func (h *ForecastHandler) Get(w http.ResponseWriter, r *http.Request) {
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

	result, err := h.service.Forecast(r.Context(), h.source, horizonHours)
	if err != nil {
		writeForecastError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// writeForecastError maps forecasting pipeline errors to problem responses.
func writeForecastError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrSchema):
		problem.UnprocessableEntity("Data source has no recognizable glucose column").Write(w)
	case errors.Is(err, domain.ErrInsufficientData):
		problem.UnprocessableEntity("Not enough readings to build a forecast").Write(w)
	case errors.Is(err, domain.ErrNotTrained):
		problem.Conflict("Persisted model is not trained").Write(w)
	case errors.Is(err, domain.ErrInvalidInput):
		problem.BadRequest("Invalid forecast request").Write(w)
	default:
		problem.InternalError("Failed to generate forecast").Write(w)
	}
}
