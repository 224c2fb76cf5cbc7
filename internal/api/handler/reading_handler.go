package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/tanmaysharma231/Mcp-hackathon-healthcare/internal/api/validation"
	"github.com/tanmaysharma231/Mcp-hackathon-healthcare/internal/domain"
	"github.com/tanmaysharma231/Mcp-hackathon-healthcare/internal/service"
	"github.com/tanmaysharma231/Mcp-hackathon-healthcare/pkg/problem"
)

// ReadingHandler handles raw reading storage endpoints.
type ReadingHandler struct {
	service service.ReadingService
}

// NewReadingHandler creates a new ReadingHandler.
func NewReadingHandler(service service.ReadingService) *ReadingHandler {
	return &ReadingHandler{service: service}
}

// CreateResponse is the response body for a successful batch insert.
// @Description Result of storing a batch of readings.
type CreateResponse struct {
	// Number of readings stored
	Stored int `json:"stored" example:"288"`
}

// Create handles POST /v1/readings
// @Summary Store glucose readings
// @Description Store a batch of raw readings. Cleaning and range filtering happen at analysis time, not here.
// @Tags readings
// @Accept json
// @Produce json
// @Param request body domain.CreateReadingsRequest true "Readings to store"
// @Success 201 {object} CreateResponse "Readings stored"
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 422 {object} problem.Problem "Request body contains invalid fields"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /readings [post]
func (h *ReadingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateReadingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	stored, err := h.service.CreateBatch(r.Context(), &req)
	if err != nil {
		problem.InternalError("Failed to store readings").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(CreateResponse{Stored: stored})
}

// List handles GET /v1/readings
// @Summary List glucose readings
// @Description Fetch stored readings sorted by timestamp ascending, with cursor pagination and an optional time range.
// @Tags readings
// @Produce json
// @Param from query string false "Start of time range (RFC3339)" format(date-time) example(2024-01-01T00:00:00Z)
// @Param to query string false "End of time range (RFC3339)" format(date-time) example(2024-01-31T23:59:59Z)
// @Param limit query integer false "Results per page (1-1000)" default(100) minimum(1) maximum(1000)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.ReadingListResponse "Readings with pagination"
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /readings [get]
func (h *ReadingHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, fieldErrors := parseReadingFilter(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	response, err := h.service.List(r.Context(), filter)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			problem.BadRequest("Invalid cursor").Write(w)
			return
		}
		problem.InternalError("Failed to list readings").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func parseReadingFilter(r *http.Request) (domain.ReadingFilter, []problem.FieldError) {
	var filter domain.ReadingFilter
	var fieldErrors []problem.FieldError

	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		from, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "from",
				Message: "must be a valid RFC3339 timestamp",
			})
		} else {
			filter.From = &from
		}
	}

	if toStr := r.URL.Query().Get("to"); toStr != "" {
		to, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "to",
				Message: "must be a valid RFC3339 timestamp",
			})
		} else {
			filter.To = &to
		}
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "limit",
				Message: "must be a positive integer",
			})
		} else {
			filter.Limit = limit
		}
	}

	filter.Cursor = r.URL.Query().Get("cursor")

	if len(fieldErrors) > 0 {
		return filter, fieldErrors
	}

	return filter, nil
}
