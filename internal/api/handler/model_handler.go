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

// ModelHandler handles model lifecycle endpoints.
type ModelHandler struct {
	service service.ModelService
	source  ingest.Source
}

// NewModelHandler creates a new ModelHandler.
func NewModelHandler(service service.ModelService, source ingest.Source) *ModelHandler {
	return &ModelHandler{service: service, source: source}
}

// Train handles POST /v1/models/train
// @Summary Train a new model
// @Description Train a fresh model from the configured data source, replacing the persisted one, and return its metadata.
// @Tags models
// @Produce json
// @Success 201 {object} domain.ModelInfo "Newly trained model metadata"
// @Failure 422 {object} problem.Problem "Not enough usable data to train"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /models/train [post]
func (h *ModelHandler) Train(w http.ResponseWriter, r *http.Request) {
	info, err := h.service.Retrain(r.Context(), h.source)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSchema):
			problem.UnprocessableEntity("Data source has no recognizable glucose column").Write(w)
		case errors.Is(err, domain.ErrInsufficientData):
			problem.UnprocessableEntity("Not enough readings to train a model").Write(w)
		default:
			problem.InternalError("Failed to train model").Write(w)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(info)
}

// GetCurrent handles GET /v1/models/current
// @Summary Get current model metadata
// @Description Return metadata of the persisted model without its parameters.
// @Tags models
// @Produce json
// @Success 200 {object} domain.ModelInfo "Current model metadata"
// @Failure 404 {object} problem.Problem "No model has been trained yet"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /models/current [get]
func (h *ModelHandler) GetCurrent(w http.ResponseWriter, r *http.Request) {
	info, err := h.service.Current(r.Context())
	if err != nil {
		if errors.Is(err, domain.ErrModelNotFound) {
			problem.NotFound("No trained model found").Write(w)
			return
		}
		problem.InternalError("Failed to load model").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(info)
}
