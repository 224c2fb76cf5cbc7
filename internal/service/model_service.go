package service

import (
	"context"
	"fmt"

	"github.com/tanmaysharma231/Mcp-hackathon-healthcare/internal/domain"
	"github.com/tanmaysharma231/Mcp-hackathon-healthcare/internal/ingest"
	"github.com/tanmaysharma231/Mcp-hackathon-healthcare/internal/store"
)

// ModelService manages the persisted model lifecycle.
type ModelService interface {
	// Retrain trains a fresh model from the source, persists it, and
	// returns its metadata. The previous model is replaced.
	Retrain(ctx context.Context, src ingest.Source) (*domain.ModelInfo, error)
	// Current returns metadata of the persisted model, or
	// domain.ErrModelNotFound when none has been trained yet.
	Current(ctx context.Context) (*domain.ModelInfo, error)
}

type modelService struct {
	trainer TrainingService
	models  store.ModelStore
}

// NewModelService creates a new ModelService.
func NewModelService(trainer TrainingService, models store.ModelStore) ModelService {
	return &modelService{trainer: trainer, models: models}
}

func (s *modelService) Retrain(ctx context.Context, src ingest.Source) (*domain.ModelInfo, error) {
	model, err := s.trainer.Train(ctx, src)
	if err != nil {
		return nil, err
	}

	if err := s.models.Save(ctx, model); err != nil {
		return nil, fmt.Errorf("saving trained model: %w", err)
	}

	info := model.Info()
	return &info, nil
}

func (s *modelService) Current(ctx context.Context) (*domain.ModelInfo, error) {
	model, err := s.models.Load(ctx)
	if err != nil {
		return nil, err
	}

	info := model.Info()
	return &info, nil
}
