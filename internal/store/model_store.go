// Package store persists trained model state as an opaque blob. The blob
// round-trips exactly: a loaded model reproduces bit-identical forecasts.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tanmaysharma231/Mcp-hackathon-healthcare/internal/domain"
)

// ModelStore persists and retrieves trained model state. Single-writer,
// single-reader usage is assumed; there is no locking discipline.
type ModelStore interface {
	Save(ctx context.Context, model *domain.TrainedModel) error
	Load(ctx context.Context) (*domain.TrainedModel, error)
}

// FileStore keeps the model blob in a single JSON file next to the data.
type FileStore struct {
	path string
}

// NewFileStore creates a ModelStore backed by the file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Save(ctx context.Context, model *domain.TrainedModel) error {
	if model == nil || !model.IsTrained {
		return domain.ErrNotTrained
	}

	data, err := json.MarshalIndent(model, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode model: %w", err)
	}

	// Write-then-rename so a crashed save never leaves a truncated blob.
	tmp := s.path + ".tmp"
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create model directory: %w", err)
		}
	}
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write model file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace model file: %w", err)
	}
	return nil
}

func (s *FileStore) Load(ctx context.Context) (*domain.TrainedModel, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrModelNotFound
		}
		return nil, fmt.Errorf("failed to read model file: %w", err)
	}

	var model domain.TrainedModel
	if err := json.Unmarshal(data, &model); err != nil {
		return nil, fmt.Errorf("failed to decode model file: %w", err)
	}
	return &model, nil
}
