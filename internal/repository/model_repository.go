package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tanmaysharma231/Mcp-hackathon-healthcare/internal/domain"
	"github.com/tanmaysharma231/Mcp-hackathon-healthcare/internal/store"
)

// ModelRecord is a persisted trained-model blob. Each training run inserts a
// new row; the newest row is the current model.
type ModelRecord struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Blob      []byte    `gorm:"type:jsonb;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
}

func (ModelRecord) TableName() string {
	return "model_states"
}

// modelRepository implements store.ModelStore on Postgres.
type modelRepository struct {
	db *gorm.DB
}

// NewModelRepository creates a database-backed model store.
func NewModelRepository(db *gorm.DB) store.ModelStore {
	return &modelRepository{db: db}
}

func (r *modelRepository) Save(ctx context.Context, model *domain.TrainedModel) error {
	if model == nil || !model.IsTrained {
		return domain.ErrNotTrained
	}

	blob, err := json.Marshal(model)
	if err != nil {
		return fmt.Errorf("failed to encode model: %w", err)
	}

	record := ModelRecord{ID: model.ID, Blob: blob}
	return r.db.WithContext(ctx).Create(&record).Error
}

func (r *modelRepository) Load(ctx context.Context) (*domain.TrainedModel, error) {
	var record ModelRecord
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrModelNotFound
		}
		return nil, err
	}

	var model domain.TrainedModel
	if err := json.Unmarshal(record.Blob, &model); err != nil {
		return nil, fmt.Errorf("failed to decode model record: %w", err)
	}
	return &model, nil
}
