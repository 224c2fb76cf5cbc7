package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tanmaysharma231/Mcp-hackathon-healthcare/internal/domain"
	"github.com/tanmaysharma231/Mcp-hackathon-healthcare/pkg/pagination"
)

type ReadingRepository interface {
	CreateBatch(ctx context.Context, readings []domain.Reading) error
	List(ctx context.Context, filter domain.ReadingFilter) ([]domain.Reading, error)
	ListAll(ctx context.Context) ([]domain.Reading, error)
	Count(ctx context.Context) (int64, error)
}

type readingRepository struct {
	db *gorm.DB
}

func NewReadingRepository(db *gorm.DB) ReadingRepository {
	return &readingRepository{db: db}
}

func (r *readingRepository) CreateBatch(ctx context.Context, readings []domain.Reading) error {
	for i := range readings {
		if readings[i].ID == uuid.Nil {
			readings[i].ID = uuid.New()
		}
	}
	return r.db.WithContext(ctx).CreateInBatches(readings, 500).Error
}

func (r *readingRepository) List(ctx context.Context, filter domain.ReadingFilter) ([]domain.Reading, error) {
	query := r.db.WithContext(ctx).
		Order("timestamp ASC, id ASC")

	if filter.From != nil {
		query = query.Where("timestamp >= ?", filter.From)
	}
	if filter.To != nil {
		query = query.Where("timestamp <= ?", filter.To)
	}

	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		if cursor != nil {
			query = query.Where(
				"timestamp > ? OR (timestamp = ? AND id > ?)",
				cursor.Timestamp, cursor.Timestamp, cursor.ID,
			)
		}
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	// Fetch one extra row to detect whether more pages exist.
	query = query.Limit(limit + 1)

	var readings []domain.Reading
	if err := query.Find(&readings).Error; err != nil {
		return nil, err
	}
	return readings, nil
}

func (r *readingRepository) ListAll(ctx context.Context) ([]domain.Reading, error) {
	var readings []domain.Reading
	err := r.db.WithContext(ctx).
		Order("timestamp ASC, id ASC").
		Find(&readings).Error
	if err != nil {
		return nil, err
	}
	return readings, nil
}

func (r *readingRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Reading{}).Count(&count).Error
	return count, err
}
