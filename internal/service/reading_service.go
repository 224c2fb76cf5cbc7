package service

import (
	"context"

	"github.com/tanmaysharma231/Mcp-hackathon-healthcare/internal/domain"
	"github.com/tanmaysharma231/Mcp-hackathon-healthcare/internal/repository"
	"github.com/tanmaysharma231/Mcp-hackathon-healthcare/pkg/pagination"
)

// ReadingService stores and lists raw glucose readings.
type ReadingService interface {
	CreateBatch(ctx context.Context, req *domain.CreateReadingsRequest) (int, error)
	List(ctx context.Context, filter domain.ReadingFilter) (*domain.ReadingListResponse, error)
}

type readingService struct {
	repo repository.ReadingRepository
}

func NewReadingService(repo repository.ReadingRepository) ReadingService {
	return &readingService{repo: repo}
}

// CreateBatch stores raw readings and returns how many were stored.
// Range cleaning happens later, during normalization, so out-of-range
// values are accepted here.
func (s *readingService) CreateBatch(ctx context.Context, req *domain.CreateReadingsRequest) (int, error) {
	readings := make([]domain.Reading, len(req.Readings))
	for i, input := range req.Readings {
		readings[i] = domain.Reading{
			Timestamp: input.Timestamp.UTC(),
			Glucose:   input.Glucose,
			Insulin:   input.Insulin,
			Carbs:     input.Carbs,
		}
	}

	if err := s.repo.CreateBatch(ctx, readings); err != nil {
		return 0, err
	}

	return len(readings), nil
}

func (s *readingService) List(ctx context.Context, filter domain.ReadingFilter) (*domain.ReadingListResponse, error) {
	readings, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	hasMore := len(readings) > limit

	// Trim to actual limit
	if hasMore {
		readings = readings[:limit]
	}

	for i := range readings {
		readings[i].DeriveCalendar()
	}

	response := &domain.ReadingListResponse{
		Data: readings,
		Pagination: domain.PaginationResponse{
			HasMore: hasMore,
		},
	}

	// Set next cursor if there are more results
	if hasMore && len(readings) > 0 {
		last := readings[len(readings)-1]
		cursor := &pagination.Cursor{
			ID:        last.ID,
			Timestamp: last.Timestamp,
		}
		response.Pagination.NextCursor = cursor.Encode()
	}

	return response, nil
}
