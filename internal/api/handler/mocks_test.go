package handler

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tanmaysharma231/Mcp-hackathon-healthcare/internal/domain"
	"github.com/tanmaysharma231/Mcp-hackathon-healthcare/internal/ingest"
)

// MockForecastService is a mock implementation of service.ForecastService
type MockForecastService struct {
	forecastFunc func(ctx context.Context, src ingest.Source, horizonHours float64) (*domain.ForecastResult, error)
}

func (m *MockForecastService) Forecast(ctx context.Context, src ingest.Source, horizonHours float64) (*domain.ForecastResult, error) {
	if m.forecastFunc != nil {
		return m.forecastFunc(ctx, src, horizonHours)
	}
	steps := int(horizonHours * 12)
	result := &domain.ForecastResult{
		HorizonHours:    horizonHours,
		Predictions:     make([]float64, steps),
		Timestamps:      make([]string, steps),
		ConfidenceLower: make([]float64, steps),
		ConfidenceUpper: make([]float64, steps),
		NextReading:     118.2,
		RMSE:            8.4,
	}
	for i := 0; i < steps; i++ {
		result.Predictions[i] = 118.2
		result.Timestamps[i] = "2024-01-15 12:05"
		result.ConfidenceLower[i] = 105.6
		result.ConfidenceUpper[i] = 130.8
	}
	return result, nil
}

// MockPatternService is a mock implementation of service.PatternService
type MockPatternService struct {
	analyzeFunc func(ctx context.Context, src ingest.Source, kind domain.PatternKind) (*domain.PatternResponse, error)
	lastKind    domain.PatternKind
}

func (m *MockPatternService) Analyze(ctx context.Context, src ingest.Source, kind domain.PatternKind) (*domain.PatternResponse, error) {
	m.lastKind = kind
	if m.analyzeFunc != nil {
		return m.analyzeFunc(ctx, src, kind)
	}
	return &domain.PatternResponse{
		Kind:   kind,
		Hourly: &domain.HourlyPatterns{PeakHour: 8, LowestHour: 3, HourlyAverages: map[int]float64{8: 150}},
	}, nil
}

// MockModelService is a mock implementation of service.ModelService
type MockModelService struct {
	retrainFunc func(ctx context.Context, src ingest.Source) (*domain.ModelInfo, error)
	currentFunc func(ctx context.Context) (*domain.ModelInfo, error)
}

func sampleModelInfo() *domain.ModelInfo {
	return &domain.ModelInfo{
		ID:        uuid.New(),
		TrainedAt: time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC),
		Algorithm: "ridge",
		Schema:    []string{"glucose_lag_1"},
		TestRMSE:  8.4,
		TestR2:    0.93,
	}
}

func (m *MockModelService) Retrain(ctx context.Context, src ingest.Source) (*domain.ModelInfo, error) {
	if m.retrainFunc != nil {
		return m.retrainFunc(ctx, src)
	}
	return sampleModelInfo(), nil
}

func (m *MockModelService) Current(ctx context.Context) (*domain.ModelInfo, error) {
	if m.currentFunc != nil {
		return m.currentFunc(ctx)
	}
	return sampleModelInfo(), nil
}

// MockReadingService is a mock implementation of service.ReadingService
type MockReadingService struct {
	createFunc func(ctx context.Context, req *domain.CreateReadingsRequest) (int, error)
	listFunc   func(ctx context.Context, filter domain.ReadingFilter) (*domain.ReadingListResponse, error)
}

func (m *MockReadingService) CreateBatch(ctx context.Context, req *domain.CreateReadingsRequest) (int, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return len(req.Readings), nil
}

func (m *MockReadingService) List(ctx context.Context, filter domain.ReadingFilter) (*domain.ReadingListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, filter)
	}
	return &domain.ReadingListResponse{
		Data:       []domain.Reading{},
		Pagination: domain.PaginationResponse{HasMore: false},
	}, nil
}

// MockInsightsService is a mock implementation of service.InsightsService
type MockInsightsService struct {
	generateFunc func(ctx context.Context, src ingest.Source, horizonHours float64) (*domain.InsightsResponse, error)
}

func (m *MockInsightsService) Generate(ctx context.Context, src ingest.Source, horizonHours float64) (*domain.InsightsResponse, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, src, horizonHours)
	}
	return &domain.InsightsResponse{
		Forecast: domain.ForecastResult{HorizonHours: horizonHours, NextReading: 118.2},
		Insights: domain.GlucoseInsights{Summary: "Levels look steady."},
	}, nil
}
