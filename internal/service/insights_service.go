package service

import (
	"context"

	"github.com/tanmaysharma231/Mcp-hackathon-healthcare/internal/domain"
	"github.com/tanmaysharma231/Mcp-hackathon-healthcare/internal/ingest"
	"github.com/tanmaysharma231/Mcp-hackathon-healthcare/internal/llm"
)

// DefaultInsightsHorizonHours is the forecast horizon used for narrative
// insights when the caller does not pick one.
const DefaultInsightsHorizonHours = 2.0

// InsightsService combines a forecast, the pattern summaries, and an LLM
// narrative into one response.
type InsightsService interface {
	Generate(ctx context.Context, src ingest.Source, horizonHours float64) (*domain.InsightsResponse, error)
}

type insightsService struct {
	forecastService ForecastService
	patternService  PatternService
	llmClient       llm.InsightsLLM
}

// NewInsightsService creates a new InsightsService.
func NewInsightsService(forecastService ForecastService, patternService PatternService, llmClient llm.InsightsLLM) InsightsService {
	return &insightsService{
		forecastService: forecastService,
		patternService:  patternService,
		llmClient:       llmClient,
	}
}

func (s *insightsService) Generate(ctx context.Context, src ingest.Source, horizonHours float64) (*domain.InsightsResponse, error) {
	if horizonHours <= 0 {
		horizonHours = DefaultInsightsHorizonHours
	}

	forecast, err := s.forecastService.Forecast(ctx, src, horizonHours)
	if err != nil {
		return nil, err
	}

	hourly, err := s.patternService.Analyze(ctx, src, domain.PatternHourly)
	if err != nil {
		return nil, err
	}
	daily, err := s.patternService.Analyze(ctx, src, domain.PatternDaily)
	if err != nil {
		return nil, err
	}
	overall, err := s.patternService.Analyze(ctx, src, domain.PatternOverall)
	if err != nil {
		return nil, err
	}

	insightsCtx := &domain.InsightsContext{
		Hourly:   *hourly.Hourly,
		Daily:    *daily.Daily,
		Overall:  *overall.Overall,
		Forecast: *forecast,
	}

	narrative, err := s.llmClient.GenerateInsights(ctx, insightsCtx)
	if err != nil {
		return nil, err
	}

	return &domain.InsightsResponse{
		Forecast: *forecast,
		Hourly:   *hourly.Hourly,
		Daily:    *daily.Daily,
		Overall:  *overall.Overall,
		Insights: *narrative,
	}, nil
}
