package service

import (
	"context"
	"errors"
	"testing"

	"github.com/tanmaysharma231/Mcp-hackathon-healthcare/internal/domain"
	"github.com/tanmaysharma231/Mcp-hackathon-healthcare/internal/ingest"
)

func TestInsightsService_Generate(t *testing.T) {
	forecasts := &MockForecastService{}
	patterns := &MockPatternService{}
	llmClient := &MockInsightsLLM{}
	svc := NewInsightsService(forecasts, patterns, llmClient)

	resp, err := svc.Generate(context.Background(), sinusoidSource(50), 3)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if forecasts.lastHorizon != 3 {
		t.Errorf("forecast horizon = %v, want 3", forecasts.lastHorizon)
	}
	if resp.Insights.Summary == "" {
		t.Error("insights summary is empty")
	}
	if resp.Forecast.NextReading != 118.2 {
		t.Errorf("forecast not carried into response: %+v", resp.Forecast)
	}
	if resp.Hourly.PeakHour != 8 || resp.Daily.Difference != 10 || resp.Overall.Mean != 126 {
		t.Errorf("pattern summaries not carried into response: %+v", resp)
	}

	// The LLM sees exactly the data the response carries.
	if llmClient.lastContext == nil {
		t.Fatal("LLM was not invoked")
	}
	if llmClient.lastContext.Forecast.NextReading != resp.Forecast.NextReading {
		t.Error("LLM context forecast differs from response forecast")
	}
}

func TestInsightsService_DefaultHorizon(t *testing.T) {
	forecasts := &MockForecastService{}
	svc := NewInsightsService(forecasts, &MockPatternService{}, &MockInsightsLLM{})

	if _, err := svc.Generate(context.Background(), sinusoidSource(50), 0); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if forecasts.lastHorizon != DefaultInsightsHorizonHours {
		t.Errorf("horizon = %v, want default %v", forecasts.lastHorizon, DefaultInsightsHorizonHours)
	}
}

func TestInsightsService_ForecastErrorPropagates(t *testing.T) {
	forecasts := &MockForecastService{
		forecastFunc: func(ctx context.Context, src ingest.Source, horizonHours float64) (*domain.ForecastResult, error) {
			return nil, domain.ErrInsufficientData
		},
	}
	llmClient := &MockInsightsLLM{}
	svc := NewInsightsService(forecasts, &MockPatternService{}, llmClient)

	_, err := svc.Generate(context.Background(), sinusoidSource(50), 2)
	if !errors.Is(err, domain.ErrInsufficientData) {
		t.Errorf("Generate() error = %v, want ErrInsufficientData", err)
	}
	if llmClient.lastContext != nil {
		t.Error("LLM invoked despite forecast failure")
	}
}

func TestInsightsService_LLMErrorPropagates(t *testing.T) {
	wantErr := errors.New("llm offline")
	llmClient := &MockInsightsLLM{
		generateFunc: func(ctx context.Context, insightsCtx *domain.InsightsContext) (*domain.GlucoseInsights, error) {
			return nil, wantErr
		},
	}
	svc := NewInsightsService(&MockForecastService{}, &MockPatternService{}, llmClient)

	_, err := svc.Generate(context.Background(), sinusoidSource(50), 2)
	if !errors.Is(err, wantErr) {
		t.Errorf("Generate() error = %v, want %v", err, wantErr)
	}
}
