package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/tanmaysharma231/Mcp-hackathon-healthcare/internal/domain"
	"github.com/tanmaysharma231/Mcp-hackathon-healthcare/internal/ingest"
)

// tableSource serves a fixed in-memory table.
type tableSource struct {
	table *ingest.Table
	err   error
}

func (s *tableSource) Table(ctx context.Context) (*ingest.Table, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.table, nil
}

// sinusoidSource builds n readings at 5-minute spacing following a smooth
// daily sinusoid between about 80 and 160 mg/dL. Smooth enough that a linear
// model forecasts it reasonably, long enough to survive the history cutoff.
func sinusoidSource(n int) *tableSource {
	start := time.Date(2024, 1, 15, 6, 0, 0, 0, time.UTC)
	rows := make([][]string, n)
	for i := 0; i < n; i++ {
		ts := start.Add(time.Duration(i) * 5 * time.Minute)
		hourOfDay := float64(ts.Hour()) + float64(ts.Minute())/60
		glucose := 120 + 40*math.Sin(2*math.Pi*hourOfDay/24)
		rows[i] = []string{
			ts.Format("2006-01-02 15:04:05"),
			strconv.FormatFloat(glucose, 'f', -1, 64),
			"0",
			"0",
		}
	}
	return &tableSource{table: &ingest.Table{
		Columns: []string{"datetime", "glucose", "insulin", "carbs"},
		Rows:    rows,
	}}
}

// MockModelStore keeps the persisted blob in memory, round-tripping through
// JSON the way the real stores do.
type MockModelStore struct {
	blob      []byte
	saveCalls int
	loadCalls int
	saveErr   error
	loadErr   error
}

func NewMockModelStore() *MockModelStore {
	return &MockModelStore{}
}

func (m *MockModelStore) Save(ctx context.Context, model *domain.TrainedModel) error {
	m.saveCalls++
	if m.saveErr != nil {
		return m.saveErr
	}
	if model == nil || !model.IsTrained {
		return domain.ErrNotTrained
	}
	blob, err := json.Marshal(model)
	if err != nil {
		return err
	}
	m.blob = blob
	return nil
}

func (m *MockModelStore) Load(ctx context.Context) (*domain.TrainedModel, error) {
	m.loadCalls++
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	if m.blob == nil {
		return nil, domain.ErrModelNotFound
	}
	var model domain.TrainedModel
	if err := json.Unmarshal(m.blob, &model); err != nil {
		return nil, err
	}
	return &model, nil
}

// countingTrainer wraps a TrainingService and counts Train calls.
type countingTrainer struct {
	inner TrainingService
	calls int
	err   error
}

func (t *countingTrainer) Train(ctx context.Context, src ingest.Source) (*domain.TrainedModel, error) {
	t.calls++
	if t.err != nil {
		return nil, t.err
	}
	return t.inner.Train(ctx, src)
}

// MockForecastService returns a canned forecast.
type MockForecastService struct {
	forecastFunc func(ctx context.Context, src ingest.Source, horizonHours float64) (*domain.ForecastResult, error)
	lastHorizon  float64
}

func (m *MockForecastService) Forecast(ctx context.Context, src ingest.Source, horizonHours float64) (*domain.ForecastResult, error) {
	m.lastHorizon = horizonHours
	if m.forecastFunc != nil {
		return m.forecastFunc(ctx, src, horizonHours)
	}
	return &domain.ForecastResult{
		HorizonHours: horizonHours,
		Predictions:  []float64{118.2},
		Timestamps:   []string{"2024-01-15 12:05"},
		NextReading:  118.2,
		RMSE:         8.4,
	}, nil
}

// MockPatternService returns canned pattern summaries.
type MockPatternService struct {
	analyzeFunc func(ctx context.Context, src ingest.Source, kind domain.PatternKind) (*domain.PatternResponse, error)
}

func (m *MockPatternService) Analyze(ctx context.Context, src ingest.Source, kind domain.PatternKind) (*domain.PatternResponse, error) {
	if m.analyzeFunc != nil {
		return m.analyzeFunc(ctx, src, kind)
	}
	resp := &domain.PatternResponse{Kind: kind}
	switch kind {
	case domain.PatternHourly:
		resp.Hourly = &domain.HourlyPatterns{PeakHour: 8, LowestHour: 3, HourlyAverages: map[int]float64{8: 150, 3: 90}}
	case domain.PatternDaily:
		resp.Daily = &domain.DailyPatterns{DailyAverages: map[int]float64{0: 120}, WeekendAvg: 130, WeekdayAvg: 120, Difference: 10}
	case domain.PatternOverall:
		resp.Overall = &domain.OverallStats{Mean: 126, Std: 30, Min: 60, Max: 280}
	default:
		return nil, fmt.Errorf("%w: unknown pattern kind %q", domain.ErrInvalidInput, kind)
	}
	return resp, nil
}

// MockInsightsLLM captures the context it was handed.
type MockInsightsLLM struct {
	generateFunc func(ctx context.Context, insightsCtx *domain.InsightsContext) (*domain.GlucoseInsights, error)
	lastContext  *domain.InsightsContext
}

func (m *MockInsightsLLM) GenerateInsights(ctx context.Context, insightsCtx *domain.InsightsContext) (*domain.GlucoseInsights, error) {
	m.lastContext = insightsCtx
	if m.generateFunc != nil {
		return m.generateFunc(ctx, insightsCtx)
	}
	return &domain.GlucoseInsights{
		Summary:      "Levels look steady.",
		Observations: []string{"Peak hour is 8."},
		Guidance:     []string{"Keep logging meals."},
	}, nil
}
