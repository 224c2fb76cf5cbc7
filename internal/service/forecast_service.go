package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/tanmaysharma231/Mcp-hackathon-healthcare/internal/domain"
	"github.com/tanmaysharma231/Mcp-hackathon-healthcare/internal/features"
	"github.com/tanmaysharma231/Mcp-hackathon-healthcare/internal/ingest"
	"github.com/tanmaysharma231/Mcp-hackathon-healthcare/internal/predictor"
	"github.com/tanmaysharma231/Mcp-hackathon-healthcare/internal/store"
)

const (
	// stepsPerHour at the 5-minute sampling cadence.
	stepsPerHour = 12

	// bandRMSEMultiplier sizes the confidence band around each prediction.
	bandRMSEMultiplier = 1.5

	// glucoseLagSlots is how many leading schema slots hold glucose lags;
	// only these are mutated between forecast steps.
	glucoseLagSlots = 5
)

// ForecastService produces multi-step glucose forecasts by rolling the point
// predictor forward one 5-minute step at a time.
type ForecastService interface {
	// Forecast loads the persisted model (training a fresh one from the
	// source when none exists yet) and forecasts horizonHours ahead.
	Forecast(ctx context.Context, src ingest.Source, horizonHours float64) (*domain.ForecastResult, error)
}

type forecastService struct {
	models  store.ModelStore
	trainer TrainingService
}

// NewForecastService creates a ForecastService.
func NewForecastService(models store.ModelStore, trainer TrainingService) ForecastService {
	return &forecastService{models: models, trainer: trainer}
}

func (s *forecastService) Forecast(ctx context.Context, src ingest.Source, horizonHours float64) (*domain.ForecastResult, error) {
	tracer := otel.Tracer("glucose-forecaster/forecast")
	ctx, span := tracer.Start(ctx, "ForecastService.Forecast",
		trace.WithAttributes(attribute.Float64("forecast.horizon_hours", horizonHours)),
	)
	defer span.End()

	steps := int(math.Round(horizonHours * stepsPerHour))
	if steps < 1 {
		return nil, fmt.Errorf("%w: horizon must cover at least one step", domain.ErrInvalidInput)
	}

	model, err := s.loadOrTrain(ctx, src)
	if err != nil {
		return nil, err
	}
	if !model.IsTrained {
		return nil, domain.ErrNotTrained
	}

	p, err := predictor.Unmarshal(model.Predictor)
	if err != nil {
		return nil, err
	}

	series, err := ingest.Load(ctx, src)
	if err != nil {
		return nil, err
	}
	set := features.Build(series)
	last, ok := set.Last()
	if !ok {
		return nil, domain.ErrInsufficientData
	}
	if !schemaMatches(set.Names, model.Schema) {
		return nil, fmt.Errorf("%w: feature schema does not match the trained model", domain.ErrInvalidInput)
	}

	predictions, err := s.rollout(p, model, predictor.Standardize(model.Scaler, last.Values), steps)
	if err != nil {
		return nil, err
	}

	result := &domain.ForecastResult{
		HorizonHours:    horizonHours,
		Predictions:     predictions,
		Timestamps:      futureTimestamps(last.Timestamp, steps),
		ConfidenceLower: make([]float64, steps),
		ConfidenceUpper: make([]float64, steps),
		NextReading:     predictions[0],
		RMSE:            model.TestRMSE,
	}
	band := bandRMSEMultiplier * model.TestRMSE
	for i, pred := range predictions {
		result.ConfidenceLower[i] = pred - band
		result.ConfidenceUpper[i] = pred + band
	}

	span.SetAttributes(
		attribute.Int("forecast.steps", steps),
		attribute.Float64("forecast.next_reading", result.NextReading),
	)
	return result, nil
}

// loadOrTrain implements the caller-side retry policy: when no persisted
// model exists, train a fresh one from the source and persist it. Any other
// load failure is fatal.
func (s *forecastService) loadOrTrain(ctx context.Context, src ingest.Source) (*domain.TrainedModel, error) {
	model, err := s.models.Load(ctx)
	if err == nil {
		return model, nil
	}
	if !errors.Is(err, domain.ErrModelNotFound) {
		return nil, err
	}

	model, err = s.trainer.Train(ctx, src)
	if err != nil {
		return nil, err
	}
	if err := s.models.Save(ctx, model); err != nil {
		return nil, err
	}
	return model, nil
}

// rollout drives the point predictor across the horizon. Between steps only
// the five glucose-lag slots move: each shifts down one position and slot 0
// becomes the freshly predicted value standardized with the training-time
// mean/std. Rolling means, trend, covariates, and calendar slots stay frozen
// at their last real values, a deliberate approximation of full
// re-featurization whose error compounds over long horizons.
func (s *forecastService) rollout(p predictor.Predictor, model *domain.TrainedModel, current []float64, steps int) ([]float64, error) {
	std := model.Stats.StdGlucose
	if std == 0 {
		std = 1
	}

	predictions := make([]float64, 0, steps)
	for step := 0; step < steps; step++ {
		raw, err := p.Predict(current)
		if err != nil {
			return nil, fmt.Errorf("prediction failed at step %d: %w", step, err)
		}

		pred := clamp(raw, ingest.GlucoseMin, ingest.GlucoseMax)
		predictions = append(predictions, pred)

		if len(current) >= glucoseLagSlots {
			for i := glucoseLagSlots - 1; i > 0; i-- {
				current[i] = current[i-1]
			}
			current[0] = (pred - model.Stats.MeanGlucose) / std
		}
	}
	return predictions, nil
}

// futureTimestamps generates one timestamp per step, 5 minutes apart,
// starting after the last real reading.
func futureTimestamps(last time.Time, steps int) []string {
	out := make([]string, steps)
	for i := 0; i < steps; i++ {
		out[i] = last.Add(time.Duration(i+1) * ingest.SampleInterval).Format(domain.TimestampLayout)
	}
	return out
}

func schemaMatches(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
