package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"gonum.org/v1/gonum/stat"

	"github.com/tanmaysharma231/Mcp-hackathon-healthcare/internal/domain"
	"github.com/tanmaysharma231/Mcp-hackathon-healthcare/internal/features"
	"github.com/tanmaysharma231/Mcp-hackathon-healthcare/internal/ingest"
	"github.com/tanmaysharma231/Mcp-hackathon-healthcare/internal/predictor"
)

// trainSplit is the chronological share of featurized rows used for fitting.
// The split is positional, never shuffled: shuffling would leak future
// readings into training.
const trainSplit = 0.8

// TrainingService fits a point predictor on a glucose series and returns the
// full immutable model state.
type TrainingService interface {
	// Train ingests the source, featurizes it, fits the predictor on the
	// first 80% of rows, and evaluates on the held-out tail.
	Train(ctx context.Context, src ingest.Source) (*domain.TrainedModel, error)
}

type trainingService struct {
	newPredictor func() predictor.Predictor
}

// NewTrainingService creates a TrainingService with the default ridge
// predictor.
func NewTrainingService() TrainingService {
	return &trainingService{
		newPredictor: func() predictor.Predictor {
			return predictor.NewRidge(predictor.DefaultLambda)
		},
	}
}

func (s *trainingService) Train(ctx context.Context, src ingest.Source) (*domain.TrainedModel, error) {
	tracer := otel.Tracer("glucose-forecaster/training")
	ctx, span := tracer.Start(ctx, "TrainingService.Train")
	defer span.End()

	series, err := ingest.Load(ctx, src)
	if err != nil {
		return nil, err
	}

	set := features.Build(series)
	n := len(set.Rows)
	span.SetAttributes(
		attribute.Int("series.readings", series.Len()),
		attribute.Int("features.rows", n),
	)

	splitIdx := int(float64(n) * trainSplit)
	if splitIdx < 1 || n-splitIdx < 1 {
		return nil, domain.ErrInsufficientData
	}

	x, y := set.Matrix()
	trainX, testX := x[:splitIdx], x[splitIdx:]
	trainY, testY := y[:splitIdx], y[splitIdx:]

	scaler := predictor.FitScaler(trainX)
	trainXScaled := predictor.StandardizeAll(scaler, trainX)
	testXScaled := predictor.StandardizeAll(scaler, testX)

	p := s.newPredictor()
	if err := p.Fit(trainXScaled, trainY); err != nil {
		return nil, fmt.Errorf("predictor fit failed: %w", err)
	}

	rmse, r2, err := evaluate(p, testXScaled, testY)
	if err != nil {
		return nil, fmt.Errorf("predictor evaluation failed: %w", err)
	}

	blob, err := predictor.Marshal(p)
	if err != nil {
		return nil, err
	}

	model := &domain.TrainedModel{
		ID:        uuid.New(),
		TrainedAt: time.Now().UTC(),
		Algorithm: predictor.Algorithm(p),
		Predictor: blob,
		Scaler:    scaler,
		Stats:     computeTrainingStats(series),
		Schema:    set.Names,
		TestRMSE:  rmse,
		TestR2:    r2,
		IsTrained: true,
	}

	span.SetAttributes(
		attribute.Float64("model.test_rmse", rmse),
		attribute.Float64("model.test_r2", r2),
	)
	if payload, err := json.Marshal(model.Info()); err == nil {
		span.SetAttributes(attribute.String("model.info", string(payload)))
	}

	return model, nil
}

// evaluate computes held-out RMSE and R-squared.
func evaluate(p predictor.Predictor, testX [][]float64, testY []float64) (rmse, r2 float64, err error) {
	estimates := make([]float64, len(testX))
	sumSq := 0.0
	for i, row := range testX {
		pred, err := p.Predict(row)
		if err != nil {
			return 0, 0, err
		}
		estimates[i] = pred
		d := pred - testY[i]
		sumSq += d * d
	}
	rmse = math.Sqrt(sumSq / float64(len(testY)))
	r2 = stat.RSquaredFrom(estimates, testY, nil)
	return rmse, r2, nil
}
