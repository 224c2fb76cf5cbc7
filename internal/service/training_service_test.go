package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/tanmaysharma231/Mcp-hackathon-healthcare/internal/domain"
	"github.com/tanmaysharma231/Mcp-hackathon-healthcare/internal/features"
	"github.com/tanmaysharma231/Mcp-hackathon-healthcare/internal/ingest"
)

func TestTrainingService_Train(t *testing.T) {
	src := sinusoidSource(200)
	svc := NewTrainingService()

	model, err := svc.Train(context.Background(), src)
	if err != nil {
		t.Fatalf("Train() error = %v", err)
	}

	if !model.IsTrained {
		t.Error("model not marked trained")
	}
	if model.Algorithm != "ridge" {
		t.Errorf("algorithm = %q, want ridge", model.Algorithm)
	}
	if len(model.Predictor) == 0 {
		t.Error("predictor blob is empty")
	}

	schema := features.Schema()
	if len(model.Schema) != len(schema) {
		t.Fatalf("schema width = %d, want %d", len(model.Schema), len(schema))
	}
	for i := range schema {
		if model.Schema[i] != schema[i] {
			t.Errorf("schema[%d] = %q, want %q", i, model.Schema[i], schema[i])
		}
	}
	if len(model.Scaler.Mean) != len(schema) || len(model.Scaler.Std) != len(schema) {
		t.Errorf("scaler widths = %d/%d, want %d", len(model.Scaler.Mean), len(model.Scaler.Std), len(schema))
	}

	if model.Stats.TotalReadings != 200 {
		t.Errorf("stats.TotalReadings = %d, want 200", model.Stats.TotalReadings)
	}
	if model.Stats.MeanGlucose < 80 || model.Stats.MeanGlucose > 160 {
		t.Errorf("stats.MeanGlucose = %v, out of the sinusoid range", model.Stats.MeanGlucose)
	}

	if math.IsNaN(model.TestRMSE) || math.IsInf(model.TestRMSE, 0) || model.TestRMSE < 0 {
		t.Errorf("TestRMSE = %v", model.TestRMSE)
	}
	// A smooth sinusoid with lag features is very learnable.
	if model.TestRMSE > 20 {
		t.Errorf("TestRMSE = %v, want under 20 on a smooth sinusoid", model.TestRMSE)
	}
	if model.TestR2 > 1 {
		t.Errorf("TestR2 = %v, want <= 1", model.TestR2)
	}
	if model.ID == uuid.Nil {
		t.Error("model ID not assigned")
	}
	if model.TrainedAt.IsZero() {
		t.Error("TrainedAt not set")
	}
}

func TestTrainingService_TrainIsDeterministic(t *testing.T) {
	svc := NewTrainingService()

	a, err := svc.Train(context.Background(), sinusoidSource(150))
	if err != nil {
		t.Fatalf("Train(a) error = %v", err)
	}
	b, err := svc.Train(context.Background(), sinusoidSource(150))
	if err != nil {
		t.Fatalf("Train(b) error = %v", err)
	}

	if a.TestRMSE != b.TestRMSE || a.TestR2 != b.TestR2 {
		t.Errorf("metrics differ across identical runs: %v/%v vs %v/%v", a.TestRMSE, a.TestR2, b.TestRMSE, b.TestR2)
	}
	if string(a.Predictor) != string(b.Predictor) {
		t.Error("predictor blobs differ across identical runs")
	}
}

func TestTrainingService_InsufficientData(t *testing.T) {
	tests := []struct {
		name string
		n    int
	}{
		{"two readings", 2},
		{"exactly history cutoff", features.MinHistory},
		{"one featurized row", features.MinHistory + 1},
	}

	svc := NewTrainingService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Train(context.Background(), sinusoidSource(tt.n))
			if !errors.Is(err, domain.ErrInsufficientData) {
				t.Errorf("Train() error = %v, want ErrInsufficientData", err)
			}
		})
	}
}

func TestTrainingService_SchemaErrorPropagates(t *testing.T) {
	src := &tableSource{table: &ingest.Table{
		Columns: []string{"datetime", "heart_rate"},
		Rows:    [][]string{{"2024-01-15 06:00:00", "65"}},
	}}

	svc := NewTrainingService()
	if _, err := svc.Train(context.Background(), src); !errors.Is(err, domain.ErrSchema) {
		t.Errorf("Train() error = %v, want ErrSchema", err)
	}
}
