package store

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/tanmaysharma231/Mcp-hackathon-healthcare/internal/domain"
)

func sampleModel() *domain.TrainedModel {
	return &domain.TrainedModel{
		ID:        uuid.New(),
		TrainedAt: time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC),
		Algorithm: "ridge",
		Predictor: []byte(`{"algorithm":"ridge","params":{"lambda":1,"intercept":2.5,"weights":[0.1,0.2]}}`),
		Scaler: domain.ScalingParams{
			Mean: []float64{120.5, 0.3},
			Std:  []float64{31.25, 1},
		},
		Stats: domain.TrainingStats{
			TotalReadings:  1000,
			MeanGlucose:    126.3,
			StdGlucose:     31.8,
			TimeInRangePct: 78.4,
		},
		Schema:    []string{"glucose_lag_1", "glucose_lag_2"},
		TestRMSE:  8.4,
		TestR2:    0.93,
		IsTrained: true,
	}
}

func TestFileStore_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	store := NewFileStore(path)
	ctx := context.Background()

	want := sampleModel()
	if err := store.Save(ctx, want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got.ID != want.ID || !got.TrainedAt.Equal(want.TrainedAt) || got.Algorithm != want.Algorithm {
		t.Errorf("identity fields differ: got %+v", got)
	}
	if !reflect.DeepEqual(got.Scaler, want.Scaler) {
		t.Errorf("scaler differs: got %+v, want %+v", got.Scaler, want.Scaler)
	}
	if got.Stats != want.Stats {
		t.Errorf("stats differ: got %+v, want %+v", got.Stats, want.Stats)
	}
	if !reflect.DeepEqual(got.Schema, want.Schema) {
		t.Errorf("schema differs: got %v, want %v", got.Schema, want.Schema)
	}
	if got.TestRMSE != want.TestRMSE || got.TestR2 != want.TestR2 || !got.IsTrained {
		t.Errorf("metrics differ: got %+v", got)
	}

	// The predictor blob may be reformatted on disk but must decode to the
	// same document.
	var gotBlob, wantBlob map[string]any
	if err := json.Unmarshal(got.Predictor, &gotBlob); err != nil {
		t.Fatalf("decoding loaded predictor blob: %v", err)
	}
	if err := json.Unmarshal(want.Predictor, &wantBlob); err != nil {
		t.Fatalf("decoding original predictor blob: %v", err)
	}
	if !reflect.DeepEqual(gotBlob, wantBlob) {
		t.Errorf("predictor blob differs: got %v, want %v", gotBlob, wantBlob)
	}
}

func TestFileStore_LoadMissingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "absent.json"))
	_, err := store.Load(context.Background())
	if !errors.Is(err, domain.ErrModelNotFound) {
		t.Errorf("Load() error = %v, want ErrModelNotFound", err)
	}
}

func TestFileStore_SaveRejectsUntrained(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "model.json"))
	ctx := context.Background()

	if err := store.Save(ctx, nil); !errors.Is(err, domain.ErrNotTrained) {
		t.Errorf("Save(nil) error = %v, want ErrNotTrained", err)
	}

	untrained := sampleModel()
	untrained.IsTrained = false
	if err := store.Save(ctx, untrained); !errors.Is(err, domain.ErrNotTrained) {
		t.Errorf("Save(untrained) error = %v, want ErrNotTrained", err)
	}
}

func TestFileStore_SaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	store := NewFileStore(path)
	ctx := context.Background()

	first := sampleModel()
	if err := store.Save(ctx, first); err != nil {
		t.Fatalf("Save(first) error = %v", err)
	}

	second := sampleModel()
	second.TestRMSE = 6.1
	if err := store.Save(ctx, second); err != nil {
		t.Fatalf("Save(second) error = %v", err)
	}

	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.ID != second.ID || got.TestRMSE != 6.1 {
		t.Errorf("loaded model is not the replacement: %+v", got)
	}
}

func TestFileStore_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "model.json")
	store := NewFileStore(path)

	if err := store.Save(context.Background(), sampleModel()); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if _, err := store.Load(context.Background()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
}
