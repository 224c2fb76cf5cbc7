package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ScalingParams holds the per-feature standardization parameters fixed at
// training time. Std entries of zero are stored as 1 so transformation never
// divides by zero.
type ScalingParams struct {
	Mean []float64 `json:"mean"`
	Std  []float64 `json:"std"`
}

// TrainingStats are descriptive statistics accumulated over the cleaned
// canonical series at training time. MeanGlucose and StdGlucose are reused
// during the recursive forecast to standardize predicted values; the
// percentage fields are clinical-style time-in-range ratios (0-100).
type TrainingStats struct {
	TotalReadings   int     `json:"total_readings"`
	MeanGlucose     float64 `json:"mean_glucose"`
	StdGlucose      float64 `json:"std_glucose"`
	TimeInRangePct  float64 `json:"time_in_range_pct"`
	TimeBelow70Pct  float64 `json:"time_below_70_pct"`
	TimeAbove180Pct float64 `json:"time_above_180_pct"`
}

// TrainedModel is the full persisted model state. It is an immutable value:
// a new training run produces a new instance, and a loaded instance is never
// mutated in place. The Predictor field is an opaque blob owned by the
// predictor package.
type TrainedModel struct {
	ID        uuid.UUID `json:"id"`
	TrainedAt time.Time `json:"trained_at"`
	Algorithm string    `json:"algorithm"`

	Predictor json.RawMessage `json:"predictor"`
	Scaler    ScalingParams   `json:"scaler"`
	Stats     TrainingStats   `json:"stats"`

	// Schema is the ordered feature column list agreed at training time.
	// Every feature vector fed to the predictor must conform to it exactly.
	Schema []string `json:"schema"`

	TestRMSE  float64 `json:"test_rmse"`
	TestR2    float64 `json:"test_r2"`
	IsTrained bool    `json:"is_trained"`
}

// Info returns the reportable metadata of the model, without the blob.
func (m *TrainedModel) Info() ModelInfo {
	return ModelInfo{
		ID:        m.ID,
		TrainedAt: m.TrainedAt,
		Algorithm: m.Algorithm,
		Schema:    m.Schema,
		Stats:     m.Stats,
		TestRMSE:  m.TestRMSE,
		TestR2:    m.TestR2,
	}
}

// ModelInfo is the response body for model metadata endpoints.
// @Description Metadata of the currently persisted model.
type ModelInfo struct {
	// Model identifier
	ID uuid.UUID `json:"id"`
	// Training completion time (UTC)
	TrainedAt time.Time `json:"trained_at"`
	// Point predictor algorithm tag
	Algorithm string `json:"algorithm" example:"ridge"`
	// Ordered feature schema
	Schema []string `json:"schema"`
	// Training-time series statistics
	Stats TrainingStats `json:"stats"`
	// Held-out RMSE in mg/dL
	TestRMSE float64 `json:"test_rmse" example:"8.4"`
	// Held-out coefficient of determination
	TestR2 float64 `json:"test_r2" example:"0.93"`
}
