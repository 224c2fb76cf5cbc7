package predictor

import (
	"math"
	"testing"
)

func TestRidge_FitRecoversLinearRelation(t *testing.T) {
	// y = 3 + 2*x1 - x2, enough rows that light regularization barely
	// shifts the solution.
	var features [][]float64
	var targets []float64
	for i := 0; i < 50; i++ {
		x1 := float64(i)
		x2 := float64(i%7) - 3
		features = append(features, []float64{x1, x2})
		targets = append(targets, 3+2*x1-x2)
	}

	r := NewRidge(0.001)
	if err := r.Fit(features, targets); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}

	pred, err := r.Predict([]float64{10, 1})
	if err != nil {
		t.Fatalf("Predict() error = %v", err)
	}
	want := 3.0 + 2*10 - 1
	if math.Abs(pred-want) > 0.1 {
		t.Errorf("Predict() = %v, want about %v", pred, want)
	}
}

func TestRidge_FitIsDeterministic(t *testing.T) {
	features := [][]float64{{1, 2}, {2, 1}, {3, 5}, {4, 2}, {5, 9}}
	targets := []float64{10, 12, 20, 18, 32}

	a := NewRidge(DefaultLambda)
	b := NewRidge(DefaultLambda)
	if err := a.Fit(features, targets); err != nil {
		t.Fatalf("Fit(a) error = %v", err)
	}
	if err := b.Fit(features, targets); err != nil {
		t.Fatalf("Fit(b) error = %v", err)
	}

	if a.Intercept != b.Intercept {
		t.Errorf("intercepts differ: %v vs %v", a.Intercept, b.Intercept)
	}
	for j := range a.Weights {
		if a.Weights[j] != b.Weights[j] {
			t.Errorf("weight %d differs: %v vs %v", j, a.Weights[j], b.Weights[j])
		}
	}
}

func TestRidge_FitErrors(t *testing.T) {
	tests := []struct {
		name     string
		features [][]float64
		targets  []float64
	}{
		{"no rows", nil, nil},
		{"length mismatch", [][]float64{{1}}, []float64{1, 2}},
		{"zero width", [][]float64{{}}, []float64{1}},
		{"ragged rows", [][]float64{{1, 2}, {1}}, []float64{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRidge(DefaultLambda)
			if err := r.Fit(tt.features, tt.targets); err == nil {
				t.Error("Fit() expected error")
			}
		})
	}
}

func TestRidge_PredictErrors(t *testing.T) {
	r := NewRidge(DefaultLambda)
	if _, err := r.Predict([]float64{1}); err == nil {
		t.Error("Predict() before Fit expected error")
	}

	if err := r.Fit([][]float64{{1, 2}, {2, 3}, {3, 1}}, []float64{1, 2, 3}); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}
	if _, err := r.Predict([]float64{1}); err == nil {
		t.Error("Predict() with wrong width expected error")
	}
}

func TestNewRidge_NegativeLambdaFallsBack(t *testing.T) {
	r := NewRidge(-5)
	if r.Lambda != DefaultLambda {
		t.Errorf("Lambda = %v, want %v", r.Lambda, DefaultLambda)
	}
}

func TestCodec_RoundTripPredictsIdentically(t *testing.T) {
	features := [][]float64{{1, 2}, {2, 1}, {3, 5}, {4, 2}, {5, 9}, {6, 4}}
	targets := []float64{10, 12, 20, 18, 32, 25}

	original := NewRidge(DefaultLambda)
	if err := original.Fit(features, targets); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}

	blob, err := Marshal(original)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	restored, err := Unmarshal(blob)
	if err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	probe := []float64{2.5, 3.5}
	wantPred, err := original.Predict(probe)
	if err != nil {
		t.Fatalf("Predict(original) error = %v", err)
	}
	gotPred, err := restored.Predict(probe)
	if err != nil {
		t.Fatalf("Predict(restored) error = %v", err)
	}
	// JSON float round-trips are exact, so predictions must match bit for
	// bit, not just approximately.
	if gotPred != wantPred {
		t.Errorf("restored prediction = %v, original = %v", gotPred, wantPred)
	}
}

func TestCodec_UnknownAlgorithm(t *testing.T) {
	if _, err := Unmarshal([]byte(`{"algorithm":"forest","params":{}}`)); err == nil {
		t.Error("Unmarshal() expected error for unknown algorithm")
	}
	if _, err := Unmarshal([]byte(`not json`)); err == nil {
		t.Error("Unmarshal() expected error for bad blob")
	}
}

func TestAlgorithm(t *testing.T) {
	if got := Algorithm(NewRidge(DefaultLambda)); got != AlgorithmRidge {
		t.Errorf("Algorithm() = %q, want %q", got, AlgorithmRidge)
	}
}
