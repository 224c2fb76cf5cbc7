package predictor

import (
	"math"
	"testing"
)

func TestFitScaler(t *testing.T) {
	features := [][]float64{
		{1, 5, 7},
		{2, 5, 9},
		{3, 5, 11},
	}

	params := FitScaler(features)
	if len(params.Mean) != 3 || len(params.Std) != 3 {
		t.Fatalf("scaler width = %d/%d, want 3/3", len(params.Mean), len(params.Std))
	}

	if params.Mean[0] != 2 {
		t.Errorf("mean[0] = %v, want 2", params.Mean[0])
	}
	// Population standard deviation of {1,2,3}.
	if want := math.Sqrt(2.0 / 3.0); math.Abs(params.Std[0]-want) > 1e-12 {
		t.Errorf("std[0] = %v, want %v", params.Std[0], want)
	}
	// A constant column keeps a divisor of 1.
	if params.Std[1] != 1 {
		t.Errorf("std[1] = %v, want 1 for constant column", params.Std[1])
	}
}

func TestFitScaler_Empty(t *testing.T) {
	params := FitScaler(nil)
	if params.Mean != nil || params.Std != nil {
		t.Errorf("FitScaler(nil) = %+v, want empty params", params)
	}
}

func TestStandardize(t *testing.T) {
	features := [][]float64{
		{1, 5},
		{2, 5},
		{3, 5},
	}
	params := FitScaler(features)

	scaled := StandardizeAll(params, features)
	for i := range scaled {
		for j := range scaled[i] {
			if math.IsNaN(scaled[i][j]) || math.IsInf(scaled[i][j], 0) {
				t.Fatalf("scaled[%d][%d] = %v", i, j, scaled[i][j])
			}
		}
	}

	// The mean row transforms to zero, constant columns always to zero.
	mid := Standardize(params, []float64{2, 5})
	if mid[0] != 0 || mid[1] != 0 {
		t.Errorf("Standardize(mean row) = %v, want zeros", mid)
	}

	// Standardized column has unit spread: first and last rows are
	// symmetric around zero.
	if scaled[0][0] != -scaled[2][0] {
		t.Errorf("scaled endpoints = %v and %v, want symmetric", scaled[0][0], scaled[2][0])
	}
}
