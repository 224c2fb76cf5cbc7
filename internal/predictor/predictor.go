// Package predictor holds the point-prediction boundary: a capability
// interface over a regression model plus the standardization applied to its
// inputs. The concrete algorithm is swappable without touching the feature
// builder or the recursive forecaster.
package predictor

import (
	"math"

	"github.com/tanmaysharma231/Mcp-hackathon-healthcare/internal/domain"
)

// Predictor maps one standardized feature vector to one glucose value.
// Fit is called once at training time; Predict is reused for every forecast
// step afterwards.
type Predictor interface {
	Fit(features [][]float64, targets []float64) error
	Predict(features []float64) (float64, error)
}

// FitScaler computes per-feature standardization parameters over the
// training rows. Features with zero spread keep a divisor of 1 so constant
// columns (for example all-zero carbs) transform to zero instead of NaN.
func FitScaler(features [][]float64) domain.ScalingParams {
	if len(features) == 0 {
		return domain.ScalingParams{}
	}

	width := len(features[0])
	mean := make([]float64, width)
	std := make([]float64, width)

	for j := 0; j < width; j++ {
		sum := 0.0
		for _, row := range features {
			sum += row[j]
		}
		mean[j] = sum / float64(len(features))

		sumSquares := 0.0
		for _, row := range features {
			d := row[j] - mean[j]
			sumSquares += d * d
		}
		std[j] = 1
		if v := sumSquares / float64(len(features)); v > 0 {
			std[j] = math.Sqrt(v)
		}
	}

	return domain.ScalingParams{Mean: mean, Std: std}
}

// Standardize applies fixed scaling parameters to one feature vector.
func Standardize(params domain.ScalingParams, features []float64) []float64 {
	out := make([]float64, len(features))
	for j, v := range features {
		out[j] = (v - params.Mean[j]) / params.Std[j]
	}
	return out
}

// StandardizeAll applies fixed scaling parameters to every row.
func StandardizeAll(params domain.ScalingParams, features [][]float64) [][]float64 {
	out := make([][]float64, len(features))
	for i, row := range features {
		out[i] = Standardize(params, row)
	}
	return out
}
