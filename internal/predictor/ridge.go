package predictor

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// AlgorithmRidge tags serialized ridge models.
const AlgorithmRidge = "ridge"

// DefaultLambda is the ridge regularization strength used when none is
// configured.
const DefaultLambda = 1.0

var (
	errNotFitted      = errors.New("predictor not fitted")
	errNoTrainingData = errors.New("no training data")
)

// Ridge is an L2-regularized linear regressor solved via the normal
// equations. Fitting is fully deterministic, so persisted models reproduce
// bit-identical predictions after a load.
type Ridge struct {
	Lambda    float64   `json:"lambda"`
	Intercept float64   `json:"intercept"`
	Weights   []float64 `json:"weights"`
}

// NewRidge creates an unfitted ridge regressor.
func NewRidge(lambda float64) *Ridge {
	if lambda < 0 {
		lambda = DefaultLambda
	}
	return &Ridge{Lambda: lambda}
}

// Fit solves (X'X + lambda*I) w = X'y with an unpenalized intercept column.
func (r *Ridge) Fit(features [][]float64, targets []float64) error {
	n := len(features)
	if n == 0 || n != len(targets) {
		return errNoTrainingData
	}
	width := len(features[0])
	if width == 0 {
		return errNoTrainingData
	}

	// Augment with a leading column of ones for the intercept.
	x := mat.NewDense(n, width+1, nil)
	for i, row := range features {
		if len(row) != width {
			return fmt.Errorf("ragged feature matrix: row %d has width %d, want %d", i, len(row), width)
		}
		x.Set(i, 0, 1)
		for j, v := range row {
			x.Set(i, j+1, v)
		}
	}
	y := mat.NewVecDense(n, targets)

	var gram mat.Dense
	gram.Mul(x.T(), x)
	for j := 1; j <= width; j++ {
		gram.Set(j, j, gram.At(j, j)+r.Lambda)
	}

	var xty mat.VecDense
	xty.MulVec(x.T(), y)

	var solution mat.VecDense
	if err := solution.SolveVec(&gram, &xty); err != nil {
		return fmt.Errorf("ridge solve failed: %w", err)
	}

	r.Intercept = solution.AtVec(0)
	r.Weights = make([]float64, width)
	for j := 0; j < width; j++ {
		r.Weights[j] = solution.AtVec(j + 1)
	}
	return nil
}

// Predict returns the linear prediction for one feature vector.
func (r *Ridge) Predict(features []float64) (float64, error) {
	if len(r.Weights) == 0 {
		return 0, errNotFitted
	}
	if len(features) != len(r.Weights) {
		return 0, fmt.Errorf("feature vector width %d does not match model width %d", len(features), len(r.Weights))
	}
	out := r.Intercept
	for j, w := range r.Weights {
		out += w * features[j]
	}
	return out, nil
}
