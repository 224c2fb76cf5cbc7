// Package features derives the fixed feature schema from a canonical glucose
// series: lag features, trailing rolling means, first difference, a local
// OLS trend, lagged insulin/carb covariates, and cyclical time-of-day
// encoding.
package features

import (
	"math"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/tanmaysharma231/Mcp-hackathon-healthcare/internal/domain"
)

// MinHistory is the number of predecessor readings a row needs before every
// feature is defined. Rows closer to the series start are dropped; that is
// the sole missing-value policy, there is no imputation.
const MinHistory = 24

var (
	lagSteps    = []int{1, 2, 3, 6, 12}
	meanWindows = []int{6, 12, 24}
)

// trendWindow is the trailing window for the local OLS slope.
const trendWindow = 6

// insulinSumWindow is the trailing window for recent insulin load.
const insulinSumWindow = 12

// schema is the fixed feature order. The five glucose lags must stay in
// slots 0-4: the recursive forecaster shifts exactly those slots between
// steps.
var schema = []string{
	"glucose_lag_1",
	"glucose_lag_2",
	"glucose_lag_3",
	"glucose_lag_6",
	"glucose_lag_12",
	"glucose_avg_6",
	"glucose_avg_12",
	"glucose_avg_24",
	"glucose_change",
	"glucose_trend",
	"insulin_lag_1",
	"carbs_lag_1",
	"insulin_sum_12",
	"hour_sin",
	"hour_cos",
	"is_weekend",
}

// Schema returns the ordered feature column names.
func Schema() []string {
	out := make([]string, len(schema))
	copy(out, schema)
	return out
}

// Row is one fully-featurized observation. Values align index-for-index
// with Schema(); Target is the glucose value at the row's own timestamp.
type Row struct {
	Timestamp time.Time
	Target    float64
	Values    []float64
}

// Set is a featurized series.
type Set struct {
	Names []string
	Rows  []Row
}

// Last returns the most recent row. The second value is false for an empty
// set.
func (s *Set) Last() (Row, bool) {
	if len(s.Rows) == 0 {
		return Row{}, false
	}
	return s.Rows[len(s.Rows)-1], true
}

// Matrix returns the feature matrix and target vector for model fitting.
func (s *Set) Matrix() ([][]float64, []float64) {
	x := make([][]float64, len(s.Rows))
	y := make([]float64, len(s.Rows))
	for i, row := range s.Rows {
		x[i] = row.Values
		y[i] = row.Target
	}
	return x, y
}

// Build featurizes a canonical series. Rows without MinHistory predecessors
// are dropped, so a series of n >= MinHistory readings yields exactly
// n - MinHistory rows and a shorter series yields none.
func Build(series *domain.Series) *Set {
	set := &Set{Names: Schema()}
	n := series.Len()
	if n <= MinHistory {
		return set
	}

	glucose := series.GlucoseValues()
	set.Rows = make([]Row, 0, n-MinHistory)

	for i := MinHistory; i < n; i++ {
		r := series.Readings[i]
		values := make([]float64, 0, len(schema))

		for _, lag := range lagSteps {
			values = append(values, glucose[i-lag])
		}
		for _, w := range meanWindows {
			values = append(values, floats.Sum(glucose[i-w+1:i+1])/float64(w))
		}
		values = append(values, glucose[i]-glucose[i-1])
		values = append(values, trendSlope(glucose[i-trendWindow+1:i+1]))
		values = append(values, series.Readings[i-1].Insulin)
		values = append(values, series.Readings[i-1].Carbs)

		insulinSum := 0.0
		for j := i - insulinSumWindow + 1; j <= i; j++ {
			insulinSum += series.Readings[j].Insulin
		}
		values = append(values, insulinSum)

		hourAngle := 2 * math.Pi * float64(r.Hour) / 24
		values = append(values, math.Sin(hourAngle))
		values = append(values, math.Cos(hourAngle))

		weekend := 0.0
		if r.IsWeekend {
			weekend = 1
		}
		values = append(values, weekend)

		set.Rows = append(set.Rows, Row{
			Timestamp: r.Timestamp,
			Target:    glucose[i],
			Values:    values,
		})
	}

	return set
}

// trendSlope fits an OLS line over the window with positions 0..len-1 as the
// independent variable and returns its slope, or 0 for fewer than 2 points.
func trendSlope(window []float64) float64 {
	if len(window) < 2 {
		return 0
	}
	xs := make([]float64, len(window))
	for i := range xs {
		xs[i] = float64(i)
	}
	_, slope := stat.LinearRegression(xs, window, nil, false)
	return slope
}
