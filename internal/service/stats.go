package service

import (
	"gonum.org/v1/gonum/stat"

	"github.com/tanmaysharma231/Mcp-hackathon-healthcare/internal/domain"
)

const (
	// Clinical time-in-range band in mg/dL.
	rangeLow  = 70.0
	rangeHigh = 180.0
)

// computeTrainingStats accumulates descriptive statistics over a cleaned
// canonical series. Mean and standard deviation double as the rescaling
// parameters for predicted values during the recursive forecast.
func computeTrainingStats(series *domain.Series) domain.TrainingStats {
	stats := domain.TrainingStats{TotalReadings: series.Len()}
	if series.Len() == 0 {
		return stats
	}

	values := series.GlucoseValues()
	stats.MeanGlucose = stat.Mean(values, nil)
	if len(values) > 1 {
		stats.StdGlucose = stat.StdDev(values, nil)
	}

	inRange, below, above := 0, 0, 0
	for _, v := range values {
		switch {
		case v < rangeLow:
			below++
		case v > rangeHigh:
			above++
		default:
			inRange++
		}
	}
	total := float64(len(values))
	stats.TimeInRangePct = float64(inRange) / total * 100
	stats.TimeBelow70Pct = float64(below) / total * 100
	stats.TimeAbove180Pct = float64(above) / total * 100

	return stats
}

// mean returns the average of values, or 0 for an empty slice.
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return stat.Mean(values, nil)
}
