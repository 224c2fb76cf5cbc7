package service

import (
	"context"
	"fmt"

	"github.com/tanmaysharma231/Mcp-hackathon-healthcare/internal/domain"
	"github.com/tanmaysharma231/Mcp-hackathon-healthcare/internal/ingest"
)

// PatternService runs read-only aggregations over the canonical series. It
// never touches the trained model and works on raw ingested data.
type PatternService interface {
	// Analyze ingests the source and returns the summary for kind.
	Analyze(ctx context.Context, src ingest.Source, kind domain.PatternKind) (*domain.PatternResponse, error)
}

type patternService struct{}

// NewPatternService creates a PatternService.
func NewPatternService() PatternService {
	return &patternService{}
}

func (s *patternService) Analyze(ctx context.Context, src ingest.Source, kind domain.PatternKind) (*domain.PatternResponse, error) {
	series, err := ingest.Load(ctx, src)
	if err != nil {
		return nil, err
	}

	response := &domain.PatternResponse{Kind: kind}
	switch kind {
	case domain.PatternHourly:
		response.Hourly = hourlyPatterns(series)
	case domain.PatternDaily:
		response.Daily = dailyPatterns(series)
	case domain.PatternOverall:
		response.Overall = overallStats(series)
	default:
		return nil, fmt.Errorf("%w: unknown pattern kind %q", domain.ErrInvalidInput, kind)
	}
	return response, nil
}

// hourlyPatterns groups glucose by hour of day and reports the mean per
// bucket plus the peak and lowest hours.
func hourlyPatterns(series *domain.Series) *domain.HourlyPatterns {
	buckets := make(map[int][]float64)
	for _, r := range series.Readings {
		buckets[r.Hour] = append(buckets[r.Hour], r.Glucose)
	}

	result := &domain.HourlyPatterns{HourlyAverages: make(map[int]float64, len(buckets))}
	first := true
	// Iterate hours in order so ties resolve to the earliest hour.
	for hour := 0; hour < 24; hour++ {
		values, ok := buckets[hour]
		if !ok {
			continue
		}
		avg := mean(values)
		result.HourlyAverages[hour] = avg

		if first || avg > result.HourlyAverages[result.PeakHour] {
			result.PeakHour = hour
		}
		if first || avg < result.HourlyAverages[result.LowestHour] {
			result.LowestHour = hour
		}
		first = false
	}
	return result
}

// dailyPatterns groups glucose by day of week and compares weekends to
// weekdays.
func dailyPatterns(series *domain.Series) *domain.DailyPatterns {
	buckets := make(map[int][]float64)
	var weekend, weekday []float64
	for _, r := range series.Readings {
		buckets[r.DayOfWeek] = append(buckets[r.DayOfWeek], r.Glucose)
		if r.IsWeekend {
			weekend = append(weekend, r.Glucose)
		} else {
			weekday = append(weekday, r.Glucose)
		}
	}

	result := &domain.DailyPatterns{
		DailyAverages: make(map[int]float64, len(buckets)),
		WeekendAvg:    mean(weekend),
		WeekdayAvg:    mean(weekday),
	}
	for day, values := range buckets {
		result.DailyAverages[day] = mean(values)
	}
	result.Difference = result.WeekendAvg - result.WeekdayAvg
	return result
}

// overallStats summarizes the whole series.
func overallStats(series *domain.Series) *domain.OverallStats {
	result := &domain.OverallStats{}
	if series.Len() == 0 {
		return result
	}

	stats := computeTrainingStats(series)
	result.Mean = stats.MeanGlucose
	result.Std = stats.StdGlucose

	values := series.GlucoseValues()
	result.Min, result.Max = values[0], values[0]
	for _, v := range values {
		if v < result.Min {
			result.Min = v
		}
		if v > result.Max {
			result.Max = v
		}
	}
	return result
}
