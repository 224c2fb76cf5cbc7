package domain

// TimestampLayout is the wire format for forecast timestamps.
const TimestampLayout = "2006-01-02 15:04"

// ForecastResult is a multi-step glucose forecast. The four sequences are
// aligned index-for-index and always have the same length. The confidence
// band is a constant +-1.5*RMSE around each prediction; it does not widen
// with the horizon, which is a deliberate simplification.
// @Description Multi-step glucose forecast with a constant-width confidence band.
type ForecastResult struct {
	// Requested horizon in hours
	HorizonHours float64 `json:"horizon_hours" example:"2"`
	// Predicted glucose per 5-minute step, clamped to [40, 400] mg/dL
	Predictions []float64 `json:"predictions"`
	// Future timestamps in "YYYY-MM-DD HH:MM" format
	Timestamps []string `json:"timestamps"`
	// Lower confidence bound per step
	ConfidenceLower []float64 `json:"confidence_lower"`
	// Upper confidence bound per step
	ConfidenceUpper []float64 `json:"confidence_upper"`
	// First predicted value (5 minutes ahead)
	NextReading float64 `json:"next_reading" example:"118.2"`
	// Held-out RMSE used to size the band
	RMSE float64 `json:"rmse" example:"8.4"`
}

// Steps returns the number of forecast steps.
func (f *ForecastResult) Steps() int {
	return len(f.Predictions)
}

// PatternKind selects which pattern summary to compute.
// @Description Pattern summary kind: hourly, daily, or overall.
type PatternKind string

const (
	PatternHourly  PatternKind = "hourly"
	PatternDaily   PatternKind = "daily"
	PatternOverall PatternKind = "overall"
)

// HourlyPatterns summarizes glucose by hour of day.
// @Description Mean glucose per hour of day with peak and lowest hours.
type HourlyPatterns struct {
	// Hour (0-23) with the highest mean glucose
	PeakHour int `json:"peak_hour" example:"8"`
	// Hour (0-23) with the lowest mean glucose
	LowestHour int `json:"lowest_hour" example:"3"`
	// Mean glucose per hour of day
	HourlyAverages map[int]float64 `json:"hourly_averages"`
}

// DailyPatterns summarizes glucose by day of week.
// @Description Mean glucose per weekday plus a weekend-vs-weekday comparison.
type DailyPatterns struct {
	// Mean glucose per day of week (0=Monday .. 6=Sunday)
	DailyAverages map[int]float64 `json:"daily_averages"`
	// Mean glucose on weekend days
	WeekendAvg float64 `json:"weekend_avg" example:"131.7"`
	// Mean glucose on weekdays
	WeekdayAvg float64 `json:"weekday_avg" example:"124.2"`
	// WeekendAvg minus WeekdayAvg
	Difference float64 `json:"difference" example:"7.5"`
}

// OverallStats summarizes the whole series.
// @Description Overall glucose distribution summary.
type OverallStats struct {
	Mean float64 `json:"mean" example:"126.3"`
	Std  float64 `json:"std" example:"31.8"`
	Min  float64 `json:"min" example:"52"`
	Max  float64 `json:"max" example:"287"`
}

// PatternResponse is the response body for pattern queries. Exactly one of
// the three summaries is set, matching Kind.
// @Description Pattern analysis result for the requested kind.
type PatternResponse struct {
	Kind    PatternKind     `json:"kind" example:"hourly"`
	Hourly  *HourlyPatterns `json:"hourly_patterns,omitempty"`
	Daily   *DailyPatterns  `json:"daily_patterns,omitempty"`
	Overall *OverallStats   `json:"overall_stats,omitempty"`
}
