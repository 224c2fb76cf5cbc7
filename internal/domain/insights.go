package domain

// InsightsContext is the aggregated data handed to the LLM when generating
// narrative insights. Everything in it is computed locally; the LLM only
// rephrases and interprets.
type InsightsContext struct {
	Hourly   HourlyPatterns `json:"hourly_patterns"`
	Daily    DailyPatterns  `json:"daily_patterns"`
	Overall  OverallStats   `json:"overall_stats"`
	Forecast ForecastResult `json:"forecast"`
}

// GlucoseInsights is the structured LLM output.
// @Description LLM-generated narrative over forecast and pattern data.
type GlucoseInsights struct {
	// Short summary of the current state and forecast trend
	Summary string `json:"summary"`
	// Observations about hourly/daily patterns and time in range
	Observations []string `json:"observations"`
	// Non-medical, behavior-level suggestions
	Guidance []string `json:"guidance"`
}

// InsightsResponse is the response body for the insights endpoint.
// @Description Forecast, pattern summaries, and LLM narrative in one payload.
type InsightsResponse struct {
	Forecast ForecastResult  `json:"forecast"`
	Hourly   HourlyPatterns  `json:"hourly_patterns"`
	Daily    DailyPatterns   `json:"daily_patterns"`
	Overall  OverallStats    `json:"overall_stats"`
	Insights GlucoseInsights `json:"insights"`
	// Trace ID of the request span, when tracing is enabled
	TraceID string `json:"trace_id,omitempty"`
}
