package domain

import (
	"time"

	"github.com/google/uuid"
)

// Reading is a single cleaned glucose measurement with optional covariates.
// Glucose is in mg/dL and, after cleaning, always within [40, 400].
type Reading struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Timestamp time.Time `gorm:"not null;index:idx_readings_timestamp" json:"timestamp"`
	Glucose   float64   `gorm:"not null" json:"glucose"`
	Insulin   float64   `gorm:"not null;default:0" json:"insulin"`
	Carbs     float64   `gorm:"not null;default:0" json:"carbs"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Calendar fields derived from Timestamp during normalization.
	// Hour is 0-23; DayOfWeek is 0 (Monday) through 6 (Sunday).
	Hour      int  `gorm:"-" json:"hour"`
	DayOfWeek int  `gorm:"-" json:"day_of_week"`
	IsWeekend bool `gorm:"-" json:"is_weekend"`
}

func (Reading) TableName() string {
	return "readings"
}

// DeriveCalendar fills the calendar fields from the timestamp.
func (r *Reading) DeriveCalendar() {
	r.Hour = r.Timestamp.Hour()
	// time.Weekday counts from Sunday; clinical day-of-week counts from Monday.
	r.DayOfWeek = (int(r.Timestamp.Weekday()) + 6) % 7
	r.IsWeekend = r.DayOfWeek >= 5
}

// Series is a canonical glucose series: cleaned readings sorted by timestamp
// non-decreasing, ties in original input order. Built once per ingestion and
// not mutated afterwards.
type Series struct {
	Readings []Reading `json:"readings"`
}

// Len returns the number of readings.
func (s *Series) Len() int {
	return len(s.Readings)
}

// Last returns the most recent reading. The second value is false for an
// empty series.
func (s *Series) Last() (Reading, bool) {
	if len(s.Readings) == 0 {
		return Reading{}, false
	}
	return s.Readings[len(s.Readings)-1], true
}

// GlucoseValues returns the glucose column in series order.
func (s *Series) GlucoseValues() []float64 {
	values := make([]float64, len(s.Readings))
	for i, r := range s.Readings {
		values[i] = r.Glucose
	}
	return values
}

// CreateReadingsRequest is the request body for ingesting readings.
// @Description Request payload for storing a batch of glucose readings.
type CreateReadingsRequest struct {
	// Readings to store (at least one)
	Readings []ReadingInput `json:"readings" validate:"required,min=1,max=5000,dive"`
}

// ReadingInput is a single raw reading in an ingestion request.
// @Description One raw glucose reading. Out-of-range values are accepted here
// and filtered during normalization.
type ReadingInput struct {
	// Measurement time in RFC3339 format
	Timestamp time.Time `json:"timestamp" validate:"required" example:"2024-01-15T06:00:00Z"`
	// Glucose in mg/dL
	Glucose float64 `json:"glucose" validate:"required,gt=0" example:"112.5"`
	// Insulin bolus in units
	Insulin float64 `json:"insulin" validate:"gte=0" example:"1.5"`
	// Carbohydrates in grams
	Carbs float64 `json:"carbs" validate:"gte=0" example:"45"`
}

// ReadingListResponse is the response body for listing readings.
// @Description Paginated list of stored readings.
type ReadingListResponse struct {
	// Array of stored readings
	Data []Reading `json:"data"`
	// Pagination metadata
	Pagination PaginationResponse `json:"pagination"`
}

// PaginationResponse contains pagination metadata.
// @Description Cursor-based pagination info.
type PaginationResponse struct {
	// Cursor for fetching the next page (empty if no more pages)
	NextCursor string `json:"next_cursor,omitempty"`
	// True if more results are available
	HasMore bool `json:"has_more" example:"true"`
}

// ReadingFilter contains filter parameters for listing readings.
type ReadingFilter struct {
	From   *time.Time
	To     *time.Time
	Limit  int
	Cursor string
}
