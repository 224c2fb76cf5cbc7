package seed

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/tanmaysharma231/Mcp-hackathon-healthcare/internal/domain"
	"github.com/tanmaysharma231/Mcp-hackathon-healthcare/internal/ingest"
	"gorm.io/gorm"
)

const (
	seededDays = 30
	// Meal hours drive carb intake and the insulin boluses that follow.
	breakfastHour = 7
	lunchHour     = 12
	dinnerHour    = 18
)

// Run seeds the database with a synthetic glucose series. Skips seeding when
// readings already exist, so it is safe to call on every startup.
func Run(db *gorm.DB) error {
	var count int64
	if err := db.Model(&domain.Reading{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count readings: %w", err)
	}
	if count > 0 {
		log.Printf("Seed skipped: %d readings already present", count)
		return nil
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	readings := generateSeries(rng)

	if err := db.CreateInBatches(readings, 500).Error; err != nil {
		return fmt.Errorf("failed to insert seed readings: %w", err)
	}

	log.Printf("Seed completed: %d readings over %d days", len(readings), seededDays)
	return nil
}

// generateSeries builds a 5-minute series with a circadian baseline, meal
// spikes, and measurement noise, roughly resembling CGM output.
func generateSeries(rng *rand.Rand) []domain.Reading {
	start := time.Now().UTC().AddDate(0, 0, -seededDays).Truncate(ingest.SampleInterval)
	stepsPerDay := int(24 * time.Hour / ingest.SampleInterval)
	total := seededDays * stepsPerDay

	readings := make([]domain.Reading, 0, total)
	for i := 0; i < total; i++ {
		ts := start.Add(time.Duration(i) * ingest.SampleInterval)
		hourOfDay := float64(ts.Hour()) + float64(ts.Minute())/60

		// Circadian baseline around 120 mg/dL, lowest in the early morning.
		glucose := 120 + 15*math.Sin(2*math.Pi*(hourOfDay-9)/24)

		var insulin, carbs float64
		switch ts.Hour() {
		case breakfastHour, lunchHour, dinnerHour:
			if ts.Minute() == 0 {
				carbs = 30 + rng.Float64()*40
				insulin = carbs / 12
			}
		}

		// Post-meal rise decays over about two hours.
		for _, mealHour := range []int{breakfastHour, lunchHour, dinnerHour} {
			sinceMeal := hourOfDay - float64(mealHour)
			if sinceMeal > 0 && sinceMeal < 3 {
				glucose += 45 * sinceMeal * math.Exp(-sinceMeal*1.5)
			}
		}

		glucose += rng.NormFloat64() * 6

		readings = append(readings, domain.Reading{
			ID:        uuid.New(),
			Timestamp: ts,
			Glucose:   glucose,
			Insulin:   insulin,
			Carbs:     carbs,
		})
	}
	return readings
}
