// Command generate writes a synthetic glucose CSV for local development.
// It uses the legacy export column names (blood_glucose, premeal_bolus_units,
// separate date and time columns) so the ingestion aliasing gets exercised.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"strconv"
	"time"
)

func main() {
	out := flag.String("out", "glucose_data.csv", "output CSV path")
	days := flag.Int("days", 30, "number of days to generate")
	seed := flag.Int64("seed", 42, "random seed")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("failed to create %s: %v", *out, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"date", "time", "blood_glucose", "premeal_bolus_units", "carbs"}); err != nil {
		log.Fatalf("failed to write header: %v", err)
	}

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	steps := *days * 288
	rows := 0
	for i := 0; i < steps; i++ {
		ts := start.Add(time.Duration(i) * 5 * time.Minute)
		hourOfDay := float64(ts.Hour()) + float64(ts.Minute())/60

		glucose := 120 + 15*math.Sin(2*math.Pi*(hourOfDay-9)/24)

		var insulin, carbs float64
		if (ts.Hour() == 7 || ts.Hour() == 12 || ts.Hour() == 18) && ts.Minute() == 0 {
			carbs = 30 + rng.Float64()*40
			insulin = carbs / 12
		}
		for _, mealHour := range []float64{7, 12, 18} {
			sinceMeal := hourOfDay - mealHour
			if sinceMeal > 0 && sinceMeal < 3 {
				glucose += 45 * sinceMeal * math.Exp(-sinceMeal*1.5)
			}
		}
		glucose += rng.NormFloat64() * 6

		record := []string{
			ts.Format("2006-01-02"),
			ts.Format("15:04:05"),
			strconv.FormatFloat(glucose, 'f', 1, 64),
			strconv.FormatFloat(insulin, 'f', 2, 64),
			strconv.FormatFloat(carbs, 'f', 1, 64),
		}
		if err := w.Write(record); err != nil {
			log.Fatalf("failed to write row: %v", err)
		}
		rows++
	}

	fmt.Printf("Wrote %d rows to %s\n", rows, *out)
}
