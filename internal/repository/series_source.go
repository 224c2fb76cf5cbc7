package repository

import (
	"context"
	"strconv"

	"github.com/tanmaysharma231/Mcp-hackathon-healthcare/internal/ingest"
)

// seriesSource adapts stored readings into the raw-table shape the ingestion
// normalizer expects, so database- and CSV-fed series go through the same
// cleaning path.
type seriesSource struct {
	readings ReadingRepository
}

// NewSeriesSource creates an ingest.Source over the readings repository.
func NewSeriesSource(readings ReadingRepository) ingest.Source {
	return &seriesSource{readings: readings}
}

func (s *seriesSource) Table(ctx context.Context) (*ingest.Table, error) {
	readings, err := s.readings.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	table := &ingest.Table{
		Columns: []string{"datetime", "glucose", "insulin", "carbs"},
		Rows:    make([][]string, 0, len(readings)),
	}
	for _, r := range readings {
		table.Rows = append(table.Rows, []string{
			r.Timestamp.UTC().Format("2006-01-02 15:04:05"),
			strconv.FormatFloat(r.Glucose, 'f', -1, 64),
			strconv.FormatFloat(r.Insulin, 'f', -1, 64),
			strconv.FormatFloat(r.Carbs, 'f', -1, 64),
		})
	}
	return table, nil
}
