package ingest

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/tanmaysharma231/Mcp-hackathon-healthcare/internal/domain"
)

// Table is a raw tabular input: a header row and string cells. Column names
// are matched case-insensitively during normalization.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Source produces a raw table for normalization. Implementations exist for
// CSV files and for the readings repository.
type Source interface {
	Table(ctx context.Context) (*Table, error)
}

// CSVSource reads a table from a CSV file on disk.
type CSVSource struct {
	path string
}

// NewCSVSource creates a Source backed by the CSV file at path.
func NewCSVSource(path string) *CSVSource {
	return &CSVSource{path: path}
}

func (s *CSVSource) Table(ctx context.Context) (*Table, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", s.path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}
	if len(records) == 0 {
		return &Table{}, nil
	}

	return &Table{
		Columns: records[0],
		Rows:    records[1:],
	}, nil
}

// Load fetches a table from the source and normalizes it into a canonical
// series in one call.
func Load(ctx context.Context, src Source) (*domain.Series, error) {
	table, err := src.Table(ctx)
	if err != nil {
		return nil, err
	}
	return Normalize(table)
}
