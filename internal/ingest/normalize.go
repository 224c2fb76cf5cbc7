package ingest

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tanmaysharma231/Mcp-hackathon-healthcare/internal/domain"
)

const (
	// GlucoseMin and GlucoseMax bound physiologically plausible readings in
	// mg/dL. Values outside the range are sensor artifacts, not errors.
	GlucoseMin = 40.0
	GlucoseMax = 400.0

	// SampleInterval is the assumed cadence of the input series. The lag and
	// window choices in the feature builder bake in this assumption.
	SampleInterval = 5 * time.Minute
)

// syntheticEpoch is where synthesized timestamps start when the input has no
// time columns at all.
var syntheticEpoch = time.Date(2024, 1, 1, 6, 0, 0, 0, time.UTC)

// timestampLayouts are tried in order when parsing datetime cells.
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// Normalize maps a raw table onto the canonical series: resolves column
// aliases, parses or synthesizes timestamps, drops out-of-range readings,
// sorts by timestamp (stable), and derives calendar fields.
//
// Glucose is accepted from "glucose" or the legacy "blood_glucose"; insulin
// from "insulin" or the legacy "premeal_bolus_units". Missing insulin/carbs
// columns default to zero rather than failing.
func Normalize(table *Table) (*domain.Series, error) {
	cols := columnIndex(table.Columns)

	glucoseIdx, ok := resolve(cols, "glucose", "blood_glucose")
	if !ok {
		return nil, domain.ErrSchema
	}
	insulinIdx, hasInsulin := resolve(cols, "insulin", "premeal_bolus_units")
	carbsIdx, hasCarbs := resolve(cols, "carbs")

	resolveTime := timestampResolver(cols)

	readings := make([]domain.Reading, 0, len(table.Rows))
	for i, row := range table.Rows {
		glucose, ok := cell(row, glucoseIdx)
		if !ok || glucose < GlucoseMin || glucose > GlucoseMax {
			continue
		}

		ts, ok := resolveTime(row, i)
		if !ok {
			continue
		}

		r := domain.Reading{
			ID:        uuid.New(),
			Timestamp: ts,
			Glucose:   glucose,
		}
		if hasInsulin {
			r.Insulin, _ = cell(row, insulinIdx)
		}
		if hasCarbs {
			r.Carbs, _ = cell(row, carbsIdx)
		}
		readings = append(readings, r)
	}

	sort.SliceStable(readings, func(i, j int) bool {
		return readings[i].Timestamp.Before(readings[j].Timestamp)
	})

	for i := range readings {
		readings[i].DeriveCalendar()
	}

	return &domain.Series{Readings: readings}, nil
}

// columnIndex maps lower-cased, trimmed column names to their positions.
func columnIndex(columns []string) map[string]int {
	idx := make(map[string]int, len(columns))
	for i, name := range columns {
		key := strings.ToLower(strings.TrimSpace(name))
		if _, exists := idx[key]; !exists {
			idx[key] = i
		}
	}
	return idx
}

// resolve returns the position of the first present candidate column.
func resolve(cols map[string]int, candidates ...string) (int, bool) {
	for _, name := range candidates {
		if i, ok := cols[name]; ok {
			return i, true
		}
	}
	return 0, false
}

// timestampResolver picks the timestamp strategy once per table, in priority
// order: a combined datetime column ("datetime" or "timestamp"), separate
// date and time columns, or synthesized 5-minute timestamps in row order.
func timestampResolver(cols map[string]int) func(row []string, rowIdx int) (time.Time, bool) {
	if combined, ok := resolve(cols, "datetime", "timestamp"); ok {
		return func(row []string, _ int) (time.Time, bool) {
			return parseTimestamp(rawCell(row, combined))
		}
	}

	dateIdx, hasDate := resolve(cols, "date")
	timeIdx, hasTime := resolve(cols, "time")
	if hasDate && hasTime {
		return func(row []string, _ int) (time.Time, bool) {
			return parseTimestamp(rawCell(row, dateIdx) + " " + rawCell(row, timeIdx))
		}
	}

	return func(_ []string, rowIdx int) (time.Time, bool) {
		return syntheticEpoch.Add(time.Duration(rowIdx) * SampleInterval), true
	}
}

func parseTimestamp(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

func rawCell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return row[idx]
}

func cell(row []string, idx int) (float64, bool) {
	raw := strings.TrimSpace(rawCell(row, idx))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
