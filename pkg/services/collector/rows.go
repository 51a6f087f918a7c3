package collector

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aq-tools/air-atlas/pkg/models/domain"
)

// Timestamp formats seen in Purple Air spreadsheet exports.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006/01/02 15:04:05",
	"01/02/2006 15:04:05",
	"01/02/2006 15:04",
}

// parseTable turns a raw header-plus-rows table into readings for one
// metric. Rows whose timestamp cannot be parsed or whose metric cell is
// not numeric are dropped and counted, never fatal. Other mapped numeric
// columns ride along in Fields.
func parseTable(profile domain.SensorProfile, metric string, table [][]string) ([]domain.Reading, CollectStats, error) {
	header, ok := profile.Columns[metric]
	if !ok {
		return nil, CollectStats{}, fmt.Errorf("profile %s has no column for metric %q", profile.Name, metric)
	}

	if len(table) == 0 {
		return []domain.Reading{}, CollectStats{}, nil
	}

	columns := indexColumns(table[0])
	tsIdx, ok := columns[profile.TimestampColumn]
	if !ok {
		return nil, CollectStats{}, fmt.Errorf("timestamp column %q not found in sheet header", profile.TimestampColumn)
	}
	valueIdx, ok := columns[header]
	if !ok {
		return nil, CollectStats{}, fmt.Errorf("column %q for metric %q not found in sheet header", header, metric)
	}

	stats := CollectStats{Rows: len(table) - 1}
	readings := make([]domain.Reading, 0, stats.Rows)

	for _, row := range table[1:] {
		ts, err := parseTimestamp(cell(row, tsIdx))
		if err != nil {
			stats.Dropped++
			continue
		}
		value, err := parseNumber(cell(row, valueIdx))
		if err != nil {
			stats.Dropped++
			continue
		}

		reading := domain.Reading{Timestamp: ts, Value: value}
		for name, col := range profile.Columns {
			if name == metric {
				continue
			}
			idx, ok := columns[col]
			if !ok {
				continue
			}
			if v, err := parseNumber(cell(row, idx)); err == nil {
				if reading.Fields == nil {
					reading.Fields = map[string]float64{}
				}
				reading.Fields[name] = v
			}
		}
		if profile.Latitude != 0 || profile.Longitude != 0 {
			lat, lon := profile.Latitude, profile.Longitude
			reading.Latitude = &lat
			reading.Longitude = &lon
		}
		readings = append(readings, reading)
	}

	return readings, stats, nil
}

func indexColumns(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	return columns
}

func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func parseTimestamp(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable timestamp %q", s)
}

func parseNumber(s string) (float64, error) {
	if s == "" {
		return 0, fmt.Errorf("empty cell")
	}
	return strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
}
