package collector

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/aq-tools/air-atlas/pkg/models/domain"
)

// FileCollector reads a local CSV export of the sheet, so analysis can
// run without Sheets credentials. Same header conventions as the
// spreadsheet, first row is the header.
type FileCollector struct {
	path    string
	profile domain.SensorProfile
}

func NewFileCollector(path string, profile domain.SensorProfile) *FileCollector {
	return &FileCollector{path: path, profile: profile}
}

func (c *FileCollector) Fetch(_ context.Context, metric string) ([]domain.Reading, CollectStats, error) {
	f, err := os.Open(c.path)
	if err != nil {
		return nil, CollectStats{}, fmt.Errorf("open csv export: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // sheets exports pad rows unevenly

	table, err := reader.ReadAll()
	if err != nil {
		return nil, CollectStats{}, fmt.Errorf("read csv export: %w", err)
	}

	return parseTable(c.profile, metric, table)
}
