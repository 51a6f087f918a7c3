package collector

import (
	"context"
	"fmt"

	"github.com/aq-tools/air-atlas/pkg/models/domain"
	"github.com/rs/zerolog"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SheetsCollector pulls sensor rows from the Google Sheet a Purple Air
// sensor logs into.
type SheetsCollector struct {
	svc     *sheets.Service
	profile domain.SensorProfile
}

// NewSheetsCollector authenticates with the profile's service account
// credentials and binds the collector to its spreadsheet.
func NewSheetsCollector(ctx context.Context, profile domain.SensorProfile) (*SheetsCollector, error) {
	if profile.SpreadsheetID == "" {
		return nil, fmt.Errorf("profile %s has no spreadsheet_id", profile.Name)
	}

	opts := []option.ClientOption{
		option.WithScopes(sheets.SpreadsheetsReadonlyScope),
	}
	if profile.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(profile.CredentialsFile))
	}

	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create sheets client: %w", err)
	}

	return &SheetsCollector{svc: svc, profile: profile}, nil
}

func (c *SheetsCollector) Fetch(ctx context.Context, metric string) ([]domain.Reading, CollectStats, error) {
	logger := zerolog.Ctx(ctx)

	resp, err := c.svc.Spreadsheets.Values.
		Get(c.profile.SpreadsheetID, c.profile.SheetRange).
		Context(ctx).
		Do()
	if err != nil {
		return nil, CollectStats{}, fmt.Errorf("fetch sheet values: %w", err)
	}

	table := make([][]string, 0, len(resp.Values))
	for _, row := range resp.Values {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = fmt.Sprint(v)
		}
		table = append(table, cells)
	}

	readings, stats, err := parseTable(c.profile, metric, table)
	if err != nil {
		return nil, stats, err
	}

	if stats.Dropped > 0 {
		logger.Warn().
			Str("sensor", c.profile.Name).
			Int("dropped", stats.Dropped).
			Int("rows", stats.Rows).
			Msg("dropped rows with invalid timestamps or values")
	}
	logger.Debug().
		Str("sensor", c.profile.Name).
		Int("readings", len(readings)).
		Msg("fetched sheet data")

	return readings, stats, nil
}
