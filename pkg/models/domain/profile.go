package domain

import "fmt"

// SensorProfile describes one configured sensor: where its spreadsheet
// lives and how its columns map onto metric names.
type SensorProfile struct {
	Name            string
	DisplayName     string
	SpreadsheetID   string
	SheetRange      string
	CredentialsFile string
	Latitude        float64
	Longitude       float64
	// TimestampColumn is the sheet header carrying the observation time.
	TimestampColumn string
	// Columns maps metric names (pm2_5_atm, temperature, ...) to sheet headers.
	Columns map[string]string
}

func (p SensorProfile) String() string {
	return fmt.Sprintf("%s (%s)", p.Name, p.SpreadsheetID)
}

// Metrics lists the metric names the profile exposes.
func (p SensorProfile) Metrics() []string {
	metrics := make([]string, 0, len(p.Columns))
	for name := range p.Columns {
		metrics = append(metrics, name)
	}
	return metrics
}
