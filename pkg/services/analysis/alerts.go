package analysis

import (
	"fmt"

	"github.com/aq-tools/air-atlas/pkg/models/domain"
)

// Alerts checks the most recent reading of the series against the alert
// threshold. It returns at most one alert; an empty series returns none.
func (a *Analyzer) Alerts(series domain.Series) []domain.Alert {
	if series.Empty() {
		return []domain.Alert{}
	}

	latest := series.Readings[len(series.Readings)-1]
	if latest.Value <= a.settings.AlertThreshold {
		return []domain.Alert{}
	}

	level := domain.AlertLevelModerate
	if latest.Value > a.settings.HighAlertThreshold {
		level = domain.AlertLevelHigh
	}

	return []domain.Alert{{
		Timestamp: latest.Timestamp,
		Value:     latest.Value,
		Level:     level,
		Message: fmt.Sprintf("%s level of %.1f exceeds threshold of %.1f",
			series.Metric, latest.Value, a.settings.AlertThreshold),
	}}
}
