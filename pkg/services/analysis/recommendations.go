package analysis

import (
	"fmt"

	"github.com/aq-tools/air-atlas/pkg/models/domain"
)

// recommendations derives advisory notes from the computed report fields.
func (a *Analyzer) recommendations(report domain.Report) []string {
	var recs []string

	if report.Stats.Status == domain.StatusOK {
		switch {
		case report.Stats.Mean > a.settings.EPAStandard:
			recs = append(recs,
				"Average levels exceed the EPA standard. Consider air filtration systems.")
		case report.Stats.Mean > a.settings.WHOGuideline:
			recs = append(recs,
				"Average levels are above the WHO guideline. Monitor sensitive individuals.")
		}
		if report.Stats.Std > report.Stats.Mean*0.5 && report.Stats.Mean > 0 {
			recs = append(recs,
				"High variability detected. Investigate intermittent pollution sources.")
		}
	}

	if report.Quality.Status == domain.StatusOK && report.Quality.Completeness < 0.9 {
		recs = append(recs, fmt.Sprintf(
			"Data collection completeness is %.0f%%. Check sensor connectivity.",
			report.Quality.Completeness*100))
	}

	if len(recs) == 0 {
		recs = append(recs, "Levels are within acceptable ranges. Continue monitoring.")
	}
	return recs
}
