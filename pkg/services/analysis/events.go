package analysis

import (
	"github.com/aq-tools/air-atlas/pkg/models/domain"
)

// exceedanceRun is a raw maximal stretch of readings above the event
// threshold, before merging and duration filtering.
type exceedanceRun struct {
	start, end domain.Reading
	peak       float64
	sum        float64
	samples    int
}

// DetectEvents scans the series for pollution events: contiguous
// exceedance runs lasting at least the minimum event duration. Runs whose
// separating gap is shorter than the merge tolerance are first merged into
// one event. The scan is a pure function of the series and the settings,
// so repeated calls return identical results.
func (a *Analyzer) DetectEvents(series domain.Series) []domain.Event {
	runs := a.exceedanceRuns(series.Readings)
	merged := a.mergeRuns(runs)

	events := make([]domain.Event, 0, len(merged))
	for _, r := range merged {
		duration := r.end.Timestamp.Sub(r.start.Timestamp)
		if duration < a.settings.MinEventDuration {
			continue
		}
		events = append(events, domain.Event{
			Start:    r.start.Timestamp,
			End:      r.end.Timestamp,
			Duration: duration,
			Peak:     r.peak,
			Average:  r.sum / float64(r.samples),
			Severity: a.severity(r.peak),
			Samples:  r.samples,
		})
	}
	return events
}

func (a *Analyzer) exceedanceRuns(readings []domain.Reading) []exceedanceRun {
	var runs []exceedanceRun
	var current *exceedanceRun

	for _, r := range readings {
		if r.Value <= a.settings.EventThreshold {
			if current != nil {
				runs = append(runs, *current)
				current = nil
			}
			continue
		}
		if current == nil {
			current = &exceedanceRun{start: r, end: r, peak: r.Value}
		} else {
			current.end = r
			if r.Value > current.peak {
				current.peak = r.Value
			}
		}
		current.sum += r.Value
		current.samples++
	}
	if current != nil {
		runs = append(runs, *current)
	}
	return runs
}

// mergeRuns folds adjacent runs into one when the quiet gap between them
// is strictly shorter than the merge tolerance. A gap exactly equal to
// the tolerance keeps the runs separate.
func (a *Analyzer) mergeRuns(runs []exceedanceRun) []exceedanceRun {
	if len(runs) == 0 {
		return nil
	}

	merged := []exceedanceRun{runs[0]}
	for _, r := range runs[1:] {
		last := &merged[len(merged)-1]
		gap := r.start.Timestamp.Sub(last.end.Timestamp)
		if gap < a.settings.MergeTolerance {
			last.end = r.end
			if r.peak > last.peak {
				last.peak = r.peak
			}
			last.sum += r.sum
			last.samples += r.samples
			continue
		}
		merged = append(merged, r)
	}
	return merged
}

// severity labels an event by where its peak lands in the category table.
func (a *Analyzer) severity(peak float64) string {
	if r, ok := a.settings.Thresholds.Classify(peak); ok {
		return r.Label
	}
	return domain.UnclassifiedLabel
}
