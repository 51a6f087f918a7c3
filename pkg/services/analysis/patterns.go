package analysis

import (
	"fmt"
	"time"

	"github.com/aq-tools/air-atlas/pkg/models/domain"
	"gonum.org/v1/gonum/stat"
)

func emptyHourlyBuckets() []domain.PatternBucket {
	buckets := make([]domain.PatternBucket, 24)
	for h := range buckets {
		buckets[h].Label = fmt.Sprintf("%02d:00", h)
	}
	return buckets
}

func emptyWeekdayBuckets() []domain.PatternBucket {
	buckets := make([]domain.PatternBucket, 7)
	for d := range buckets {
		buckets[d].Label = time.Weekday(d).String()
	}
	return buckets
}

// hourlyPattern aggregates readings by hour of day. Hours without
// observations keep HasData false instead of defaulting to zero.
func hourlyPattern(readings []domain.Reading) []domain.PatternBucket {
	grouped := make([][]float64, 24)
	for _, r := range readings {
		h := r.Timestamp.Hour()
		grouped[h] = append(grouped[h], r.Value)
	}
	return fillBuckets(emptyHourlyBuckets(), grouped)
}

// weekdayPattern aggregates readings by day of week, Sunday first.
func weekdayPattern(readings []domain.Reading) []domain.PatternBucket {
	grouped := make([][]float64, 7)
	for _, r := range readings {
		d := int(r.Timestamp.Weekday())
		grouped[d] = append(grouped[d], r.Value)
	}
	return fillBuckets(emptyWeekdayBuckets(), grouped)
}

func fillBuckets(buckets []domain.PatternBucket, grouped [][]float64) []domain.PatternBucket {
	for i, vs := range grouped {
		if len(vs) == 0 {
			continue
		}
		buckets[i].HasData = true
		buckets[i].Mean = mean(vs)
		buckets[i].Median = median(vs)
		buckets[i].Count = len(vs)
	}
	return buckets
}

// hourlyHighlights picks the highest and lowest running hours and the
// spread of the hourly means.
func hourlyHighlights(hourly []domain.PatternBucket) domain.HourlyHighlights {
	var means []float64
	peak, low := -1, -1
	for h, b := range hourly {
		if !b.HasData {
			continue
		}
		means = append(means, b.Mean)
		if peak == -1 || b.Mean > hourly[peak].Mean {
			peak = h
		}
		if low == -1 || b.Mean < hourly[low].Mean {
			low = h
		}
	}
	if peak == -1 {
		return domain.HourlyHighlights{Status: domain.StatusNoData}
	}

	hl := domain.HourlyHighlights{
		Status:   domain.StatusOK,
		PeakHour: peak,
		PeakMean: hourly[peak].Mean,
		LowHour:  low,
		LowMean:  hourly[low].Mean,
	}
	if len(means) > 1 {
		hl.Variation = stat.StdDev(means, nil)
	}
	return hl
}

// weekendSplit compares the weekend and weekday averages. The ratio is
// only published when both sides have data and the weekday mean is not zero.
func weekendSplit(readings []domain.Reading) domain.WeekendSplit {
	var weekend, weekday []float64
	for _, r := range readings {
		switch r.Timestamp.Weekday() {
		case time.Saturday, time.Sunday:
			weekend = append(weekend, r.Value)
		default:
			weekday = append(weekday, r.Value)
		}
	}

	if len(weekend) == 0 && len(weekday) == 0 {
		return domain.WeekendSplit{Status: domain.StatusNoData}
	}

	split := domain.WeekendSplit{Status: domain.StatusOK}
	if len(weekday) > 0 {
		split.WeekdayMean = mean(weekday)
	}
	if len(weekend) > 0 {
		split.WeekendMean = mean(weekend)
	}
	if len(weekend) > 0 && len(weekday) > 0 && split.WeekdayMean != 0 {
		split.Ratio = split.WeekendMean / split.WeekdayMean
		split.HasRatio = true
	}
	return split
}
