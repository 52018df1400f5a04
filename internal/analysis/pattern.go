package analysis

import (
	"sort"
	"time"

	"github.com/traffic-analysis-microservice/internal/domain"
)

const (
	// HighTrafficThreshold marks a day as high-traffic when its average
	// congestion reaches this level. Tunable constant, not data-derived.
	HighTrafficThreshold = 0.70

	// trendDelta is the first-third vs last-third margin (in congestion
	// points) required to call a trend.
	trendDelta = 0.10

	maxPeakHours = 3
)

// PatternAnalyzer reduces raw samples into a TrafficPattern and window-wide
// congestion metrics. Pure function of its input: no clock, no randomness.
type PatternAnalyzer struct{}

func NewPatternAnalyzer() *PatternAnalyzer {
	return &PatternAnalyzer{}
}

// Analyze computes the pattern for one road over a lookback window.
//
// Empty input is a valid real-world state ("no data, monitor only") and
// yields a zeroed pattern instead of an error. The frequency denominator is
// the number of days actually observed, so incomplete windows are not
// penalized. Calendar days and hours are bucketed in UTC.
func (a *PatternAnalyzer) Analyze(samples []domain.TrafficSample, windowDays int) (domain.TrafficPattern, domain.CongestionMetrics) {
	if len(samples) == 0 {
		return domain.TrafficPattern{
			Trend:         domain.TrendStable,
			PeakHours:     []int{},
			WeeklyAverage: map[string]float64{},
		}, domain.CongestionMetrics{}
	}

	days := make(map[string]*bucket)
	weekdays := make(map[string]*bucket)
	var hours [24]bucket

	var sum, max float64
	for _, s := range samples {
		c := s.Congestion()
		sum += c
		if c > max {
			max = c
		}

		ts := s.Timestamp.UTC()

		dayKey := ts.Format("2006-01-02")
		if days[dayKey] == nil {
			days[dayKey] = &bucket{}
		}
		days[dayKey].sum += c
		days[dayKey].count++

		wd := ts.Weekday().String()
		if weekdays[wd] == nil {
			weekdays[wd] = &bucket{}
		}
		weekdays[wd].sum += c
		weekdays[wd].count++

		hours[ts.Hour()].sum += c
		hours[ts.Hour()].count++
	}

	highDays := 0
	for _, b := range days {
		if b.sum/float64(b.count) >= HighTrafficThreshold {
			highDays++
		}
	}
	observedDays := len(days)

	weekly := make(map[string]float64, len(weekdays))
	for wd, b := range weekdays {
		weekly[wd] = b.sum / float64(b.count)
	}

	pattern := domain.TrafficPattern{
		FrequencyScore:      float64(highDays) / float64(observedDays),
		HighTrafficDayCount: highDays,
		ObservedDayCount:    observedDays,
		PeakHours:           peakHours(hours),
		Trend:               trend(samples),
		WeeklyAverage:       weekly,
	}

	metrics := domain.CongestionMetrics{
		AvgCongestion:  sum / float64(len(samples)),
		MaxCongestion:  max,
		PeakCongestion: max,
	}

	return pattern, metrics
}

type bucket struct {
	sum   float64
	count int
}

// peakHours picks the top hours by average congestion, ties broken by the
// lower hour value.
func peakHours(hours [24]bucket) []int {
	type hourAvg struct {
		hour int
		avg  float64
	}

	candidates := make([]hourAvg, 0, 24)
	for h := 0; h < 24; h++ {
		if hours[h].count == 0 {
			continue
		}
		candidates = append(candidates, hourAvg{h, hours[h].sum / float64(hours[h].count)})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].avg != candidates[j].avg {
			return candidates[i].avg > candidates[j].avg
		}
		return candidates[i].hour < candidates[j].hour
	})

	n := maxPeakHours
	if len(candidates) < n {
		n = len(candidates)
	}

	result := make([]int, 0, n)
	for _, c := range candidates[:n] {
		result = append(result, c.hour)
	}
	return result
}

// trend compares average congestion of the first and last third of the
// observed timestamp span. Using the observed span rather than the requested
// window keeps the function pure and robust to sparse data.
func trend(samples []domain.TrafficSample) domain.Trend {
	minTS, maxTS := samples[0].Timestamp, samples[0].Timestamp
	for _, s := range samples[1:] {
		if s.Timestamp.Before(minTS) {
			minTS = s.Timestamp
		}
		if s.Timestamp.After(maxTS) {
			maxTS = s.Timestamp
		}
	}

	span := maxTS.Sub(minTS)
	if span <= 0 {
		return domain.TrendStable
	}

	firstCut := minTS.Add(span / 3)
	lastCut := maxTS.Add(-span / 3)

	var firstSum, lastSum float64
	var firstN, lastN int
	for _, s := range samples {
		if !s.Timestamp.After(firstCut) {
			firstSum += s.Congestion()
			firstN++
		}
		if !s.Timestamp.Before(lastCut) {
			lastSum += s.Congestion()
			lastN++
		}
	}

	if firstN == 0 || lastN == 0 {
		return domain.TrendStable
	}

	diff := lastSum/float64(lastN) - firstSum/float64(firstN)
	switch {
	case diff >= trendDelta:
		return domain.TrendIncreasing
	case diff <= -trendDelta:
		return domain.TrendDecreasing
	default:
		return domain.TrendStable
	}
}

// WindowStart returns the cutoff timestamp for a lookback window ending at
// now. Used by callers to bound the sample query.
func WindowStart(now time.Time, windowDays int) time.Time {
	return now.AddDate(0, 0, -windowDays)
}
