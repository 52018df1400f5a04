package analysis_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/traffic-analysis-microservice/internal/analysis"
	"github.com/traffic-analysis-microservice/internal/domain"
)

// sampleAt builds a sample whose Congestion() equals c.
func sampleAt(ts time.Time, c float64) domain.TrafficSample {
	return domain.TrafficSample{
		RoadID:       "road-1",
		Timestamp:    ts,
		SpeedKmph:    (1 - c) * 100,
		FreeFlowKmph: 100,
	}
}

func day(n int) time.Time {
	return time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func TestAnalyze_EmptyInput(t *testing.T) {
	a := analysis.NewPatternAnalyzer()

	pattern, metrics := a.Analyze(nil, 30)

	assert.Equal(t, 0.0, pattern.FrequencyScore)
	assert.Equal(t, 0, pattern.HighTrafficDayCount)
	assert.Equal(t, 0, pattern.ObservedDayCount)
	assert.Equal(t, domain.TrendStable, pattern.Trend)
	assert.Empty(t, pattern.PeakHours)
	assert.Empty(t, pattern.WeeklyAverage)
	assert.Equal(t, domain.CongestionMetrics{}, metrics)
}

func TestAnalyze_FrequencyUsesObservedDays(t *testing.T) {
	a := analysis.NewPatternAnalyzer()

	// 10 observed days inside a 30-day window: 7 congested, 3 free-flowing.
	// The denominator must be 10, not 30.
	var samples []domain.TrafficSample
	for i := 0; i < 7; i++ {
		samples = append(samples, sampleAt(day(i), 0.8))
	}
	for i := 7; i < 10; i++ {
		samples = append(samples, sampleAt(day(i), 0.2))
	}

	pattern, _ := a.Analyze(samples, 30)

	assert.Equal(t, 10, pattern.ObservedDayCount)
	assert.Equal(t, 7, pattern.HighTrafficDayCount)
	assert.InDelta(t, 0.7, pattern.FrequencyScore, 1e-9)
}

func TestAnalyze_DayHighWhenDailyAverageReachesThreshold(t *testing.T) {
	a := analysis.NewPatternAnalyzer()

	// One day whose samples average 0.75: a single low reading does not
	// disqualify the day.
	base := day(0)
	samples := []domain.TrafficSample{
		sampleAt(base, 0.9),
		sampleAt(base.Add(1*time.Hour), 0.9),
		sampleAt(base.Add(2*time.Hour), 0.45),
	}

	pattern, _ := a.Analyze(samples, 7)

	assert.Equal(t, 1, pattern.HighTrafficDayCount)
	assert.Equal(t, 1, pattern.ObservedDayCount)
}

func TestAnalyze_CongestionMetrics(t *testing.T) {
	a := analysis.NewPatternAnalyzer()

	samples := []domain.TrafficSample{
		sampleAt(day(0), 0.2),
		sampleAt(day(1), 0.4),
		sampleAt(day(2), 0.9),
	}

	_, metrics := a.Analyze(samples, 7)

	assert.InDelta(t, 0.5, metrics.AvgCongestion, 1e-9)
	assert.InDelta(t, 0.9, metrics.MaxCongestion, 1e-9)
	assert.InDelta(t, 0.9, metrics.PeakCongestion, 1e-9)
}

func TestAnalyze_PeakHoursTopThreeTiesToLowerHour(t *testing.T) {
	a := analysis.NewPatternAnalyzer()

	base := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	at := func(hour int, c float64) domain.TrafficSample {
		return sampleAt(base.Add(time.Duration(hour)*time.Hour), c)
	}

	samples := []domain.TrafficSample{
		at(8, 0.9),
		at(17, 0.9),
		at(13, 0.5),
		at(12, 0.5),
		at(3, 0.1),
	}

	pattern, _ := a.Analyze(samples, 7)

	// 8 and 17 lead; 12 wins the 0.5 tie against 13 by lower hour.
	assert.Equal(t, []int{8, 17, 12}, pattern.PeakHours)
}

func TestAnalyze_PeakHoursFewerThanThree(t *testing.T) {
	a := analysis.NewPatternAnalyzer()

	samples := []domain.TrafficSample{sampleAt(day(0), 0.5)}

	pattern, _ := a.Analyze(samples, 7)

	assert.Equal(t, []int{9}, pattern.PeakHours)
}

func TestAnalyze_Trend(t *testing.T) {
	a := analysis.NewPatternAnalyzer()

	ramp := func(levels [3]float64) []domain.TrafficSample {
		var samples []domain.TrafficSample
		for i := 0; i < 9; i++ {
			samples = append(samples, sampleAt(day(i), levels[i/3]))
		}
		return samples
	}

	tests := []struct {
		name   string
		levels [3]float64
		want   domain.Trend
	}{
		{"increasing", [3]float64{0.2, 0.5, 0.8}, domain.TrendIncreasing},
		{"decreasing", [3]float64{0.8, 0.5, 0.2}, domain.TrendDecreasing},
		{"stable", [3]float64{0.5, 0.5, 0.5}, domain.TrendStable},
		{"below delta", [3]float64{0.50, 0.52, 0.55}, domain.TrendStable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pattern, _ := a.Analyze(ramp(tt.levels), 30)
			assert.Equal(t, tt.want, pattern.Trend)
		})
	}
}

func TestAnalyze_TrendSingleDayIsStable(t *testing.T) {
	a := analysis.NewPatternAnalyzer()

	pattern, _ := a.Analyze([]domain.TrafficSample{sampleAt(day(0), 0.9)}, 7)

	assert.Equal(t, domain.TrendStable, pattern.Trend)
}

func TestAnalyze_WeeklyAverage(t *testing.T) {
	a := analysis.NewPatternAnalyzer()

	monday := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	require.Equal(t, time.Monday, monday.Weekday())

	samples := []domain.TrafficSample{
		sampleAt(monday, 0.6),
		sampleAt(monday.Add(2*time.Hour), 0.8),
		sampleAt(monday.AddDate(0, 0, 1), 0.3),
	}

	pattern, _ := a.Analyze(samples, 7)

	require.Len(t, pattern.WeeklyAverage, 2)
	assert.InDelta(t, 0.7, pattern.WeeklyAverage["Monday"], 1e-9)
	assert.InDelta(t, 0.3, pattern.WeeklyAverage["Tuesday"], 1e-9)
}

func TestAnalyze_SampleWithoutFreeFlowReadsUncongested(t *testing.T) {
	a := analysis.NewPatternAnalyzer()

	samples := []domain.TrafficSample{
		{RoadID: "road-1", Timestamp: day(0), SpeedKmph: 10, FreeFlowKmph: 0},
	}

	pattern, metrics := a.Analyze(samples, 7)

	assert.Equal(t, 0, pattern.HighTrafficDayCount)
	assert.Equal(t, 0.0, metrics.MaxCongestion)
}

func TestWindowStart(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	got := analysis.WindowStart(now, 30)

	assert.Equal(t, time.Date(2026, 7, 30, 12, 0, 0, 0, time.UTC), got)
}
