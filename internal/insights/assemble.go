package insights

import (
	"fmt"
	"time"
)

// DefaultWindowDays is the dashboard lookback applied when the input leaves it unset.
const DefaultWindowDays = 30

// DashboardInput carries one aggregation pass worth of records. Collections are
// already filtered by lookback window and, when requested, by role; the engine
// treats both as opaque. TotalUsers is the size of the user population the
// records were drawn from and feeds the inactive engagement tier; 0 means
// unknown.
type DashboardInput struct {
	Now           time.Time
	WindowDays    int
	Sessions      []SessionRecord
	FeatureEvents map[Feature][]FeatureEventRecord
	TotalUsers    int
}

// BuildDashboard assembles the full dashboard aggregate from raw record
// collections. It never returns an unusable result: any panic raised while
// aggregating is recovered and replaced by a fully-keyed zero-valued aggregate,
// with the recovered value reported as an error so callers can log it.
//
// Calling it twice with identical inputs yields identical output.
func BuildDashboard(input DashboardInput) (metrics DashboardMetrics, err error) {
	windowDays := input.WindowDays
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}

	defer func() {
		if r := recover(); r != nil {
			metrics = ZeroDashboard(windowDays)
			err = fmt.Errorf("dashboard aggregation failed: %v", r)
		}
	}()

	now := input.Now
	if now.IsZero() {
		now = time.Now()
	}
	labels := WindowLabels(now, windowDays)

	metrics = DashboardMetrics{
		DAU:            DistinctUsers(input.Sessions, DaysAgo(now, 1)),
		WAU:            DistinctUsers(input.Sessions, DaysAgo(now, 7)),
		MAU:            DistinctUsers(input.Sessions, DaysAgo(now, windowDays)),
		Active30:       DailyDistinctUsers(input.Sessions, labels),
		Sessions30:     DailyCounts(SessionStartTimes(input.Sessions), labels),
		AvgDuration30:  DailyAvgDurationMinutes(input.Sessions, labels),
		UserEngagement: ClassifyEngagement(input.Sessions, input.TotalUsers),
		SessionDepth:   AnalyzeDepth(input.Sessions),
		FeatureTrends:  make(map[string][]int, len(Features())),
	}

	metrics.AvgSessionMinutes, metrics.SessionStats = summarizeDurations(input.Sessions)

	usage := FeatureUsage{
		Labels: make([]string, 0, len(Features())),
		Values: make([]int, 0, len(Features())),
	}
	for _, feature := range Features() {
		events := input.FeatureEvents[feature]
		usage.Labels = append(usage.Labels, string(feature))
		usage.Values = append(usage.Values, len(events))
		metrics.FeatureTrends[string(feature)] = DailyCounts(FeatureEventTimes(events), labels)
	}
	metrics.FeatureUsage = usage

	return metrics, nil
}

// ZeroDashboard returns the all-default aggregate: every distribution key
// present, every trend slice zero-filled at window length. Dashboard rendering
// falls back to this shape when aggregation fails outright.
func ZeroDashboard(windowDays int) DashboardMetrics {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}

	trends := make(map[string][]int, len(Features()))
	usage := FeatureUsage{
		Labels: make([]string, 0, len(Features())),
		Values: make([]int, 0, len(Features())),
	}
	for _, feature := range Features() {
		trends[string(feature)] = make([]int, windowDays)
		usage.Labels = append(usage.Labels, string(feature))
		usage.Values = append(usage.Values, 0)
	}

	return DashboardMetrics{
		Active30:       make([]int, windowDays),
		Sessions30:     make([]int, windowDays),
		AvgDuration30:  make([]float64, windowDays),
		FeatureUsage:   usage,
		FeatureTrends:  trends,
		UserEngagement: zeroBuckets(EngagementTiers()),
		SessionDepth: SessionDepth{
			DurationDistribution:  zeroBuckets(durationBucketLabels),
			TimeOfDayDistribution: zeroBuckets(timeOfDayBucketLabels),
			SessionIntensity:      zeroBuckets(IntensityClasses()),
			SessionFrequency:      zeroBuckets(frequencyBucketLabels),
		},
	}
}

// summarizeDurations reduces session durations to the headline stats, in minutes.
func summarizeDurations(sessions []SessionRecord) (float64, SessionStats) {
	if len(sessions) == 0 {
		return 0, SessionStats{}
	}

	var total float64
	minSeconds := sanitizeDuration(sessions[0].DurationSeconds)
	maxSeconds := minSeconds
	for _, s := range sessions {
		seconds := sanitizeDuration(s.DurationSeconds)
		total += seconds
		if seconds < minSeconds {
			minSeconds = seconds
		}
		if seconds > maxSeconds {
			maxSeconds = seconds
		}
	}

	avgMinutes := round2(total / 60 / float64(len(sessions)))
	stats := SessionStats{
		Avg:   avgMinutes,
		Min:   int(minSeconds / 60),
		Max:   int(maxSeconds / 60),
		Total: int(total / 60),
	}
	return avgMinutes, stats
}
