package insights

import (
	"sort"
	"time"
)

// Intensity thresholds. Average duration is in seconds.
const (
	shortSessionMaxAvg  = 300.0
	longSessionMinAvg   = 600.0
	frequentMinSessions = 10
	infrequentMaxCount  = 5
	balancedMinSessions = 5
)

type userUsage struct {
	sessionCount  int
	totalDuration float64
	activeDays    map[string]time.Time // day key -> midnight
}

// AnalyzeDepth computes the duration, time-of-day, frequency and intensity
// distributions plus the sessions-per-day average and the longest
// consecutive-day streak over one lookback window of sessions.
//
// Distributions always enumerate every defined bucket. Sessions without a start
// time stay out of the time-keyed buckets but still count toward the per-user
// totals that drive frequency and intensity.
func AnalyzeDepth(sessions []SessionRecord) SessionDepth {
	depth := SessionDepth{
		DurationDistribution:  zeroBuckets(durationBucketLabels),
		TimeOfDayDistribution: zeroBuckets(timeOfDayBucketLabels),
		SessionIntensity:      zeroBuckets(IntensityClasses()),
		SessionFrequency:      zeroBuckets(frequencyBucketLabels),
	}

	byUser := make(map[string]*userUsage)
	globalActiveDays := make(map[string]struct{})

	for _, s := range sessions {
		duration := sanitizeDuration(s.DurationSeconds)
		depth.DurationDistribution[durationBucket(duration)]++

		usage, ok := byUser[s.UserID]
		if !ok {
			usage = &userUsage{activeDays: make(map[string]time.Time)}
			byUser[s.UserID] = usage
		}
		usage.sessionCount++
		usage.totalDuration += duration

		if !s.HasStartTime() {
			continue
		}
		depth.TimeOfDayDistribution[timeOfDayBucket(s.StartTime.Hour())]++

		day := StartOfDay(s.StartTime)
		key := DayKey(day)
		usage.activeDays[key] = day
		globalActiveDays[key] = struct{}{}
	}

	maxStreak := 0
	for _, usage := range byUser {
		depth.SessionFrequency[frequencyBucket(usage.sessionCount)]++

		avgDuration := 0.0
		if usage.sessionCount > 0 {
			avgDuration = usage.totalDuration / float64(usage.sessionCount)
		}
		depth.SessionIntensity[intensityClass(avgDuration, usage.sessionCount)]++

		if streak := longestDayStreak(usage.activeDays); streak > maxStreak {
			maxStreak = streak
		}
	}
	depth.MaxConsecutiveDays = maxStreak

	if len(globalActiveDays) > 0 {
		depth.AvgSessionsPerDay = round2(float64(len(sessions)) / float64(len(globalActiveDays)))
	}

	return depth
}

// longestDayStreak finds the longest run of consecutive calendar days in a set
// of distinct active days. Duplicate days were already collapsed by the map; a
// gap of anything other than exactly one day resets the run.
func longestDayStreak(activeDays map[string]time.Time) int {
	if len(activeDays) == 0 {
		return 0
	}

	days := make([]time.Time, 0, len(activeDays))
	for _, day := range activeDays {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i-1].AddDate(0, 0, 1).Equal(days[i]) {
			run++
			if run > longest {
				longest = run
			}
			continue
		}
		run = 1
	}
	return longest
}

// intensityClass classifies a user's usage pattern. Checks happen in order;
// anything that misses all three named patterns is shallow.
func intensityClass(avgDuration float64, sessionCount int) string {
	switch {
	case avgDuration < shortSessionMaxAvg && sessionCount >= frequentMinSessions:
		return IntensityShortFrequent
	case avgDuration >= longSessionMinAvg && sessionCount < infrequentMaxCount:
		return IntensityLongInfrequent
	case avgDuration >= shortSessionMaxAvg && sessionCount >= balancedMinSessions:
		return IntensityBalanced
	default:
		return IntensityShallow
	}
}

func durationBucket(seconds float64) string {
	minutes := int(seconds / 60)
	switch {
	case minutes < 5:
		return "0-5m"
	case minutes < 15:
		return "5-15m"
	case minutes < 30:
		return "15-30m"
	case minutes < 60:
		return "30-60m"
	default:
		return "60m+"
	}
}

func timeOfDayBucket(hour int) string {
	switch {
	case hour < 6:
		return "0-6"
	case hour < 12:
		return "6-12"
	case hour < 18:
		return "12-18"
	default:
		return "18-24"
	}
}

func frequencyBucket(sessionCount int) string {
	switch {
	case sessionCount <= 2:
		return "1-2"
	case sessionCount <= 5:
		return "3-5"
	case sessionCount <= 10:
		return "6-10"
	case sessionCount <= 20:
		return "11-20"
	default:
		return "20+"
	}
}

func zeroBuckets(labels []string) map[string]int {
	buckets := make(map[string]int, len(labels))
	for _, label := range labels {
		buckets[label] = 0
	}
	return buckets
}
