package insights

import "time"

// SessionRecord is one completed study session as handed over by the data-access
// layer. Records are validated and defaulted at the fetch boundary: a negative or
// unparseable duration becomes 0 and a missing start time stays the zero value, so
// the aggregation code never has to re-check field shapes.
type SessionRecord struct {
	UserID          string
	DurationSeconds float64
	StartTime       time.Time
}

// HasStartTime reports whether the session carries a usable timestamp. Sessions
// without one are excluded from time-keyed buckets but still count toward per-user
// frequency.
func (s SessionRecord) HasStartTime() bool {
	return !s.StartTime.IsZero()
}

// FeatureEventRecord is a single use of a named app feature (homework created,
// note created, and so on).
type FeatureEventRecord struct {
	ID        string
	UserID    string
	CreatedAt time.Time
}

// Feature identifies one of the tracked app features.
type Feature string

const (
	FeatureHomework   Feature = "homework"
	FeatureExams      Feature = "exams"
	FeatureNotes      Feature = "notes"
	FeatureFlashcards Feature = "flashcards"
	FeaturePomodoro   Feature = "pomodoro"
)

// Features returns the tracked features in their canonical presentation order.
func Features() []Feature {
	return []Feature{FeatureHomework, FeatureExams, FeatureNotes, FeatureFlashcards, FeaturePomodoro}
}

// Engagement tiers by 30-day session count.
const (
	TierHigh     = "high"
	TierMedium   = "medium"
	TierLow      = "low"
	TierInactive = "inactive"
)

// EngagementTiers returns every tier key; distributions over tiers always carry
// all of them, zero-filled when empty.
func EngagementTiers() []string {
	return []string{TierHigh, TierMedium, TierLow, TierInactive}
}

// Session intensity classes.
const (
	IntensityShortFrequent  = "short-frequent"
	IntensityLongInfrequent = "long-infrequent"
	IntensityBalanced       = "balanced"
	IntensityShallow        = "shallow"
)

// IntensityClasses returns every intensity key in presentation order.
func IntensityClasses() []string {
	return []string{IntensityShortFrequent, IntensityLongInfrequent, IntensityBalanced, IntensityShallow}
}

// Fixed bucket labels. These are stable keys; localization is a presentation
// concern and does not happen here.
var (
	durationBucketLabels  = []string{"0-5m", "5-15m", "15-30m", "30-60m", "60m+"}
	timeOfDayBucketLabels = []string{"0-6", "6-12", "12-18", "18-24"}
	frequencyBucketLabels = []string{"1-2", "3-5", "6-10", "11-20", "20+"}
)

// DurationBuckets returns the session-duration bucket labels in ascending order.
func DurationBuckets() []string { return durationBucketLabels }

// TimeOfDayBuckets returns the start-hour quadrant labels in ascending order.
func TimeOfDayBuckets() []string { return timeOfDayBucketLabels }

// FrequencyBuckets returns the per-user session-count bucket labels in ascending order.
func FrequencyBuckets() []string { return frequencyBucketLabels }

// SessionStats summarizes session durations over the lookback window, in minutes.
type SessionStats struct {
	Avg   float64
	Min   int
	Max   int
	Total int
}

// FeatureUsage pairs feature labels with their total event counts, index-aligned.
type FeatureUsage struct {
	Labels []string
	Values []int
}

// SessionDepth bundles the frequency and depth metrics computed over the lookback
// window.
type SessionDepth struct {
	DurationDistribution  map[string]int
	TimeOfDayDistribution map[string]int
	SessionIntensity      map[string]int
	SessionFrequency      map[string]int
	AvgSessionsPerDay     float64
	MaxConsecutiveDays    int
}

// DashboardMetrics is the full aggregate consumed by the admin dashboard. Trend
// slices are fixed-length (one entry per window day), oldest first.
type DashboardMetrics struct {
	DAU               int
	WAU               int
	MAU               int
	AvgSessionMinutes float64
	SessionStats      SessionStats
	Active30          []int
	Sessions30        []int
	AvgDuration30     []float64
	FeatureUsage      FeatureUsage
	FeatureTrends     map[string][]int
	UserEngagement    map[string]int
	SessionDepth      SessionDepth
}
