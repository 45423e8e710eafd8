package insights

import (
	"reflect"
	"testing"
	"time"
)

func sampleInput(now time.Time) DashboardInput {
	sessions := []SessionRecord{
		{UserID: "a", DurationSeconds: 1800, StartTime: now.Add(-2 * time.Hour)},
		{UserID: "a", DurationSeconds: 900, StartTime: now.AddDate(0, 0, -1)},
		{UserID: "b", DurationSeconds: 3600, StartTime: now.AddDate(0, 0, -10)},
	}
	events := map[Feature][]FeatureEventRecord{
		FeatureNotes: {
			{ID: "n1", UserID: "a", CreatedAt: now.Add(-time.Hour)},
			{ID: "n2", UserID: "b", CreatedAt: now.AddDate(0, 0, -3)},
		},
	}
	return DashboardInput{Now: now, Sessions: sessions, FeatureEvents: events, TotalUsers: 5}
}

func TestBuildDashboard(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	metrics, err := BuildDashboard(sampleInput(now))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if metrics.DAU != 1 || metrics.WAU != 1 || metrics.MAU != 2 {
		t.Fatalf("unexpected active users: %d/%d/%d", metrics.DAU, metrics.WAU, metrics.MAU)
	}
	if len(metrics.Sessions30) != 30 || len(metrics.Active30) != 30 || len(metrics.AvgDuration30) != 30 {
		t.Fatalf("trend slices must be window-length")
	}
	if metrics.Sessions30[29] != 1 {
		t.Fatalf("expected 1 session today, got %d", metrics.Sessions30[29])
	}
	if metrics.AvgSessionMinutes != 35.0 {
		t.Fatalf("expected avg 35.0 minutes, got %v", metrics.AvgSessionMinutes)
	}
	if metrics.SessionStats.Min != 15 || metrics.SessionStats.Max != 60 || metrics.SessionStats.Total != 105 {
		t.Fatalf("unexpected session stats: %+v", metrics.SessionStats)
	}
	if metrics.UserEngagement[TierInactive] != 3 {
		t.Fatalf("expected 3 inactive of 5 total users, got %v", metrics.UserEngagement)
	}

	notes := metrics.FeatureTrends[string(FeatureNotes)]
	if len(notes) != 30 || notes[29] != 1 {
		t.Fatalf("unexpected notes trend: %v", notes)
	}
	for _, feature := range Features() {
		trend, ok := metrics.FeatureTrends[string(feature)]
		if !ok || len(trend) != 30 {
			t.Fatalf("feature %s missing a full trend", feature)
		}
	}
	if len(metrics.FeatureUsage.Labels) != len(Features()) {
		t.Fatalf("feature usage must enumerate every feature")
	}
}

func TestBuildDashboardIdempotent(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

	first, err1 := BuildDashboard(sampleInput(now))
	second, err2 := BuildDashboard(sampleInput(now))
	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v, %v", err1, err2)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical inputs must yield identical output")
	}
}

func TestBuildDashboardEmptyInput(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	metrics, err := BuildDashboard(DashboardInput{Now: now})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if metrics.DAU != 0 || metrics.AvgSessionMinutes != 0 {
		t.Fatalf("expected zero scalars on empty input")
	}
	if metrics.SessionDepth.AvgSessionsPerDay != 0 {
		t.Fatalf("division by zero must degrade to 0")
	}
	for _, trend := range metrics.FeatureTrends {
		for _, v := range trend {
			if v != 0 {
				t.Fatalf("expected zero-filled trends, got %v", trend)
			}
		}
	}
}

func TestZeroDashboardShape(t *testing.T) {
	zero := ZeroDashboard(30)

	if len(zero.Active30) != 30 || len(zero.Sessions30) != 30 || len(zero.AvgDuration30) != 30 {
		t.Fatalf("zero dashboard trends must be window-length")
	}
	for _, feature := range Features() {
		trend, ok := zero.FeatureTrends[string(feature)]
		if !ok || len(trend) != 30 {
			t.Fatalf("feature %s missing from zero dashboard", feature)
		}
	}
	for _, tier := range EngagementTiers() {
		if _, ok := zero.UserEngagement[tier]; !ok {
			t.Fatalf("tier %s missing from zero dashboard", tier)
		}
	}
	for _, bucket := range DurationBuckets() {
		if _, ok := zero.SessionDepth.DurationDistribution[bucket]; !ok {
			t.Fatalf("duration bucket %s missing from zero dashboard", bucket)
		}
	}
	if len(zero.FeatureUsage.Labels) != len(zero.FeatureUsage.Values) {
		t.Fatalf("feature usage labels and values must stay aligned")
	}
}
