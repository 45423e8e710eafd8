package insights

import (
	"testing"
	"time"
)

func TestWindowLabels(t *testing.T) {
	now := time.Date(2026, time.March, 15, 14, 30, 0, 0, time.UTC)

	for _, n := range []int{1, 7, 30, 90} {
		labels := WindowLabels(now, n)
		if len(labels) != n {
			t.Fatalf("expected %d labels, got %d", n, len(labels))
		}
		if labels[n-1] != "2026-03-15" {
			t.Fatalf("expected window to end today, got %s", labels[n-1])
		}
		for i := 1; i < n; i++ {
			prev, err := time.Parse(dayKeyFormat, labels[i-1])
			if err != nil {
				t.Fatalf("unparseable label %q: %v", labels[i-1], err)
			}
			cur, err := time.Parse(dayKeyFormat, labels[i])
			if err != nil {
				t.Fatalf("unparseable label %q: %v", labels[i], err)
			}
			if !prev.AddDate(0, 0, 1).Equal(cur) {
				t.Fatalf("labels not contiguous ascending at %d: %s -> %s", i, labels[i-1], labels[i])
			}
		}
	}
}

func TestWindowLabelsNonPositive(t *testing.T) {
	now := time.Date(2026, time.March, 15, 14, 30, 0, 0, time.UTC)
	if got := WindowLabels(now, 0); len(got) != 0 {
		t.Fatalf("expected empty window for n=0, got %v", got)
	}
	if got := WindowLabels(now, -3); len(got) != 0 {
		t.Fatalf("expected empty window for negative n, got %v", got)
	}
}

func TestWindowLabelsCrossesMonthBoundary(t *testing.T) {
	now := time.Date(2026, time.March, 2, 8, 0, 0, 0, time.UTC)
	labels := WindowLabels(now, 4)

	want := []string{"2026-02-27", "2026-02-28", "2026-03-01", "2026-03-02"}
	for i := range want {
		if labels[i] != want[i] {
			t.Fatalf("label %d: expected %s, got %s", i, want[i], labels[i])
		}
	}
}

func TestStartOfDay(t *testing.T) {
	ts := time.Date(2026, time.March, 15, 23, 59, 59, 999, time.UTC)
	got := StartOfDay(ts)
	want := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestDaysAgo(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	got := DaysAgo(now, 30)
	want := time.Date(2026, time.February, 13, 12, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
