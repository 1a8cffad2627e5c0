package api

import (
	"testing"
	"time"
)

func TestCompareStats_Snapshot(t *testing.T) {
	s := NewCompareStats(time.Hour)
	s.RecordBuild("hr133-116", 100*time.Millisecond)
	s.RecordBuild("hr748-116", 200*time.Millisecond)
	s.RecordBuild("hr3684-117", 300*time.Millisecond)
	s.RecordHit()
	s.RecordHit()

	snap := s.Snapshot()
	if snap.Builds != 3 {
		t.Fatalf("expected 3 builds, got %d", snap.Builds)
	}
	if snap.MinMs != 100 || snap.MaxMs != 300 {
		t.Errorf("unexpected min/max %d/%d", snap.MinMs, snap.MaxMs)
	}
	if snap.AvgMs != 200 {
		t.Errorf("expected avg 200, got %v", snap.AvgMs)
	}
	if snap.P50Ms != 200 {
		t.Errorf("expected p50 200, got %v", snap.P50Ms)
	}
	if snap.CacheHits != 2 || snap.CacheMisses != 3 {
		t.Errorf("unexpected counters %+v", snap)
	}
	if snap.LastKey != "hr3684-117" {
		t.Errorf("unexpected last preset %q", snap.LastKey)
	}
}

func TestCompareStats_Empty(t *testing.T) {
	s := NewCompareStats(time.Hour)
	snap := s.Snapshot()
	if snap.Builds != 0 || snap.AvgMs != 0 {
		t.Errorf("expected zero snapshot, got %+v", snap)
	}
}

func TestCompareStats_WindowPrunes(t *testing.T) {
	s := NewCompareStats(10 * time.Millisecond)
	s.RecordBuild("hr133-116", 50*time.Millisecond)
	time.Sleep(25 * time.Millisecond)
	snap := s.Snapshot()
	if snap.Builds != 0 {
		t.Errorf("expired sample should be pruned, got %d", snap.Builds)
	}
	// Counters survive the window.
	if snap.CacheMisses != 1 {
		t.Errorf("miss counter should persist, got %d", snap.CacheMisses)
	}
}

func TestPercentile(t *testing.T) {
	vals := []int64{10, 20, 30, 40}
	if got := percentile(vals, 0); got != 10 {
		t.Errorf("p0: got %v", got)
	}
	if got := percentile(vals, 100); got != 40 {
		t.Errorf("p100: got %v", got)
	}
	if got := percentile(vals, 50); got != 25 {
		t.Errorf("p50: got %v", got)
	}
	if got := percentile(nil, 50); got != 0 {
		t.Errorf("empty: got %v", got)
	}
}
