package entities

import (
	"testing"
	"time"
)

func trackingItem(uploadDate time.Time) ContentItem {
	return ContentItem{
		ContentID:  "content-1",
		UploadDate: uploadDate,
		Status:     StatusTracking,
	}
}

func TestClassifyInclusiveBoundary(t *testing.T) {
	now := time.Date(2026, 3, 31, 12, 0, 0, 0, time.UTC)
	uploaded := now.Add(-30 * 24 * time.Hour)

	got := Classify(trackingItem(uploaded), 30, now)
	if got.Bucket != BucketActive {
		t.Fatalf("item at exact window end should still be active, got %s", got.Bucket)
	}
	if got.IsFinalizable {
		t.Fatal("item at exact window end must not be finalizable")
	}

	later := Classify(trackingItem(uploaded), 30, now.Add(time.Second))
	if later.Bucket != BucketFinalizable || !later.IsFinalizable {
		t.Fatalf("item past window end should be finalizable, got %+v", later)
	}
	if later.Status != StatusTracking {
		t.Fatalf("window close must not change stored status, got %s", later.Status)
	}
}

func TestClassifyFailsClosed(t *testing.T) {
	now := time.Date(2026, 3, 31, 12, 0, 0, 0, time.UTC)

	zeroDate := Classify(trackingItem(time.Time{}), 30, now)
	if zeroDate.Bucket != BucketExcluded {
		t.Fatalf("zero upload date should exclude item, got %s", zeroDate.Bucket)
	}

	badPeriod := Classify(trackingItem(now.Add(-24*time.Hour)), 0, now)
	if badPeriod.Bucket != BucketExcluded {
		t.Fatalf("non-positive period should exclude item, got %s", badPeriod.Bucket)
	}
}

func TestClassifyFinalizedAndPaidExcluded(t *testing.T) {
	now := time.Date(2026, 3, 31, 12, 0, 0, 0, time.UTC)
	item := trackingItem(now.Add(-40 * 24 * time.Hour))

	item.Status = StatusFinalized
	if got := Classify(item, 30, now); got.Bucket != BucketExcluded || got.IsFinalizable {
		t.Fatalf("finalized item should be excluded, got %+v", got)
	}

	item.Status = StatusPaid
	if got := Classify(item, 30, now); got.Bucket != BucketExcluded {
		t.Fatalf("paid item should be excluded, got %+v", got)
	}
}

func TestTrackingWindowEnd(t *testing.T) {
	uploaded := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := TrackingWindowEnd(uploaded, 14)
	want := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	if !end.Equal(want) {
		t.Fatalf("window end %v, want %v", end, want)
	}
}
