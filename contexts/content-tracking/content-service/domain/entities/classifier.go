package entities

import "time"

type Bucket string

const (
	BucketActive      Bucket = "active"
	BucketFinalizable Bucket = "finalizable"
	BucketExcluded    Bucket = "excluded"
)

// Classification places an item in exactly one tracking-window bucket at a
// given instant. IsFinalizable is a derived condition, never a stored status:
// the window closing does not mutate the item, it only changes which list and
// action the operator is offered.
type Classification struct {
	Bucket        Bucket
	Status        Status
	IsFinalizable bool
	WindowEndsAt  time.Time
}

// TrackingWindowEnd returns the last instant at which an item uploaded at
// uploadDate still counts as actively tracking. The boundary is inclusive.
func TrackingWindowEnd(uploadDate time.Time, trackingPeriodDays int) time.Time {
	return uploadDate.Add(time.Duration(trackingPeriodDays) * 24 * time.Hour)
}

// Classify derives the tracking-window bucket for an item. Items with a
// malformed window (zero upload date, non-positive tracking period) are
// excluded from both the active and finalizable buckets rather than failing.
// Finalized and paid items are past the window by definition and excluded.
func Classify(item ContentItem, trackingPeriodDays int, now time.Time) Classification {
	out := Classification{Bucket: BucketExcluded, Status: item.Status}
	if item.UploadDate.IsZero() || trackingPeriodDays <= 0 {
		return out
	}
	out.WindowEndsAt = TrackingWindowEnd(item.UploadDate, trackingPeriodDays)
	if item.Status != StatusTracking {
		return out
	}
	if !now.After(out.WindowEndsAt) {
		out.Bucket = BucketActive
		return out
	}
	out.Bucket = BucketFinalizable
	out.IsFinalizable = true
	return out
}
