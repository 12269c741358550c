package entities

import (
	"strings"
	"time"
)

// PaymentRule defines how a content item earns money: a flat base pay, a
// linear per-view rate, stacking bonus milestones, and an optional cap.
// TrackingPeriodDays bounds the window during which views count.
type PaymentRule struct {
	RuleID             string
	Name               string
	BasePay            float64
	ViewRate           float64
	ViewsPerUnit       int64
	TrackingPeriodDays int
	MaxPayout          *float64
	BonusThresholds    []BonusThreshold
	CombineViews       bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// BonusThreshold adds a fixed amount once the view count reaches the
// threshold. Multiple thresholds stack; they are never mutually exclusive.
type BonusThreshold struct {
	ViewThreshold int64
	BonusAmount   float64
}

func (r PaymentRule) Validate() bool {
	if strings.TrimSpace(r.Name) == "" {
		return false
	}
	if r.BasePay < 0 || r.ViewRate < 0 {
		return false
	}
	// ViewsPerUnit is a divisor; zero must be rejected here, never guarded
	// at calculation time.
	if r.ViewsPerUnit <= 0 {
		return false
	}
	if r.TrackingPeriodDays <= 0 {
		return false
	}
	if r.MaxPayout != nil && *r.MaxPayout <= 0 {
		return false
	}
	for _, bonus := range r.BonusThresholds {
		if bonus.ViewThreshold < 0 || bonus.BonusAmount < 0 {
			return false
		}
	}
	return true
}
