package entities

import "time"

// Payout is one immutable ledger entry: an amount paid against a content
// item's finalized view count. Payouts are append-only and never edited.
type Payout struct {
	PayoutID      string
	ContentItemID string
	Amount        float64
	ViewCount     int64
	Date          time.Time
}

type BonusThreshold struct {
	ViewThreshold int64
	BonusAmount   float64
}

// RateTerms is the calculation slice of a payment rule: everything the
// payment formula needs and nothing else.
type RateTerms struct {
	BasePay         float64
	ViewRate        float64
	ViewsPerUnit    int64
	MaxPayout       *float64
	BonusThresholds []BonusThreshold
}
