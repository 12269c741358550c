package services

import "creatorpay/contexts/payments/payout-service/domain/entities"

// CalculatePayment computes the total earnings for a view count under the
// given rate terms. The view component is a continuous linear function of
// views, not a step function: views divided by the unit size scales the view
// rate fractionally. Every bonus threshold the view count meets or exceeds
// adds its amount; thresholds are independent and stack. A positive max
// payout clamps the final total.
//
// The function is total over well-formed terms. ViewsPerUnit is validated to
// be positive when a rule is created, so no division guard lives here.
func CalculatePayment(terms entities.RateTerms, views int64) float64 {
	amount := terms.BasePay
	amount += float64(views) / float64(terms.ViewsPerUnit) * terms.ViewRate
	for _, bonus := range terms.BonusThresholds {
		if views >= bonus.ViewThreshold {
			amount += bonus.BonusAmount
		}
	}
	if terms.MaxPayout != nil && *terms.MaxPayout > 0 && amount > *terms.MaxPayout {
		amount = *terms.MaxPayout
	}
	return amount
}
