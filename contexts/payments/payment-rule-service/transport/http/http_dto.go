package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type BonusThresholdDTO struct {
	ViewThreshold int64   `json:"view_threshold"`
	BonusAmount   float64 `json:"bonus_amount"`
}

type UpsertPaymentRuleRequest struct {
	Name               string              `json:"name"`
	BasePay            float64             `json:"base_pay"`
	ViewRate           float64             `json:"view_rate"`
	ViewsPerUnit       int64               `json:"views_per_unit"`
	TrackingPeriodDays int                 `json:"tracking_period_days"`
	MaxPayout          *float64            `json:"max_payout,omitempty"`
	BonusThresholds    []BonusThresholdDTO `json:"bonus_thresholds,omitempty"`
	CombineViews       bool                `json:"combine_views"`
}

type PaymentRuleDTO struct {
	RuleID             string              `json:"rule_id"`
	Name               string              `json:"name"`
	BasePay            float64             `json:"base_pay"`
	ViewRate           float64             `json:"view_rate"`
	ViewsPerUnit       int64               `json:"views_per_unit"`
	TrackingPeriodDays int                 `json:"tracking_period_days"`
	MaxPayout          *float64            `json:"max_payout,omitempty"`
	BonusThresholds    []BonusThresholdDTO `json:"bonus_thresholds"`
	CombineViews       bool                `json:"combine_views"`
	CreatedAt          string              `json:"created_at"`
	UpdatedAt          string              `json:"updated_at"`
}

type PaymentRuleResponse struct {
	Status string         `json:"status"`
	Data   PaymentRuleDTO `json:"data"`
}

type PaymentRuleListResponse struct {
	Status string           `json:"status"`
	Data   []PaymentRuleDTO `json:"data"`
}

type DeletePaymentRuleResponse struct {
	Status string `json:"status"`
}
