package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type PayoutDTO struct {
	PayoutID      string  `json:"payout_id"`
	ContentItemID string  `json:"content_item_id"`
	Amount        float64 `json:"amount"`
	AmountText    string  `json:"amount_text"`
	ViewCount     int64   `json:"view_count"`
	ViewCountText string  `json:"view_count_text"`
	Date          string  `json:"date"`
}

type PayoutHistoryResponse struct {
	Status string      `json:"status"`
	Data   []PayoutDTO `json:"data"`
}

type ReconciliationDTO struct {
	ContentItemID      string  `json:"content_item_id"`
	TotalEarned        float64 `json:"total_earned"`
	TotalEarnedText    string  `json:"total_earned_text"`
	AlreadyPaid        float64 `json:"already_paid"`
	AlreadyPaidText    string  `json:"already_paid_text"`
	RemainingToPay     float64 `json:"remaining_to_pay"`
	RemainingToPayText string  `json:"remaining_to_pay_text"`
}

type ReconciliationResponse struct {
	Status string            `json:"status"`
	Data   ReconciliationDTO `json:"data"`
}

type SummaryRowDTO struct {
	ContentItemID      string  `json:"content_item_id"`
	Title              string  `json:"title"`
	ItemStatus         string  `json:"item_status"`
	TotalEarned        float64 `json:"total_earned"`
	AlreadyPaid        float64 `json:"already_paid"`
	RemainingToPay     float64 `json:"remaining_to_pay"`
	RemainingToPayText string  `json:"remaining_to_pay_text"`
	ViewsAtLastPayout  int64   `json:"views_at_last_payout"`
	CurrentViews       int64   `json:"current_views"`
	CurrentViewsText   string  `json:"current_views_text"`
	FinalViews         *int64  `json:"final_views,omitempty"`
}

type SummaryResponse struct {
	Status string `json:"status"`
	Data   struct {
		Rows             []SummaryRowDTO `json:"rows"`
		PendingCount     int             `json:"pending_count"`
		PendingTotal     float64         `json:"pending_total"`
		PendingTotalText string          `json:"pending_total_text"`
	} `json:"data"`
}

type ProcessBatchRequest struct {
	ContentItemIDs []string `json:"content_item_ids"`
}

type BatchErrorDTO struct {
	ContentItemID string `json:"content_item_id"`
	Reason        string `json:"reason"`
}

type BatchReportResponse struct {
	Status   string `json:"status"`
	Replayed bool   `json:"replayed,omitempty"`
	Data     struct {
		ProcessedCount  int             `json:"processed_count"`
		TotalAmount     float64         `json:"total_amount"`
		TotalAmountText string          `json:"total_amount_text"`
		SkippedCount    int             `json:"skipped_count"`
		Errors          []BatchErrorDTO `json:"errors"`
	} `json:"data"`
}
