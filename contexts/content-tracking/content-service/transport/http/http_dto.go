package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CreateContentItemRequest struct {
	Title            string `json:"title"`
	Platform         string `json:"platform"`
	PlatformID       string `json:"platform_id,omitempty"`
	SourceURL        string `json:"source_url,omitempty"`
	UploadDate       string `json:"upload_date"`
	StartingViews    int64  `json:"starting_views"`
	PaymentRuleID    string `json:"payment_rule_id"`
	BelongsToChannel bool   `json:"belongs_to_channel"`
	ManagedByManager bool   `json:"managed_by_manager"`
}

type UpdateContentItemRequest struct {
	Title            string `json:"title"`
	Platform         string `json:"platform"`
	PlatformID       string `json:"platform_id,omitempty"`
	SourceURL        string `json:"source_url,omitempty"`
	BelongsToChannel bool   `json:"belongs_to_channel"`
	ManagedByManager bool   `json:"managed_by_manager"`
}

type RecordViewsRequest struct {
	ViewCount int64 `json:"view_count"`
}

type FinalizeContentItemRequest struct {
	FinalViews int64 `json:"final_views"`
}

type ContentItemDTO struct {
	ContentID        string `json:"content_id"`
	Title            string `json:"title"`
	Platform         string `json:"platform"`
	PlatformID       string `json:"platform_id,omitempty"`
	SourceURL        string `json:"source_url,omitempty"`
	UploadDate       string `json:"upload_date"`
	StartingViews    int64  `json:"starting_views"`
	CurrentViews     int64  `json:"current_views"`
	CurrentViewsText string `json:"current_views_text"`
	FinalViews       *int64 `json:"final_views,omitempty"`
	Status           string `json:"status"`
	IsFinalizable    bool   `json:"is_finalizable"`
	WindowEndsAt     string `json:"window_ends_at,omitempty"`
	PaymentRuleID    string `json:"payment_rule_id"`
	BelongsToChannel bool   `json:"belongs_to_channel"`
	ManagedByManager bool   `json:"managed_by_manager"`
	CreatedAt        string `json:"created_at"`
	UpdatedAt        string `json:"updated_at"`
}

type ContentItemResponse struct {
	Status string         `json:"status"`
	Data   ContentItemDTO `json:"data"`
}

type ContentItemListResponse struct {
	Status string           `json:"status"`
	Data   []ContentItemDTO `json:"data"`
}

type ViewSnapshotDTO struct {
	RecordDate string `json:"record_date"`
	ViewCount  int64  `json:"view_count"`
}

type ViewHistoryResponse struct {
	Status string            `json:"status"`
	Data   []ViewSnapshotDTO `json:"data"`
}

type DeleteContentItemResponse struct {
	Status string `json:"status"`
}
