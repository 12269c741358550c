package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type UpsertChannelRequest struct {
	Name                 string  `json:"name"`
	Platform             string  `json:"platform"`
	PlatformID           string  `json:"platform_id,omitempty"`
	PlatformURL          string  `json:"platform_url,omitempty"`
	DefaultPaymentRuleID *string `json:"default_payment_rule_id,omitempty"`
}

type ChannelDTO struct {
	ChannelID            string  `json:"channel_id"`
	Name                 string  `json:"name"`
	Platform             string  `json:"platform"`
	PlatformID           string  `json:"platform_id,omitempty"`
	PlatformURL          string  `json:"platform_url,omitempty"`
	DefaultPaymentRuleID *string `json:"default_payment_rule_id,omitempty"`
	CreatedAt            string  `json:"created_at"`
	UpdatedAt            string  `json:"updated_at"`
}

type ChannelResponse struct {
	Status string     `json:"status"`
	Data   ChannelDTO `json:"data"`
}

type ChannelListResponse struct {
	Status string       `json:"status"`
	Data   []ChannelDTO `json:"data"`
}

type MapContentRequest struct {
	ContentItemID string `json:"content_item_id"`
}

type ChannelMappingDTO struct {
	MappingID     string `json:"mapping_id"`
	ChannelID     string `json:"channel_id"`
	ContentItemID string `json:"content_item_id"`
	CreatedAt     string `json:"created_at"`
}

type ChannelMappingResponse struct {
	Status string            `json:"status"`
	Data   ChannelMappingDTO `json:"data"`
}

type ChannelMappingListResponse struct {
	Status string              `json:"status"`
	Data   []ChannelMappingDTO `json:"data"`
}

type DeleteChannelResponse struct {
	Status string `json:"status"`
}
