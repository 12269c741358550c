package entities

import (
	"strings"
	"time"
)

// Channel groups content items under one creator account for attribution
// bookkeeping. No payment computation depends on channels.
type Channel struct {
	ChannelID            string
	Name                 string
	Platform             string
	PlatformID           string
	PlatformURL          string
	DefaultPaymentRuleID *string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func (c Channel) Validate() bool {
	if strings.TrimSpace(c.Name) == "" {
		return false
	}
	if strings.TrimSpace(c.Platform) == "" {
		return false
	}
	return true
}

type ChannelMapping struct {
	MappingID     string
	ChannelID     string
	ContentItemID string
	CreatedAt     time.Time
}
