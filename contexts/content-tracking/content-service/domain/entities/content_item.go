package entities

import (
	"strings"
	"time"
)

type Platform string

const (
	PlatformTikTok    Platform = "tiktok"
	PlatformYouTube   Platform = "youtube"
	PlatformInstagram Platform = "instagram"
	PlatformTwitter   Platform = "twitter"
	PlatformLinkedIn  Platform = "linkedin"
	PlatformThreads   Platform = "threads"
	PlatformFacebook  Platform = "facebook"
	PlatformBluesky   Platform = "bluesky"
	PlatformPinterest Platform = "pinterest"
)

func (p Platform) Valid() bool {
	switch p {
	case PlatformTikTok, PlatformYouTube, PlatformInstagram, PlatformTwitter,
		PlatformLinkedIn, PlatformThreads, PlatformFacebook, PlatformBluesky,
		PlatformPinterest:
		return true
	}
	return false
}

type Status string

const (
	StatusTracking  Status = "tracking"
	StatusFinalized Status = "finalized"
	StatusPaid      Status = "paid"
)

// ContentItem is one tracked piece of content. UploadDate is immutable after
// creation; FinalViews is set exactly once when the operator finalizes the
// item, and the status only moves forward: tracking -> finalized -> paid.
type ContentItem struct {
	ContentID        string
	Title            string
	Platform         Platform
	PlatformID       string
	SourceURL        string
	UploadDate       time.Time
	StartingViews    int64
	CurrentViews     int64
	FinalViews       *int64
	Status           Status
	PaymentRuleID    string
	BelongsToChannel bool
	ManagedByManager bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (c ContentItem) Validate() bool {
	if strings.TrimSpace(c.Title) == "" {
		return false
	}
	if !c.Platform.Valid() {
		return false
	}
	if c.UploadDate.IsZero() {
		return false
	}
	if c.StartingViews < 0 || c.CurrentViews < 0 {
		return false
	}
	if strings.TrimSpace(c.PaymentRuleID) == "" {
		return false
	}
	return true
}

// ViewSnapshot is one daily view-count record for a content item. At most one
// snapshot exists per (content item, calendar day).
type ViewSnapshot struct {
	SnapshotID    string
	ContentItemID string
	RecordDate    time.Time
	ViewCount     int64
	CreatedAt     time.Time
}
