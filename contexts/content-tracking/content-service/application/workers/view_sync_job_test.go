package workers

import (
	"context"
	"testing"
	"time"

	"creatorpay/contexts/content-tracking/content-service/adapters/memory"
	"creatorpay/contexts/content-tracking/content-service/adapters/platformstub"
	"creatorpay/contexts/content-tracking/content-service/domain/entities"
)

func seedItem(id, platformID string, status entities.Status) entities.ContentItem {
	return entities.ContentItem{
		ContentID:     id,
		Title:         "clip " + id,
		Platform:      entities.PlatformTikTok,
		PlatformID:    platformID,
		UploadDate:    time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		StartingViews: 100,
		CurrentViews:  100,
		Status:        status,
		PaymentRuleID: "rule-1",
	}
}

func TestRunOnceSkipsFailingItemAndContinues(t *testing.T) {
	store := memory.NewStore([]entities.ContentItem{
		seedItem("content-a", "tt-a", entities.StatusTracking),
		seedItem("content-b", "tt-missing", entities.StatusTracking),
		seedItem("content-c", "tt-c", entities.StatusTracking),
	})
	source := platformstub.NewSource()
	source.SetViewCount(entities.PlatformTikTok, "tt-a", 5000)
	source.SetViewCount(entities.PlatformTikTok, "tt-c", 7200)

	job := ViewSyncJob{
		Repository:  store,
		Source:      source,
		Cache:       store,
		Clock:       store,
		IDGenerator: store,
	}
	if err := job.RunOnce(context.Background()); err != nil {
		t.Fatalf("run once failed: %v", err)
	}

	a, _ := store.GetItem(context.Background(), "content-a")
	if a.CurrentViews != 5000 {
		t.Fatalf("content-a views %d, want 5000", a.CurrentViews)
	}
	b, _ := store.GetItem(context.Background(), "content-b")
	if b.CurrentViews != 100 {
		t.Fatalf("failing item must keep prior views, got %d", b.CurrentViews)
	}
	c, _ := store.GetItem(context.Background(), "content-c")
	if c.CurrentViews != 7200 {
		t.Fatalf("content-c views %d, want 7200", c.CurrentViews)
	}

	cached, ok, err := store.GetViewCount(context.Background(), "content-c")
	if err != nil || !ok || cached != 7200 {
		t.Fatalf("cache miss for synced item: %d %v %v", cached, ok, err)
	}
}

func TestRunOnceSkipsWritesWhenCachedCountUnchanged(t *testing.T) {
	store := memory.NewStore([]entities.ContentItem{
		seedItem("content-a", "tt-a", entities.StatusTracking),
	})
	source := platformstub.NewSource()
	source.SetViewCount(entities.PlatformTikTok, "tt-a", 5000)

	job := ViewSyncJob{
		Repository:  store,
		Source:      source,
		Cache:       store,
		Clock:       store,
		IDGenerator: store,
	}
	if err := job.RunOnce(context.Background()); err != nil {
		t.Fatalf("first run failed: %v", err)
	}

	// A direct repository write simulates state the worker did not produce.
	// With the platform still reporting the cached 5000, the second cycle
	// must not touch the item.
	if err := store.UpdateViews(context.Background(), "content-a", 4444, time.Now().UTC()); err != nil {
		t.Fatalf("direct update failed: %v", err)
	}
	if err := job.RunOnce(context.Background()); err != nil {
		t.Fatalf("second run failed: %v", err)
	}
	item, _ := store.GetItem(context.Background(), "content-a")
	if item.CurrentViews != 4444 {
		t.Fatalf("unchanged platform count must skip the write, got %d", item.CurrentViews)
	}

	// A moved count invalidates the cached value and syncs again.
	source.SetViewCount(entities.PlatformTikTok, "tt-a", 5100)
	if err := job.RunOnce(context.Background()); err != nil {
		t.Fatalf("third run failed: %v", err)
	}
	item, _ = store.GetItem(context.Background(), "content-a")
	if item.CurrentViews != 5100 {
		t.Fatalf("moved platform count must sync, got %d", item.CurrentViews)
	}
}

func TestRunOnceIgnoresNonTrackingItems(t *testing.T) {
	store := memory.NewStore([]entities.ContentItem{
		seedItem("content-done", "tt-done", entities.StatusFinalized),
	})
	source := platformstub.NewSource()
	source.SetViewCount(entities.PlatformTikTok, "tt-done", 99999)

	job := ViewSyncJob{Repository: store, Source: source, Clock: store, IDGenerator: store}
	if err := job.RunOnce(context.Background()); err != nil {
		t.Fatalf("run once failed: %v", err)
	}

	item, _ := store.GetItem(context.Background(), "content-done")
	if item.CurrentViews != 100 {
		t.Fatalf("finalized item must not be synced, got %d", item.CurrentViews)
	}
}

func TestRunOnceDisabled(t *testing.T) {
	store := memory.NewStore([]entities.ContentItem{
		seedItem("content-a", "tt-a", entities.StatusTracking),
	})
	source := platformstub.NewSource()
	source.SetViewCount(entities.PlatformTikTok, "tt-a", 5000)

	job := ViewSyncJob{Repository: store, Source: source, Clock: store, IDGenerator: store, Disabled: true}
	if err := job.RunOnce(context.Background()); err != nil {
		t.Fatalf("run once failed: %v", err)
	}
	item, _ := store.GetItem(context.Background(), "content-a")
	if item.CurrentViews != 100 {
		t.Fatalf("disabled job must not sync, got %d", item.CurrentViews)
	}
}
