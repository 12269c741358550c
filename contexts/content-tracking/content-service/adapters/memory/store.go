package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"creatorpay/contexts/content-tracking/content-service/domain/entities"
	domainerrors "creatorpay/contexts/content-tracking/content-service/domain/errors"

	"github.com/google/uuid"
)

type Store struct {
	mu          sync.RWMutex
	items       map[string]entities.ContentItem
	history     map[string]map[string]entities.ViewSnapshot
	ruleWindows map[string]int
	viewCache   map[string]int64
}

func NewStore(seed []entities.ContentItem) *Store {
	store := &Store{
		items:       make(map[string]entities.ContentItem),
		history:     make(map[string]map[string]entities.ViewSnapshot),
		ruleWindows: make(map[string]int),
		viewCache:   make(map[string]int64),
	}
	for _, item := range seed {
		store.items[item.ContentID] = item
	}
	return store
}

func (s *Store) CreateItem(_ context.Context, item entities.ContentItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[item.ContentID] = item
	return nil
}

func (s *Store) UpdateItem(_ context.Context, item entities.ContentItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[item.ContentID]; !ok {
		return domainerrors.ErrItemNotFound
	}
	s.items[item.ContentID] = item
	return nil
}

func (s *Store) GetItem(_ context.Context, contentID string) (entities.ContentItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.items[contentID]
	if !ok {
		return entities.ContentItem{}, domainerrors.ErrItemNotFound
	}
	return item, nil
}

func (s *Store) ListItems(_ context.Context) ([]entities.ContentItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]entities.ContentItem, 0, len(s.items))
	for _, item := range s.items {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (s *Store) DeleteItem(_ context.Context, contentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[contentID]; !ok {
		return domainerrors.ErrItemNotFound
	}
	delete(s.items, contentID)
	delete(s.history, contentID)
	return nil
}

func (s *Store) UpdateViews(_ context.Context, contentID string, views int64, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.items[contentID]
	if !ok {
		return domainerrors.ErrItemNotFound
	}
	item.CurrentViews = views
	item.UpdatedAt = at
	s.items[contentID] = item
	return nil
}

func (s *Store) SetFinalized(_ context.Context, contentID string, finalViews int64, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.items[contentID]
	if !ok {
		return domainerrors.ErrItemNotFound
	}
	views := finalViews
	item.FinalViews = &views
	item.CurrentViews = views
	item.Status = entities.StatusFinalized
	item.UpdatedAt = at
	s.items[contentID] = item
	return nil
}

func (s *Store) UpsertViewSnapshot(_ context.Context, snapshot entities.ViewSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	day := snapshot.RecordDate.Format("2006-01-02")
	if s.history[snapshot.ContentItemID] == nil {
		s.history[snapshot.ContentItemID] = make(map[string]entities.ViewSnapshot)
	}
	if existing, ok := s.history[snapshot.ContentItemID][day]; ok {
		existing.ViewCount = snapshot.ViewCount
		s.history[snapshot.ContentItemID][day] = existing
		return nil
	}
	s.history[snapshot.ContentItemID][day] = snapshot
	return nil
}

func (s *Store) ListViewHistory(_ context.Context, contentID string) ([]entities.ViewSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snapshots := make([]entities.ViewSnapshot, 0, len(s.history[contentID]))
	for _, snapshot := range s.history[contentID] {
		snapshots = append(snapshots, snapshot)
	}
	sort.Slice(snapshots, func(i, j int) bool {
		return snapshots[i].RecordDate.Before(snapshots[j].RecordDate)
	})
	return snapshots, nil
}

func (s *Store) ListSyncableItems(_ context.Context, limit int) ([]entities.ContentItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]entities.ContentItem, 0)
	for _, item := range s.items {
		if item.Status != entities.StatusTracking || item.PlatformID == "" {
			continue
		}
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

// SetRuleWindow registers a rule's tracking period for classification.
func (s *Store) SetRuleWindow(ruleID string, trackingPeriodDays int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ruleWindows[ruleID] = trackingPeriodDays
}

func (s *Store) RuleWindow(_ context.Context, ruleID string) (int, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	days, ok := s.ruleWindows[ruleID]
	return days, ok, nil
}

func (s *Store) GetViewCount(_ context.Context, contentID string) (int64, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count, ok := s.viewCache[contentID]
	return count, ok, nil
}

func (s *Store) PutViewCount(_ context.Context, contentID string, count int64, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.viewCache[contentID] = count
	return nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
