package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"creatorpay/contexts/payments/payout-service/domain/entities"
	"creatorpay/contexts/payments/payout-service/ports"

	"github.com/google/uuid"
)

// Store backs every payout-service port in memory. Tests seed content
// snapshots and rate terms directly, and can arm per-item write failures to
// exercise batch isolation.
type Store struct {
	mu          sync.RWMutex
	payouts     []entities.Payout
	content     map[string]ports.ContentSnapshot
	rates       map[string]entities.RateTerms
	idempotency map[string]ports.IdempotencyRecord
	failWrites  map[string]error
}

func NewStore() *Store {
	return &Store{
		content:     make(map[string]ports.ContentSnapshot),
		rates:       make(map[string]entities.RateTerms),
		idempotency: make(map[string]ports.IdempotencyRecord),
		failWrites:  make(map[string]error),
	}
}

func (s *Store) SeedContent(snapshot ports.ContentSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.content[snapshot.ContentItemID] = snapshot
}

func (s *Store) SeedRate(ruleID string, terms entities.RateTerms) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rates[ruleID] = terms
}

func (s *Store) SeedPayout(payout entities.Payout) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payouts = append(s.payouts, payout)
}

// FailPayoutWrites makes CreatePayout fail for one content item.
func (s *Store) FailPayoutWrites(contentItemID string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		err = errors.New("simulated persistence failure")
	}
	s.failWrites[contentItemID] = err
}

func (s *Store) CreatePayout(_ context.Context, payout entities.Payout) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err, ok := s.failWrites[payout.ContentItemID]; ok {
		return err
	}
	s.payouts = append(s.payouts, payout)
	return nil
}

func (s *Store) ListPayouts(_ context.Context, contentItemID string) ([]entities.Payout, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.Payout, 0, len(s.payouts))
	for _, payout := range s.payouts {
		if contentItemID != "" && payout.ContentItemID != contentItemID {
			continue
		}
		out = append(out, payout)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out, nil
}

func (s *Store) GetContent(_ context.Context, contentItemID string) (ports.ContentSnapshot, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snapshot, ok := s.content[contentItemID]
	return snapshot, ok, nil
}

func (s *Store) ListContent(_ context.Context) ([]ports.ContentSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ports.ContentSnapshot, 0, len(s.content))
	for _, snapshot := range s.content {
		out = append(out, snapshot)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ContentItemID < out[j].ContentItemID
	})
	return out, nil
}

func (s *Store) RateTerms(_ context.Context, ruleID string) (entities.RateTerms, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	terms, ok := s.rates[ruleID]
	return terms, ok, nil
}

func (s *Store) MarkPaid(_ context.Context, contentItemID string, _ time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot, ok := s.content[contentItemID]
	if !ok {
		return errors.New("content item not found")
	}
	snapshot.Status = ports.ContentStatusPaid
	s.content[contentItemID] = snapshot
	return nil
}

func (s *Store) GetRecord(_ context.Context, key string, now time.Time) (ports.IdempotencyRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.idempotency[key]
	if !ok || now.After(record.ExpiresAt) {
		return ports.IdempotencyRecord{}, false, nil
	}
	return record, true, nil
}

func (s *Store) PutRecord(_ context.Context, record ports.IdempotencyRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.idempotency[record.Key] = record
	return nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
