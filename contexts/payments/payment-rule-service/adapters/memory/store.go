package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"creatorpay/contexts/payments/payment-rule-service/domain/entities"
	domainerrors "creatorpay/contexts/payments/payment-rule-service/domain/errors"

	"github.com/google/uuid"
)

type Store struct {
	mu sync.RWMutex

	rules    map[string]entities.PaymentRule
	refCount map[string]int64
}

func NewStore(seed []entities.PaymentRule) *Store {
	rules := make(map[string]entities.PaymentRule, len(seed))
	for _, item := range seed {
		rules[item.RuleID] = item
	}
	return &Store{
		rules:    rules,
		refCount: make(map[string]int64),
	}
}

func (s *Store) CreateRule(_ context.Context, rule entities.PaymentRule) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rules[rule.RuleID] = rule
	return nil
}

func (s *Store) UpdateRule(_ context.Context, rule entities.PaymentRule) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.rules[rule.RuleID]; !exists {
		return domainerrors.ErrRuleNotFound
	}
	s.rules[rule.RuleID] = rule
	return nil
}

func (s *Store) GetRule(_ context.Context, ruleID string) (entities.PaymentRule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.rules[strings.TrimSpace(ruleID)]
	if !exists {
		return entities.PaymentRule{}, domainerrors.ErrRuleNotFound
	}
	return item, nil
}

func (s *Store) ListRules(_ context.Context) ([]entities.PaymentRule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.PaymentRule, 0, len(s.rules))
	for _, item := range s.rules {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (s *Store) DeleteRule(_ context.Context, ruleID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.rules[ruleID]; !exists {
		return domainerrors.ErrRuleNotFound
	}
	delete(s.rules, ruleID)
	return nil
}

// SetContentRefCount seeds the reference count used by deletion guards.
func (s *Store) SetContentRefCount(ruleID string, count int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.refCount[ruleID] = count
}

func (s *Store) CountContentByRule(_ context.Context, ruleID string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.refCount[ruleID], nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
