package application

import (
	"context"
	"errors"
	"testing"

	"creatorpay/contexts/payments/payment-rule-service/adapters/memory"
	"creatorpay/contexts/payments/payment-rule-service/domain/entities"
	domainerrors "creatorpay/contexts/payments/payment-rule-service/domain/errors"
)

func newService(store *memory.Store) Service {
	return Service{
		Repository: store,
		ContentRef: store,
		Clock:      store,
		IDGen:      store,
	}
}

func TestCreateThenGetRule(t *testing.T) {
	store := memory.NewStore(nil)
	service := newService(store)

	created, err := service.CreateRule(context.Background(), CreateRuleInput{
		Name:               "Shorts Standard",
		BasePay:            50,
		ViewRate:           5,
		ViewsPerUnit:       1000,
		TrackingPeriodDays: 30,
		BonusThresholds: []entities.BonusThreshold{
			{ViewThreshold: 100000, BonusAmount: 250},
		},
	})
	if err != nil {
		t.Fatalf("create rule failed: %v", err)
	}
	if created.RuleID == "" {
		t.Fatal("expected generated rule id")
	}

	fetched, err := service.GetRule(context.Background(), created.RuleID)
	if err != nil {
		t.Fatalf("get rule failed: %v", err)
	}
	if fetched.Name != "Shorts Standard" {
		t.Fatalf("unexpected name %s", fetched.Name)
	}
	if len(fetched.BonusThresholds) != 1 || fetched.BonusThresholds[0].BonusAmount != 250 {
		t.Fatalf("unexpected bonus thresholds %+v", fetched.BonusThresholds)
	}
}

func TestCreateRuleRejectsZeroViewsPerUnit(t *testing.T) {
	store := memory.NewStore(nil)
	service := newService(store)

	_, err := service.CreateRule(context.Background(), CreateRuleInput{
		Name:               "Broken",
		BasePay:            10,
		ViewRate:           1,
		ViewsPerUnit:       0,
		TrackingPeriodDays: 30,
	})
	if !errors.Is(err, domainerrors.ErrInvalidRuleInput) {
		t.Fatalf("expected invalid rule input, got %v", err)
	}
}

func TestUpdateRulePreservesCreatedAt(t *testing.T) {
	store := memory.NewStore(nil)
	service := newService(store)

	created, err := service.CreateRule(context.Background(), CreateRuleInput{
		Name:               "Tier One",
		BasePay:            25,
		ViewRate:           2,
		ViewsPerUnit:       1000,
		TrackingPeriodDays: 14,
	})
	if err != nil {
		t.Fatalf("create rule failed: %v", err)
	}

	updated, err := service.UpdateRule(context.Background(), created.RuleID, CreateRuleInput{
		Name:               "Tier One Revised",
		BasePay:            30,
		ViewRate:           2.5,
		ViewsPerUnit:       1000,
		TrackingPeriodDays: 14,
	})
	if err != nil {
		t.Fatalf("update rule failed: %v", err)
	}
	if updated.Name != "Tier One Revised" || updated.BasePay != 30 {
		t.Fatalf("unexpected updated rule %+v", updated)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("created_at changed: %v vs %v", updated.CreatedAt, created.CreatedAt)
	}
}

func TestUpdateUnknownRule(t *testing.T) {
	store := memory.NewStore(nil)
	service := newService(store)

	_, err := service.UpdateRule(context.Background(), "missing", CreateRuleInput{
		Name:               "Ghost",
		ViewsPerUnit:       1000,
		TrackingPeriodDays: 7,
	})
	if !errors.Is(err, domainerrors.ErrRuleNotFound) {
		t.Fatalf("expected rule not found, got %v", err)
	}
}

func TestDeleteRuleRefusedWhenReferenced(t *testing.T) {
	store := memory.NewStore(nil)
	service := newService(store)

	created, err := service.CreateRule(context.Background(), CreateRuleInput{
		Name:               "In Use",
		BasePay:            10,
		ViewRate:           1,
		ViewsPerUnit:       1000,
		TrackingPeriodDays: 30,
	})
	if err != nil {
		t.Fatalf("create rule failed: %v", err)
	}
	store.SetContentRefCount(created.RuleID, 3)

	err = service.DeleteRule(context.Background(), created.RuleID)
	if !errors.Is(err, domainerrors.ErrRuleInUse) {
		t.Fatalf("expected rule in use, got %v", err)
	}

	store.SetContentRefCount(created.RuleID, 0)
	if err := service.DeleteRule(context.Background(), created.RuleID); err != nil {
		t.Fatalf("delete rule failed: %v", err)
	}
	if _, err := service.GetRule(context.Background(), created.RuleID); !errors.Is(err, domainerrors.ErrRuleNotFound) {
		t.Fatalf("expected rule not found after delete, got %v", err)
	}
}
