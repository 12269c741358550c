package unit

import (
	"context"
	"errors"
	"testing"

	paymentruleservice "creatorpay/contexts/payments/payment-rule-service"
	domainerrors "creatorpay/contexts/payments/payment-rule-service/domain/errors"
	httptransport "creatorpay/contexts/payments/payment-rule-service/transport/http"
)

func TestPaymentRuleLifecycle(t *testing.T) {
	module := paymentruleservice.NewInMemoryModule(nil, nil)
	ctx := context.Background()

	created, err := module.Handler.CreateRuleHandler(ctx, httptransport.UpsertPaymentRuleRequest{
		Name:               "standard clip rate",
		BasePay:            10,
		ViewRate:           5,
		ViewsPerUnit:       1000,
		TrackingPeriodDays: 30,
		BonusThresholds: []httptransport.BonusThresholdDTO{
			{ViewThreshold: 500, BonusAmount: 5},
			{ViewThreshold: 1000, BonusAmount: 10},
		},
	})
	if err != nil {
		t.Fatalf("create rule failed: %v", err)
	}
	if created.Status != "success" || created.Data.RuleID == "" {
		t.Fatalf("unexpected create response: %+v", created)
	}
	if len(created.Data.BonusThresholds) != 2 {
		t.Fatalf("expected 2 bonus thresholds, got %d", len(created.Data.BonusThresholds))
	}

	fetched, err := module.Handler.GetRuleHandler(ctx, created.Data.RuleID)
	if err != nil {
		t.Fatalf("get rule failed: %v", err)
	}
	if fetched.Data.Name != "standard clip rate" {
		t.Fatalf("expected rule name round-trip, got %q", fetched.Data.Name)
	}

	updated, err := module.Handler.UpdateRuleHandler(ctx, created.Data.RuleID, httptransport.UpsertPaymentRuleRequest{
		Name:               "standard clip rate v2",
		BasePay:            12,
		ViewRate:           5,
		ViewsPerUnit:       1000,
		TrackingPeriodDays: 45,
	})
	if err != nil {
		t.Fatalf("update rule failed: %v", err)
	}
	if updated.Data.TrackingPeriodDays != 45 {
		t.Fatalf("expected updated tracking period, got %d", updated.Data.TrackingPeriodDays)
	}
	if updated.Data.CreatedAt != created.Data.CreatedAt {
		t.Fatalf("expected created_at preserved across update")
	}

	if _, err := module.Handler.DeleteRuleHandler(ctx, created.Data.RuleID); err != nil {
		t.Fatalf("delete rule failed: %v", err)
	}
	_, err = module.Handler.GetRuleHandler(ctx, created.Data.RuleID)
	if !errors.Is(err, domainerrors.ErrRuleNotFound) {
		t.Fatalf("expected rule not found after delete, got %v", err)
	}
}

func TestPaymentRuleRejectsInvalidInput(t *testing.T) {
	module := paymentruleservice.NewInMemoryModule(nil, nil)
	ctx := context.Background()

	_, err := module.Handler.CreateRuleHandler(ctx, httptransport.UpsertPaymentRuleRequest{
		Name:               "broken",
		BasePay:            10,
		ViewRate:           5,
		ViewsPerUnit:       0,
		TrackingPeriodDays: 30,
	})
	if !errors.Is(err, domainerrors.ErrInvalidRuleInput) {
		t.Fatalf("expected invalid rule input for zero views per unit, got %v", err)
	}
}

func TestPaymentRuleDeleteRefusedWhenContentReferencesIt(t *testing.T) {
	module := paymentruleservice.NewInMemoryModule(nil, nil)
	ctx := context.Background()

	created, err := module.Handler.CreateRuleHandler(ctx, httptransport.UpsertPaymentRuleRequest{
		Name:               "in use",
		BasePay:            0,
		ViewRate:           1,
		ViewsPerUnit:       1000,
		TrackingPeriodDays: 30,
	})
	if err != nil {
		t.Fatalf("create rule failed: %v", err)
	}
	module.Store.SetContentRefCount(created.Data.RuleID, 3)

	_, err = module.Handler.DeleteRuleHandler(ctx, created.Data.RuleID)
	if !errors.Is(err, domainerrors.ErrRuleInUse) {
		t.Fatalf("expected rule-in-use conflict, got %v", err)
	}
}
