package application

import (
	"context"
	"log/slog"
	"strings"

	"creatorpay/contexts/payments/payment-rule-service/domain/entities"
	domainerrors "creatorpay/contexts/payments/payment-rule-service/domain/errors"
	"creatorpay/contexts/payments/payment-rule-service/ports"
)

type CreateRuleInput struct {
	Name               string
	BasePay            float64
	ViewRate           float64
	ViewsPerUnit       int64
	TrackingPeriodDays int
	MaxPayout          *float64
	BonusThresholds    []entities.BonusThreshold
	CombineViews       bool
}

type Service struct {
	Repository ports.Repository
	ContentRef ports.ContentRefChecker
	Clock      ports.Clock
	IDGen      ports.IDGenerator
	Logger     *slog.Logger
}

func (s Service) CreateRule(ctx context.Context, input CreateRuleInput) (entities.PaymentRule, error) {
	ruleID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return entities.PaymentRule{}, err
	}
	now := s.Clock.Now().UTC()
	rule := entities.PaymentRule{
		RuleID:             ruleID,
		Name:               strings.TrimSpace(input.Name),
		BasePay:            input.BasePay,
		ViewRate:           input.ViewRate,
		ViewsPerUnit:       input.ViewsPerUnit,
		TrackingPeriodDays: input.TrackingPeriodDays,
		MaxPayout:          input.MaxPayout,
		BonusThresholds:    append([]entities.BonusThreshold(nil), input.BonusThresholds...),
		CombineViews:       input.CombineViews,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if !rule.Validate() {
		return entities.PaymentRule{}, domainerrors.ErrInvalidRuleInput
	}
	if err := s.Repository.CreateRule(ctx, rule); err != nil {
		return entities.PaymentRule{}, err
	}
	ResolveLogger(s.Logger).Info("payment rule created",
		"event", "payment_rule_created",
		"module", "payments/payment-rule-service",
		"layer", "application",
		"rule_id", rule.RuleID,
		"name", rule.Name,
	)
	return rule, nil
}

func (s Service) UpdateRule(ctx context.Context, ruleID string, input CreateRuleInput) (entities.PaymentRule, error) {
	existing, err := s.Repository.GetRule(ctx, strings.TrimSpace(ruleID))
	if err != nil {
		return entities.PaymentRule{}, err
	}
	updated := entities.PaymentRule{
		RuleID:             existing.RuleID,
		Name:               strings.TrimSpace(input.Name),
		BasePay:            input.BasePay,
		ViewRate:           input.ViewRate,
		ViewsPerUnit:       input.ViewsPerUnit,
		TrackingPeriodDays: input.TrackingPeriodDays,
		MaxPayout:          input.MaxPayout,
		BonusThresholds:    append([]entities.BonusThreshold(nil), input.BonusThresholds...),
		CombineViews:       input.CombineViews,
		CreatedAt:          existing.CreatedAt,
		UpdatedAt:          s.Clock.Now().UTC(),
	}
	if !updated.Validate() {
		return entities.PaymentRule{}, domainerrors.ErrInvalidRuleInput
	}
	if err := s.Repository.UpdateRule(ctx, updated); err != nil {
		return entities.PaymentRule{}, err
	}
	ResolveLogger(s.Logger).Info("payment rule updated",
		"event", "payment_rule_updated",
		"module", "payments/payment-rule-service",
		"layer", "application",
		"rule_id", updated.RuleID,
	)
	return updated, nil
}

func (s Service) GetRule(ctx context.Context, ruleID string) (entities.PaymentRule, error) {
	return s.Repository.GetRule(ctx, strings.TrimSpace(ruleID))
}

func (s Service) ListRules(ctx context.Context) ([]entities.PaymentRule, error) {
	return s.Repository.ListRules(ctx)
}

func (s Service) DeleteRule(ctx context.Context, ruleID string) error {
	ruleID = strings.TrimSpace(ruleID)
	if _, err := s.Repository.GetRule(ctx, ruleID); err != nil {
		return err
	}
	if s.ContentRef != nil {
		count, err := s.ContentRef.CountContentByRule(ctx, ruleID)
		if err != nil {
			return err
		}
		if count > 0 {
			return domainerrors.ErrRuleInUse
		}
	}
	if err := s.Repository.DeleteRule(ctx, ruleID); err != nil {
		return err
	}
	ResolveLogger(s.Logger).Info("payment rule deleted",
		"event", "payment_rule_deleted",
		"module", "payments/payment-rule-service",
		"layer", "application",
		"rule_id", ruleID,
	)
	return nil
}
