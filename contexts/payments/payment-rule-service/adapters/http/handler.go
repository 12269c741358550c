package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"creatorpay/contexts/payments/payment-rule-service/application"
	"creatorpay/contexts/payments/payment-rule-service/domain/entities"
	httptransport "creatorpay/contexts/payments/payment-rule-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) CreateRuleHandler(
	ctx context.Context,
	req httptransport.UpsertPaymentRuleRequest,
) (httptransport.PaymentRuleResponse, error) {
	rule, err := h.Service.CreateRule(ctx, inputFromRequest(req))
	if err != nil {
		return httptransport.PaymentRuleResponse{}, err
	}
	return httptransport.PaymentRuleResponse{Status: "success", Data: toDTO(rule)}, nil
}

func (h Handler) UpdateRuleHandler(
	ctx context.Context,
	ruleID string,
	req httptransport.UpsertPaymentRuleRequest,
) (httptransport.PaymentRuleResponse, error) {
	rule, err := h.Service.UpdateRule(ctx, ruleID, inputFromRequest(req))
	if err != nil {
		return httptransport.PaymentRuleResponse{}, err
	}
	return httptransport.PaymentRuleResponse{Status: "success", Data: toDTO(rule)}, nil
}

func (h Handler) GetRuleHandler(
	ctx context.Context,
	ruleID string,
) (httptransport.PaymentRuleResponse, error) {
	rule, err := h.Service.GetRule(ctx, ruleID)
	if err != nil {
		return httptransport.PaymentRuleResponse{}, err
	}
	return httptransport.PaymentRuleResponse{Status: "success", Data: toDTO(rule)}, nil
}

func (h Handler) ListRulesHandler(ctx context.Context) (httptransport.PaymentRuleListResponse, error) {
	rules, err := h.Service.ListRules(ctx)
	if err != nil {
		return httptransport.PaymentRuleListResponse{}, err
	}
	resp := httptransport.PaymentRuleListResponse{
		Status: "success",
		Data:   make([]httptransport.PaymentRuleDTO, 0, len(rules)),
	}
	for _, rule := range rules {
		resp.Data = append(resp.Data, toDTO(rule))
	}
	return resp, nil
}

func (h Handler) DeleteRuleHandler(
	ctx context.Context,
	ruleID string,
) (httptransport.DeletePaymentRuleResponse, error) {
	if err := h.Service.DeleteRule(ctx, ruleID); err != nil {
		return httptransport.DeletePaymentRuleResponse{}, err
	}
	return httptransport.DeletePaymentRuleResponse{Status: "success"}, nil
}

func inputFromRequest(req httptransport.UpsertPaymentRuleRequest) application.CreateRuleInput {
	bonuses := make([]entities.BonusThreshold, 0, len(req.BonusThresholds))
	for _, bonus := range req.BonusThresholds {
		bonuses = append(bonuses, entities.BonusThreshold{
			ViewThreshold: bonus.ViewThreshold,
			BonusAmount:   bonus.BonusAmount,
		})
	}
	return application.CreateRuleInput{
		Name:               req.Name,
		BasePay:            req.BasePay,
		ViewRate:           req.ViewRate,
		ViewsPerUnit:       req.ViewsPerUnit,
		TrackingPeriodDays: req.TrackingPeriodDays,
		MaxPayout:          req.MaxPayout,
		BonusThresholds:    bonuses,
		CombineViews:       req.CombineViews,
	}
}

func toDTO(rule entities.PaymentRule) httptransport.PaymentRuleDTO {
	bonuses := make([]httptransport.BonusThresholdDTO, 0, len(rule.BonusThresholds))
	for _, bonus := range rule.BonusThresholds {
		bonuses = append(bonuses, httptransport.BonusThresholdDTO{
			ViewThreshold: bonus.ViewThreshold,
			BonusAmount:   bonus.BonusAmount,
		})
	}
	return httptransport.PaymentRuleDTO{
		RuleID:             rule.RuleID,
		Name:               rule.Name,
		BasePay:            rule.BasePay,
		ViewRate:           rule.ViewRate,
		ViewsPerUnit:       rule.ViewsPerUnit,
		TrackingPeriodDays: rule.TrackingPeriodDays,
		MaxPayout:          rule.MaxPayout,
		BonusThresholds:    bonuses,
		CombineViews:       rule.CombineViews,
		CreatedAt:          rule.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:          rule.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
