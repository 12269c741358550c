package httpserver

import (
	"errors"
	"net/http"

	rulerrors "creatorpay/contexts/payments/payment-rule-service/domain/errors"
	rulehttp "creatorpay/contexts/payments/payment-rule-service/transport/http"
)

func writePaymentRuleError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, rulehttp.ErrorResponse{Code: code, Message: message})
}

func writePaymentRuleDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, rulerrors.ErrRuleNotFound):
		writePaymentRuleError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, rulerrors.ErrInvalidRuleInput):
		writePaymentRuleError(w, http.StatusUnprocessableEntity, "invalid_rule", err.Error())
	case errors.Is(err, rulerrors.ErrRuleInUse):
		writePaymentRuleError(w, http.StatusConflict, "rule_in_use", err.Error())
	default:
		writePaymentRuleError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func (s *Server) handleCreatePaymentRule(w http.ResponseWriter, r *http.Request) {
	var req rulehttp.UpsertPaymentRuleRequest
	if !s.decodeJSON(w, r, &req, writePaymentRuleError) {
		return
	}
	resp, err := s.rules.Handler.CreateRuleHandler(r.Context(), req)
	if err != nil {
		writePaymentRuleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListPaymentRules(w http.ResponseWriter, r *http.Request) {
	resp, err := s.rules.Handler.ListRulesHandler(r.Context())
	if err != nil {
		writePaymentRuleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetPaymentRule(w http.ResponseWriter, r *http.Request) {
	resp, err := s.rules.Handler.GetRuleHandler(r.Context(), r.PathValue("rule_id"))
	if err != nil {
		writePaymentRuleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdatePaymentRule(w http.ResponseWriter, r *http.Request) {
	var req rulehttp.UpsertPaymentRuleRequest
	if !s.decodeJSON(w, r, &req, writePaymentRuleError) {
		return
	}
	resp, err := s.rules.Handler.UpdateRuleHandler(r.Context(), r.PathValue("rule_id"), req)
	if err != nil {
		writePaymentRuleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeletePaymentRule(w http.ResponseWriter, r *http.Request) {
	resp, err := s.rules.Handler.DeleteRuleHandler(r.Context(), r.PathValue("rule_id"))
	if err != nil {
		writePaymentRuleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
