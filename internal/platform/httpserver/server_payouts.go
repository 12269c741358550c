package httpserver

import (
	"errors"
	"net/http"
	"strings"

	payouterrors "creatorpay/contexts/payments/payout-service/domain/errors"
	payouthttp "creatorpay/contexts/payments/payout-service/transport/http"
)

func writePayoutError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, payouthttp.ErrorResponse{Code: code, Message: message})
}

func writePayoutDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, payouterrors.ErrIdempotencyKeyMissing),
		errors.Is(err, payouterrors.ErrInvalidBatchInput):
		writePayoutError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, payouterrors.ErrIdempotencyConflict):
		writePayoutError(w, http.StatusConflict, "conflict", err.Error())
	case errors.Is(err, payouterrors.ErrContentNotFound):
		writePayoutError(w, http.StatusNotFound, "not_found", err.Error())
	default:
		writePayoutError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func (s *Server) handlePayoutHistory(w http.ResponseWriter, r *http.Request) {
	contentID := r.URL.Query().Get("content_id")
	resp, err := s.payouts.Handler.HistoryHandler(r.Context(), contentID)
	if err != nil {
		writePayoutDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePayoutSummary(w http.ResponseWriter, r *http.Request) {
	resp, err := s.payouts.Handler.SummaryHandler(r.Context())
	if err != nil {
		writePayoutDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleProcessPayoutBatch(w http.ResponseWriter, r *http.Request) {
	idempotencyKey := strings.TrimSpace(r.Header.Get("Idempotency-Key"))
	if idempotencyKey == "" {
		writePayoutError(w, http.StatusBadRequest, "idempotency_key_required", "Idempotency-Key header is required")
		return
	}

	var req payouthttp.ProcessBatchRequest
	if !s.decodeJSON(w, r, &req, writePayoutError) {
		return
	}
	resp, err := s.payouts.Handler.ProcessBatchHandler(r.Context(), idempotencyKey, req)
	if err != nil {
		writePayoutDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleReconcile(w http.ResponseWriter, r *http.Request) {
	resp, err := s.payouts.Handler.ReconcileHandler(r.Context(), r.PathValue("content_id"))
	if err != nil {
		writePayoutDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
