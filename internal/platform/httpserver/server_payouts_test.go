package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"creatorpay/contexts/payments/payout-service/domain/entities"
	"creatorpay/contexts/payments/payout-service/ports"
)

func seedPayableContent(server *Server, contentItemID string, finalViews int64) {
	views := finalViews
	server.payouts.Store.SeedRate("rule-1", entities.RateTerms{
		BasePay:      10,
		ViewRate:     5,
		ViewsPerUnit: 1000,
	})
	server.payouts.Store.SeedContent(ports.ContentSnapshot{
		ContentItemID: contentItemID,
		Title:         "clip",
		Status:        ports.ContentStatusFinalized,
		CurrentViews:  views,
		FinalViews:    &views,
		PaymentRuleID: "rule-1",
	})
}

func TestProcessPayoutBatchRequiresIdempotencyKey(t *testing.T) {
	server := newTestServer()

	body := []byte(`{"content_item_ids":["content-1"]}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/payouts/process", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestProcessPayoutBatchSettlesItem(t *testing.T) {
	server := newTestServer()
	seedPayableContent(server, "content-1", 10000)

	body := []byte(`{"content_item_ids":["content-1"]}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/payouts/process", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", "idem-http-1")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	var resp struct {
		Status string `json:"status"`
		Data   struct {
			ProcessedCount  int     `json:"processed_count"`
			TotalAmount     float64 `json:"total_amount"`
			TotalAmountText string  `json:"total_amount_text"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != "success" || resp.Data.ProcessedCount != 1 {
		t.Fatalf("unexpected batch response: %s", rr.Body.String())
	}
	if resp.Data.TotalAmountText != "$60.00" {
		t.Fatalf("expected formatted total, got %q", resp.Data.TotalAmountText)
	}
}

func TestProcessPayoutBatchConflictOnReusedKey(t *testing.T) {
	server := newTestServer()
	seedPayableContent(server, "content-1", 10000)
	seedPayableContent(server, "content-2", 5000)

	first := httptest.NewRequest(http.MethodPost, "/v1/payouts/process",
		bytes.NewReader([]byte(`{"content_item_ids":["content-1"]}`)))
	first.Header.Set("Content-Type", "application/json")
	first.Header.Set("Idempotency-Key", "idem-http-2")
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, first)
	if rr.Code != http.StatusOK {
		t.Fatalf("first batch expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	second := httptest.NewRequest(http.MethodPost, "/v1/payouts/process",
		bytes.NewReader([]byte(`{"content_item_ids":["content-2"]}`)))
	second.Header.Set("Content-Type", "application/json")
	second.Header.Set("Idempotency-Key", "idem-http-2")
	rr = httptest.NewRecorder()
	server.mux.ServeHTTP(rr, second)
	if rr.Code != http.StatusConflict {
		t.Fatalf("expected 409 for reused key, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestReconcileUnknownContentDegradesToZero(t *testing.T) {
	server := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/v1/payouts/reconcile/ghost", nil)
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	var resp struct {
		Data struct {
			TotalEarned    float64 `json:"total_earned"`
			RemainingToPay float64 `json:"remaining_to_pay"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Data.TotalEarned != 0 || resp.Data.RemainingToPay != 0 {
		t.Fatalf("unknown content must reconcile to zero, got %s", rr.Body.String())
	}
}
