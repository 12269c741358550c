package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestCreateContentItemRejectsUnknownRule(t *testing.T) {
	server := newTestServer()

	body := []byte(`{"title":"clip","platform":"tiktok","upload_date":"2026-08-01","payment_rule_id":"ghost"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/content", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestContentItemFinalizeFlow(t *testing.T) {
	server := newTestServer()
	server.content.Store.SetRuleWindow("rule-1", 30)

	createBody := map[string]any{
		"title":           "clip",
		"platform":        "youtube",
		"upload_date":     time.Now().UTC().AddDate(0, 0, -2).Format("2006-01-02"),
		"starting_views":  100,
		"payment_rule_id": "rule-1",
	}
	raw, _ := json.Marshal(createBody)
	req := httptest.NewRequest(http.MethodPost, "/v1/content", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}

	var created struct {
		Data struct {
			ContentID string `json:"content_id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}

	finalize := httptest.NewRequest(http.MethodPost, "/v1/content/"+created.Data.ContentID+"/finalize",
		bytes.NewReader([]byte(`{"final_views":5000}`)))
	finalize.Header.Set("Content-Type", "application/json")
	rr = httptest.NewRecorder()
	server.mux.ServeHTTP(rr, finalize)
	if rr.Code != http.StatusOK {
		t.Fatalf("finalize expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	again := httptest.NewRequest(http.MethodPost, "/v1/content/"+created.Data.ContentID+"/finalize",
		bytes.NewReader([]byte(`{"final_views":6000}`)))
	again.Header.Set("Content-Type", "application/json")
	rr = httptest.NewRecorder()
	server.mux.ServeHTTP(rr, again)
	if rr.Code != http.StatusConflict {
		t.Fatalf("second finalize expected 409, got %d body=%s", rr.Code, rr.Body.String())
	}
}
