package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"

	channelservice "creatorpay/contexts/content-tracking/channel-service"
	contentservice "creatorpay/contexts/content-tracking/content-service"
	paymentruleservice "creatorpay/contexts/payments/payment-rule-service"
	payoutservice "creatorpay/contexts/payments/payout-service"

	_ "creatorpay/internal/platform/httpserver/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Server struct {
	mux      *http.ServeMux
	logger   *slog.Logger
	addr     string
	rules    paymentruleservice.Module
	content  contentservice.Module
	payouts  payoutservice.Module
	channels channelservice.Module
}

func New(
	rules paymentruleservice.Module,
	content contentservice.Module,
	payouts payoutservice.Module,
	channels channelservice.Module,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:      http.NewServeMux(),
		logger:   logger,
		addr:     addr,
		rules:    rules,
		content:  content,
		payouts:  payouts,
		channels: channels,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("POST /v1/payment-rules", s.handleCreatePaymentRule)
	s.mux.HandleFunc("GET /v1/payment-rules", s.handleListPaymentRules)
	s.mux.HandleFunc("GET /v1/payment-rules/{rule_id}", s.handleGetPaymentRule)
	s.mux.HandleFunc("PUT /v1/payment-rules/{rule_id}", s.handleUpdatePaymentRule)
	s.mux.HandleFunc("DELETE /v1/payment-rules/{rule_id}", s.handleDeletePaymentRule)

	s.mux.HandleFunc("POST /v1/content", s.handleCreateContentItem)
	s.mux.HandleFunc("GET /v1/content", s.handleListContentItems)
	s.mux.HandleFunc("GET /v1/content/{content_id}", s.handleGetContentItem)
	s.mux.HandleFunc("PUT /v1/content/{content_id}", s.handleUpdateContentItem)
	s.mux.HandleFunc("DELETE /v1/content/{content_id}", s.handleDeleteContentItem)
	s.mux.HandleFunc("POST /v1/content/{content_id}/views", s.handleRecordContentViews)
	s.mux.HandleFunc("GET /v1/content/{content_id}/views", s.handleContentViewHistory)
	s.mux.HandleFunc("POST /v1/content/{content_id}/finalize", s.handleFinalizeContentItem)

	s.mux.HandleFunc("GET /v1/payouts", s.handlePayoutHistory)
	s.mux.HandleFunc("GET /v1/payouts/summary", s.handlePayoutSummary)
	s.mux.HandleFunc("POST /v1/payouts/process", s.handleProcessPayoutBatch)
	s.mux.HandleFunc("GET /v1/payouts/reconcile/{content_id}", s.handleReconcile)

	s.mux.HandleFunc("POST /v1/channels", s.handleCreateChannel)
	s.mux.HandleFunc("GET /v1/channels", s.handleListChannels)
	s.mux.HandleFunc("GET /v1/channels/{channel_id}", s.handleGetChannel)
	s.mux.HandleFunc("PUT /v1/channels/{channel_id}", s.handleUpdateChannel)
	s.mux.HandleFunc("DELETE /v1/channels/{channel_id}", s.handleDeleteChannel)
	s.mux.HandleFunc("POST /v1/channels/{channel_id}/content", s.handleMapChannelContent)
	s.mux.HandleFunc("GET /v1/channels/{channel_id}/content", s.handleListChannelContent)
	s.mux.HandleFunc("DELETE /v1/channels/{channel_id}/content/{content_id}", s.handleUnmapChannelContent)
}

// decodeJSON decodes a request body, delegating malformed payloads to the
// module's error writer so every context keeps its own envelope shape.
func (s *Server) decodeJSON(
	w http.ResponseWriter,
	r *http.Request,
	target any,
	writeError func(w http.ResponseWriter, status int, code string, message string),
) bool {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
