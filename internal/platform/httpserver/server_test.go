package httpserver

import (
	channelservice "creatorpay/contexts/content-tracking/channel-service"
	contentservice "creatorpay/contexts/content-tracking/content-service"
	paymentruleservice "creatorpay/contexts/payments/payment-rule-service"
	payoutservice "creatorpay/contexts/payments/payout-service"
)

func newTestServer() *Server {
	return New(
		paymentruleservice.NewInMemoryModule(nil, nil),
		contentservice.NewInMemoryModule(nil, nil),
		payoutservice.NewInMemoryModule(nil),
		channelservice.NewInMemoryModule(nil, nil),
		nil,
		":0",
	)
}
