package ports

import (
	"context"
	"time"

	"creatorpay/contexts/payments/payment-rule-service/domain/entities"
)

type Repository interface {
	CreateRule(ctx context.Context, rule entities.PaymentRule) error
	UpdateRule(ctx context.Context, rule entities.PaymentRule) error
	GetRule(ctx context.Context, ruleID string) (entities.PaymentRule, error)
	ListRules(ctx context.Context) ([]entities.PaymentRule, error)
	DeleteRule(ctx context.Context, ruleID string) error
}

// ContentRefChecker reports how many content items reference a rule.
// Deletion is refused while the count is non-zero.
type ContentRefChecker interface {
	CountContentByRule(ctx context.Context, ruleID string) (int64, error)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
