package errors

import "errors"

var (
	ErrRuleNotFound     = errors.New("payment rule not found")
	ErrInvalidRuleInput = errors.New("invalid payment rule input")
	ErrRuleInUse        = errors.New("payment rule is referenced by content items")
)
