package errors

import "errors"

var (
	ErrItemNotFound     = errors.New("content item not found")
	ErrInvalidItemInput = errors.New("invalid content item input")
	ErrRuleNotFound     = errors.New("payment rule not found")
	ErrInvalidViewCount = errors.New("invalid view count")
	ErrAlreadyFinalized = errors.New("content item already finalized")
	ErrFinalViewsTooLow = errors.New("final views below starting views")
)
