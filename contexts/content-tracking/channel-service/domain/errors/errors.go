package errors

import "errors"

var (
	ErrChannelNotFound     = errors.New("channel not found")
	ErrInvalidChannelInput = errors.New("invalid channel input")
	ErrMappingNotFound     = errors.New("channel mapping not found")
	ErrMappingExists       = errors.New("content already mapped to channel")
)
