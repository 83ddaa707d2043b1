package events

import "errors"

var (
	ErrEmptyPayload = errors.New("empty event payload")
	ErrUnknownOp    = errors.New("unknown event op code")
)
