package notify

import "errors"

var (
	ErrUnexpectedRecord = errors.New("unexpected notify settings record type")
)
