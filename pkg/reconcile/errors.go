package reconcile

import "errors"

var (
	ErrUnexpectedEvent = errors.New("unexpected event")
)
