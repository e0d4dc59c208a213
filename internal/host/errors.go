package host

import "errors"

var (
	ErrUnknownPriority = errors.New("unknown listener priority")
	ErrNilListener     = errors.New("listener is nil")
)
