package namer

import "errors"

var (
	// ErrInvalidOptions marks options the caller must fix; the call is not
	// retried internally.
	ErrInvalidOptions = errors.New("invalid generation options")

	// ErrNoCandidates is returned only when every generation source failed
	// and zero candidates could be produced.
	ErrNoCandidates = errors.New("no candidates could be produced")
)
