package podcast

import (
	"errors"
	"fmt"
)

// Kind classifies pipeline failures so the HTTP layer can map them to
// status codes without string matching.
type Kind int

const (
	KindInternal Kind = iota
	KindQuotaExceeded
	KindLengthExceeded
	KindEntitlementDenied
	KindGenerationFailed
	KindSynthesisFailed
	KindStorageFailed
	KindUpstreamTimeout
)

// Error wraps a pipeline failure with its kind. The message is what the
// caller sees in the response body.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string { return e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }

func errf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Err: fmt.Errorf(format, args...)}
}

// KindOf extracts the kind from an error chain, defaulting to KindInternal.
func KindOf(err error) Kind {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return KindInternal
}
