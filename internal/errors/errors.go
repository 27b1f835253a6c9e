// Package errors defines the domain error types shared across services.
// Handlers map DomainError codes onto HTTP statuses; everything else is
// treated as an internal failure.
package errors

import "fmt"

// DomainError is a coded error that is safe to surface to API callers.
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// WithCause returns a copy of the error carrying the underlying cause.
func (e *DomainError) WithCause(cause error) *DomainError {
	return &DomainError{Code: e.Code, Message: e.Message, Err: cause}
}
