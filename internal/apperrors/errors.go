package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so the HTTP layer can map it to a status code.
type Kind string

const (
	KindInvalidIdentifier Kind = "invalid_identifier"
	KindInvalidInput      Kind = "invalid_input"
	KindNotFound          Kind = "not_found"
	KindPermissionDenied  Kind = "permission_denied"
	KindInternal          Kind = "internal"
)

// Error is a structured error carrying a kind and a user-facing message.
// An optional underlying cause is kept for logging, never for the client.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// InvalidIdentifier reports a malformed entity identifier
func InvalidIdentifier(message string) *Error {
	return &Error{Kind: KindInvalidIdentifier, Message: message}
}

// InvalidInput reports rejected request content
func InvalidInput(message string) *Error {
	return &Error{Kind: KindInvalidInput, Message: message}
}

// NotFound reports an absent entity
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// PermissionDenied reports a non-owner mutation attempt
func PermissionDenied(message string) *Error {
	return &Error{Kind: KindPermissionDenied, Message: message}
}

// Internal reports a persistence operation that returned no result
// where one was expected; cause is retained for logs
func Internal(message string, err error) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

// KindOf extracts the kind from an error chain.
// Unclassified errors are reported as internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// MessageOf extracts the user-facing message from an error chain.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "internal server error"
}
