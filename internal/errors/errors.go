package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies application errors
type Kind int

const (
	// KindValidation marks structurally invalid configuration or mutation
	// arguments, reported at construction time, never mid-transform
	KindValidation Kind = iota + 1
	// KindDomain marks input text containing characters outside the
	// supported ASCII window
	KindDomain
	// KindCapability marks a request for an encoder kind the registry
	// does not know
	KindCapability
	// KindInternal marks unexpected failures
	KindInternal
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindDomain:
		return "domain"
	case KindCapability:
		return "capability"
	default:
		return "internal"
	}
}

// Error represents a structured application error
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewValidation creates a validation error
func NewValidation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// NewValidationf creates a validation error with a formatted message
func NewValidationf(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// NewDomain creates a domain error
func NewDomain(message string) *Error {
	return &Error{Kind: KindDomain, Message: message}
}

// NewDomainf creates a domain error with a formatted message
func NewDomainf(format string, args ...any) *Error {
	return &Error{Kind: KindDomain, Message: fmt.Sprintf(format, args...)}
}

// NewCapability creates a capability error
func NewCapability(message string) *Error {
	return &Error{Kind: KindCapability, Message: message}
}

// NewCapabilityf creates a capability error with a formatted message
func NewCapabilityf(format string, args ...any) *Error {
	return &Error{Kind: KindCapability, Message: fmt.Sprintf(format, args...)}
}

// NewInternal creates an internal error
func NewInternal(message string) *Error {
	return &Error{Kind: KindInternal, Message: message}
}

// NewInternalWithCause creates an internal error wrapping a cause
func NewInternalWithCause(message string, cause error) *Error {
	return &Error{Kind: KindInternal, Message: message, Cause: cause}
}

// IsKind reports whether err is an *Error of the given kind anywhere in
// its chain
func IsKind(err error, kind Kind) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}

// IsValidation reports whether err is a validation error
func IsValidation(err error) bool { return IsKind(err, KindValidation) }

// IsDomain reports whether err is a domain error
func IsDomain(err error) bool { return IsKind(err, KindDomain) }

// IsCapability reports whether err is a capability error
func IsCapability(err error) bool { return IsKind(err, KindCapability) }

// ToHTTPStatus converts an error to an HTTP status code
func ToHTTPStatus(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		switch appErr.Kind {
		case KindValidation, KindDomain:
			return http.StatusBadRequest
		case KindCapability:
			return http.StatusNotFound
		}
	}
	return http.StatusInternalServerError
}
