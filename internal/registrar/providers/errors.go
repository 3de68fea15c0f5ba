package providers

import (
	"errors"
	"fmt"
)

// ErrorKind is the normalized failure taxonomy for registrar operations.
//
// Every provider classifies its failures with these kinds so callers can
// translate them consistently, regardless of the registrar behind them.
type ErrorKind string

const (
	// ErrorSchema indicates a missing or malformed credential field
	ErrorSchema ErrorKind = "schema"

	// ErrorConsent indicates one of the consent flags is not literally true
	ErrorConsent ErrorKind = "consent"

	// ErrorInvalidCredential indicates the registrar rejected the credential
	ErrorInvalidCredential ErrorKind = "invalid_credential"

	// ErrorExpiredCredential indicates the credential expiration has passed
	ErrorExpiredCredential ErrorKind = "expired_credential"

	// ErrorInsufficientPermission indicates a required API route is not granted
	ErrorInsufficientPermission ErrorKind = "insufficient_permission"

	// ErrorDomainStillRegistered indicates the domain is still in the registry
	ErrorDomainStillRegistered ErrorKind = "domain_still_registered"

	// ErrorInvalidDomain indicates the domain has no usable name
	ErrorInvalidDomain ErrorKind = "invalid_domain"

	// ErrorNoOffer indicates no orderable offer matched the configured pricing
	ErrorNoOffer ErrorKind = "no_offer"

	// ErrorOrderRejected indicates the registrar refused an order step
	ErrorOrderRejected ErrorKind = "order_rejected"

	// ErrorTransport indicates a network fault or an unexpected response
	ErrorTransport ErrorKind = "transport"
)

// Error wraps registrar failures with a normalized kind. Message is the
// user-visible text; it carries the registrar's own message when one exists.
type Error struct {
	Kind     ErrorKind
	Provider string
	Message  string
	Err      error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("provider %s [%s]: %s: %v", e.Provider, e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("provider %s [%s]: %s", e.Provider, e.Kind, e.Message)
}

// Unwrap supports error unwrapping
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a new normalized provider error.
func NewError(kind ErrorKind, provider, message string, underlying error) *Error {
	return &Error{
		Kind:     kind,
		Provider: provider,
		Message:  message,
		Err:      underlying,
	}
}

// KindOf extracts the error kind from an error chain. Errors outside the
// taxonomy report ErrorTransport.
func KindOf(err error) ErrorKind {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return ErrorTransport
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var pe *Error
	return errors.As(err, &pe) && pe.Kind == kind
}

// MessageOf returns the user-visible message of a provider error, or the
// error text for anything else.
func MessageOf(err error) string {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Message
	}
	return err.Error()
}

var (
	ErrProviderNotFound = errors.New("provider not found")
)
