// Package derrors defines the categorical error taxonomy shared by every
// domain package. Fallible operations return a *DomainError carrying one
// specific code; transport layers map codes to HTTP statuses without
// inspecting messages.
package derrors

import (
	"errors"
	"net/http"
)

// Code identifies one failure kind. Codes are part of the API contract:
// callers branch on them, so they are never renamed casually.
type Code string

const (
	// Lifecycle
	CodeNotInitialized     Code = "not_initialized"
	CodeAlreadyInitialized Code = "already_initialized"

	// Authorization
	CodeUnauthorized          Code = "unauthorized"
	CodeNotAuthorizedBank     Code = "not_authorized_bank"
	CodeNotAuthorizedHospital Code = "not_authorized_hospital"

	// Validation
	CodeInvalidInput           Code = "invalid_input"
	CodeInvalidQuantity        Code = "invalid_quantity"
	CodeInvalidExpiration      Code = "invalid_expiration"
	CodeInvalidRequiredBy      Code = "invalid_required_by"
	CodeInvalidDeliveryAddress Code = "invalid_delivery_address"

	// Lookup
	CodeNotFound Code = "not_found"

	// State
	CodeAlreadyExists           Code = "already_exists"
	CodeExpired                 Code = "expired"
	CodeInvalidStatusTransition Code = "invalid_status_transition"
	CodeCannotCancel            Code = "cannot_cancel"

	// Catch-all for unexpected internal failures.
	CodeInternal Code = "internal"
)

// DomainError is the concrete error type returned across package boundaries.
type DomainError struct {
	Code    Code
	Message string
}

func (e *DomainError) Error() string {
	return string(e.Code) + ": " + e.Message
}

// Is lets errors.Is match two domain errors by code alone.
func (e *DomainError) Is(target error) bool {
	var de *DomainError
	if !errors.As(target, &de) {
		return false
	}
	return e.Code == de.Code
}

// New builds a domain error with the given code and human-readable message.
func New(code Code, message string) *DomainError {
	return &DomainError{Code: code, Message: message}
}

// CodeOf extracts the code from any error. Non-domain errors report
// CodeInternal so callers never observe an empty code.
func CodeOf(err error) Code {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code Code) bool {
	return CodeOf(err) == code
}

// ToHTTPStatus maps a code to the HTTP status used by the transport layer.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeInvalidInput, CodeInvalidQuantity, CodeInvalidExpiration,
		CodeInvalidRequiredBy, CodeInvalidDeliveryAddress:
		return http.StatusBadRequest
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeNotAuthorizedBank, CodeNotAuthorizedHospital:
		return http.StatusForbidden
	case CodeNotFound:
		return http.StatusNotFound
	case CodeAlreadyInitialized, CodeAlreadyExists, CodeExpired,
		CodeInvalidStatusTransition, CodeCannotCancel:
		return http.StatusConflict
	case CodeNotInitialized:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
