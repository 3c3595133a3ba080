// Package apperrors defines the error taxonomy shared by services and
// the HTTP layer.
package apperrors

import "errors"

var (
	// ErrInvalidInput covers empty recipients, empty bodies and bodies
	// over the maximum length. Rejected before any persistence.
	ErrInvalidInput = errors.New("invalid input")

	// ErrPermissionDenied means the sender lacks the capability to send.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrComplianceBlocked means the recipient is on a suppression list.
	ErrComplianceBlocked = errors.New("recipient blocked by compliance filter")

	// ErrNativeFailure means the transport returned false or threw.
	ErrNativeFailure = errors.New("transport failure")

	// ErrTimeout is a caller-observed transport timeout.
	ErrTimeout = errors.New("transport timeout")

	// ErrPreflightBlocked means the safety checker reported errors.
	ErrPreflightBlocked = errors.New("preflight checks failed")
)

// Wire codes surfaced in HTTP error responses.
const (
	CodeInvalidInput      = "INVALID_INPUT"
	CodePermissionDenied  = "PERMISSION_DENIED"
	CodeComplianceBlocked = "COMPLIANCE_BLOCKED"
	CodeNativeFailure     = "NATIVE_FAILURE"
	CodeTimeout           = "TIMEOUT"
	CodePreflightBlocked  = "PREFLIGHT_BLOCKED"
	CodeInternal          = "INTERNAL_ERROR"
	CodeNotFound          = "NOT_FOUND"
)

// Code maps an error to its wire code, defaulting to CodeInternal.
func Code(err error) string {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return CodeInvalidInput
	case errors.Is(err, ErrPermissionDenied):
		return CodePermissionDenied
	case errors.Is(err, ErrComplianceBlocked):
		return CodeComplianceBlocked
	case errors.Is(err, ErrTimeout):
		return CodeTimeout
	case errors.Is(err, ErrNativeFailure):
		return CodeNativeFailure
	case errors.Is(err, ErrPreflightBlocked):
		return CodePreflightBlocked
	default:
		return CodeInternal
	}
}
