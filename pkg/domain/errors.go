package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies application errors for transport-level mapping.
type ErrorKind string

const (
	// Generic kinds shared by all modules.
	KindValidation   ErrorKind = "validation"
	KindNotFound     ErrorKind = "not_found"
	KindForbidden    ErrorKind = "forbidden"
	KindUnauthorized ErrorKind = "unauthorized"
	KindConflict     ErrorKind = "conflict"
	KindInternal     ErrorKind = "internal"

	// Navigation pipeline kinds. External collaborator failures are mapped to
	// exactly one of these at the pipeline boundary.
	KindLocationNotFound   ErrorKind = "location_not_found"
	KindNoRouteFound       ErrorKind = "no_route_found"
	KindServiceUnavailable ErrorKind = "service_unavailable"
	KindInvalidReport      ErrorKind = "invalid_report"
)

// AppError is a classified application error.
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the wrapped cause.
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a validation error.
func NewValidationError(message string) *AppError {
	return &AppError{Kind: KindValidation, Message: message}
}

// NewNotFoundError creates a not-found error for a resource.
func NewNotFoundError(resource, id string) *AppError {
	return &AppError{Kind: KindNotFound, Message: fmt.Sprintf("%s %s not found", resource, id)}
}

// NewForbiddenError creates a forbidden error.
func NewForbiddenError(message string) *AppError {
	return &AppError{Kind: KindForbidden, Message: message}
}

// NewUnauthorizedError creates an unauthorized error.
func NewUnauthorizedError(message string) *AppError {
	return &AppError{Kind: KindUnauthorized, Message: message}
}

// NewConflictError creates a conflict error.
func NewConflictError(message string) *AppError {
	return &AppError{Kind: KindConflict, Message: message}
}

// NewLocationNotFoundError indicates geocoding returned zero candidates.
func NewLocationNotFoundError(query string) *AppError {
	return &AppError{Kind: KindLocationNotFound, Message: fmt.Sprintf("destination %q not found", query)}
}

// NewNoRouteFoundError indicates the routing collaborator returned no alternatives.
func NewNoRouteFoundError() *AppError {
	return &AppError{Kind: KindNoRouteFound, Message: "no walking path available"}
}

// NewServiceUnavailableError wraps a transient external-collaborator failure.
// Callers may retry; prior displayed state remains valid.
func NewServiceUnavailableError(collaborator string, err error) *AppError {
	return &AppError{
		Kind:    KindServiceUnavailable,
		Message: fmt.Sprintf("%s temporarily unavailable", collaborator),
		Err:     err,
	}
}

// NewInvalidReportError indicates a malformed or incomplete user report,
// rejected locally before it reaches the report store.
func NewInvalidReportError(message string) *AppError {
	return &AppError{Kind: KindInvalidReport, Message: message}
}

// KindOf returns the ErrorKind of err, or KindInternal for unclassified errors.
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}
