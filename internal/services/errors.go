package services

import "errors"

// ErrorCode classifies service failures for transport mapping.
type ErrorCode string

const (
	ErrorInvalid      ErrorCode = "invalid"
	ErrorNotFound     ErrorCode = "not_found"
	ErrorForbidden    ErrorCode = "forbidden"
	ErrorUnauthorized ErrorCode = "unauthorized"
	ErrorConflict     ErrorCode = "conflict"
)

// ServiceError carries a code plus a caller-facing message. Messages from
// the mutation paths identify the offending id (and index, for bulk calls)
// and survive transaction rollback unchanged.
type ServiceError struct {
	Code    ErrorCode
	Message string
}

func (e *ServiceError) Error() string { return e.Message }

func NewInvalidError(msg string) error  { return &ServiceError{Code: ErrorInvalid, Message: msg} }
func NewNotFoundError(msg string) error { return &ServiceError{Code: ErrorNotFound, Message: msg} }
func NewForbiddenError(msg string) error {
	return &ServiceError{Code: ErrorForbidden, Message: msg}
}
func NewUnauthorizedError(msg string) error {
	return &ServiceError{Code: ErrorUnauthorized, Message: msg}
}
func NewConflictError(msg string) error { return &ServiceError{Code: ErrorConflict, Message: msg} }

// AsServiceError unwraps err into a *ServiceError when possible.
func AsServiceError(err error) (*ServiceError, bool) {
	var se *ServiceError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}
