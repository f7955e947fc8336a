package services

import "errors"

type ErrorCode string

const (
	ErrorInvalid             ErrorCode = "invalid"
	ErrorForbidden           ErrorCode = "forbidden"
	ErrorNotFound            ErrorCode = "not_found"
	ErrorConflict            ErrorCode = "conflict"
	ErrorUnauthorized        ErrorCode = "unauthorized"
	ErrorInsufficientBalance ErrorCode = "insufficient_balance"
)

// ServiceError carries the failure class across the service boundary so
// controllers can map it to an HTTP status without string matching.
type ServiceError struct {
	Code    ErrorCode
	Message string
}

func (e *ServiceError) Error() string { return e.Message }

func NewInvalidError(msg string) error   { return &ServiceError{Code: ErrorInvalid, Message: msg} }
func NewForbiddenError(msg string) error { return &ServiceError{Code: ErrorForbidden, Message: msg} }
func NewNotFoundError(msg string) error  { return &ServiceError{Code: ErrorNotFound, Message: msg} }
func NewConflictError(msg string) error  { return &ServiceError{Code: ErrorConflict, Message: msg} }
func NewUnauthorizedError(msg string) error {
	return &ServiceError{Code: ErrorUnauthorized, Message: msg}
}

func NewInsufficientBalanceError(msg string) error {
	return &ServiceError{Code: ErrorInsufficientBalance, Message: msg}
}

func AsServiceError(err error) (*ServiceError, bool) {
	var se *ServiceError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}
