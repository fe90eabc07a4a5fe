package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is the error type every layer hands back to the HTTP edge.
// Code is the stable machine-readable value clients switch on; Message is
// safe to show to customers; Err keeps the underlying cause for logs only.
type AppError struct {
	Code       string
	Message    string
	Detail     string
	StatusCode int
	Err        error
}

const (
	ErrCodeValidation      = "VALIDATION_ERROR"
	ErrCodeBadRequest      = "BAD_REQUEST"
	ErrCodeNotFound        = "NOT_FOUND"
	ErrCodeUnauthorized    = "UNAUTHORIZED"
	ErrCodeForbidden       = "FORBIDDEN"
	ErrCodeConflict        = "CONFLICT"
	ErrCodeInternal        = "INTERNAL_ERROR"
	ErrCodeDatabaseError   = "DATABASE_ERROR"
	ErrCodeDuplicateEntry  = "DUPLICATE_ENTRY"
	ErrCodeThirdPartyError = "THIRD_PARTY_ERROR"
	ErrCodeTooManyRequests = "TOO_MANY_REQUESTS"
	ErrCodePayloadTooLarge = "PAYLOAD_TOO_LARGE"
)

var statusByCode = map[string]int{
	ErrCodeValidation:      http.StatusBadRequest,
	ErrCodeBadRequest:      http.StatusBadRequest,
	ErrCodeNotFound:        http.StatusNotFound,
	ErrCodeUnauthorized:    http.StatusUnauthorized,
	ErrCodeForbidden:       http.StatusForbidden,
	ErrCodeConflict:        http.StatusConflict,
	ErrCodeInternal:        http.StatusInternalServerError,
	ErrCodeDatabaseError:   http.StatusInternalServerError,
	ErrCodeDuplicateEntry:  http.StatusConflict,
	ErrCodeThirdPartyError: http.StatusBadGateway,
	ErrCodeTooManyRequests: http.StatusTooManyRequests,
	ErrCodePayloadTooLarge: http.StatusRequestEntityTooLarge,
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches another *AppError by code, so callers can write
// errors.Is(err, errors.NotFoundError("")).
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}

	return t.Code == e.Code
}

// Retryable reports whether repeating the request later may succeed.
func (e *AppError) Retryable() bool {
	switch e.Code {
	case ErrCodeThirdPartyError, ErrCodeTooManyRequests, ErrCodeDatabaseError:
		return true
	default:
		return false
	}
}

func NewAppError(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

func newCoded(code, message string) *AppError {
	return NewAppError(code, message, statusByCode[code])
}

func (e *AppError) WithDetail(detail string) *AppError {
	e.Detail = detail

	return e
}

func (e *AppError) WithError(err error) *AppError {
	e.Err = err

	return e
}

func ValidationError(message string) *AppError { return newCoded(ErrCodeValidation, message) }

func BadRequestError(message string) *AppError { return newCoded(ErrCodeBadRequest, message) }

func NotFoundError(message string) *AppError { return newCoded(ErrCodeNotFound, message) }

func UnauthorizedError(message string) *AppError { return newCoded(ErrCodeUnauthorized, message) }

func ForbiddenError(message string) *AppError { return newCoded(ErrCodeForbidden, message) }

// ConflictError signals a request that is valid but clashes with the
// current state of the resource, e.g. an illegal status transition.
func ConflictError(message string) *AppError { return newCoded(ErrCodeConflict, message) }

func InternalError(message string) *AppError { return newCoded(ErrCodeInternal, message) }

func DatabaseError(message string) *AppError { return newCoded(ErrCodeDatabaseError, message) }

// DuplicateEntryError maps unique-constraint violations (email, serial number).
func DuplicateEntryError(message string) *AppError { return newCoded(ErrCodeDuplicateEntry, message) }

// ThirdPartyError wraps Stripe, SendGrid, SMTP and S3 failures.
func ThirdPartyError(message string) *AppError { return newCoded(ErrCodeThirdPartyError, message) }

func TooManyRequestsError(message string) *AppError {
	return newCoded(ErrCodeTooManyRequests, message)
}

func PayloadTooLargeError(message string) *AppError {
	return newCoded(ErrCodePayloadTooLarge, message)
}

func IsAppError(err error) (*AppError, bool) {
	var appError *AppError

	if errors.As(err, &appError) {
		return appError, true
	}

	return nil, false
}

// HTTPStatus returns the status an error renders as; anything that is not
// an *AppError is a 500.
func HTTPStatus(err error) int {
	if appErr, ok := IsAppError(err); ok && appErr.StatusCode != 0 {
		return appErr.StatusCode
	}

	return http.StatusInternalServerError
}

// AddValidationError builds a single-field validation failure.
func AddValidationError(field, reason string) *AppError {
	return ValidationError(fmt.Sprintf("Invalid field '%s': %s", field, reason))
}
