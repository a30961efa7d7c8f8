package util

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Error codes rendered to clients.
const (
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeStorageError     = "STORAGE_ERROR"
	CodeInternalError    = "INTERNAL_ERROR"
)

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
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

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

// NewValidationError reports an incomplete or malformed client payload.
func NewValidationError(message string, details map[string]any) error {
	return NewDomainError(CodeValidationFailed, message, http.StatusBadRequest, details)
}

// NewStorageError reports a failed query. The cause is kept for logging only;
// clients see the message.
func NewStorageError(message string, err error) error {
	return &DomainError{
		Code:       CodeStorageError,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// NewInternalError wraps an unexpected failure.
func NewInternalError(err error) error {
	return &DomainError{
		Code:       CodeInternalError,
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool {
	var domainErr *DomainError
	return errors.As(err, &domainErr) && domainErr.Code == CodeValidationFailed
}

// IsStorage reports whether err is a storage failure.
func IsStorage(err error) bool {
	var domainErr *DomainError
	return errors.As(err, &domainErr) && domainErr.Code == CodeStorageError
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code := CodeInternalError
		if fiberErr.Code < http.StatusInternalServerError {
			code = statusCode(fiberErr.Code)
		}
		return &DomainError{Code: code, Message: fiberErr.Message, HTTPStatus: fiberErr.Code}
	}
	return NewInternalError(err).(*DomainError)
}

// statusCode spells an HTTP status as an error code, e.g. 404 -> NOT_FOUND.
func statusCode(status int) string {
	text := http.StatusText(status)
	if text == "" {
		return "HTTP_" + strconv.Itoa(status)
	}
	return strings.ToUpper(strings.NewReplacer(" ", "_", "-", "_", "'", "").Replace(text))
}
