package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError represents a structured application error
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Message == "" && e.Cause != nil {
		return e.Cause.Error()
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with additional context, keeping the code of a wrapped AppError
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:    GetCode(err),
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted additional context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WithCode wraps err under a new error code, keeping its text
func WithCode(code string, err error) error {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:  code,
		Cause: err,
	}
}

// IsAppError reports whether an AppError appears anywhere in err's chain
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// GetCode returns the code of the first AppError in err's chain, or CodeInternalError
// for foreign errors. A nil error has no code.
func GetCode(err error) string {
	if err == nil {
		return ""
	}
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeInternalError
}

// HasCode reports whether err carries the given code
func HasCode(err error, code string) bool {
	return err != nil && GetCode(err) == code
}

// Predefined error codes
const (
	CodeNotFound         = "NOT_FOUND"
	CodeReadFailure      = "READ_FAILURE"
	CodeInvalidValue     = "INVALID_VALUE"
	CodeColumnNotFound   = "COLUMN_NOT_FOUND"
	CodeNonNumericColumn = "NON_NUMERIC_COLUMN"
	CodeConfigInvalid    = "CONFIG_INVALID"
	CodeInvalidInput     = "INVALID_INPUT"
	CodeInternalError    = "INTERNAL_ERROR"
)

// Common error constructors

// NotFound reports a missing resource; the message is used verbatim
func NotFound(message string, cause error) *AppError {
	return &AppError{Code: CodeNotFound, Message: message, Cause: cause}
}

// ReadFailure wraps an error raised while reading a file that is known to exist
func ReadFailure(path string, cause error) *AppError {
	return &AppError{
		Code:    CodeReadFailure,
		Message: fmt.Sprintf("failed to read %s", path),
		Cause:   cause,
	}
}

func InvalidValue(format string, args ...interface{}) *AppError {
	return New(CodeInvalidValue, fmt.Sprintf(format, args...))
}

func ColumnNotFound(column string) *AppError {
	return New(CodeColumnNotFound, fmt.Sprintf("column '%s' not found", column))
}

func NonNumericColumn(column, kind string) *AppError {
	return New(CodeNonNumericColumn, fmt.Sprintf("column '%s' is not numeric (type %s)", column, kind))
}

func ConfigInvalid(message string) *AppError {
	return New(CodeConfigInvalid, message)
}

func InvalidInput(message string) *AppError {
	return New(CodeInvalidInput, message)
}

func InternalError(message string) *AppError {
	return New(CodeInternalError, message)
}
