package types

import "fmt"

// ErrorCode represents a specific error type
type ErrorCode string

const (
	// Table errors: a roll or score fell outside the configured tables.
	// These indicate a malformed table, not bad luck, and must surface
	// loudly rather than default to a wrong sheet.
	ErrTableGap ErrorCode = "TABLE_GAP"
	ErrChartGap ErrorCode = "CHART_GAP"

	// Command errors
	ErrInvalidCommand  ErrorCode = "INVALID_COMMAND"
	ErrInvalidArgument ErrorCode = "INVALID_ARGUMENT"

	// System errors
	ErrInternalError ErrorCode = "INTERNAL_ERROR"
	ErrNetworkError  ErrorCode = "NETWORK_ERROR"
	ErrDatabaseError ErrorCode = "DATABASE_ERROR"
)

// SheetError represents an error raised while generating or recording a
// character sheet
type SheetError struct {
	Code    ErrorCode
	Message string
	Err     error // Underlying error, if any
}

// Error implements the error interface
func (e *SheetError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *SheetError) Unwrap() error {
	return e.Err
}

// NewSheetError creates a new SheetError
func NewSheetError(code ErrorCode, message string) *SheetError {
	return &SheetError{
		Code:    code,
		Message: message,
	}
}

// WrapError wraps an existing error in a SheetError
func WrapError(code ErrorCode, message string, err error) *SheetError {
	return &SheetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsSheetError checks if an error is a SheetError with a specific code
func IsSheetError(err error, code ErrorCode) bool {
	var sheetErr *SheetError
	if err == nil {
		return false
	}
	if ok := As(err, &sheetErr); !ok {
		return false
	}
	return sheetErr.Code == code
}

// As is a helper function to safely type assert an error to a SheetError
func As(err error, target **SheetError) bool {
	if target == nil {
		return false
	}
	if sheetErr, ok := err.(*SheetError); ok {
		*target = sheetErr
		return true
	}
	return false
}
