package dto

import "net/http"

// Generic error codes used by handlers and middleware
const (
	ErrCodeInternal     = "INTERNAL_ERROR"
	ErrCodeBadRequest   = "BAD_REQUEST"
	ErrCodeValidation   = "VALIDATION_ERROR"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeForbidden    = "FORBIDDEN"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeConflict     = "CONFLICT"
)

// ErrorCodeHTTPStatus maps domain error codes to HTTP status codes.
// Codes not listed here fall back to 500.
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:     http.StatusInternalServerError,
	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeValidation:   http.StatusBadRequest,
	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeForbidden:    http.StatusForbidden,
	ErrCodeNotFound:     http.StatusNotFound,
	ErrCodeConflict:     http.StatusConflict,

	// Common domain errors
	"ALREADY_EXISTS":       http.StatusConflict,
	"INVALID_INPUT":        http.StatusBadRequest,
	"INVALID_STATE":        http.StatusUnprocessableEntity,
	"CONCURRENCY_CONFLICT": http.StatusConflict,

	// Validation failures in value objects and aggregates
	"INVALID_PERCENTAGE":  http.StatusBadRequest,
	"INVALID_QUANTITY":    http.StatusBadRequest,
	"INVALID_PRICE":       http.StatusBadRequest,
	"INVALID_NAME":        http.StatusBadRequest,
	"INVALID_CONTACT":     http.StatusBadRequest,
	"INVALID_EMAIL":       http.StatusBadRequest,
	"INVALID_GST_NUMBER":  http.StatusBadRequest,
	"INVALID_BOTTLE_CODE": http.StatusBadRequest,
	"INVALID_SERIES":      http.StatusBadRequest,
	"INVALID_USERNAME":    http.StatusBadRequest,
	"INVALID_PASSWORD":    http.StatusBadRequest,
	"INVALID_ROLE":        http.StatusBadRequest,
	"EMPTY_BOTTLE_SET":    http.StatusBadRequest,
	"DUPLICATE_BOTTLE":    http.StatusBadRequest,
	"EMPTY_SELECTION":     http.StatusBadRequest,

	// Billing ledger state
	"NOTHING_TO_BILL":   http.StatusUnprocessableEntity,
	"ALREADY_BILLED":    http.StatusConflict,
	"BILL_ALREADY_PAID": http.StatusConflict,

	// Inventory and rental state
	"BOTTLE_NOT_IN_STOCK":  http.StatusUnprocessableEntity,
	"BOTTLE_NOT_DELIVERED": http.StatusUnprocessableEntity,
	"UNKNOWN_BOTTLE":       http.StatusUnprocessableEntity,
	"CLIENT_INACTIVE":      http.StatusUnprocessableEntity,
	"ALREADY_ACTIVE":       http.StatusUnprocessableEntity,
	"ALREADY_DEACTIVATED":  http.StatusUnprocessableEntity,

	// Authentication
	"INVALID_CREDENTIALS": http.StatusUnauthorized,
	"ACCOUNT_DEACTIVATED": http.StatusForbidden,
	"TOKEN_EXPIRED":       http.StatusUnauthorized,
	"TOKEN_INVALID":       http.StatusUnauthorized,
	"TOKEN_MAX_REFRESH":   http.StatusUnauthorized,
	"USER_NOT_FOUND":      http.StatusNotFound,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Returns 500 Internal Server Error if the error code is not found.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
