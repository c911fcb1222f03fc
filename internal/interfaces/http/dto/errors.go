package dto

import (
	"net/http"
	"strings"
)

// Error codes produced by the HTTP layer itself
const (
	ErrCodeInternal     = "INTERNAL_ERROR"
	ErrCodeBadRequest   = "BAD_REQUEST"
	ErrCodeValidation   = "VALIDATION_ERROR"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeNotFound     = "NOT_FOUND"
)

// domainErrorStatus maps domain error codes to HTTP status codes. State and
// quantity violations are 422, duplicates and blocked operations are 409.
var domainErrorStatus = map[string]int{
	"NOT_FOUND":           http.StatusNotFound,
	"UNAUTHORIZED":        http.StatusUnauthorized,
	"INVALID_CREDENTIALS": http.StatusUnauthorized,
	"AUTH_DISABLED":       http.StatusForbidden,
	"FORBIDDEN":           http.StatusForbidden,
	"INVALID_INPUT":       http.StatusBadRequest,
	"VALIDATION_ERROR":    http.StatusBadRequest,
	"BAD_REQUEST":         http.StatusBadRequest,
	"ALREADY_EXISTS":      http.StatusConflict,
	"CONFLICT":            http.StatusConflict,
	"DUPLICATE_LINE":      http.StatusConflict,
	"NUMBER_ASSIGNED":     http.StatusConflict,
	"HAS_DELIVERIES":      http.StatusConflict,
	"HAS_ACTIVE_DELIVERY": http.StatusConflict,
	"DELIVERY_EXISTS":     http.StatusConflict,

	"INVALID_STATE":           http.StatusUnprocessableEntity,
	"INVARIANT_VIOLATION":     http.StatusInternalServerError,
	"OVER_DELIVERY":           http.StatusUnprocessableEntity,
	"EMPTY_CART":              http.StatusUnprocessableEntity,
	"EMPTY_QUOTE":             http.StatusUnprocessableEntity,
	"EMPTY_LINE":              http.StatusUnprocessableEntity,
	"NO_PRICE":                http.StatusUnprocessableEntity,
	"ALREADY_DELIVERED":       http.StatusUnprocessableEntity,
	"ALREADY_VOID":            http.StatusUnprocessableEntity,
	"DELIVERY_VOID":           http.StatusUnprocessableEntity,
	"INVOICE_VOID":            http.StatusUnprocessableEntity,
	"INVOICE_COMPLETED":       http.StatusUnprocessableEntity,
	"INVOICE_DELETED":         http.StatusUnprocessableEntity,
	"DELIVERY_BEFORE_INVOICE": http.StatusUnprocessableEntity,
}

// HTTPStatusFor returns the HTTP status for a domain error code. Codes not
// mapped explicitly are classified by shape: *_NOT_FOUND is 404 and INVALID_*
// is 400; anything else is treated as an internal error.
func HTTPStatusFor(code string) int {
	if status, ok := domainErrorStatus[code]; ok {
		return status
	}
	if strings.HasSuffix(code, "_NOT_FOUND") {
		return http.StatusNotFound
	}
	if strings.HasPrefix(code, "INVALID_") {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
