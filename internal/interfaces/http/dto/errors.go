package dto

import "net/http"

// Error codes returned in the error.code field.
const (
	ErrCodeBadRequest  = "BAD_REQUEST"
	ErrCodeNotFound    = "NOT_FOUND"
	ErrCodeInternal    = "INTERNAL_ERROR"
	ErrCodeUnavailable = "SERVICE_UNAVAILABLE"
)

// GetHTTPStatus maps an error code to its HTTP status code
func GetHTTPStatus(code string) int {
	switch code {
	case ErrCodeBadRequest:
		return http.StatusBadRequest
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
