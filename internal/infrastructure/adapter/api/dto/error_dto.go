package dto

import (
	"net/http"

	domainerr "github.com/rewardly-app/rewards-processor/internal/domain/error"
)

// ErrorResponse represents a standardized error response for the API
type ErrorResponse struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// NewErrorResponse builds the response body for a domain error
func NewErrorResponse(err error, message string) ErrorResponse {
	return ErrorResponse{
		Kind:    domainerr.Kind(err),
		Message: message,
	}
}

// HTTPStatus maps an error kind to its HTTP status code
func HTTPStatus(kind string) int {
	switch kind {
	case domainerr.KindUnauthenticated:
		return http.StatusUnauthorized
	case domainerr.KindInvalidArgument:
		return http.StatusBadRequest
	case domainerr.KindNotFound:
		return http.StatusNotFound
	case domainerr.KindFailedPrecondition:
		return http.StatusPreconditionFailed
	case domainerr.KindResourceExhausted:
		return http.StatusTooManyRequests
	case domainerr.KindUnavailable:
		return http.StatusServiceUnavailable
	case domainerr.KindAborted:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
