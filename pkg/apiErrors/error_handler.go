package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Authentication errors
	ErrMissingToken = "AUTH_001" // Authorization header missing or not a bearer token
	ErrInvalidToken = "AUTH_002" // Token invalid or signed with another secret
	ErrExpiredToken = "AUTH_003" // Token expired

	// Validation errors
	ErrInvalidRequest      = "VAL_001" // Malformed request body
	ErrMissingRequiredData = "VAL_002" // Required field missing
	ErrInvalidFormat       = "VAL_003" // Field present but invalid

	// Google Ads errors
	ErrAdsQuery         = "ADS_001" // A search against the Ads API failed
	ErrAdsMutation      = "ADS_002" // A mutation against the Ads API failed
	ErrPartialExecution = "ADS_003" // Some actions of a batch failed

	// Server errors
	ErrInternalServer    = "SRV_001" // Unexpected error
	ErrDatabaseOperation = "SRV_002" // Run history could not be read or written
	ErrServiceDisabled   = "SRV_003" // The requested component is not configured
	ErrConflict          = "SRV_004" // The operation is already in progress
)

var httpStatusMap = map[string]int{
	ErrMissingToken:        http.StatusUnauthorized,
	ErrInvalidToken:        http.StatusUnauthorized,
	ErrExpiredToken:        http.StatusUnauthorized,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrAdsQuery:            http.StatusBadGateway,
	ErrAdsMutation:         http.StatusBadGateway,
	ErrPartialExecution:    http.StatusMultiStatus,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrDatabaseOperation:   http.StatusInternalServerError,
	ErrServiceDisabled:     http.StatusServiceUnavailable,
	ErrConflict:            http.StatusConflict,
}

// APIError is the error body of every failed admin request.
type APIError struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Error   string `json:"error,omitempty"`
	Details any    `json:"details,omitempty"`
}

// Status returns the HTTP status of code, 500 for unknown codes.
func Status(code string) int {
	if status, ok := httpStatusMap[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Error:   message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(Status(code))
	if err := json.NewEncoder(w).Encode(apiErr); err != nil {
		logrus.WithError(err).Warn("failed to write error response")
	}
}

// FromError wraps a Go error into an API error with the given code.
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:  ErrInternalServer,
			Error: "unknown error",
		}
	}

	return APIError{
		Code:  code,
		Error: err.Error(),
	}
}
