package adsclient

import (
	"fmt"
	"io"
	"net/http"

	pkgerrors "github.com/pkg/errors"
	"github.com/vfg2006/pmax-campaign-manager/infrastructure/integrator/googleads/adsdomain"
	"github.com/vfg2006/pmax-campaign-manager/pkg/retry"
)

// APIError is a failed Google Ads call, classified once here so callers never look inside it.
type APIError struct {
	HTTPStatus int
	Status     string
	Code       string
	Message    string
	RequestID  string
	Class      retry.Class
	Reason     string
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("google ads error (http %d", e.HTTPStatus)
	if e.Status != "" {
		msg += ", " + e.Status
	}
	if e.Code != "" {
		msg += ", " + e.Code
	}
	msg += "): " + e.Message
	if e.RequestID != "" {
		msg += " [request_id=" + e.RequestID + "]"
	}
	return msg
}

func (e *APIError) RetryClass() (retry.Class, string) {
	return e.Class, e.Reason
}

// HandleResponse returns the body of a 2xx response or the classified APIError.
func HandleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, retry.Mark(pkgerrors.Wrap(err, "reading response"), retry.Transient, "UNAVAILABLE")
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return body, nil
	}

	return nil, parseAPIError(resp.StatusCode, body)
}

func parseAPIError(httpStatus int, body []byte) *APIError {
	apiErr := &APIError{HTTPStatus: httpStatus, Class: retry.Permanent}

	var envelope adsdomain.ErrorResponse
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.Error.Message == "" {
		apiErr.Message = string(body)
		if reason, ok := statusReason(httpStatus); ok {
			apiErr.Class, apiErr.Reason = retry.Transient, reason
		}
		return apiErr
	}

	apiErr.Status = envelope.Error.Status
	apiErr.Message = envelope.Error.Message
	apiErr.RequestID = envelope.RequestID()
	if code, message := envelope.FirstError(); code != "" {
		apiErr.Code = code
		if message != "" {
			apiErr.Message = message
		}
	}

	if reason, ok := envelope.TransientReason(); ok {
		apiErr.Class, apiErr.Reason = retry.Transient, reason
	}

	return apiErr
}

// statusReason classifies bodies that are not Google Ads envelopes, e.g. proxy errors.
func statusReason(httpStatus int) (string, bool) {
	switch httpStatus {
	case http.StatusServiceUnavailable, http.StatusBadGateway:
		return "UNAVAILABLE", true
	case http.StatusGatewayTimeout:
		return "DEADLINE_EXCEEDED", true
	case http.StatusTooManyRequests:
		return "RESOURCE_EXHAUSTED", true
	case http.StatusInternalServerError:
		return "INTERNAL_ERROR", true
	default:
		return "", false
	}
}
