package adsdomain

// ErrorResponse is the REST error envelope of the Google Ads API.
type ErrorResponse struct {
	Error ErrorStatus `json:"error"`
}

type ErrorStatus struct {
	Code    int           `json:"code"`
	Message string        `json:"message"`
	Status  string        `json:"status"`
	Details []ErrorDetail `json:"details,omitempty"`
}

// ErrorDetail carries the GoogleAdsFailure payload.
type ErrorDetail struct {
	Type      string           `json:"@type"`
	Errors    []GoogleAdsError `json:"errors,omitempty"`
	RequestID string           `json:"requestId,omitempty"`
}

type GoogleAdsError struct {
	ErrorCode map[string]string `json:"errorCode"`
	Message   string            `json:"message"`
}

// transientErrorCodes maps GoogleAdsError codes to the reported transient reason.
var transientErrorCodes = map[string]string{
	"CONCURRENT_MODIFICATION":        "CONCURRENT_MODIFICATION",
	"INTERNAL_ERROR":                 "INTERNAL_ERROR",
	"TRANSIENT_ERROR":                "INTERNAL_ERROR",
	"RESOURCE_EXHAUSTED":             "RESOURCE_EXHAUSTED",
	"RESOURCE_TEMPORARILY_EXHAUSTED": "RESOURCE_EXHAUSTED",
	"DEADLINE_EXCEEDED":              "DEADLINE_EXCEEDED",
}

// transientStatuses maps canonical RPC statuses to the reported transient reason.
var transientStatuses = map[string]string{
	"UNAVAILABLE":        "UNAVAILABLE",
	"DEADLINE_EXCEEDED":  "DEADLINE_EXCEEDED",
	"RESOURCE_EXHAUSTED": "RESOURCE_EXHAUSTED",
	"INTERNAL":           "INTERNAL_ERROR",
}

// TransientReason reports whether the failure is worth retrying and why.
func (e *ErrorResponse) TransientReason() (string, bool) {
	for _, d := range e.Error.Details {
		for _, adsErr := range d.Errors {
			for _, code := range adsErr.ErrorCode {
				if reason, ok := transientErrorCodes[code]; ok {
					return reason, true
				}
			}
		}
	}

	reason, ok := transientStatuses[e.Error.Status]
	return reason, ok
}

// RequestID returns the first request id found in the details.
func (e *ErrorResponse) RequestID() string {
	for _, d := range e.Error.Details {
		if d.RequestID != "" {
			return d.RequestID
		}
	}
	return ""
}

// FirstError returns the first GoogleAdsError code and message, if any.
func (e *ErrorResponse) FirstError() (code string, message string) {
	for _, d := range e.Error.Details {
		for _, adsErr := range d.Errors {
			for kind, value := range adsErr.ErrorCode {
				return kind + "." + value, adsErr.Message
			}
		}
	}
	return "", ""
}
