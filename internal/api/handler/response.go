package handler

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"reflect"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/pmax-campaign-manager/internal/domain"
	"github.com/vfg2006/pmax-campaign-manager/internal/usecases/campaigning"
	"github.com/vfg2006/pmax-campaign-manager/internal/usecases/discovering"
	"github.com/vfg2006/pmax-campaign-manager/internal/usecases/planning"
	"github.com/vfg2006/pmax-campaign-manager/internal/usecases/provisioning"
	"github.com/vfg2006/pmax-campaign-manager/internal/usecases/reconciling"
	"github.com/vfg2006/pmax-campaign-manager/pkg/apiErrors"
)

// Response is the body of every /api endpoint.
type Response struct {
	Success bool   `json:"success"`
	Output  string `json:"output"`
	Error   string `json:"error,omitempty"`
	Code    string `json:"code,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Warn("failed to write response")
	}
}

func writeSuccess(w http.ResponseWriter, output string, data any) {
	writeJSON(w, http.StatusOK, Response{Success: true, Output: output, Data: payload(data)})
}

// writeFailure keeps whatever was rendered before the failure in output.
func writeFailure(w http.ResponseWriter, err error, output string, data any) {
	code := errorCode(err)
	writeJSON(w, apiErrors.Status(code), Response{
		Success: false,
		Output:  output,
		Error:   err.Error(),
		Code:    code,
		Data:    payload(data),
	})
}

// payload turns a nil pointer into an untyped nil so that data is omitted.
func payload(data any) any {
	if v := reflect.ValueOf(data); v.Kind() == reflect.Pointer && v.IsNil() {
		return nil
	}
	return data
}

func errorCode(err error) string {
	var stepErr *provisioning.StepError
	switch {
	case errors.Is(err, reconciling.ErrCustomerRequired), errors.Is(err, campaigning.ErrCustomerRequired):
		return apiErrors.ErrMissingRequiredData
	case errors.Is(err, domain.ErrInvalidLabelIndex),
		errors.Is(err, planning.ErrInvalidBudget),
		errors.Is(err, planning.ErrInvalidTargetROAS),
		errors.Is(err, campaigning.ErrNothingSelected),
		errors.Is(err, provisioning.ErrMerchantRequired),
		errors.Is(err, provisioning.ErrMerchantNotFound):
		return apiErrors.ErrInvalidFormat
	case errors.Is(err, provisioning.ErrBatchIncomplete), errors.Is(err, reconciling.ErrActionsFailed):
		return apiErrors.ErrPartialExecution
	case errors.As(err, &stepErr):
		return apiErrors.ErrAdsMutation
	case errors.Is(err, discovering.ErrDiscoveryFailed), errors.Is(err, reconciling.ErrInventoryFailed):
		return apiErrors.ErrAdsQuery
	default:
		return apiErrors.ErrInternalServer
	}
}

// render captures a report renderer into a string.
func render(fn func(w io.Writer) error) string {
	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		logrus.WithError(err).Warn("failed to render output")
	}
	return buf.String()
}
