package handler

import (
	"io"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/pmax-campaign-manager/internal/config"
	"github.com/vfg2006/pmax-campaign-manager/internal/report"
	"github.com/vfg2006/pmax-campaign-manager/pkg/apiErrors"
)

// ListRuns returns the most recent persisted monitor runs, optionally for one customer.
func ListRuns(repo RunLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ListRuns")

		if repo == nil {
			apiErrors.WriteError(w, apiErrors.ErrServiceDisabled, "run history requires a database", nil)
			return
		}

		query := r.URL.Query()
		var limit uint64
		if raw := query.Get("limit"); raw != "" {
			parsed, err := strconv.ParseUint(raw, 10, 64)
			if err != nil || parsed == 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit must be a positive integer", nil)
				return
			}
			limit = parsed
		}

		runs, err := repo.ListRuns(r.Context(), config.DigitsOnly(query.Get("customer_id")), limit)
		if err != nil {
			logrus.WithError(err).Error("failed to list runs")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "failed to list runs", nil)
			return
		}

		output := render(func(w io.Writer) error { return report.Runs(w, runs) })
		writeSuccess(w, output, runs)
	}
}
