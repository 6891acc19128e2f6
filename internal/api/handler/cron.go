package handler

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/pmax-campaign-manager/internal/scheduler"
	"github.com/vfg2006/pmax-campaign-manager/pkg/apiErrors"
)

// RunMonitorJob starts the scheduled monitor in the background and returns immediately.
func RunMonitorJob(job MonitorScheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunMonitorJob")

		if job == nil {
			apiErrors.WriteError(w, apiErrors.ErrServiceDisabled, "weekly monitor is not configured", nil)
			return
		}

		if err := job.TriggerManualRun(); err != nil {
			if errors.Is(err, scheduler.ErrRunInProgress) {
				apiErrors.WriteError(w, apiErrors.ErrConflict, err.Error(), nil)
				return
			}
			logrus.WithError(err).Error("failed to trigger weekly monitor")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"success": true,
			"message": "weekly monitor started",
		})
	}
}

func GetCronStatus(job MonitorScheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		if job == nil {
			apiErrors.WriteError(w, apiErrors.ErrServiceDisabled, "weekly monitor is not configured", nil)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"monitor": job.GetStatus(),
		})
	}
}
