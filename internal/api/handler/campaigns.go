package handler

import (
	"io"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/pmax-campaign-manager/internal/domain"
	"github.com/vfg2006/pmax-campaign-manager/internal/report"
	"github.com/vfg2006/pmax-campaign-manager/internal/usecases/campaigning"
	"github.com/vfg2006/pmax-campaign-manager/internal/usecases/reconciling"
	"github.com/vfg2006/pmax-campaign-manager/pkg/apiErrors"
)

const defaultLabelLimit = 50

// DiscoverLabels lists the values of the requested custom label with impressions.
func DiscoverLabels(service LabelDiscoverer, defaults reconciling.RunOptions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DiscoverLabels")

		req, opts, ok := parseRunRequest(w, r, defaults)
		if !ok {
			return
		}

		stats, err := service.DiscoverLabels(r.Context(), opts.CustomerID, opts.LabelIndex)
		if err != nil {
			logrus.WithError(err).Error("failed to discover labels")
			writeFailure(w, err, "", nil)
			return
		}

		limit := req.Limit
		if limit <= 0 {
			limit = defaultLabelLimit
		}
		output := render(func(w io.Writer) error { return report.Labels(w, stats, limit) })
		writeSuccess(w, output, stats)
	}
}

// PreviewCampaigns builds the plans that create-campaigns would provision, without mutating anything.
func PreviewCampaigns(service CampaignPlanner, defaults reconciling.RunOptions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - PreviewCampaigns")

		req, opts, ok := parseRunRequest(w, r, defaults)
		if !ok {
			return
		}

		preview, err := service.Preview(r.Context(), req.campaignRequest(opts))
		if err != nil {
			logrus.WithError(err).Error("failed to preview campaigns")
			writeFailure(w, err, previewOutput(preview), preview)
			return
		}

		writeSuccess(w, previewOutput(preview), preview)
	}
}

// CreateCampaigns provisions one campaign per selected label. Without apply_changes it behaves like a preview.
func CreateCampaigns(service CampaignPlanner, defaults reconciling.RunOptions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateCampaigns")

		req, opts, ok := parseRunRequest(w, r, defaults)
		if !ok {
			return
		}

		if opts.Mode != domain.RunModeApply {
			preview, err := service.Preview(r.Context(), req.campaignRequest(opts))
			if err != nil {
				writeFailure(w, err, previewOutput(preview), preview)
				return
			}
			output := "dry run: no campaigns were created\n" + previewOutput(preview)
			writeSuccess(w, output, preview)
			return
		}

		result, err := service.Create(r.Context(), req.campaignRequest(opts))
		output := createOutput(result)
		if err != nil {
			logrus.WithError(err).Error("failed to create campaigns")
			writeFailure(w, err, output, result)
			return
		}

		writeSuccess(w, output, result)
	}
}

// WeeklyMonitor runs one reconciliation pass synchronously.
func WeeklyMonitor(service Monitor, defaults reconciling.RunOptions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - WeeklyMonitor")

		_, opts, ok := parseRunRequest(w, r, defaults)
		if !ok {
			return
		}

		rep, err := service.Run(r.Context(), opts)
		output := ""
		if rep != nil {
			output = render(func(w io.Writer) error { return report.Reconciliation(w, rep) })
		}
		if err != nil {
			logrus.WithError(err).Error("weekly monitor failed")
			writeFailure(w, err, output, rep)
			return
		}

		writeSuccess(w, output, rep)
	}
}

func TestAPI() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeSuccess(w, "PMax campaign manager API is working", map[string]string{"status": "ready"})
	}
}

func parseRunRequest(w http.ResponseWriter, r *http.Request, defaults reconciling.RunOptions) (RunRequest, reconciling.RunOptions, bool) {
	req, err := decodeRunRequest(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, Response{Error: err.Error(), Code: apiErrors.ErrInvalidRequest})
		return req, defaults, false
	}

	opts, err := req.runOptions(defaults)
	if err != nil {
		writeFailure(w, err, "", nil)
		return req, opts, false
	}
	return req, opts, true
}

func previewOutput(preview *campaigning.Preview) string {
	if preview == nil {
		return ""
	}
	return render(func(w io.Writer) error {
		if err := report.Labels(w, preview.Selected, 0); err != nil {
			return err
		}
		for _, label := range preview.Missing {
			if _, err := io.WriteString(w, "not found: "+label+"\n"); err != nil {
				return err
			}
		}
		return report.Plans(w, preview.Plans)
	})
}

func createOutput(result *campaigning.Result) string {
	if result == nil {
		return ""
	}
	return render(func(w io.Writer) error {
		if len(result.Reports) == 0 {
			_, err := io.WriteString(w, previewOutput(&result.Preview))
			return err
		}
		return report.Provisioning(w, result.Reports)
	})
}
