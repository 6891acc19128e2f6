package handler

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/vfg2006/pmax-campaign-manager/internal/config"
	"github.com/vfg2006/pmax-campaign-manager/internal/domain"
	"github.com/vfg2006/pmax-campaign-manager/internal/usecases/campaigning"
	"github.com/vfg2006/pmax-campaign-manager/internal/usecases/reconciling"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const maxBodyBytes = 1 << 20

// RunRequest carries the CLI flags as JSON. Absent fields fall back to the configured defaults.
type RunRequest struct {
	CustomerID       string   `json:"customer_id"`
	LabelIndex       *int     `json:"label_index"`
	Prefix           *string  `json:"prefix"`
	SelectedLabels   []string `json:"selected_labels"`
	DailyBudget      *float64 `json:"daily_budget"`
	TargetROAS       *float64 `json:"target_roas"`
	DeriveTargetROAS bool     `json:"derive_target_roas"`
	PMaxType         *string  `json:"pmax_type"`
	MerchantID       *int64   `json:"merchant_id"`
	FeedLabel        *string  `json:"feed_label"`
	TargetCountries  []string `json:"target_countries"`
	TargetLanguages  []string `json:"target_languages"`
	StartEnabled     *bool    `json:"start_enabled"`
	EUPolitical      *bool    `json:"eu_political"`
	MinImpressions   *int64   `json:"min_impressions"`
	MinConversions   *int64   `json:"min_conversions"`
	DaysBack         *int     `json:"days_back"`
	AutoPauseEmpty   *bool    `json:"auto_pause_empty"`
	ApplyChanges     bool     `json:"apply_changes"`
	Limit            int      `json:"limit"`
}

func decodeRunRequest(r *http.Request) (RunRequest, error) {
	var req RunRequest
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return req, err
	}
	if len(strings.TrimSpace(string(body))) == 0 {
		return req, nil
	}
	if err := json.Unmarshal(body, &req); err != nil {
		return req, fmt.Errorf("invalid JSON body: %w", err)
	}
	return req, nil
}

// runOptions overlays the request on the defaults. Runs triggered over HTTP are dry runs
// unless apply_changes is set.
func (req RunRequest) runOptions(defaults reconciling.RunOptions) (reconciling.RunOptions, error) {
	opts := defaults
	opts.Mode = domain.RunModeDryRun
	if req.ApplyChanges {
		opts.Mode = domain.RunModeApply
	}

	if id := config.DigitsOnly(req.CustomerID); id != "" {
		opts.CustomerID = id
	}
	if opts.CustomerID == "" {
		return opts, reconciling.ErrCustomerRequired
	}

	if req.LabelIndex != nil {
		index, err := domain.NewLabelIndex(*req.LabelIndex)
		if err != nil {
			return opts, err
		}
		opts.LabelIndex = index
	}
	opts.Provision.LabelIndex = opts.LabelIndex

	if req.Prefix != nil {
		opts.Prefix = *req.Prefix
	}
	if req.DailyBudget != nil {
		opts.DailyBudget = *req.DailyBudget
	}
	if req.TargetROAS != nil {
		opts.TargetROAS = req.TargetROAS
	}
	if req.MinImpressions != nil {
		opts.Thresholds.MinImpressions = *req.MinImpressions
	}
	if req.MinConversions != nil {
		opts.Thresholds.MinConversions = *req.MinConversions
	}
	if req.DaysBack != nil {
		opts.DaysBack = *req.DaysBack
	}
	if req.AutoPauseEmpty != nil {
		opts.AutoPauseEmpty = *req.AutoPauseEmpty
	}

	if req.PMaxType != nil {
		switch t := domain.CampaignType(strings.ToLower(strings.TrimSpace(*req.PMaxType))); t {
		case domain.CampaignTypeFeedOnly, domain.CampaignTypeNormal:
			opts.Provision.CampaignType = t
		default:
			return opts, fmt.Errorf("unknown pmax_type %q", *req.PMaxType)
		}
	}
	if req.MerchantID != nil {
		opts.Provision.MerchantID = *req.MerchantID
	}
	if req.FeedLabel != nil {
		opts.Provision.FeedLabel = *req.FeedLabel
	}
	if len(req.TargetCountries) > 0 {
		opts.Provision.TargetCountries = req.TargetCountries
	}
	if len(req.TargetLanguages) > 0 {
		opts.Provision.TargetLanguages = req.TargetLanguages
	}
	if req.StartEnabled != nil {
		opts.Provision.StartEnabled = *req.StartEnabled
	}
	if req.EUPolitical != nil {
		opts.Provision.ContainsEUPoliticalAdvertising = *req.EUPolitical
	}

	return opts, nil
}

func (req RunRequest) campaignRequest(opts reconciling.RunOptions) campaigning.Request {
	return campaigning.Request{
		CustomerID:       opts.CustomerID,
		LabelIndex:       opts.LabelIndex,
		SelectedLabels:   req.SelectedLabels,
		Prefix:           opts.Prefix,
		DailyBudget:      opts.DailyBudget,
		TargetROAS:       opts.TargetROAS,
		DeriveTargetROAS: req.DeriveTargetROAS,
		Provision:        opts.Provision,
	}
}
