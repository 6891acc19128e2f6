package reconciling

import (
	"context"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/vfg2006/pmax-campaign-manager/internal/domain"
	"github.com/vfg2006/pmax-campaign-manager/pkg/metrics"
	"github.com/vfg2006/pmax-campaign-manager/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const DefaultDaysBack = 7

type RunOptions struct {
	CustomerID     string                 `json:"customer_id"`
	LabelIndex     domain.LabelIndex      `json:"label_index"`
	Prefix         string                 `json:"prefix"`
	Thresholds     domain.EmptyThresholds `json:"thresholds"`
	DaysBack       int                    `json:"days_back"`
	Mode           domain.RunMode         `json:"mode"`
	AutoPauseEmpty bool                   `json:"auto_pause_empty"`
	DailyBudget    float64                `json:"daily_budget"`
	// TargetROAS is the explicit target for created campaigns; nil uses the provisioning fallback.
	TargetROAS *float64                `json:"target_roas,omitempty"`
	Provision  domain.ProvisionOptions `json:"provision"`
}

type MonitorService interface {
	Run(ctx context.Context, opts RunOptions) (*domain.ReconciliationReport, error)
}

type Settings struct {
	// RequestDelay is the minimum interval between two mutating actions.
	RequestDelay time.Duration
}

type Monitor struct {
	inventory   CampaignInventory
	discoverer  LabelDiscoverer
	provisioner Provisioner
	pauser      CampaignPauser
	recorder    RunRecorder
	metrics     *metrics.Recorder
	settings    Settings
	now         func() time.Time
	newID       func() (string, error)
}

// NewMonitor builds the monitor. recorder and metricsRecorder may be nil.
func NewMonitor(
	inventory CampaignInventory,
	discoverer LabelDiscoverer,
	provisioner Provisioner,
	pauser CampaignPauser,
	recorder RunRecorder,
	metricsRecorder *metrics.Recorder,
	settings Settings,
) MonitorService {
	return &Monitor{
		inventory:   inventory,
		discoverer:  discoverer,
		provisioner: provisioner,
		pauser:      pauser,
		recorder:    recorder,
		metrics:     metricsRecorder,
		settings:    settings,
		now:         time.Now,
		newID:       utils.GenerateID,
	}
}

// Run re-reads the platform state, decides which campaigns to create and pause, and performs
// those actions in apply mode. In dry-run mode nothing is mutated.
func (m *Monitor) Run(ctx context.Context, opts RunOptions) (report *domain.ReconciliationReport, err error) {
	opts, err = normalize(opts)
	if err != nil {
		return nil, err
	}

	startedAt := m.now()
	defer func() {
		if report != nil {
			m.metrics.ObserveRun(string(opts.Mode), err, len(report.NewLabels), len(report.EmptyCampaigns), m.now().Sub(startedAt))
		}
	}()

	runID, err := m.newID()
	if err != nil {
		return nil, err
	}

	logger := logrus.WithFields(logrus.Fields{
		"run_id":      runID,
		"customer_id": opts.CustomerID,
		"label_index": opts.LabelIndex.Int(),
		"prefix":      opts.Prefix,
		"mode":        opts.Mode,
	})
	if !opts.Thresholds.Satisfiable() {
		logger.WithFields(logrus.Fields{
			"min_impressions": opts.Thresholds.MinImpressions,
			"min_conversions": opts.Thresholds.MinConversions,
		}).Warn("reconciliation: thresholds are combined with AND; with a non positive threshold no campaign is ever empty")
	}
	logger.Info("reconciliation: run started")

	report = &domain.ReconciliationReport{
		RunID:      runID,
		CustomerID: opts.CustomerID,
		LabelIndex: opts.LabelIndex,
		Prefix:     opts.Prefix,
		Mode:       opts.Mode,
		Thresholds: opts.Thresholds,
		DaysBack:   opts.DaysBack,
		StartedAt:  startedAt.UTC(),
	}

	state, err := m.read(ctx, opts, startedAt)
	if err != nil {
		logger.WithError(err).Error("reconciliation: failed to read platform state")
		return report, err
	}

	if err := analyze(report, state, opts, startedAt); err != nil {
		return report, err
	}

	logger.WithFields(logrus.Fields{
		"campaigns":       len(report.Campaigns),
		"empty_campaigns": len(report.EmptyCampaigns),
		"new_labels":      len(report.NewLabels),
		"actions":         len(report.Actions),
	}).Info("reconciliation: analysis complete")

	if err := m.execute(ctx, report, opts); err != nil {
		return report, err
	}

	report.CompletedAt = m.now().UTC()
	m.save(ctx, report)

	if failures := report.Failures(); failures > 0 {
		return report, fmt.Errorf("%w: %d of %d", ErrActionsFailed, failures, len(report.Actions))
	}

	logger.WithFields(logrus.Fields{
		"created": report.Created(),
		"paused":  report.Paused(),
	}).Info("reconciliation: run finished")

	return report, nil
}

func (m *Monitor) read(ctx context.Context, opts RunOptions, now time.Time) (snapshot, error) {
	campaigns, err := m.inventory.ListCampaignsByPrefix(ctx, opts.CustomerID, opts.Prefix)
	if err != nil {
		return snapshot{}, fmt.Errorf("%w: %w", ErrInventoryFailed, err)
	}

	ids := make([]string, 0, len(campaigns))
	for _, c := range campaigns {
		ids = append(ids, c.ID)
	}

	from, to := performanceWindow(now, opts.DaysBack)
	samples, err := m.inventory.CampaignPerformance(ctx, opts.CustomerID, ids, from, to)
	if err != nil {
		return snapshot{}, fmt.Errorf("%w: %w", ErrInventoryFailed, err)
	}

	labels, err := m.inventory.CampaignLabels(ctx, opts.CustomerID, opts.LabelIndex, ids)
	if err != nil {
		return snapshot{}, fmt.Errorf("%w: %w", ErrInventoryFailed, err)
	}

	discovered, err := m.discoverer.DiscoverLabels(ctx, opts.CustomerID, opts.LabelIndex)
	if err != nil {
		return snapshot{}, err
	}

	return snapshot{
		campaigns:   campaigns,
		performance: aggregatePerformance(samples),
		labels:      labels,
		discovered:  discovered,
	}, nil
}

// execute is the only place where dry runs and applied runs differ.
func (m *Monitor) execute(ctx context.Context, report *domain.ReconciliationReport, opts RunOptions) error {
	if opts.Mode != domain.RunModeApply {
		for i := range report.Actions {
			report.Actions[i].Outcome = domain.OutcomePlanned
		}
		return nil
	}

	provisionOpts, resolveErr := m.provisionOptions(ctx, report.Actions, opts)

	limiter := rate.NewLimiter(rate.Inf, 1)
	if m.settings.RequestDelay > 0 {
		limiter = rate.NewLimiter(rate.Every(m.settings.RequestDelay), 1)
	}

	for i := range report.Actions {
		action := &report.Actions[i]
		if err := limiter.Wait(ctx); err != nil {
			for j := i; j < len(report.Actions); j++ {
				report.Actions[j].Outcome = domain.OutcomeSkipped
			}
			return err
		}

		var err error
		switch action.Kind {
		case domain.ActionCreateCampaign:
			if resolveErr != nil {
				err = resolveErr
				break
			}
			action.Provisioning, err = m.provisioner.Provision(ctx, opts.CustomerID, *action.Plan, provisionOpts)
		case domain.ActionPauseCampaign:
			err = m.pauser.PauseCampaign(ctx, opts.CustomerID, action.Campaign.ResourceName)
		default:
			err = fmt.Errorf("unknown action %q", action.Kind)
		}

		m.metrics.ObserveMutation(string(action.Kind), err)
		if err != nil {
			action.Outcome = domain.OutcomeFailed
			action.Error = err.Error()
			logrus.WithFields(logrus.Fields{
				"customer_id": opts.CustomerID,
				"action":      action.Kind,
				"label":       action.Label,
				"error":       err.Error(),
			}).Error("reconciliation: action failed")
			continue
		}
		action.Outcome = domain.OutcomeApplied
	}
	return nil
}

// provisionOptions returns the options used for every creation of the run. A feed-only run without
// a merchant id looks up the linked Merchant Center account once, and only when something is created.
func (m *Monitor) provisionOptions(ctx context.Context, actions []domain.ReconciliationAction, opts RunOptions) (domain.ProvisionOptions, error) {
	provisionOpts := opts.Provision
	provisionOpts.LabelIndex = opts.LabelIndex
	if !provisionOpts.FeedOnly() || provisionOpts.MerchantID > 0 || !hasCreations(actions) {
		return provisionOpts, nil
	}

	resolved, err := m.provisioner.ResolveMerchantID(ctx, opts.CustomerID, provisionOpts)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"customer_id": opts.CustomerID,
			"error":       err.Error(),
		}).Error("reconciliation: no merchant center account for feed-only campaigns")
		return provisionOpts, err
	}
	return resolved, nil
}

func hasCreations(actions []domain.ReconciliationAction) bool {
	for _, action := range actions {
		if action.Kind == domain.ActionCreateCampaign {
			return true
		}
	}
	return false
}

func (m *Monitor) save(ctx context.Context, report *domain.ReconciliationReport) {
	if m.recorder == nil {
		return
	}

	payload, err := json.Marshal(report)
	if err != nil {
		logrus.WithError(err).Error("reconciliation: failed to encode run report")
		return
	}
	if err := m.recorder.SaveRun(ctx, domain.NewRunRecord(report, payload)); err != nil {
		logrus.WithError(err).WithField("run_id", report.RunID).Error("reconciliation: failed to save run")
	}
}

func normalize(opts RunOptions) (RunOptions, error) {
	if opts.CustomerID == "" {
		return opts, ErrCustomerRequired
	}
	if !opts.LabelIndex.Valid() {
		return opts, domain.ErrInvalidLabelIndex
	}
	if opts.DaysBack <= 0 {
		opts.DaysBack = DefaultDaysBack
	}
	if opts.Mode != domain.RunModeApply {
		opts.Mode = domain.RunModeDryRun
	}
	return opts, nil
}

// performanceWindow returns the last days complete days before now, in UTC.
func performanceWindow(now time.Time, days int) (from, to time.Time) {
	today := now.UTC().Truncate(24 * time.Hour)
	return today.AddDate(0, 0, -days), today.AddDate(0, 0, -1)
}
