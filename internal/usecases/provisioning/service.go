package provisioning

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/vfg2006/pmax-campaign-manager/internal/domain"
	"github.com/vfg2006/pmax-campaign-manager/pkg/retry"
)

const PlaceholderFinalURL = "https://example.com"

type ProvisioningService interface {
	Provision(ctx context.Context, customerID string, plan domain.CampaignPlan, opts domain.ProvisionOptions) (*domain.ProvisionReport, error)
	CreateAll(ctx context.Context, customerID string, plans []domain.CampaignPlan, opts domain.ProvisionOptions) ([]*domain.ProvisionReport, error)
	AttachListingGroup(ctx context.Context, customerID, assetGroupResource string, index domain.LabelIndex, value string) (*AttachResult, error)
	InspectCampaign(ctx context.Context, customerID, campaignResource string) (*domain.CampaignInspection, error)
	FirstAssetGroup(ctx context.Context, customerID, campaignResource string) (string, error)
	EnsurePortfolioStrategies(ctx context.Context, customerID string, targets map[string]float64) ([]StrategyResult, error)
	ResolveMerchantID(ctx context.Context, customerID string, opts domain.ProvisionOptions) (domain.ProvisionOptions, error)
}

type Settings struct {
	// PropagationDelay is waited after the campaign is created, before dependent resources.
	PropagationDelay time.Duration
	// ActivationDelay is waited before enabling the campaign and asset group.
	ActivationDelay time.Duration
	// CreationSpacing is the minimum interval between two campaign creations in a batch.
	CreationSpacing time.Duration
}

type Service struct {
	gateway  Gateway
	settings Settings
	sleep    func(ctx context.Context, d time.Duration) error
}

func NewService(gateway Gateway, settings Settings) ProvisioningService {
	return &Service{
		gateway:  gateway,
		settings: settings,
		sleep:    retry.Sleep,
	}
}

// Provision creates budget, campaign, criteria, asset group and listing group tree for one plan,
// then optionally enables it. The report records every step; on failure a *StepError is returned
// along with the report.
func (s *Service) Provision(ctx context.Context, customerID string, plan domain.CampaignPlan, opts domain.ProvisionOptions) (*domain.ProvisionReport, error) {
	report := domain.NewProvisionReport(plan)
	logger := logrus.WithFields(logrus.Fields{
		"customer_id": customerID,
		"label":       plan.Label,
		"campaign":    plan.Name,
	})

	tree, err := s.validate(plan, opts)
	if err != nil {
		return report, err
	}

	fail := func(step domain.ProvisionStep, err error) (*domain.ProvisionReport, error) {
		report.Fail(step, err)
		logger.WithFields(logrus.Fields{"step": step, "error": err.Error()}).Error("provisioning: step failed")
		return report, &StepError{Step: step, Plan: plan, Err: err}
	}

	budget, err := s.gateway.CreateBudget(ctx, customerID, plan.BudgetName(), plan.DailyBudgetMicros)
	if err != nil {
		return fail(domain.StepBudget, err)
	}
	report.BudgetResource = budget
	report.Succeed(domain.StepBudget, budget)

	spec := s.campaignSpec(plan, opts, budget)
	report.TargetROAS = spec.TargetROAS
	campaign, err := s.gateway.CreateCampaign(ctx, customerID, spec)
	if err != nil {
		return fail(domain.StepCampaign, err)
	}
	report.CampaignResource = campaign
	report.Succeed(domain.StepCampaign, campaign)
	logger.WithField("resource", campaign).Info("provisioning: campaign created")

	if err := s.sleep(ctx, s.settings.PropagationDelay); err != nil {
		return fail(domain.StepCriteria, err)
	}

	if err := s.attachCriteria(ctx, customerID, campaign, opts, report); err != nil {
		return fail(domain.StepCriteria, err)
	}

	assetGroup, err := s.gateway.CreateAssetGroup(ctx, customerID, campaign, plan.AssetGroupName(), finalURL(opts))
	if err != nil {
		return fail(domain.StepAssetGroup, err)
	}
	report.AssetGroupResource = assetGroup
	report.Succeed(domain.StepAssetGroup, assetGroup)

	if _, err := s.gateway.CreateListingGroupTree(ctx, customerID, assetGroup, tree); err != nil {
		return fail(domain.StepListingGroup, err)
	}
	report.Succeed(domain.StepListingGroup, assetGroup)

	if !opts.StartEnabled {
		report.Skip(domain.StepActivation)
		logger.Info("provisioning: campaign left paused")
		return report, nil
	}

	if err := s.sleep(ctx, s.settings.ActivationDelay); err != nil {
		return fail(domain.StepActivation, err)
	}
	if err := s.gateway.EnableCampaignAndAssetGroup(ctx, customerID, campaign, assetGroup); err != nil {
		return fail(domain.StepActivation, err)
	}
	report.Activated = true
	report.Succeed(domain.StepActivation, campaign)
	logger.Info("provisioning: campaign and asset group enabled")

	return report, nil
}

// CreateAll provisions the plans in order, spaced by the creation limiter. A failing plan does not
// stop the batch; ErrBatchIncomplete is returned once all plans were attempted.
func (s *Service) CreateAll(ctx context.Context, customerID string, plans []domain.CampaignPlan, opts domain.ProvisionOptions) ([]*domain.ProvisionReport, error) {
	limiter := newLimiter(s.settings.CreationSpacing)
	reports := make([]*domain.ProvisionReport, 0, len(plans))
	failed := 0

	for i, plan := range plans {
		if err := limiter.Wait(ctx); err != nil {
			return reports, err
		}

		logrus.WithFields(logrus.Fields{
			"customer_id": customerID,
			"label":       plan.Label,
			"position":    fmt.Sprintf("%d/%d", i+1, len(plans)),
		}).Info("provisioning: creating campaign")

		report, err := s.Provision(ctx, customerID, plan, opts)
		reports = append(reports, report)
		if err != nil {
			failed++
			if ctx.Err() != nil {
				return reports, ctx.Err()
			}
		}
	}

	if failed > 0 {
		return reports, fmt.Errorf("%w: %d of %d", ErrBatchIncomplete, failed, len(plans))
	}
	return reports, nil
}

// ResolveMerchantID fills in the linked Merchant Center account for feed-only campaigns
// when none was given.
func (s *Service) ResolveMerchantID(ctx context.Context, customerID string, opts domain.ProvisionOptions) (domain.ProvisionOptions, error) {
	if opts.MerchantID > 0 || !opts.FeedOnly() {
		return opts, nil
	}

	id, err := s.gateway.FindMerchantCenterID(ctx, customerID)
	if err != nil {
		return opts, err
	}
	if id == 0 {
		return opts, ErrMerchantNotFound
	}

	logrus.WithFields(logrus.Fields{
		"customer_id": customerID,
		"merchant_id": id,
	}).Info("provisioning: using linked merchant center account")

	opts.MerchantID = id
	return opts, nil
}

func (s *Service) validate(plan domain.CampaignPlan, opts domain.ProvisionOptions) (domain.ListingGroupTree, error) {
	if plan.Name == "" || plan.DailyBudgetMicros <= 0 {
		return domain.ListingGroupTree{}, fmt.Errorf("%w: name and budget are required", ErrInvalidPlan)
	}
	if opts.FeedOnly() && opts.MerchantID <= 0 {
		return domain.ListingGroupTree{}, ErrMerchantRequired
	}

	tree, err := domain.NewListingGroupTree(opts.LabelIndex, plan.Label)
	if err != nil {
		return domain.ListingGroupTree{}, fmt.Errorf("%w: %w", ErrInvalidPlan, err)
	}
	return tree, nil
}

func (s *Service) campaignSpec(plan domain.CampaignPlan, opts domain.ProvisionOptions, budget string) domain.CampaignSpec {
	// zero leaves maximize conversion value without a target
	fallback := max(opts.FallbackTargetROAS, 0)

	spec := domain.CampaignSpec{
		Name:                           plan.Name,
		BudgetResource:                 budget,
		TargetROAS:                     plan.EffectiveTargetROAS(fallback),
		FeedOnly:                       opts.FeedOnly(),
		ContainsEUPoliticalAdvertising: opts.ContainsEUPoliticalAdvertising,
	}
	if opts.FeedOnly() {
		spec.MerchantID = opts.MerchantID
		spec.FeedLabel = opts.EffectiveFeedLabel()
	}
	return spec
}

// attachCriteria resolves the requested countries and languages and attaches the ones found.
// Unresolved codes become warnings.
func (s *Service) attachCriteria(ctx context.Context, customerID, campaign string, opts domain.ProvisionOptions, report *domain.ProvisionReport) error {
	if len(opts.TargetCountries) == 0 && len(opts.TargetLanguages) == 0 {
		report.Skip(domain.StepCriteria)
		return nil
	}

	var geoIDs, languageIDs []string
	for _, code := range opts.TargetCountries {
		id, err := s.gateway.ResolveGeoTarget(ctx, customerID, code)
		if id == "" || err != nil {
			s.warn(report, fmt.Sprintf("country %q could not be resolved, skipping", code), err)
			continue
		}
		geoIDs = append(geoIDs, id)
	}
	for _, code := range opts.TargetLanguages {
		id, err := s.gateway.ResolveLanguage(ctx, customerID, code)
		if id == "" || err != nil {
			s.warn(report, fmt.Sprintf("language %q could not be resolved, skipping", code), err)
			continue
		}
		languageIDs = append(languageIDs, id)
	}

	if len(geoIDs) == 0 && len(languageIDs) == 0 {
		report.Skip(domain.StepCriteria)
		return nil
	}

	if err := s.gateway.AddCampaignCriteria(ctx, customerID, campaign, geoIDs, languageIDs); err != nil {
		return err
	}
	report.Succeed(domain.StepCriteria, campaign)
	return nil
}

func (s *Service) warn(report *domain.ProvisionReport, message string, err error) {
	entry := logrus.WithField("campaign", report.CampaignName)
	if err != nil {
		entry = entry.WithError(err)
	}
	entry.Warn("provisioning: " + message)
	report.Warn(message)
}

func finalURL(opts domain.ProvisionOptions) string {
	if opts.FeedOnly() {
		return ""
	}
	if opts.FinalURL != "" {
		return opts.FinalURL
	}
	return PlaceholderFinalURL
}

func newLimiter(spacing time.Duration) *rate.Limiter {
	if spacing <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(spacing), 1)
}
