// Package campaigning chains discovery, planning and provisioning for the one-shot
// create flow shared by the CLI and the admin endpoints.
package campaigning

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/pmax-campaign-manager/internal/domain"
	"github.com/vfg2006/pmax-campaign-manager/internal/usecases/discovering"
	"github.com/vfg2006/pmax-campaign-manager/internal/usecases/planning"
)

var (
	ErrCustomerRequired = errors.New("customer id is required")
	ErrNothingSelected  = errors.New("none of the selected labels was discovered")
)

type Request struct {
	CustomerID string            `json:"customer_id"`
	LabelIndex domain.LabelIndex `json:"label_index"`
	// SelectedLabels restricts the plans to these labels. Empty selects every discovered label.
	SelectedLabels []string `json:"selected_labels,omitempty"`
	Prefix         string   `json:"prefix"`
	DailyBudget    float64  `json:"daily_budget"`
	TargetROAS     *float64 `json:"target_roas,omitempty"`
	// DeriveTargetROAS reads per-label targets from the percent values of custom label 1.
	DeriveTargetROAS bool                    `json:"derive_target_roas"`
	Provision        domain.ProvisionOptions `json:"provision"`
}

// Preview is everything decided before the first mutation.
type Preview struct {
	Discovered []domain.LabelStat    `json:"discovered"`
	Selected   []domain.LabelStat    `json:"selected"`
	Missing    []string              `json:"missing,omitempty"`
	Plans      []domain.CampaignPlan `json:"plans"`
}

type Result struct {
	Preview
	Reports []*domain.ProvisionReport `json:"reports"`
}

type CampaignService interface {
	Preview(ctx context.Context, req Request) (*Preview, error)
	Create(ctx context.Context, req Request) (*Result, error)
}

type Service struct {
	discoverer LabelDiscoverer
	creator    CampaignCreator
	now        func() time.Time
}

func NewService(discoverer LabelDiscoverer, creator CampaignCreator) CampaignService {
	return &Service{
		discoverer: discoverer,
		creator:    creator,
		now:        time.Now,
	}
}

func (s *Service) Preview(ctx context.Context, req Request) (*Preview, error) {
	if req.CustomerID == "" {
		return nil, ErrCustomerRequired
	}
	if !req.LabelIndex.Valid() {
		return nil, domain.ErrInvalidLabelIndex
	}

	discovered, err := s.discoverer.DiscoverLabels(ctx, req.CustomerID, req.LabelIndex)
	if err != nil {
		return nil, err
	}

	selected, missing := discovering.FilterLabels(discovered, req.SelectedLabels)
	if selected == nil {
		selected = []domain.LabelStat{}
	}
	if len(missing) > 0 {
		logrus.WithFields(logrus.Fields{
			"customer_id": req.CustomerID,
			"missing":     missing,
		}).Warn("campaigning: selected labels have no impressions and are skipped")
	}
	if len(req.SelectedLabels) > 0 && len(selected) == 0 {
		return &Preview{Discovered: discovered, Missing: missing}, ErrNothingSelected
	}

	opts := planning.Options{
		Prefix:            req.Prefix,
		DailyBudget:       req.DailyBudget,
		DefaultTargetROAS: req.TargetROAS,
	}
	if req.DeriveTargetROAS {
		overrides, err := s.discoverer.DeriveTargetROAS(ctx, req.CustomerID)
		if err != nil {
			return nil, err
		}
		opts.Overrides = overrides
	}

	plans, err := planning.BuildPlans(selected, opts, s.now())
	if err != nil {
		return nil, err
	}

	return &Preview{
		Discovered: discovered,
		Selected:   selected,
		Missing:    missing,
		Plans:      plans,
	}, nil
}

// Create previews and then provisions every plan. The result is returned even when some plans failed.
func (s *Service) Create(ctx context.Context, req Request) (*Result, error) {
	preview, err := s.Preview(ctx, req)
	if err != nil {
		return nil, err
	}

	result := &Result{Preview: *preview}
	if len(preview.Plans) == 0 {
		return result, nil
	}

	provisionOpts := req.Provision
	provisionOpts.LabelIndex = req.LabelIndex
	provisionOpts, err = s.creator.ResolveMerchantID(ctx, req.CustomerID, provisionOpts)
	if err != nil {
		return result, err
	}

	result.Reports, err = s.creator.CreateAll(ctx, req.CustomerID, preview.Plans, provisionOpts)
	return result, err
}
