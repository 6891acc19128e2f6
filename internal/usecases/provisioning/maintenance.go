package provisioning

import (
	"context"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/pmax-campaign-manager/internal/domain"
)

type AttachResult struct {
	AssetGroup string   `json:"asset_group"`
	Label      string   `json:"label"`
	Created    bool     `json:"created"`
	Resources  []string `json:"resources"`
}

type StrategyResult struct {
	Label        string  `json:"label"`
	Name         string  `json:"name"`
	TargetROAS   float64 `json:"target_roas"`
	ResourceName string  `json:"resource_name,omitempty"`
	Created      bool    `json:"created"`
	Error        string  `json:"error,omitempty"`
}

// StrategyName is the unique portfolio strategy name of a primary label.
func StrategyName(label string, targetROAS float64) string {
	return fmt.Sprintf("tROAS for label0=%s (%.2f)", label, targetROAS)
}

// AttachListingGroup gives an existing asset group the included/excluded tree for value.
// It is a no-op when the same tree is already there and fails when a tree for another value exists.
func (s *Service) AttachListingGroup(ctx context.Context, customerID, assetGroupResource string, index domain.LabelIndex, value string) (*AttachResult, error) {
	tree, err := domain.NewListingGroupTree(index, value)
	if err != nil {
		return nil, err
	}

	existing, err := s.gateway.ListListingGroupFilters(ctx, customerID, assetGroupResource)
	if err != nil {
		return nil, err
	}

	result := &AttachResult{AssetGroup: assetGroupResource, Label: value}
	if len(existing) > 0 {
		for _, f := range existing {
			if f.Type == string(domain.ListingGroupUnitIncluded) && f.Index == index.DimensionIndex() && f.Value == value {
				result.Resources = resourceNames(existing)
				logrus.WithFields(logrus.Fields{
					"asset_group": assetGroupResource,
					"label":       value,
				}).Info("provisioning: listing group already attached")
				return result, nil
			}
		}
		return nil, fmt.Errorf("%w: %s", domain.ErrListingGroupConflict, assetGroupResource)
	}

	resources, err := s.gateway.CreateListingGroupTree(ctx, customerID, assetGroupResource, tree)
	if err != nil {
		return nil, err
	}
	result.Created = true
	result.Resources = resources
	return result, nil
}

// FirstAssetGroup returns the first asset group of a campaign, for campaigns created with a single one.
func (s *Service) FirstAssetGroup(ctx context.Context, customerID, campaignResource string) (string, error) {
	groups, err := s.gateway.ListAssetGroups(ctx, customerID, campaignResource)
	if err != nil {
		return "", err
	}
	if len(groups) == 0 {
		return "", fmt.Errorf("%w: %s", ErrAssetGroupMissing, campaignResource)
	}
	return groups[0].ResourceName, nil
}

// InspectCampaign lists the asset groups of a campaign with their listing group filters.
func (s *Service) InspectCampaign(ctx context.Context, customerID, campaignResource string) (*domain.CampaignInspection, error) {
	groups, err := s.gateway.ListAssetGroups(ctx, customerID, campaignResource)
	if err != nil {
		return nil, err
	}

	inspection := &domain.CampaignInspection{
		CampaignResource: campaignResource,
		AssetGroups:      groups,
		Filters:          make(map[string][]domain.ListingGroupFilter, len(groups)),
	}
	for _, g := range groups {
		filters, err := s.gateway.ListListingGroupFilters(ctx, customerID, g.ResourceName)
		if err != nil {
			return nil, err
		}
		inspection.Filters[g.ResourceName] = filters
	}
	return inspection, nil
}

// EnsurePortfolioStrategies creates one portfolio target ROAS strategy per label unless a strategy
// with the same name exists. Failures are recorded per label.
func (s *Service) EnsurePortfolioStrategies(ctx context.Context, customerID string, targets map[string]float64) ([]StrategyResult, error) {
	labels := make([]string, 0, len(targets))
	for label := range targets {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	limiter := newLimiter(s.settings.CreationSpacing)
	results := make([]StrategyResult, 0, len(labels))
	for _, label := range labels {
		troas := targets[label]
		result := StrategyResult{Label: label, Name: StrategyName(label, troas), TargetROAS: troas}

		existing, err := s.gateway.FindBiddingStrategyByName(ctx, customerID, result.Name)
		if err != nil {
			result.Error = err.Error()
			results = append(results, result)
			continue
		}
		if existing != nil {
			result.ResourceName = existing.ResourceName
			results = append(results, result)
			continue
		}

		if err := limiter.Wait(ctx); err != nil {
			return results, err
		}
		resource, err := s.gateway.CreatePortfolioTargetROAS(ctx, customerID, result.Name, troas)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"customer_id": customerID,
				"label":       label,
				"error":       err.Error(),
			}).Error("provisioning: failed to create bidding strategy")
			result.Error = err.Error()
		} else {
			result.ResourceName = resource
			result.Created = true
		}
		results = append(results, result)
	}
	return results, nil
}

func resourceNames(filters []domain.ListingGroupFilter) []string {
	names := make([]string, 0, len(filters))
	for _, f := range filters {
		names = append(names, f.ResourceName)
	}
	return names
}
