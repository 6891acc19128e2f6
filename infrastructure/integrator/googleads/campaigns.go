package googleads

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/pmax-campaign-manager/infrastructure/integrator/googleads/adsdomain"
	"github.com/vfg2006/pmax-campaign-manager/internal/domain"
)

const (
	channelPerformanceMax = "PERFORMANCE_MAX"

	euPoliticalYes = "CONTAINS_EU_POLITICAL_ADVERTISING"
	euPoliticalNo  = "DOES_NOT_CONTAIN_EU_POLITICAL_ADVERTISING"
)

// ListCampaignsByPrefix returns the Performance Max campaigns whose name starts with prefix.
func (s *AdsIntegrator) ListCampaignsByPrefix(ctx context.Context, customerID, prefix string) ([]domain.ExistingCampaign, error) {
	query := fmt.Sprintf(
		"SELECT campaign.id, campaign.name, campaign.status, campaign.resource_name FROM campaign "+
			"WHERE campaign.name LIKE %s AND campaign.advertising_channel_type = '%s'",
		likePrefix(prefix), channelPerformanceMax,
	)

	rows, err := s.search(ctx, "list_campaigns", customerID, query)
	if err != nil {
		return nil, errors.Wrap(err, "listing campaigns")
	}

	campaigns := make([]domain.ExistingCampaign, 0, len(rows))
	for _, row := range rows {
		if row.Campaign == nil {
			continue
		}
		id := row.Campaign.ID.String()
		resource := row.Campaign.ResourceName
		if resource == "" {
			resource = campaignResource(customerID, id)
		}
		campaigns = append(campaigns, domain.ExistingCampaign{
			ID:           id,
			Name:         row.Campaign.Name,
			Status:       domain.ParseCampaignStatus(row.Campaign.Status),
			ResourceName: resource,
		})
	}
	return campaigns, nil
}

// CampaignPerformance returns the metrics rows of the given campaigns between from and to, inclusive.
func (s *AdsIntegrator) CampaignPerformance(ctx context.Context, customerID string, campaignIDs []string, from, to time.Time) ([]domain.PerformanceSample, error) {
	ids := idList(campaignIDs)
	if ids == "" {
		return nil, nil
	}

	query := fmt.Sprintf(
		"SELECT campaign.id, metrics.impressions, metrics.conversions, metrics.cost_micros FROM campaign "+
			"WHERE campaign.id IN (%s) AND segments.date %s",
		ids, dateRange(from, to),
	)

	rows, err := s.search(ctx, "campaign_performance", customerID, query)
	if err != nil {
		return nil, errors.Wrap(err, "querying campaign performance")
	}

	// rows are segmented by date; fold them into one sample per campaign
	samples := make([]domain.PerformanceSample, 0, len(rows))
	position := make(map[string]int)
	for _, row := range rows {
		if row.Campaign == nil || row.Metrics == nil {
			continue
		}
		day := domain.PerformanceSample{
			CampaignID:  row.Campaign.ID.String(),
			Impressions: int64(row.Metrics.Impressions),
			Conversions: row.Metrics.Conversions,
			CostMicros:  int64(row.Metrics.CostMicros),
		}
		if i, ok := position[day.CampaignID]; ok {
			samples[i].Add(day)
			continue
		}
		position[day.CampaignID] = len(samples)
		samples = append(samples, day)
	}
	return samples, nil
}

// CampaignLabels maps campaign id to the label value of its included listing group at index.
func (s *AdsIntegrator) CampaignLabels(ctx context.Context, customerID string, index domain.LabelIndex, campaignIDs []string) (map[string]string, error) {
	labels := make(map[string]string)
	ids := idList(campaignIDs)
	if ids == "" {
		return labels, nil
	}
	if !index.Valid() {
		return nil, domain.ErrInvalidLabelIndex
	}

	query := fmt.Sprintf(
		"SELECT campaign.id, asset_group_listing_group_filter.case_value.product_custom_attribute.value "+
			"FROM asset_group_listing_group_filter "+
			"WHERE campaign.id IN (%s) "+
			"AND asset_group_listing_group_filter.case_value.product_custom_attribute.index = %s "+
			"AND asset_group_listing_group_filter.type = '%s'",
		ids, index.DimensionIndex(), domain.ListingGroupUnitIncluded,
	)

	rows, err := s.search(ctx, "campaign_labels", customerID, query)
	if err != nil {
		return nil, errors.Wrap(err, "querying bound labels")
	}

	for _, row := range rows {
		if row.Campaign == nil || row.AssetGroupListingGroupFilter == nil {
			continue
		}
		value := filterValue(row.AssetGroupListingGroupFilter)
		id := row.Campaign.ID.String()
		if value == "" {
			continue
		}
		if _, seen := labels[id]; !seen {
			labels[id] = value
		}
	}
	return labels, nil
}

// CreateCampaign creates a paused Performance Max campaign and returns its resource name.
func (s *AdsIntegrator) CreateCampaign(ctx context.Context, customerID string, spec domain.CampaignSpec) (string, error) {
	campaign := &adsdomain.Campaign{
		Name:                           spec.Name,
		Status:                         string(domain.CampaignStatusPaused),
		AdvertisingChannelType:         channelPerformanceMax,
		CampaignBudget:                 spec.BudgetResource,
		ContainsEUPoliticalAdvertising: euPoliticalNo,
		MaximizeConversionValue:        &adsdomain.MaximizeConversionValue{TargetRoas: spec.TargetROAS},
	}
	if spec.ContainsEUPoliticalAdvertising {
		campaign.ContainsEUPoliticalAdvertising = euPoliticalYes
	}
	if spec.FeedOnly {
		campaign.URLExpansionOptOut = adsdomain.Bool(true)
	}
	if spec.MerchantID > 0 {
		campaign.ShoppingSetting = &adsdomain.ShoppingSetting{
			MerchantID: adsdomain.Int64Value(spec.MerchantID),
			FeedLabel:  spec.FeedLabel,
		}
	}

	resource, err := s.mutateOne(ctx, "create_campaign", customerID, adsdomain.MutateOperation{
		CampaignOperation: &adsdomain.CampaignOperation{Create: campaign},
	})
	if err != nil {
		return "", errors.Wrapf(err, "creating campaign %q", spec.Name)
	}

	logrus.WithFields(logrus.Fields{
		"customer_id": customerID,
		"campaign":    resource,
		"target_roas": spec.TargetROAS,
	}).Info("campaigns: campaign created")

	return resource, nil
}

// PauseCampaign sets the campaign status to PAUSED.
func (s *AdsIntegrator) PauseCampaign(ctx context.Context, customerID, campaignResource string) error {
	_, err := s.mutateOne(ctx, "pause_campaign", customerID, adsdomain.MutateOperation{
		CampaignOperation: &adsdomain.CampaignOperation{
			Update:     &adsdomain.Campaign{ResourceName: campaignResource, Status: string(domain.CampaignStatusPaused)},
			UpdateMask: "status",
		},
	})
	if err != nil {
		return errors.Wrapf(err, "pausing %s", campaignResource)
	}
	return nil
}

// EnableCampaignAndAssetGroup enables both resources in one mutate request.
func (s *AdsIntegrator) EnableCampaignAndAssetGroup(ctx context.Context, customerID, campaignResource, assetGroupResource string) error {
	ops := []adsdomain.MutateOperation{
		{CampaignOperation: &adsdomain.CampaignOperation{
			Update:     &adsdomain.Campaign{ResourceName: campaignResource, Status: string(domain.CampaignStatusEnabled)},
			UpdateMask: "status",
		}},
		{AssetGroupOperation: &adsdomain.AssetGroupOperation{
			Update:     &adsdomain.AssetGroup{ResourceName: assetGroupResource, Status: string(domain.CampaignStatusEnabled)},
			UpdateMask: "status",
		}},
	}

	if _, err := s.mutate(ctx, "activate_campaign", customerID, ops); err != nil {
		return errors.Wrapf(err, "activating %s", campaignResource)
	}
	return nil
}

func filterValue(f *adsdomain.AssetGroupListingGroupFilter) string {
	if f == nil || f.CaseValue == nil || f.CaseValue.ProductCustomAttribute == nil {
		return ""
	}
	return f.CaseValue.ProductCustomAttribute.Value
}
