package googleads

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/pmax-campaign-manager/infrastructure/integrator/googleads/adsdomain"
	"github.com/vfg2006/pmax-campaign-manager/internal/config"
	"github.com/vfg2006/pmax-campaign-manager/internal/domain"
	"github.com/vfg2006/pmax-campaign-manager/pkg/retry"
)

const listingSourceShopping = "SHOPPING"

// CreateAssetGroup creates a paused asset group. finalURL is only sent when not empty.
func (s *AdsIntegrator) CreateAssetGroup(ctx context.Context, customerID, campaignResource, name, finalURL string) (string, error) {
	group := &adsdomain.AssetGroup{
		Name:     name,
		Campaign: campaignResource,
		Status:   string(domain.CampaignStatusPaused),
	}
	if finalURL != "" {
		group.FinalUrls = []string{finalURL}
	}

	resource, err := s.mutateOne(ctx, "create_asset_group", customerID, adsdomain.MutateOperation{
		AssetGroupOperation: &adsdomain.AssetGroupOperation{Create: group},
	})
	if err != nil {
		return "", errors.Wrapf(err, "creating asset group %q", name)
	}
	return resource, nil
}

// ListAssetGroups returns the asset groups of a campaign.
func (s *AdsIntegrator) ListAssetGroups(ctx context.Context, customerID, campaignResource string) ([]domain.AssetGroup, error) {
	query := fmt.Sprintf(
		"SELECT asset_group.resource_name, asset_group.id, asset_group.name, asset_group.status FROM asset_group "+
			"WHERE asset_group.campaign = %s",
		quote(campaignResource),
	)

	rows, err := s.search(ctx, "list_asset_groups", customerID, query)
	if err != nil {
		return nil, errors.Wrapf(err, "listing asset groups of %s", campaignResource)
	}

	groups := make([]domain.AssetGroup, 0, len(rows))
	for _, row := range rows {
		if row.AssetGroup == nil {
			continue
		}
		groups = append(groups, domain.AssetGroup{
			ID:           row.AssetGroup.ID.String(),
			Name:         row.AssetGroup.Name,
			Status:       row.AssetGroup.Status,
			ResourceName: row.AssetGroup.ResourceName,
		})
	}
	return groups, nil
}

// ListListingGroupFilters returns the listing group filters of an asset group.
func (s *AdsIntegrator) ListListingGroupFilters(ctx context.Context, customerID, assetGroupResource string) ([]domain.ListingGroupFilter, error) {
	query := fmt.Sprintf(
		"SELECT asset_group_listing_group_filter.resource_name, "+
			"asset_group_listing_group_filter.parent_listing_group_filter, "+
			"asset_group_listing_group_filter.type, "+
			"asset_group_listing_group_filter.case_value.product_custom_attribute.index, "+
			"asset_group_listing_group_filter.case_value.product_custom_attribute.value "+
			"FROM asset_group_listing_group_filter WHERE asset_group_listing_group_filter.asset_group = %s",
		quote(assetGroupResource),
	)

	rows, err := s.search(ctx, "list_listing_groups", customerID, query)
	if err != nil {
		return nil, errors.Wrapf(err, "listing listing groups of %s", assetGroupResource)
	}

	filters := make([]domain.ListingGroupFilter, 0, len(rows))
	for _, row := range rows {
		f := row.AssetGroupListingGroupFilter
		if f == nil {
			continue
		}
		filter := domain.ListingGroupFilter{
			ResourceName: f.ResourceName,
			AssetGroup:   assetGroupResource,
			Parent:       f.ParentListingGroupFilter,
			Type:         f.Type,
		}
		if f.CaseValue != nil && f.CaseValue.ProductCustomAttribute != nil {
			filter.Index = f.CaseValue.ProductCustomAttribute.Index
			filter.Value = f.CaseValue.ProductCustomAttribute.Value
		}
		filters = append(filters, filter)
	}
	return filters, nil
}

// CreateListingGroupTree creates the three nodes of tree in a single mutate request using temporary ids.
// A retried attempt first checks whether the previous one already created the tree.
func (s *AdsIntegrator) CreateListingGroupTree(ctx context.Context, customerID, assetGroupResource string, tree domain.ListingGroupTree) ([]string, error) {
	if err := tree.Validate(); err != nil {
		return nil, err
	}

	ops := listingGroupOperations(customerID, assetGroupResource, tree)

	attempt := 0
	resources, err := retry.DoValue(ctx, s.retry, "create_listing_group", func() ([]string, error) {
		attempt++
		if attempt > 1 {
			existing, err := s.ListListingGroupFilters(ctx, customerID, assetGroupResource)
			if err != nil {
				return nil, err
			}
			if len(existing) > 0 {
				logrus.WithFields(logrus.Fields{
					"customer_id": customerID,
					"asset_group": assetGroupResource,
					"attempt":     attempt,
				}).Warn("listing groups: tree already created by a previous attempt")
				return filterResources(existing), nil
			}
		}

		results, err := s.client.Mutate(ctx, customerID, ops)
		if err != nil {
			return nil, err
		}
		names := make([]string, 0, len(results))
		for _, r := range results {
			names = append(names, r.ResourceName)
		}
		return names, nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "creating listing group tree on %s", assetGroupResource)
	}
	return resources, nil
}

func listingGroupOperations(customerID, assetGroupResource string, tree domain.ListingGroupTree) []adsdomain.MutateOperation {
	assetGroupID := lastSegment(assetGroupResource)
	tempResource := func(tempID int64) string {
		return fmt.Sprintf("customers/%s/assetGroupListingGroupFilters/%s~%d", config.DigitsOnly(customerID), assetGroupID, tempID)
	}

	ops := make([]adsdomain.MutateOperation, 0, len(tree.Nodes))
	for _, node := range tree.Nodes {
		filter := &adsdomain.AssetGroupListingGroupFilter{
			ResourceName:  tempResource(node.TempID),
			AssetGroup:    assetGroupResource,
			Type:          string(node.Type),
			ListingSource: listingSourceShopping,
		}
		if node.ParentTempID != 0 {
			filter.ParentListingGroupFilter = tempResource(node.ParentTempID)
		}
		if node.HasDimension {
			filter.CaseValue = &adsdomain.ListingGroupFilterDimension{
				ProductCustomAttribute: &adsdomain.ProductCustomAttribute{
					Index: node.Index.DimensionIndex(),
					Value: node.Value,
				},
			}
		}
		ops = append(ops, adsdomain.MutateOperation{
			AssetGroupListingGroupFilterOperation: &adsdomain.AssetGroupListingGroupFilterOperation{Create: filter},
		})
	}
	return ops
}

func filterResources(filters []domain.ListingGroupFilter) []string {
	names := make([]string, 0, len(filters))
	for _, f := range filters {
		names = append(names, f.ResourceName)
	}
	return names
}
