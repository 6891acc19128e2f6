package provisioning

import (
	"context"

	"github.com/vfg2006/pmax-campaign-manager/internal/domain"
)

// CampaignWriter creates the resources of one campaign.
type CampaignWriter interface {
	CreateBudget(ctx context.Context, customerID, name string, amountMicros int64) (string, error)
	CreateCampaign(ctx context.Context, customerID string, spec domain.CampaignSpec) (string, error)
	ResolveGeoTarget(ctx context.Context, customerID, countryCode string) (string, error)
	ResolveLanguage(ctx context.Context, customerID, languageCode string) (string, error)
	AddCampaignCriteria(ctx context.Context, customerID, campaignResource string, geoTargetIDs, languageIDs []string) error
	CreateAssetGroup(ctx context.Context, customerID, campaignResource, name, finalURL string) (string, error)
	CreateListingGroupTree(ctx context.Context, customerID, assetGroupResource string, tree domain.ListingGroupTree) ([]string, error)
	EnableCampaignAndAssetGroup(ctx context.Context, customerID, campaignResource, assetGroupResource string) error
}

// CampaignInspector reads the asset groups and listing groups of existing campaigns.
type CampaignInspector interface {
	ListAssetGroups(ctx context.Context, customerID, campaignResource string) ([]domain.AssetGroup, error)
	ListListingGroupFilters(ctx context.Context, customerID, assetGroupResource string) ([]domain.ListingGroupFilter, error)
}

// StrategyManager manages portfolio bidding strategies.
type StrategyManager interface {
	FindBiddingStrategyByName(ctx context.Context, customerID, name string) (*domain.BiddingStrategy, error)
	CreatePortfolioTargetROAS(ctx context.Context, customerID, name string, targetROAS float64) (string, error)
}

// MerchantLocator finds the Merchant Center account linked to a customer.
type MerchantLocator interface {
	FindMerchantCenterID(ctx context.Context, customerID string) (int64, error)
}

// Gateway is everything provisioning needs from the ads platform.
type Gateway interface {
	CampaignWriter
	CampaignInspector
	StrategyManager
	MerchantLocator
}
