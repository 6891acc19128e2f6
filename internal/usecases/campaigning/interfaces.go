package campaigning

import (
	"context"

	"github.com/vfg2006/pmax-campaign-manager/internal/domain"
)

type LabelDiscoverer interface {
	DiscoverLabels(ctx context.Context, customerID string, index domain.LabelIndex) ([]domain.LabelStat, error)
	DeriveTargetROAS(ctx context.Context, customerID string) (map[string]float64, error)
}

// CampaignCreator provisions a batch of plans.
type CampaignCreator interface {
	ResolveMerchantID(ctx context.Context, customerID string, opts domain.ProvisionOptions) (domain.ProvisionOptions, error)
	CreateAll(ctx context.Context, customerID string, plans []domain.CampaignPlan, opts domain.ProvisionOptions) ([]*domain.ProvisionReport, error)
}
