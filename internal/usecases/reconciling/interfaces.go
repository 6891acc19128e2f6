package reconciling

import (
	"context"
	"time"

	"github.com/vfg2006/pmax-campaign-manager/internal/domain"
)

// CampaignInventory reads the campaigns under reconciliation.
type CampaignInventory interface {
	ListCampaignsByPrefix(ctx context.Context, customerID, prefix string) ([]domain.ExistingCampaign, error)
	CampaignPerformance(ctx context.Context, customerID string, campaignIDs []string, from, to time.Time) ([]domain.PerformanceSample, error)
	CampaignLabels(ctx context.Context, customerID string, index domain.LabelIndex, campaignIDs []string) (map[string]string, error)
}

type LabelDiscoverer interface {
	DiscoverLabels(ctx context.Context, customerID string, index domain.LabelIndex) ([]domain.LabelStat, error)
}

type Provisioner interface {
	Provision(ctx context.Context, customerID string, plan domain.CampaignPlan, opts domain.ProvisionOptions) (*domain.ProvisionReport, error)
	ResolveMerchantID(ctx context.Context, customerID string, opts domain.ProvisionOptions) (domain.ProvisionOptions, error)
}

type CampaignPauser interface {
	PauseCampaign(ctx context.Context, customerID, campaignResource string) error
}

// RunRecorder persists the outcome of a run.
type RunRecorder interface {
	SaveRun(ctx context.Context, run *domain.RunRecord) error
}
