package handler

import (
	"context"

	"github.com/vfg2006/pmax-campaign-manager/internal/domain"
	"github.com/vfg2006/pmax-campaign-manager/internal/usecases/campaigning"
	"github.com/vfg2006/pmax-campaign-manager/internal/usecases/reconciling"
)

type LabelDiscoverer interface {
	DiscoverLabels(ctx context.Context, customerID string, index domain.LabelIndex) ([]domain.LabelStat, error)
}

type CampaignPlanner interface {
	Preview(ctx context.Context, req campaigning.Request) (*campaigning.Preview, error)
	Create(ctx context.Context, req campaigning.Request) (*campaigning.Result, error)
}

type Monitor interface {
	Run(ctx context.Context, opts reconciling.RunOptions) (*domain.ReconciliationReport, error)
}

// MonitorScheduler is the scheduled monitor job.
type MonitorScheduler interface {
	TriggerManualRun() error
	GetStatus() map[string]any
}

type RunLister interface {
	ListRuns(ctx context.Context, customerID string, limit uint64) ([]domain.RunRecord, error)
}
