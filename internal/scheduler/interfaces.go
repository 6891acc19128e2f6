package scheduler

import (
	"context"

	"github.com/vfg2006/pmax-campaign-manager/internal/domain"
	"github.com/vfg2006/pmax-campaign-manager/internal/usecases/reconciling"
)

// MonitorRunner executes one reconciliation run.
type MonitorRunner interface {
	Run(ctx context.Context, opts reconciling.RunOptions) (*domain.ReconciliationReport, error)
}
