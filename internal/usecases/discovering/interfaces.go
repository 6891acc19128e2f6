package discovering

import (
	"context"

	"github.com/vfg2006/pmax-campaign-manager/internal/domain"
)

// LabelSource reads raw label rows from the shopping performance report.
type LabelSource interface {
	// LabelImpressions returns one stat per report row where the attribute at index is set
	LabelImpressions(ctx context.Context, customerID string, index domain.LabelIndex) ([]domain.LabelStat, error)
	// LabelPairs returns the primary/secondary combinations in result order
	LabelPairs(ctx context.Context, customerID string, primary, secondary domain.LabelIndex) ([]domain.LabelPair, error)
}
