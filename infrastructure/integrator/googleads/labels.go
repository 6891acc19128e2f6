package googleads

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/pmax-campaign-manager/infrastructure/integrator/googleads/adsdomain"
	"github.com/vfg2006/pmax-campaign-manager/internal/domain"
)

// LabelImpressions returns one stat per report row of the trailing 30 days where the attribute is set.
// Rows are not aggregated; the same label usually shows up many times.
func (s *AdsIntegrator) LabelImpressions(ctx context.Context, customerID string, index domain.LabelIndex) ([]domain.LabelStat, error) {
	if !index.Valid() {
		return nil, domain.ErrInvalidLabelIndex
	}

	field := index.SegmentField()
	query := fmt.Sprintf(
		"SELECT %s, metrics.impressions FROM shopping_performance_view "+
			"WHERE segments.date DURING LAST_30_DAYS AND %s IS NOT NULL",
		field, field,
	)

	rows, err := s.search(ctx, "discover_labels", customerID, query)
	if err != nil {
		return nil, errors.Wrapf(err, "querying %s impressions", index)
	}

	stats := make([]domain.LabelStat, 0, len(rows))
	for _, row := range rows {
		label := row.Segments.CustomAttribute(index)
		if label == "" {
			continue
		}
		stats = append(stats, domain.LabelStat{Label: label, Impressions: impressions(row.Metrics)})
	}

	logrus.WithFields(logrus.Fields{
		"customer_id": customerID,
		"label_index": index.Int(),
		"rows":        len(rows),
	}).Debug("labels: fetched label impressions")

	return stats, nil
}

// LabelPairs returns the primary/secondary attribute combinations of the trailing 30 days in result order.
func (s *AdsIntegrator) LabelPairs(ctx context.Context, customerID string, primary, secondary domain.LabelIndex) ([]domain.LabelPair, error) {
	if !primary.Valid() || !secondary.Valid() {
		return nil, domain.ErrInvalidLabelIndex
	}

	query := fmt.Sprintf(
		"SELECT %s, %s, metrics.impressions FROM shopping_performance_view "+
			"WHERE segments.date DURING LAST_30_DAYS AND %s IS NOT NULL",
		primary.SegmentField(), secondary.SegmentField(), primary.SegmentField(),
	)

	rows, err := s.search(ctx, "discover_label_pairs", customerID, query)
	if err != nil {
		return nil, errors.Wrap(err, "querying label pairs")
	}

	pairs := make([]domain.LabelPair, 0, len(rows))
	for _, row := range rows {
		p := row.Segments.CustomAttribute(primary)
		if p == "" {
			continue
		}
		pairs = append(pairs, domain.LabelPair{
			Primary:     p,
			Secondary:   row.Segments.CustomAttribute(secondary),
			Impressions: impressions(row.Metrics),
		})
	}
	return pairs, nil
}

func impressions(m *adsdomain.Metrics) int64 {
	if m == nil {
		return 0
	}
	return int64(m.Impressions)
}
