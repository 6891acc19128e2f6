package discovering

import (
	"context"
	"errors"
	"regexp"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/pmax-campaign-manager/internal/domain"
)

var ErrDiscoveryFailed = errors.New("label discovery failed")

// target ROAS derivation correlates custom_label0 with the percentage stored in custom_label1
const (
	primaryIndex   = domain.LabelIndex0
	secondaryIndex = domain.LabelIndex1
)

// percentPattern captures the first number; a "-" counts as a sign only at the start or after a separator.
var percentPattern = regexp.MustCompile(`(?:^|[^0-9A-Za-z.])(-?[0-9]+(?:\.[0-9]+)?)`)

type DiscoveryService interface {
	DiscoverLabels(ctx context.Context, customerID string, index domain.LabelIndex) ([]domain.LabelStat, error)
	DeriveTargetROAS(ctx context.Context, customerID string) (map[string]float64, error)
}

type Service struct {
	source LabelSource
}

func NewService(source LabelSource) DiscoveryService {
	return &Service{
		source: source,
	}
}

// DiscoverLabels sums impressions per label value over the trailing 30 days.
// The result is ranked by impressions descending, then label ascending. No labels is not an error.
func (s *Service) DiscoverLabels(ctx context.Context, customerID string, index domain.LabelIndex) ([]domain.LabelStat, error) {
	if !index.Valid() {
		return nil, domain.ErrInvalidLabelIndex
	}

	rows, err := s.source.LabelImpressions(ctx, customerID, index)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"customer_id": customerID,
			"label_index": index.Int(),
			"error":       err.Error(),
		}).Error("discovery: failed to query label impressions")
		return nil, errors.Join(ErrDiscoveryFailed, err)
	}

	totals := make(map[string]int64)
	for _, row := range rows {
		if row.Label == "" {
			continue
		}
		totals[row.Label] += row.Impressions
	}

	stats := domain.LabelStatsFromMap(totals)

	logrus.WithFields(logrus.Fields{
		"customer_id": customerID,
		"label_index": index.Int(),
		"labels":      len(stats),
	}).Info("discovery: labels discovered")

	return stats, nil
}

// DeriveTargetROAS maps each custom_label0 value to the target ROAS implied by its dominant
// custom_label1 percentage. Labels without a usable percentage are left out.
func (s *Service) DeriveTargetROAS(ctx context.Context, customerID string) (map[string]float64, error) {
	pairs, err := s.source.LabelPairs(ctx, customerID, primaryIndex, secondaryIndex)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"customer_id": customerID,
			"error":       err.Error(),
		}).Error("discovery: failed to query label pairs")
		return nil, errors.Join(ErrDiscoveryFailed, err)
	}

	derived := make(map[string]float64)
	for primary, secondary := range DominantSecondary(pairs) {
		if troas, ok := ParsePercentToTargetROAS(secondary); ok {
			derived[primary] = troas
			continue
		}
		logrus.WithFields(logrus.Fields{
			"label":     primary,
			"secondary": secondary,
		}).Debug("discovery: no target ROAS derivable")
	}
	return derived, nil
}

// DominantSecondary picks, for every primary value, the secondary value with the most impressions.
// Ties go to the secondary value seen first.
func DominantSecondary(pairs []domain.LabelPair) map[string]string {
	type tally struct {
		order  []string
		totals map[string]int64
	}

	byPrimary := make(map[string]*tally)
	for _, p := range pairs {
		if p.Primary == "" {
			continue
		}
		t, ok := byPrimary[p.Primary]
		if !ok {
			t = &tally{totals: make(map[string]int64)}
			byPrimary[p.Primary] = t
		}
		if _, seen := t.totals[p.Secondary]; !seen {
			t.order = append(t.order, p.Secondary)
		}
		t.totals[p.Secondary] += p.Impressions
	}

	dominant := make(map[string]string, len(byPrimary))
	for primary, t := range byPrimary {
		best := t.order[0]
		for _, secondary := range t.order[1:] {
			if t.totals[secondary] > t.totals[best] {
				best = secondary
			}
		}
		dominant[primary] = best
	}
	return dominant
}

// ParsePercentToTargetROAS converts "15%" or "15" to round(100/15, 2).
// It reports false for non-positive or unparseable input.
func ParsePercentToTargetROAS(value string) (float64, bool) {
	match := percentPattern.FindStringSubmatch(value)
	if match == nil {
		return 0, false
	}

	pct, err := decimal.NewFromString(match[1])
	if err != nil || !pct.IsPositive() {
		return 0, false
	}

	troas, _ := decimal.NewFromInt(100).Div(pct).Round(2).Float64()
	return troas, true
}
