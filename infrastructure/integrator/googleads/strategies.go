package googleads

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/vfg2006/pmax-campaign-manager/infrastructure/integrator/googleads/adsdomain"
	"github.com/vfg2006/pmax-campaign-manager/internal/domain"
)

// FindBiddingStrategyByName returns the portfolio strategy called name, or nil when there is none.
func (s *AdsIntegrator) FindBiddingStrategyByName(ctx context.Context, customerID, name string) (*domain.BiddingStrategy, error) {
	query := fmt.Sprintf(
		"SELECT bidding_strategy.resource_name, bidding_strategy.name, bidding_strategy.type, "+
			"bidding_strategy.target_roas.target_roas FROM bidding_strategy "+
			"WHERE bidding_strategy.name = %s LIMIT 1",
		quote(name),
	)

	rows, err := s.search(ctx, "find_bidding_strategy", customerID, query)
	if err != nil {
		return nil, errors.Wrapf(err, "looking up bidding strategy %q", name)
	}
	for _, row := range rows {
		if b := row.BiddingStrategy; b != nil && b.ResourceName != "" {
			strategy := &domain.BiddingStrategy{ResourceName: b.ResourceName, Name: b.Name, Type: b.Type}
			if b.TargetRoas != nil {
				strategy.TargetROAS = b.TargetRoas.TargetRoas
			}
			return strategy, nil
		}
	}
	return nil, nil
}

// CreatePortfolioTargetROAS creates a shared target ROAS strategy and returns its resource name.
func (s *AdsIntegrator) CreatePortfolioTargetROAS(ctx context.Context, customerID, name string, targetROAS float64) (string, error) {
	resource, err := s.mutateOne(ctx, "create_bidding_strategy", customerID, adsdomain.MutateOperation{
		BiddingStrategyOperation: &adsdomain.BiddingStrategyOperation{
			Create: &adsdomain.BiddingStrategy{
				Name:       name,
				TargetRoas: &adsdomain.TargetRoas{TargetRoas: targetROAS},
			},
		},
	})
	if err != nil {
		return "", errors.Wrapf(err, "creating bidding strategy %q", name)
	}
	return resource, nil
}
