package googleads

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/pmax-campaign-manager/infrastructure/integrator/googleads/adsdomain"
	"github.com/vfg2006/pmax-campaign-manager/pkg/retry"
)

const deliveryStandard = "STANDARD"

// FindBudgetByName returns the resource name of the budget called name, or "" when there is none.
func (s *AdsIntegrator) FindBudgetByName(ctx context.Context, customerID, name string) (string, error) {
	query := fmt.Sprintf(
		"SELECT campaign_budget.resource_name, campaign_budget.name FROM campaign_budget "+
			"WHERE campaign_budget.name = %s LIMIT 1",
		quote(name),
	)

	rows, err := s.search(ctx, "find_budget", customerID, query)
	if err != nil {
		return "", errors.Wrapf(err, "looking up budget %q", name)
	}
	for _, row := range rows {
		if row.CampaignBudget != nil && row.CampaignBudget.ResourceName != "" {
			return row.CampaignBudget.ResourceName, nil
		}
	}
	return "", nil
}

// CreateBudget creates a non-shared standard budget. Budget names are unique per plan, so a
// retried attempt first checks whether the previous one already went through.
func (s *AdsIntegrator) CreateBudget(ctx context.Context, customerID, name string, amountMicros int64) (string, error) {
	op := adsdomain.MutateOperation{
		CampaignBudgetOperation: &adsdomain.CampaignBudgetOperation{
			Create: &adsdomain.CampaignBudget{
				Name:             name,
				AmountMicros:     adsdomain.Int64Value(amountMicros),
				DeliveryMethod:   deliveryStandard,
				ExplicitlyShared: adsdomain.Bool(false),
			},
		},
	}

	attempt := 0
	resource, err := retry.DoValue(ctx, s.retry, "create_budget", func() (string, error) {
		attempt++
		if attempt > 1 {
			existing, err := s.FindBudgetByName(ctx, customerID, name)
			if err != nil {
				return "", err
			}
			if existing != "" {
				logrus.WithFields(logrus.Fields{
					"customer_id": customerID,
					"budget":      existing,
					"attempt":     attempt,
				}).Warn("budgets: reusing budget created by a previous attempt")
				return existing, nil
			}
		}

		results, err := s.client.Mutate(ctx, customerID, []adsdomain.MutateOperation{op})
		if err != nil {
			return "", err
		}
		if len(results) == 0 || results[0].ResourceName == "" {
			return "", fmt.Errorf("create_budget: empty mutate response")
		}
		return results[0].ResourceName, nil
	})
	if err != nil {
		return "", errors.Wrapf(err, "creating budget %q", name)
	}
	return resource, nil
}
