package googleads

import (
	"context"
	"fmt"

	"github.com/vfg2006/pmax-campaign-manager/infrastructure/integrator/googleads/adsclient"
	"github.com/vfg2006/pmax-campaign-manager/infrastructure/integrator/googleads/adsdomain"
	"github.com/vfg2006/pmax-campaign-manager/pkg/retry"
)

// AdsIntegrator translates domain reads and writes into GAQL queries and mutate operations.
// Every remote call goes through the retry policy.
type AdsIntegrator struct {
	client adsclient.Client
	retry  retry.Policy
}

func New(client adsclient.Client, policy retry.Policy) *AdsIntegrator {
	return &AdsIntegrator{
		client: client,
		retry:  policy,
	}
}

func (s *AdsIntegrator) search(ctx context.Context, operation, customerID, query string) ([]adsdomain.Row, error) {
	return retry.DoValue(ctx, s.retry, operation, func() ([]adsdomain.Row, error) {
		return s.client.Search(ctx, customerID, query)
	})
}

func (s *AdsIntegrator) mutate(ctx context.Context, operation, customerID string, ops []adsdomain.MutateOperation) ([]adsdomain.MutateResult, error) {
	return retry.DoValue(ctx, s.retry, operation, func() ([]adsdomain.MutateResult, error) {
		return s.client.Mutate(ctx, customerID, ops)
	})
}

// mutateOne issues a single operation and returns the affected resource name.
func (s *AdsIntegrator) mutateOne(ctx context.Context, operation, customerID string, op adsdomain.MutateOperation) (string, error) {
	results, err := s.mutate(ctx, operation, customerID, []adsdomain.MutateOperation{op})
	if err != nil {
		return "", err
	}
	if len(results) == 0 || results[0].ResourceName == "" {
		return "", fmt.Errorf("%s: empty mutate response", operation)
	}
	return results[0].ResourceName, nil
}
