package adsclient

import (
	"context"

	pkgerrors "github.com/pkg/errors"
	"github.com/vfg2006/pmax-campaign-manager/infrastructure/integrator/googleads/adsdomain"
)

func (c *AdsClient) Mutate(ctx context.Context, customerID string, ops []adsdomain.MutateOperation) ([]adsdomain.MutateResult, error) {
	if len(ops) == 0 {
		return nil, nil
	}

	var response adsdomain.MutateResponse
	request := adsdomain.MutateRequest{MutateOperations: ops}
	if err := c.post(ctx, customerID, "googleAds:mutate", request, &response); err != nil {
		return nil, err
	}

	if len(response.MutateOperationResponses) != len(ops) {
		return nil, pkgerrors.Errorf("mutate returned %d results for %d operations",
			len(response.MutateOperationResponses), len(ops))
	}

	results := make([]adsdomain.MutateResult, 0, len(ops))
	for _, r := range response.MutateOperationResponses {
		var result adsdomain.MutateResult
		for kind, resource := range r {
			result = adsdomain.MutateResult{Kind: kind, ResourceName: resource.ResourceName}
		}
		results = append(results, result)
	}

	return results, nil
}
