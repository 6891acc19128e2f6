package adsclient

import (
	"context"

	pkgerrors "github.com/pkg/errors"
	"github.com/vfg2006/pmax-campaign-manager/infrastructure/integrator/googleads/adsdomain"
)

// maxPages guards against a server that keeps returning page tokens.
const maxPages = 1000

func (c *AdsClient) Search(ctx context.Context, customerID, query string) ([]adsdomain.Row, error) {
	var rows []adsdomain.Row
	request := adsdomain.SearchRequest{Query: query}

	for page := 0; page < maxPages; page++ {
		var response adsdomain.SearchResponse
		if err := c.post(ctx, customerID, "googleAds:search", request, &response); err != nil {
			return nil, err
		}

		rows = append(rows, response.Results...)
		if response.NextPageToken == "" {
			return rows, nil
		}
		request.PageToken = response.NextPageToken
	}

	return nil, pkgerrors.Errorf("search exceeded %d pages", maxPages)
}
