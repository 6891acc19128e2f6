package googleads

import (
	"context"

	"github.com/pkg/errors"
)

const merchantLinkQuery = "SELECT product_link.merchant_center.merchant_center_id FROM product_link " +
	"WHERE product_link.type = 'MERCHANT_CENTER'"

// FindMerchantCenterID returns the first linked Merchant Center account, or 0 when none is linked.
func (s *AdsIntegrator) FindMerchantCenterID(ctx context.Context, customerID string) (int64, error) {
	rows, err := s.search(ctx, "find_merchant_center", customerID, merchantLinkQuery)
	if err != nil {
		return 0, errors.Wrap(err, "looking up merchant center link")
	}
	for _, row := range rows {
		if l := row.ProductLink; l != nil && l.MerchantCenter != nil && l.MerchantCenter.MerchantCenterID != 0 {
			return int64(l.MerchantCenter.MerchantCenterID), nil
		}
	}
	return 0, nil
}
