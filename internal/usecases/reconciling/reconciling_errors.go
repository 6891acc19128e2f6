package reconciling

import "errors"

var (
	ErrCustomerRequired = errors.New("customer id is required")
	ErrInventoryFailed  = errors.New("failed to read campaign inventory")
	ErrActionsFailed    = errors.New("one or more reconciliation actions failed")
)
