package provisioning

import (
	"errors"
	"fmt"

	"github.com/vfg2006/pmax-campaign-manager/internal/domain"
)

var (
	ErrInvalidPlan       = errors.New("invalid campaign plan")
	ErrMerchantRequired  = errors.New("feed-only campaigns require a merchant center id")
	ErrMerchantNotFound  = errors.New("no merchant center account is linked")
	ErrAssetGroupMissing = errors.New("asset group not found")
	ErrBatchIncomplete   = errors.New("one or more campaigns were not fully provisioned")
)

// StepError reports the provisioning step that failed for a plan.
type StepError struct {
	Step domain.ProvisionStep
	Plan domain.CampaignPlan
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("provisioning %q failed at %s: %v", e.Plan.Label, e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
