package adsdomain

type MutateRequest struct {
	MutateOperations []MutateOperation `json:"mutateOperations"`
	PartialFailure   bool              `json:"partialFailure,omitempty"`
	ValidateOnly     bool              `json:"validateOnly,omitempty"`
}

// MutateOperation holds exactly one of the typed operations.
type MutateOperation struct {
	CampaignBudgetOperation               *CampaignBudgetOperation               `json:"campaignBudgetOperation,omitempty"`
	CampaignOperation                     *CampaignOperation                     `json:"campaignOperation,omitempty"`
	CampaignCriterionOperation            *CampaignCriterionOperation            `json:"campaignCriterionOperation,omitempty"`
	AssetGroupOperation                   *AssetGroupOperation                   `json:"assetGroupOperation,omitempty"`
	AssetGroupListingGroupFilterOperation *AssetGroupListingGroupFilterOperation `json:"assetGroupListingGroupFilterOperation,omitempty"`
	BiddingStrategyOperation              *BiddingStrategyOperation              `json:"biddingStrategyOperation,omitempty"`
}

type CampaignBudgetOperation struct {
	Create *CampaignBudget `json:"create,omitempty"`
}

type CampaignOperation struct {
	Create     *Campaign `json:"create,omitempty"`
	Update     *Campaign `json:"update,omitempty"`
	UpdateMask string    `json:"updateMask,omitempty"`
}

type CampaignCriterionOperation struct {
	Create *CampaignCriterion `json:"create,omitempty"`
}

type AssetGroupOperation struct {
	Create     *AssetGroup `json:"create,omitempty"`
	Update     *AssetGroup `json:"update,omitempty"`
	UpdateMask string      `json:"updateMask,omitempty"`
}

type AssetGroupListingGroupFilterOperation struct {
	Create *AssetGroupListingGroupFilter `json:"create,omitempty"`
}

type BiddingStrategyOperation struct {
	Create *BiddingStrategy `json:"create,omitempty"`
}

type ResourceResult struct {
	ResourceName string `json:"resourceName"`
}

type MutateResponse struct {
	MutateOperationResponses []map[string]ResourceResult `json:"mutateOperationResponses"`
}

// MutateResult is the resource created or updated by one operation, in request order.
type MutateResult struct {
	Kind         string `json:"kind"`
	ResourceName string `json:"resource_name"`
}
