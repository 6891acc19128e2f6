package domain

type BiddingMode string

const BiddingMaximizeConversionValue BiddingMode = "MAXIMIZE_CONVERSION_VALUE"

// CampaignPlan describes one campaign to be created for a label.
type CampaignPlan struct {
	Label             string      `json:"label"`
	Name              string      `json:"name"`
	Impressions       int64       `json:"impressions"`
	DailyBudgetMicros int64       `json:"daily_budget_micros"`
	BiddingMode       BiddingMode `json:"bidding_mode"`
	TargetROAS        *float64    `json:"target_roas,omitempty"`
}

func (p CampaignPlan) BudgetName() string {
	return p.Name + " - Budget"
}

func (p CampaignPlan) AssetGroupName() string {
	return p.Name + " - Asset Group"
}

// EffectiveTargetROAS returns the plan's value, or fallback when the plan carries none.
func (p CampaignPlan) EffectiveTargetROAS(fallback float64) float64 {
	if p.TargetROAS != nil && *p.TargetROAS > 0 {
		return *p.TargetROAS
	}
	return fallback
}

type CampaignType string

const (
	CampaignTypeFeedOnly CampaignType = "feed-only"
	CampaignTypeNormal   CampaignType = "normal"
)

// ProvisionOptions carries every per-run setting of the provisioning path.
type ProvisionOptions struct {
	LabelIndex                     LabelIndex   `json:"label_index"`
	CampaignType                   CampaignType `json:"campaign_type"`
	MerchantID                     int64        `json:"merchant_id"`
	FeedLabel                      string       `json:"feed_label"`
	TargetCountries                []string     `json:"target_countries"`
	TargetLanguages                []string     `json:"target_languages"`
	ContainsEUPoliticalAdvertising bool         `json:"eu_political"`
	StartEnabled                   bool         `json:"start_enabled"`
	FallbackTargetROAS             float64      `json:"fallback_target_roas"`
	FinalURL                       string       `json:"final_url"`
}

func (o ProvisionOptions) FeedOnly() bool {
	return o.CampaignType != CampaignTypeNormal
}

// EffectiveFeedLabel defaults to NL for feed-only campaigns.
func (o ProvisionOptions) EffectiveFeedLabel() string {
	if o.FeedLabel != "" {
		return o.FeedLabel
	}
	if o.FeedOnly() {
		return "NL"
	}
	return ""
}

// CampaignSpec is the resolved input for creating one campaign.
type CampaignSpec struct {
	Name                           string  `json:"name"`
	BudgetResource                 string  `json:"budget_resource"`
	TargetROAS                     float64 `json:"target_roas"`
	FeedOnly                       bool    `json:"feed_only"`
	MerchantID                     int64   `json:"merchant_id,omitempty"`
	FeedLabel                      string  `json:"feed_label,omitempty"`
	ContainsEUPoliticalAdvertising bool    `json:"eu_political"`
}
