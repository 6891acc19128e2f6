package domain

import "strings"

type CampaignStatus string

const (
	CampaignStatusEnabled CampaignStatus = "ENABLED"
	CampaignStatusPaused  CampaignStatus = "PAUSED"
	CampaignStatusRemoved CampaignStatus = "REMOVED"
	CampaignStatusUnknown CampaignStatus = "UNKNOWN"
)

func ParseCampaignStatus(s string) CampaignStatus {
	switch CampaignStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case CampaignStatusEnabled:
		return CampaignStatusEnabled
	case CampaignStatusPaused:
		return CampaignStatusPaused
	case CampaignStatusRemoved:
		return CampaignStatusRemoved
	default:
		return CampaignStatusUnknown
	}
}

// ExistingCampaign is a campaign read from the ad platform. Only Status is ever written back.
type ExistingCampaign struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Status       CampaignStatus `json:"status"`
	ResourceName string         `json:"resource_name"`
}

// PerformanceSample aggregates a campaign's metrics over the monitor window.
type PerformanceSample struct {
	CampaignID  string `json:"campaign_id"`
	Impressions int64   `json:"impressions"`
	Conversions float64 `json:"conversions"`
	CostMicros  int64   `json:"cost_micros"`
}

// Add accumulates another sample of the same campaign.
func (p *PerformanceSample) Add(other PerformanceSample) {
	p.Impressions += other.Impressions
	p.Conversions += other.Conversions
	p.CostMicros += other.CostMicros
}

// EmptyThresholds configures the empty-campaign predicate.
type EmptyThresholds struct {
	MinImpressions int64 `json:"min_impressions"`
	MinConversions int64 `json:"min_conversions"`
}

// IsEmpty reports impressions < MinImpressions AND conversions < MinConversions.
// With MinConversions <= 0 no campaign can satisfy the predicate.
func (t EmptyThresholds) IsEmpty(p PerformanceSample) bool {
	return p.Impressions < t.MinImpressions && p.Conversions < float64(t.MinConversions)
}

// Satisfiable reports whether any non-negative sample could be classified empty.
func (t EmptyThresholds) Satisfiable() bool {
	return t.MinImpressions > 0 && t.MinConversions > 0
}

// AssetGroup is a read model used when inspecting a campaign.
type AssetGroup struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Status       string `json:"status"`
	ResourceName string `json:"resource_name"`
}

// ListingGroupFilter is a read model of one node of an asset group's listing-group tree.
type ListingGroupFilter struct {
	ResourceName string `json:"resource_name"`
	AssetGroup   string `json:"asset_group"`
	Parent       string `json:"parent,omitempty"`
	Type         string `json:"type"`
	Index        string `json:"index,omitempty"`
	Value        string `json:"value,omitempty"`
}

// CampaignInspection lists the asset groups of a campaign with their listing-group filters.
type CampaignInspection struct {
	CampaignResource string                          `json:"campaign_resource"`
	AssetGroups      []AssetGroup                    `json:"asset_groups"`
	Filters          map[string][]ListingGroupFilter `json:"filters"`
}

// BiddingStrategy is a portfolio strategy owned by the customer.
type BiddingStrategy struct {
	ResourceName string  `json:"resource_name"`
	Name         string  `json:"name"`
	Type         string  `json:"type"`
	TargetROAS   float64 `json:"target_roas"`
}
