package config

import (
	"fmt"
	"strings"

	"github.com/vfg2006/pmax-campaign-manager/internal/domain"
)

func (c *Config) LabelIndex() (domain.LabelIndex, error) {
	return domain.NewLabelIndex(c.Run.LabelIndex)
}

func (c *Config) Thresholds() domain.EmptyThresholds {
	return domain.EmptyThresholds{
		MinImpressions: c.Run.MinImpressions,
		MinConversions: c.Run.MinConversions,
	}
}

// TargetROAS returns nil when no positive default target is configured.
func (c *Config) TargetROAS() *float64 {
	if c.Run.TargetROAS <= 0 {
		return nil
	}
	v := c.Run.TargetROAS
	return &v
}

// ProvisionOptions assembles the creation settings shared by every entry point.
func (c *Config) ProvisionOptions() (domain.ProvisionOptions, error) {
	index, err := c.LabelIndex()
	if err != nil {
		return domain.ProvisionOptions{}, err
	}

	campaignType := domain.CampaignType(strings.ToLower(strings.TrimSpace(c.Run.CampaignType)))
	switch campaignType {
	case "":
		campaignType = domain.CampaignTypeFeedOnly
	case domain.CampaignTypeFeedOnly, domain.CampaignTypeNormal:
	default:
		return domain.ProvisionOptions{}, fmt.Errorf("unknown campaign type %q", c.Run.CampaignType)
	}

	return domain.ProvisionOptions{
		LabelIndex:                     index,
		CampaignType:                   campaignType,
		MerchantID:                     c.Run.MerchantID,
		FeedLabel:                      c.Run.FeedLabel,
		TargetCountries:                c.Run.TargetCountries,
		TargetLanguages:                c.Run.TargetLanguages,
		ContainsEUPoliticalAdvertising: c.Run.EUPolitical,
		StartEnabled:                   c.Run.StartEnabled,
		FallbackTargetROAS:             c.Provisioning.FallbackTargetROAS,
		FinalURL:                       c.Provisioning.FinalURL,
	}, nil
}
