package googleads

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/pmax-campaign-manager/infrastructure/integrator/googleads/adsdomain"
)

// ResolveGeoTarget returns the country-level geo target constant id for a country code, or "" when unknown.
func (s *AdsIntegrator) ResolveGeoTarget(ctx context.Context, customerID, countryCode string) (string, error) {
	code := strings.ToUpper(strings.TrimSpace(countryCode))
	query := fmt.Sprintf(
		"SELECT geo_target_constant.resource_name, geo_target_constant.id FROM geo_target_constant "+
			"WHERE geo_target_constant.country_code = %s AND geo_target_constant.target_type = 'Country' LIMIT 1",
		quote(code),
	)

	rows, err := s.search(ctx, "resolve_geo_target", customerID, query)
	if err != nil {
		return "", errors.Wrapf(err, "resolving country %q", code)
	}
	for _, row := range rows {
		if g := row.GeoTargetConstant; g != nil {
			if g.ID != 0 {
				return g.ID.String(), nil
			}
			if g.ResourceName != "" {
				return lastSegment(g.ResourceName), nil
			}
		}
	}
	return "", nil
}

// ResolveLanguage returns the language constant id for an ISO language code, or "" when unknown.
func (s *AdsIntegrator) ResolveLanguage(ctx context.Context, customerID, languageCode string) (string, error) {
	code := strings.ToLower(strings.TrimSpace(languageCode))
	query := fmt.Sprintf(
		"SELECT language_constant.resource_name, language_constant.id FROM language_constant "+
			"WHERE language_constant.code = %s LIMIT 1",
		quote(code),
	)

	rows, err := s.search(ctx, "resolve_language", customerID, query)
	if err != nil {
		return "", errors.Wrapf(err, "resolving language %q", code)
	}
	for _, row := range rows {
		if l := row.LanguageConstant; l != nil {
			if l.ID != 0 {
				return l.ID.String(), nil
			}
			if l.ResourceName != "" {
				return lastSegment(l.ResourceName), nil
			}
		}
	}
	return "", nil
}

// AddCampaignCriteria attaches location and language criteria in one mutate request.
func (s *AdsIntegrator) AddCampaignCriteria(ctx context.Context, customerID, campaignResource string, geoTargetIDs, languageIDs []string) error {
	ops := make([]adsdomain.MutateOperation, 0, len(geoTargetIDs)+len(languageIDs))
	for _, id := range geoTargetIDs {
		ops = append(ops, adsdomain.MutateOperation{
			CampaignCriterionOperation: &adsdomain.CampaignCriterionOperation{
				Create: &adsdomain.CampaignCriterion{
					Campaign: campaignResource,
					Location: &adsdomain.LocationInfo{GeoTargetConstant: geoTargetResource(id)},
				},
			},
		})
	}
	for _, id := range languageIDs {
		ops = append(ops, adsdomain.MutateOperation{
			CampaignCriterionOperation: &adsdomain.CampaignCriterionOperation{
				Create: &adsdomain.CampaignCriterion{
					Campaign: campaignResource,
					Language: &adsdomain.LanguageInfo{LanguageConstant: languageResource(id)},
				},
			},
		})
	}
	if len(ops) == 0 {
		return nil
	}

	if _, err := s.mutate(ctx, "add_campaign_criteria", customerID, ops); err != nil {
		return errors.Wrapf(err, "adding criteria to %s", campaignResource)
	}
	return nil
}
