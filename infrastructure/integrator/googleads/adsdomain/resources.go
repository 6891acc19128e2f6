package adsdomain

import "github.com/vfg2006/pmax-campaign-manager/internal/domain"

type CampaignBudget struct {
	ResourceName     string     `json:"resourceName,omitempty"`
	Name             string     `json:"name,omitempty"`
	AmountMicros     Int64Value `json:"amountMicros,omitempty"`
	DeliveryMethod   string     `json:"deliveryMethod,omitempty"`
	ExplicitlyShared *bool      `json:"explicitlyShared,omitempty"`
}

type Campaign struct {
	ResourceName                   string                   `json:"resourceName,omitempty"`
	ID                             Int64Value               `json:"id,omitempty"`
	Name                           string                   `json:"name,omitempty"`
	Status                         string                   `json:"status,omitempty"`
	AdvertisingChannelType         string                   `json:"advertisingChannelType,omitempty"`
	CampaignBudget                 string                   `json:"campaignBudget,omitempty"`
	ShoppingSetting                *ShoppingSetting         `json:"shoppingSetting,omitempty"`
	URLExpansionOptOut             *bool                    `json:"urlExpansionOptOut,omitempty"`
	ContainsEUPoliticalAdvertising string                   `json:"containsEuPoliticalAdvertising,omitempty"`
	MaximizeConversionValue        *MaximizeConversionValue `json:"maximizeConversionValue,omitempty"`
	BiddingStrategy                string                   `json:"biddingStrategy,omitempty"`
}

type ShoppingSetting struct {
	MerchantID Int64Value `json:"merchantId,omitempty"`
	FeedLabel  string     `json:"feedLabel,omitempty"`
}

type MaximizeConversionValue struct {
	TargetRoas float64 `json:"targetRoas,omitempty"`
}

type CampaignCriterion struct {
	ResourceName string        `json:"resourceName,omitempty"`
	Campaign     string        `json:"campaign,omitempty"`
	Location     *LocationInfo `json:"location,omitempty"`
	Language     *LanguageInfo `json:"language,omitempty"`
}

type LocationInfo struct {
	GeoTargetConstant string `json:"geoTargetConstant"`
}

type LanguageInfo struct {
	LanguageConstant string `json:"languageConstant"`
}

type AssetGroup struct {
	ResourceName string     `json:"resourceName,omitempty"`
	ID           Int64Value `json:"id,omitempty"`
	Name         string     `json:"name,omitempty"`
	Campaign     string     `json:"campaign,omitempty"`
	Status       string     `json:"status,omitempty"`
	FinalUrls    []string   `json:"finalUrls,omitempty"`
}

type AssetGroupListingGroupFilter struct {
	ResourceName             string                       `json:"resourceName,omitempty"`
	ID                       Int64Value                   `json:"id,omitempty"`
	AssetGroup               string                       `json:"assetGroup,omitempty"`
	ParentListingGroupFilter string                       `json:"parentListingGroupFilter,omitempty"`
	Type                     string                       `json:"type,omitempty"`
	ListingSource            string                       `json:"listingSource,omitempty"`
	CaseValue                *ListingGroupFilterDimension `json:"caseValue,omitempty"`
}

type ListingGroupFilterDimension struct {
	ProductCustomAttribute *ProductCustomAttribute `json:"productCustomAttribute,omitempty"`
}

type ProductCustomAttribute struct {
	Index string `json:"index,omitempty"`
	Value string `json:"value,omitempty"`
}

type GeoTargetConstant struct {
	ResourceName string     `json:"resourceName,omitempty"`
	ID           Int64Value `json:"id,omitempty"`
	Name         string     `json:"name,omitempty"`
	CountryCode  string     `json:"countryCode,omitempty"`
	TargetType   string     `json:"targetType,omitempty"`
}

type LanguageConstant struct {
	ResourceName string     `json:"resourceName,omitempty"`
	ID           Int64Value `json:"id,omitempty"`
	Code         string     `json:"code,omitempty"`
	Name         string     `json:"name,omitempty"`
}

type BiddingStrategy struct {
	ResourceName string      `json:"resourceName,omitempty"`
	ID           Int64Value  `json:"id,omitempty"`
	Name         string      `json:"name,omitempty"`
	Type         string      `json:"type,omitempty"`
	TargetRoas   *TargetRoas `json:"targetRoas,omitempty"`
}

type TargetRoas struct {
	TargetRoas float64 `json:"targetRoas,omitempty"`
}

type ProductLink struct {
	ResourceName   string                    `json:"resourceName,omitempty"`
	Type           string                    `json:"type,omitempty"`
	MerchantCenter *MerchantCenterIdentifier `json:"merchantCenter,omitempty"`
}

type MerchantCenterIdentifier struct {
	MerchantCenterID Int64Value `json:"merchantCenterId,omitempty"`
}

type Segments struct {
	ProductCustomAttribute0 string `json:"productCustomAttribute0,omitempty"`
	ProductCustomAttribute1 string `json:"productCustomAttribute1,omitempty"`
	ProductCustomAttribute2 string `json:"productCustomAttribute2,omitempty"`
	ProductCustomAttribute3 string `json:"productCustomAttribute3,omitempty"`
	ProductCustomAttribute4 string `json:"productCustomAttribute4,omitempty"`
}

// CustomAttribute returns the segment value for the given index.
func (s *Segments) CustomAttribute(index domain.LabelIndex) string {
	if s == nil {
		return ""
	}

	switch index {
	case domain.LabelIndex0:
		return s.ProductCustomAttribute0
	case domain.LabelIndex1:
		return s.ProductCustomAttribute1
	case domain.LabelIndex2:
		return s.ProductCustomAttribute2
	case domain.LabelIndex3:
		return s.ProductCustomAttribute3
	case domain.LabelIndex4:
		return s.ProductCustomAttribute4
	default:
		return ""
	}
}

type Metrics struct {
	Impressions      Int64Value `json:"impressions,omitempty"`
	Clicks           Int64Value `json:"clicks,omitempty"`
	Conversions      float64    `json:"conversions,omitempty"`
	ConversionsValue float64    `json:"conversionsValue,omitempty"`
	CostMicros       Int64Value `json:"costMicros,omitempty"`
}

// Row is one GoogleAdsRow of a search response.
type Row struct {
	Campaign                     *Campaign                     `json:"campaign,omitempty"`
	CampaignBudget               *CampaignBudget               `json:"campaignBudget,omitempty"`
	AssetGroup                   *AssetGroup                   `json:"assetGroup,omitempty"`
	AssetGroupListingGroupFilter *AssetGroupListingGroupFilter `json:"assetGroupListingGroupFilter,omitempty"`
	GeoTargetConstant            *GeoTargetConstant            `json:"geoTargetConstant,omitempty"`
	LanguageConstant             *LanguageConstant             `json:"languageConstant,omitempty"`
	BiddingStrategy              *BiddingStrategy              `json:"biddingStrategy,omitempty"`
	ProductLink                  *ProductLink                  `json:"productLink,omitempty"`
	Segments                     *Segments                     `json:"segments,omitempty"`
	Metrics                      *Metrics                      `json:"metrics,omitempty"`
}

type SearchRequest struct {
	Query     string `json:"query"`
	PageToken string `json:"pageToken,omitempty"`
}

type SearchResponse struct {
	Results       []Row  `json:"results"`
	NextPageToken string `json:"nextPageToken,omitempty"`
}
