package planning

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/pmax-campaign-manager/internal/domain"
)

var fixedNow = time.Date(2025, 3, 1, 14, 30, 5, 0, time.FixedZone("CET", 3600))

func float(v float64) *float64 { return &v }

func TestBuildPlans(t *testing.T) {
	stats := []domain.LabelStat{
		{Label: "bags", Impressions: 200},
		{Label: "shoes", Impressions: 500},
		{Label: "hats", Impressions: 200},
	}

	tests := []struct {
		name     string
		opts     Options
		validate func(t *testing.T, plans []domain.CampaignPlan, err error)
	}{
		{
			name: "Plans are ranked and named with the prefix and a UTC timestamp",
			opts: Options{Prefix: "PMax Feed", DailyBudget: 5},
			validate: func(t *testing.T, plans []domain.CampaignPlan, err error) {
				require.NoError(t, err)
				require.Len(t, plans, 3)
				assert.Equal(t, "shoes", plans[0].Label)
				assert.Equal(t, "bags", plans[1].Label)
				assert.Equal(t, "hats", plans[2].Label)
				assert.Equal(t, "PMax Feed - shoes - 20250301133005", plans[0].Name)
				for _, p := range plans {
					assert.Equal(t, int64(5_000_000), p.DailyBudgetMicros)
					assert.Equal(t, domain.BiddingMaximizeConversionValue, p.BiddingMode)
					assert.Nil(t, p.TargetROAS)
				}
			},
		},
		{
			name: "An empty prefix drops the leading segment",
			opts: Options{DailyBudget: 1},
			validate: func(t *testing.T, plans []domain.CampaignPlan, err error) {
				require.NoError(t, err)
				assert.Equal(t, "shoes - 20250301133005", plans[0].Name)
			},
		},
		{
			name: "Overrides take precedence over the default target ROAS",
			opts: Options{DailyBudget: 1, DefaultTargetROAS: float(4), Overrides: map[string]float64{"bags": 6.67}},
			validate: func(t *testing.T, plans []domain.CampaignPlan, err error) {
				require.NoError(t, err)
				assert.Equal(t, 4.0, *plans[0].TargetROAS)
				assert.Equal(t, 6.67, *plans[1].TargetROAS)
				assert.Equal(t, 4.0, *plans[2].TargetROAS)
			},
		},
		{
			name: "Budgets are rounded to whole micros",
			opts: Options{DailyBudget: 0.1234567},
			validate: func(t *testing.T, plans []domain.CampaignPlan, err error) {
				require.NoError(t, err)
				assert.Equal(t, int64(123457), plans[0].DailyBudgetMicros)
			},
		},
		{
			name: "A zero budget is rejected",
			opts: Options{DailyBudget: 0},
			validate: func(t *testing.T, plans []domain.CampaignPlan, err error) {
				assert.ErrorIs(t, err, ErrInvalidBudget)
			},
		},
		{
			name: "A non positive default target ROAS is rejected",
			opts: Options{DailyBudget: 1, DefaultTargetROAS: float(0)},
			validate: func(t *testing.T, plans []domain.CampaignPlan, err error) {
				assert.ErrorIs(t, err, ErrInvalidTargetROAS)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plans, err := BuildPlans(stats, tt.opts, fixedNow)
			tt.validate(t, plans, err)
		})
	}
}

func TestBuildPlansIsDeterministic(t *testing.T) {
	stats := []domain.LabelStat{{Label: "b", Impressions: 1}, {Label: "a", Impressions: 1}}
	opts := Options{Prefix: "P", DailyBudget: 2, Overrides: map[string]float64{"a": 3}}

	first, err := BuildPlans(stats, opts, fixedNow)
	require.NoError(t, err)
	second, err := BuildPlans(stats, opts, fixedNow)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "b", stats[0].Label, "input must not be reordered")
}

func TestSanitizeLabel(t *testing.T) {
	allowed := regexp.MustCompile(`^[A-Za-z0-9 _-]+$`)

	tests := []struct {
		input    string
		expected string
	}{
		{input: "shoes", expected: "shoes"},
		{input: "Shoes & Boots!", expected: "Shoes Boots"},
		{input: "  men's   t-shirts  ", expected: "men s t-shirts"},
		{input: "ünïcode_label", expected: "n code_label"},
		{input: strings.Repeat("a", 60), expected: strings.Repeat("a", 40)},
		{input: strings.Repeat("a", 39) + " b", expected: strings.Repeat("a", 39)},
		{input: "%%%", expected: "label"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := SanitizeLabel(tt.input)
			assert.Equal(t, tt.expected, got)
			assert.LessOrEqual(t, len(got), MaxLabelLength)
			assert.Regexp(t, allowed, got)
		})
	}
}

func TestCampaignName(t *testing.T) {
	assert.Equal(t, "PMax Feed - bags - 20250301133005", CampaignName("PMax Feed", "bags", fixedNow))
	assert.Equal(t, "bags - 20250301133005", CampaignName("", "bags", fixedNow))
}
