package report

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/pmax-campaign-manager/internal/domain"
)

func TestLabels(t *testing.T) {
	tests := []struct {
		name     string
		stats    []domain.LabelStat
		limit    int
		validate func(t *testing.T, out string)
	}{
		{
			name:  "Prints a friendly line when nothing was found",
			stats: nil,
			validate: func(t *testing.T, out string) {
				assert.Equal(t, "no labels with impressions found\n", out)
			},
		},
		{
			name:  "Truncates to the limit and tells how many are hidden",
			stats: []domain.LabelStat{{Label: "shoes", Impressions: 500}, {Label: "bags", Impressions: 200}, {Label: "hats", Impressions: 10}},
			limit: 2,
			validate: func(t *testing.T, out string) {
				assert.Contains(t, out, "shoes")
				assert.Contains(t, out, "500")
				assert.Contains(t, out, "bags")
				assert.NotContains(t, out, "hats")
				assert.Contains(t, out, "... 1 more")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Labels(&buf, tt.stats, tt.limit))
			tt.validate(t, buf.String())
		})
	}
}

func TestPlans(t *testing.T) {
	troas := 4.5
	var buf bytes.Buffer
	err := Plans(&buf, []domain.CampaignPlan{
		{Label: "bags", Name: "PMax - bags", Impressions: 200, DailyBudgetMicros: 5_000_000, TargetROAS: &troas},
		{Label: "hats", Name: "PMax - hats", Impressions: 10, DailyBudgetMicros: 2_500_000},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "5.00")
	assert.Contains(t, out, "2.50")
	assert.Contains(t, out, "4.50")
	assert.Contains(t, out, "default")
}

func TestProvisionResult(t *testing.T) {
	ok := domain.NewProvisionReport(domain.CampaignPlan{Label: "bags", Name: "PMax - bags"})
	ok.Succeed(domain.StepBudget, "customers/1/campaignBudgets/2")
	ok.Succeed(domain.StepCampaign, "customers/1/campaigns/3")

	enabled := domain.NewProvisionReport(domain.CampaignPlan{Label: "bags"})
	enabled.Activated = true

	partial := domain.NewProvisionReport(domain.CampaignPlan{Label: "bags"})
	partial.Succeed(domain.StepBudget, "customers/1/campaignBudgets/2")
	partial.Succeed(domain.StepCampaign, "customers/1/campaigns/3")
	partial.Fail(domain.StepAssetGroup, errors.New("boom"))

	failed := domain.NewProvisionReport(domain.CampaignPlan{Label: "bags"})
	failed.Fail(domain.StepBudget, errors.New("quota"))

	assert.Equal(t, "created (paused)", provisionResult(ok))
	assert.Equal(t, "created (enabled)", provisionResult(enabled))
	assert.Equal(t, "partial: asset_group", provisionResult(partial))
	assert.Equal(t, "failed: budget", provisionResult(failed))
	assert.Equal(t, "quota", provisionDetail(failed))
}

func TestReconciliation(t *testing.T) {
	report := &domain.ReconciliationReport{
		RunID:      "run001",
		CustomerID: "123",
		Prefix:     "PMax",
		Mode:       domain.RunModeDryRun,
		DaysBack:   7,
		Thresholds: domain.EmptyThresholds{MinImpressions: 100, MinConversions: 1},
		Campaigns: []domain.CampaignAssessment{
			{Campaign: domain.ExistingCampaign{Name: "PMax - shoes", Status: domain.CampaignStatusEnabled}, Label: "shoes", Performance: domain.PerformanceSample{Impressions: 90, Conversions: 6.3}},
		},
		NewLabels: []domain.LabelStat{{Label: "bags", Impressions: 200}},
		Actions: []domain.ReconciliationAction{
			{Kind: domain.ActionCreateCampaign, Label: "bags", Plan: &domain.CampaignPlan{Name: "PMax - bags"}, Outcome: domain.OutcomePlanned},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Reconciliation(&buf, report))

	out := buf.String()
	assert.Contains(t, out, "run run001")
	assert.Contains(t, out, "PMax - shoes")
	assert.Contains(t, out, "6.30")
	assert.Contains(t, out, "new labels (1)")
	assert.Contains(t, out, "create_campaign")
	assert.Contains(t, out, "planned")
	assert.Contains(t, out, "created 0  paused 0  failed 0")
}

func TestInspectionWithoutAssetGroups(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Inspection(&buf, &domain.CampaignInspection{}))
	assert.Equal(t, "campaign has no asset groups\n", buf.String())
}
