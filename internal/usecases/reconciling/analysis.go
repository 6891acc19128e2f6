package reconciling

import (
	"sort"
	"time"

	"github.com/vfg2006/pmax-campaign-manager/internal/domain"
	"github.com/vfg2006/pmax-campaign-manager/internal/usecases/planning"
)

// snapshot is the platform state read at the start of a run.
type snapshot struct {
	campaigns   []domain.ExistingCampaign
	performance map[string]domain.PerformanceSample
	labels      map[string]string
	discovered  []domain.LabelStat
}

// analyze decides every action of a run. It never talks to the platform, so dry runs and
// applied runs share the same decisions.
func analyze(report *domain.ReconciliationReport, state snapshot, opts RunOptions, now time.Time) error {
	bound := make(map[string]struct{}, len(state.labels))

	report.Campaigns = make([]domain.CampaignAssessment, 0, len(state.campaigns))
	report.EmptyCampaigns = []domain.ExistingCampaign{}
	for _, c := range state.campaigns {
		perf := state.performance[c.ID]
		perf.CampaignID = c.ID
		assessment := domain.CampaignAssessment{
			Campaign:    c,
			Performance: perf,
			Label:       state.labels[c.ID],
			Empty:       opts.Thresholds.IsEmpty(perf),
		}
		report.Campaigns = append(report.Campaigns, assessment)

		if assessment.Label != "" {
			bound[assessment.Label] = struct{}{}
		}
		if assessment.Empty {
			report.EmptyCampaigns = append(report.EmptyCampaigns, c)
		}
	}

	report.BoundLabels = make([]string, 0, len(bound))
	for label := range bound {
		report.BoundLabels = append(report.BoundLabels, label)
	}
	sort.Strings(report.BoundLabels)

	report.Discovered = state.discovered
	report.NewLabels = []domain.LabelStat{}
	for _, stat := range state.discovered {
		if _, ok := bound[stat.Label]; !ok {
			report.NewLabels = append(report.NewLabels, stat)
		}
	}
	domain.SortLabelStats(report.NewLabels)

	var plans []domain.CampaignPlan
	if len(report.NewLabels) > 0 {
		var err error
		plans, err = planning.BuildPlans(report.NewLabels, planning.Options{
			Prefix:            opts.Prefix,
			DailyBudget:       opts.DailyBudget,
			DefaultTargetROAS: opts.TargetROAS,
		}, now)
		if err != nil {
			return err
		}
	}

	report.Actions = make([]domain.ReconciliationAction, 0, len(plans)+len(report.EmptyCampaigns))
	for i := range plans {
		plan := plans[i]
		report.Actions = append(report.Actions, domain.ReconciliationAction{
			Kind:        domain.ActionCreateCampaign,
			Label:       plan.Label,
			Impressions: plan.Impressions,
			Plan:        &plan,
		})
	}

	if !opts.AutoPauseEmpty {
		return nil
	}
	for i := range report.EmptyCampaigns {
		c := report.EmptyCampaigns[i]
		if c.Status != domain.CampaignStatusEnabled {
			continue
		}
		report.Actions = append(report.Actions, domain.ReconciliationAction{
			Kind:     domain.ActionPauseCampaign,
			Label:    state.labels[c.ID],
			Campaign: &c,
		})
	}
	return nil
}

func aggregatePerformance(samples []domain.PerformanceSample) map[string]domain.PerformanceSample {
	totals := make(map[string]domain.PerformanceSample, len(samples))
	for _, s := range samples {
		total := totals[s.CampaignID]
		total.CampaignID = s.CampaignID
		total.Add(s)
		totals[s.CampaignID] = total
	}
	return totals
}
