// Package report renders command results as plain text tables.
package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/vfg2006/pmax-campaign-manager/internal/domain"
	"github.com/vfg2006/pmax-campaign-manager/internal/usecases/provisioning"
)

const timeLayout = "2006-01-02 15:04:05"

// Labels prints the ranked labels. limit <= 0 prints every row.
func Labels(w io.Writer, stats []domain.LabelStat, limit int) error {
	if len(stats) == 0 {
		_, err := fmt.Fprintln(w, "no labels with impressions found")
		return err
	}

	shown := stats
	if limit > 0 && len(shown) > limit {
		shown = shown[:limit]
	}

	table := tablewriter.NewWriter(w)
	table.Header("#", "Label", "Impressions")
	for i, s := range shown {
		if err := table.Append(strconv.Itoa(i+1), s.Label, strconv.FormatInt(s.Impressions, 10)); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}

	if len(shown) < len(stats) {
		_, err := fmt.Fprintf(w, "  ... %d more\n", len(stats)-len(shown))
		return err
	}
	return nil
}

func Plans(w io.Writer, plans []domain.CampaignPlan) error {
	if len(plans) == 0 {
		_, err := fmt.Fprintln(w, "nothing to create")
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header("Label", "Campaign", "Impressions", "Daily budget", "tROAS")
	for _, p := range plans {
		if err := table.Append(
			p.Label,
			p.Name,
			strconv.FormatInt(p.Impressions, 10),
			formatMicros(p.DailyBudgetMicros),
			formatTargetROAS(p.TargetROAS),
		); err != nil {
			return err
		}
	}
	return table.Render()
}

// Provisioning prints one row per plan with the furthest step reached.
func Provisioning(w io.Writer, reports []*domain.ProvisionReport) error {
	table := tablewriter.NewWriter(w)
	table.Header("Label", "Campaign", "Result", "Resource", "Detail")
	for _, r := range reports {
		if r == nil {
			continue
		}
		if err := table.Append(r.Label, r.CampaignName, provisionResult(r), r.CampaignResource, provisionDetail(r)); err != nil {
			return err
		}
	}
	return table.Render()
}

func Reconciliation(w io.Writer, r *domain.ReconciliationReport) error {
	if r == nil {
		return nil
	}

	fmt.Fprintf(w, "run %s  customer %s  label index %d  prefix %q  mode %s\n",
		r.RunID, r.CustomerID, r.LabelIndex.Int(), r.Prefix, r.Mode)
	fmt.Fprintf(w, "window: last %d days  empty when impressions < %d and conversions < %d\n\n",
		r.DaysBack, r.Thresholds.MinImpressions, r.Thresholds.MinConversions)

	campaigns := tablewriter.NewWriter(w)
	campaigns.Header("Campaign", "Status", "Label", "Impressions", "Conversions", "Empty")
	for _, c := range r.Campaigns {
		if err := campaigns.Append(
			c.Campaign.Name,
			string(c.Campaign.Status),
			c.Label,
			strconv.FormatInt(c.Performance.Impressions, 10),
			strconv.FormatFloat(c.Performance.Conversions, 'f', 2, 64),
			yesNo(c.Empty),
		); err != nil {
			return err
		}
	}
	if err := campaigns.Render(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nnew labels (%d):\n", len(r.NewLabels))
	if err := Labels(w, r.NewLabels, 0); err != nil {
		return err
	}

	if len(r.Actions) > 0 {
		fmt.Fprintln(w, "\nactions:")
		actions := tablewriter.NewWriter(w)
		actions.Header("Action", "Label", "Target", "Outcome", "Error")
		for _, a := range r.Actions {
			if err := actions.Append(string(a.Kind), a.Label, actionTarget(a), string(a.Outcome), a.Error); err != nil {
				return err
			}
		}
		if err := actions.Render(); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "\ncreated %d  paused %d  failed %d\n", r.Created(), r.Paused(), r.Failures())
	return err
}

func Strategies(w io.Writer, results []provisioning.StrategyResult) error {
	table := tablewriter.NewWriter(w)
	table.Header("Label", "Strategy", "tROAS", "Resource", "Result")
	for _, s := range results {
		result := "exists"
		switch {
		case s.Error != "":
			result = "failed: " + s.Error
		case s.Created:
			result = "created"
		}
		if err := table.Append(s.Label, s.Name, strconv.FormatFloat(s.TargetROAS, 'f', 2, 64), s.ResourceName, result); err != nil {
			return err
		}
	}
	return table.Render()
}

// Inspection prints every listing-group filter of every asset group, grouped by asset group.
func Inspection(w io.Writer, inspection *domain.CampaignInspection) error {
	if inspection == nil || len(inspection.AssetGroups) == 0 {
		_, err := fmt.Fprintln(w, "campaign has no asset groups")
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header("Asset group", "Status", "Filter", "Type", "Dimension", "Value")
	for _, ag := range inspection.AssetGroups {
		filters := inspection.Filters[ag.ResourceName]
		if len(filters) == 0 {
			if err := table.Append(ag.Name, ag.Status, "-", "-", "-", "-"); err != nil {
				return err
			}
			continue
		}
		for _, f := range filters {
			if err := table.Append(ag.Name, ag.Status, lastSegment(f.ResourceName), f.Type, f.Index, f.Value); err != nil {
				return err
			}
		}
	}
	return table.Render()
}

func Runs(w io.Writer, runs []domain.RunRecord) error {
	table := tablewriter.NewWriter(w)
	table.Header("Run", "Customer", "Mode", "Started", "Campaigns", "Empty", "New", "Created", "Paused", "Failed")
	for _, r := range runs {
		if err := table.Append(
			r.ID,
			r.CustomerID,
			string(r.Mode),
			r.StartedAt.UTC().Format(timeLayout),
			strconv.Itoa(r.Campaigns),
			strconv.Itoa(r.EmptyCampaigns),
			strconv.Itoa(r.NewLabels),
			strconv.Itoa(r.Created),
			strconv.Itoa(r.Paused),
			strconv.Itoa(r.Failures),
		); err != nil {
			return err
		}
	}
	return table.Render()
}

// TargetROASByLabel prints a derived label -> tROAS map sorted by label.
func TargetROASByLabel(w io.Writer, targets map[string]float64) error {
	labels := make([]string, 0, len(targets))
	for label := range targets {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	table := tablewriter.NewWriter(w)
	table.Header("Label", "tROAS")
	for _, label := range labels {
		if err := table.Append(label, strconv.FormatFloat(targets[label], 'f', 2, 64)); err != nil {
			return err
		}
	}
	return table.Render()
}

func provisionResult(r *domain.ProvisionReport) string {
	step, failed := r.FailedStep()
	switch {
	case !failed && r.Activated:
		return "created (enabled)"
	case !failed:
		return "created (paused)"
	case r.Partial():
		return "partial: " + string(step)
	default:
		return "failed: " + string(step)
	}
}

func provisionDetail(r *domain.ProvisionReport) string {
	var details []string
	for _, s := range r.Steps {
		if s.Status == domain.StepStatusFailed && s.Error != "" {
			details = append(details, s.Error)
		}
	}
	details = append(details, r.Warnings...)
	return strings.Join(details, "; ")
}

func actionTarget(a domain.ReconciliationAction) string {
	switch {
	case a.Plan != nil:
		return a.Plan.Name
	case a.Campaign != nil:
		return a.Campaign.Name
	default:
		return ""
	}
}

func formatMicros(micros int64) string {
	return strconv.FormatFloat(float64(micros)/1_000_000, 'f', 2, 64)
}

func formatTargetROAS(v *float64) string {
	if v == nil {
		return "default"
	}
	return strconv.FormatFloat(*v, 'f', 2, 64)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func lastSegment(resource string) string {
	if i := strings.LastIndex(resource, "/"); i >= 0 {
		return resource[i+1:]
	}
	return resource
}
