package domain

import "time"

type RunMode string

const (
	RunModeDryRun RunMode = "dry_run"
	RunModeApply  RunMode = "apply"
)

type ActionKind string

const (
	ActionCreateCampaign ActionKind = "create_campaign"
	ActionPauseCampaign  ActionKind = "pause_campaign"
)

type ActionOutcome string

const (
	// OutcomePlanned is the outcome of every action in a dry run.
	OutcomePlanned ActionOutcome = "planned"
	OutcomeApplied ActionOutcome = "applied"
	OutcomeFailed  ActionOutcome = "failed"
	OutcomeSkipped ActionOutcome = "skipped"
)

// CampaignAssessment is the monitor's view of one existing campaign.
type CampaignAssessment struct {
	Campaign    ExistingCampaign  `json:"campaign"`
	Performance PerformanceSample `json:"performance"`
	Label       string            `json:"label,omitempty"`
	Empty       bool              `json:"empty"`
}

// ReconciliationAction is a mutation decided by the analysis. Plan is set for creations.
type ReconciliationAction struct {
	Kind         ActionKind        `json:"kind"`
	Label        string            `json:"label,omitempty"`
	Impressions  int64             `json:"impressions,omitempty"`
	Plan         *CampaignPlan     `json:"plan,omitempty"`
	Campaign     *ExistingCampaign `json:"campaign,omitempty"`
	Outcome      ActionOutcome     `json:"outcome"`
	Error        string            `json:"error,omitempty"`
	Provisioning *ProvisionReport  `json:"provisioning,omitempty"`
}

type ReconciliationReport struct {
	RunID          string                 `json:"run_id"`
	CustomerID     string                 `json:"customer_id"`
	LabelIndex     LabelIndex             `json:"label_index"`
	Prefix         string                 `json:"prefix"`
	Mode           RunMode                `json:"mode"`
	Thresholds     EmptyThresholds        `json:"thresholds"`
	DaysBack       int                    `json:"days_back"`
	StartedAt      time.Time              `json:"started_at"`
	CompletedAt    time.Time              `json:"completed_at"`
	Campaigns      []CampaignAssessment   `json:"campaigns"`
	BoundLabels    []string               `json:"bound_labels"`
	Discovered     []LabelStat            `json:"discovered"`
	NewLabels      []LabelStat            `json:"new_labels"`
	EmptyCampaigns []ExistingCampaign     `json:"empty_campaigns"`
	Actions        []ReconciliationAction `json:"actions"`
}

func (r *ReconciliationReport) count(kind ActionKind, outcome ActionOutcome) int {
	n := 0
	for _, a := range r.Actions {
		if a.Kind == kind && a.Outcome == outcome {
			n++
		}
	}
	return n
}

func (r *ReconciliationReport) Created() int {
	return r.count(ActionCreateCampaign, OutcomeApplied)
}

func (r *ReconciliationReport) Paused() int {
	return r.count(ActionPauseCampaign, OutcomeApplied)
}

func (r *ReconciliationReport) Failures() int {
	return r.count(ActionCreateCampaign, OutcomeFailed) + r.count(ActionPauseCampaign, OutcomeFailed)
}
