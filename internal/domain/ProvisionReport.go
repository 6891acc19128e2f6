package domain

type ProvisionStep string

const (
	StepBudget       ProvisionStep = "budget"
	StepCampaign     ProvisionStep = "campaign"
	StepCriteria     ProvisionStep = "criteria"
	StepAssetGroup   ProvisionStep = "asset_group"
	StepListingGroup ProvisionStep = "listing_group"
	StepActivation   ProvisionStep = "activation"
)

type StepStatus string

const (
	StepStatusOK      StepStatus = "ok"
	StepStatusFailed  StepStatus = "failed"
	StepStatusSkipped StepStatus = "skipped"
)

type StepResult struct {
	Step         ProvisionStep `json:"step"`
	Status       StepStatus    `json:"status"`
	ResourceName string        `json:"resource_name,omitempty"`
	Error        string        `json:"error,omitempty"`
}

// ProvisionReport tells exactly which provisioning steps of a plan succeeded.
type ProvisionReport struct {
	Label              string       `json:"label"`
	CampaignName       string       `json:"campaign_name"`
	BudgetResource     string       `json:"budget_resource,omitempty"`
	CampaignResource   string       `json:"campaign_resource,omitempty"`
	AssetGroupResource string       `json:"asset_group_resource,omitempty"`
	TargetROAS         float64      `json:"target_roas"`
	Activated          bool         `json:"activated"`
	Steps              []StepResult `json:"steps"`
	Warnings           []string     `json:"warnings,omitempty"`
}

func NewProvisionReport(plan CampaignPlan) *ProvisionReport {
	return &ProvisionReport{Label: plan.Label, CampaignName: plan.Name}
}

func (r *ProvisionReport) Succeed(step ProvisionStep, resource string) {
	r.Steps = append(r.Steps, StepResult{Step: step, Status: StepStatusOK, ResourceName: resource})
}

func (r *ProvisionReport) Fail(step ProvisionStep, err error) {
	result := StepResult{Step: step, Status: StepStatusFailed}
	if err != nil {
		result.Error = err.Error()
	}
	r.Steps = append(r.Steps, result)
}

func (r *ProvisionReport) Skip(step ProvisionStep) {
	r.Steps = append(r.Steps, StepResult{Step: step, Status: StepStatusSkipped})
}

func (r *ProvisionReport) Warn(message string) {
	r.Warnings = append(r.Warnings, message)
}

// FailedStep returns the first failed step, if any.
func (r *ProvisionReport) FailedStep() (ProvisionStep, bool) {
	for _, s := range r.Steps {
		if s.Status == StepStatusFailed {
			return s.Step, true
		}
	}
	return "", false
}

func (r *ProvisionReport) Succeeded() bool {
	_, failed := r.FailedStep()
	return !failed
}

// Partial reports a failure after the campaign already exists on the platform.
func (r *ProvisionReport) Partial() bool {
	step, failed := r.FailedStep()
	return failed && step != StepBudget
}
