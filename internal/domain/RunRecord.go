package domain

import "time"

// RunRecord is the persisted summary of a reconciliation run.
type RunRecord struct {
	ID             string    `json:"id"`
	CustomerID     string    `json:"customer_id"`
	LabelIndex     int       `json:"label_index"`
	Prefix         string    `json:"prefix"`
	Mode           RunMode   `json:"mode"`
	StartedAt      time.Time `json:"started_at"`
	CompletedAt    time.Time `json:"completed_at"`
	Campaigns      int       `json:"campaigns"`
	EmptyCampaigns int       `json:"empty_campaigns"`
	NewLabels      int       `json:"new_labels"`
	Created        int       `json:"created"`
	Paused         int       `json:"paused"`
	Failures       int       `json:"failures"`
	Report         []byte    `json:"-"`
}

func NewRunRecord(r *ReconciliationReport, report []byte) *RunRecord {
	return &RunRecord{
		ID:             r.RunID,
		CustomerID:     r.CustomerID,
		LabelIndex:     r.LabelIndex.Int(),
		Prefix:         r.Prefix,
		Mode:           r.Mode,
		StartedAt:      r.StartedAt,
		CompletedAt:    r.CompletedAt,
		Campaigns:      len(r.Campaigns),
		EmptyCampaigns: len(r.EmptyCampaigns),
		NewLabels:      len(r.NewLabels),
		Created:        r.Created(),
		Paused:         r.Paused(),
		Failures:       r.Failures(),
		Report:         report,
	}
}
