package reconciling

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/pmax-campaign-manager/internal/domain"
	"github.com/vfg2006/pmax-campaign-manager/internal/usecases/reconciling/mocks"
	"go.uber.org/mock/gomock"
)

const customerID = "1234567890"

var fixedNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

type monitorMocks struct {
	inventory   *mocks.MockCampaignInventory
	discoverer  *mocks.MockLabelDiscoverer
	provisioner *mocks.MockProvisioner
	pauser      *mocks.MockCampaignPauser
	recorder    *mocks.MockRunRecorder
}

func newTestMonitor(ctrl *gomock.Controller) (*Monitor, monitorMocks) {
	m := monitorMocks{
		inventory:   mocks.NewMockCampaignInventory(ctrl),
		discoverer:  mocks.NewMockLabelDiscoverer(ctrl),
		provisioner: mocks.NewMockProvisioner(ctrl),
		pauser:      mocks.NewMockCampaignPauser(ctrl),
		recorder:    mocks.NewMockRunRecorder(ctrl),
	}
	monitor := &Monitor{
		inventory:   m.inventory,
		discoverer:  m.discoverer,
		provisioner: m.provisioner,
		pauser:      m.pauser,
		recorder:    m.recorder,
		now:         func() time.Time { return fixedNow },
		newID:       func() (string, error) { return "run001", nil },
	}
	return monitor, m
}

var shoesCampaign = domain.ExistingCampaign{
	ID:           "11",
	Name:         "PMax Feed - shoes - 20250101000000",
	Status:       domain.CampaignStatusEnabled,
	ResourceName: "customers/1234567890/campaigns/11",
}

// expectState wires the read side of a run. Discovery always finds shoes and bags.
func expectState(m monitorMocks, campaigns []domain.ExistingCampaign, samples []domain.PerformanceSample, labels map[string]string) {
	m.inventory.EXPECT().ListCampaignsByPrefix(gomock.Any(), customerID, "PMax Feed").Return(campaigns, nil)
	m.inventory.EXPECT().CampaignPerformance(gomock.Any(), customerID, gomock.Any(), gomock.Any(), gomock.Any()).Return(samples, nil)
	m.inventory.EXPECT().CampaignLabels(gomock.Any(), customerID, domain.LabelIndex0, gomock.Any()).Return(labels, nil)
	m.discoverer.EXPECT().DiscoverLabels(gomock.Any(), customerID, domain.LabelIndex0).Return([]domain.LabelStat{
		{Label: "shoes", Impressions: 500},
		{Label: "bags", Impressions: 200},
	}, nil)
}

func baseOptions(mode domain.RunMode) RunOptions {
	return RunOptions{
		CustomerID:  customerID,
		LabelIndex:  domain.LabelIndex0,
		Prefix:      "PMax Feed",
		Thresholds:  domain.EmptyThresholds{MinImpressions: 100, MinConversions: 0},
		DaysBack:    7,
		Mode:        mode,
		DailyBudget: 5,
		Provision:   domain.ProvisionOptions{CampaignType: domain.CampaignTypeFeedOnly, MerchantID: 555},
	}
}

func TestMonitor_DryRunReportsNewLabelsWithoutMutating(t *testing.T) {
	ctrl := gomock.NewController(t)
	monitor, m := newTestMonitor(ctrl)

	var runs [2]*domain.ReconciliationReport
	for i := range runs {
		expectState(m,
			[]domain.ExistingCampaign{shoesCampaign},
			[]domain.PerformanceSample{{CampaignID: "11", Impressions: 1000, Conversions: 4}},
			map[string]string{"11": "shoes"},
		)
		m.recorder.EXPECT().SaveRun(gomock.Any(), gomock.Any()).Return(nil)

		report, err := monitor.Run(context.Background(), baseOptions(domain.RunModeDryRun))
		require.NoError(t, err)
		runs[i] = report
	}

	report := runs[0]
	assert.Equal(t, []domain.LabelStat{{Label: "bags", Impressions: 200}}, report.NewLabels)
	assert.Equal(t, []string{"shoes"}, report.BoundLabels)
	require.Len(t, report.Actions, 1)
	assert.Equal(t, domain.ActionCreateCampaign, report.Actions[0].Kind)
	assert.Equal(t, domain.OutcomePlanned, report.Actions[0].Outcome)
	assert.Equal(t, "PMax Feed - bags - 20250310120000", report.Actions[0].Plan.Name)
	assert.Zero(t, report.Created())

	assert.Equal(t, runs[0].NewLabels, runs[1].NewLabels)
}

func TestMonitor_ApplyCreatesOnlyTheNewLabel(t *testing.T) {
	ctrl := gomock.NewController(t)
	monitor, m := newTestMonitor(ctrl)

	expectState(m,
		[]domain.ExistingCampaign{shoesCampaign},
		[]domain.PerformanceSample{{CampaignID: "11", Impressions: 1000}},
		map[string]string{"11": "shoes"},
	)
	m.provisioner.EXPECT().
		Provision(gomock.Any(), customerID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, plan domain.CampaignPlan, opts domain.ProvisionOptions) (*domain.ProvisionReport, error) {
			assert.Equal(t, "bags", plan.Label)
			assert.Equal(t, int64(5_000_000), plan.DailyBudgetMicros)
			assert.Equal(t, domain.LabelIndex0, opts.LabelIndex)
			assert.Equal(t, int64(555), opts.MerchantID)
			return domain.NewProvisionReport(plan), nil
		})
	m.recorder.EXPECT().
		SaveRun(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, run *domain.RunRecord) error {
			assert.Equal(t, "run001", run.ID)
			assert.Equal(t, 1, run.Created)
			assert.Equal(t, 1, run.NewLabels)
			assert.NotEmpty(t, run.Report)
			return nil
		})

	report, err := monitor.Run(context.Background(), baseOptions(domain.RunModeApply))
	require.NoError(t, err)
	assert.Equal(t, 1, report.Created())
	assert.Zero(t, report.Paused())
	assert.NotNil(t, report.Actions[0].Provisioning)
}

func TestMonitor_AutoPause(t *testing.T) {
	idle := domain.ExistingCampaign{ID: "12", Name: "PMax Feed - hats", Status: domain.CampaignStatusEnabled, ResourceName: "customers/1234567890/campaigns/12"}
	alreadyPaused := domain.ExistingCampaign{ID: "13", Name: "PMax Feed - socks", Status: domain.CampaignStatusPaused, ResourceName: "customers/1234567890/campaigns/13"}
	campaigns := []domain.ExistingCampaign{shoesCampaign, idle, alreadyPaused}
	samples := []domain.PerformanceSample{
		{CampaignID: "11", Impressions: 900, Conversions: 3},
		{CampaignID: "12", Impressions: 30},
		{CampaignID: "12", Impressions: 20},
	}
	labels := map[string]string{"11": "shoes", "12": "hats", "13": "socks"}

	tests := []struct {
		name       string
		mode       domain.RunMode
		thresholds domain.EmptyThresholds
		setup      func(m monitorMocks)
		validate   func(t *testing.T, report *domain.ReconciliationReport)
	}{
		{
			name:       "Enabled empty campaigns are paused in apply mode",
			mode:       domain.RunModeApply,
			thresholds: domain.EmptyThresholds{MinImpressions: 100, MinConversions: 1},
			setup: func(m monitorMocks) {
				m.provisioner.EXPECT().Provision(gomock.Any(), customerID, gomock.Any(), gomock.Any()).Return(&domain.ProvisionReport{}, nil)
				m.pauser.EXPECT().PauseCampaign(gomock.Any(), customerID, idle.ResourceName).Return(nil)
			},
			validate: func(t *testing.T, report *domain.ReconciliationReport) {
				assert.Equal(t, []domain.ExistingCampaign{idle, alreadyPaused}, report.EmptyCampaigns)
				assert.Equal(t, 1, report.Paused())
				assert.Equal(t, int64(50), report.Campaigns[1].Performance.Impressions)
			},
		},
		{
			name:       "Pauses are only planned in dry run",
			mode:       domain.RunModeDryRun,
			thresholds: domain.EmptyThresholds{MinImpressions: 100, MinConversions: 1},
			setup:      func(m monitorMocks) {},
			validate: func(t *testing.T, report *domain.ReconciliationReport) {
				require.Len(t, report.Actions, 2)
				assert.Equal(t, domain.ActionPauseCampaign, report.Actions[1].Kind)
				assert.Equal(t, domain.OutcomePlanned, report.Actions[1].Outcome)
				assert.Equal(t, "hats", report.Actions[1].Label)
			},
		},
		{
			name:       "A zero conversion threshold never marks a campaign empty",
			mode:       domain.RunModeApply,
			thresholds: domain.EmptyThresholds{MinImpressions: 100, MinConversions: 0},
			setup: func(m monitorMocks) {
				m.provisioner.EXPECT().Provision(gomock.Any(), customerID, gomock.Any(), gomock.Any()).Return(&domain.ProvisionReport{}, nil)
			},
			validate: func(t *testing.T, report *domain.ReconciliationReport) {
				assert.Empty(t, report.EmptyCampaigns)
				assert.Zero(t, report.Paused())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			monitor, m := newTestMonitor(ctrl)
			monitor.recorder = nil

			expectState(m, campaigns, samples, labels)
			tt.setup(m)

			opts := baseOptions(tt.mode)
			opts.Thresholds = tt.thresholds
			opts.AutoPauseEmpty = true

			report, err := monitor.Run(context.Background(), opts)
			require.NoError(t, err)
			tt.validate(t, report)
		})
	}
}

func TestMonitor_QueriesTheTrailingWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	monitor, m := newTestMonitor(ctrl)
	monitor.recorder = nil

	m.inventory.EXPECT().ListCampaignsByPrefix(gomock.Any(), customerID, "PMax Feed").Return([]domain.ExistingCampaign{shoesCampaign}, nil)
	m.inventory.EXPECT().
		CampaignPerformance(gomock.Any(), customerID, []string{"11"}, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ []string, from, to time.Time) ([]domain.PerformanceSample, error) {
			assert.Equal(t, time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC), from)
			assert.Equal(t, time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC), to)
			return nil, nil
		})
	m.inventory.EXPECT().CampaignLabels(gomock.Any(), customerID, domain.LabelIndex0, []string{"11"}).Return(map[string]string{}, nil)
	m.discoverer.EXPECT().DiscoverLabels(gomock.Any(), customerID, domain.LabelIndex0).Return(nil, nil)

	report, err := monitor.Run(context.Background(), baseOptions(domain.RunModeDryRun))
	require.NoError(t, err)
	assert.Empty(t, report.NewLabels)
	assert.Empty(t, report.Actions)
}

func TestMonitor_Failures(t *testing.T) {
	t.Run("Inventory failures abort the run", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		monitor, m := newTestMonitor(ctrl)

		m.inventory.EXPECT().ListCampaignsByPrefix(gomock.Any(), customerID, gomock.Any()).Return(nil, assert.AnError)

		_, err := monitor.Run(context.Background(), baseOptions(domain.RunModeApply))
		assert.ErrorIs(t, err, ErrInventoryFailed)
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("A failed creation is reported and the run still saved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		monitor, m := newTestMonitor(ctrl)

		expectState(m, []domain.ExistingCampaign{shoesCampaign}, nil, map[string]string{"11": "shoes"})
		m.provisioner.EXPECT().Provision(gomock.Any(), customerID, gomock.Any(), gomock.Any()).Return(&domain.ProvisionReport{}, assert.AnError)
		m.recorder.EXPECT().SaveRun(gomock.Any(), gomock.Any()).Return(nil)

		report, err := monitor.Run(context.Background(), baseOptions(domain.RunModeApply))
		assert.ErrorIs(t, err, ErrActionsFailed)
		assert.Equal(t, domain.OutcomeFailed, report.Actions[0].Outcome)
		assert.Equal(t, 1, report.Failures())
	})

	t.Run("Options are validated before any call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		monitor, _ := newTestMonitor(ctrl)

		_, err := monitor.Run(context.Background(), RunOptions{})
		assert.ErrorIs(t, err, ErrCustomerRequired)

		_, err = monitor.Run(context.Background(), RunOptions{CustomerID: customerID, LabelIndex: 9})
		assert.ErrorIs(t, err, domain.ErrInvalidLabelIndex)
	})
}

func TestMonitor_ResolvesTheLinkedMerchant(t *testing.T) {
	unlinked := func(mode domain.RunMode) RunOptions {
		opts := baseOptions(mode)
		opts.Provision.MerchantID = 0
		return opts
	}

	tests := []struct {
		name     string
		opts     RunOptions
		setup    func(m monitorMocks)
		validate func(t *testing.T, report *domain.ReconciliationReport, err error)
	}{
		{
			name: "Feed-only creations use the linked merchant center account",
			opts: unlinked(domain.RunModeApply),
			setup: func(m monitorMocks) {
				m.provisioner.EXPECT().
					ResolveMerchantID(gomock.Any(), customerID, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, opts domain.ProvisionOptions) (domain.ProvisionOptions, error) {
						assert.Zero(t, opts.MerchantID)
						assert.Equal(t, domain.LabelIndex0, opts.LabelIndex)
						opts.MerchantID = 777
						return opts, nil
					})
				m.provisioner.EXPECT().
					Provision(gomock.Any(), customerID, gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, plan domain.CampaignPlan, opts domain.ProvisionOptions) (*domain.ProvisionReport, error) {
						assert.Equal(t, int64(777), opts.MerchantID)
						return domain.NewProvisionReport(plan), nil
					})
			},
			validate: func(t *testing.T, report *domain.ReconciliationReport, err error) {
				require.NoError(t, err)
				assert.Equal(t, 1, report.Created())
			},
		},
		{
			name: "A missing merchant fails every creation without provisioning",
			opts: unlinked(domain.RunModeApply),
			setup: func(m monitorMocks) {
				m.provisioner.EXPECT().
					ResolveMerchantID(gomock.Any(), customerID, gomock.Any()).
					Return(domain.ProvisionOptions{}, assert.AnError)
			},
			validate: func(t *testing.T, report *domain.ReconciliationReport, err error) {
				assert.ErrorIs(t, err, ErrActionsFailed)
				require.Len(t, report.Actions, 1)
				assert.Equal(t, domain.OutcomeFailed, report.Actions[0].Outcome)
				assert.Equal(t, assert.AnError.Error(), report.Actions[0].Error)
			},
		},
		{
			name:  "Dry runs never look the merchant up",
			opts:  unlinked(domain.RunModeDryRun),
			setup: func(m monitorMocks) {},
			validate: func(t *testing.T, report *domain.ReconciliationReport, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.OutcomePlanned, report.Actions[0].Outcome)
			},
		},
		{
			name: "An explicit merchant id skips the lookup",
			opts: baseOptions(domain.RunModeApply),
			setup: func(m monitorMocks) {
				m.provisioner.EXPECT().Provision(gomock.Any(), customerID, gomock.Any(), gomock.Any()).Return(&domain.ProvisionReport{}, nil)
			},
			validate: func(t *testing.T, report *domain.ReconciliationReport, err error) {
				require.NoError(t, err)
				assert.Equal(t, 1, report.Created())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			monitor, m := newTestMonitor(ctrl)
			monitor.recorder = nil

			expectState(m, []domain.ExistingCampaign{shoesCampaign}, nil, map[string]string{"11": "shoes"})
			tt.setup(m)

			report, err := monitor.Run(context.Background(), tt.opts)
			tt.validate(t, report, err)
		})
	}
}
