package campaigning

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/pmax-campaign-manager/internal/domain"
	"github.com/vfg2006/pmax-campaign-manager/internal/usecases/campaigning/mocks"
	"github.com/vfg2006/pmax-campaign-manager/internal/usecases/planning"
	"github.com/vfg2006/pmax-campaign-manager/internal/usecases/provisioning"
)

var fixedNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

var discovered = []domain.LabelStat{
	{Label: "shoes", Impressions: 500},
	{Label: "bags", Impressions: 200},
}

func newTestService(ctrl *gomock.Controller) (*Service, *mocks.MockLabelDiscoverer, *mocks.MockCampaignCreator) {
	discoverer := mocks.NewMockLabelDiscoverer(ctrl)
	creator := mocks.NewMockCampaignCreator(ctrl)
	return &Service{
		discoverer: discoverer,
		creator:    creator,
		now:        func() time.Time { return fixedNow },
	}, discoverer, creator
}

func TestService_Preview(t *testing.T) {
	tests := []struct {
		name     string
		req      Request
		setup    func(d *mocks.MockLabelDiscoverer)
		validate func(t *testing.T, preview *Preview, err error)
	}{
		{
			name: "Plans every discovered label when nothing is selected",
			req:  Request{CustomerID: "123", Prefix: "PMax Feed", DailyBudget: 5},
			setup: func(d *mocks.MockLabelDiscoverer) {
				d.EXPECT().DiscoverLabels(gomock.Any(), "123", domain.LabelIndex0).Return(discovered, nil)
			},
			validate: func(t *testing.T, preview *Preview, err error) {
				require.NoError(t, err)
				require.Len(t, preview.Plans, 2)
				assert.Equal(t, "PMax Feed - shoes - 20250310120000", preview.Plans[0].Name)
				assert.Equal(t, "bags", preview.Plans[1].Label)
				assert.Empty(t, preview.Missing)
			},
		},
		{
			name: "Keeps the selection and reports labels without impressions",
			req:  Request{CustomerID: "123", SelectedLabels: []string{"bags", "hats"}, DailyBudget: 5},
			setup: func(d *mocks.MockLabelDiscoverer) {
				d.EXPECT().DiscoverLabels(gomock.Any(), "123", domain.LabelIndex0).Return(discovered, nil)
			},
			validate: func(t *testing.T, preview *Preview, err error) {
				require.NoError(t, err)
				require.Len(t, preview.Plans, 1)
				assert.Equal(t, "bags", preview.Plans[0].Label)
				assert.Equal(t, []string{"hats"}, preview.Missing)
			},
		},
		{
			name: "Fails when no selected label was discovered",
			req:  Request{CustomerID: "123", SelectedLabels: []string{"hats"}, DailyBudget: 5},
			setup: func(d *mocks.MockLabelDiscoverer) {
				d.EXPECT().DiscoverLabels(gomock.Any(), "123", domain.LabelIndex0).Return(discovered, nil)
			},
			validate: func(t *testing.T, preview *Preview, err error) {
				assert.ErrorIs(t, err, ErrNothingSelected)
				assert.Equal(t, []string{"hats"}, preview.Missing)
			},
		},
		{
			name: "Derived targets override the default",
			req:  Request{CustomerID: "123", DailyBudget: 5, TargetROAS: ptr(3.0), DeriveTargetROAS: true},
			setup: func(d *mocks.MockLabelDiscoverer) {
				d.EXPECT().DiscoverLabels(gomock.Any(), "123", domain.LabelIndex0).Return(discovered, nil)
				d.EXPECT().DeriveTargetROAS(gomock.Any(), "123").Return(map[string]float64{"shoes": 5}, nil)
			},
			validate: func(t *testing.T, preview *Preview, err error) {
				require.NoError(t, err)
				assert.Equal(t, 5.0, *preview.Plans[0].TargetROAS)
				assert.Equal(t, 3.0, *preview.Plans[1].TargetROAS)
			},
		},
		{
			name:  "Rejects a zero budget",
			req:   Request{CustomerID: "123"},
			setup: func(d *mocks.MockLabelDiscoverer) { d.EXPECT().DiscoverLabels(gomock.Any(), "123", domain.LabelIndex0).Return(discovered, nil) },
			validate: func(t *testing.T, _ *Preview, err error) {
				assert.ErrorIs(t, err, planning.ErrInvalidBudget)
			},
		},
		{
			name:  "Requires a customer",
			req:   Request{},
			setup: func(*mocks.MockLabelDiscoverer) {},
			validate: func(t *testing.T, _ *Preview, err error) {
				assert.ErrorIs(t, err, ErrCustomerRequired)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service, discoverer, _ := newTestService(ctrl)
			tt.setup(discoverer)

			preview, err := service.Preview(context.Background(), tt.req)
			tt.validate(t, preview, err)
		})
	}
}

func TestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	service, discoverer, creator := newTestService(ctrl)

	req := Request{
		CustomerID:     "123",
		LabelIndex:     domain.LabelIndex2,
		SelectedLabels: []string{"bags"},
		DailyBudget:    5,
		Provision:      domain.ProvisionOptions{CampaignType: domain.CampaignTypeFeedOnly},
	}

	discoverer.EXPECT().DiscoverLabels(gomock.Any(), "123", domain.LabelIndex2).Return(discovered, nil)
	creator.EXPECT().
		ResolveMerchantID(gomock.Any(), "123", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, opts domain.ProvisionOptions) (domain.ProvisionOptions, error) {
			assert.Equal(t, domain.LabelIndex2, opts.LabelIndex)
			opts.MerchantID = 77
			return opts, nil
		})
	creator.EXPECT().
		CreateAll(gomock.Any(), "123", gomock.Len(1), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, plans []domain.CampaignPlan, opts domain.ProvisionOptions) ([]*domain.ProvisionReport, error) {
			assert.Equal(t, int64(77), opts.MerchantID)
			return []*domain.ProvisionReport{domain.NewProvisionReport(plans[0])}, provisioning.ErrBatchIncomplete
		})

	result, err := service.Create(context.Background(), req)
	assert.ErrorIs(t, err, provisioning.ErrBatchIncomplete)
	require.NotNil(t, result)
	require.Len(t, result.Reports, 1)
	assert.Equal(t, "bags", result.Reports[0].Label)
}

func TestService_CreateStopsWhenTheMerchantIsUnknown(t *testing.T) {
	ctrl := gomock.NewController(t)
	service, discoverer, creator := newTestService(ctrl)

	discoverer.EXPECT().DiscoverLabels(gomock.Any(), "123", domain.LabelIndex0).Return(discovered, nil)
	creator.EXPECT().ResolveMerchantID(gomock.Any(), "123", gomock.Any()).Return(domain.ProvisionOptions{}, provisioning.ErrMerchantNotFound)

	result, err := service.Create(context.Background(), Request{CustomerID: "123", DailyBudget: 5})
	assert.ErrorIs(t, err, provisioning.ErrMerchantNotFound)
	assert.Len(t, result.Plans, 2)
	assert.Empty(t, result.Reports)
}

func ptr(v float64) *float64 { return &v }
