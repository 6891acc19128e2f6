package provisioning

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/pmax-campaign-manager/internal/domain"
	"github.com/vfg2006/pmax-campaign-manager/internal/usecases/provisioning/mocks"
	"go.uber.org/mock/gomock"
)

func TestService_AttachListingGroup(t *testing.T) {
	const assetGroup = "customers/1/assetGroups/9"

	existingTree := []domain.ListingGroupFilter{
		{ResourceName: "f/1", Type: "SUBDIVISION"},
		{ResourceName: "f/2", Type: "UNIT_INCLUDED", Index: "INDEX0", Value: "shoes"},
		{ResourceName: "f/3", Type: "UNIT_EXCLUDED", Index: "INDEX0"},
	}

	tests := []struct {
		name     string
		value    string
		setup    func(gw *mocks.MockGateway)
		validate func(t *testing.T, result *AttachResult, err error)
	}{
		{
			name:  "Creates the tree on an empty asset group",
			value: "shoes",
			setup: func(gw *mocks.MockGateway) {
				gw.EXPECT().ListListingGroupFilters(gomock.Any(), customerID, assetGroup).Return(nil, nil)
				gw.EXPECT().CreateListingGroupTree(gomock.Any(), customerID, assetGroup, gomock.Any()).Return([]string{"a", "b", "c"}, nil)
			},
			validate: func(t *testing.T, result *AttachResult, err error) {
				require.NoError(t, err)
				assert.True(t, result.Created)
				assert.Equal(t, []string{"a", "b", "c"}, result.Resources)
			},
		},
		{
			name:  "Does nothing when the same tree is already attached",
			value: "shoes",
			setup: func(gw *mocks.MockGateway) {
				gw.EXPECT().ListListingGroupFilters(gomock.Any(), customerID, assetGroup).Return(existingTree, nil)
			},
			validate: func(t *testing.T, result *AttachResult, err error) {
				require.NoError(t, err)
				assert.False(t, result.Created)
				assert.Equal(t, []string{"f/1", "f/2", "f/3"}, result.Resources)
			},
		},
		{
			name:  "Refuses to overwrite a tree for another label",
			value: "bags",
			setup: func(gw *mocks.MockGateway) {
				gw.EXPECT().ListListingGroupFilters(gomock.Any(), customerID, assetGroup).Return(existingTree, nil)
			},
			validate: func(t *testing.T, result *AttachResult, err error) {
				assert.ErrorIs(t, err, domain.ErrListingGroupConflict)
				assert.Nil(t, result)
			},
		},
		{
			name:  "Rejects an empty label value",
			value: "",
			setup: func(gw *mocks.MockGateway) {},
			validate: func(t *testing.T, result *AttachResult, err error) {
				assert.ErrorIs(t, err, domain.ErrEmptyListingValue)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			gw := mocks.NewMockGateway(ctrl)
			tt.setup(gw)

			result, err := newTestService(gw, nil).AttachListingGroup(context.Background(), customerID, assetGroup, domain.LabelIndex0, tt.value)
			tt.validate(t, result, err)
		})
	}
}

func TestService_FirstAssetGroup(t *testing.T) {
	tests := []struct {
		name     string
		groups   []domain.AssetGroup
		validate func(t *testing.T, resource string, err error)
	}{
		{
			name:   "Returns the first asset group of the campaign",
			groups: []domain.AssetGroup{{ResourceName: "assetGroups/9"}, {ResourceName: "assetGroups/10"}},
			validate: func(t *testing.T, resource string, err error) {
				require.NoError(t, err)
				assert.Equal(t, "assetGroups/9", resource)
			},
		},
		{
			name: "Fails when the campaign has no asset group",
			validate: func(t *testing.T, resource string, err error) {
				assert.ErrorIs(t, err, ErrAssetGroupMissing)
				assert.Empty(t, resource)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			gw := mocks.NewMockGateway(ctrl)
			gw.EXPECT().ListAssetGroups(gomock.Any(), customerID, "campaigns/1").Return(tt.groups, nil)

			resource, err := newTestService(gw, nil).FirstAssetGroup(context.Background(), customerID, "campaigns/1")
			tt.validate(t, resource, err)
		})
	}
}

func TestService_InspectCampaign(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockGateway(ctrl)

	gw.EXPECT().ListAssetGroups(gomock.Any(), customerID, "campaigns/1").Return([]domain.AssetGroup{
		{ID: "9", Name: "AG", ResourceName: "assetGroups/9"},
	}, nil)
	gw.EXPECT().ListListingGroupFilters(gomock.Any(), customerID, "assetGroups/9").Return([]domain.ListingGroupFilter{
		{ResourceName: "f/1", Type: "SUBDIVISION"},
	}, nil)

	inspection, err := newTestService(gw, nil).InspectCampaign(context.Background(), customerID, "campaigns/1")
	require.NoError(t, err)
	assert.Len(t, inspection.AssetGroups, 1)
	assert.Len(t, inspection.Filters["assetGroups/9"], 1)
}

func TestService_EnsurePortfolioStrategies(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockGateway(ctrl)

	gw.EXPECT().FindBiddingStrategyByName(gomock.Any(), customerID, "tROAS for label0=bags (2.00)").
		Return(&domain.BiddingStrategy{ResourceName: "strategies/1"}, nil)
	gw.EXPECT().FindBiddingStrategyByName(gomock.Any(), customerID, "tROAS for label0=shoes (6.67)").Return(nil, nil)
	gw.EXPECT().CreatePortfolioTargetROAS(gomock.Any(), customerID, "tROAS for label0=shoes (6.67)", 6.67).Return("strategies/2", nil)

	results, err := newTestService(gw, nil).EnsurePortfolioStrategies(context.Background(), customerID, map[string]float64{
		"shoes": 6.67,
		"bags":  2,
	})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, StrategyResult{Label: "bags", Name: "tROAS for label0=bags (2.00)", TargetROAS: 2, ResourceName: "strategies/1"}, results[0])
	assert.True(t, results[1].Created)
	assert.Equal(t, "strategies/2", results[1].ResourceName)
}
