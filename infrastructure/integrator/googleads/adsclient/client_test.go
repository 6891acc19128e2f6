package adsclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/pmax-campaign-manager/infrastructure/integrator/googleads/adsdomain"
	"github.com/vfg2006/pmax-campaign-manager/internal/config"
	"github.com/vfg2006/pmax-campaign-manager/pkg/retry"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *AdsClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(config.GoogleAds{
		APIURL:          server.URL,
		APIVersion:      "v21",
		DeveloperToken:  "dev-token",
		LoginCustomerID: "111-222-3333",
		Timeout:         5 * time.Second,
	}, NewStaticTokenManager("access-token"), nil).(*AdsClient)
}

func TestSearchFollowsPageTokens(t *testing.T) {
	var queries []adsdomain.SearchRequest

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v21/customers/1234567890/googleAds:search", r.URL.Path)
		assert.Equal(t, "Bearer access-token", r.Header.Get("Authorization"))
		assert.Equal(t, "dev-token", r.Header.Get("developer-token"))
		assert.Equal(t, "1112223333", r.Header.Get("login-customer-id"))

		var req adsdomain.SearchRequest
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &req))
		queries = append(queries, req)

		if req.PageToken == "" {
			_, _ = w.Write([]byte(`{"results":[{"segments":{"productCustomAttribute0":"shoes"},"metrics":{"impressions":"500"}}],"nextPageToken":"p2"}`))
			return
		}
		_, _ = w.Write([]byte(`{"results":[{"segments":{"productCustomAttribute0":"bags"},"metrics":{"impressions":"200"}}]}`))
	})

	rows, err := client.Search(context.Background(), "123-456-7890", "SELECT x FROM y")
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, "shoes", rows[0].Segments.ProductCustomAttribute0)
	assert.Equal(t, adsdomain.Int64Value(200), rows[1].Metrics.Impressions)
	require.Len(t, queries, 2)
	assert.Equal(t, "p2", queries[1].PageToken)
	assert.Equal(t, "SELECT x FROM y", queries[1].Query)
}

func TestMutateReturnsResultsInOrder(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v21/customers/1234567890/googleAds:mutate", r.URL.Path)

		var req adsdomain.MutateRequest
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &req))
		require.Len(t, req.MutateOperations, 2)
		assert.Equal(t, "ENABLED", req.MutateOperations[0].CampaignOperation.Update.Status)
		assert.Equal(t, "status", req.MutateOperations[1].AssetGroupOperation.UpdateMask)

		_, _ = w.Write([]byte(`{"mutateOperationResponses":[
			{"campaignResult":{"resourceName":"customers/1234567890/campaigns/1"}},
			{"assetGroupResult":{"resourceName":"customers/1234567890/assetGroups/2"}}
		]}`))
	})

	results, err := client.Mutate(context.Background(), "1234567890", []adsdomain.MutateOperation{
		{CampaignOperation: &adsdomain.CampaignOperation{
			Update:     &adsdomain.Campaign{ResourceName: "customers/1234567890/campaigns/1", Status: "ENABLED"},
			UpdateMask: "status",
		}},
		{AssetGroupOperation: &adsdomain.AssetGroupOperation{
			Update:     &adsdomain.AssetGroup{ResourceName: "customers/1234567890/assetGroups/2", Status: "ENABLED"},
			UpdateMask: "status",
		}},
	})
	require.NoError(t, err)

	assert.Equal(t, []adsdomain.MutateResult{
		{Kind: "campaignResult", ResourceName: "customers/1234567890/campaigns/1"},
		{Kind: "assetGroupResult", ResourceName: "customers/1234567890/assetGroups/2"},
	}, results)
}

func TestErrorClassification(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantClass  retry.Class
		wantReason string
		wantCode   string
	}{
		{
			name:   "Concurrent modification database error is transient",
			status: http.StatusConflict,
			body: `{"error":{"code":409,"message":"Multiple requests were attempting to modify the same resource at once.","status":"ABORTED",
				"details":[{"@type":"type.googleapis.com/google.ads.googleads.v21.errors.GoogleAdsFailure",
				"errors":[{"errorCode":{"databaseError":"CONCURRENT_MODIFICATION"},"message":"Multiple requests were attempting to modify the same resource at once."}],
				"requestId":"req-1"}]}}`,
			wantClass:  retry.Transient,
			wantReason: "CONCURRENT_MODIFICATION",
			wantCode:   "databaseError.CONCURRENT_MODIFICATION",
		},
		{
			name:       "Service unavailable status is transient",
			status:     http.StatusServiceUnavailable,
			body:       `{"error":{"code":503,"message":"The service is currently unavailable.","status":"UNAVAILABLE"}}`,
			wantClass:  retry.Transient,
			wantReason: "UNAVAILABLE",
		},
		{
			name:   "Quota error is transient",
			status: http.StatusTooManyRequests,
			body: `{"error":{"code":429,"message":"Too many requests","status":"RESOURCE_EXHAUSTED",
				"details":[{"errors":[{"errorCode":{"quotaError":"RESOURCE_EXHAUSTED"},"message":"Too many requests"}]}]}}`,
			wantClass:  retry.Transient,
			wantReason: "RESOURCE_EXHAUSTED",
			wantCode:   "quotaError.RESOURCE_EXHAUSTED",
		},
		{
			name:       "Internal status is transient",
			status:     http.StatusInternalServerError,
			body:       `{"error":{"code":500,"message":"Internal error encountered.","status":"INTERNAL"}}`,
			wantClass:  retry.Transient,
			wantReason: "INTERNAL_ERROR",
		},
		{
			name:   "Validation error is permanent",
			status: http.StatusBadRequest,
			body: `{"error":{"code":400,"message":"Request contains an invalid argument.","status":"INVALID_ARGUMENT",
				"details":[{"errors":[{"errorCode":{"fieldError":"REQUIRED"},"message":"The required field was not present."}]}]}}`,
			wantClass: retry.Permanent,
			wantCode:  "fieldError.REQUIRED",
		},
		{
			name:       "Non json gateway timeout is transient",
			status:     http.StatusGatewayTimeout,
			body:       `upstream timed out`,
			wantClass:  retry.Transient,
			wantReason: "DEADLINE_EXCEEDED",
		},
		{
			name:      "Permission denied is permanent",
			status:    http.StatusForbidden,
			body:      `{"error":{"code":403,"message":"The caller does not have permission","status":"PERMISSION_DENIED"}}`,
			wantClass: retry.Permanent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.Search(context.Background(), "1234567890", "SELECT campaign.id FROM campaign")
			require.Error(t, err)

			class, reason := retry.ClassOf(err)
			assert.Equal(t, tt.wantClass, class)
			assert.Equal(t, tt.wantReason, reason)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.HTTPStatus)
			assert.Equal(t, tt.wantCode, apiErr.Code)
		})
	}
}

func TestTransportErrorsAreTransientUnlessCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient(config.GoogleAds{APIURL: url, APIVersion: "v21"}, NewStaticTokenManager("t"), nil)

	_, err := client.Search(context.Background(), "1", "SELECT campaign.id FROM campaign")
	require.Error(t, err)
	assert.True(t, retry.IsTransient(err))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = client.Search(ctx, "1", "SELECT campaign.id FROM campaign")
	require.Error(t, err)
	assert.False(t, retry.IsTransient(err))
}
