package adsclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/pmax-campaign-manager/infrastructure/integrator/googleads/adsdomain"
	"github.com/vfg2006/pmax-campaign-manager/internal/config"
	"github.com/vfg2006/pmax-campaign-manager/pkg/metrics"
	"github.com/vfg2006/pmax-campaign-manager/pkg/retry"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client is the query/mutate surface of the Google Ads API.
type Client interface {
	// Search runs a GAQL query and returns every row, following page tokens.
	Search(ctx context.Context, customerID, query string) ([]adsdomain.Row, error)
	// Mutate applies the operations atomically and returns one result per operation.
	Mutate(ctx context.Context, customerID string, ops []adsdomain.MutateOperation) ([]adsdomain.MutateResult, error)
}

// AccessTokenSource provides bearer tokens for each request.
type AccessTokenSource interface {
	AccessToken(ctx context.Context) (string, error)
}

type AdsClient struct {
	Cfg        config.GoogleAds
	HTTPClient *http.Client
	Tokens     AccessTokenSource
	Metrics    *metrics.Recorder
}

func NewClient(cfg config.GoogleAds, tokens AccessTokenSource, recorder *metrics.Recorder) Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	return &AdsClient{
		Cfg:        cfg,
		HTTPClient: &http.Client{Timeout: timeout},
		Tokens:     tokens,
		Metrics:    recorder,
	}
}

func (c *AdsClient) endpoint(customerID, method string) string {
	return fmt.Sprintf("%s/%s/customers/%s/%s",
		strings.TrimRight(c.Cfg.APIURL, "/"),
		c.Cfg.APIVersion,
		config.DigitsOnly(customerID),
		method,
	)
}

// post sends payload to customers/{id}/{method} and decodes the response into out.
func (c *AdsClient) post(ctx context.Context, customerID, method string, payload, out any) (err error) {
	defer func() { c.Metrics.ObserveRequest(method, err) }()

	body, err := json.Marshal(payload)
	if err != nil {
		return pkgerrors.Wrap(err, "encoding request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(customerID, method), bytes.NewReader(body))
	if err != nil {
		return pkgerrors.Wrap(err, "creating request")
	}

	token, err := c.Tokens.AccessToken(ctx)
	if err != nil {
		return err
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("developer-token", c.Cfg.DeveloperToken)
	if login := config.DigitsOnly(c.Cfg.LoginCustomerID); login != "" {
		req.Header.Set("login-customer-id", login)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		logrus.WithError(err).WithField("method", method).Error("Google Ads request failed")
		return classifyTransportError(ctx, err)
	}
	defer resp.Body.Close()

	data, err := HandleResponse(resp)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, out); err != nil {
		return pkgerrors.Wrapf(err, "decoding %s response", method)
	}
	return nil
}

// classifyTransportError tags network failures. A cancelled caller context is never retried.
func classifyTransportError(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return retry.Mark(err, retry.Permanent, "CANCELLED")
	}

	var netErr net.Error
	if (errors.As(err, &netErr) && netErr.Timeout()) || errors.Is(err, context.DeadlineExceeded) {
		return retry.Mark(err, retry.Transient, "DEADLINE_EXCEEDED")
	}

	return retry.Mark(err, retry.Transient, "UNAVAILABLE")
}
