package adsclient

import (
	"context"
	"sync"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/pmax-campaign-manager/internal/config"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"
)

const adwordsScope = "https://www.googleapis.com/auth/adwords"

// TokenManager mints access tokens from the configured refresh token and caches them until expiry.
type TokenManager struct {
	mu     sync.Mutex
	source oauth2.TokenSource
	token  *oauth2.Token
}

func NewTokenManager(cfg config.GoogleAds) *TokenManager {
	endpoint := endpoints.Google
	if cfg.TokenURL != "" {
		endpoint.TokenURL = cfg.TokenURL
	}

	oauthCfg := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Endpoint:     endpoint,
		Scopes:       []string{adwordsScope},
	}

	return &TokenManager{
		source: oauthCfg.TokenSource(context.Background(), &oauth2.Token{RefreshToken: cfg.RefreshToken}),
	}
}

// NewStaticTokenManager always returns the given access token.
func NewStaticTokenManager(accessToken string) *TokenManager {
	return &TokenManager{source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})}
}

func (tm *TokenManager) AccessToken(ctx context.Context) (string, error) {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	if tm.token.Valid() {
		return tm.token.AccessToken, nil
	}

	token, err := tm.source.Token()
	if err != nil {
		logrus.WithError(err).Error("Could not refresh the Google Ads access token")
		return "", pkgerrors.Wrap(err, "refreshing google ads access token")
	}

	if tm.token != nil {
		logrus.WithField("expires_at", token.Expiry).Debug("Google Ads access token refreshed")
	}
	tm.token = token
	return token.AccessToken, nil
}
