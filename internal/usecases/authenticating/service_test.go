package authenticating

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/pmax-campaign-manager/internal/config"
)

func TestService_TokenRoundTrip(t *testing.T) {
	service := NewService(config.Auth{Secret: "s3cret", TokenTTL: time.Hour})

	token, err := service.GenerateToken("ops")
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "ops", claims.Subject)
	assert.Equal(t, AdminScope, claims.Scope)
}

func TestService_ValidateToken(t *testing.T) {
	issuedAt := time.Date(2025, 3, 10, 6, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		token    func(t *testing.T) string
		validate func(t *testing.T, err error)
	}{
		{
			name: "Expired tokens are rejected",
			token: func(t *testing.T) string {
				s := &Service{secret: []byte("s3cret"), ttl: time.Hour, now: func() time.Time { return issuedAt }}
				token, err := s.GenerateToken("ops")
				require.NoError(t, err)
				return token
			},
			validate: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrExpiredToken)
			},
		},
		{
			name: "Tokens signed with another secret are rejected",
			token: func(t *testing.T) string {
				s := &Service{secret: []byte("other"), ttl: time.Hour, now: time.Now}
				token, err := s.GenerateToken("ops")
				require.NoError(t, err)
				return token
			},
			validate: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrInvalidToken)
			},
		},
		{
			name: "Tokens without the admin scope are rejected",
			token: func(t *testing.T) string {
				claims := jwt.MapClaims{"sub": "ops", "iss": issuer, "exp": time.Now().Add(time.Hour).Unix()}
				token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("s3cret"))
				require.NoError(t, err)
				return token
			},
			validate: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrInvalidToken)
			},
		},
		{
			name:  "Garbage is rejected",
			token: func(*testing.T) string { return "not-a-token" },
			validate: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrInvalidToken)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewService(config.Auth{Secret: "s3cret", TokenTTL: time.Hour})
			_, err := service.ValidateToken(tt.token(t))
			tt.validate(t, err)
		})
	}
}

func TestService_Disabled(t *testing.T) {
	service := NewService(config.Auth{})

	assert.False(t, service.Enabled())
	_, err := service.GenerateToken("ops")
	assert.ErrorIs(t, err, ErrAuthDisabled)
	_, err = service.ValidateToken("x")
	assert.ErrorIs(t, err, ErrAuthDisabled)
}
