// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/wastewise/internal/platform/sec"
)

func testTokenConfig() sec.TokenConfig {
	return sec.TokenConfig{
		AccessSecret:  "access-secret",
		AccessTTL:     15 * time.Minute,
		RefreshSecret: "refresh-secret",
		RefreshTTL:    24 * time.Hour,
		Issuer:        "wastewise.test",
	}
}

/*
TestNewTokenIssuer_Config rejects unusable token configurations.
*/
func TestNewTokenIssuer_Config(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*sec.TokenConfig)
	}{
		{"missing_access_secret", func(c *sec.TokenConfig) { c.AccessSecret = "" }},
		{"missing_refresh_secret", func(c *sec.TokenConfig) { c.RefreshSecret = "" }},
		{"shared_secret", func(c *sec.TokenConfig) { c.RefreshSecret = c.AccessSecret }},
		{"zero_ttl", func(c *sec.TokenConfig) { c.AccessTTL = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testTokenConfig()
			tt.mutate(&cfg)

			_, err := sec.NewTokenIssuer(cfg)
			assert.Error(t, err)
		})
	}
}

/*
TestTokenIssuer_AccessRoundTrip verifies the access token claim set.
*/
func TestTokenIssuer_AccessRoundTrip(t *testing.T) {
	issuer, err := sec.NewTokenIssuer(testTokenConfig())
	require.NoError(t, err)

	token, err := issuer.IssueAccessToken(sec.Identity{
		Subject:     "acc-1",
		Kind:        sec.KindUser,
		Email:       "a@x.com",
		DisplayName: "alice",
	})
	require.NoError(t, err)

	claims, err := issuer.VerifyAccessToken(token, sec.KindUser)
	require.NoError(t, err)
	assert.Equal(t, "acc-1", claims.Subject)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, "alice", claims.DisplayName)
}

/*
TestTokenIssuer_Rejections covers every way a token must fail verification.
*/
func TestTokenIssuer_Rejections(t *testing.T) {
	issuer, err := sec.NewTokenIssuer(testTokenConfig())
	require.NoError(t, err)

	// Minted two hours ago with a 15 minute lifetime.
	stale, err := sec.NewTokenIssuer(testTokenConfig(), sec.WithClock(func() time.Time {
		return time.Now().Add(-2 * time.Hour)
	}))
	require.NoError(t, err)

	userAccess, err := issuer.IssueAccessToken(sec.Identity{Subject: "acc-1", Kind: sec.KindUser})
	require.NoError(t, err)
	facilityAccess, err := issuer.IssueAccessToken(sec.Identity{Subject: "fac-1", Kind: sec.KindFacility})
	require.NoError(t, err)
	userRefresh, err := issuer.IssueRefreshToken("acc-1", sec.KindUser)
	require.NoError(t, err)
	expiredAccess, err := stale.IssueAccessToken(sec.Identity{Subject: "acc-1", Kind: sec.KindUser})
	require.NoError(t, err)

	foreign, err := sec.NewTokenIssuer(sec.TokenConfig{
		AccessSecret: "other", AccessTTL: time.Minute,
		RefreshSecret: "other-refresh", RefreshTTL: time.Hour,
		Issuer: "wastewise.test",
	})
	require.NoError(t, err)
	forged, err := foreign.IssueAccessToken(sec.Identity{Subject: "acc-1", Kind: sec.KindUser})
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"expired", expiredAccess},
		{"other_kind", facilityAccess},
		{"refresh_used_as_access", userRefresh},
		{"wrong_secret", forged},
		{"garbage", "not.a.jwt"},
		{"tampered", userAccess + "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := issuer.VerifyAccessToken(tt.token, sec.KindUser)
			assert.ErrorIs(t, err, sec.ErrInvalidToken)
		})
	}
}

/*
TestTokenIssuer_RefreshRoundTrip verifies that refresh tokens verify only under their own secret and kind.
*/
func TestTokenIssuer_RefreshRoundTrip(t *testing.T) {
	issuer, err := sec.NewTokenIssuer(testTokenConfig())
	require.NoError(t, err)

	token, err := issuer.IssueRefreshToken("fac-9", sec.KindFacility)
	require.NoError(t, err)

	claims, err := issuer.VerifyRefreshToken(token, sec.KindFacility)
	require.NoError(t, err)
	assert.Equal(t, "fac-9", claims.Subject)

	_, err = issuer.VerifyRefreshToken(token, sec.KindUser)
	assert.ErrorIs(t, err, sec.ErrInvalidToken)

	_, err = issuer.VerifyAccessToken(token, sec.KindFacility)
	assert.ErrorIs(t, err, sec.ErrInvalidToken)
}
