// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sec provides cryptographic primitives and token management.
//
// # Architecture
//
// This package isolates security-sensitive code (password hashing, JWT
// signing) from the account logic. Services receive a [*Hasher] and a
// [*TokenIssuer] through their constructors.
package sec

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken is returned by the verify methods for any signature,
// expiry, audience or format failure. Callers map it to a client message.
var ErrInvalidToken = errors.New("sec: invalid token")

// TokenConfig holds the secrets and lifetimes of the two token kinds.
type TokenConfig struct {
	AccessSecret  string
	AccessTTL     time.Duration
	RefreshSecret string
	RefreshTTL    time.Duration
	Issuer        string
}

// Identity is the subject material of an access token.
type Identity struct {
	Subject     string
	Kind        Kind
	Email       string
	DisplayName string
}

// AccessClaims is the payload of an access token.
type AccessClaims struct {
	jwt.RegisteredClaims

	Email       string `json:"email,omitempty"`
	DisplayName string `json:"name,omitempty"`
}

// RefreshClaims is the payload of a refresh token: the subject only.
type RefreshClaims struct {
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies HS256 access and refresh tokens.
type TokenIssuer struct {
	config TokenConfig
	now    func() time.Time
}

// IssuerOption customizes a [TokenIssuer].
type IssuerOption func(*TokenIssuer)

// WithClock overrides the time source used when minting tokens.
func WithClock(now func() time.Time) IssuerOption {
	return func(issuer *TokenIssuer) { issuer.now = now }
}

// NewTokenIssuer validates config and returns an issuer.
//
// Both secrets must be set and must differ so that a refresh token can never
// pass as an access token.
func NewTokenIssuer(config TokenConfig, opts ...IssuerOption) (*TokenIssuer, error) {
	if config.AccessSecret == "" || config.RefreshSecret == "" {
		return nil, errors.New("sec: access and refresh secrets are required")
	}
	if config.AccessSecret == config.RefreshSecret {
		return nil, errors.New("sec: access and refresh secrets must differ")
	}
	if config.AccessTTL <= 0 || config.RefreshTTL <= 0 {
		return nil, errors.New("sec: token lifetimes must be positive")
	}

	issuer := &TokenIssuer{config: config, now: time.Now}
	for _, opt := range opts {
		opt(issuer)
	}
	return issuer, nil
}

// IssueAccessToken mints a short-lived access token for identity.
func (issuer *TokenIssuer) IssueAccessToken(identity Identity) (string, error) {
	claims := AccessClaims{
		RegisteredClaims: issuer.registered(identity.Subject, identity.Kind, issuer.config.AccessTTL),
		Email:            identity.Email,
		DisplayName:      identity.DisplayName,
	}
	return issuer.sign(claims, issuer.config.AccessSecret)
}

// IssueRefreshToken mints a long-lived refresh token carrying only the subject.
func (issuer *TokenIssuer) IssueRefreshToken(subject string, kind Kind) (string, error) {
	claims := RefreshClaims{
		RegisteredClaims: issuer.registered(subject, kind, issuer.config.RefreshTTL),
	}
	return issuer.sign(claims, issuer.config.RefreshSecret)
}

// VerifyAccessToken checks signature, expiry and audience of an access token.
func (issuer *TokenIssuer) VerifyAccessToken(tokenString string, kind Kind) (*AccessClaims, error) {
	claims := &AccessClaims{}
	if err := issuer.parse(tokenString, claims, issuer.config.AccessSecret, kind); err != nil {
		return nil, err
	}
	return claims, nil
}

// VerifyRefreshToken checks signature, expiry and audience of a refresh token.
func (issuer *TokenIssuer) VerifyRefreshToken(tokenString string, kind Kind) (*RefreshClaims, error) {
	claims := &RefreshClaims{}
	if err := issuer.parse(tokenString, claims, issuer.config.RefreshSecret, kind); err != nil {
		return nil, err
	}
	return claims, nil
}

// registered fills the standard claims. The random ID keeps two tokens minted
// for one subject within the same second distinct.
func (issuer *TokenIssuer) registered(subject string, kind Kind, ttl time.Duration) jwt.RegisteredClaims {
	currentTime := issuer.now()
	return jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   subject,
		Issuer:    issuer.config.Issuer,
		Audience:  jwt.ClaimStrings{string(kind)},
		IssuedAt:  jwt.NewNumericDate(currentTime),
		ExpiresAt: jwt.NewNumericDate(currentTime.Add(ttl)),
	}
}

func (issuer *TokenIssuer) sign(claims jwt.Claims, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}
	return signedToken, nil
}

func (issuer *TokenIssuer) parse(tokenString string, claims jwt.Claims, secret string, kind Kind) error {
	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithAudience(string(kind)),
		jwt.WithExpirationRequired(),
	}
	if issuer.config.Issuer != "" {
		options = append(options, jwt.WithIssuer(issuer.config.Issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return []byte(secret), nil
	}, options...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !token.Valid {
		return ErrInvalidToken
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	return nil
}
