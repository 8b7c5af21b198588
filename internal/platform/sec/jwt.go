// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sec provides credential verification and the role gate.
//
// # Architecture
//
// This package isolates security-sensitive code (JWT signing and verification)
// from the domain logic. Verification is pure: after construction no I/O
// happens, so a [TokenService] may be shared by all requests.
package sec

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// # Verification Outcomes

var (
	// ErrMissingCredential is returned when the Authorization header is absent or not a bearer credential.
	ErrMissingCredential = errors.New("sec: missing bearer credential")

	// ErrInvalidSignature is returned for tokens that fail decoding, signature or claim checks.
	ErrInvalidSignature = errors.New("sec: invalid credential")

	// ErrExpired is returned for correctly signed tokens past their expiry.
	ErrExpired = errors.New("sec: credential expired")
)

const bearerScheme = "bearer"

// AuthClaims represents the payload embedded inside an access token.
type AuthClaims struct {
	jwt.RegisteredClaims

	UserID string `json:"id"`
	Role   string `json:"role"`
}

// TokenService verifies (and, for tooling and tests, issues) access tokens.
//
// It is configured with either an HMAC shared secret (HS256) or an RSA key
// pair (RS256). Tokens signed with any other algorithm are rejected.
type TokenService struct {
	method    jwt.SigningMethod
	signKey   any
	verifyKey any
	issuer    string
	now       func() time.Time
}

// Option customizes a [TokenService].
type Option func(*TokenService)

// WithClock replaces the wall clock used for expiry checks.
func WithClock(now func() time.Time) Option {
	return func(service *TokenService) { service.now = now }
}

// NewHMACTokenService creates a TokenService backed by a shared secret.
func NewHMACTokenService(secret, issuer string, opts ...Option) (*TokenService, error) {
	if secret == "" {
		return nil, fmt.Errorf("sec: empty signing secret")
	}

	key := []byte(secret)
	return newTokenService(jwt.SigningMethodHS256, key, key, issuer, opts), nil
}

// NewRSATokenService creates a TokenService from PEM key files.
// The private key path may be empty when the service only verifies.
func NewRSATokenService(privateKeyPath, publicKeyPath, issuer string, opts ...Option) (*TokenService, error) {
	publicKeyData, err := os.ReadFile(publicKeyPath)
	if err != nil {
		return nil, fmt.Errorf("sec: failed to read public key from %s: %w", publicKeyPath, err)
	}

	publicKey, err := jwt.ParseRSAPublicKeyFromPEM(publicKeyData)
	if err != nil {
		return nil, fmt.Errorf("sec: failed to parse public key: %w", err)
	}

	var privateKey *rsa.PrivateKey
	if privateKeyPath != "" {
		privateKeyData, err := os.ReadFile(privateKeyPath)
		if err != nil {
			return nil, fmt.Errorf("sec: failed to read private key from %s: %w", privateKeyPath, err)
		}

		privateKey, err = jwt.ParseRSAPrivateKeyFromPEM(privateKeyData)
		if err != nil {
			return nil, fmt.Errorf("sec: failed to parse private key: %w", err)
		}
	}

	return NewRSATokenServiceFromKeys(privateKey, publicKey, issuer, opts...), nil
}

// NewRSATokenServiceFromKeys creates a TokenService from parsed RSA keys.
func NewRSATokenServiceFromKeys(privateKey *rsa.PrivateKey, publicKey *rsa.PublicKey, issuer string, opts ...Option) *TokenService {
	var signKey any
	if privateKey != nil {
		signKey = privateKey
	}
	return newTokenService(jwt.SigningMethodRS256, signKey, publicKey, issuer, opts)
}

func newTokenService(method jwt.SigningMethod, signKey, verifyKey any, issuer string, opts []Option) *TokenService {
	service := &TokenService{
		method:    method,
		signKey:   signKey,
		verifyKey: verifyKey,
		issuer:    issuer,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// Issue signs a token for the identity valid for timeToLive.
func (service *TokenService) Issue(identity Identity, timeToLive time.Duration) (string, error) {
	if service.signKey == nil {
		return "", fmt.Errorf("sec: token service has no signing key")
	}

	currentTime := service.now()
	claims := AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.ID,
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(timeToLive)),
		},
		UserID: identity.ID,
		Role:   string(identity.Role),
	}

	signedToken, err := jwt.NewWithClaims(service.method, claims).SignedString(service.signKey)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, nil
}

// Verify turns a raw Authorization header value into an [Identity].
//
// The outcome is one of [ErrMissingCredential], [ErrInvalidSignature] or
// [ErrExpired] (possibly wrapping the decoder error), or a verified identity.
func (service *TokenService) Verify(header string) (*Identity, error) {
	tokenString, ok := bearerToken(header)
	if !ok {
		return nil, ErrMissingCredential
	}

	parserOptions := []jwt.ParserOption{
		jwt.WithValidMethods([]string{service.method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(service.now),
	}
	if service.issuer != "" {
		parserOptions = append(parserOptions, jwt.WithIssuer(service.issuer))
	}

	claims := &AuthClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return service.verifyKey, nil
	}, parserOptions...)

	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, fmt.Errorf("%w: %w", ErrExpired, err)
	case err != nil:
		return nil, fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}

	role, ok := ParseRole(claims.Role)
	if !ok || strings.TrimSpace(claims.UserID) == "" {
		return nil, fmt.Errorf("%w: unrecognized identity claims", ErrInvalidSignature)
	}

	return &Identity{ID: claims.UserID, Role: role}, nil
}

// bearerToken extracts the single token from "Bearer <token>".
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", false
	}

	token = strings.TrimSpace(token)
	if token == "" || strings.ContainsAny(token, " \t") {
		return "", false
	}
	return token, true
}
