// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec_test

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/studyhub/internal/platform/sec"
)

const testSecret = "test-secret-key"

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newHMAC(t *testing.T, now time.Time) *sec.TokenService {
	t.Helper()
	service, err := sec.NewHMACTokenService(testSecret, "", sec.WithClock(func() time.Time { return now }))
	require.NoError(t, err)
	return service
}

/*
TestVerify_RoundTrip verifies that an issued token yields the same identity.
*/
func TestVerify_RoundTrip(t *testing.T) {
	service := newHMAC(t, fixedNow)

	token, err := service.Issue(sec.Identity{ID: "u-1", Role: sec.RoleAdmin}, time.Hour)
	require.NoError(t, err)

	identity, err := service.Verify("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", identity.ID)
	assert.Equal(t, sec.RoleAdmin, identity.Role)

	// Scheme is case-insensitive
	_, err = service.Verify("bearer " + token)
	assert.NoError(t, err)
}

/*
TestVerify_Failures covers each rejection path and the sentinel it maps to.
*/
func TestVerify_Failures(t *testing.T) {
	issuer := newHMAC(t, fixedNow)
	valid, err := issuer.Issue(sec.Identity{ID: "u-1", Role: sec.RoleUser}, time.Minute)
	require.NoError(t, err)

	other, err := sec.NewHMACTokenService("another-secret", "", sec.WithClock(func() time.Time { return fixedNow }))
	require.NoError(t, err)
	foreign, err := other.Issue(sec.Identity{ID: "u-1", Role: sec.RoleUser}, time.Minute)
	require.NoError(t, err)

	unknownRole := signClaims(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{
		"id": "u-1", "role": "superuser", "exp": fixedNow.Add(time.Hour).Unix(),
	})
	missingExp := signClaims(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{
		"id": "u-1", "role": "user",
	})
	missingID := signClaims(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{
		"role": "user", "exp": fixedNow.Add(time.Hour).Unix(),
	})
	wrongAlg := signClaims(t, jwt.SigningMethodHS512, []byte(testSecret), jwt.MapClaims{
		"id": "u-1", "role": "user", "exp": fixedNow.Add(time.Hour).Unix(),
	})

	later := newHMAC(t, fixedNow.Add(2*time.Minute))

	tests := []struct {
		name    string
		service *sec.TokenService
		header  string
		want    error
	}{
		{"absent header", issuer, "", sec.ErrMissingCredential},
		{"wrong scheme", issuer, "Basic " + valid, sec.ErrMissingCredential},
		{"no token", issuer, "Bearer ", sec.ErrMissingCredential},
		{"extra parts", issuer, "Bearer " + valid + " extra", sec.ErrMissingCredential},
		{"garbage token", issuer, "Bearer not-a-jwt", sec.ErrInvalidSignature},
		{"foreign secret", issuer, "Bearer " + foreign, sec.ErrInvalidSignature},
		{"unknown role", issuer, "Bearer " + unknownRole, sec.ErrInvalidSignature},
		{"missing expiry", issuer, "Bearer " + missingExp, sec.ErrInvalidSignature},
		{"missing id", issuer, "Bearer " + missingID, sec.ErrInvalidSignature},
		{"wrong algorithm", issuer, "Bearer " + wrongAlg, sec.ErrInvalidSignature},
		{"expired", later, "Bearer " + valid, sec.ErrExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity, err := tt.service.Verify(tt.header)
			assert.Nil(t, identity)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

/*
TestVerify_ExpiredWithBadSignature verifies that signature failure wins over expiry.
*/
func TestVerify_ExpiredWithBadSignature(t *testing.T) {
	other, err := sec.NewHMACTokenService("another-secret", "", sec.WithClock(func() time.Time { return fixedNow }))
	require.NoError(t, err)
	foreign, err := other.Issue(sec.Identity{ID: "u-1", Role: sec.RoleUser}, time.Minute)
	require.NoError(t, err)

	_, err = newHMAC(t, fixedNow.Add(time.Hour)).Verify("Bearer " + foreign)
	assert.ErrorIs(t, err, sec.ErrInvalidSignature)
	assert.NotErrorIs(t, err, sec.ErrExpired)
}

/*
TestVerify_RSA verifies the RS256 configuration and rejects HMAC tokens against it.
*/
func TestVerify_RSA(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	clock := sec.WithClock(func() time.Time { return fixedNow })
	service := sec.NewRSATokenServiceFromKeys(key, &key.PublicKey, "studyhub", clock)

	token, err := service.Issue(sec.Identity{ID: "u-9", Role: sec.RoleUser}, time.Hour)
	require.NoError(t, err)

	identity, err := service.Verify("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, sec.RoleUser, identity.Role)

	hmacToken, err := newHMAC(t, fixedNow).Issue(sec.Identity{ID: "u-9", Role: sec.RoleUser}, time.Hour)
	require.NoError(t, err)
	_, err = service.Verify("Bearer " + hmacToken)
	assert.ErrorIs(t, err, sec.ErrInvalidSignature)

	verifyOnly := sec.NewRSATokenServiceFromKeys(nil, &key.PublicKey, "studyhub", clock)
	_, err = verifyOnly.Issue(sec.Identity{ID: "u-9", Role: sec.RoleUser}, time.Hour)
	assert.Error(t, err)
	_, err = verifyOnly.Verify("Bearer " + token)
	assert.NoError(t, err)
}

func TestNewHMACTokenService_EmptySecret(t *testing.T) {
	_, err := sec.NewHMACTokenService("", "")
	assert.Error(t, err)
}

func signClaims(t *testing.T, method jwt.SigningMethod, key any, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}
