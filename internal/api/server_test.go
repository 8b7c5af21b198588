// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/studyhub/internal/api"
	"github.com/taibuivan/studyhub/internal/core/content"
	"github.com/taibuivan/studyhub/internal/core/note"
	"github.com/taibuivan/studyhub/internal/platform/config"
	"github.com/taibuivan/studyhub/internal/platform/sec"
)

func newTestServer(t *testing.T, deps api.HealthDependencies) http.Handler {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tokens, err := sec.NewHMACTokenService("server-test-secret", "")
	require.NoError(t, err)

	notes := content.NewService(content.NewMemoryStore(note.Resource), note.Resource, logger)
	liveness, readiness := api.NewHealthHandlers(deps, logger)

	cfg := &config.Config{
		ServerPort:     "0",
		AllowedOrigins: []string{"*"},
		RateLimitRPS:   100,
		RateLimitBurst: 100,
		ServiceName:    "studyhub-test",
	}

	server := api.NewServer(t.Context(), cfg, logger, tokens, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Resources: []api.Mount{
			{Path: "/notes", Routes: content.NewHandler(notes, note.Resource)},
			{Path: "/blogs", Routes: nil},
		},
	})
	return server.Handler()
}

func serve(handler http.Handler, request *http.Request) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

func TestHealth(t *testing.T) {
	handler := newTestServer(t, api.HealthDependencies{})

	rec := serve(handler, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	_, err := time.Parse(time.RFC3339Nano, body["timestamp"])
	assert.NoError(t, err)
}

func TestReady(t *testing.T) {
	healthy := func(context.Context) error { return nil }
	failing := func(context.Context) error { return errors.New("connection refused") }

	rec := serve(newTestServer(t, api.HealthDependencies{CheckPostgres: healthy, CheckCache: healthy}),
		httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ready","checks":[{"name":"postgres","ok":true},{"name":"redis","ok":true}]}`, rec.Body.String())

	rec = serve(newTestServer(t, api.HealthDependencies{CheckMongo: failing}),
		httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"status":"degraded","checks":[{"name":"mongo","ok":false,"error":"connection refused"}]}`, rec.Body.String())
}

/*
TestServer_Routes verifies mounting, the global chain and per-route pipelines.
*/
func TestServer_Routes(t *testing.T) {
	handler := newTestServer(t, api.HealthDependencies{})

	rec := serve(handler, httptest.NewRequest(http.MethodGet, "/api/notes", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"items":[],"total":0,"page":1,"limit":10}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	rec = serve(handler, httptest.NewRequest(http.MethodPost, "/api/notes", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	preflight := httptest.NewRequest(http.MethodOptions, "/api/notes", nil)
	preflight.Header.Set("Origin", "https://studyhub.example")
	preflight.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec = serve(handler, preflight)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://studyhub.example", rec.Header().Get("Access-Control-Allow-Origin"))

	// Unconfigured resources are not mounted
	rec = serve(handler, httptest.NewRequest(http.MethodGet, "/api/blogs", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Not found"}`, rec.Body.String())

	rec = serve(handler, httptest.NewRequest(http.MethodPatch, "/api/notes", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
