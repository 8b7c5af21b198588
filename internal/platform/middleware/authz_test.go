// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/studyhub/internal/platform/ctxutil"
	"github.com/taibuivan/studyhub/internal/platform/listing"
	"github.com/taibuivan/studyhub/internal/platform/middleware"
	"github.com/taibuivan/studyhub/internal/platform/sec"
	"github.com/taibuivan/studyhub/internal/platform/validate"
)

// stubVerifier maps raw header values to outcomes.
type stubVerifier map[string]*sec.Identity

func (s stubVerifier) Verify(header string) (*sec.Identity, error) {
	if header == "" {
		return nil, sec.ErrMissingCredential
	}
	identity, ok := s[header]
	if !ok {
		return nil, sec.ErrInvalidSignature
	}
	return identity, nil
}

var verifier = stubVerifier{
	"Bearer admin": {ID: "a-1", Role: sec.RoleAdmin},
	"Bearer user":  {ID: "u-1", Role: sec.RoleUser},
}

var titleRules = validate.Table{
	validate.Body("title").NotEmpty().WithMessage("Title is required"),
}

func okHandler(writer http.ResponseWriter, _ *http.Request) {
	writer.WriteHeader(http.StatusOK)
}

func newRouter() http.Handler {
	router := chi.NewRouter()
	router.With(
		middleware.Authenticate(verifier),
		middleware.Authorize(sec.RoleAdmin),
		middleware.Validate(titleRules.Create()...),
	).Post("/notes", okHandler)

	router.With(
		middleware.Authenticate(verifier),
		middleware.Validate(validate.Path("id").Identifier().WithMessage("Invalid id")),
	).Get("/notes/{id}", okHandler)

	router.With(middleware.Authorize(sec.RoleAdmin)).Delete("/miswired", okHandler)
	return router
}

func do(t *testing.T, handler http.Handler, method, target, auth, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

/*
TestPipeline_StageOrder verifies that stages run in order and the first failure wins.
*/
func TestPipeline_StageOrder(t *testing.T) {
	router := newRouter()

	tests := []struct {
		name   string
		auth   string
		body   string
		status int
		want  string
	}{
		{"no credential beats bad body", "", `{"title":""}`, http.StatusUnauthorized, `{"message":"Not authenticated"}`},
		{"bad credential", "Bearer forged", `{"title":"x"}`, http.StatusUnauthorized, `{"message":"Not authenticated"}`},
		{"user on admin route", "Bearer user", `{"title":""}`, http.StatusForbidden, `{"message":"Not authorized"}`},
		{"admin with invalid body", "Bearer admin", `{"title":"  "}`, http.StatusBadRequest, `{"errors":[{"field":"title","message":"Title is required"}]}`},
		{"admin with malformed JSON", "Bearer admin", `{"title":`, http.StatusBadRequest, `{"errors":[{"field":"body","message":"Invalid JSON payload"}]}`},
		{"admin with array body", "Bearer admin", `["x"]`, http.StatusBadRequest, `{"errors":[{"field":"body","message":"Invalid JSON payload"}]}`},
		{"admin with case variant key", "Bearer admin", `{"title":"Good","TITLE":"   "}`, http.StatusBadRequest, `{"errors":[{"field":"TITLE","message":"Unknown field"}]}`},
		{"admin with only a case variant key", "Bearer admin", `{"Title":"Algebra"}`, http.StatusBadRequest, `{"errors":[{"field":"title","message":"Title is required"},{"field":"Title","message":"Unknown field"}]}`},
		{"admin with valid body", "Bearer admin", `{"title":"Algebra"}`, http.StatusOK, ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, router, http.MethodPost, "/notes", tt.auth, tt.body)
			assert.Equal(t, tt.status, rec.Code)
			if tt.want != "" {
				assert.JSONEq(t, tt.want, rec.Body.String())
			}
		})
	}
}

func TestPipeline_PathIdentifier(t *testing.T) {
	router := newRouter()

	rec := do(t, router, http.MethodGet, "/notes/not-an-id", "Bearer user", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"errors":[{"field":"id","message":"Invalid id"}]}`, rec.Body.String())

	rec = do(t, router, http.MethodGet, "/notes/65f1a2b3c4d5e6f708192a3b", "Bearer user", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

/*
TestAuthorize_WithoutIdentity verifies that a miswired role gate fails closed.
*/
func TestAuthorize_WithoutIdentity(t *testing.T) {
	rec := do(t, newRouter(), http.MethodDelete, "/miswired", "", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

/*
TestValidate_BodyIsReplayable verifies the handler can read the body after validation.
*/
func TestValidate_BodyIsReplayable(t *testing.T) {
	var seen string
	handler := middleware.Validate(titleRules.Create()...)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		seen = string(raw)
		w.WriteHeader(http.StatusOK)
	}))

	rec := do(t, handler, http.MethodPost, "/", "", `{"title":"x"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `{"title":"x"}`, seen)
}

/*
TestNormalizeListing merges filter and contract violations and attaches the query.
*/
func TestNormalizeListing(t *testing.T) {
	sortable := listing.Sortable{Fields: []string{"createdAt", "title"}, Default: "createdAt"}
	yearRule := validate.Query("year").Integer(1900).Optional().WithMessage("Year must be a number")

	var captured listing.Query
	handler := middleware.NormalizeListing(sortable, yearRule)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured, _ = ctxutil.GetListing(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	rec := do(t, handler, http.MethodGet, "/?page=abc&sortBy=secret&year=old", "", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"errors":[
		{"field":"page","message":"Page must be a positive integer"},
		{"field":"sortBy","message":"Invalid sort field"},
		{"field":"year","message":"Year must be a number"}
	]}`, rec.Body.String())

	rec = do(t, handler, http.MethodGet, "/?limit=1000&order=ASC&sortBy=title", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 100, captured.Limit)
	assert.Equal(t, "title", captured.SortBy)
}
