// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content_test

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/studyhub/internal/core/content"
	"github.com/taibuivan/studyhub/internal/platform/sec"
)

const testSecret = "content-test-secret"

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type api struct {
	server *httptest.Server
	store  *content.MemoryStore[*memo]
	admin  string
	user   string
}

func newAPI(t *testing.T) *api {
	t.Helper()

	tokens, err := sec.NewHMACTokenService(testSecret, "")
	require.NoError(t, err)

	admin, err := tokens.Issue(sec.Identity{ID: "admin-1", Role: sec.RoleAdmin}, time.Hour)
	require.NoError(t, err)
	user, err := tokens.Issue(sec.Identity{ID: "user-1", Role: sec.RoleUser}, time.Hour)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := content.NewMemoryStore(memoResource)
	service := content.NewService(store, memoResource, logger)

	router := chi.NewRouter()
	router.Route("/api/memos", func(r chi.Router) {
		content.NewHandler(service, memoResource).RegisterRoutes(r, tokens)
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &api{server: server, store: store, admin: "Bearer " + admin, user: "Bearer " + user}
}

func (a *api) do(t *testing.T, method, path, auth, body string) (int, map[string]any) {
	t.Helper()

	req, err := http.NewRequest(method, a.server.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var payload map[string]any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &payload))
	}
	return resp.StatusCode, payload
}

func (a *api) seed(t *testing.T, n int) []string {
	t.Helper()
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		record := &memo{
			Meta: content.Meta{
				ID:        content.NewID(),
				CreatedBy: "admin-1",
				CreatedAt: fixedNow.Add(time.Duration(i) * time.Minute),
			},
			Title: fmt.Sprintf("memo %02d", i),
			Tags:  []string{},
			Rank:  i % 3,
		}
		record.UpdatedAt = record.CreatedAt
		require.NoError(t, a.store.Create(t.Context(), record))
		ids = append(ids, record.ID)
	}
	return ids
}

/*
TestHandler_List verifies the listing contract over HTTP.
*/
func TestHandler_List(t *testing.T) {
	a := newAPI(t)
	a.seed(t, 12)

	status, body := a.do(t, http.MethodGet, "/api/memos?page=2&limit=5", "", "")
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 12, body["total"])
	assert.EqualValues(t, 2, body["page"])
	assert.EqualValues(t, 5, body["limit"])
	items := body["items"].([]any)
	require.Len(t, items, 5)
	// Default order is createdAt descending
	assert.Equal(t, "memo 06", items[0].(map[string]any)["title"])

	status, body = a.do(t, http.MethodGet, "/api/memos?page=9", "", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, []any{}, body["items"])

	// A page whose offset does not fit an int is simply past the end
	status, body = a.do(t, http.MethodGet, "/api/memos?page=9223372036854775807&limit=100", "", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, []any{}, body["items"])
	assert.EqualValues(t, 12, body["total"])
	assert.EqualValues(t, 100, body["limit"])

	status, body = a.do(t, http.MethodGet, "/api/memos?page=%2B2", "", "")
	require.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "page", body["errors"].([]any)[0].(map[string]any)["field"])

	status, body = a.do(t, http.MethodGet, "/api/memos?sortBy=title&order=asc&limit=1", "", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "memo 00", body["items"].([]any)[0].(map[string]any)["title"])

	status, body = a.do(t, http.MethodGet, "/api/memos?q=MEMO%2011", "", "")
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 1, body["total"])
}

func TestHandler_ListViolations(t *testing.T) {
	a := newAPI(t)

	status, body := a.do(t, http.MethodGet, "/api/memos?limit=0&sortBy=password&rank=high", "", "")
	require.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, []any{
		map[string]any{"field": "limit", "message": "Limit must be a positive integer"},
		map[string]any{"field": "sortBy", "message": "Invalid sort field"},
		map[string]any{"field": "rank", "message": "Rank must be a number"},
	}, body["errors"])
}

/*
TestHandler_Create verifies creation, ownership and server-managed fields.
*/
func TestHandler_Create(t *testing.T) {
	a := newAPI(t)

	status, body := a.do(t, http.MethodPost, "/api/memos", a.admin,
		`{"title":"  Vectors  ","tags":[" exam ",""],"id":"forged","createdBy":"someone"}`)
	require.Equal(t, http.StatusCreated, status)

	data := body["data"].(map[string]any)
	assert.Equal(t, "Vectors", data["title"])
	assert.Equal(t, []any{"exam"}, data["tags"])
	assert.Equal(t, "admin-1", data["createdBy"])
	assert.Len(t, data["id"], 24)
	assert.NotEqual(t, "forged", data["id"])

	status, body = a.do(t, http.MethodGet, "/api/memos/"+data["id"].(string), a.user, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Vectors", body["data"].(map[string]any)["title"])
}

func TestHandler_CreateRejected(t *testing.T) {
	a := newAPI(t)

	tests := []struct {
		name   string
		auth   string
		body   string
		status int
		want   map[string]any
	}{
		{"missing header", "", `{"title":"x"}`, http.StatusUnauthorized, map[string]any{"message": "Not authenticated"}},
		{"user role", a.user, `{"title":"x"}`, http.StatusForbidden, map[string]any{"message": "Not authorized"}},
		{"empty title", a.admin, `{"title":""}`, http.StatusBadRequest, map[string]any{
			"errors": []any{map[string]any{"field": "title", "message": "Title is required"}},
		}},
		{"string rank", a.admin, `{"title":"x","rank":"1"}`, http.StatusBadRequest, map[string]any{
			"errors": []any{map[string]any{"field": "rank", "message": "Rank must be a number"}},
		}},
		{"case variant title", a.admin, `{"title":"Good","TITLE":"   "}`, http.StatusBadRequest, map[string]any{
			"errors": []any{map[string]any{"field": "TITLE", "message": "Unknown field"}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := a.do(t, http.MethodPost, "/api/memos", tt.auth, tt.body)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.want, body)
		})
	}
}

/*
TestHandler_UpdateAndDelete verifies partial updates and removal.
*/
func TestHandler_UpdateAndDelete(t *testing.T) {
	a := newAPI(t)
	ids := a.seed(t, 1)
	id := ids[0]

	status, body := a.do(t, http.MethodPut, "/api/memos/"+id, a.admin, `{"rank":7}`)
	require.Equal(t, http.StatusOK, status)
	data := body["data"].(map[string]any)
	assert.Equal(t, "memo 00", data["title"])
	assert.EqualValues(t, 7, data["rank"])
	assert.Equal(t, id, data["id"])

	status, _ = a.do(t, http.MethodPut, "/api/memos/"+id, a.admin, `{"title":"   "}`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, body = a.do(t, http.MethodPut, "/api/memos/"+id, a.admin, `{"Title":""}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, []any{map[string]any{"field": "Title", "message": "Unknown field"}}, body["errors"])
	status, body = a.do(t, http.MethodGet, "/api/memos/"+id, a.user, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "memo 00", body["data"].(map[string]any)["title"])

	status, _ = a.do(t, http.MethodDelete, "/api/memos/"+id, a.user, "")
	assert.Equal(t, http.StatusForbidden, status)

	status, body = a.do(t, http.MethodDelete, "/api/memos/"+id, a.admin, "")
	assert.Equal(t, http.StatusNoContent, status)
	assert.Nil(t, body)

	status, body = a.do(t, http.MethodGet, "/api/memos/"+id, a.user, "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, map[string]any{"message": "Not found"}, body)

	status, _ = a.do(t, http.MethodDelete, "/api/memos/"+id, a.admin, "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestHandler_InvalidID(t *testing.T) {
	a := newAPI(t)

	status, body := a.do(t, http.MethodGet, "/api/memos/123", a.user, "")
	require.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, []any{map[string]any{"field": "id", "message": "Invalid id"}}, body["errors"])

	// Authorization runs before validation
	status, _ = a.do(t, http.MethodPut, "/api/memos/123", a.user, `{}`)
	assert.Equal(t, http.StatusForbidden, status)
}
