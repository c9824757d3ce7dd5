package storeapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bnema/storefront-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientAttachesCredentialUntilCleared(t *testing.T) {
	t.Parallel()

	var (
		mu   sync.Mutex
		seen []string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	require.NoError(t, client.Get(context.Background(), "/ping", nil))

	client.SetCredential("token-1")
	assert.True(t, client.HasCredential())
	require.NoError(t, client.Get(context.Background(), "/ping", nil))
	require.NoError(t, client.Delete(context.Background(), "/ping", nil))

	client.ClearCredential()
	assert.False(t, client.HasCredential())
	require.NoError(t, client.Get(context.Background(), "/ping", nil))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"", "Bearer token-1", "Bearer token-1", ""}, seen)
}

func TestClientSendsJSONBodyAndDecodesResponse(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/items/1", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "sf/test", r.Header.Get("User-Agent"))

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.JSONEq(t, `{"quantity":2}`, string(body))

		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client := NewClient(server.URL+"/api/", WithUserAgent("sf/test"))
	var out struct {
		OK bool `json:"ok"`
	}
	err := client.Patch(context.Background(), "/items/1", map[string]int{"quantity": 2}, &out)
	require.NoError(t, err)
	assert.True(t, out.OK)
}

func TestClientMapsStatusToDomainErrors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		status      int
		body        string
		want        error
		wantMessage string
		wantCode    string
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{"message":"Invalid token"}`, want: domain.ErrUnauthorized, wantMessage: "Invalid token"},
		{name: "forbidden", status: http.StatusForbidden, body: `{"message":"Admins only"}`, want: domain.ErrUnauthorized, wantMessage: "Admins only"},
		{name: "not found", status: http.StatusNotFound, body: `{"error":{"code":"NOT_FOUND","message":"product not found"}}`, want: domain.ErrNotFound, wantMessage: "product not found", wantCode: "NOT_FOUND"},
		{name: "bad request", status: http.StatusBadRequest, body: `{"message":"Invalid credentials"}`, want: domain.ErrInvalidInput, wantMessage: "Invalid credentials"},
		{name: "unprocessable", status: http.StatusUnprocessableEntity, body: `{"error":"quantity must be positive"}`, want: domain.ErrInvalidInput, wantMessage: "quantity must be positive"},
		{name: "server error", status: http.StatusInternalServerError, body: `oops`, want: domain.ErrRemote, wantMessage: "oops"},
		{name: "conflict", status: http.StatusConflict, body: ``, want: domain.ErrRemote},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer server.Close()

			err := NewClient(server.URL).Get(context.Background(), "/products", nil)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tc.status, apiErr.Status)
			assert.Equal(t, tc.wantMessage, apiErr.Message)
			assert.Equal(t, tc.wantCode, apiErr.Code)
			assert.Equal(t, tc.wantMessage, MessageOf(err))
		})
	}
}

func TestClientMapsTransportFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := server.URL
	server.Close()

	err := NewClient(baseURL).Get(context.Background(), "/products", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTransport)
	assert.NotErrorIs(t, err, domain.ErrRemote)
}

func TestClientReportsMalformedBodyAsRemoteError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"items": [`))
	}))
	defer server.Close()

	var out map[string]any
	err := NewClient(server.URL).Get(context.Background(), "/cart", &out)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRemote)
	assert.ErrorContains(t, err, "malformed response body")
}

func TestClientCapsResponseBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload, _ := json.Marshal(strings.Repeat("x", maxResponseBytes+10))
		_, _ = w.Write(payload)
	}))
	defer server.Close()

	var out string
	err := NewClient(server.URL).Get(context.Background(), "/big", &out)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRemote)
}

func TestClientHonorsConfiguredTimeout(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	client := NewClient(server.URL, WithTimeout(50*time.Millisecond))
	err := client.Get(context.Background(), "/slow", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTransport)
}

func TestClientReturnsContextErrorBeforeSending(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewClient("http://127.0.0.1:1").Get(ctx, "/products", nil)
	require.ErrorIs(t, err, context.Canceled)
}
