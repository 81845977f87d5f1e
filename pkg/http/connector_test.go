package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type echoPayload struct {
	Value string `json:"value"`
}

func newTestConnector(t *testing.T, url string, opts ...HttpOpts) *Connector {
	t.Helper()
	return NewConnector(&ConnectorConfig{BaseURL: url, Logger: zaptest.NewLogger(t)}, opts...)
}

func TestDoRequest_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/echo", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var in echoPayload
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		json.NewEncoder(w).Encode(echoPayload{Value: in.Value + "!"})
	}))
	defer srv.Close()

	c := newTestConnector(t, srv.URL, WithRequestLogging(), WithAuthToken("secret"))
	ctx := ctxzap.ToContext(context.Background(), zaptest.NewLogger(t))

	var out echoPayload
	err := c.DoRequest(ctx, http.MethodPost, "/echo", echoPayload{Value: "hi"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "hi!", out.Value)
}

func TestDoRequest_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := newTestConnector(t, srv.URL)
	err := c.DoRequest(context.Background(), http.MethodGet, "/", nil, nil)

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusTooManyRequests, httpErr.StatusCode)
}

func TestDoRequest_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := newTestConnector(t, url)
	err := c.DoRequest(context.Background(), http.MethodGet, "/", nil, nil)

	var netErr *NetworkError
	assert.True(t, errors.As(err, &netErr))
}

func TestRedactHeaders(t *testing.T) {
	h := http.Header{}
	h.Set("Authorization", "Bearer secret")
	h.Set("Accept", "application/json")

	redacted := redactHeaders(h)
	assert.Equal(t, "[REDACTED]", redacted.Get("Authorization"))
	assert.Equal(t, "Bearer secret", h.Get("Authorization"))
	assert.Equal(t, "application/json", redacted.Get("Accept"))
}

func TestWithAuthToken_EmptyTokenAndExistingHeader(t *testing.T) {
	var got []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = append(got, r.Header.Get("Authorization"))
	}))
	defer srv.Close()

	c := newTestConnector(t, srv.URL, WithAuthToken(""))
	require.NoError(t, c.DoRequest(context.Background(), http.MethodGet, "/", nil, nil))

	c = newTestConnector(t, srv.URL, WithAuthToken("secret"))
	require.NoError(t, c.DoRequest(context.Background(), http.MethodGet, "/", nil, nil, WithHeader("Authorization", "Bearer other")))

	assert.Equal(t, []string{"", "Bearer other"}, got)
}

func TestDoRequest_ResponseSizeLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"value": "` + strings.Repeat("x", 64) + `"}`))
	}))
	defer srv.Close()

	c := NewConnector(&ConnectorConfig{BaseURL: srv.URL, MaxResponseBytes: 32, Logger: zaptest.NewLogger(t)})
	var out echoPayload
	err := c.DoRequest(context.Background(), http.MethodGet, "/", nil, &out)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrResponseTooLarge))
	assert.Empty(t, out.Value)

	c = NewConnector(&ConnectorConfig{BaseURL: srv.URL, MaxResponseBytes: 1024, Logger: zaptest.NewLogger(t)})
	require.NoError(t, c.DoRequest(context.Background(), http.MethodGet, "/", nil, &out))
	assert.Len(t, out.Value, 64)
}

func TestDoRequest_HTTPErrorBodyTruncated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(strings.Repeat("e", 2*errorBodyLimit)))
	}))
	defer srv.Close()

	c := newTestConnector(t, srv.URL)
	err := c.DoRequest(context.Background(), http.MethodGet, "/", nil, nil)

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadGateway, httpErr.StatusCode)
	assert.Equal(t, strings.Repeat("e", errorBodyLimit)+"...", httpErr.Message)
}
