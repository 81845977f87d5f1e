package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/charole/auto-ux-backend/internal/config"
	"github.com/charole/auto-ux-backend/internal/entity"
	pkghttp "github.com/charole/auto-ux-backend/pkg/http"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func testConfig(url, token string) config.LLMConnectorConfig {
	return config.LLMConnectorConfig{
		HTTPClientConfig: config.HTTPClientConfig{
			Url:   url,
			Token: token,
		},
		CompletionsEndpoint: "/chat/completions",
		Model:               "gpt-3.5-turbo",
		Temperature:         0.7,
		MaxTokens:           2000,
	}
}

func testRequest() entity.GenerationRequest {
	return entity.GenerationRequest{
		PageType:     entity.PageTypeHome,
		SystemPrompt: "system",
		UserPrompt:   "user",
	}
}

func TestGenerate_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var req entity.ChatCompletionRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-3.5-turbo", req.Model)
		assert.Len(t, req.Messages, 2)
		assert.Equal(t, entity.RoleSystem, req.Messages[0].Role)

		json.NewEncoder(w).Encode(entity.ChatCompletionResponse{
			Choices: []entity.ChatCompletionChoice{
				{Message: entity.ChatMessage{Role: "assistant", Content: `[{"id": "a", "content": "x"}]`}, FinishReason: "stop"},
			},
		})
	}))
	defer srv.Close()

	logger := zaptest.NewLogger(t)
	c := NewConnector(testConfig(srv.URL, "sk-test"), logger)
	require.True(t, c.Available())

	text, err := c.Generate(ctxzap.ToContext(context.Background(), logger), testRequest())
	require.NoError(t, err)
	assert.Equal(t, `[{"id": "a", "content": "x"}]`, text)
}

func TestGenerate_UnavailableWithoutToken(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	c := NewConnector(testConfig(srv.URL, "  "), zaptest.NewLogger(t))
	assert.False(t, c.Available())

	_, err := c.Generate(context.Background(), testRequest())
	assert.ErrorIs(t, err, entity.ErrGenerationUnavailable)
	assert.False(t, called)
}

func TestGenerate_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"message": "invalid api key"}}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewConnector(testConfig(srv.URL, "sk-bad"), zaptest.NewLogger(t))
	_, err := c.Generate(context.Background(), testRequest())

	assert.ErrorIs(t, err, entity.ErrGenerationFailed)
	var httpErr *pkghttp.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusUnauthorized, httpErr.StatusCode)
}

func TestGenerate_EmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices": []}`))
	}))
	defer srv.Close()

	c := NewConnector(testConfig(srv.URL, "sk-test"), zaptest.NewLogger(t))
	_, err := c.Generate(context.Background(), testRequest())
	assert.ErrorIs(t, err, entity.ErrGenerationFailed)
}

func TestGenerate_RespectsContextDeadline(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	c := NewConnector(testConfig(srv.URL, "sk-test"), zaptest.NewLogger(t))
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := c.Generate(ctx, testRequest())
	assert.ErrorIs(t, err, entity.ErrGenerationFailed)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestMockConnector_ReturnsParsableBlock(t *testing.T) {
	m := NewMockConnector(zaptest.NewLogger(t))
	require.True(t, m.Available())

	text, err := m.Generate(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Contains(t, text, `"id":"mock_header"`)
}
