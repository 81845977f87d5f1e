package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/charole/auto-ux-backend/internal/config"
	"github.com/charole/auto-ux-backend/internal/entity"
	"github.com/charole/auto-ux-backend/internal/integration/common"
	pkghttp "github.com/charole/auto-ux-backend/pkg/http"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// Connector calls an OpenAI compatible chat completions API. A single attempt
// is made per call.
type Connector struct {
	config    config.LLMConnectorConfig
	connector *pkghttp.Connector
	available bool
	logger    *zap.Logger
}

func NewConnector(
	cfg config.LLMConnectorConfig,
	logger *zap.Logger,
) *Connector {
	available := strings.TrimSpace(cfg.Token) != ""
	if !available {
		logger.Warn("generation token is not configured, UI generation will use fallbacks")
	}

	return &Connector{
		connector: common.NewBaseConnector(cfg.HTTPClientConfig, logger),
		config:    cfg,
		available: available,
		logger:    logger,
	}
}

// Available reports whether a credential was configured at startup
func (c *Connector) Available() bool {
	return c.available
}

// Generate returns the raw completion text for req
func (c *Connector) Generate(ctx context.Context, req entity.GenerationRequest) (string, error) {
	if !c.available {
		return "", entity.ErrGenerationUnavailable
	}

	ctxzap.Info(ctx, "generating UI via LLM service",
		zap.String("model", c.config.Model),
		zap.String("page_type", req.PageType.String()),
		zap.Int("prompt_length", len(req.UserPrompt)),
	)

	body := entity.ChatCompletionRequest{
		Model: c.config.Model,
		Messages: []entity.ChatMessage{
			{Role: entity.RoleSystem, Content: req.SystemPrompt},
			{Role: entity.RoleUser, Content: req.UserPrompt},
		},
		Temperature: c.config.Temperature,
		MaxTokens:   c.config.MaxTokens,
	}

	var resp entity.ChatCompletionResponse
	err := c.connector.DoRequest(ctx, http.MethodPost, c.config.CompletionsEndpoint, body, &resp)
	if err != nil {
		var httpErr *pkghttp.HTTPError
		if errors.As(err, &httpErr) {
			ctxzap.Warn(ctx, "LLM service returned error status", zap.Int("status", httpErr.StatusCode))
		}
		return "", fmt.Errorf("%w: %w", entity.ErrGenerationFailed, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: response has no choices", entity.ErrGenerationFailed)
	}

	content := resp.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("%w: empty completion", entity.ErrGenerationFailed)
	}

	ctxzap.Info(ctx, "UI generated successfully",
		zap.Int("result_length", len(content)),
		zap.String("finish_reason", resp.Choices[0].FinishReason),
	)

	return content, nil
}
