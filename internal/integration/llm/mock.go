package llm

import (
	"context"
	"encoding/json"

	"github.com/charole/auto-ux-backend/internal/entity"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// MockConnector returns a canned component list so the whole pipeline runs offline
type MockConnector struct {
	logger *zap.Logger
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{
		logger: logger,
	}
}

func (m *MockConnector) Available() bool {
	return true
}

func (m *MockConnector) Generate(ctx context.Context, req entity.GenerationRequest) (string, error) {
	ctxzap.Info(ctx, "[MOCK] generating UI via LLM", zap.String("page_type", req.PageType.String()))

	components := []map[string]any{
		{
			"type":     "header",
			"id":       "mock_header",
			"title":    "맞춤 보험 안내 (MOCK)",
			"content":  "<div style='text-align: center; padding: 2rem; background: linear-gradient(135deg, #4ecdc4 0%, #45b7d1 100%); color: white; border-radius: 20px;'><h1 style='margin: 0; font-size: 2rem;'>🛡️ 맞춤 보험 안내</h1></div>",
			"style":    "margin-bottom: 1.5rem;",
			"priority": 1,
			"data":     map[string]any{"page_type": req.PageType.String(), "mock": true},
		},
		{
			"type":     "section",
			"id":       "mock_body",
			"title":    "추천 정보",
			"content":  "<div style='padding: 1.5rem; background: #f8f9fa; border-radius: 12px;'><p style='margin: 0; line-height: 1.6;'>📋 실제 생성 서비스가 연결되면 DB 데이터를 바탕으로 화면이 구성됩니다.</p></div>",
			"priority": 2,
		},
	}

	raw, err := json.Marshal(components)
	if err != nil {
		return "", err
	}

	ctxzap.Info(ctx, "[MOCK] UI generated", zap.Int("component_count", len(components)))
	return "```json\n" + string(raw) + "\n```", nil
}
