package ux

import (
	"context"
	"strings"
	"time"

	"github.com/charole/auto-ux-backend/internal/config"
	"github.com/charole/auto-ux-backend/internal/entity"
	"github.com/charole/auto-ux-backend/internal/pkg/logger"
	"github.com/charole/auto-ux-backend/internal/pkg/metrics"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// UXUsecase runs the UI generation pipeline: extract context, collect catalog
// data, format, synthesize, generate, parse and respond. Every path ends in a
// response; failures converge on the page type's fallback components.
type UXUsecase struct {
	catalog     CatalogReader
	generator   Generator
	extractor   ContextExtractor
	formatter   PayloadFormatter
	synthesizer PromptSynthesizer
	parser      ResponseParser
	metrics     *metrics.Metrics
	cfg         config.PipelineConfig
	now         func() time.Time
}

// NewUsecase creates a new UI generation use case
func NewUsecase(
	catalog CatalogReader,
	generator Generator,
	extractor ContextExtractor,
	formatter PayloadFormatter,
	synthesizer PromptSynthesizer,
	parser ResponseParser,
	m *metrics.Metrics,
	cfg config.PipelineConfig,
) *UXUsecase {
	return &UXUsecase{
		catalog:     catalog,
		generator:   generator,
		extractor:   extractor,
		formatter:   formatter,
		synthesizer: synthesizer,
		parser:      parser,
		metrics:     m,
		cfg:         cfg,
		now:         time.Now,
	}
}

// GenerationAvailable reports whether a generation backend is configured
func (uc *UXUsecase) GenerationAvailable() bool {
	return uc.generator.Available()
}

// GenerateUI builds the UI for a page type. A search request carrying a query
// is served by the smart search path.
func (uc *UXUsecase) GenerateUI(ctx context.Context, req *entity.GenerateUIRequest) (resp *entity.UXResponse) {
	pageType := req.PageType
	if pageType == "" {
		pageType = entity.PageTypeHome
	}

	if pageType == entity.PageTypeSearch && strings.TrimSpace(req.UserQuery) != "" {
		return uc.GenerateSmartUI(ctx, req.UserQuery)
	}

	ctx = logger.AddFields(ctx, zap.String("page_type", pageType.String()))
	defer uc.recoverPipeline(ctx, pageType, &resp)

	userCtx := uc.extractor.Extract(req.UserQuery)
	ctxzap.Debug(ctx, "user context extracted", zap.String("user_context", userCtx.Summary()))

	data := uc.collect(ctx, pageType, req.ProductID)

	bp := uc.formatter.FormatGeneric(data)
	if pageType == entity.PageTypeSearch {
		bp = uc.formatter.FormatSearch(data, userCtx)
	}
	if bp.Truncated {
		ctxzap.Debug(ctx, "catalog payload truncated", zap.Int("payload_length", len(bp.Text)))
	}

	genReq := uc.synthesizer.Synthesize(pageType, userCtx, bp, req.UserQuery)
	components, outcome := uc.generate(ctx, genReq)

	return uc.respond(ctx, pageType, components, outcome, bp.Products)
}

// GenerateSmartUI serves a free text search: products are narrowed to the
// detected age and insurance interests before generation.
func (uc *UXUsecase) GenerateSmartUI(ctx context.Context, query string) (resp *entity.UXResponse) {
	pageType := entity.PageTypeSearch
	ctx = logger.AddFields(ctx, zap.String("page_type", pageType.String()), zap.Bool("smart", true))
	defer uc.recoverPipeline(ctx, pageType, &resp)

	userCtx := uc.extractor.Extract(query)
	ctxzap.Info(ctx, "smart UI requested",
		zap.String("user_context", userCtx.Summary()),
		zap.Bool("has_age", userCtx.HasAge()),
	)

	data := &entity.CatalogData{
		Products: uc.searchEligible(ctx, userCtx),
	}

	bp := uc.formatter.FormatSearch(data, userCtx)
	genReq := uc.synthesizer.Synthesize(pageType, userCtx, bp, query)
	components, outcome := uc.generate(ctx, genReq)

	return uc.respond(ctx, pageType, components, outcome, bp.Products)
}
