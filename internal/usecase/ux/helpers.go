package ux

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"slices"
	"time"

	"github.com/charole/auto-ux-backend/internal/entity"
	"github.com/charole/auto-ux-backend/internal/pkg/fallback"
	"github.com/charole/auto-ux-backend/internal/pkg/metrics"
	"github.com/charole/auto-ux-backend/internal/pkg/payload"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const relatedProductLimit = 3

// fetchPanic carries a panic out of a fetch goroutine
type fetchPanic struct {
	value any
	stack []byte
}

func (p *fetchPanic) Error() string {
	return fmt.Sprintf("catalog fetch panicked: %v", p.value)
}

// fetchGroup runs fetches concurrently. A panicking fetch is recovered in its
// own goroutine and re-raised by wait in the caller's goroutine.
type fetchGroup struct {
	g errgroup.Group
}

func (fg *fetchGroup) Go(fn func()) {
	fg.g.Go(func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = &fetchPanic{value: r, stack: debug.Stack()}
			}
		}()
		fn()
		return nil
	})
}

func (fg *fetchGroup) wait(ctx context.Context) {
	var p *fetchPanic
	if errors.As(fg.g.Wait(), &p) {
		ctxzap.Error(ctx, "catalog fetch panicked", zap.ByteString("fetch_stack", p.stack))
		panic(p.value)
	}
}

// collect runs the page type's fetch plan. Failed reads leave their
// collection empty.
func (uc *UXUsecase) collect(ctx context.Context, pageType entity.PageType, productID string) *entity.CatalogData {
	data := &entity.CatalogData{}
	var g fetchGroup

	switch pageType {
	case entity.PageTypeHome:
		g.Go(func() {
			data.Categories = read(ctx, uc, "categories", uc.catalog.ListCategories)
		})
		g.Go(func() {
			data.Products = read(ctx, uc, "popular_products", func(ctx context.Context) ([]*entity.InsuranceProduct, error) {
				return uc.catalog.ListPopularProducts(ctx, uc.cfg.PopularLimit)
			})
		})

	case entity.PageTypeProducts, entity.PageTypeSearch:
		g.Go(func() {
			data.Products = read(ctx, uc, "products", func(ctx context.Context) ([]*entity.InsuranceProduct, error) {
				return uc.catalog.ListProducts(ctx, "", 0)
			})
		})
		g.Go(func() {
			data.Categories = read(ctx, uc, "categories", uc.catalog.ListCategories)
		})
		g.Go(func() {
			data.FAQs = read(ctx, uc, "faqs", func(ctx context.Context) ([]*entity.FAQEntry, error) {
				return uc.catalog.ListFAQs(ctx, "", uc.cfg.FAQLimit)
			})
		})
		g.Go(func() {
			data.Testimonials = read(ctx, uc, "testimonials", func(ctx context.Context) ([]*entity.Testimonial, error) {
				return uc.catalog.ListVerifiedTestimonials(ctx, "", uc.cfg.TestimonialLimit)
			})
		})

	case entity.PageTypeProductDetail:
		if productID == "" {
			break
		}
		product, err := uc.catalog.GetProduct(ctx, productID)
		if err != nil {
			if !errors.Is(err, entity.ErrProductNotFound) {
				uc.readFailed(ctx, "product", err)
			}
			break
		}
		data.Product = product

		g.Go(func() {
			data.Products = read(ctx, uc, "related_products", func(ctx context.Context) ([]*entity.InsuranceProduct, error) {
				return uc.catalog.ListRelatedProducts(ctx, product.CategoryID, product.ID, relatedProductLimit)
			})
		})
		g.Go(func() {
			data.Testimonials = read(ctx, uc, "testimonials", func(ctx context.Context) ([]*entity.Testimonial, error) {
				return uc.catalog.ListVerifiedTestimonials(ctx, product.ID, uc.cfg.TestimonialLimit)
			})
		})
	}

	g.wait(ctx)

	ctxzap.Debug(ctx, "catalog data collected",
		zap.Int("products", data.ProductCount()),
		zap.Int("categories", len(data.Categories)),
		zap.Int("faqs", len(data.FAQs)),
		zap.Int("testimonials", len(data.Testimonials)),
	)

	return data
}

// searchEligible runs the age scoped product search. The repository already
// filters by age; the result is filtered again so no ineligible product can
// reach the payload.
func (uc *UXUsecase) searchEligible(ctx context.Context, userCtx *entity.UserContext) []*entity.InsuranceProduct {
	terms := uc.extractor.SearchTerms(userCtx)
	products := read(ctx, uc, "eligible_products", func(ctx context.Context) ([]*entity.InsuranceProduct, error) {
		return uc.catalog.SearchEligibleProducts(ctx, userCtx.Age, terms, uc.cfg.SmartProductLimit)
	})
	return payload.EligibleProducts(products, userCtx)
}

func read[T any](ctx context.Context, uc *UXUsecase, source string, fn func(context.Context) ([]T, error)) []T {
	items, err := fn(ctx)
	if err != nil {
		uc.readFailed(ctx, source, err)
		return nil
	}
	return items
}

func (uc *UXUsecase) readFailed(ctx context.Context, source string, err error) {
	ctxzap.Warn(ctx, "catalog read failed, continuing with empty result",
		zap.String("source", source),
		zap.Error(err),
	)
	uc.metrics.ObserveReadFailure(source)
}

// generate invokes the generator under the pipeline timeout and parses the
// result. It returns the parsed components and the outcome label.
func (uc *UXUsecase) generate(ctx context.Context, req entity.GenerationRequest) ([]entity.UIComponent, string) {
	if !uc.generator.Available() {
		ctxzap.Debug(ctx, "generation unavailable, using fallback")
		return nil, metrics.OutcomeUnavailable
	}

	genCtx, cancel := context.WithTimeout(ctx, uc.cfg.GenerationTimeout)
	defer cancel()

	start := time.Now()
	raw, err := uc.generator.Generate(genCtx, req)
	uc.metrics.ObserveGeneration(req.PageType.String(), time.Since(start))
	if err != nil {
		if errors.Is(err, entity.ErrGenerationUnavailable) {
			return nil, metrics.OutcomeUnavailable
		}
		ctxzap.Warn(ctx, "UI generation failed, using fallback", zap.Error(err))
		return nil, metrics.OutcomeGenerationFailed
	}

	components, err := uc.parser.Parse(raw)
	if err != nil {
		ctxzap.Warn(ctx, "generated UI could not be parsed, using fallback",
			zap.Error(err),
			zap.Int("raw_length", len(raw)),
		)
		return nil, metrics.OutcomeParseFailed
	}

	return components, metrics.OutcomeGenerated
}

func (uc *UXUsecase) respond(
	ctx context.Context,
	pageType entity.PageType,
	components []entity.UIComponent,
	outcome string,
	products int,
) *entity.UXResponse {
	aiGenerated := outcome == metrics.OutcomeGenerated
	if !aiGenerated {
		components = fallback.For(pageType)
	}

	slices.SortStableFunc(components, func(a, b entity.UIComponent) int {
		return cmp.Compare(a.Priority, b.Priority)
	})

	resp := &entity.UXResponse{
		Components:  components,
		GeneratedAt: uc.now().Format(time.RFC3339),
		AIGenerated: aiGenerated,
	}
	if products > 0 {
		resp.TotalProducts = &products
	}

	uc.metrics.ObserveOutcome(pageType.String(), outcome)
	ctxzap.Info(ctx, "UI response ready",
		zap.String("outcome", outcome),
		zap.Int("components", len(components)),
		zap.Bool("ai_generated", aiGenerated),
	)

	return resp
}

// recoverPipeline turns a panic anywhere in the pipeline into the temporary
// error response
func (uc *UXUsecase) recoverPipeline(ctx context.Context, pageType entity.PageType, resp **entity.UXResponse) {
	r := recover()
	if r == nil {
		return
	}

	ctxzap.Error(ctx, "UI pipeline panicked",
		zap.Any("panic", r),
		zap.Stack("stack"),
	)
	uc.metrics.ObserveOutcome(pageType.String(), metrics.OutcomeError)

	*resp = &entity.UXResponse{
		Components:  fallback.Error(),
		GeneratedAt: uc.now().Format(time.RFC3339),
		AIGenerated: false,
	}
}
