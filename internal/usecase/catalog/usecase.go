package catalog

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/charole/auto-ux-backend/internal/config"
	"github.com/charole/auto-ux-backend/internal/entity"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const categoriesCacheKey = "categories"

// CatalogUsecase serves read-only catalog queries. Categories and FAQ lists
// change rarely and are cached in memory.
type CatalogUsecase struct {
	repo  CatalogRepository
	cache *cache.Cache
}

// NewUsecase creates a new catalog use case
func NewUsecase(repo CatalogRepository, cfg config.CatalogCacheConfig) *CatalogUsecase {
	return &CatalogUsecase{
		repo:  repo,
		cache: cache.New(cfg.TTL, cfg.CleanupInterval),
	}
}

// Ping checks that the catalog store is reachable
func (uc *CatalogUsecase) Ping(ctx context.Context) error {
	if err := uc.repo.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %w", entity.ErrDataAccess, err)
	}
	return nil
}

func (uc *CatalogUsecase) ListProducts(ctx context.Context, req *entity.ListProductsRequest) (*entity.ListProductsResponse, error) {
	products, err := uc.repo.ListProducts(ctx, req.Category, req.Limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entity.ErrDataAccess, err)
	}

	return &entity.ListProductsResponse{
		Products: nonNil(products),
		Total:    len(products),
	}, nil
}

func (uc *CatalogUsecase) GetProduct(ctx context.Context, id string) (*entity.InsuranceProduct, error) {
	product, err := uc.repo.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrProductNotFound) || errors.Is(err, entity.ErrInvalidParameter) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", entity.ErrDataAccess, err)
	}
	return product, nil
}

func (uc *CatalogUsecase) ListCategories(ctx context.Context) (*entity.ListCategoriesResponse, error) {
	if cached, ok := uc.cache.Get(categoriesCacheKey); ok {
		ctxzap.Debug(ctx, "categories served from cache")
		return &entity.ListCategoriesResponse{Categories: cloneCategories(cached.([]*entity.InsuranceCategory))}, nil
	}

	categories, err := uc.repo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entity.ErrDataAccess, err)
	}
	categories = nonNil(categories)

	uc.cache.SetDefault(categoriesCacheKey, categories)
	return &entity.ListCategoriesResponse{Categories: cloneCategories(categories)}, nil
}

func (uc *CatalogUsecase) ListFAQs(ctx context.Context, req *entity.ListFAQsRequest) (*entity.ListFAQsResponse, error) {
	key := fmt.Sprintf("faqs:%s:%d", req.Category, req.Limit)
	if cached, ok := uc.cache.Get(key); ok {
		ctxzap.Debug(ctx, "faqs served from cache", zap.String("category", req.Category))
		return &entity.ListFAQsResponse{FAQs: cloneFAQs(cached.([]*entity.FAQEntry))}, nil
	}

	faqs, err := uc.repo.ListFAQs(ctx, req.Category, req.Limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entity.ErrDataAccess, err)
	}
	faqs = nonNil(faqs)

	uc.cache.SetDefault(key, faqs)
	return &entity.ListFAQsResponse{FAQs: cloneFAQs(faqs)}, nil
}

func (uc *CatalogUsecase) ListTestimonials(ctx context.Context, req *entity.ListTestimonialsRequest) (*entity.ListTestimonialsResponse, error) {
	testimonials, err := uc.repo.ListVerifiedTestimonials(ctx, req.ProductID, req.Limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entity.ErrDataAccess, err)
	}
	return &entity.ListTestimonialsResponse{Testimonials: nonNil(testimonials)}, nil
}

// Search runs the unified search over products, FAQs and testimonials and
// ranks each list by relevance score.
func (uc *CatalogUsecase) Search(ctx context.Context, req *entity.SearchRequest) (*entity.SearchResponse, error) {
	req.Normalize()
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return nil, fmt.Errorf("%w: q", entity.ErrMissingField)
	}

	results := entity.SearchResults{
		Products:     []entity.ScoredProduct{},
		FAQs:         []entity.ScoredFAQ{},
		Testimonials: []entity.ScoredTestimonial{},
	}

	g, gctx := errgroup.WithContext(ctx)

	if req.IncludeProducts {
		g.Go(func() error {
			products, err := uc.repo.SearchEligibleProducts(gctx, nil, []string{query}, req.Limit)
			if err != nil {
				return fmt.Errorf("search products: %w", err)
			}
			results.Products = scoreProducts(products, query)
			return nil
		})
	}
	if req.IncludeFAQs {
		g.Go(func() error {
			faqs, err := uc.repo.SearchFAQs(gctx, query, req.Limit)
			if err != nil {
				return fmt.Errorf("search faqs: %w", err)
			}
			results.FAQs = scoreFAQs(faqs, query)
			return nil
		})
	}
	if req.IncludeTestimonials {
		g.Go(func() error {
			testimonials, err := uc.repo.SearchTestimonials(gctx, query, req.Limit)
			if err != nil {
				return fmt.Errorf("search testimonials: %w", err)
			}
			results.Testimonials = scoreTestimonials(testimonials, query)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %w", entity.ErrDataAccess, err)
	}

	total := len(results.Products) + len(results.FAQs) + len(results.Testimonials)
	ctxzap.Info(ctx, "catalog search completed",
		zap.String("query", query),
		zap.Int("total_results", total),
	)

	return &entity.SearchResponse{
		Query:        query,
		TotalResults: total,
		Results:      results,
	}, nil
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

// Cached lists are shared; callers get copies they may modify.

func cloneCategories(in []*entity.InsuranceCategory) []*entity.InsuranceCategory {
	out := make([]*entity.InsuranceCategory, len(in))
	for i, c := range in {
		cp := *c
		out[i] = &cp
	}
	return out
}

func cloneFAQs(in []*entity.FAQEntry) []*entity.FAQEntry {
	out := make([]*entity.FAQEntry, len(in))
	for i, f := range in {
		cp := *f
		cp.Keywords = slices.Clone(f.Keywords)
		out[i] = &cp
	}
	return out
}
