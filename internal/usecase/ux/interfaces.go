package ux

import (
	"context"

	"github.com/charole/auto-ux-backend/internal/entity"
	"github.com/charole/auto-ux-backend/internal/pkg/payload"
)

type CatalogReader interface {
	ListCategories(ctx context.Context) ([]*entity.InsuranceCategory, error)
	ListPopularProducts(ctx context.Context, limit int) ([]*entity.InsuranceProduct, error)
	ListProducts(ctx context.Context, category string, limit int) ([]*entity.InsuranceProduct, error)
	GetProduct(ctx context.Context, id string) (*entity.InsuranceProduct, error)
	ListRelatedProducts(ctx context.Context, categoryID, excludeID string, limit int) ([]*entity.InsuranceProduct, error)
	SearchEligibleProducts(ctx context.Context, age *int, keywords []string, limit int) ([]*entity.InsuranceProduct, error)
	ListFAQs(ctx context.Context, category string, limit int) ([]*entity.FAQEntry, error)
	ListVerifiedTestimonials(ctx context.Context, productID string, limit int) ([]*entity.Testimonial, error)
}

type Generator interface {
	Available() bool
	Generate(ctx context.Context, req entity.GenerationRequest) (string, error)
}

type ContextExtractor interface {
	Extract(text string) *entity.UserContext
	SearchTerms(uc *entity.UserContext) []string
}

type PayloadFormatter interface {
	FormatSearch(data *entity.CatalogData, uc *entity.UserContext) payload.BoundedPayload
	FormatGeneric(data *entity.CatalogData) payload.BoundedPayload
}

type PromptSynthesizer interface {
	Synthesize(pageType entity.PageType, uc *entity.UserContext, bp payload.BoundedPayload, freeText string) entity.GenerationRequest
}

type ResponseParser interface {
	Parse(raw string) ([]entity.UIComponent, error)
}
