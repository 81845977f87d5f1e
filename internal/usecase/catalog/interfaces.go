package catalog

import (
	"context"

	"github.com/charole/auto-ux-backend/internal/entity"
)

type CatalogRepository interface {
	Ping(ctx context.Context) error
	ListCategories(ctx context.Context) ([]*entity.InsuranceCategory, error)
	ListProducts(ctx context.Context, category string, limit int) ([]*entity.InsuranceProduct, error)
	GetProduct(ctx context.Context, id string) (*entity.InsuranceProduct, error)
	SearchEligibleProducts(ctx context.Context, age *int, keywords []string, limit int) ([]*entity.InsuranceProduct, error)
	ListFAQs(ctx context.Context, category string, limit int) ([]*entity.FAQEntry, error)
	SearchFAQs(ctx context.Context, query string, limit int) ([]*entity.FAQEntry, error)
	ListVerifiedTestimonials(ctx context.Context, productID string, limit int) ([]*entity.Testimonial, error)
	SearchTestimonials(ctx context.Context, query string, limit int) ([]*entity.Testimonial, error)
}
