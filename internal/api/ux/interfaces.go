package ux

import (
	"context"

	"github.com/charole/auto-ux-backend/internal/entity"
)

type UXUsecase interface {
	GenerateUI(ctx context.Context, req *entity.GenerateUIRequest) *entity.UXResponse
	GenerateSmartUI(ctx context.Context, query string) *entity.UXResponse
	GenerationAvailable() bool
}

type CatalogUsecase interface {
	Ping(ctx context.Context) error
	ListProducts(ctx context.Context, req *entity.ListProductsRequest) (*entity.ListProductsResponse, error)
	GetProduct(ctx context.Context, id string) (*entity.InsuranceProduct, error)
	ListCategories(ctx context.Context) (*entity.ListCategoriesResponse, error)
	ListFAQs(ctx context.Context, req *entity.ListFAQsRequest) (*entity.ListFAQsResponse, error)
	ListTestimonials(ctx context.Context, req *entity.ListTestimonialsRequest) (*entity.ListTestimonialsResponse, error)
	Search(ctx context.Context, req *entity.SearchRequest) (*entity.SearchResponse, error)
}
