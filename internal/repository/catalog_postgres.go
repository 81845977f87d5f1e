package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/charole/auto-ux-backend/internal/entity"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// DBTX is the subset of *pgxpool.Pool used by the catalog repository
type DBTX interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
}

// CatalogRepository defines read access to the insurance catalog
type CatalogRepository interface {
	Ping(ctx context.Context) error
	ListCategories(ctx context.Context) ([]*entity.InsuranceCategory, error)
	ListPopularProducts(ctx context.Context, limit int) ([]*entity.InsuranceProduct, error)
	ListProducts(ctx context.Context, category string, limit int) ([]*entity.InsuranceProduct, error)
	GetProduct(ctx context.Context, id string) (*entity.InsuranceProduct, error)
	ListRelatedProducts(ctx context.Context, categoryID, excludeID string, limit int) ([]*entity.InsuranceProduct, error)
	SearchEligibleProducts(ctx context.Context, age *int, keywords []string, limit int) ([]*entity.InsuranceProduct, error)
	ListFAQs(ctx context.Context, category string, limit int) ([]*entity.FAQEntry, error)
	SearchFAQs(ctx context.Context, query string, limit int) ([]*entity.FAQEntry, error)
	ListVerifiedTestimonials(ctx context.Context, productID string, limit int) ([]*entity.Testimonial, error)
	SearchTestimonials(ctx context.Context, query string, limit int) ([]*entity.Testimonial, error)
}

var _ CatalogRepository = &CatalogPostgres{}

// CatalogPostgres implements CatalogRepository using PostgreSQL
type CatalogPostgres struct {
	db DBTX
}

func NewCatalogPostgres(db DBTX) *CatalogPostgres {
	return &CatalogPostgres{db: db}
}

const productColumns = `
	p.id::text, COALESCE(p.category_id::text, ''), p.name, COALESCE(p.description, ''),
	COALESCE(p.base_price, 0), COALESCE(p.max_coverage, 0),
	p.age_limit_min, p.age_limit_max,
	COALESCE(p.features, '{}'), COALESCE(p.tags, '{}'),
	p.is_popular, p.is_new, p.created_at,
	COALESCE(c.name, ''), COALESCE(c.description, '')
FROM insurance_products p
LEFT JOIN insurance_categories c ON c.id = p.category_id
WHERE p.is_active`

const (
	listCategoriesSQL = `
SELECT id::text, name, COALESCE(description, ''), COALESCE(icon_url, ''), sort_order
FROM insurance_categories
ORDER BY sort_order, name`

	listPopularProductsSQL = `SELECT` + productColumns + `
	AND p.is_popular
ORDER BY p.created_at DESC
LIMIT NULLIF($1::int, 0)`

	listProductsSQL = `SELECT` + productColumns + `
	AND ($1 = '' OR p.category_id::text = $1 OR c.name = $1)
ORDER BY p.is_popular DESC, p.created_at DESC
LIMIT NULLIF($2::int, 0)`

	getProductSQL = `SELECT` + productColumns + `
	AND p.id = $1`

	listRelatedProductsSQL = `SELECT` + productColumns + `
	AND p.category_id::text = $1
	AND p.id::text <> $2
ORDER BY p.is_popular DESC, p.created_at DESC
LIMIT NULLIF($3::int, 0)`

	searchEligibleProductsSQL = `SELECT` + productColumns + `
	AND ($1::int IS NULL OR (p.age_limit_min <= $1 AND p.age_limit_max >= $1))
	AND (cardinality($2::text[]) = 0 OR EXISTS (
		SELECT 1 FROM unnest($2::text[]) AS kw
		WHERE p.name ILIKE '%' || kw || '%'
			OR p.description ILIKE '%' || kw || '%'
			OR kw = ANY(p.tags)
	))
ORDER BY p.is_popular DESC, p.created_at DESC
LIMIT NULLIF($3::int, 0)`

	faqColumns = `
SELECT id::text, COALESCE(category, ''), question, answer, COALESCE(keywords, '{}'), is_popular, sort_order
FROM faqs`

	listFAQsSQL = faqColumns + `
WHERE ($1 = '' OR category = $1)
ORDER BY sort_order, question
LIMIT NULLIF($2::int, 0)`

	searchFAQsSQL = faqColumns + `
WHERE question ILIKE '%' || $1 || '%'
	OR answer ILIKE '%' || $1 || '%'
	OR $1 = ANY(keywords)
ORDER BY is_popular DESC, sort_order
LIMIT NULLIF($2::int, 0)`

	testimonialColumns = `
SELECT t.id::text, COALESCE(t.product_id::text, ''), COALESCE(u.name, ''), COALESCE(p.name, ''),
	t.title, t.content, t.rating, t.is_verified, t.created_at
FROM customer_testimonials t
LEFT JOIN users u ON u.id = t.user_id
LEFT JOIN insurance_products p ON p.id = t.product_id
WHERE t.is_verified`

	listTestimonialsSQL = testimonialColumns + `
	AND ($1 = '' OR t.product_id::text = $1)
ORDER BY t.rating DESC, t.created_at DESC
LIMIT NULLIF($2::int, 0)`

	searchTestimonialsSQL = testimonialColumns + `
	AND (t.title ILIKE '%' || $1 || '%' OR t.content ILIKE '%' || $1 || '%')
ORDER BY t.rating DESC, t.created_at DESC
LIMIT NULLIF($2::int, 0)`
)

func (r *CatalogPostgres) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

func (r *CatalogPostgres) ListCategories(ctx context.Context) ([]*entity.InsuranceCategory, error) {
	rows, err := r.db.Query(ctx, listCategoriesSQL)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	categories, err := pgx.CollectRows(rows, scanCategory)
	if err != nil {
		return nil, fmt.Errorf("scan categories: %w", err)
	}

	return categories, nil
}

func (r *CatalogPostgres) ListPopularProducts(ctx context.Context, limit int) ([]*entity.InsuranceProduct, error) {
	return r.queryProducts(ctx, "list popular products", listPopularProductsSQL, limit)
}

func (r *CatalogPostgres) ListProducts(ctx context.Context, category string, limit int) ([]*entity.InsuranceProduct, error) {
	return r.queryProducts(ctx, "list products", listProductsSQL, category, limit)
}

func (r *CatalogPostgres) GetProduct(ctx context.Context, id string) (*entity.InsuranceProduct, error) {
	productID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: product_id %q", entity.ErrInvalidParameter, id)
	}

	rows, err := r.db.Query(ctx, getProductSQL, productID.String())
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}

	product, err := pgx.CollectExactlyOneRow(rows, scanProduct)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrProductNotFound
		}
		return nil, fmt.Errorf("get product: %w", err)
	}

	return product, nil
}

func (r *CatalogPostgres) ListRelatedProducts(ctx context.Context, categoryID, excludeID string, limit int) ([]*entity.InsuranceProduct, error) {
	if categoryID == "" {
		return nil, nil
	}
	return r.queryProducts(ctx, "list related products", listRelatedProductsSQL, categoryID, excludeID, limit)
}

// SearchEligibleProducts returns active products accepting age (when set) and
// matching any keyword by name, description or tag
func (r *CatalogPostgres) SearchEligibleProducts(ctx context.Context, age *int, keywords []string, limit int) ([]*entity.InsuranceProduct, error) {
	if keywords == nil {
		keywords = []string{}
	}
	return r.queryProducts(ctx, "search eligible products", searchEligibleProductsSQL, age, keywords, limit)
}

func (r *CatalogPostgres) ListFAQs(ctx context.Context, category string, limit int) ([]*entity.FAQEntry, error) {
	return r.queryFAQs(ctx, "list faqs", listFAQsSQL, category, limit)
}

func (r *CatalogPostgres) SearchFAQs(ctx context.Context, query string, limit int) ([]*entity.FAQEntry, error) {
	return r.queryFAQs(ctx, "search faqs", searchFAQsSQL, query, limit)
}

func (r *CatalogPostgres) ListVerifiedTestimonials(ctx context.Context, productID string, limit int) ([]*entity.Testimonial, error) {
	return r.queryTestimonials(ctx, "list testimonials", listTestimonialsSQL, productID, limit)
}

func (r *CatalogPostgres) SearchTestimonials(ctx context.Context, query string, limit int) ([]*entity.Testimonial, error) {
	return r.queryTestimonials(ctx, "search testimonials", searchTestimonialsSQL, query, limit)
}

func (r *CatalogPostgres) queryProducts(ctx context.Context, op, sql string, args ...any) ([]*entity.InsuranceProduct, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	products, err := pgx.CollectRows(rows, scanProduct)
	if err != nil {
		return nil, fmt.Errorf("%s: scan: %w", op, err)
	}

	return products, nil
}

func (r *CatalogPostgres) queryFAQs(ctx context.Context, op, sql string, args ...any) ([]*entity.FAQEntry, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	faqs, err := pgx.CollectRows(rows, scanFAQ)
	if err != nil {
		return nil, fmt.Errorf("%s: scan: %w", op, err)
	}

	return faqs, nil
}

func (r *CatalogPostgres) queryTestimonials(ctx context.Context, op, sql string, args ...any) ([]*entity.Testimonial, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	testimonials, err := pgx.CollectRows(rows, scanTestimonial)
	if err != nil {
		return nil, fmt.Errorf("%s: scan: %w", op, err)
	}

	return testimonials, nil
}
