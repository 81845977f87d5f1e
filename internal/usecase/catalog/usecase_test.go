package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/charole/auto-ux-backend/internal/config"
	"github.com/charole/auto-ux-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	categories   []*entity.InsuranceCategory
	products     []*entity.InsuranceProduct
	faqs         []*entity.FAQEntry
	testimonials []*entity.Testimonial
	err          error
	getErr       error

	categoryCalls int
	faqCalls      int
	searchKeys    []string
}

func (f *fakeRepo) Ping(ctx context.Context) error { return f.err }

func (f *fakeRepo) ListCategories(ctx context.Context) ([]*entity.InsuranceCategory, error) {
	f.categoryCalls++
	return f.categories, f.err
}

func (f *fakeRepo) ListProducts(ctx context.Context, category string, limit int) ([]*entity.InsuranceProduct, error) {
	return f.products, f.err
}

func (f *fakeRepo) GetProduct(ctx context.Context, id string) (*entity.InsuranceProduct, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.products[0], nil
}

func (f *fakeRepo) SearchEligibleProducts(ctx context.Context, age *int, keywords []string, limit int) ([]*entity.InsuranceProduct, error) {
	f.searchKeys = keywords
	return f.products, f.err
}

func (f *fakeRepo) ListFAQs(ctx context.Context, category string, limit int) ([]*entity.FAQEntry, error) {
	f.faqCalls++
	return f.faqs, f.err
}

func (f *fakeRepo) SearchFAQs(ctx context.Context, query string, limit int) ([]*entity.FAQEntry, error) {
	return f.faqs, f.err
}

func (f *fakeRepo) ListVerifiedTestimonials(ctx context.Context, productID string, limit int) ([]*entity.Testimonial, error) {
	return f.testimonials, f.err
}

func (f *fakeRepo) SearchTestimonials(ctx context.Context, query string, limit int) ([]*entity.Testimonial, error) {
	return f.testimonials, f.err
}

func cacheConfig() config.CatalogCacheConfig {
	return config.CatalogCacheConfig{TTL: time.Minute, CleanupInterval: time.Minute}
}

func TestListCategories_Cached(t *testing.T) {
	repo := &fakeRepo{categories: []*entity.InsuranceCategory{{ID: "c1", Name: "어린이보험"}}}
	uc := NewUsecase(repo, cacheConfig())

	for range 3 {
		resp, err := uc.ListCategories(context.Background())
		require.NoError(t, err)
		assert.Len(t, resp.Categories, 1)
	}
	assert.Equal(t, 1, repo.categoryCalls)
}

func TestListCategories_ErrorNotCached(t *testing.T) {
	repo := &fakeRepo{err: errors.New("relation does not exist")}
	uc := NewUsecase(repo, cacheConfig())

	_, err := uc.ListCategories(context.Background())
	assert.ErrorIs(t, err, entity.ErrDataAccess)

	repo.err = nil
	resp, err := uc.ListCategories(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, resp.Categories)
	assert.Equal(t, 2, repo.categoryCalls)
}

func TestListFAQs_CachedPerCategory(t *testing.T) {
	repo := &fakeRepo{faqs: []*entity.FAQEntry{{ID: "f1", Question: "가입 나이는?"}}}
	uc := NewUsecase(repo, cacheConfig())
	ctx := context.Background()

	_, err := uc.ListFAQs(ctx, &entity.ListFAQsRequest{Category: "가입", Limit: 10})
	require.NoError(t, err)
	_, err = uc.ListFAQs(ctx, &entity.ListFAQsRequest{Category: "가입", Limit: 10})
	require.NoError(t, err)
	_, err = uc.ListFAQs(ctx, &entity.ListFAQsRequest{Category: "보상", Limit: 10})
	require.NoError(t, err)

	assert.Equal(t, 2, repo.faqCalls)
}

func TestListCategoriesAndFAQs_CallerMutationsDoNotReachCache(t *testing.T) {
	repo := &fakeRepo{
		categories: []*entity.InsuranceCategory{{ID: "c1", Name: "어린이보험"}, {ID: "c2", Name: "건강보험"}},
		faqs:       []*entity.FAQEntry{{ID: "f1", Question: "가입 나이는?", Keywords: []string{"나이"}}},
	}
	uc := NewUsecase(repo, cacheConfig())
	ctx := context.Background()

	first, err := uc.ListCategories(ctx)
	require.NoError(t, err)
	first.Categories[0].Name = "변경됨"
	first.Categories[1] = nil

	faqs, err := uc.ListFAQs(ctx, &entity.ListFAQsRequest{Limit: 10})
	require.NoError(t, err)
	faqs.FAQs[0].Question = "변경됨"
	faqs.FAQs[0].Keywords[0] = "변경됨"

	second, err := uc.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, second.Categories, 2)
	assert.Equal(t, "어린이보험", second.Categories[0].Name)
	require.NotNil(t, second.Categories[1])
	assert.Equal(t, "건강보험", second.Categories[1].Name)

	faqs, err = uc.ListFAQs(ctx, &entity.ListFAQsRequest{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, "가입 나이는?", faqs.FAQs[0].Question)
	assert.Equal(t, []string{"나이"}, faqs.FAQs[0].Keywords)

	assert.Equal(t, 1, repo.categoryCalls)
	assert.Equal(t, 1, repo.faqCalls)
}

func TestListProducts(t *testing.T) {
	uc := NewUsecase(&fakeRepo{}, cacheConfig())

	resp, err := uc.ListProducts(context.Background(), &entity.ListProductsRequest{})
	require.NoError(t, err)
	assert.NotNil(t, resp.Products)
	assert.Equal(t, 0, resp.Total)
}

func TestGetProduct_Errors(t *testing.T) {
	tests := []struct {
		name   string
		repoEr error
		want   error
	}{
		{"not found", entity.ErrProductNotFound, entity.ErrProductNotFound},
		{"invalid id", entity.ErrInvalidParameter, entity.ErrInvalidParameter},
		{"store failure", errors.New("conn reset"), entity.ErrDataAccess},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewUsecase(&fakeRepo{getErr: tt.repoEr}, cacheConfig())
			_, err := uc.GetProduct(context.Background(), "id")
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSearch_ScoresAndOrders(t *testing.T) {
	repo := &fakeRepo{
		products: []*entity.InsuranceProduct{
			{ID: "p1", Name: "안심생명보험", Description: "어린이 특약 포함"},
			{ID: "p2", Name: "우리아이 어린이보험", Description: "어린이 종합 보장", Tags: []string{"어린이"}, IsPopular: true},
			{ID: "p3", Name: "어린이 치아보험"},
		},
		faqs: []*entity.FAQEntry{
			{ID: "f1", Question: "가입 나이", Answer: "어린이도 가입 가능", IsPopular: true},
			{ID: "f2", Question: "어린이 보험 추천", Keywords: []string{"어린이"}},
		},
		testimonials: []*entity.Testimonial{
			{ID: "t1", Title: "좋아요", Content: "어린이 보험 만족", Rating: 3},
			{ID: "t2", Title: "어린이 보험 후기", Content: "추천", Rating: 5},
		},
	}
	uc := NewUsecase(repo, cacheConfig())

	resp, err := uc.Search(context.Background(), &entity.SearchRequest{
		Query:               " 어린이 ",
		IncludeProducts:     true,
		IncludeFAQs:         true,
		IncludeTestimonials: true,
	})
	require.NoError(t, err)

	assert.Equal(t, "어린이", resp.Query)
	assert.Equal(t, []string{"어린이"}, repo.searchKeys)
	assert.Equal(t, 7, resp.TotalResults)

	products := resp.Results.Products
	require.Len(t, products, 3)
	assert.Equal(t, "p2", products[0].ID)
	assert.Equal(t, 20.0, products[0].Score)
	// p3 and p1 tie order is preserved from the store
	assert.Equal(t, "p3", products[1].ID)
	assert.Equal(t, 10.0, products[1].Score)
	assert.Equal(t, "p1", products[2].ID)
	assert.Equal(t, 5.0, products[2].Score)

	faqs := resp.Results.FAQs
	require.Len(t, faqs, 2)
	assert.Equal(t, "f2", faqs[0].ID)
	assert.Equal(t, 13.0, faqs[0].Score)
	assert.Equal(t, 7.0, faqs[1].Score)

	testimonials := resp.Results.Testimonials
	require.Len(t, testimonials, 2)
	assert.Equal(t, "t2", testimonials[0].ID)
	assert.Equal(t, 10.5, testimonials[0].Score)
	assert.Equal(t, 4.0, testimonials[1].Score)
}

func TestSearch_IncludeFlags(t *testing.T) {
	repo := &fakeRepo{
		products: []*entity.InsuranceProduct{{ID: "p1", Name: "암보험"}},
		faqs:     []*entity.FAQEntry{{ID: "f1", Question: "암 진단"}},
	}
	uc := NewUsecase(repo, cacheConfig())

	resp, err := uc.Search(context.Background(), &entity.SearchRequest{Query: "암", IncludeFAQs: true})
	require.NoError(t, err)

	assert.Empty(t, resp.Results.Products)
	assert.NotNil(t, resp.Results.Products)
	assert.Len(t, resp.Results.FAQs, 1)
	assert.Nil(t, repo.searchKeys)
}

func TestSearch_Validation(t *testing.T) {
	uc := NewUsecase(&fakeRepo{}, cacheConfig())

	_, err := uc.Search(context.Background(), &entity.SearchRequest{Query: "   "})
	assert.ErrorIs(t, err, entity.ErrMissingField)
}

func TestSearch_StoreFailure(t *testing.T) {
	uc := NewUsecase(&fakeRepo{err: errors.New("timeout")}, cacheConfig())

	_, err := uc.Search(context.Background(), &entity.SearchRequest{Query: "암", IncludeProducts: true})
	assert.ErrorIs(t, err, entity.ErrDataAccess)
}
