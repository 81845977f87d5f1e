package payload

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/charole/auto-ux-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func childProduct() *entity.InsuranceProduct {
	return &entity.InsuranceProduct{
		ID:          "p-kids",
		Name:        "우리아이 종합보험",
		BasePrice:   25000,
		MaxCoverage: 100_000_000,
		AgeLimitMin: 0,
		AgeLimitMax: 18,
		Features:    []string{"입원비 보장", "성장기 질환 특약"},
		IsPopular:   true,
		Category:    &entity.CategoryRef{Name: "어린이보험"},
	}
}

func adultProduct() *entity.InsuranceProduct {
	return &entity.InsuranceProduct{
		ID:          "p-adult",
		Name:        "직장인 암보험",
		BasePrice:   120000,
		MaxCoverage: 60_000_000,
		AgeLimitMin: 20,
		AgeLimitMax: 60,
		Category:    &entity.CategoryRef{Name: "암보험"},
	}
}

func TestFormatPriceAndCoverage(t *testing.T) {
	assert.Equal(t, "가격 문의", FormatPrice(0))
	assert.Equal(t, "900원/월", FormatPrice(900))
	assert.Equal(t, "25,000원/월", FormatPrice(25000))
	assert.Equal(t, "1,234,567원/월", FormatPrice(1234567))
	assert.Equal(t, "보장 한도 문의", FormatCoverage(0))
	assert.Equal(t, "100,000,000원", FormatCoverage(100_000_000))
}

func TestTargetAgeGroup(t *testing.T) {
	tests := []struct {
		min, max int
		want     string
	}{
		{0, 80, "20대 적합"},
		{25, 39, "30대 적합"},
		{35, 49, "40대 적합"},
		{0, 18, "10대-20대 초반 적합"},
		{50, 80, "중장년층 적합"},
		{41, 55, "41세-55세 가입 가능"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TargetAgeGroup(tt.min, tt.max))
	}
}

func TestHighlights(t *testing.T) {
	assert.Equal(t,
		[]string{"인기 상품", "저렴한 보험료", "고액 보장", "입원비 보장"},
		Highlights(childProduct()),
	)

	assert.Equal(t, []string{"프리미엄 상품", "충분한 보장"}, Highlights(adultProduct()))

	p := &entity.InsuranceProduct{
		Features: []string{"아주 긴 특징 설명이 스무 글자를 넘어가는 경우입니다", "짧은 특징", "세 번째"},
	}
	assert.Equal(t, []string{"짧은 특징"}, Highlights(p))
}

func TestFormatSearch_FiltersByContextAge(t *testing.T) {
	f := NewFormatter(0, 0)
	data := &entity.CatalogData{
		Products: []*entity.InsuranceProduct{childProduct(), adultProduct()},
	}

	bp := f.FormatSearch(data, &entity.UserContext{Age: intPtr(5), AgeGroup: "어린이"})

	assert.Equal(t, 1, bp.Products)
	assert.False(t, bp.Truncated)
	assert.Contains(t, bp.Text, "우리아이 종합보험")
	assert.NotContains(t, bp.Text, "직장인 암보험")
	assert.Contains(t, bp.Text, `"formatted_price": "25,000원/월"`)
	assert.Contains(t, bp.Text, `"target_age_group": "10대-20대 초반 적합"`)
}

func TestFormatSearch_NoAgeKeepsAllProducts(t *testing.T) {
	f := NewFormatter(0, 0)
	data := &entity.CatalogData{
		Products: []*entity.InsuranceProduct{childProduct(), adultProduct()},
	}

	bp := f.FormatSearch(data, &entity.UserContext{AgeGroup: "전연령"})
	assert.Equal(t, 2, bp.Products)
	assert.Contains(t, bp.Text, "직장인 암보험")
}

func TestFormatSearch_BoundsFAQsAndTestimonials(t *testing.T) {
	f := NewFormatter(0, 0)
	data := &entity.CatalogData{}
	for i := 0; i < 15; i++ {
		data.FAQs = append(data.FAQs, &entity.FAQEntry{Question: "질문"})
	}
	for i := 0; i < 8; i++ {
		data.Testimonials = append(data.Testimonials, &entity.Testimonial{Title: "후기"})
	}

	bp := f.FormatSearch(data, nil)
	assert.Equal(t, 10, strings.Count(bp.Text, `"question"`))
	assert.Equal(t, 5, strings.Count(bp.Text, `"customer_name": "고객"`))
}

func TestFormatSearch_HardCutAtBudget(t *testing.T) {
	const budget = 200
	f := NewFormatter(budget, 0)
	data := &entity.CatalogData{}
	for i := 0; i < 20; i++ {
		data.Products = append(data.Products, childProduct())
	}

	bp := f.FormatSearch(data, nil)
	require.True(t, bp.Truncated)
	assert.Equal(t, budget, utf8.RuneCountInString(bp.Text))
	assert.True(t, utf8.ValidString(bp.Text))
}

func TestFormatGeneric(t *testing.T) {
	f := NewFormatter(0, 50)
	data := &entity.CatalogData{
		Categories: []*entity.InsuranceCategory{{ID: "c1", Name: "암보험"}},
		Products:   []*entity.InsuranceProduct{adultProduct()},
	}

	bp := f.FormatGeneric(data)
	assert.Equal(t, 1, bp.Products)
	assert.True(t, bp.Truncated)
	assert.Equal(t, 50, utf8.RuneCountInString(bp.Text))

	empty := f.FormatGeneric(nil)
	assert.Equal(t, "{}", empty.Text)
	assert.Equal(t, 0, empty.Products)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 10))
	assert.Equal(t, "ab", Truncate("abc", 2))
	assert.Equal(t, "", Truncate("abc", 0))
	assert.Equal(t, "가나", Truncate("가나다라", 2))
	assert.Equal(t, "", Truncate("abc", -1))
}
