package catalog

import (
	"cmp"
	"slices"
	"strings"

	"github.com/charole/auto-ux-backend/internal/entity"
)

// Relevance weights
const (
	productNameWeight        = 10
	productDescriptionWeight = 5
	productTagWeight         = 3
	popularBonus             = 2

	faqQuestionWeight = 10
	faqAnswerWeight   = 5
	faqKeywordWeight  = 3

	testimonialTitleWeight   = 8
	testimonialContentWeight = 4
	highRatingThreshold      = 4
	ratingBonusFactor        = 0.5
)

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func scoreProducts(products []*entity.InsuranceProduct, query string) []entity.ScoredProduct {
	scored := make([]entity.ScoredProduct, 0, len(products))
	for _, p := range products {
		var score float64
		if containsFold(p.Name, query) {
			score += productNameWeight
		}
		if containsFold(p.Description, query) {
			score += productDescriptionWeight
		}
		for _, tag := range p.Tags {
			if containsFold(tag, query) {
				score += productTagWeight
			}
		}
		if p.IsPopular {
			score += popularBonus
		}
		scored = append(scored, entity.ScoredProduct{InsuranceProduct: p, Score: score})
	}

	slices.SortStableFunc(scored, func(a, b entity.ScoredProduct) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return scored
}

func scoreFAQs(faqs []*entity.FAQEntry, query string) []entity.ScoredFAQ {
	scored := make([]entity.ScoredFAQ, 0, len(faqs))
	for _, f := range faqs {
		var score float64
		if containsFold(f.Question, query) {
			score += faqQuestionWeight
		}
		if containsFold(f.Answer, query) {
			score += faqAnswerWeight
		}
		for _, kw := range f.Keywords {
			if containsFold(kw, query) {
				score += faqKeywordWeight
			}
		}
		if f.IsPopular {
			score += popularBonus
		}
		scored = append(scored, entity.ScoredFAQ{FAQEntry: f, Score: score})
	}

	slices.SortStableFunc(scored, func(a, b entity.ScoredFAQ) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return scored
}

func scoreTestimonials(testimonials []*entity.Testimonial, query string) []entity.ScoredTestimonial {
	scored := make([]entity.ScoredTestimonial, 0, len(testimonials))
	for _, t := range testimonials {
		var score float64
		if containsFold(t.Title, query) {
			score += testimonialTitleWeight
		}
		if containsFold(t.Content, query) {
			score += testimonialContentWeight
		}
		if t.Rating >= highRatingThreshold {
			score += float64(t.Rating) * ratingBonusFactor
		}
		scored = append(scored, entity.ScoredTestimonial{Testimonial: t, Score: score})
	}

	slices.SortStableFunc(scored, func(a, b entity.ScoredTestimonial) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return scored
}
