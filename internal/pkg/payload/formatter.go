package payload

import (
	"bytes"
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/charole/auto-ux-backend/internal/entity"
)

const (
	DefaultSearchBudget  = 15000
	DefaultGenericBudget = 5000

	maxSearchFAQs         = 10
	maxSearchTestimonials = 5

	defaultCustomerName = "고객"
)

// BoundedPayload is the prompt-ready serialization of collected catalog data
type BoundedPayload struct {
	Text      string
	Truncated bool
	// Products is the number of products that survived eligibility filtering
	Products int
}

type Formatter struct {
	searchBudget  int
	genericBudget int
}

func NewFormatter(searchBudget, genericBudget int) *Formatter {
	if searchBudget <= 0 {
		searchBudget = DefaultSearchBudget
	}
	if genericBudget <= 0 {
		genericBudget = DefaultGenericBudget
	}
	return &Formatter{
		searchBudget:  searchBudget,
		genericBudget: genericBudget,
	}
}

type productSummary struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	Description         string   `json:"description"`
	BasePrice           int64    `json:"base_price"`
	MaxCoverage         int64    `json:"max_coverage"`
	Features            []string `json:"features"`
	Tags                []string `json:"tags"`
	CategoryName        string   `json:"category_name"`
	CategoryDescription string   `json:"category_description"`
	IsPopular           bool     `json:"is_popular"`
	IsNew               bool     `json:"is_new"`
	AgeLimitMin         int      `json:"age_limit_min"`
	AgeLimitMax         int      `json:"age_limit_max"`
	FormattedPrice      string   `json:"formatted_price"`
	FormattedCoverage   string   `json:"formatted_coverage"`
	TargetAgeGroup      string   `json:"target_age_group"`
	Highlights          []string `json:"product_highlights"`
}

type productSection struct {
	Total    int              `json:"총_개수"`
	Products []productSummary `json:"상품_목록"`
	Source   string           `json:"데이터_상태"`
}

type faqSummary struct {
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Category string   `json:"category"`
	Keywords []string `json:"keywords"`
}

type testimonialSummary struct {
	Title        string `json:"title"`
	Content      string `json:"content"`
	Rating       int    `json:"rating"`
	CustomerName string `json:"customer_name"`
	ProductName  string `json:"product_name"`
	IsVerified   bool   `json:"is_verified"`
}

type searchDocument struct {
	Products     *productSection             `json:"보험상품_전체,omitempty"`
	Categories   []*entity.InsuranceCategory `json:"보험카테고리,omitempty"`
	FAQs         []faqSummary                `json:"자주묻는질문,omitempty"`
	Testimonials []testimonialSummary        `json:"고객후기,omitempty"`
}

// FormatSearch builds the search payload. When uc carries an age only eligible
// products are kept.
func (f *Formatter) FormatSearch(data *entity.CatalogData, uc *entity.UserContext) BoundedPayload {
	if data == nil {
		data = &entity.CatalogData{}
	}

	doc := searchDocument{Categories: data.Categories}

	products := EligibleProducts(data.Products, uc)
	if len(products) > 0 {
		summaries := make([]productSummary, 0, len(products))
		for _, p := range products {
			summaries = append(summaries, summarizeProduct(p))
		}
		doc.Products = &productSection{
			Total:    len(summaries),
			Products: summaries,
			Source:   "실제_DB_데이터",
		}
	}

	for i, faq := range data.FAQs {
		if i >= maxSearchFAQs {
			break
		}
		doc.FAQs = append(doc.FAQs, faqSummary{
			Question: faq.Question,
			Answer:   faq.Answer,
			Category: faq.Category,
			Keywords: faq.Keywords,
		})
	}

	for i, t := range data.Testimonials {
		if i >= maxSearchTestimonials {
			break
		}
		name := t.UserName
		if name == "" {
			name = defaultCustomerName
		}
		doc.Testimonials = append(doc.Testimonials, testimonialSummary{
			Title:        t.Title,
			Content:      t.Content,
			Rating:       t.Rating,
			CustomerName: name,
			ProductName:  t.ProductName,
			IsVerified:   t.IsVerified,
		})
	}

	bp := f.bound(doc, f.searchBudget)
	bp.Products = len(products)
	return bp
}

// FormatGeneric serializes the collected data as is
func (f *Formatter) FormatGeneric(data *entity.CatalogData) BoundedPayload {
	if data == nil {
		data = &entity.CatalogData{}
	}
	bp := f.bound(data, f.genericBudget)
	bp.Products = data.ProductCount()
	return bp
}

// EligibleProducts drops every product whose age bounds exclude the context age
func EligibleProducts(products []*entity.InsuranceProduct, uc *entity.UserContext) []*entity.InsuranceProduct {
	if !uc.HasAge() {
		return products
	}

	eligible := make([]*entity.InsuranceProduct, 0, len(products))
	for _, p := range products {
		if p.EligibleFor(*uc.Age) {
			eligible = append(eligible, p)
		}
	}
	return eligible
}

func summarizeProduct(p *entity.InsuranceProduct) productSummary {
	s := productSummary{
		ID:                p.ID,
		Name:              p.Name,
		Description:       p.Description,
		BasePrice:         p.BasePrice,
		MaxCoverage:       p.MaxCoverage,
		Features:          p.Features,
		Tags:              p.Tags,
		IsPopular:         p.IsPopular,
		IsNew:             p.IsNew,
		AgeLimitMin:       p.AgeLimitMin,
		AgeLimitMax:       p.AgeLimitMax,
		FormattedPrice:    FormatPrice(p.BasePrice),
		FormattedCoverage: FormatCoverage(p.MaxCoverage),
		TargetAgeGroup:    TargetAgeGroup(p.AgeLimitMin, p.AgeLimitMax),
		Highlights:        Highlights(p),
	}
	if p.Category != nil {
		s.CategoryName = p.Category.Name
		s.CategoryDescription = p.Category.Description
	}
	return s
}

func (f *Formatter) bound(v any, budget int) BoundedPayload {
	text, err := serialize(v)
	if err != nil {
		text = fmt.Sprintf("%+v", v)
	}

	truncated := Truncate(text, budget)
	return BoundedPayload{
		Text:      truncated,
		Truncated: len(truncated) < len(text),
	}
}

func serialize(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

// Truncate hard-cuts s to at most budget characters (runes)
func Truncate(s string, budget int) string {
	if budget < 0 {
		budget = 0
	}
	if utf8.RuneCountInString(s) <= budget {
		return s
	}

	n := 0
	for i := range s {
		if n == budget {
			return s[:i]
		}
		n++
	}
	return s
}
