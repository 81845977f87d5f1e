package entity

import (
	"time"
)

// PageType selects the fetch plan, prompt template and fallback fixture of a generation request
type PageType string

const (
	PageTypeHome          PageType = "home"
	PageTypeProducts      PageType = "products"
	PageTypeSearch        PageType = "search"
	PageTypeProductDetail PageType = "product_detail"
)

func (pt PageType) String() string {
	return string(pt)
}

// CategoryRef holds category display fields joined onto a product
type CategoryRef struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type InsuranceProduct struct {
	ID          string       `json:"id"`
	CategoryID  string       `json:"category_id,omitempty"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	BasePrice   int64        `json:"base_price"`
	MaxCoverage int64        `json:"max_coverage"`
	AgeLimitMin int          `json:"age_limit_min"`
	AgeLimitMax int          `json:"age_limit_max"`
	Features    []string     `json:"features,omitempty"`
	Tags        []string     `json:"tags,omitempty"`
	IsPopular   bool         `json:"is_popular"`
	IsNew       bool         `json:"is_new"`
	Category    *CategoryRef `json:"category,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
}

// EligibleFor reports whether age lies inside the product's inclusive age bounds
func (p *InsuranceProduct) EligibleFor(age int) bool {
	return p.AgeLimitMin <= age && age <= p.AgeLimitMax
}

type InsuranceCategory struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IconURL     string `json:"icon_url,omitempty"`
	SortOrder   int    `json:"sort_order"`
}

type FAQEntry struct {
	ID        string   `json:"id"`
	Category  string   `json:"category,omitempty"`
	Question  string   `json:"question"`
	Answer    string   `json:"answer"`
	Keywords  []string `json:"keywords,omitempty"`
	IsPopular bool     `json:"is_popular"`
	SortOrder int      `json:"sort_order"`
}

type Testimonial struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id,omitempty"`
	UserName    string    `json:"user_name,omitempty"`
	ProductName string    `json:"product_name,omitempty"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Rating      int       `json:"rating"`
	IsVerified  bool      `json:"is_verified"`
	CreatedAt   time.Time `json:"created_at"`
}

// CatalogData is the result of executing a page type's fetch plan
type CatalogData struct {
	Categories   []*InsuranceCategory `json:"categories,omitempty"`
	Products     []*InsuranceProduct  `json:"products,omitempty"`
	Product      *InsuranceProduct    `json:"product,omitempty"`
	FAQs         []*FAQEntry          `json:"faqs,omitempty"`
	Testimonials []*Testimonial       `json:"testimonials,omitempty"`
}

// ProductCount returns the number of products collected, counting a detail product once
func (d *CatalogData) ProductCount() int {
	if d == nil {
		return 0
	}
	n := len(d.Products)
	if d.Product != nil {
		n++
	}
	return n
}
