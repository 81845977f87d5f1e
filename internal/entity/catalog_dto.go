package entity

const (
	DefaultSearchLimit = 20
	MaxSearchLimit     = 100
)

type SearchRequest struct {
	Query               string
	Limit               int
	IncludeProducts     bool
	IncludeFAQs         bool
	IncludeTestimonials bool
}

// Normalize clamps the limit into [1, MaxSearchLimit]
func (r *SearchRequest) Normalize() {
	if r.Limit <= 0 {
		r.Limit = DefaultSearchLimit
	}
	if r.Limit > MaxSearchLimit {
		r.Limit = MaxSearchLimit
	}
}

type ScoredProduct struct {
	*InsuranceProduct
	Score float64 `json:"score"`
}

type ScoredFAQ struct {
	*FAQEntry
	Score float64 `json:"score"`
}

type ScoredTestimonial struct {
	*Testimonial
	Score float64 `json:"score"`
}

type SearchResults struct {
	Products     []ScoredProduct     `json:"products"`
	FAQs         []ScoredFAQ         `json:"faqs"`
	Testimonials []ScoredTestimonial `json:"testimonials"`
}

type SearchResponse struct {
	Query        string        `json:"query"`
	TotalResults int           `json:"total_results"`
	Results      SearchResults `json:"results"`
}

type ListProductsRequest struct {
	Category string
	Limit    int
}

type ListFAQsRequest struct {
	Category string
	Limit    int
}

type ListTestimonialsRequest struct {
	ProductID string
	Limit     int
}

type ListProductsResponse struct {
	Products []*InsuranceProduct `json:"products"`
	Total    int                 `json:"total"`
}

type ListCategoriesResponse struct {
	Categories []*InsuranceCategory `json:"categories"`
}

type ListFAQsResponse struct {
	FAQs []*FAQEntry `json:"faqs"`
}

type ListTestimonialsResponse struct {
	Testimonials []*Testimonial `json:"testimonials"`
}

type HealthResponse struct {
	Status            string `json:"status"`
	DatabaseConnected bool   `json:"database_connected"`
	AIAvailable       bool   `json:"ai_available"`
	Timestamp         string `json:"timestamp"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
