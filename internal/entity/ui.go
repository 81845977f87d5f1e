package entity

// UIComponent is a typed UI descriptor rendered by the frontend
type UIComponent struct {
	Type     string         `json:"type"`
	ID       string         `json:"id"`
	Title    string         `json:"title,omitempty"`
	Content  string         `json:"content"`
	Style    string         `json:"style,omitempty"`
	Priority int            `json:"priority"`
	Data     map[string]any `json:"data,omitempty"`
}

// UXResponse is the wire envelope of every UI generation call
type UXResponse struct {
	Components    []UIComponent `json:"components"`
	TotalProducts *int          `json:"total_products,omitempty"`
	GeneratedAt   string        `json:"generated_at"`
	AIGenerated   bool          `json:"ai_generated"`
}

type GenerateUIRequest struct {
	PageType  PageType `json:"page_type"`
	UserQuery string   `json:"user_query,omitempty"`
	ProductID string   `json:"product_id,omitempty"`
}

type GenerateSmartUIRequest struct {
	Query string `json:"query"`
}
