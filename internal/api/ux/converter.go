package ux

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/charole/auto-ux-backend/internal/entity"
)

// toGenerateUIRequest reads the request from the query string and, for POST,
// from an optional JSON body whose non-empty fields take precedence
func toGenerateUIRequest(r *http.Request) (*entity.GenerateUIRequest, error) {
	q := r.URL.Query()
	req := &entity.GenerateUIRequest{
		PageType:  entity.PageType(strings.TrimSpace(q.Get("page_type"))),
		UserQuery: strings.TrimSpace(q.Get("user_query")),
		ProductID: strings.TrimSpace(q.Get("product_id")),
	}

	if r.Method == http.MethodPost && r.ContentLength != 0 {
		var body entity.GenerateUIRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			return nil, err
		}
		if body.PageType != "" {
			req.PageType = entity.PageType(strings.TrimSpace(body.PageType.String()))
		}
		if body.UserQuery != "" {
			req.UserQuery = strings.TrimSpace(body.UserQuery)
		}
		if body.ProductID != "" {
			req.ProductID = strings.TrimSpace(body.ProductID)
		}
	}

	if req.PageType == "" {
		req.PageType = entity.PageTypeHome
	}

	return req, nil
}

func toSearchRequest(q url.Values) (*entity.SearchRequest, error) {
	limit, err := parseLimit(q)
	if err != nil {
		return nil, err
	}

	return &entity.SearchRequest{
		Query:               strings.TrimSpace(q.Get("q")),
		Limit:               limit,
		IncludeProducts:     parseBool(q, "include_products", true),
		IncludeFAQs:         parseBool(q, "include_faqs", true),
		IncludeTestimonials: parseBool(q, "include_testimonials", true),
	}, nil
}

func parseLimit(q url.Values) (int, error) {
	raw := q.Get("limit")
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

func parseBool(q url.Values, key string, def bool) bool {
	v, err := strconv.ParseBool(q.Get(key))
	if err != nil {
		return def
	}
	return v
}
