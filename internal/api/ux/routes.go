package ux

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers UI generation and catalog routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/api/v1/ux", func(r chi.Router) {
		r.Get("/generate-ui", h.GenerateUI)
		r.Post("/generate-ui", h.GenerateUI)
		r.Get("/generate-ui-smart", h.GenerateSmartUI)

		r.Get("/search", h.Search)
		r.Get("/categories", h.ListCategories)
		r.Get("/faqs", h.ListFAQs)
		r.Get("/testimonials", h.ListTestimonials)
		r.Get("/health", h.Health)

		r.Route("/products", func(r chi.Router) {
			r.Get("/", h.ListProducts)
			r.Get("/{product_id}", h.GetProduct)
		})
	})
}
