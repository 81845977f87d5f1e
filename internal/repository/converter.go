package repository

import (
	"github.com/charole/auto-ux-backend/internal/entity"
	"github.com/jackc/pgx/v5"
)

func scanCategory(row pgx.CollectableRow) (*entity.InsuranceCategory, error) {
	var c entity.InsuranceCategory
	err := row.Scan(&c.ID, &c.Name, &c.Description, &c.IconURL, &c.SortOrder)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func scanProduct(row pgx.CollectableRow) (*entity.InsuranceProduct, error) {
	var (
		p                   entity.InsuranceProduct
		categoryName        string
		categoryDescription string
	)

	err := row.Scan(
		&p.ID, &p.CategoryID, &p.Name, &p.Description,
		&p.BasePrice, &p.MaxCoverage,
		&p.AgeLimitMin, &p.AgeLimitMax,
		&p.Features, &p.Tags,
		&p.IsPopular, &p.IsNew, &p.CreatedAt,
		&categoryName, &categoryDescription,
	)
	if err != nil {
		return nil, err
	}

	if categoryName != "" {
		p.Category = &entity.CategoryRef{
			Name:        categoryName,
			Description: categoryDescription,
		}
	}

	return &p, nil
}

func scanFAQ(row pgx.CollectableRow) (*entity.FAQEntry, error) {
	var f entity.FAQEntry
	err := row.Scan(&f.ID, &f.Category, &f.Question, &f.Answer, &f.Keywords, &f.IsPopular, &f.SortOrder)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func scanTestimonial(row pgx.CollectableRow) (*entity.Testimonial, error) {
	var t entity.Testimonial
	err := row.Scan(
		&t.ID, &t.ProductID, &t.UserName, &t.ProductName,
		&t.Title, &t.Content, &t.Rating, &t.IsVerified, &t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
