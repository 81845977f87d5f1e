package validator

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/charole/auto-ux-backend/internal/entity"
)

const (
	MaxQueryLength     = 500
	MaxProductIDLength = 64
)

var pageTypePattern = regexp.MustCompile(`^[a-z][a-z_]{0,31}$`)

// Validator validates UI generation and catalog requests
type Validator struct{}

func NewValidator() *Validator {
	return &Validator{}
}

// ValidateGenerateUI checks the shape of a generation request. Unknown page
// types are accepted and served with the generic fallback.
func (v *Validator) ValidateGenerateUI(req *entity.GenerateUIRequest) error {
	if req.PageType != "" && !pageTypePattern.MatchString(req.PageType.String()) {
		return fmt.Errorf("%w: page_type %q", entity.ErrInvalidFormat, req.PageType)
	}
	if err := validateQueryLength("user_query", req.UserQuery); err != nil {
		return err
	}
	if len(req.ProductID) > MaxProductIDLength {
		return fmt.Errorf("%w: product_id is too long", entity.ErrInvalidParameter)
	}
	return nil
}

func (v *Validator) ValidateSmartQuery(query string) error {
	if query == "" {
		return fmt.Errorf("%w: query", entity.ErrMissingField)
	}
	return validateQueryLength("query", query)
}

func (v *Validator) ValidateSearch(req *entity.SearchRequest) error {
	if req.Query == "" {
		return fmt.Errorf("%w: q", entity.ErrMissingField)
	}
	if err := validateQueryLength("q", req.Query); err != nil {
		return err
	}
	return v.ValidateLimit(req.Limit)
}

// ValidateLimit accepts 0 (use the default) or a value in [1, MaxSearchLimit]
func (v *Validator) ValidateLimit(limit int) error {
	if limit < 0 || limit > entity.MaxSearchLimit {
		return fmt.Errorf("%w: limit must be between 1 and %d, got %d", entity.ErrInvalidParameter, entity.MaxSearchLimit, limit)
	}
	return nil
}

func validateQueryLength(field, value string) error {
	if n := utf8.RuneCountInString(value); n > MaxQueryLength {
		return fmt.Errorf("%w: %s exceeds %d characters", entity.ErrInvalidParameter, field, MaxQueryLength)
	}
	return nil
}
