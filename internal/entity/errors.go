package entity

import "errors"

// Domain errors
var (
	// Catalog errors
	ErrProductNotFound = errors.New("product not found")
	ErrDataAccess      = errors.New("catalog data access failed")

	// Generation errors
	ErrGenerationUnavailable = errors.New("generation is not configured")
	ErrGenerationFailed      = errors.New("generation request failed")
	ErrParseFailed           = errors.New("generation output could not be parsed")

	// Validation errors
	ErrMissingField     = errors.New("required field is missing")
	ErrInvalidFormat    = errors.New("invalid format")
	ErrInvalidParameter = errors.New("invalid parameter")
)
