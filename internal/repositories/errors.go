package repositories

import "errors"

// Not-found is a normal, expected outcome for lookups, so each entity gets a
// sentinel the service layer can match with errors.Is.
var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrCompanyNotFound  = errors.New("company not found")
	ErrOrderNotFound    = errors.New("order not found")
)
