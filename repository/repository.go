package repository

import "errors"

// ErrCategoryNotFound is returned when a product create/update references a
// category id that does not exist.
var ErrCategoryNotFound = errors.New("product category not found")
