package services

import (
	"context"
	"errors"

	"customers/models"
	"customers/repository"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// ErrInvalidPageRequest is returned when page or pageSize is not positive.
var ErrInvalidPageRequest = errors.New("page and pageSize must be positive")

// PagedProducts is the response shape of the paged product search. Data is
// never null: pages beyond the last one carry an empty array.
type PagedProducts struct {
	Page       int              `json:"page"`
	PageSize   int              `json:"pageSize"`
	TotalCount int64            `json:"totalCount"`
	TotalPages int              `json:"totalPages"`
	Data       []models.Product `json:"data"`
}

// ProductService wraps the product gateway with the paged/filtered search.
type ProductService struct {
	products repository.ProductRepository
}

func NewProductService(products repository.ProductRepository) *ProductService {
	return &ProductService{products: products}
}

// Paged filters by name substring, counts the matches and returns the
// requested page.
func (s *ProductService) Paged(ctx context.Context, page, pageSize int, search string) (*PagedProducts, error) {
	if page < 1 || pageSize < 1 {
		return nil, ErrInvalidPageRequest
	}

	products, total, err := s.products.FindPaged(ctx, page, pageSize, search)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	return &PagedProducts{
		Page:       page,
		PageSize:   pageSize,
		TotalCount: total,
		TotalPages: totalPages,
		Data:       products,
	}, nil
}
