package repository

import (
	"context"

	"github.com/dakarmarket/backend/internal/domain/model"
)

// ProductRepository describes persistence operations for the catalog.
type ProductRepository interface {
	List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error)
	GetByID(ctx context.Context, id string) (*model.Product, error)
	Create(ctx context.Context, p model.Product) (*model.Product, error)
	Update(ctx context.Context, id string, upd model.ProductUpdate) (*model.Product, error)
	Delete(ctx context.Context, id string) error
}
