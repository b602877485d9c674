package repository

import (
	"context"

	"github.com/dakarmarket/backend/internal/domain/model"
)

// FavoriteRepository describes persistence operations for saved products.
type FavoriteRepository interface {
	List(ctx context.Context, clientID string) ([]model.FavoriteLine, error)
	Add(ctx context.Context, clientID, productID string) (*model.Favorite, error)
	Remove(ctx context.Context, clientID, productID string) error
}
