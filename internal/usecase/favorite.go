package usecase

import (
	"context"

	domainErrors "github.com/dakarmarket/backend/internal/domain/errors"
	"github.com/dakarmarket/backend/internal/domain/model"
	"github.com/dakarmarket/backend/internal/domain/repository"
)

// FavoriteUseCase manages a client's saved products.
type FavoriteUseCase struct {
	favorites repository.FavoriteRepository
	products  repository.ProductRepository
}

// NewFavoriteUseCase constructs FavoriteUseCase.
func NewFavoriteUseCase(favorites repository.FavoriteRepository, products repository.ProductRepository) *FavoriteUseCase {
	return &FavoriteUseCase{favorites: favorites, products: products}
}

// List returns the actor's saved products.
func (u *FavoriteUseCase) List(ctx context.Context, actor *model.Profile) ([]model.FavoriteLine, error) {
	if actor.Role != model.RoleClient {
		return nil, domainErrors.ErrForbidden
	}
	return u.favorites.List(ctx, actor.ID)
}

// Add saves a product for the actor.
func (u *FavoriteUseCase) Add(ctx context.Context, actor *model.Profile, productID string) (*model.Favorite, error) {
	if actor.Role != model.RoleClient {
		return nil, domainErrors.ErrForbidden
	}
	if _, err := u.products.GetByID(ctx, productID); err != nil {
		return nil, err
	}
	return u.favorites.Add(ctx, actor.ID, productID)
}

// Remove unsaves a product. Removing an absent favorite succeeds.
func (u *FavoriteUseCase) Remove(ctx context.Context, actor *model.Profile, productID string) error {
	if actor.Role != model.RoleClient {
		return domainErrors.ErrForbidden
	}
	return u.favorites.Remove(ctx, actor.ID, productID)
}
