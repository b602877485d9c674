package usecase

import (
	"context"

	domainErrors "github.com/dakarmarket/backend/internal/domain/errors"
	"github.com/dakarmarket/backend/internal/domain/model"
	"github.com/dakarmarket/backend/internal/domain/repository"
)

// CartUseCase manages a client's shopping cart.
type CartUseCase struct {
	carts    repository.CartRepository
	products repository.ProductRepository
}

// NewCartUseCase constructs CartUseCase.
func NewCartUseCase(carts repository.CartRepository, products repository.ProductRepository) *CartUseCase {
	return &CartUseCase{carts: carts, products: products}
}

// Lines returns the actor's cart with product data.
func (u *CartUseCase) Lines(ctx context.Context, actor *model.Profile) ([]model.CartLine, error) {
	if actor.Role != model.RoleClient {
		return nil, domainErrors.ErrForbidden
	}
	return u.carts.Lines(ctx, actor.ID)
}

// Add puts a product into the cart. Adding an already-carted product grows
// its quantity instead of creating a second line.
func (u *CartUseCase) Add(ctx context.Context, actor *model.Profile, productID string, quantity int) (*model.CartItem, error) {
	if actor.Role != model.RoleClient {
		return nil, domainErrors.ErrForbidden
	}
	if quantity < 1 {
		return nil, domainErrors.ErrInvalidQuantity
	}
	if _, err := u.products.GetByID(ctx, productID); err != nil {
		return nil, err
	}
	return u.carts.Add(ctx, actor.ID, productID, quantity)
}

// UpdateQuantity sets an absolute quantity on a cart line owned by the actor.
func (u *CartUseCase) UpdateQuantity(ctx context.Context, actor *model.Profile, itemID string, quantity int) error {
	if actor.Role != model.RoleClient {
		return domainErrors.ErrForbidden
	}
	if quantity < 1 {
		return domainErrors.ErrInvalidQuantity
	}

	item, err := u.carts.GetItem(ctx, itemID)
	if err != nil {
		return err
	}
	if item.ClientID != actor.ID {
		return domainErrors.ErrForbidden
	}
	return u.carts.UpdateQuantity(ctx, itemID, quantity)
}

// Remove deletes a cart line owned by the actor.
func (u *CartUseCase) Remove(ctx context.Context, actor *model.Profile, itemID string) error {
	if actor.Role != model.RoleClient {
		return domainErrors.ErrForbidden
	}

	item, err := u.carts.GetItem(ctx, itemID)
	if err != nil {
		return err
	}
	if item.ClientID != actor.ID {
		return domainErrors.ErrForbidden
	}
	return u.carts.Remove(ctx, itemID)
}

// Clear drops every line from the actor's cart.
func (u *CartUseCase) Clear(ctx context.Context, actor *model.Profile) error {
	if actor.Role != model.RoleClient {
		return domainErrors.ErrForbidden
	}
	return u.carts.Clear(ctx, actor.ID)
}
