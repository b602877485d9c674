package repository

import (
	"context"

	"github.com/dakarmarket/backend/internal/domain/model"
)

// CartRepository describes persistence operations for cart lines.
type CartRepository interface {
	// Lines returns the client's cart joined with product data.
	Lines(ctx context.Context, clientID string) ([]model.CartLine, error)
	// Add inserts a line or grows the quantity of an existing one.
	Add(ctx context.Context, clientID, productID string, quantity int) (*model.CartItem, error)
	GetItem(ctx context.Context, itemID string) (*model.CartItem, error)
	UpdateQuantity(ctx context.Context, itemID string, quantity int) error
	Remove(ctx context.Context, itemID string) error
	Clear(ctx context.Context, clientID string) error
}
