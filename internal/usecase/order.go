package usecase

import (
	"context"
	"fmt"

	domainErrors "github.com/dakarmarket/backend/internal/domain/errors"
	"github.com/dakarmarket/backend/internal/domain/model"
	"github.com/dakarmarket/backend/internal/domain/repository"
)

// OrderUseCase encapsulates checkout and the order status lifecycle.
type OrderUseCase struct {
	orders repository.OrderRepository
	carts  repository.CartRepository
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, carts repository.CartRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders, carts: carts}
}

// Checkout turns every cart line into a pending order priced at the current
// product price, then clears the cart. Order creation is atomic. If the
// clear afterwards fails the orders stand and the error wraps
// ErrCartNotCleared so callers can surface the partial outcome.
func (u *OrderUseCase) Checkout(ctx context.Context, actor *model.Profile) ([]model.Order, error) {
	if actor.Role != model.RoleClient {
		return nil, domainErrors.ErrForbidden
	}

	lines, err := u.carts.Lines(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, domainErrors.ErrEmptyCart
	}

	orders := make([]model.Order, 0, len(lines))
	for _, line := range lines {
		orders = append(orders, model.Order{
			ClientID:   actor.ID,
			ProductID:  line.Product.ID,
			MerchantID: line.Product.MerchantID,
			Quantity:   line.Item.Quantity,
			Total:      line.LineTotal(),
		})
	}

	created, err := u.orders.CreateBatch(ctx, orders)
	if err != nil {
		return nil, err
	}

	if err := u.carts.Clear(ctx, actor.ID); err != nil {
		return created, fmt.Errorf("%w: %w", domainErrors.ErrCartNotCleared, err)
	}
	return created, nil
}

// List returns the actor's orders, optionally narrowed to one status.
func (u *OrderUseCase) List(ctx context.Context, actor *model.Profile, status model.OrderStatus) ([]model.Order, error) {
	if status != "" && !status.Valid() {
		return nil, domainErrors.ErrInvalidStatus
	}
	return u.orders.List(ctx, actor.ID, actor.Role, status)
}

// StatusCounts returns per-status order totals for the actor.
func (u *OrderUseCase) StatusCounts(ctx context.Context, actor *model.Profile) (map[model.OrderStatus]int, error) {
	return u.orders.StatusCounts(ctx, actor.ID, actor.Role)
}

// Transition moves an order to target. Only the owning merchant may drive
// the lifecycle, and only along legal edges.
func (u *OrderUseCase) Transition(ctx context.Context, actor *model.Profile, orderID string, target model.OrderStatus) (*model.Order, error) {
	if !target.Valid() {
		return nil, domainErrors.ErrInvalidStatus
	}
	if actor.Role != model.RoleMerchant {
		return nil, domainErrors.ErrForbidden
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.MerchantID != actor.ID {
		return nil, domainErrors.ErrForbidden
	}
	if !order.Status.CanTransitionTo(target) {
		return nil, fmt.Errorf("%w: %s to %s", domainErrors.ErrInvalidTransition, order.Status, target)
	}

	return u.orders.UpdateStatus(ctx, orderID, target)
}
