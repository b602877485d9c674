package repository

import (
	"context"

	"github.com/dakarmarket/backend/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	// CreateBatch inserts all orders in one transaction together with their
	// outbox events. Either every row is committed or none.
	CreateBatch(ctx context.Context, orders []model.Order) ([]model.Order, error)
	GetByID(ctx context.Context, id string) (*model.Order, error)
	// List returns orders visible to the user given their role, newest
	// first. An empty status means no status filter.
	List(ctx context.Context, userID string, role model.Role, status model.OrderStatus) ([]model.Order, error)
	StatusCounts(ctx context.Context, userID string, role model.Role) (map[model.OrderStatus]int, error)
	// UpdateStatus persists the new status, bumps updated_at and records a
	// status-change outbox event in the same transaction.
	UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) (*model.Order, error)
}
