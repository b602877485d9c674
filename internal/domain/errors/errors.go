package errors

import "errors"

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidQuantity    = errors.New("invalid quantity")
	ErrInvalidPrice       = errors.New("invalid price")
	ErrEmptyTitle         = errors.New("empty product title")
	ErrEmptyMessage       = errors.New("empty message content")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrInvalidStatus      = errors.New("unknown order status")

	// ErrCartNotCleared marks a partial checkout failure: the orders were
	// committed but the cart clear afterwards failed. Callers must report
	// the orders as placed so the user does not check out twice.
	ErrCartNotCleared = errors.New("orders placed but cart not cleared")
)
