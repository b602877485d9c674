package dto

import "time"

// OrderResponse is the public view of an order.
type OrderResponse struct {
	ID         string    `json:"id"`
	ClientID   string    `json:"client_id"`
	ProductID  string    `json:"product_id"`
	MerchantID string    `json:"merchant_id"`
	Quantity   int       `json:"quantity"`
	Total      float64   `json:"total"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CheckoutResponse lists the orders placed from the cart. Warning is set
// when the orders were committed but the cart could not be cleared.
type CheckoutResponse struct {
	Orders  []OrderResponse `json:"orders"`
	Warning string          `json:"warning,omitempty"`
}

// StatusUpdateRequest carries the target order status.
type StatusUpdateRequest struct {
	Status string `json:"status"`
}
