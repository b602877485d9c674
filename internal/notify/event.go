package notify

import "time"

// Payloads carried by outbox events. Events are advisory refresh triggers:
// they reference rows by id and never replace an explicit reload.

// OrderCreatedPayload announces a checkout line committed to the orders table.
type OrderCreatedPayload struct {
	OrderID    string  `json:"order_id"`
	ClientID   string  `json:"client_id"`
	MerchantID string  `json:"merchant_id"`
	ProductID  string  `json:"product_id"`
	Quantity   int     `json:"quantity"`
	Total      float64 `json:"total"`
}

// OrderStatusChangedPayload announces an accepted status transition.
type OrderStatusChangedPayload struct {
	OrderID   string    `json:"order_id"`
	ClientID  string    `json:"client_id"`
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MessageCreatedPayload announces a stored direct message. Content stays out
// of the broker; recipients fetch it through the API.
type MessageCreatedPayload struct {
	MessageID string `json:"message_id"`
	FromUser  string `json:"from_user"`
	ToUser    string `json:"to_user"`
}
