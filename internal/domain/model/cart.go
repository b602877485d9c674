package model

import "time"

// CartItem is one product line in a client's cart. A client holds at most
// one line per product; adding the same product again grows the quantity.
type CartItem struct {
	ID        string
	ClientID  string
	ProductID string
	Quantity  int
	CreatedAt time.Time
}

// CartLine joins a cart item with its product for display and checkout.
type CartLine struct {
	Item    CartItem
	Product Product
}

// LineTotal is the price of the line at the current product price.
func (l CartLine) LineTotal() float64 {
	return l.Product.Price * float64(l.Item.Quantity)
}
