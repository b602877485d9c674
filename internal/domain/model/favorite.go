package model

import "time"

// Favorite marks a product saved by a client. The (client, product) pair is
// unique.
type Favorite struct {
	ID        string
	ClientID  string
	ProductID string
	CreatedAt time.Time
}

// FavoriteLine joins a favorite with its product for display.
type FavoriteLine struct {
	Favorite Favorite
	Product  Product
}
