package dto

// CartAddRequest describes the add-to-cart payload.
type CartAddRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// CartUpdateRequest describes the quantity change payload.
type CartUpdateRequest struct {
	Quantity int `json:"quantity"`
}

// CartLineResponse joins a cart item with its product.
type CartLineResponse struct {
	ItemID    string          `json:"item_id"`
	Quantity  int             `json:"quantity"`
	Product   ProductResponse `json:"product"`
	LineTotal float64         `json:"line_total"`
}

// FavoriteResponse is one saved product.
type FavoriteResponse struct {
	ID      string          `json:"id"`
	Product ProductResponse `json:"product"`
}
