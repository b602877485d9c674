package dto

import "time"

// ProductRequest describes the listing creation payload.
type ProductRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    *string `json:"image_url"`
	Category    string  `json:"category"`
}

// ProductUpdateRequest carries mutable listing fields; absent fields keep
// their stored value.
type ProductUpdateRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	ImageURL    *string  `json:"image_url"`
	Category    *string  `json:"category"`
}

// ProductResponse is the public view of a listing.
type ProductResponse struct {
	ID          string    `json:"id"`
	MerchantID  string    `json:"merchant_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	Price       float64   `json:"price"`
	ImageURL    *string   `json:"image_url,omitempty"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
}
