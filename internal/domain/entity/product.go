package entity

import "time"

// Product is read-only to this client. It is fetched in paginated or
// filtered lists, or as a single detail object, and is never mutated
// locally except through the dedicated cart and wishlist operations.
type Product struct {
	ID            string   `json:"_id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	OriginalPrice float64  `json:"originalPrice"`
	Images        []string `json:"images"`
	Ratings       Ratings  `json:"ratings"`
	Stock         int      `json:"stock"`
	Category      string   `json:"category"`
	Brand         string   `json:"brand"`
	IsFeatured    bool     `json:"isFeatured"`
	IsBestseller  bool     `json:"isBestseller"`

	CreatedAt time.Time `json:"createdAt"`
}

// Ratings is the aggregated review rating carried on each product.
type Ratings struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// Pagination mirrors the backend's list envelope for paginated resources.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Pages int `json:"pages"`
	Total int `json:"total"`
}
