package entity

// Cart is the user's shopping cart. Every mutating call returns the full
// updated cart, which replaces the local copy wholesale; totals are never
// recomputed on the client.
type Cart struct {
	Items         []CartItem `json:"items"`
	TotalItems    int        `json:"totalItems"`
	TotalPrice    float64    `json:"totalPrice"`
	TotalDiscount float64    `json:"totalDiscount"`
}

// CartItem is one product line in the cart. Price is the unit price the
// backend charged at the time the item was added.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Wishlist is the user's saved-products list, replaced wholesale on every
// mutating call like Cart.
type Wishlist struct {
	Products []Product `json:"products"`
}
