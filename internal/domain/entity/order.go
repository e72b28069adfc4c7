package entity

import "time"

// Order is a placed order as returned by the backend. The client only
// reads orders; the one write is placing an order from the current cart.
type Order struct {
	ID              string      `json:"_id"`
	Items           []OrderItem `json:"items"`
	TotalAmount     float64     `json:"totalAmount"`
	Status          string      `json:"status"` // e.g. "pending", "shipped", "delivered".
	ShippingAddress Address     `json:"shippingAddress"`
	PaymentMethod   string      `json:"paymentMethod"`
	CreatedAt       time.Time   `json:"createdAt"`
}

// OrderItem is one product line captured at checkout time.
type OrderItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}
