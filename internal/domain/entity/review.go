package entity

import "time"

// Review is a customer review of a purchased product. Reviews are
// domain-partitioned client-side: the list for a product and the list
// authored by the current user are fetched and paginated independently.
type Review struct {
	ID         string       `json:"_id"`
	Product    string       `json:"product"` // Product identifier the review belongs to.
	Order      string       `json:"order"`   // Order that makes the review purchase-verified.
	User       ReviewAuthor `json:"user"`
	Rating     int          `json:"rating"` // 1 to 5.
	Title      string       `json:"title"`
	Comment    string       `json:"comment"`
	Helpful    int          `json:"helpful"`
	NotHelpful int          `json:"notHelpful"`
	IsApproved bool         `json:"isApproved"`
	IsVerified bool         `json:"isVerified"`
	CreatedAt  time.Time    `json:"createdAt"`
}

// ReviewAuthor is the embedded author snapshot the backend returns with
// each review.
type ReviewAuthor struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// RatingDistribution maps a star rating (1-5) to its review count for a
// product. Returned alongside the product review list.
type RatingDistribution map[int]int
