package domain

import "time"

// Cart lives in redis for the duration of a session; it does not survive
// its TTL.
type Cart struct {
	UserID    string     `json:"user_id"`
	Items     []CartItem `json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type CartItem struct {
	ID             string            `json:"id"`
	OfferID        int64             `json:"offer_id"`
	OfferType      OfferType         `json:"offer_type"`
	Title          string            `json:"title"`
	PriceCents     int64             `json:"price_cents"`
	Currency       Currency          `json:"currency"`
	Quantity       int               `json:"quantity"`
	Customizations map[string]string `json:"customizations,omitempty"`
	AddedAt        time.Time         `json:"added_at"`
}
