package domain

import "time"

type PurchaseStatus string

const (
	PurchaseStatusPending   PurchaseStatus = "PENDING"
	PurchaseStatusConfirmed PurchaseStatus = "CONFIRMED"
	PurchaseStatusCancelled PurchaseStatus = "CANCELLED"
	PurchaseStatusExpired   PurchaseStatus = "EXPIRED"
)

// OffsetPurchase is a CO2 offset order. It is created PENDING with an
// expiry deadline and either confirmed, cancelled, or expired by the worker
// sweep.
type OffsetPurchase struct {
	ID           int64
	OfferID      int64
	Token        string
	EmissionTons float64
	CostCents    int64
	Currency     Currency
	Email        string
	Status       PurchaseStatus
	ExpiresAt    time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
