package readmodel

import (
	"time"

	"github.com/google/uuid"
)

// RentalDoc is one raw document from the rental_requests store. Doc keeps
// the legacy payload untouched; all interpretation happens in the domain
// normalizers.
type RentalDoc struct {
	ID        uuid.UUID
	Doc       map[string]any
	CreatedAt time.Time
}

// RentalRM is the read model for a single rental request. Window and Items
// are the normalized forms and stay empty when the stored values cannot be
// parsed.
type RentalRM struct {
	ID        uuid.UUID
	Status    string
	Requester string
	Window    string
	Items     []ItemRM
	CreatedAt time.Time
}

type ItemRM struct {
	Name string
	Qty  int
}

// DaySummary is one calendar day of remaining stock.
type DaySummary struct {
	Date  string
	Items []ItemStock
}

type ItemStock struct {
	Name      string
	Limit     int
	Used      int
	Available int
}
