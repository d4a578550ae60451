//go:build unit || e2e

package builder

import (
	"time"

	"club-rental-api/internal/domain/availability"
	reqdto "club-rental-api/internal/handler/dto/request"
	"club-rental-api/internal/usecase/readmodel"

	"github.com/google/uuid"
)

// RentalBuilder assembles rental-request documents in the shapes the store
// actually holds, from the canonical form written today down to the noisiest
// legacy variants.
type RentalBuilder struct {
	ID         uuid.UUID
	Status     any
	Requester  string
	Contact    string
	Purpose    string
	RentalDate any
	ReturnDate any
	Items      any
	CreatedAt  time.Time
}

func NewRentalBuilder() *RentalBuilder {
	return &RentalBuilder{
		ID:         uuid.New(),
		Status:     "approved",
		Requester:  "홍길동",
		Contact:    "010-0000-0000",
		Purpose:    "동아리 행사",
		RentalDate: "2025-08-19",
		ReturnDate: "2025-08-20",
		Items:      []any{map[string]any{"name": "천막", "qty": float64(2)}},
		CreatedAt:  time.Now(),
	}
}

func (r *RentalBuilder) With(mutate func(*RentalBuilder)) *RentalBuilder {
	mutate(r)
	return r
}

// Build methods

// BuildDoc is the document shape the submission flow writes today.
func (r *RentalBuilder) BuildDoc() map[string]any {
	return map[string]any{
		"status":     r.Status,
		"rentalDate": r.RentalDate,
		"returnDate": r.ReturnDate,
		"items":      r.Items,
		"requester":  r.Requester,
		"contact":    r.Contact,
		"purpose":    r.Purpose,
	}
}

// BuildLegacyDoc uses the field spellings of the oldest submission page.
func (r *RentalBuilder) BuildLegacyDoc() map[string]any {
	return map[string]any{
		"status":      r.Status,
		"startDate":   r.RentalDate,
		"endDate":     r.ReturnDate,
		"rentalItems": r.Items,
		"requester":   r.Requester,
	}
}

func (r *RentalBuilder) BuildRentalDoc() *readmodel.RentalDoc {
	return &readmodel.RentalDoc{
		ID:        r.ID,
		Doc:       r.BuildDoc(),
		CreatedAt: r.CreatedAt,
	}
}

func (r *RentalBuilder) BuildRecord() availability.Record {
	return availability.RecordFromDoc(r.ID, r.BuildDoc())
}

func (r *RentalBuilder) BuildSubmitRequestDTO() reqdto.SubmitRentalRequest {
	return reqdto.SubmitRentalRequest{
		Requester:  r.Requester,
		Contact:    r.Contact,
		Purpose:    r.Purpose,
		RentalDate: r.RentalDate,
		ReturnDate: r.ReturnDate,
		Items:      r.Items,
	}
}

func (r *RentalBuilder) BuildCheckRequestDTO() reqdto.CheckAvailabilityRequest {
	return reqdto.CheckAvailabilityRequest{
		RentalDate: r.RentalDate,
		ReturnDate: r.ReturnDate,
		Items:      r.Items,
	}
}

// Fluent builder methods
func (r *RentalBuilder) WithID(id uuid.UUID) *RentalBuilder {
	r.ID = id
	return r
}

func (r *RentalBuilder) WithStatus(status any) *RentalBuilder {
	r.Status = status
	return r
}

func (r *RentalBuilder) WithRequester(requester string) *RentalBuilder {
	r.Requester = requester
	return r
}

func (r *RentalBuilder) WithWindow(rentalDate, returnDate any) *RentalBuilder {
	r.RentalDate = rentalDate
	r.ReturnDate = returnDate
	return r
}

func (r *RentalBuilder) WithItems(items any) *RentalBuilder {
	r.Items = items
	return r
}

func (r *RentalBuilder) WithItem(name string, qty int) *RentalBuilder {
	r.Items = []any{map[string]any{"name": name, "qty": float64(qty)}}
	return r
}

func (r *RentalBuilder) WithCreatedAt(createdAt time.Time) *RentalBuilder {
	r.CreatedAt = createdAt
	return r
}

func (r *RentalBuilder) AsPending() *RentalBuilder {
	r.Status = "pending"
	return r
}

func (r *RentalBuilder) AsApproved() *RentalBuilder {
	r.Status = "승인"
	return r
}
