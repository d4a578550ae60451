package request

import (
	"strings"

	"club-rental-api/internal/usecase"
)

type SubmitRentalRequest struct {
	Requester  string `json:"requester" binding:"required"`
	Contact    string `json:"contact,omitempty"`
	Purpose    string `json:"purpose,omitempty"`
	RentalDate any    `json:"rentalDate" binding:"required"`
	ReturnDate any    `json:"returnDate" binding:"required"`
	Items      any    `json:"items" binding:"required"`
}

func (r SubmitRentalRequest) ToParams() usecase.SubmitParams {
	return usecase.SubmitParams{
		Requester:  strings.TrimSpace(r.Requester),
		Contact:    strings.TrimSpace(r.Contact),
		Purpose:    strings.TrimSpace(r.Purpose),
		RentalDate: r.RentalDate,
		ReturnDate: r.ReturnDate,
		Items:      r.Items,
	}
}
