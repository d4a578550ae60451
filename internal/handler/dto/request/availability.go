package request

// CheckAvailabilityRequest carries the raw legacy-shaped payload: window
// markers in any of the accepted formats and items as either a list or a
// name→quantity mapping. Interpretation belongs to the domain normalizers,
// so the fields stay untyped here.
type CheckAvailabilityRequest struct {
	RentalDate any `json:"rentalDate" binding:"required"`
	ReturnDate any `json:"returnDate" binding:"required"`
	Items      any `json:"items" binding:"required"`
}
