package response

import (
	"time"

	"club-rental-api/internal/usecase"
	"club-rental-api/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type ItemLineResponse struct {
	Name string `json:"name"`
	Qty  int    `json:"qty"`
}

type RentalResponse struct {
	ID        uuid.UUID          `json:"id"`
	Status    string             `json:"status"`
	Requester string             `json:"requester,omitempty"`
	Window    string             `json:"window,omitempty"`
	Items     []ItemLineResponse `json:"items,omitempty"`
	CreatedAt time.Time          `json:"createdAt"`
}

func FromRentalRM(rm *readmodel.RentalRM) *RentalResponse {
	items := make([]ItemLineResponse, len(rm.Items))
	for i, it := range rm.Items {
		items[i] = ItemLineResponse{Name: it.Name, Qty: it.Qty}
	}
	return &RentalResponse{
		ID:        rm.ID,
		Status:    rm.Status,
		Requester: rm.Requester,
		Window:    rm.Window,
		Items:     items,
		CreatedAt: rm.CreatedAt,
	}
}

type SubmitRentalResponse struct {
	OK        bool               `json:"ok"`
	Error     string             `json:"error,omitempty"`
	Available bool               `json:"available"`
	Conflicts []ConflictResponse `json:"conflicts"`
	Rental    *RentalResponse    `json:"rental,omitempty"`
}

func FromSubmitResult(result *usecase.SubmitResult) *SubmitRentalResponse {
	resp := &SubmitRentalResponse{
		OK:        result.Accepted,
		Available: result.Decision.Available,
		Conflicts: fromConflicts(result.Decision.Conflicts),
	}
	if result.Accepted {
		resp.Rental = FromRentalRM(result.Rental)
	} else {
		resp.Error = "requested items exceed capacity"
	}
	return resp
}
