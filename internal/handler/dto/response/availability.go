package response

import (
	"club-rental-api/internal/domain/availability"
	"club-rental-api/internal/usecase/readmodel"
)

type ConflictResponse struct {
	Item      string `json:"item"`
	Limit     int    `json:"limit"`
	Reserved  int    `json:"reserved"`
	Requested int    `json:"requested"`
	Available int    `json:"available"`
}

type CheckAvailabilityResponse struct {
	OK        bool               `json:"ok"`
	Available bool               `json:"available"`
	Conflicts []ConflictResponse `json:"conflicts"`
}

func FromDecision(d *availability.Decision) *CheckAvailabilityResponse {
	return &CheckAvailabilityResponse{
		OK:        true,
		Available: d.Available,
		Conflicts: fromConflicts(d.Conflicts),
	}
}

func fromConflicts(conflicts []availability.Conflict) []ConflictResponse {
	out := make([]ConflictResponse, len(conflicts))
	for i, c := range conflicts {
		out[i] = ConflictResponse{
			Item:      c.Item,
			Limit:     c.Limit,
			Reserved:  c.Reserved,
			Requested: c.Requested,
			Available: c.Available,
		}
	}
	return out
}

type ItemStockResponse struct {
	Name      string `json:"name"`
	Limit     int    `json:"limit"`
	Used      int    `json:"used"`
	Available int    `json:"available"`
}

type DaySummaryResponse struct {
	Date  string              `json:"date"`
	Items []ItemStockResponse `json:"items"`
}

type CalendarResponse struct {
	OK   bool                 `json:"ok"`
	Days []DaySummaryResponse `json:"days"`
}

func FromDaySummaries(summaries []readmodel.DaySummary) *CalendarResponse {
	days := make([]DaySummaryResponse, len(summaries))
	for i, s := range summaries {
		items := make([]ItemStockResponse, len(s.Items))
		for j, it := range s.Items {
			items[j] = ItemStockResponse{
				Name:      it.Name,
				Limit:     it.Limit,
				Used:      it.Used,
				Available: it.Available,
			}
		}
		days[i] = DaySummaryResponse{Date: s.Date, Items: items}
	}
	return &CalendarResponse{OK: true, Days: days}
}
