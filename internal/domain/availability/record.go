package availability

import (
	"github.com/google/uuid"
)

// Record is one stored rental request as read from the document store:
// a point-in-time snapshot with its window, item list and status still in
// raw legacy form. The evaluator normalizes them on every pass; records it
// cannot make sense of contribute no usage.
type Record struct {
	ID     uuid.UUID
	Status any
	Start  any
	End    any
	Items  any
}

// Field names drifted across generations of the submission page; each slice
// is ordered newest spelling first.
var (
	startDocKeys = []string{"rentalDateTime", "rentalDate", "startDate"}
	endDocKeys   = []string{"returnDateTime", "returnDate", "endDate"}
	itemsDocKeys = []string{"items", "rentalItems", "itemsObject"}
)

// RecordFromDoc extracts the evaluator-relevant fields from a raw document,
// resolving the legacy field-name drift in one place.
func RecordFromDoc(id uuid.UUID, doc map[string]any) Record {
	return Record{
		ID:     id,
		Status: doc["status"],
		Start:  firstDocValue(doc, startDocKeys),
		End:    firstDocValue(doc, endDocKeys),
		Items:  firstDocValue(doc, itemsDocKeys),
	}
}

func firstDocValue(doc map[string]any, keys []string) any {
	for _, key := range keys {
		if v, ok := doc[key]; ok && v != nil {
			return v
		}
	}
	return nil
}
