package availability

import (
	"time"

	"club-rental-api/internal/domain/inventory"
	"club-rental-api/internal/domain/schedule"
)

// Conflict explains why one item in a request cannot be granted.
type Conflict struct {
	Item      string `json:"item"`
	Limit     int    `json:"limit"`
	Reserved  int    `json:"reserved"`
	Requested int    `json:"requested"`
	Available int    `json:"available"`
}

// Decision is the evaluator's verdict; Available is true iff Conflicts is
// empty.
type Decision struct {
	Available bool       `json:"available"`
	Conflicts []Conflict `json:"conflicts"`
}

// Evaluator decides whether a requested window and item list fit within the
// per-item capacity limits, given a snapshot of stored reservations. It is a
// pure computation: no I/O, no mutation of the snapshot, identical output
// for identical input.
type Evaluator struct {
	table  inventory.CapacityTable
	policy inventory.UnknownItemPolicy
	loc    *time.Location
}

func NewEvaluator(table inventory.CapacityTable, policy inventory.UnknownItemPolicy, loc *time.Location) *Evaluator {
	return &Evaluator{
		table:  table,
		policy: policy,
		loc:    loc,
	}
}

func (e *Evaluator) Location() *time.Location {
	return e.loc
}

// NormalizeRequest parses the raw window markers and item payload of an
// incoming request. Unlike stored records, a malformed request aborts the
// whole evaluation with the normalizer's error.
func (e *Evaluator) NormalizeRequest(startRaw, endRaw, itemsRaw any) (schedule.TimeWindow, inventory.ItemRequest, error) {
	window, err := schedule.ParseWindow(startRaw, endRaw, e.loc)
	if err != nil {
		return schedule.TimeWindow{}, nil, err
	}

	items, err := inventory.NormalizeItems(itemsRaw)
	if err != nil {
		return schedule.TimeWindow{}, nil, err
	}

	return window, items, nil
}

// Evaluate aggregates the usage of approved reservations overlapping the
// requested window and emits one Conflict per item that would exceed its
// limit.
func (e *Evaluator) Evaluate(window schedule.TimeWindow, items inventory.ItemRequest, records []Record) Decision {
	used := e.usageOverlapping(window, records)

	conflicts := []Conflict{}
	for _, line := range items {
		limit, unlimited := e.table.LimitFor(line.Name, e.policy)
		if unlimited {
			continue
		}

		reserved := used[line.Name]
		if reserved+line.Qty <= limit {
			continue
		}

		conflicts = append(conflicts, Conflict{
			Item:      line.Name,
			Limit:     limit,
			Reserved:  reserved,
			Requested: line.Qty,
			Available: max(0, limit-reserved),
		})
	}

	return Decision{
		Available: len(conflicts) == 0,
		Conflicts: conflicts,
	}
}

// usageOverlapping sums, per canonical item name, the quantities held by
// approved reservations whose window overlaps the given one. Records whose
// window or item list cannot be normalized are skipped; they convey no
// usable occupancy.
func (e *Evaluator) usageOverlapping(window schedule.TimeWindow, records []Record) map[string]int {
	used := make(map[string]int)

	for _, rec := range records {
		if !StatusFromRaw(rec.Status).CountsTowardUsage() {
			continue
		}

		recWindow, err := schedule.ParseWindow(rec.Start, rec.End, e.loc)
		if err != nil {
			continue
		}
		if !recWindow.Overlaps(window) {
			continue
		}

		items, err := inventory.NormalizeItems(rec.Items)
		if err != nil {
			continue
		}
		for _, line := range items {
			used[line.Name] += line.Qty
		}
	}

	return used
}

// UsageByDay reports committed usage per local calendar day over [from, to),
// keyed "YYYY-MM-DD". Each day is evaluated as a whole-day window with the
// same overlap test as Evaluate, so the calendar can never disagree with the
// check endpoint.
func (e *Evaluator) UsageByDay(records []Record, from, to time.Time) map[string]map[string]int {
	usage := make(map[string]map[string]int)

	window, err := schedule.NewTimeWindow(from.In(e.loc), to.In(e.loc))
	if err != nil {
		return usage
	}

	for _, dayWindow := range window.DayWindows() {
		usage[dayWindow.Start().Format("2006-01-02")] = e.usageOverlapping(dayWindow, records)
	}

	return usage
}

// Table exposes the shared capacity table for display surfaces; callers must
// treat it as read-only.
func (e *Evaluator) Table() inventory.CapacityTable {
	return e.table
}
