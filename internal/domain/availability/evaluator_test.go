//go:build unit

package availability_test

import (
	"testing"
	"time"

	"club-rental-api/internal/domain/availability"
	"club-rental-api/internal/domain/inventory"
	"club-rental-api/internal/domain/schedule"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEvaluator(t *testing.T, policy inventory.UnknownItemPolicy) *availability.Evaluator {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Seoul")
	require.NoError(t, err)

	table := inventory.CapacityTable{
		"천막":  5,
		"테이블": 16,
		"의자":  30,
	}
	return availability.NewEvaluator(table, policy, loc)
}

func storedRecord(status any, start, end string, items any) availability.Record {
	return availability.Record{
		ID:     uuid.New(),
		Status: status,
		Start:  start,
		End:    end,
		Items:  items,
	}
}

func itemsOf(name string, qty int) []any {
	return []any{map[string]any{"name": name, "qty": float64(qty)}}
}

func TestEvaluate(t *testing.T) {
	eval := newTestEvaluator(t, inventory.UnknownItemReject)

	normalize := func(t *testing.T, start, end string, itemsRaw any) (schedule.TimeWindow, inventory.ItemRequest) {
		t.Helper()
		window, items, err := eval.NormalizeRequest(start, end, itemsRaw)
		require.NoError(t, err)
		return window, items
	}

	t.Run("aggregated usage across overlapping approved records", func(t *testing.T) {
		records := []availability.Record{
			storedRecord("approved", "2025-08-19", "2025-08-20", itemsOf("천막", 3)),
			storedRecord("승인", "2025-08-20", "2025-08-21", itemsOf("천막", 3)),
		}

		window, items := normalize(t, "2025-08-20", "2025-08-20", itemsOf("천막", 2))
		decision := eval.Evaluate(window, items, records)

		require.False(t, decision.Available)
		require.Len(t, decision.Conflicts, 1)
		assert.Equal(t, availability.Conflict{
			Item:      "천막",
			Limit:     5,
			Reserved:  6,
			Requested: 2,
			Available: 0,
		}, decision.Conflicts[0])
	})

	t.Run("non-overlapping reservations do not count", func(t *testing.T) {
		records := []availability.Record{
			storedRecord("approved", "2025-08-19", "2025-08-19", itemsOf("천막", 5)),
		}

		window, items := normalize(t, "2025-08-20", "2025-08-20", itemsOf("천막", 5))
		decision := eval.Evaluate(window, items, records)

		assert.True(t, decision.Available)
		assert.Empty(t, decision.Conflicts)
	})

	t.Run("adjacent hour ranges on one day do not collide", func(t *testing.T) {
		records := []availability.Record{
			storedRecord("approved", "2025-08-19 9-11", "2025-08-19 9-11", itemsOf("천막", 5)),
		}

		window, items := normalize(t, "2025-08-19 11-13", "2025-08-19 11-13", itemsOf("천막", 5))
		decision := eval.Evaluate(window, items, records)

		assert.True(t, decision.Available)
	})

	t.Run("only approved records occupy stock", func(t *testing.T) {
		records := []availability.Record{
			storedRecord("pending", "2025-08-19", "2025-08-20", itemsOf("천막", 5)),
			storedRecord("rejected", "2025-08-19", "2025-08-20", itemsOf("천막", 5)),
			storedRecord("취소", "2025-08-19", "2025-08-20", itemsOf("천막", 5)),
			storedRecord(nil, "2025-08-19", "2025-08-20", itemsOf("천막", 5)),
		}

		window, items := normalize(t, "2025-08-19", "2025-08-19", itemsOf("천막", 5))
		decision := eval.Evaluate(window, items, records)

		assert.True(t, decision.Available)
	})

	t.Run("malformed stored records convey no usage", func(t *testing.T) {
		records := []availability.Record{
			storedRecord("approved", "someday", "2025-08-20", itemsOf("천막", 5)),
			{ID: uuid.New(), Status: "approved", Start: "2025-08-19", End: "2025-08-20", Items: "not a list"},
		}

		window, items := normalize(t, "2025-08-19", "2025-08-19", itemsOf("천막", 5))
		decision := eval.Evaluate(window, items, records)

		assert.True(t, decision.Available)
	})

	t.Run("alias spellings share one capacity bucket", func(t *testing.T) {
		records := []availability.Record{
			storedRecord("approved", "2025-08-19", "2025-08-20", itemsOf("천막", 4)),
		}

		window, items := normalize(t, "2025-08-19", "2025-08-19", []any{
			map[string]any{"name": " 천막 ", "qty": float64(2)},
		})
		decision := eval.Evaluate(window, items, records)

		require.Len(t, decision.Conflicts, 1)
		assert.Equal(t, "천막", decision.Conflicts[0].Item)
		assert.Equal(t, 4, decision.Conflicts[0].Reserved)
	})

	t.Run("deterministic for identical input", func(t *testing.T) {
		records := []availability.Record{
			storedRecord("approved", "2025-08-19", "2025-08-20", itemsOf("천막", 3)),
		}

		window, items := normalize(t, "2025-08-19", "2025-08-19", itemsOf("천막", 4))
		first := eval.Evaluate(window, items, records)
		second := eval.Evaluate(window, items, records)

		assert.Empty(t, cmp.Diff(first, second))
	})

	t.Run("empty conflicts slice is never nil", func(t *testing.T) {
		window, items := normalize(t, "2025-08-19", "2025-08-19", itemsOf("천막", 1))
		decision := eval.Evaluate(window, items, nil)

		require.True(t, decision.Available)
		assert.NotNil(t, decision.Conflicts)
	})
}

func TestEvaluateUnknownItems(t *testing.T) {
	t.Run("reject policy treats the item as capacity zero", func(t *testing.T) {
		eval := newTestEvaluator(t, inventory.UnknownItemReject)

		window, items, err := eval.NormalizeRequest("2025-08-19", "2025-08-19", itemsOf("미등록 품목", 1))
		require.NoError(t, err)

		decision := eval.Evaluate(window, items, nil)
		require.False(t, decision.Available)
		require.Len(t, decision.Conflicts, 1)
		assert.Equal(t, availability.Conflict{
			Item:      "미등록 품목",
			Limit:     0,
			Reserved:  0,
			Requested: 1,
			Available: 0,
		}, decision.Conflicts[0])
	})

	t.Run("unlimited policy never rejects the item", func(t *testing.T) {
		eval := newTestEvaluator(t, inventory.UnknownItemUnlimited)

		window, items, err := eval.NormalizeRequest("2025-08-19", "2025-08-19", itemsOf("미등록 품목", 99))
		require.NoError(t, err)

		decision := eval.Evaluate(window, items, nil)
		assert.True(t, decision.Available)
	})
}

func TestUsageByDay(t *testing.T) {
	eval := newTestEvaluator(t, inventory.UnknownItemReject)
	loc := eval.Location()

	records := []availability.Record{
		storedRecord("approved", "2025-08-19", "2025-08-20", itemsOf("천막", 3)),
		storedRecord("approved", "2025-08-20", "2025-08-21", itemsOf("의자", 10)),
		storedRecord("pending", "2025-08-19", "2025-08-21", itemsOf("테이블", 8)),
	}

	from := time.Date(2025, 8, 19, 0, 0, 0, 0, loc)
	to := time.Date(2025, 8, 22, 0, 0, 0, 0, loc)

	usage := eval.UsageByDay(records, from, to)
	require.Len(t, usage, 3)

	assert.Equal(t, map[string]int{"천막": 3}, usage["2025-08-19"])
	assert.Equal(t, map[string]int{"천막": 3, "의자": 10}, usage["2025-08-20"])
	assert.Equal(t, map[string]int{"의자": 10}, usage["2025-08-21"])

	assert.Empty(t, eval.UsageByDay(records, to, from))
}

func TestRecordFromDoc(t *testing.T) {
	id := uuid.New()

	t.Run("newest field spellings win", func(t *testing.T) {
		rec := availability.RecordFromDoc(id, map[string]any{
			"status":         "approved",
			"rentalDateTime": "2025-08-19",
			"rentalDate":     "1999-01-01",
			"returnDateTime": "2025-08-20",
			"items":          itemsOf("천막", 1),
		})

		assert.Equal(t, id, rec.ID)
		assert.Equal(t, "approved", rec.Status)
		assert.Equal(t, "2025-08-19", rec.Start)
		assert.Equal(t, "2025-08-20", rec.End)
	})

	t.Run("legacy spellings fill gaps", func(t *testing.T) {
		rec := availability.RecordFromDoc(id, map[string]any{
			"startDate":   "2025-08-19",
			"endDate":     "2025-08-20",
			"rentalItems": itemsOf("천막", 1),
		})

		assert.Equal(t, "2025-08-19", rec.Start)
		assert.Equal(t, "2025-08-20", rec.End)
		assert.NotNil(t, rec.Items)
		assert.Nil(t, rec.Status)
	})
}
