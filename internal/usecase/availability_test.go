//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"club-rental-api/internal/domain/availability"
	"club-rental-api/internal/domain/inventory"
	"club-rental-api/internal/pkg/clock"
	"club-rental-api/internal/usecase"
	"club-rental-api/internal/usecase/readmodel"
	"club-rental-api/tests/common/builder"
	storemock "club-rental-api/tests/mock/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errConnectionLost = errors.New("connection lost")

func newAvailabilityUseCase(t *testing.T, store usecase.RentalReadStore) usecase.AvailabilityUseCase {
	t.Helper()

	loc, err := time.LoadLocation("Asia/Seoul")
	require.NoError(t, err)

	table := inventory.CapacityTable{"천막": 5, "의자": 30}
	eval := availability.NewEvaluator(table, inventory.UnknownItemReject, loc)
	mockClock := clock.NewMockClock(time.Date(2025, 8, 15, 12, 0, 0, 0, loc))

	return usecase.NewAvailabilityUseCase(store, nil, eval, mockClock)
}

func TestAvailabilityUseCase_Check(t *testing.T) {
	ctx := context.Background()

	t.Run("success: conflict against stored approved usage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := storemock.NewMockRentalReadStore(ctrl)

		stored := builder.NewRentalBuilder().AsApproved().
			WithWindow("2025-08-19", "2025-08-20").
			WithItem("천막", 4).
			BuildRentalDoc()
		store.EXPECT().ListDocs(ctx, gomock.Any()).
			Return([]*readmodel.RentalDoc{stored}, nil).Times(1)

		uc := newAvailabilityUseCase(t, store)
		decision, err := uc.Check(ctx, usecase.CheckParams{
			RentalDate: "2025-08-19",
			ReturnDate: "2025-08-19",
			Items:      []any{map[string]any{"name": "천막", "qty": float64(2)}},
		})

		require.NoError(t, err)
		require.False(t, decision.Available)
		require.Len(t, decision.Conflicts, 1)
		assert.Equal(t, availability.Conflict{
			Item:      "천막",
			Limit:     5,
			Reserved:  4,
			Requested: 2,
			Available: 1,
		}, decision.Conflicts[0])
	})

	t.Run("success: empty store means everything available", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := storemock.NewMockRentalReadStore(ctrl)
		store.EXPECT().ListDocs(ctx, gomock.Any()).Return(nil, nil).Times(1)

		uc := newAvailabilityUseCase(t, store)
		decision, err := uc.Check(ctx, usecase.CheckParams{
			RentalDate: "2025-08-19",
			ReturnDate: "2025-08-19",
			Items:      []any{map[string]any{"name": "천막", "qty": float64(5)}},
		})

		require.NoError(t, err)
		assert.True(t, decision.Available)
	})

	t.Run("error: invalid window never reaches the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := storemock.NewMockRentalReadStore(ctrl)

		uc := newAvailabilityUseCase(t, store)
		_, err := uc.Check(ctx, usecase.CheckParams{
			RentalDate: "whenever",
			ReturnDate: "2025-08-19",
			Items:      []any{map[string]any{"name": "천막", "qty": float64(1)}},
		})

		require.ErrorIs(t, err, usecase.ErrInvalidTimeWindow)
	})

	t.Run("error: invalid items never reach the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := storemock.NewMockRentalReadStore(ctrl)

		uc := newAvailabilityUseCase(t, store)
		_, err := uc.Check(ctx, usecase.CheckParams{
			RentalDate: "2025-08-19",
			ReturnDate: "2025-08-19",
			Items:      []any{},
		})

		require.ErrorIs(t, err, usecase.ErrInvalidItems)
	})

	t.Run("error: store failure surfaces instead of an empty snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := storemock.NewMockRentalReadStore(ctrl)
		store.EXPECT().ListDocs(ctx, gomock.Any()).Return(nil, errConnectionLost).Times(1)

		uc := newAvailabilityUseCase(t, store)
		_, err := uc.Check(ctx, usecase.CheckParams{
			RentalDate: "2025-08-19",
			ReturnDate: "2025-08-19",
			Items:      []any{map[string]any{"name": "천막", "qty": float64(1)}},
		})

		require.ErrorIs(t, err, usecase.ErrStoreUnavailable)
	})
}

func TestAvailabilityUseCase_Calendar(t *testing.T) {
	ctx := context.Background()

	t.Run("success: explicit month covers every day and item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := storemock.NewMockRentalReadStore(ctrl)

		stored := builder.NewRentalBuilder().AsApproved().
			WithWindow("2025-08-19", "2025-08-20").
			WithItem("천막", 3).
			BuildRentalDoc()
		store.EXPECT().ListDocs(ctx, gomock.Any()).
			Return([]*readmodel.RentalDoc{stored}, nil).Times(1)

		uc := newAvailabilityUseCase(t, store)
		summaries, err := uc.Calendar(ctx, usecase.CalendarParams{Month: "2025-08"})

		require.NoError(t, err)
		require.Len(t, summaries, 31)

		byDate := make(map[string][]struct {
			name      string
			available int
		})
		for _, day := range summaries {
			require.Len(t, day.Items, 2, "every day lists every catalogued item")
			for _, item := range day.Items {
				byDate[day.Date] = append(byDate[day.Date], struct {
					name      string
					available int
				}{item.Name, item.Available})
			}
		}

		assert.Equal(t, "의자", summaries[0].Items[0].Name, "items sorted by name")

		findAvailable := func(date, name string) int {
			for _, it := range byDate[date] {
				if it.name == name {
					return it.available
				}
			}
			t.Fatalf("item %s missing on %s", name, date)
			return 0
		}

		assert.Equal(t, 2, findAvailable("2025-08-19", "천막"))
		assert.Equal(t, 2, findAvailable("2025-08-20", "천막"))
		assert.Equal(t, 5, findAvailable("2025-08-21", "천막"))
	})

	t.Run("success: defaults to the current month", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := storemock.NewMockRentalReadStore(ctrl)
		store.EXPECT().ListDocs(ctx, gomock.Any()).Return(nil, nil).Times(1)

		uc := newAvailabilityUseCase(t, store)
		summaries, err := uc.Calendar(ctx, usecase.CalendarParams{})

		require.NoError(t, err)
		require.Len(t, summaries, 31)
		assert.Equal(t, "2025-08-01", summaries[0].Date)
		assert.Equal(t, "2025-08-31", summaries[30].Date)
	})

	t.Run("success: explicit range is end-exclusive", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := storemock.NewMockRentalReadStore(ctrl)
		store.EXPECT().ListDocs(ctx, gomock.Any()).Return(nil, nil).Times(1)

		uc := newAvailabilityUseCase(t, store)
		summaries, err := uc.Calendar(ctx, usecase.CalendarParams{Start: "2025-08-19", End: "2025-08-21"})

		require.NoError(t, err)
		require.Len(t, summaries, 2)
		assert.Equal(t, "2025-08-19", summaries[0].Date)
		assert.Equal(t, "2025-08-20", summaries[1].Date)
	})

	t.Run("error: invalid ranges", func(t *testing.T) {
		cases := []struct {
			name   string
			params usecase.CalendarParams
		}{
			{name: "malformed month", params: usecase.CalendarParams{Month: "August 2025"}},
			{name: "start without end", params: usecase.CalendarParams{Start: "2025-08-19"}},
			{name: "end without start", params: usecase.CalendarParams{End: "2025-08-21"}},
			{name: "inverted range", params: usecase.CalendarParams{Start: "2025-08-21", End: "2025-08-19"}},
			{name: "empty range", params: usecase.CalendarParams{Start: "2025-08-19", End: "2025-08-19"}},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				store := storemock.NewMockRentalReadStore(ctrl)

				uc := newAvailabilityUseCase(t, store)
				_, err := uc.Calendar(ctx, tc.params)
				require.ErrorIs(t, err, usecase.ErrInvalidRange)
			})
		}
	})
}
