package usecase

import (
	"context"
	"errors"
	"sort"
	"time"

	"club-rental-api/internal/domain/availability"
	"club-rental-api/internal/domain/inventory"
	"club-rental-api/internal/domain/schedule"
	"club-rental-api/internal/infra/db"
	"club-rental-api/internal/pkg/clock"
	"club-rental-api/internal/pkg/errs"
	"club-rental-api/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrInvalidTimeWindow = errors.New("invalid rental window")
	ErrInvalidItems      = errors.New("invalid item list")
	ErrInvalidRange      = errors.New("invalid calendar range")
	ErrStoreUnavailable  = errors.New("rental request store unavailable")
	ErrRentalNotFound    = errors.New("rental request not found")
)

type RentalReadStore interface {
	ListDocs(ctx context.Context, dbtx db.DBTX) ([]*readmodel.RentalDoc, error)
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*readmodel.RentalDoc, error)
}

type CheckParams struct {
	RentalDate any
	ReturnDate any
	Items      any
}

// CalendarParams selects the summary range: a month, an explicit
// end-exclusive date range, or neither (the current month).
type CalendarParams struct {
	Month string
	Start string
	End   string
}

type AvailabilityUseCase interface {
	Check(ctx context.Context, p CheckParams) (*availability.Decision, error)
	Calendar(ctx context.Context, p CalendarParams) ([]readmodel.DaySummary, error)
}

type availabilityUseCaseImpl struct {
	store RentalReadStore
	pool  *pgxpool.Pool
	eval  *availability.Evaluator
	clock clock.Clock
}

func NewAvailabilityUseCase(
	store RentalReadStore,
	pool *pgxpool.Pool,
	eval *availability.Evaluator,
	clock clock.Clock,
) AvailabilityUseCase {
	return &availabilityUseCaseImpl{
		store: store,
		pool:  pool,
		eval:  eval,
		clock: clock,
	}
}

// Check is read-then-decide only: it never persists anything, and a store
// failure surfaces as an error instead of an empty snapshot reporting
// everything available.
func (u *availabilityUseCaseImpl) Check(ctx context.Context, p CheckParams) (*availability.Decision, error) {
	window, items, err := u.eval.NormalizeRequest(p.RentalDate, p.ReturnDate, p.Items)
	if err != nil {
		return nil, markNormalizeErr(err)
	}

	records, err := u.loadRecords(ctx, u.pool)
	if err != nil {
		return nil, err
	}

	decision := u.eval.Evaluate(window, items, records)
	return &decision, nil
}

func (u *availabilityUseCaseImpl) Calendar(ctx context.Context, p CalendarParams) ([]readmodel.DaySummary, error) {
	from, to, err := u.calendarBounds(p)
	if err != nil {
		return nil, err
	}

	records, err := u.loadRecords(ctx, u.pool)
	if err != nil {
		return nil, err
	}

	usage := u.eval.UsageByDay(records, from, to)

	names := make([]string, 0, len(u.eval.Table()))
	for name := range u.eval.Table() {
		names = append(names, name)
	}
	sort.Strings(names)

	summaries := make([]readmodel.DaySummary, 0, len(usage))
	for day := from; day.Before(to); day = day.AddDate(0, 0, 1) {
		date := day.Format("2006-01-02")
		used := usage[date]

		items := make([]readmodel.ItemStock, 0, len(names))
		for _, name := range names {
			limit := u.eval.Table()[name]
			items = append(items, readmodel.ItemStock{
				Name:      name,
				Limit:     limit,
				Used:      used[name],
				Available: max(0, limit-used[name]),
			})
		}

		summaries = append(summaries, readmodel.DaySummary{Date: date, Items: items})
	}

	return summaries, nil
}

func (u *availabilityUseCaseImpl) calendarBounds(p CalendarParams) (time.Time, time.Time, error) {
	loc := u.eval.Location()

	switch {
	case p.Month != "":
		month, err := time.ParseInLocation("2006-01", p.Month, loc)
		if err != nil {
			return time.Time{}, time.Time{}, errs.Mark(err, ErrInvalidRange)
		}
		return month, month.AddDate(0, 1, 0), nil
	case p.Start != "" && p.End != "":
		from, err := time.ParseInLocation("2006-01-02", p.Start, loc)
		if err != nil {
			return time.Time{}, time.Time{}, errs.Mark(err, ErrInvalidRange)
		}
		to, err := time.ParseInLocation("2006-01-02", p.End, loc)
		if err != nil {
			return time.Time{}, time.Time{}, errs.Mark(err, ErrInvalidRange)
		}
		if !from.Before(to) {
			return time.Time{}, time.Time{}, ErrInvalidRange
		}
		return from, to, nil
	case p.Start != "" || p.End != "":
		return time.Time{}, time.Time{}, ErrInvalidRange
	default:
		now := u.clock.Now().In(loc)
		month := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
		return month, month.AddDate(0, 1, 0), nil
	}
}

func (u *availabilityUseCaseImpl) loadRecords(ctx context.Context, dbtx db.DBTX) ([]availability.Record, error) {
	docs, err := u.store.ListDocs(ctx, dbtx)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}

	records := make([]availability.Record, 0, len(docs))
	for _, doc := range docs {
		records = append(records, availability.RecordFromDoc(doc.ID, doc.Doc))
	}
	return records, nil
}

func markNormalizeErr(err error) error {
	switch {
	case errors.Is(err, schedule.ErrInvalidTimeFormat), errors.Is(err, schedule.ErrInvalidWindow):
		return errs.Mark(err, ErrInvalidTimeWindow)
	case errors.Is(err, inventory.ErrInvalidItemPayload):
		return errs.Mark(err, ErrInvalidItems)
	default:
		return err
	}
}
