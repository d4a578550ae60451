package usecase

import (
	"context"
	"errors"
	"hash/fnv"
	"log/slog"
	"time"

	"club-rental-api/internal/domain/availability"
	"club-rental-api/internal/domain/inventory"
	"club-rental-api/internal/domain/schedule"
	"club-rental-api/internal/infra"
	"club-rental-api/internal/infra/db"
	"club-rental-api/internal/pkg/clock"
	"club-rental-api/internal/pkg/errs"
	"club-rental-api/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Submissions serialize on one transaction-scoped advisory lock, closing the
// check-then-act gap between reading the snapshot and inserting the new
// request. Volumes are a single club's rentals, so one global lock is
// cheaper than per-item lock ordering.
var admissionLockKey = func() int64 {
	h := fnv.New64a()
	h.Write([]byte("rental_requests.admission"))
	return int64(h.Sum64())
}()

type RentalWriteRepository interface {
	Insert(ctx context.Context, dbtx db.DBTX, id uuid.UUID, doc map[string]any, createdAt time.Time) error
}

type SubmitParams struct {
	Requester  string
	Contact    string
	Purpose    string
	RentalDate any
	ReturnDate any
	Items      any
}

// SubmitResult reports the admission outcome. When Accepted is false the
// Decision carries the per-item conflicts and Rental is nil.
type SubmitResult struct {
	Accepted bool
	Rental   *readmodel.RentalRM
	Decision availability.Decision
}

type RentalUseCase interface {
	Submit(ctx context.Context, p SubmitParams) (*SubmitResult, error)
	Get(ctx context.Context, id uuid.UUID) (*readmodel.RentalRM, error)
}

type rentalUseCaseImpl struct {
	store RentalReadStore
	repo  RentalWriteRepository
	pool  *pgxpool.Pool
	eval  *availability.Evaluator
	clock clock.Clock
}

func NewRentalUseCase(
	store RentalReadStore,
	repo RentalWriteRepository,
	pool *pgxpool.Pool,
	eval *availability.Evaluator,
	clock clock.Clock,
) RentalUseCase {
	return &rentalUseCaseImpl{
		store: store,
		repo:  repo,
		pool:  pool,
		eval:  eval,
		clock: clock,
	}
}

func (u *rentalUseCaseImpl) Submit(ctx context.Context, p SubmitParams) (*SubmitResult, error) {
	window, items, err := u.eval.NormalizeRequest(p.RentalDate, p.ReturnDate, p.Items)
	if err != nil {
		return nil, markNormalizeErr(err)
	}

	tx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("rollback failed", "error", rollbackErr.Error())
		}
	}()

	if _, err := tx.Exec(ctx, "SELECT pg_advisory_xact_lock($1)", admissionLockKey); err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}

	records, err := u.loadRecordsTx(ctx, tx)
	if err != nil {
		return nil, err
	}

	decision := u.eval.Evaluate(window, items, records)
	if !decision.Available {
		return &SubmitResult{Accepted: false, Decision: decision}, nil
	}

	id := uuid.New()
	now := u.clock.Now()
	doc := newRequestDoc(p, window, items, now)

	if err := u.repo.Insert(ctx, tx, id, doc, now); err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}

	return &SubmitResult{
		Accepted: true,
		Rental:   u.toRM(&readmodel.RentalDoc{ID: id, Doc: doc, CreatedAt: now}),
		Decision: decision,
	}, nil
}

func (u *rentalUseCaseImpl) Get(ctx context.Context, id uuid.UUID) (*readmodel.RentalRM, error) {
	doc, err := u.store.FindByID(ctx, u.pool, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrRentalNotFound)
		}
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}

	return u.toRM(doc), nil
}

// newRequestDoc writes the canonical forms, so documents created here parse
// under the strictest normalizer strategies; only legacy rows stay noisy.
func newRequestDoc(p SubmitParams, window schedule.TimeWindow, items inventory.ItemRequest, now time.Time) map[string]any {
	itemList := make([]any, 0, len(items))
	for _, line := range items {
		itemList = append(itemList, map[string]any{"name": line.Name, "qty": line.Qty})
	}

	doc := map[string]any{
		"status":      availability.StatusPending.String(),
		"rentalDate":  window.Start().Format(time.RFC3339),
		"returnDate":  window.End().Format(time.RFC3339),
		"items":       itemList,
		"requester":   p.Requester,
		"submittedAt": now.Format(time.RFC3339),
	}
	if p.Contact != "" {
		doc["contact"] = p.Contact
	}
	if p.Purpose != "" {
		doc["purpose"] = p.Purpose
	}

	return doc
}

func (u *rentalUseCaseImpl) loadRecordsTx(ctx context.Context, tx pgx.Tx) ([]availability.Record, error) {
	docs, err := u.store.ListDocs(ctx, tx)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}

	records := make([]availability.Record, 0, len(docs))
	for _, doc := range docs {
		records = append(records, availability.RecordFromDoc(doc.ID, doc.Doc))
	}
	return records, nil
}

// toRM normalizes a stored document for display, tolerating unparsable
// legacy values: they render as empty rather than failing the read.
func (u *rentalUseCaseImpl) toRM(doc *readmodel.RentalDoc) *readmodel.RentalRM {
	rec := availability.RecordFromDoc(doc.ID, doc.Doc)

	rm := &readmodel.RentalRM{
		ID:        doc.ID,
		Status:    availability.StatusFromRaw(rec.Status).String(),
		CreatedAt: doc.CreatedAt,
	}
	if requester, ok := doc.Doc["requester"].(string); ok {
		rm.Requester = requester
	}

	if window, err := schedule.ParseWindow(rec.Start, rec.End, u.eval.Location()); err == nil {
		rm.Window = window.String()
	}
	if items, err := inventory.NormalizeItems(rec.Items); err == nil {
		for _, line := range items {
			rm.Items = append(rm.Items, readmodel.ItemRM{Name: line.Name, Qty: line.Qty})
		}
	}

	return rm
}
