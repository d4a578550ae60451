package writerepo

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"club-rental-api/internal/infra"
	"club-rental-api/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgErrCodeUniqueViolation = "23505"

// RentalWriteRepository persists new rental request documents. Existing
// documents are never mutated here; approval is an administrator action
// outside this service.
type RentalWriteRepository struct{}

func NewRentalWriteRepository() *RentalWriteRepository {
	return &RentalWriteRepository{}
}

const insertDocSQL = `INSERT INTO rental_requests (id, doc, created_at) VALUES ($1, $2, $3)`

func (r *RentalWriteRepository) Insert(ctx context.Context, dbtx db.DBTX, id uuid.UUID, doc map[string]any, createdAt time.Time) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return infra.WrapRepoErr("failed to encode rental request document", err, infra.KindBadDocument)
	}

	if _, err := dbtx.Exec(ctx, insertDocSQL, id, payload, createdAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation {
			return infra.WrapRepoErr("rental request already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to insert rental request", err)
	}

	return nil
}
