package readstore

import (
	"context"
	"encoding/json"
	"errors"

	"club-rental-api/internal/infra"
	"club-rental-api/internal/infra/db"
	"club-rental-api/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// RentalReadStore reads rental request documents. Every call fetches a
// fresh snapshot; nothing is cached between availability checks.
type RentalReadStore struct{}

func NewRentalReadStore() *RentalReadStore {
	return &RentalReadStore{}
}

const listDocsSQL = `SELECT id, doc, created_at FROM rental_requests ORDER BY created_at, id`

func (r *RentalReadStore) ListDocs(ctx context.Context, dbtx db.DBTX) ([]*readmodel.RentalDoc, error) {
	rows, err := dbtx.Query(ctx, listDocsSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rental requests", err)
	}
	defer rows.Close()

	var docs []*readmodel.RentalDoc
	for rows.Next() {
		doc, err := scanRentalDoc(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read rental request rows", err)
	}

	return docs, nil
}

const findDocSQL = `SELECT id, doc, created_at FROM rental_requests WHERE id = $1`

func (r *RentalReadStore) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*readmodel.RentalDoc, error) {
	row := dbtx.QueryRow(ctx, findDocSQL, id)

	doc, err := scanRentalDoc(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("rental request not found", err, infra.KindNotFound)
		}
		return nil, err
	}

	return doc, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRentalDoc(row rowScanner) (*readmodel.RentalDoc, error) {
	var doc readmodel.RentalDoc
	var payload []byte

	if err := row.Scan(&doc.ID, &payload, &doc.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, infra.WrapRepoErr("failed to scan rental request", err)
	}

	if err := json.Unmarshal(payload, &doc.Doc); err != nil {
		// A non-object document would silently shrink aggregated usage,
		// so it is a hard failure rather than a skipped row.
		return nil, infra.WrapRepoErr("malformed rental request document", err, infra.KindBadDocument)
	}

	return &doc, nil
}
