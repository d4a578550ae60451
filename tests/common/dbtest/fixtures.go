//go:build unit || e2e

package dbtest

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ResetDB truncates all mutable state between tests.
func ResetDB(db DBLike) error {
	ctx := context.Background()

	if _, err := db.Exec(ctx, "TRUNCATE TABLE rental_requests"); err != nil {
		return fmt.Errorf("failed to truncate rental_requests: %w", err)
	}

	return nil
}

// InsertRentalDoc seeds one stored rental request with an arbitrary document
// shape, bypassing the submission flow so legacy variants can be planted.
func InsertRentalDoc(db DBLike, id uuid.UUID, doc map[string]any, createdAt time.Time) error {
	ctx := context.Background()

	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode rental doc: %w", err)
	}

	_, err = db.Exec(ctx,
		"INSERT INTO rental_requests (id, doc, created_at) VALUES ($1, $2, $3)",
		id, payload, createdAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert rental doc: %w", err)
	}

	return nil
}

// CountRentalDocs reports the number of stored rental requests.
func CountRentalDocs(db DBLike) (int, error) {
	ctx := context.Background()

	var count int
	if err := db.QueryRow(ctx, "SELECT COUNT(*) FROM rental_requests").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count rental_requests: %w", err)
	}

	return count, nil
}
