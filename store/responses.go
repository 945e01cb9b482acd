package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type ResponseRepo struct {
	db *DB
}

func NewResponseRepo(db *DB) *ResponseRepo {
	return &ResponseRepo{db: db}
}

// Upsert stores the advice text for the user, replacing any earlier one.
// replaced reports whether a previous row existed, so the caller can skip
// re-linking the user on the replacement path.
func (r *ResponseRepo) Upsert(ctx context.Context, userID, response string, generatedAt time.Time) (string, bool, error) {
	var id string
	var replaced bool
	err := r.db.Pool.QueryRow(ctx, `
INSERT INTO tax_responses(id, user_id, response, generated_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (user_id) DO UPDATE
	SET response = EXCLUDED.response, generated_at = EXCLUDED.generated_at
RETURNING id, (xmax <> 0)`,
		uuid.New().String(), userID, response, generatedAt).Scan(&id, &replaced)
	if err != nil {
		return "", false, fmt.Errorf("upsert tax response: %w", err)
	}
	return id, replaced, nil
}
