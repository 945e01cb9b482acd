package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/sh-sahil/emp-repo/dto"
)

const uniqueViolation = "23505"

type TaxDetailsRepo struct {
	db *DB
}

func NewTaxDetailsRepo(db *DB) *TaxDetailsRepo {
	return &TaxDetailsRepo{db: db}
}

func (r *TaxDetailsRepo) HasForUser(ctx context.Context, userID string) (bool, error) {
	var exists bool
	err := r.db.Pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM tax_details WHERE user_id = $1)`,
		userID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check tax details: %w", err)
	}
	return exists, nil
}

// Insert stores one detail document for the user. The unique index turns
// a lost race between two uploads into a duplicate-submission error.
func (r *TaxDetailsRepo) Insert(ctx context.Context, userID string, details dto.TaxDetails) (string, error) {
	doc, err := json.Marshal(details)
	if err != nil {
		return "", fmt.Errorf("encode tax details: %w", err)
	}

	id := uuid.New().String()
	_, err = r.db.Pool.Exec(ctx,
		`INSERT INTO tax_details(id, user_id, details) VALUES ($1, $2, $3)`,
		id, userID, doc)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return "", dto.ErrDuplicateSubmission
		}
		return "", fmt.Errorf("insert tax details: %w", err)
	}
	return id, nil
}

// ListAll returns every stored detail document without ids, oldest first.
func (r *TaxDetailsRepo) ListAll(ctx context.Context) ([]dto.TaxDetails, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT details FROM tax_details ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list tax details: %w", err)
	}
	defer rows.Close()

	var all []dto.TaxDetails
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("scan tax details: %w", err)
		}
		var details dto.TaxDetails
		if err := json.Unmarshal(doc, &details); err != nil {
			return nil, fmt.Errorf("decode tax details: %w", err)
		}
		all = append(all, details)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tax details: %w", err)
	}
	return all, nil
}
