package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/sh-sahil/emp-repo/dto"
)

type UserRepo struct {
	db *DB
}

func NewUserRepo(db *DB) *UserRepo {
	return &UserRepo{db: db}
}

func (r *UserRepo) CreateUser(ctx context.Context, name, company string) (*dto.User, error) {
	id := uuid.New().String()
	_, err := r.db.Pool.Exec(ctx,
		`INSERT INTO users(id, name, company) VALUES ($1, $2, $3)`,
		id, name, company)
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return &dto.User{ID: id, Name: name, Company: company}, nil
}

func (r *UserRepo) GetUser(ctx context.Context, id string) (*dto.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, dto.ErrUserNotFound
	}

	var u dto.User
	err := r.db.Pool.QueryRow(ctx,
		`SELECT id, name, company, tax_details_id, tax_comparison_id FROM users WHERE id = $1`,
		id).Scan(&u.ID, &u.Name, &u.Company, &u.TaxDetailsID, &u.TaxComparisonID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, dto.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select user: %w", err)
	}
	return &u, nil
}

// LinkTaxDetails records the back-reference on the user row. Linking a
// missing user is a no-op; the referencing document already exists.
func (r *UserRepo) LinkTaxDetails(ctx context.Context, userID, detailsID string) error {
	_, err := r.db.Pool.Exec(ctx,
		`UPDATE users SET tax_details_id = $2 WHERE id = $1`,
		userID, detailsID)
	if err != nil {
		return fmt.Errorf("link tax details: %w", err)
	}
	return nil
}

func (r *UserRepo) LinkTaxComparison(ctx context.Context, userID, comparisonID string) error {
	_, err := r.db.Pool.Exec(ctx,
		`UPDATE users SET tax_comparison_id = $2 WHERE id = $1`,
		userID, comparisonID)
	if err != nil {
		return fmt.Errorf("link tax comparison: %w", err)
	}
	return nil
}
