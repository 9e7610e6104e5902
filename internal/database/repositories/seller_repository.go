package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"product-catalog/internal/auth"
	"product-catalog/internal/database"
)

type SellerRepository struct {
	db *database.DB
}

func NewSellerRepository(db *database.DB) *SellerRepository {
	return &SellerRepository{db: db}
}

// Create inserts a seller and fills in its ID and creation time.
// A taken username yields ErrDuplicate.
func (r *SellerRepository) Create(ctx context.Context, seller *database.Seller) error {
	query := r.db.Rebind(`
        INSERT INTO sellers (username, email, password_hash, created_at)
        VALUES (?, ?, ?, ?)
        RETURNING id
    `)

	createdAt := time.Now().UTC().Truncate(time.Second)
	err := r.db.QueryRowContext(ctx, query, seller.Username, seller.Email, seller.PasswordHash, createdAt).
		Scan(&seller.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("seller %q: %w", seller.Username, ErrDuplicate)
		}
		return err
	}

	seller.CreatedAt = createdAt
	return nil
}

func (r *SellerRepository) GetByUsername(ctx context.Context, username string) (*database.Seller, error) {
	query := r.db.Rebind(`
        SELECT id, username, email, password_hash, created_at
        FROM sellers
        WHERE username = ?
    `)
	return r.scanOne(r.db.QueryRowContext(ctx, query, username))
}

// GetByID retrieves a seller by ID
func (r *SellerRepository) GetByID(ctx context.Context, id int64) (*database.Seller, error) {
	query := r.db.Rebind(`
        SELECT id, username, email, password_hash, created_at
        FROM sellers
        WHERE id = ?
    `)
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

// FindCredentialByUsername implements auth.CredentialStore. An unknown
// username is reported as a nil credential, not an error.
func (r *SellerRepository) FindCredentialByUsername(ctx context.Context, username string) (*auth.Credential, error) {
	query := r.db.Rebind(`SELECT username, password_hash FROM sellers WHERE username = ?`)

	var cred auth.Credential
	err := r.db.QueryRowContext(ctx, query, username).Scan(&cred.Username, &cred.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &cred, nil
}

func (r *SellerRepository) scanOne(row *sql.Row) (*database.Seller, error) {
	var seller database.Seller
	err := row.Scan(&seller.ID, &seller.Username, &seller.Email, &seller.PasswordHash, &seller.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &seller, nil
}
