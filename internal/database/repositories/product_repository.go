package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"product-catalog/internal/database"
)

const selectProductWithSeller = `
        SELECT p.id, p.name, p.description, p.price, p.seller_id, p.created_at, p.updated_at,
               s.id, s.username, s.email, s.created_at
        FROM products p
        JOIN sellers s ON s.id = p.seller_id
`

type ProductRepository struct {
	db *database.DB
}

func NewProductRepository(db *database.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Create inserts a product and fills in its ID and timestamps
func (r *ProductRepository) Create(ctx context.Context, product *database.Product) error {
	query := r.db.Rebind(`
        INSERT INTO products (name, description, price, seller_id, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?)
        RETURNING id
    `)

	now := time.Now().UTC().Truncate(time.Second)
	err := r.db.QueryRowContext(ctx, query,
		product.Name, product.Description, product.Price, product.SellerID, now, now,
	).Scan(&product.ID)
	if err != nil {
		return err
	}

	product.CreatedAt = now
	product.UpdatedAt = now
	return nil
}

// GetByID retrieves a product together with its seller
func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*database.Product, error) {
	query := r.db.Rebind(selectProductWithSeller + ` WHERE p.id = ?`)

	product, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return product, nil
}

// List returns every product ordered by ID
func (r *ProductRepository) List(ctx context.Context) ([]database.Product, error) {
	rows, err := r.db.QueryContext(ctx, selectProductWithSeller+` ORDER BY p.id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []database.Product{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *product)
	}

	return products, rows.Err()
}

// Update replaces name, description and price. The owning seller is kept.
func (r *ProductRepository) Update(ctx context.Context, product *database.Product) error {
	query := r.db.Rebind(`
        UPDATE products
        SET name = ?, description = ?, price = ?, updated_at = ?
        WHERE id = ?
    `)

	updatedAt := time.Now().UTC().Truncate(time.Second)
	result, err := r.db.ExecContext(ctx, query, product.Name, product.Description, product.Price, updatedAt, product.ID)
	if err != nil {
		return err
	}

	if err := expectAffected(result); err != nil {
		return err
	}
	product.UpdatedAt = updatedAt
	return nil
}

// Delete removes a product
func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM products WHERE id = ?`), id)
	if err != nil {
		return err
	}

	return expectAffected(result)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProduct(row rowScanner) (*database.Product, error) {
	var p database.Product
	var s database.Seller
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.SellerID, &p.CreatedAt, &p.UpdatedAt,
		&s.ID, &s.Username, &s.Email, &s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.Seller = &s
	return &p, nil
}

func expectAffected(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
