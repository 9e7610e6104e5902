package database

import "time"

// Seller represents a seller account
type Seller struct {
	ID           int64     `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"` // Never include in JSON
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// Product represents a catalog entry owned by a seller
type Product struct {
	ID          int64     `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	Price       int64     `db:"price" json:"price"`
	SellerID    int64     `db:"seller_id" json:"seller_id"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`

	// Seller is populated by queries that join the sellers table
	Seller *Seller `db:"-" json:"seller,omitempty"`
}

// AuditLog records a catalog or account mutation. Login attempts are not audited.
type AuditLog struct {
	ID        int64     `db:"id" json:"id"`
	Action    string    `db:"action" json:"action"`
	Username  string    `db:"username" json:"username"`
	Resource  string    `db:"resource" json:"resource"`
	Details   string    `db:"details" json:"details"`
	IPAddress string    `db:"ip_address" json:"ip_address"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
