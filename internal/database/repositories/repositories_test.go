package repositories

import (
	"context"
	"testing"

	"product-catalog/internal/database"
	"product-catalog/internal/database/dbtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createSeller(t *testing.T, repo *SellerRepository, username string) *database.Seller {
	t.Helper()
	seller := &database.Seller{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "$2a$04$hash-for-" + username,
	}
	require.NoError(t, repo.Create(context.Background(), seller))
	return seller
}

func TestSellerRepository(t *testing.T) {
	db := dbtest.New(t)
	repo := NewSellerRepository(db)
	ctx := context.Background()

	alice := createSeller(t, repo, "alice")
	assert.NotZero(t, alice.ID)
	assert.False(t, alice.CreatedAt.IsZero())

	t.Run("GetByUsername", func(t *testing.T) {
		got, err := repo.GetByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, alice.ID, got.ID)
		assert.Equal(t, "alice@example.com", got.Email)
		assert.Equal(t, alice.PasswordHash, got.PasswordHash)

		_, err = repo.GetByUsername(ctx, "nobody")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("GetByID", func(t *testing.T) {
		got, err := repo.GetByID(ctx, alice.ID)
		require.NoError(t, err)
		assert.Equal(t, "alice", got.Username)

		_, err = repo.GetByID(ctx, alice.ID+100)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Duplicate", func(t *testing.T) {
		err := repo.Create(ctx, &database.Seller{Username: "alice", Email: "x@example.com", PasswordHash: "h"})
		assert.ErrorIs(t, err, ErrDuplicate)
	})

	t.Run("FindCredentialByUsername", func(t *testing.T) {
		cred, err := repo.FindCredentialByUsername(ctx, "alice")
		require.NoError(t, err)
		require.NotNil(t, cred)
		assert.Equal(t, "alice", cred.Username)
		assert.Equal(t, alice.PasswordHash, cred.PasswordHash)

		cred, err = repo.FindCredentialByUsername(ctx, "bob")
		assert.NoError(t, err)
		assert.Nil(t, cred)

		// exact match only
		cred, err = repo.FindCredentialByUsername(ctx, "ALICE")
		assert.NoError(t, err)
		assert.Nil(t, cred)
	})
}

func TestProductRepository(t *testing.T) {
	db := dbtest.New(t)
	sellers := NewSellerRepository(db)
	repo := NewProductRepository(db)
	ctx := context.Background()

	alice := createSeller(t, sellers, "alice")

	products, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)

	lamp := &database.Product{Name: "Lamp", Description: "Desk lamp", Price: 25, SellerID: alice.ID}
	require.NoError(t, repo.Create(ctx, lamp))
	assert.NotZero(t, lamp.ID)

	chair := &database.Product{Name: "Chair", Description: "Oak chair", Price: 80, SellerID: alice.ID}
	require.NoError(t, repo.Create(ctx, chair))

	t.Run("GetByID", func(t *testing.T) {
		got, err := repo.GetByID(ctx, lamp.ID)
		require.NoError(t, err)
		assert.Equal(t, "Lamp", got.Name)
		assert.Equal(t, int64(25), got.Price)
		require.NotNil(t, got.Seller)
		assert.Equal(t, "alice", got.Seller.Username)
		assert.Empty(t, got.Seller.PasswordHash)

		_, err = repo.GetByID(ctx, 9999)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("List", func(t *testing.T) {
		products, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, "Lamp", products[0].Name)
		assert.Equal(t, "Chair", products[1].Name)
		assert.Equal(t, "alice", products[1].Seller.Username)
	})

	t.Run("Update", func(t *testing.T) {
		lamp.Name = "Floor lamp"
		lamp.Price = 40
		require.NoError(t, repo.Update(ctx, lamp))

		got, err := repo.GetByID(ctx, lamp.ID)
		require.NoError(t, err)
		assert.Equal(t, "Floor lamp", got.Name)
		assert.Equal(t, int64(40), got.Price)
		assert.Equal(t, alice.ID, got.SellerID)

		err = repo.Update(ctx, &database.Product{ID: 9999, Name: "ghost"})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, chair.ID))

		_, err := repo.GetByID(ctx, chair.ID)
		assert.ErrorIs(t, err, ErrNotFound)

		assert.ErrorIs(t, repo.Delete(ctx, chair.ID), ErrNotFound)
	})

	t.Run("UnknownSeller", func(t *testing.T) {
		err := repo.Create(ctx, &database.Product{Name: "Orphan", Price: 1, SellerID: 4242})
		assert.Error(t, err)
	})
}
