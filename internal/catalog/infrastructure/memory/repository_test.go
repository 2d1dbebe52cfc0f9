package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbellamine/comptoir/internal/catalog/domain"
)

func product(t *testing.T, name string, qty int) domain.Product {
	t.Helper()
	stock, err := domain.NewStock(qty, 2)
	require.NoError(t, err)
	p, err := domain.NewProduct(name, "", 10, stock)
	require.NoError(t, err)
	return p
}

func TestSaveAssignsMonotonicIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository()

	a, err := repo.Save(ctx, product(t, "a", 5))
	require.NoError(t, err)
	b, err := repo.Save(ctx, product(t, "b", 5))
	require.NoError(t, err)
	assert.Equal(t, 1, a.ID)
	assert.Equal(t, 2, b.ID)

	// Deleting the highest id must not let it be reused for a lower one.
	removed, err := repo.Delete(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	c, err := repo.Save(ctx, product(t, "c", 5))
	require.NoError(t, err)
	assert.Equal(t, 3, c.ID)
}

func TestUpdateUpsertsOnMiss(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository()

	p := product(t, "ghost", 5)
	p.ID = 42
	require.NoError(t, repo.Update(ctx, p))

	got, err := repo.FindByID(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, "ghost", got.Name)
}

func TestDeleteReportsRemoval(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository()

	removed, err := repo.Delete(ctx, 99)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestFindReturnsDefensiveCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository()

	saved, err := repo.Save(ctx, product(t, "a", 5))
	require.NoError(t, err)

	got, err := repo.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	got.Stock.Quantity = 0

	again, err := repo.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, again.Stock.Quantity)
}

func TestFindByIDNotFound(t *testing.T) {
	repo := NewProductRepository()
	_, err := repo.FindByID(context.Background(), 7)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}
