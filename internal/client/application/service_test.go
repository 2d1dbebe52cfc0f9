package application

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbellamine/comptoir/internal/client/domain"
	"github.com/mbellamine/comptoir/internal/client/infrastructure/memory"
)

func newService() *Service {
	return NewService(slog.Default(), memory.NewClientRepository())
}

func TestCreateRejectsDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	_, err := svc.Create(ctx, "Durand", "Alice", "alice@example.com", "", "")
	require.NoError(t, err)

	_, err = svc.Create(ctx, "Martin", "Bob", "alice@example.com", "", "")
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)

	// Case-insensitive: a different casing is still the same email.
	_, err = svc.Create(ctx, "Martin", "Bob", "ALICE@Example.COM", "", "")
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
}

func TestCreateValidatesRequiredFields(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	_, err := svc.Create(ctx, "", "Alice", "a@example.com", "", "")
	assert.ErrorIs(t, err, domain.ErrEmptyLastName)

	_, err = svc.Create(ctx, "Durand", "Alice", "", "", "")
	assert.ErrorIs(t, err, domain.ErrEmptyEmail)
}

func TestDuplicateClient(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	original, err := svc.Create(ctx, "Durand", "Alice", "alice@example.com", "0601020304", "Paris")
	require.NoError(t, err)

	copy, err := svc.Duplicate(ctx, original.ID)
	require.NoError(t, err)
	assert.NotEqual(t, original.ID, copy.ID)
	assert.Equal(t, "alice@example.com.copy", copy.Email)
	assert.Equal(t, original.LastName, copy.LastName)
	assert.Equal(t, original.Address, copy.Address)
}

func TestDeleteUnknownClient(t *testing.T) {
	svc := newService()
	err := svc.Delete(context.Background(), 12)
	assert.ErrorIs(t, err, domain.ErrClientNotFound)
}

func TestFindByEmail(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	created, err := svc.Create(ctx, "Durand", "Alice", "alice@example.com", "", "")
	require.NoError(t, err)

	got, err := svc.FindByEmail(ctx, "Alice@Example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}
