package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalog "github.com/mbellamine/comptoir/internal/catalog/domain"
)

func testProduct(id int, price float64) catalog.Product {
	return catalog.Product{ID: id, Name: "Clavier", UnitPrice: price}
}

func TestNewLineSnapshotsProduct(t *testing.T) {
	p := testProduct(1, 10)
	l, err := NewLine(p, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, l.ProductID)
	assert.Equal(t, 10.0, l.UnitPrice)
	assert.Equal(t, 30.0, l.Subtotal())

	_, err = NewLine(p, 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestNewOrderComputesTotal(t *testing.T) {
	l1, err := NewLine(testProduct(1, 10), 3)
	require.NoError(t, err)
	l2, err := NewLine(testProduct(2, 2.5), 4)
	require.NoError(t, err)

	o, err := NewOrder(1, []Line{l1, l2}, time.Now())
	require.NoError(t, err)
	assert.Equal(t, StatusPending, o.Status)
	assert.Equal(t, 40.0, o.Total)

	o.Lines = o.Lines[:1]
	o.RecomputeTotal()
	assert.Equal(t, 30.0, o.Total)
}

func TestNewOrderValidation(t *testing.T) {
	l, err := NewLine(testProduct(1, 10), 1)
	require.NoError(t, err)

	_, err = NewOrder(0, []Line{l}, time.Now())
	assert.ErrorIs(t, err, ErrNoClient)

	_, err = NewOrder(1, nil, time.Now())
	assert.ErrorIs(t, err, ErrNoLines)
}

func TestStateMachine(t *testing.T) {
	l, err := NewLine(testProduct(1, 10), 1)
	require.NoError(t, err)
	o, err := NewOrder(1, []Line{l}, time.Now())
	require.NoError(t, err)

	require.NoError(t, o.Confirm())
	assert.Equal(t, StatusConfirmed, o.Status)

	// Confirmed cannot be confirmed again.
	var transition *InvalidTransitionError
	err = o.Confirm()
	require.ErrorAs(t, err, &transition)
	assert.Equal(t, StatusConfirmed, transition.From)

	// Confirmed may still be cancelled, but only once.
	require.NoError(t, o.Cancel())
	assert.Equal(t, StatusCancelled, o.Status)
	assert.ErrorAs(t, o.Cancel(), &transition)
	assert.ErrorAs(t, o.Confirm(), &transition)
}

func TestDuplicateResetsIdentityAndStatus(t *testing.T) {
	l, err := NewLine(testProduct(1, 10), 3)
	require.NoError(t, err)
	o, err := NewOrder(7, []Line{l}, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	o.ID = 12
	require.NoError(t, o.Confirm())

	now := time.Now()
	cp := o.Duplicate(now)
	assert.Equal(t, 0, cp.ID)
	assert.Equal(t, StatusPending, cp.Status)
	assert.Equal(t, now, cp.CreatedAt)
	assert.Equal(t, o.ClientID, cp.ClientID)
	assert.Equal(t, o.Lines, cp.Lines)
	assert.Equal(t, o.Total, cp.Total)

	// Lines are a fresh slice.
	cp.Lines[0].Quantity = 99
	assert.Equal(t, 3, o.Lines[0].Quantity)
}
