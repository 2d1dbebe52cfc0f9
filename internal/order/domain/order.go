package domain

import (
	"errors"
	"fmt"
	"time"

	catalog "github.com/mbellamine/comptoir/internal/catalog/domain"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrNoLines         = errors.New("an order needs at least one line")
	ErrNoClient        = errors.New("an order needs a client")
	ErrInvalidQuantity = errors.New("line quantity must be positive")
)

type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("order cannot go from %s to %s", e.From, e.To)
}

// Line snapshots the product at order time: later catalog price changes do
// not alter existing orders.
type Line struct {
	ProductID   int
	ProductName string
	UnitPrice   float64
	Quantity    int
}

func NewLine(p catalog.Product, quantity int) (Line, error) {
	if quantity <= 0 {
		return Line{}, ErrInvalidQuantity
	}
	return Line{
		ProductID:   p.ID,
		ProductName: p.Name,
		UnitPrice:   p.UnitPrice,
		Quantity:    quantity,
	}, nil
}

func (l Line) Subtotal() float64 {
	return float64(l.Quantity) * l.UnitPrice
}

type Order struct {
	ID        int
	ClientID  int
	Lines     []Line
	Status    Status
	Total     float64
	CreatedAt time.Time
}

func NewOrder(clientID int, lines []Line, now time.Time) (Order, error) {
	if clientID <= 0 {
		return Order{}, ErrNoClient
	}
	if len(lines) == 0 {
		return Order{}, ErrNoLines
	}
	o := Order{
		ClientID:  clientID,
		Lines:     lines,
		Status:    StatusPending,
		CreatedAt: now,
	}
	o.RecomputeTotal()
	return o, nil
}

func (o *Order) RecomputeTotal() {
	total := 0.0
	for _, l := range o.Lines {
		total += l.Subtotal()
	}
	o.Total = total
}

// Confirm is only legal while the order is pending.
func (o *Order) Confirm() error {
	if o.Status != StatusPending {
		return &InvalidTransitionError{From: o.Status, To: StatusConfirmed}
	}
	o.Status = StatusConfirmed
	return nil
}

// Cancel is legal until the order is already cancelled. Confirmed orders may
// still be cancelled; deducted stock is not credited back.
func (o *Order) Cancel() error {
	if o.Status == StatusCancelled {
		return &InvalidTransitionError{From: o.Status, To: StatusCancelled}
	}
	o.Status = StatusCancelled
	return nil
}

// Duplicate copies client and lines into a fresh pending order with no id.
// Stock is not re-checked here.
func (o Order) Duplicate(now time.Time) Order {
	cp := o.Copy()
	cp.ID = 0
	cp.Status = StatusPending
	cp.CreatedAt = now
	return cp
}

// Copy deep-copies the line slice so stored orders cannot be mutated
// through query results.
func (o Order) Copy() Order {
	cp := o
	cp.Lines = make([]Line, len(o.Lines))
	copy(cp.Lines, o.Lines)
	return cp
}
