package domain

import (
	"errors"
	"fmt"

	catalog "github.com/mbellamine/comptoir/internal/catalog/domain"
)

var (
	ErrInvalidQuantity = errors.New("movement quantity must be positive")
	ErrStockNotTracked = errors.New("product has no stock tracking")
)

// Policy is a stock-movement rule applied to a product's stock. Callers
// pass the policy explicitly on every movement; there is no stored active
// policy to swap.
type Policy interface {
	Name() string
	Apply(stock *catalog.Stock, quantity int) error
}

// Receipt increases the quantity; it cannot fail once the quantity is
// validated.
type Receipt struct{}

func (Receipt) Name() string { return "receipt" }

func (Receipt) Apply(stock *catalog.Stock, quantity int) error {
	stock.Quantity += quantity
	return nil
}

// Issue decreases the quantity and refuses to go below zero.
type Issue struct{}

func (Issue) Name() string { return "issue" }

func (Issue) Apply(stock *catalog.Stock, quantity int) error {
	if quantity > stock.Quantity {
		return &InsufficientStockError{Requested: quantity, Available: stock.Quantity}
	}
	stock.Quantity -= quantity
	return nil
}

type InsufficientStockError struct {
	ProductID int
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %d: requested %d, available %d",
		e.ProductID, e.Requested, e.Available)
}
