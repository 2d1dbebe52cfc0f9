package domain

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrEmptyName       = errors.New("product name must not be empty")
	ErrNegativePrice   = errors.New("unit price must not be negative")
)

// Product is owned by the catalog; its id is assigned on save and never
// changes afterwards. A nil Stock means the product is not inventory-tracked.
type Product struct {
	ID          int
	Name        string
	Description string
	UnitPrice   float64
	Stock       *Stock
}

func NewProduct(name, description string, unitPrice float64, stock *Stock) (Product, error) {
	if name == "" {
		return Product{}, ErrEmptyName
	}
	if unitPrice < 0 {
		return Product{}, ErrNegativePrice
	}
	return Product{
		Name:        name,
		Description: description,
		UnitPrice:   unitPrice,
		Stock:       stock,
	}, nil
}

func (p Product) Tracked() bool {
	return p.Stock != nil
}

// Copy returns a deep copy so callers holding the result cannot mutate
// catalog-owned stock through the shared pointer.
func (p Product) Copy() Product {
	cp := p
	if p.Stock != nil {
		stock := *p.Stock
		cp.Stock = &stock
	}
	return cp
}
