package domain

import "errors"

var (
	ErrNegativeQuantity  = errors.New("stock quantity must not be negative")
	ErrNegativeThreshold = errors.New("alert threshold must not be negative")
)

// Stock lives and dies with its owning Product.
type Stock struct {
	Quantity  int
	Threshold int
}

func NewStock(quantity, threshold int) (*Stock, error) {
	if quantity < 0 {
		return nil, ErrNegativeQuantity
	}
	if threshold < 0 {
		return nil, ErrNegativeThreshold
	}
	return &Stock{Quantity: quantity, Threshold: threshold}, nil
}

// IsLow reports whether the quantity has reached the alert threshold.
func (s *Stock) IsLow() bool {
	return s.Quantity <= s.Threshold
}
