package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	catalog "github.com/mbellamine/comptoir/internal/catalog/domain"
	"github.com/mbellamine/comptoir/internal/stock/domain"
)

// Service applies a movement policy to a product's stock and broadcasts the
// result. It owns no inventory itself; products are loaded from and written
// back to the catalog store, because store reads hand out defensive copies.
type Service struct {
	log       *slog.Logger
	store     ProductStore
	observers []Observer
	isolate   bool
}

type Option func(*Service)

// WithObserverIsolation makes observer failures log-and-continue instead of
// aborting the movement's caller. The default propagates them.
func WithObserverIsolation() Option {
	return func(s *Service) { s.isolate = true }
}

func NewService(log *slog.Logger, store ProductStore, opts ...Option) *Service {
	s := &Service{log: log, store: store}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) AddObserver(o Observer) {
	s.observers = append(s.observers, o)
}

// Apply moves quantity units on the product's stock under the given policy
// and returns the updated product. The movement is persisted before the
// observers run, so an observer failure surfaces to the caller but never
// undoes the mutation.
func (s *Service) Apply(ctx context.Context, productID, quantity int, policy domain.Policy) (catalog.Product, error) {
	if quantity <= 0 {
		return catalog.Product{}, domain.ErrInvalidQuantity
	}

	p, err := s.store.FindByID(ctx, productID)
	if err != nil {
		return catalog.Product{}, err
	}
	if !p.Tracked() {
		return catalog.Product{}, fmt.Errorf("product %d: %w", productID, domain.ErrStockNotTracked)
	}

	if err := policy.Apply(p.Stock, quantity); err != nil {
		var insufficient *domain.InsufficientStockError
		if errors.As(err, &insufficient) {
			insufficient.ProductID = p.ID
		}
		return catalog.Product{}, err
	}
	if err := s.store.Update(ctx, p); err != nil {
		return catalog.Product{}, fmt.Errorf("persist stock movement: %w", err)
	}
	s.log.Debug("stock movement applied",
		"product_id", p.ID, "policy", policy.Name(), "quantity", quantity, "remaining", p.Stock.Quantity)

	if err := s.notify(ctx, p); err != nil {
		return catalog.Product{}, err
	}
	return p, nil
}

func (s *Service) notify(ctx context.Context, p catalog.Product) error {
	for _, o := range s.observers {
		if err := o.StockChanged(ctx, p.Copy()); err != nil {
			if s.isolate {
				s.log.Warn("stock observer failed", "product_id", p.ID, "err", err)
				continue
			}
			return fmt.Errorf("stock observer: %w", err)
		}
	}
	return nil
}
