package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mbellamine/comptoir/internal/catalog/domain"
)

// Service is the product catalog: the only writer of Product entities.
type Service struct {
	log   *slog.Logger
	store ProductStore
}

func NewService(log *slog.Logger, store ProductStore) *Service {
	return &Service{log: log, store: store}
}

func (s *Service) Create(ctx context.Context, name, description string, unitPrice float64, stock *domain.Stock) (domain.Product, error) {
	p, err := domain.NewProduct(name, description, unitPrice, stock)
	if err != nil {
		return domain.Product{}, err
	}
	saved, err := s.store.Save(ctx, p)
	if err != nil {
		return domain.Product{}, fmt.Errorf("save product: %w", err)
	}
	s.log.Info("product created", "product_id", saved.ID, "name", saved.Name)
	return saved, nil
}

// Update replaces the stored product with the same id, or appends it when
// the id is unknown.
func (s *Service) Update(ctx context.Context, p domain.Product) (domain.Product, error) {
	if p.Name == "" {
		return domain.Product{}, domain.ErrEmptyName
	}
	if p.UnitPrice < 0 {
		return domain.Product{}, domain.ErrNegativePrice
	}
	if err := s.store.Update(ctx, p); err != nil {
		return domain.Product{}, fmt.Errorf("update product %d: %w", p.ID, err)
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id int) error {
	removed, err := s.store.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("delete product %d: %w", id, domain.ErrProductNotFound)
	}
	s.log.Info("product deleted", "product_id", id)
	return nil
}

func (s *Service) FindByID(ctx context.Context, id int) (domain.Product, error) {
	return s.store.FindByID(ctx, id)
}

func (s *Service) FindAll(ctx context.Context) ([]domain.Product, error) {
	return s.store.FindAll(ctx)
}
