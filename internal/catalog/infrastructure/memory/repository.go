package memory

import (
	"context"
	"sync"

	"github.com/mbellamine/comptoir/internal/catalog/domain"
)

// ProductRepository keeps products in insertion order, keyed by id. The
// mutex guards the read-modify-write sequences (id assignment, stock
// updates) because the HTTP adapter serves requests concurrently.
type ProductRepository struct {
	mu       sync.Mutex
	products []domain.Product
}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

func (r *ProductRepository) Save(_ context.Context, p domain.Product) (domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p.ID = r.nextID()
	r.products = append(r.products, p.Copy())
	return p, nil
}

func (r *ProductRepository) Update(_ context.Context, p domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.products {
		if r.products[i].ID == p.ID {
			r.products[i] = p.Copy()
			return nil
		}
	}
	// Upsert on miss, like the catalog contract requires.
	r.products = append(r.products, p.Copy())
	return nil
}

func (r *ProductRepository) Delete(_ context.Context, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.products {
		if r.products[i].ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *ProductRepository) FindByID(_ context.Context, id int) (domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.products {
		if r.products[i].ID == id {
			return r.products[i].Copy(), nil
		}
	}
	return domain.Product{}, domain.ErrProductNotFound
}

func (r *ProductRepository) FindAll(_ context.Context) ([]domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Product, 0, len(r.products))
	for i := range r.products {
		out = append(out, r.products[i].Copy())
	}
	return out, nil
}

func (r *ProductRepository) nextID() int {
	max := 0
	for i := range r.products {
		if r.products[i].ID > max {
			max = r.products[i].ID
		}
	}
	return max + 1
}
