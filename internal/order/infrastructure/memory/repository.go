package memory

import (
	"context"
	"sync"

	"github.com/mbellamine/comptoir/internal/order/domain"
)

type OrderRepository struct {
	mu     sync.Mutex
	orders []domain.Order
}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

func (r *OrderRepository) Save(_ context.Context, o domain.Order) (domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	max := 0
	for i := range r.orders {
		if r.orders[i].ID > max {
			max = r.orders[i].ID
		}
	}
	o.ID = max + 1
	r.orders = append(r.orders, o.Copy())
	return o, nil
}

func (r *OrderRepository) Update(_ context.Context, o domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.orders {
		if r.orders[i].ID == o.ID {
			r.orders[i] = o.Copy()
			return nil
		}
	}
	r.orders = append(r.orders, o.Copy())
	return nil
}

func (r *OrderRepository) Delete(_ context.Context, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.orders {
		if r.orders[i].ID == id {
			r.orders = append(r.orders[:i], r.orders[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *OrderRepository) FindByID(_ context.Context, id int) (domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.orders {
		if r.orders[i].ID == id {
			return r.orders[i].Copy(), nil
		}
	}
	return domain.Order{}, domain.ErrOrderNotFound
}

func (r *OrderRepository) FindAll(_ context.Context) ([]domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Order, 0, len(r.orders))
	for i := range r.orders {
		out = append(out, r.orders[i].Copy())
	}
	return out, nil
}

func (r *OrderRepository) FindByClient(_ context.Context, clientID int) ([]domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Order, 0)
	for i := range r.orders {
		if r.orders[i].ClientID == clientID {
			out = append(out, r.orders[i].Copy())
		}
	}
	return out, nil
}

func (r *OrderRepository) FindByStatus(_ context.Context, status domain.Status) ([]domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Order, 0)
	for i := range r.orders {
		if r.orders[i].Status == status {
			out = append(out, r.orders[i].Copy())
		}
	}
	return out, nil
}
