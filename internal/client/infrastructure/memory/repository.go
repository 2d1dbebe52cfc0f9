package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/mbellamine/comptoir/internal/client/domain"
)

type ClientRepository struct {
	mu      sync.Mutex
	clients []domain.Client
}

func NewClientRepository() *ClientRepository {
	return &ClientRepository{}
}

func (r *ClientRepository) Save(_ context.Context, c domain.Client) (domain.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	max := 0
	for i := range r.clients {
		if r.clients[i].ID > max {
			max = r.clients[i].ID
		}
	}
	c.ID = max + 1
	r.clients = append(r.clients, c)
	return c, nil
}

func (r *ClientRepository) Update(_ context.Context, c domain.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.clients {
		if r.clients[i].ID == c.ID {
			r.clients[i] = c
			return nil
		}
	}
	r.clients = append(r.clients, c)
	return nil
}

func (r *ClientRepository) Delete(_ context.Context, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.clients {
		if r.clients[i].ID == id {
			r.clients = append(r.clients[:i], r.clients[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *ClientRepository) FindByID(_ context.Context, id int) (domain.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.clients {
		if c.ID == id {
			return c, nil
		}
	}
	return domain.Client{}, domain.ErrClientNotFound
}

func (r *ClientRepository) FindByEmail(_ context.Context, email string) (domain.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.clients {
		if strings.EqualFold(c.Email, email) {
			return c, nil
		}
	}
	return domain.Client{}, domain.ErrClientNotFound
}

func (r *ClientRepository) FindAll(_ context.Context) ([]domain.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Client, len(r.clients))
	copy(out, r.clients)
	return out, nil
}
