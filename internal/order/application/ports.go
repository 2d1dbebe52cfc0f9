package application

import (
	"context"

	catalogdomain "github.com/mbellamine/comptoir/internal/catalog/domain"
	clientdomain "github.com/mbellamine/comptoir/internal/client/domain"
	"github.com/mbellamine/comptoir/internal/order/domain"
	stockdomain "github.com/mbellamine/comptoir/internal/stock/domain"
)

type OrderStore interface {
	Save(ctx context.Context, o domain.Order) (domain.Order, error)
	Update(ctx context.Context, o domain.Order) error
	Delete(ctx context.Context, id int) (bool, error)
	FindByID(ctx context.Context, id int) (domain.Order, error)
	FindAll(ctx context.Context) ([]domain.Order, error)
	FindByClient(ctx context.Context, clientID int) ([]domain.Order, error)
	FindByStatus(ctx context.Context, status domain.Status) ([]domain.Order, error)
}

type ProductCatalog interface {
	FindByID(ctx context.Context, id int) (catalogdomain.Product, error)
}

type ClientDirectory interface {
	FindByID(ctx context.Context, id int) (clientdomain.Client, error)
}

type StockMover interface {
	Apply(ctx context.Context, productID, quantity int, policy stockdomain.Policy) (catalogdomain.Product, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, aggregateID, eventType string, payload []byte)
}

// NopPublisher is wired when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, string, []byte) {}
