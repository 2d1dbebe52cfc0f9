package application

import (
	"context"

	catalog "github.com/mbellamine/comptoir/internal/catalog/domain"
)

type ProductStore interface {
	FindByID(ctx context.Context, id int) (catalog.Product, error)
	Update(ctx context.Context, p catalog.Product) error
}

// Observer is notified synchronously after every successful movement, in
// registration order. It must only read the product it receives.
type Observer interface {
	StockChanged(ctx context.Context, product catalog.Product) error
}
