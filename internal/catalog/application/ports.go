package application

import (
	"context"

	"github.com/mbellamine/comptoir/internal/catalog/domain"
)

type ProductStore interface {
	Save(ctx context.Context, p domain.Product) (domain.Product, error)
	Update(ctx context.Context, p domain.Product) error
	Delete(ctx context.Context, id int) (bool, error)
	FindByID(ctx context.Context, id int) (domain.Product, error)
	FindAll(ctx context.Context) ([]domain.Product, error)
}
