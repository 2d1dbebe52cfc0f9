package application

import (
	"context"

	"github.com/mbellamine/comptoir/internal/client/domain"
)

type ClientStore interface {
	Save(ctx context.Context, c domain.Client) (domain.Client, error)
	Update(ctx context.Context, c domain.Client) error
	Delete(ctx context.Context, id int) (bool, error)
	FindByID(ctx context.Context, id int) (domain.Client, error)
	FindByEmail(ctx context.Context, email string) (domain.Client, error)
	FindAll(ctx context.Context) ([]domain.Client, error)
}
