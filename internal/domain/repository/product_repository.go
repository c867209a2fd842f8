package repository

import (
	"context"

	"github.com/hanquocpodcastne-create/PHAVI/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia del catálogo de productos.
// El catálogo completo cabe en memoria: List sin paginar es la lectura base del committer.
type ProductRepository interface {
	List(ctx context.Context) ([]*entity.Product, error)
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
}
