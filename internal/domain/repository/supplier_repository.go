package repository

import (
	"context"

	"github.com/hanquocpodcastne-create/PHAVI/internal/domain/entity"
)

// SupplierRepository define el puerto de persistencia de proveedores.
type SupplierRepository interface {
	List(ctx context.Context) ([]*entity.Supplier, error)
	GetByID(ctx context.Context, id string) (*entity.Supplier, error)
	Create(ctx context.Context, supplier *entity.Supplier) error
	Update(ctx context.Context, supplier *entity.Supplier) error
	Delete(ctx context.Context, id string) error
}
