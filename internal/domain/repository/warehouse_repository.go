package repository

import (
	"context"

	"github.com/hanquocpodcastne-create/PHAVI/internal/domain/entity"
)

// WarehouseRepository define el puerto de persistencia de bodegas.
type WarehouseRepository interface {
	List(ctx context.Context) ([]*entity.Warehouse, error)
	GetByID(ctx context.Context, id string) (*entity.Warehouse, error)
	Create(ctx context.Context, warehouse *entity.Warehouse) error
	Update(ctx context.Context, warehouse *entity.Warehouse) error
	Delete(ctx context.Context, id string) error
}
