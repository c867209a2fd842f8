package repository

import (
	"context"

	"github.com/hanquocpodcastne-create/PHAVI/internal/domain/entity"
)

// InventoryLotRepository define el puerto de persistencia de lotes de inventario.
// La colección persistida solo contiene lotes con Quantity > 0: el committer elimina
// los lotes drenados en el mismo commit que los deja en cero.
type InventoryLotRepository interface {
	List(ctx context.Context) ([]*entity.InventoryLot, error)
	ListByWarehouse(ctx context.Context, warehouseID string) ([]*entity.InventoryLot, error)
	GetByID(ctx context.Context, id string) (*entity.InventoryLot, error)
	// ExistsByProduct responde si algún lote referencia al producto
	// (guarda del borrado de productos).
	ExistsByProduct(ctx context.Context, productID string) (bool, error)
	Create(ctx context.Context, lot *entity.InventoryLot) error
	Update(ctx context.Context, lot *entity.InventoryLot) error
	Delete(ctx context.Context, id string) error
}
