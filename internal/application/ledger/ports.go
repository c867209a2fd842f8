package ledger

import (
	"context"

	"github.com/hanquocpodcastne-create/PHAVI/internal/domain/repository"
)

// Repos agrupa los repositorios atados a una misma transacción del almacén.
type Repos struct {
	Products     repository.ProductRepository
	Warehouses   repository.WarehouseRepository
	Suppliers    repository.SupplierRepository
	Lots         repository.InventoryLotRepository
	Transactions repository.TransactionRepository
	Drafts       repository.DraftRepository
}

// TxRunner ejecuta fn dentro de una transacción del almacén, pasando repositorios
// atados a esa transacción. Si fn devuelve error no queda NINGUNA mutación aplicada.
// Es la única vía de mutación compuesta del Entity Store: garantiza la atomicidad
// todo-o-nada del commit de un documento.
type TxRunner interface {
	Run(ctx context.Context, fn func(r Repos) error) error
}
