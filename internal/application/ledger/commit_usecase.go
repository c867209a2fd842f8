package ledger

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/hanquocpodcastne-create/PHAVI/internal/domain"
	"github.com/hanquocpodcastne-create/PHAVI/internal/domain/entity"
	domledger "github.com/hanquocpodcastne-create/PHAVI/internal/domain/ledger"
)

// CommitUseCase aplica un documento validado al libro de inventario como unidad
// atómica: resuelve bodega y proveedor, pre-valida disponibilidad (salidas),
// resuelve productos renglón a renglón, crea lotes (entradas) o asigna FEFO
// (salidas) sobre una copia de trabajo, y persiste todo dentro de una sola
// transacción del almacén.
//
// El mutex impone la disciplina de escritor único: el original corría en un
// único hilo cooperativo; expuesto como servicio, dos commits concurrentes
// reabrirían la carrera validar-luego-mutar que ese modelo evitaba.
type CommitUseCase struct {
	tx TxRunner
	mu sync.Mutex
}

// NewCommitUseCase construye el caso de uso.
func NewCommitUseCase(tx TxRunner) *CommitUseCase {
	return &CommitUseCase{tx: tx}
}

// Commit valida y confirma un documento. Errores posibles antes de mutar nada:
// ErrInvalidInput (tipo o renglones inválidos), ErrMissingWarehouse e
// InsufficientStockError con la lista completa de renglones problemáticos.
// Si falla, el borrador pendiente sobrevive para corregir y reintentar.
func (uc *CommitUseCase) Commit(ctx context.Context, doc entity.ExtractedDocument) error {
	if err := validateDocument(doc); err != nil {
		return err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	now := time.Now()
	txnDate := now
	if doc.Date != "" {
		d, err := parseDay(doc.Date)
		if err != nil {
			return fmt.Errorf("%w: fecha de documento %q", domain.ErrInvalidInput, doc.Date)
		}
		txnDate = d
	}

	return uc.tx.Run(ctx, func(r Repos) error {
		// 1. Bodega: coincidencia por nombre o alta automática.
		if strings.TrimSpace(doc.WarehouseName) == "" {
			return domain.ErrMissingWarehouse
		}
		warehouses, err := r.Warehouses.List(ctx)
		if err != nil {
			return err
		}
		warehouse := findWarehouse(warehouses, doc.WarehouseName)
		var newWarehouse *entity.Warehouse
		if warehouse == nil {
			warehouse = &entity.Warehouse{
				ID:        uuid.New().String(),
				Name:      strings.TrimSpace(doc.WarehouseName),
				Location:  "Sin especificar",
				CreatedAt: now,
				UpdatedAt: now,
			}
			newWarehouse = warehouse
		}

		// 2. Proveedor: alta automática en entradas con nombre desconocido.
		var newSupplier *entity.Supplier
		if doc.Type == entity.TransactionTypeINBOUND && strings.TrimSpace(doc.SupplierName) != "" {
			suppliers, err := r.Suppliers.List(ctx)
			if err != nil {
				return err
			}
			if findSupplier(suppliers, doc.SupplierName) == nil {
				newSupplier = &entity.Supplier{
					ID:        uuid.New().String(),
					Name:      strings.TrimSpace(doc.SupplierName),
					Contact:   "Sin especificar",
					CreatedAt: now,
					UpdatedAt: now,
				}
			}
		}

		products, err := r.Products.List(ctx)
		if err != nil {
			return err
		}
		lots, err := r.Lots.ListByWarehouse(ctx, warehouse.ID)
		if err != nil {
			return err
		}

		// 3. Pre-validación de salidas contra el estado persistido actual.
		// Si algo falta se aborta acá, sin haber tocado nada.
		if doc.Type == entity.TransactionTypeOUTBOUND {
			if issues := CheckAvailability(doc, products, lots, warehouse.ID); len(issues) > 0 {
				return &domain.InsufficientStockError{Issues: issues}
			}
		}

		// 4. Copias de trabajo: el estado persistido queda intacto hasta que
		// el documento completo procese sin error.
		catalog := NewCatalog(products, now)
		working := make([]*entity.InventoryLot, len(lots))
		for i := range lots {
			working[i] = lots[i].Clone()
		}

		// 5. Renglón a renglón, en orden de documento.
		var newLots []*entity.InventoryLot
		var txns []*entity.Transaction
		for _, item := range doc.Items {
			product := catalog.Resolve(item)

			if doc.Type == entity.TransactionTypeINBOUND {
				var expiry *time.Time
				if item.ExpiryDate != "" {
					d, err := parseDay(item.ExpiryDate)
					if err != nil {
						return fmt.Errorf("%w: vencimiento %q en %q", domain.ErrInvalidInput, item.ExpiryDate, item.ProductName)
					}
					expiry = &d
				}
				newLots = append(newLots, &entity.InventoryLot{
					ID:          uuid.New().String(),
					ProductID:   product.ID,
					WarehouseID: warehouse.ID,
					Quantity:    item.Quantity,
					LotNumber:   item.LotNumber,
					ExpiryDate:  expiry,
					CreatedAt:   now,
				})
			} else {
				remaining := domledger.Allocate(working, product.ID, warehouse.ID, item.Quantity, item.LotNumber)
				if remaining > 0 {
					// Varios renglones del mismo documento pueden competir por el
					// mismo stock: la pre-validación es por renglón contra el estado
					// previo. Se registra la cantidad pedida igual que el original.
					log.Warn().
						Str("product", product.Name).
						Int64("requested", item.Quantity).
						Int64("unfulfilled", remaining).
						Msg("asignación incompleta dentro del documento")
				}
			}

			txns = append(txns, &entity.Transaction{
				ID:               uuid.New().String(),
				Type:             doc.Type,
				ProductID:        product.ID,
				WarehouseID:      warehouse.ID,
				Quantity:         item.Quantity,
				Date:             txnDate,
				DocumentID:       doc.DocumentID,
				RelatedPartyName: doc.SupplierName,
				CreatedAt:        now,
			})
		}

		// 6. Persistencia: todo dentro de la misma transacción del almacén.
		if newWarehouse != nil {
			if err := r.Warehouses.Create(ctx, newWarehouse); err != nil {
				return err
			}
		}
		if newSupplier != nil {
			if err := r.Suppliers.Create(ctx, newSupplier); err != nil {
				return err
			}
		}
		for _, p := range catalog.Created() {
			if err := r.Products.Create(ctx, p); err != nil {
				return err
			}
		}
		for _, lot := range newLots {
			if err := r.Lots.Create(ctx, lot); err != nil {
				return err
			}
		}
		if doc.Type == entity.TransactionTypeOUTBOUND {
			// working[i] corresponde a lots[i]: las salidas no agregan lotes.
			for i, lot := range working {
				if lot.Quantity == lots[i].Quantity {
					continue
				}
				if lot.Quantity <= 0 {
					// Poda: los lotes drenados no permanecen en la colección persistida.
					if err := r.Lots.Delete(ctx, lot.ID); err != nil {
						return err
					}
					continue
				}
				if err := r.Lots.Update(ctx, lot); err != nil {
					return err
				}
			}
		}
		for _, txn := range txns {
			if err := r.Transactions.Create(ctx, txn); err != nil {
				return err
			}
		}
		return r.Drafts.Clear(ctx)
	})
}

// validateDocument aplica las validaciones de borde: tipo conocido, al menos un
// renglón, nombre de producto no vacío y cantidad positiva en cada renglón.
func validateDocument(doc entity.ExtractedDocument) error {
	if doc.Type != entity.TransactionTypeINBOUND && doc.Type != entity.TransactionTypeOUTBOUND {
		return fmt.Errorf("%w: tipo de documento %q", domain.ErrInvalidInput, doc.Type)
	}
	if len(doc.Items) == 0 {
		return fmt.Errorf("%w: el documento no tiene renglones", domain.ErrInvalidInput)
	}
	for i, item := range doc.Items {
		if strings.TrimSpace(item.ProductName) == "" {
			return fmt.Errorf("%w: renglón %d sin nombre de producto", domain.ErrInvalidInput, i+1)
		}
		if item.Quantity <= 0 {
			return fmt.Errorf("%w: renglón %d con cantidad %d", domain.ErrInvalidInput, i+1, item.Quantity)
		}
	}
	return nil
}

func findWarehouse(warehouses []*entity.Warehouse, name string) *entity.Warehouse {
	key := domledger.NormalizeKey(name)
	for _, w := range warehouses {
		if domledger.NormalizeKey(w.Name) == key {
			return w
		}
	}
	return nil
}

func findSupplier(suppliers []*entity.Supplier, name string) *entity.Supplier {
	key := domledger.NormalizeKey(name)
	for _, s := range suppliers {
		if domledger.NormalizeKey(s.Name) == key {
			return s
		}
	}
	return nil
}

// parseDay interpreta una fecha YYYY-MM-DD (UTC, medianoche).
func parseDay(s string) (time.Time, error) {
	return time.Parse("2006-01-02", strings.TrimSpace(s))
}
