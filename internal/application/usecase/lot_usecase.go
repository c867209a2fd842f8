package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/hanquocpodcastne-create/PHAVI/internal/application/dto"
	"github.com/hanquocpodcastne-create/PHAVI/internal/domain"
	"github.com/hanquocpodcastne-create/PHAVI/internal/domain/entity"
	"github.com/hanquocpodcastne-create/PHAVI/internal/domain/repository"
)

// LotUseCase consulta y corrección manual de lotes de inventario. Las existencias
// normales se mueven solo vía commit de documentos; esto es la válvula de escape
// para ajustes puntuales del operador.
type LotUseCase struct {
	lots       repository.InventoryLotRepository
	products   repository.ProductRepository
	warehouses repository.WarehouseRepository
}

// NewLotUseCase construye el caso de uso.
func NewLotUseCase(
	lots repository.InventoryLotRepository,
	products repository.ProductRepository,
	warehouses repository.WarehouseRepository,
) *LotUseCase {
	return &LotUseCase{lots: lots, products: products, warehouses: warehouses}
}

// List devuelve las existencias enriquecidas con nombres de producto y bodega,
// opcionalmente filtradas por bodega.
func (uc *LotUseCase) List(ctx context.Context, warehouseID string) (*dto.LotListResponse, error) {
	var lots []*entity.InventoryLot
	var err error
	if warehouseID != "" {
		lots, err = uc.lots.ListByWarehouse(ctx, warehouseID)
	} else {
		lots, err = uc.lots.List(ctx)
	}
	if err != nil {
		return nil, err
	}

	products, err := uc.products.List(ctx)
	if err != nil {
		return nil, err
	}
	warehouses, err := uc.warehouses.List(ctx)
	if err != nil {
		return nil, err
	}
	productByID := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		productByID[p.ID] = p
	}
	warehouseByID := make(map[string]*entity.Warehouse, len(warehouses))
	for _, w := range warehouses {
		warehouseByID[w.ID] = w
	}

	items := make([]dto.LotResponse, 0, len(lots))
	for _, l := range lots {
		item := dto.LotResponse{
			ID:          l.ID,
			ProductID:   l.ProductID,
			WarehouseID: l.WarehouseID,
			Quantity:    l.Quantity,
			LotNumber:   l.LotNumber,
		}
		if l.ExpiryDate != nil {
			item.ExpiryDate = l.ExpiryDate.Format("2006-01-02")
		}
		if p, ok := productByID[l.ProductID]; ok {
			item.ProductName = p.Name
			item.ProductCode = p.Code
		}
		if w, ok := warehouseByID[l.WarehouseID]; ok {
			item.WarehouseName = w.Name
		}
		items = append(items, item)
	}
	return &dto.LotListResponse{Items: items, Total: len(items)}, nil
}

// Update corrección manual de un lote. Cantidad en 0 lo elimina (la colección solo
// guarda lotes con existencias); cantidad negativa se rechaza. Devuelve (nil, nil)
// si el lote no existe.
func (uc *LotUseCase) Update(ctx context.Context, id string, in dto.UpdateLotRequest) (*dto.LotResponse, error) {
	lot, err := uc.lots.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lot == nil {
		return nil, nil
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, fmt.Errorf("%w: cantidad %d", domain.ErrInvalidInput, *in.Quantity)
		}
		if *in.Quantity == 0 {
			if err := uc.lots.Delete(ctx, id); err != nil {
				return nil, err
			}
			return &dto.LotResponse{ID: id, Quantity: 0}, nil
		}
		lot.Quantity = *in.Quantity
	}
	if in.LotNumber != nil {
		lot.LotNumber = *in.LotNumber
	}
	if in.ExpiryDate != nil {
		if *in.ExpiryDate == "" {
			lot.ExpiryDate = nil
		} else {
			d, err := time.Parse("2006-01-02", *in.ExpiryDate)
			if err != nil {
				return nil, fmt.Errorf("%w: vencimiento %q", domain.ErrInvalidInput, *in.ExpiryDate)
			}
			lot.ExpiryDate = &d
		}
	}
	if err := uc.lots.Update(ctx, lot); err != nil {
		return nil, err
	}
	resp := dto.LotResponse{
		ID:          lot.ID,
		ProductID:   lot.ProductID,
		WarehouseID: lot.WarehouseID,
		Quantity:    lot.Quantity,
		LotNumber:   lot.LotNumber,
	}
	if lot.ExpiryDate != nil {
		resp.ExpiryDate = lot.ExpiryDate.Format("2006-01-02")
	}
	return &resp, nil
}

// Delete elimina un lote por ID (ajuste manual, sin asiento en el historial).
func (uc *LotUseCase) Delete(ctx context.Context, id string) error {
	return uc.lots.Delete(ctx, id)
}
