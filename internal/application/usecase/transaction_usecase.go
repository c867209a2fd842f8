package usecase

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/hanquocpodcastne-create/PHAVI/internal/application/dto"
	"github.com/hanquocpodcastne-create/PHAVI/internal/domain"
	"github.com/hanquocpodcastne-create/PHAVI/internal/domain/entity"
	"github.com/hanquocpodcastne-create/PHAVI/internal/domain/repository"
)

// deleteTransactionWarning se devuelve en cada borrado manual: el asiento
// desaparece del historial pero los lotes que tocó quedan como están.
const deleteTransactionWarning = "La transacción se eliminó del historial, pero las existencias de los lotes afectados NO se restauraron. Ajuste los lotes manualmente si corresponde."

// TransactionUseCase consulta y corrección manual del historial de transacciones.
type TransactionUseCase struct {
	transactions repository.TransactionRepository
	products     repository.ProductRepository
	warehouses   repository.WarehouseRepository
}

// NewTransactionUseCase construye el caso de uso.
func NewTransactionUseCase(
	transactions repository.TransactionRepository,
	products repository.ProductRepository,
	warehouses repository.WarehouseRepository,
) *TransactionUseCase {
	return &TransactionUseCase{transactions: transactions, products: products, warehouses: warehouses}
}

// List devuelve el historial completo enriquecido con nombres de producto y bodega.
func (uc *TransactionUseCase) List(ctx context.Context) (*dto.TransactionListResponse, error) {
	txns, err := uc.transactions.List(ctx)
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

	items := make([]dto.TransactionResponse, 0, len(txns))
	for _, t := range txns {
		item := dto.TransactionResponse{
			ID:               t.ID,
			Type:             t.Type,
			ProductID:        t.ProductID,
			WarehouseID:      t.WarehouseID,
			Quantity:         t.Quantity,
			Date:             t.Date,
			DocumentID:       t.DocumentID,
			RelatedPartyName: t.RelatedPartyName,
		}
		if p, ok := productByID[t.ProductID]; ok {
			item.ProductName = p.Name
		}
		if w, ok := warehouseByID[t.WarehouseID]; ok {
			item.WarehouseName = w.Name
		}
		items = append(items, item)
	}
	return &dto.TransactionListResponse{Items: items, Total: len(items)}, nil
}

// Delete elimina un asiento del historial como corrección manual. NO revierte los
// lotes afectados; la respuesta lo avisa y queda registro en el log.
func (uc *TransactionUseCase) Delete(ctx context.Context, id string) (*dto.DeleteTransactionResponse, error) {
	txn, err := uc.transactions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if txn == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.transactions.Delete(ctx, id); err != nil {
		return nil, err
	}
	log.Warn().
		Str("transaction_id", id).
		Str("type", txn.Type).
		Int64("quantity", txn.Quantity).
		Msg("transacción eliminada del historial sin restaurar existencias")
	return &dto.DeleteTransactionResponse{
		Deleted: true,
		Warning: deleteTransactionWarning,
	}, nil
}
