package ledger

import (
	"sort"
	"time"

	"github.com/hanquocpodcastne-create/PHAVI/internal/domain/entity"
)

// Allocate asigna una salida contra los lotes de (productID, warehouseID) bajo política
// FEFO (primero vence, primero sale), decrementando Quantity en sitio sobre la copia de
// trabajo que recibe. Devuelve la cantidad que no pudo satisfacerse (0 si el chequeo
// previo de disponibilidad pasó).
//
// Si lotNumber viene informado y al menos un candidato coincide, la asignación se
// restringe a ese subconjunto. Si ningún candidato coincide se vuelve al conjunto
// completo en lugar de fallar: es el mismo fallback documentado de la búsqueda, no un
// error, aunque deliberadamente laxo (un número de lote mal tipeado drena otro lote).
func Allocate(lots []*entity.InventoryLot, productID, warehouseID string, requested int64, lotNumber string) int64 {
	candidates := make([]*entity.InventoryLot, 0, len(lots))
	for _, lot := range lots {
		if lot.ProductID == productID && lot.WarehouseID == warehouseID && lot.Quantity > 0 {
			candidates = append(candidates, lot)
		}
	}

	if lotNumber != "" {
		specific := make([]*entity.InventoryLot, 0, len(candidates))
		for _, lot := range candidates {
			if lot.LotNumber == lotNumber {
				specific = append(specific, lot)
			}
		}
		if len(specific) > 0 {
			candidates = specific
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return expiryOrBeyond(candidates[i]).Before(expiryOrBeyond(candidates[j]))
	})

	remaining := requested
	for _, lot := range candidates {
		if remaining <= 0 {
			break
		}
		take := lot.Quantity
		if remaining < take {
			take = remaining
		}
		lot.Quantity -= take
		remaining -= take
	}
	return remaining
}

// Available suma la cantidad disponible de (productID, warehouseID).
// Con lotNumber no vacío, solo cuentan los lotes con ese número exacto.
func Available(lots []*entity.InventoryLot, productID, warehouseID, lotNumber string) int64 {
	var sum int64
	for _, lot := range lots {
		if lot.ProductID != productID || lot.WarehouseID != warehouseID {
			continue
		}
		if lotNumber != "" && lot.LotNumber != lotNumber {
			continue
		}
		sum += lot.Quantity
	}
	return sum
}

// expiryOrBeyond devuelve la fecha de vencimiento, o una fecha posterior a cualquier
// vencimiento real para lotes sin fecha: el stock sin vencimiento sale último.
func expiryOrBeyond(lot *entity.InventoryLot) time.Time {
	if lot.ExpiryDate == nil {
		return time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)
	}
	return *lot.ExpiryDate
}
