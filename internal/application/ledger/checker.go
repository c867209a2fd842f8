package ledger

import (
	"github.com/hanquocpodcastne-create/PHAVI/internal/domain"
	"github.com/hanquocpodcastne-create/PHAVI/internal/domain/entity"
	domledger "github.com/hanquocpodcastne-create/PHAVI/internal/domain/ledger"
)

// CheckAvailability pre-valida un documento de salida contra el estado persistido.
// Recorre TODOS los renglones sin cortar en el primer problema, para que el
// operador reciba la lista completa de una vez. Solo lectura: no crea productos
// ni muta lotes. Lista vacía = el documento puede confirmarse.
//
// Con número de lote informado la disponibilidad se suma solo sobre ese lote
// exacto (acá no aplica el fallback del asignador: pedir un lote inexistente
// reporta disponibilidad cero).
func CheckAvailability(doc entity.ExtractedDocument, products []*entity.Product, lots []*entity.InventoryLot, warehouseID string) []domain.StockIssue {
	var issues []domain.StockIssue
	for _, item := range doc.Items {
		p := FindProduct(products, item.ProductCode, item.ProductName)
		if p == nil {
			issues = append(issues, domain.StockIssue{
				ProductName:     item.ProductName,
				Requested:       item.Quantity,
				ProductNotFound: true,
			})
			continue
		}
		available := domledger.Available(lots, p.ID, warehouseID, item.LotNumber)
		if available < item.Quantity {
			issues = append(issues, domain.StockIssue{
				ProductName: p.Name,
				LotNumber:   item.LotNumber,
				Requested:   item.Quantity,
				Available:   available,
			})
		}
	}
	return issues
}
