package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hanquocpodcastne-create/PHAVI/internal/domain/entity"
)

// ValidationItem es el renglón en etapa de validación: el ítem extraído más el
// estado propio de esa etapa (marca de selección). Tipo aparte sobre ExtractedItem
// para no contaminar el tipo de dominio con estado transitorio de la UI.
type ValidationItem struct {
	ProductCode string          `json:"productCode,omitempty"`
	ProductName string          `json:"productName"`
	Quantity    int64           `json:"quantity"`
	Unit        string          `json:"unit,omitempty"`
	CostPrice   decimal.Decimal `json:"costPrice,omitempty"`
	LotNumber   string          `json:"lotNumber,omitempty"`
	ExpiryDate  string          `json:"expiryDate,omitempty"` // YYYY-MM-DD
	Selected    bool            `json:"selected"`
}

// ToExtracted convierte el renglón validado al tipo de dominio.
func (v ValidationItem) ToExtracted() entity.ExtractedItem {
	return entity.ExtractedItem{
		ProductCode: v.ProductCode,
		ProductName: v.ProductName,
		Quantity:    v.Quantity,
		Unit:        v.Unit,
		CostPrice:   v.CostPrice,
		LotNumber:   v.LotNumber,
		ExpiryDate:  v.ExpiryDate,
	}
}

// CommitTransactionRequest documento validado listo para confirmar.
// Solo los renglones con Selected=true se aplican al libro.
type CommitTransactionRequest struct {
	Type          string           `json:"type"` // INBOUND | OUTBOUND
	DocumentID    string           `json:"documentId,omitempty"`
	Date          string           `json:"date,omitempty"` // YYYY-MM-DD
	WarehouseName string           `json:"warehouseName,omitempty"`
	SupplierName  string           `json:"supplierName,omitempty"`
	Items         []ValidationItem `json:"items"`
}

// ToDocument arma el documento de dominio con los renglones seleccionados.
func (r CommitTransactionRequest) ToDocument() entity.ExtractedDocument {
	items := make([]entity.ExtractedItem, 0, len(r.Items))
	for _, it := range r.Items {
		if it.Selected {
			items = append(items, it.ToExtracted())
		}
	}
	return entity.ExtractedDocument{
		Type:          r.Type,
		DocumentID:    r.DocumentID,
		Date:          r.Date,
		WarehouseName: r.WarehouseName,
		SupplierName:  r.SupplierName,
		Items:         items,
	}
}

// SaveDraftRequest guarda o reemplaza el borrador pendiente durante la validación.
type SaveDraftRequest struct {
	Document entity.ExtractedDocument `json:"document"`
	FileName string                   `json:"fileName"`
}

// DraftResponse borrador pendiente.
type DraftResponse struct {
	Document  entity.ExtractedDocument `json:"document"`
	FileName  string                   `json:"fileName"`
	UpdatedAt time.Time                `json:"updatedAt"`
}

// ExtractionResponse resultado del servicio de extracción: el documento candidato
// ya almacenado como borrador.
type ExtractionResponse struct {
	Document entity.ExtractedDocument `json:"document"`
	FileName string                   `json:"fileName"`
}
