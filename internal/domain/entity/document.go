package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExtractedItem es un renglón candidato extraído de un documento por el servicio de IA.
// Las fechas llegan como texto YYYY-MM-DD: el documento es un candidato sin confianza
// y se parsea recién al confirmar (commit).
type ExtractedItem struct {
	ProductCode string          `json:"productCode,omitempty"`
	ProductName string          `json:"productName"`
	Quantity    int64           `json:"quantity"`
	Unit        string          `json:"unit,omitempty"`
	CostPrice   decimal.Decimal `json:"costPrice,omitempty"`
	LotNumber   string          `json:"lotNumber,omitempty"`
	ExpiryDate  string          `json:"expiryDate,omitempty"` // YYYY-MM-DD
}

// ExtractedDocument es el documento candidato completo (entrada o salida) que el
// usuario valida antes de aplicarlo al libro de inventario.
type ExtractedDocument struct {
	Type          string          `json:"type"` // INBOUND | OUTBOUND
	DocumentID    string          `json:"documentId,omitempty"`
	Date          string          `json:"date,omitempty"` // YYYY-MM-DD
	WarehouseName string          `json:"warehouseName,omitempty"`
	SupplierName  string          `json:"supplierName,omitempty"`
	Items         []ExtractedItem `json:"items"`
}

// DraftDocument es el borrador transitorio: un documento extraído aún no confirmado
// más el nombre del archivo de origen. Existe a lo sumo uno en todo el sistema;
// se limpia al confirmar con éxito o al cancelar explícitamente.
type DraftDocument struct {
	Document  ExtractedDocument `json:"document"`
	FileName  string            `json:"fileName"`
	UpdatedAt time.Time         `json:"updatedAt"`
}
