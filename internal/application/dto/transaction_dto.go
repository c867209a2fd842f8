package dto

import "time"

// TransactionResponse asiento del historial.
type TransactionResponse struct {
	ID               string    `json:"id"`
	Type             string    `json:"type"`
	ProductID        string    `json:"productId"`
	ProductName      string    `json:"productName,omitempty"`
	WarehouseID      string    `json:"warehouseId"`
	WarehouseName    string    `json:"warehouseName,omitempty"`
	Quantity         int64     `json:"quantity"`
	Date             time.Time `json:"date"`
	DocumentID       string    `json:"documentId,omitempty"`
	RelatedPartyName string    `json:"relatedPartyName,omitempty"`
}

// TransactionListResponse historial de transacciones.
type TransactionListResponse struct {
	Items []TransactionResponse `json:"items"`
	Total int                   `json:"total"`
}

// DeleteTransactionResponse respuesta del borrado manual. El aviso es deliberado:
// borrar un asiento NO restaura las cantidades de los lotes que afectó.
type DeleteTransactionResponse struct {
	Deleted bool   `json:"deleted"`
	Warning string `json:"warning"`
}
