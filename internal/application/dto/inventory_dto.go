package dto

// LotResponse lote de inventario enriquecido con nombres de producto y bodega
// (la vista de existencias de la UI).
type LotResponse struct {
	ID            string `json:"id"`
	ProductID     string `json:"productId"`
	ProductName   string `json:"productName"`
	ProductCode   string `json:"productCode"`
	WarehouseID   string `json:"warehouseId"`
	WarehouseName string `json:"warehouseName"`
	Quantity      int64  `json:"quantity"`
	LotNumber     string `json:"lotNumber,omitempty"`
	ExpiryDate    string `json:"expiryDate,omitempty"` // YYYY-MM-DD
}

// LotListResponse listado de lotes.
type LotListResponse struct {
	Items []LotResponse `json:"items"`
	Total int           `json:"total"`
}

// UpdateLotRequest corrección manual de un lote; los campos nil no se tocan.
// Quantity en 0 elimina el lote de la colección persistida.
type UpdateLotRequest struct {
	Quantity   *int64  `json:"quantity"`
	LotNumber  *string `json:"lotNumber"`
	ExpiryDate *string `json:"expiryDate"` // YYYY-MM-DD, cadena vacía = sin vencimiento
}
