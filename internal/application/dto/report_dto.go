package dto

import "time"

// InventoryReportData datos del reporte PDF de existencias: los lotes enriquecidos
// más los totales por producto.
type InventoryReportData struct {
	GeneratedAt time.Time
	Lots        []LotResponse
	Totals      []ProductTotal
}

// ProductTotal existencias agregadas de un producto en todas las bodegas.
type ProductTotal struct {
	ProductName string
	ProductCode string
	Unit        string
	Quantity    int64
}
