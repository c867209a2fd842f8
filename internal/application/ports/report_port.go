package ports

import "github.com/hanquocpodcastne-create/PHAVI/internal/application/dto"

// ReportGenerator define el puerto de salida hacia el generador de reportes PDF.
type ReportGenerator interface {
	// GenerateInventoryReport arma el PDF de existencias actuales a partir de los
	// lotes ya enriquecidos con nombres de producto y bodega.
	GenerateInventoryReport(report dto.InventoryReportData) ([]byte, error)
}
