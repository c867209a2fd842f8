package usecase

import (
	"context"
	"time"

	"github.com/hanquocpodcastne-create/PHAVI/internal/application/dto"
	"github.com/hanquocpodcastne-create/PHAVI/internal/application/ports"
	"github.com/hanquocpodcastne-create/PHAVI/internal/domain/entity"
	"github.com/hanquocpodcastne-create/PHAVI/internal/domain/repository"
)

// ReportUseCase arma el reporte PDF de existencias actuales.
type ReportUseCase struct {
	lots       repository.InventoryLotRepository
	products   repository.ProductRepository
	warehouses repository.WarehouseRepository
	generator  ports.ReportGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	lots repository.InventoryLotRepository,
	products repository.ProductRepository,
	warehouses repository.WarehouseRepository,
	generator ports.ReportGenerator,
) *ReportUseCase {
	return &ReportUseCase{lots: lots, products: products, warehouses: warehouses, generator: generator}
}

// InventoryPDF genera el PDF con el detalle de lotes y los totales por producto.
func (uc *ReportUseCase) InventoryPDF(ctx context.Context) ([]byte, error) {
	lots, err := uc.lots.List(ctx)
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

	report := dto.InventoryReportData{GeneratedAt: time.Now()}
	totalByProduct := make(map[string]*dto.ProductTotal)
	var order []string
	for _, l := range lots {
		row := dto.LotResponse{
			ID:          l.ID,
			ProductID:   l.ProductID,
			WarehouseID: l.WarehouseID,
			Quantity:    l.Quantity,
			LotNumber:   l.LotNumber,
		}
		if l.ExpiryDate != nil {
			row.ExpiryDate = l.ExpiryDate.Format("2006-01-02")
		}
		if w, ok := warehouseByID[l.WarehouseID]; ok {
			row.WarehouseName = w.Name
		}
		p, ok := productByID[l.ProductID]
		if ok {
			row.ProductName = p.Name
			row.ProductCode = p.Code
		}
		report.Lots = append(report.Lots, row)

		total, seen := totalByProduct[l.ProductID]
		if !seen {
			total = &dto.ProductTotal{ProductName: row.ProductName, ProductCode: row.ProductCode}
			if ok {
				total.Unit = p.Unit
			}
			totalByProduct[l.ProductID] = total
			order = append(order, l.ProductID)
		}
		total.Quantity += l.Quantity
	}
	for _, id := range order {
		report.Totals = append(report.Totals, *totalByProduct[id])
	}

	return uc.generator.GenerateInventoryReport(report)
}
