package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hanquocpodcastne-create/PHAVI/internal/application/auth"
	"github.com/hanquocpodcastne-create/PHAVI/internal/application/ledger"
	"github.com/hanquocpodcastne-create/PHAVI/internal/application/usecase"
	"github.com/hanquocpodcastne-create/PHAVI/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	ProductUC     *usecase.ProductUseCase
	WarehouseUC   *usecase.WarehouseUseCase
	SupplierUC    *usecase.SupplierUseCase
	LotUC         *usecase.LotUseCase
	TransactionUC *usecase.TransactionUseCase
	DraftUC       *usecase.DraftUseCase
	ExtractionUC  *usecase.ExtractionUseCase
	ReportUC      *usecase.ReportUseCase
	CommitUC      *ledger.CommitUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Los borrados correctivos quedan reservados a admin y encargado de inventario.
	corrective := RequireRole(entity.RoleAdmin, entity.RoleInventoryManager)

	// Catálogo
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", corrective, productHandler.Delete)

	// Bodegas
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Put("/:id", warehouseHandler.Update)
	warehouses.Delete("/:id", corrective, warehouseHandler.Delete)

	// Proveedores
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", corrective, supplierHandler.Delete)

	// Existencias y commit
	inventory := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.LotUC, deps.CommitUC)
	inventory.Get("/lots", inventoryHandler.ListLots)
	inventory.Put("/lots/:id", corrective, inventoryHandler.UpdateLot)
	inventory.Delete("/lots/:id", corrective, inventoryHandler.DeleteLot)
	inventory.Post("/commit", inventoryHandler.Commit)

	// Historial
	transactions := protected.Group("/transactions")
	transactionHandler := NewTransactionHandler(deps.TransactionUC)
	transactions.Get("/", transactionHandler.List)
	transactions.Delete("/:id", corrective, transactionHandler.Delete)

	// Extracción y borrador
	documents := protected.Group("/documents")
	extractionHandler := NewExtractionHandler(deps.ExtractionUC, deps.DraftUC)
	documents.Post("/extract", extractionHandler.Extract)
	documents.Get("/draft", extractionHandler.GetDraft)
	documents.Put("/draft", extractionHandler.SaveDraft)
	documents.Delete("/draft", extractionHandler.ClearDraft)

	// Reportes
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/inventory", reportHandler.Inventory)
}
