package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/hanquocpodcastne-create/PHAVI/internal/application/auth"
	"github.com/hanquocpodcastne-create/PHAVI/internal/application/ledger"
	"github.com/hanquocpodcastne-create/PHAVI/internal/application/usecase"
	"github.com/hanquocpodcastne-create/PHAVI/internal/domain/repository"
	infraai "github.com/hanquocpodcastne-create/PHAVI/internal/infrastructure/ai"
	"github.com/hanquocpodcastne-create/PHAVI/internal/infrastructure/memory"
	infrapdf "github.com/hanquocpodcastne-create/PHAVI/internal/infrastructure/pdf"
	"github.com/hanquocpodcastne-create/PHAVI/internal/infrastructure/postgres"
	httpRouter "github.com/hanquocpodcastne-create/PHAVI/internal/interfaces/http"
	"github.com/hanquocpodcastne-create/PHAVI/pkg/config"
	"github.com/hanquocpodcastne-create/PHAVI/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var (
		productRepo     repository.ProductRepository
		warehouseRepo   repository.WarehouseRepository
		supplierRepo    repository.SupplierRepository
		lotRepo         repository.InventoryLotRepository
		transactionRepo repository.TransactionRepository
		draftRepo       repository.DraftRepository
		userRepo        repository.UserRepository
		txRunner        ledger.TxRunner
	)

	switch cfg.Store.Driver {
	case "memory":
		// Backend en memoria para desarrollo y demos: todo se pierde al apagar.
		store := memory.NewStore()
		r := store.Repos()
		productRepo = r.Products
		warehouseRepo = r.Warehouses
		supplierRepo = r.Suppliers
		lotRepo = r.Lots
		transactionRepo = r.Transactions
		draftRepo = r.Drafts
		userRepo = store.Users()
		txRunner = store
		log.Warn().Msg("STORE_DRIVER=memory: los datos no persisten entre reinicios")
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()

		productRepo = postgres.NewProductRepository(pool)
		warehouseRepo = postgres.NewWarehouseRepository(pool)
		supplierRepo = postgres.NewSupplierRepository(pool)
		lotRepo = postgres.NewInventoryLotRepository(pool)
		transactionRepo = postgres.NewTransactionRepository(pool)
		draftRepo = postgres.NewDraftRepository(pool)
		userRepo = postgres.NewUserRepository(pool)
		txRunner = postgres.NewTxRunner(pool)
	}

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	if err := authUC.SeedAdmin(ctx, cfg.Auth.AdminEmail, cfg.Auth.AdminPassword); err != nil {
		log.Error().Err(err).Msg("siembra del usuario administrador")
	}

	if cfg.Gemini.APIKey == "" {
		log.Warn().Msg("GEMINI_API_KEY vacío: la extracción de documentos fallará")
	}
	geminiSvc := infraai.NewGeminiService(cfg.Gemini.APIKey, cfg.Gemini.Model)
	pdfGenerator := infrapdf.NewMarotoReportGenerator()

	productUC := usecase.NewProductUseCase(productRepo, lotRepo)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	lotUC := usecase.NewLotUseCase(lotRepo, productRepo, warehouseRepo)
	transactionUC := usecase.NewTransactionUseCase(transactionRepo, productRepo, warehouseRepo)
	draftUC := usecase.NewDraftUseCase(draftRepo)
	extractionUC := usecase.NewExtractionUseCase(geminiSvc, draftRepo)
	reportUC := usecase.NewReportUseCase(lotRepo, productRepo, warehouseRepo, pdfGenerator)
	commitUC := ledger.NewCommitUseCase(txRunner)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30, // los PDF de reportes pueden tardar
		IdleTimeout:  time.Second * 60,
		BodyLimit:    20 << 20, // margen sobre el límite de subida de documentos
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "PHAVI API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		ProductUC:     productUC,
		WarehouseUC:   warehouseUC,
		SupplierUC:    supplierUC,
		LotUC:         lotUC,
		TransactionUC: transactionUC,
		DraftUC:       draftUC,
		ExtractionUC:  extractionUC,
		ReportUC:      reportUC,
		CommitUC:      commitUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
