package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/jhoicas/miinventory-api/internal/application/inventory"
	"github.com/jhoicas/miinventory-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/miinventory-api/internal/infrastructure/pdf"
	"github.com/jhoicas/miinventory-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/miinventory-api/internal/interfaces/http"
	"github.com/jhoicas/miinventory-api/pkg/config"
	"github.com/jhoicas/miinventory-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.Log.Level,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("addr", cfg.HTTP.Addr()).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	quotationRepo := postgres.NewQuotationRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	shipmentRepo := postgres.NewShipmentRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// PDF de cotizaciones
	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.App.Name)

	deps := httpRouter.RouterDeps{
		UserUC:      usecase.NewUserUseCase(userRepo),
		CategoryUC:  usecase.NewCategoryUseCase(categoryRepo),
		SupplierUC:  usecase.NewSupplierUseCase(supplierRepo, productRepo),
		LocationUC:  usecase.NewLocationUseCase(locationRepo),
		WarehouseUC: usecase.NewWarehouseUseCase(warehouseRepo, locationRepo),
		CustomerUC:  usecase.NewCustomerUseCase(customerRepo, userRepo),
		ProductUC:   usecase.NewProductUseCase(productRepo, supplierRepo, categoryRepo, userRepo),
		OrderUC:     usecase.NewOrderUseCase(orderRepo, productRepo, warehouseRepo, supplierRepo, customerRepo),
		QuotationUC: usecase.NewQuotationUseCase(quotationRepo, customerRepo, productRepo, pdfGenerator),
		RegisterShipment: inventory.NewRegisterShipmentUseCase(
			txRunner, productRepo, warehouseRepo, orderRepo, log.Zerolog(),
		),
		StockUC: inventory.NewStockUseCase(stockRepo, shipmentRepo, warehouseRepo),
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(httpRouter.RequestLogger(log.Zerolog()))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, X-Request-ID",
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: cfg.HTTP.DocsFile,
		Path:     "docs",
		Title:    "MiInventory API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "db_unavailable", "service": cfg.App.Name})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, deps)

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
