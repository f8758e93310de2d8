package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/miinventory-api/internal/application/inventory"
	"github.com/jhoicas/miinventory-api/internal/application/usecase"
	"github.com/jhoicas/miinventory-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	UserUC           *usecase.UserUseCase
	CategoryUC       *usecase.CategoryUseCase
	SupplierUC       *usecase.SupplierUseCase
	LocationUC       *usecase.LocationUseCase
	WarehouseUC      *usecase.WarehouseUseCase
	CustomerUC       *usecase.CustomerUseCase
	ProductUC        *usecase.ProductUseCase
	OrderUC          *usecase.OrderUseCase
	QuotationUC      *usecase.QuotationUseCase
	RegisterShipment *inventory.RegisterShipmentUseCase
	StockUC          *inventory.StockUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	users := api.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	suppliers := api.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Get("/:id/products", supplierHandler.Products)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	locations := api.Group("/locations")
	locationHandler := NewLocationHandler(deps.LocationUC)
	locations.Post("/", locationHandler.Create)
	locations.Get("/", locationHandler.List)
	locations.Get("/:id", locationHandler.GetByID)
	locations.Put("/:id", locationHandler.Update)
	locations.Delete("/:id", locationHandler.Delete)

	inventoryHandler := NewInventoryHandler(deps.RegisterShipment, deps.StockUC)

	warehouses := api.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Get("/:id/stock", inventoryHandler.WarehouseStock)
	warehouses.Put("/:id", warehouseHandler.Update)
	warehouses.Delete("/:id", warehouseHandler.Delete)

	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	orderHandler := NewOrderHandler(deps.OrderUC)
	orders := api.Group("/orders")
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Put("/:id", orderHandler.Update)
	orders.Delete("/:id", orderHandler.Delete)

	typed := map[string]string{
		"/purchase-orders": entity.OrderTypePurchase,
		"/sales-orders":    entity.OrderTypeSale,
		"/transfer-orders": entity.OrderTypeTransfer,
	}
	for path, orderType := range typed {
		g := api.Group(path)
		g.Post("/", orderHandler.CreateTyped(orderType))
		g.Get("/", orderHandler.ListTyped(orderType))
	}

	quotations := api.Group("/quotations")
	quotationHandler := NewQuotationHandler(deps.QuotationUC)
	quotations.Post("/", quotationHandler.Create)
	quotations.Get("/", quotationHandler.List)
	quotations.Get("/:id", quotationHandler.GetByID)
	quotations.Get("/:id/pdf", quotationHandler.PDF)
	quotations.Put("/:id", quotationHandler.Update)
	quotations.Delete("/:id", quotationHandler.Delete)

	// /stock/low antes de cualquier ruta con parámetro
	stock := api.Group("/stock")
	stock.Get("/low", inventoryHandler.LowStock)
	stock.Get("/", inventoryHandler.ListStock)

	shipments := api.Group("/shipments")
	shipments.Post("/", inventoryHandler.RegisterShipment)
	shipments.Get("/", inventoryHandler.ListShipments)
	shipments.Get("/:id", inventoryHandler.GetShipment)
}
