package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/miinventory-api/internal/application/dto"
	"github.com/jhoicas/miinventory-api/internal/application/inventory"
	"github.com/jhoicas/miinventory-api/internal/domain/entity"
)

// InventoryHandler maneja envíos y consultas de stock.
type InventoryHandler struct {
	register *inventory.RegisterShipmentUseCase
	stock    *inventory.StockUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(register *inventory.RegisterShipmentUseCase, stock *inventory.StockUseCase) *InventoryHandler {
	return &InventoryHandler{register: register, stock: stock}
}

// RegisterShipment godoc
// @Summary      Registrar envío (entrada o salida) y ajustar stock
// @Tags         shipments
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterShipmentRequest  true  "shipment_type (incoming|outgoing), product, warehouse, quantity"
// @Success      201   {object}  dto.RegisterShipmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/shipments [post]
func (h *InventoryHandler) RegisterShipment(c *fiber.Ctx) error {
	var in dto.RegisterShipmentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.register.Register(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetShipment godoc
// @Summary      Obtener envío por ID
// @Tags         shipments
// @Produce      json
// @Param        id   path  string  true  "ID del envío"
// @Success      200  {object}  dto.ShipmentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/shipments/{id} [get]
func (h *InventoryHandler) GetShipment(c *fiber.Ctx) error {
	out, err := h.stock.GetShipment(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "envío no encontrado")
	}
	return c.JSON(out)
}

// ListShipments godoc
// @Summary      Listar envíos
// @Tags         shipments
// @Produce      json
// @Param        warehouse  query  string  false  "Filtrar por bodega"
// @Param        product    query  string  false  "Filtrar por producto"
// @Param        type       query  string  false  "incoming | outgoing"
// @Param        limit      query  int     false  "Límite"  default(20)
// @Param        offset     query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.ListResponse[dto.ShipmentResponse]
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/shipments [get]
func (h *InventoryHandler) ListShipments(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	filter := entity.ShipmentFilter{
		WarehouseID: c.Query("warehouse"),
		ProductID:   c.Query("product"),
		Type:        c.Query("type"),
	}
	out, err := h.stock.ListShipments(c.Context(), filter, limit, offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListStock godoc
// @Summary      Listar stock por bodega y producto
// @Tags         stock
// @Produce      json
// @Param        warehouse  query  string  false  "Filtrar por bodega"
// @Param        product    query  string  false  "Filtrar por producto"
// @Param        limit      query  int     false  "Límite"  default(20)
// @Param        offset     query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.ListResponse[dto.StockResponse]
// @Router       /api/stock [get]
func (h *InventoryHandler) ListStock(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	filter := entity.StockFilter{WarehouseID: c.Query("warehouse"), ProductID: c.Query("product")}
	out, err := h.stock.List(c.Context(), filter, limit, offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// WarehouseStock godoc
// @Summary      Stock de una bodega
// @Tags         stock
// @Produce      json
// @Param        id      path   string  true   "ID de la bodega"
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.ListResponse[dto.StockResponse]
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/warehouses/{id}/stock [get]
func (h *InventoryHandler) WarehouseStock(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.stock.ListByWarehouse(c.Context(), c.Params("id"), limit, offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// LowStock godoc
// @Summary      Productos bajo su stock mínimo (suma de todas las bodegas)
// @Tags         stock
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "total, items ([]dto.LowStockResponse)"
// @Router       /api/stock/low [get]
func (h *InventoryHandler) LowStock(c *fiber.Ctx) error {
	list, err := h.stock.LowStock(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(list), "items": list})
}
