package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-panel/internal/application/dto"
	"github.com/jhoicas/Inventario-panel/internal/application/inventory"
	"github.com/jhoicas/Inventario-panel/internal/domain"
	"github.com/jhoicas/Inventario-panel/pkg/validator"
)

// InventoryHandler maneja las dos mutaciones del panel: ajuste de demanda y
// transferencia de stock entre bodegas.
type InventoryHandler struct {
	uc *inventory.MutationUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.MutationUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// UpdateDemand godoc
// @Summary      Fijar la demanda de una fila producto-bodega
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.UpdateDemandRequest  true  "warehouse, new_demand"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/demand [put]
func (h *InventoryHandler) UpdateDemand(c *fiber.Ctx) error {
	// Fiber no enruta un segmento :id vacío hasta aquí; el parámetro
	// siempre llega con valor.
	productID := c.Params("id")
	var in dto.UpdateDemandRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if errs := validator.Struct(in); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validator.Describe(errs)})
	}
	out, err := h.uc.UpdateDemand(productID, in.Warehouse, *in.NewDemand)
	if err != nil {
		return mutationError(c, err)
	}
	return c.JSON(out)
}

// Transfer godoc
// @Summary      Transferir stock de un producto entre bodegas
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransferStockRequest  true  "product_id, source_warehouse, destination_warehouse, quantity"
// @Success      200   {object}  dto.TransferStockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/transfers [post]
func (h *InventoryHandler) Transfer(c *fiber.Ctx) error {
	var in dto.TransferStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if errs := validator.Struct(in); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validator.Describe(errs)})
	}
	out, err := h.uc.TransferStock(in.ProductID, in.SourceWarehouse, in.DestinationWarehouse, in.Quantity)
	if err != nil {
		return mutationError(c, err)
	}
	return c.JSON(out)
}

// mutationError traduce los errores de dominio de las mutaciones a códigos HTTP.
func mutationError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidQuantity):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUANTITY", Message: "quantity debe ser un entero positivo"})
	case errors.Is(err, domain.ErrInvalidRoute):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ROUTE", Message: domain.ErrInvalidRoute.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto o bodega no encontrado"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
