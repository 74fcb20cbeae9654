package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-panel/internal/application/dto"
	"github.com/jhoicas/Inventario-panel/internal/application/usecase"
	"github.com/jhoicas/Inventario-panel/internal/domain"
)

// ProductHandler maneja las peticiones HTTP de la tabla de productos.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List godoc
// @Summary      Listar filas producto-bodega con filtros y paginación
// @Tags         products
// @Produce      json
// @Param        search     query  string  false  "Substring case-insensitive sobre name, sku o id"
// @Param        warehouse  query  string  false  "Código de bodega o 'all'"  default(all)
// @Param        status     query  string  false  "Healthy, Low, Critical o 'all'"  default(all)
// @Param        page       query  int     false  "Página (1-based)"  default(1)
// @Success      200  {object}  dto.ProductListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	filter := dto.ProductFilter{
		Search:    c.Query("search"),
		Warehouse: c.Query("warehouse", usecase.FilterAll),
		Status:    c.Query("status", usecase.FilterAll),
		Page:      c.QueryInt("page", 1),
	}
	out, err := h.uc.List(filter)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status debe ser Healthy, Low, Critical o all"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
