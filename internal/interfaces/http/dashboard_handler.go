package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-panel/internal/application/analytics"
	"github.com/jhoicas/Inventario-panel/internal/application/dto"
	"github.com/jhoicas/Inventario-panel/internal/application/usecase"
)

// DashboardHandler maneja los endpoints de los widgets del dashboard:
// KPIs agregados del inventario y serie temporal del gráfico.
type DashboardHandler struct {
	productUC *usecase.ProductUseCase
	kpiUC     *analytics.KpiUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(productUC *usecase.ProductUseCase, kpiUC *analytics.KpiUseCase) *DashboardHandler {
	return &DashboardHandler{productUC: productUC, kpiUC: kpiUC}
}

// GetSummary godoc
// @Summary      KPIs agregados del inventario (stock total, demanda total, fill rate)
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.InventorySummaryResponse
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	out, err := h.productUC.Summary()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetKpis godoc
// @Summary      Serie diaria stock/demanda para el gráfico
// @Tags         dashboard
// @Produce      json
// @Param        range  query  string  false  "7d, 14d o 30d; otro valor cae a 7d"  default(7d)
// @Success      200  {array}  dto.KpiPointResponse
// @Router       /api/kpis [get]
func (h *DashboardHandler) GetKpis(c *fiber.Ctx) error {
	return c.JSON(h.kpiUC.Series(c.Query("range", "7d")))
}
