package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/colorstock-api/internal/application/analytics"
	"github.com/jhoicas/colorstock-api/internal/application/dto"
)

// ReportHandler maneja el reporte de inventario con gráficas (protegido).
type ReportHandler struct {
	uc *analytics.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *analytics.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// GetInventoryReport godoc
// @Summary      Reporte de inventario
// @Description  Tabla filtrada por producto y rango de cantidad, serie para la
// @Description  gráfica de barras, agregado por producto para la torta y totales.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        product_id    query  string  false  "ID de producto | all"
// @Param        min_quantity  query  int     false  "Cantidad mínima inclusive"
// @Param        max_quantity  query  int     false  "Cantidad máxima inclusive"
// @Param        sort_by       query  string  false  "quantity (DESC, default) | name (ASC)"
// @Success      200  {object}  dto.InventoryReportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/inventory [get]
func (h *ReportHandler) GetInventoryReport(c *fiber.Ctx) error {
	var req dto.InventoryReportRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "invalid query parameters"})
	}
	out, err := h.uc.GetInventoryReport(c.Context(), req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
