package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/colorstock-api/internal/application/dto"
	"github.com/jhoicas/colorstock-api/internal/application/inventory"
	"github.com/jhoicas/colorstock-api/internal/application/movements"
	"github.com/jhoicas/colorstock-api/internal/domain"
)

// MovementHandler maneja el ledger de movimientos: registro, lote, listado
// filtrado e historial reciente (protegido).
type MovementHandler struct {
	applyUC *inventory.ApplyMovementUseCase
	listUC  *movements.ListMovementsUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(applyUC *inventory.ApplyMovementUseCase, listUC *movements.ListMovementsUseCase) *MovementHandler {
	return &MovementHandler{applyUC: applyUC, listUC: listUC}
}

// movementError traduce errores de dominio del motor de movimientos a HTTP.
func movementError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "inventory_id, quantity > 0 and movement_type IN|OUT are required"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "inventory line not found"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "insufficient stock"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// Apply godoc
// @Summary      Registrar movimiento de stock
// @Description  IN suma, OUT resta. Una salida que dejaría la cantidad negativa
// @Description  falla con 409 INSUFFICIENT_STOCK y no escribe nada.
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ApplyMovementRequest  true  "inventory_id, quantity, movement_type, notes (opcional)"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [post]
func (h *MovementHandler) Apply(c *fiber.Ctx) error {
	var in dto.ApplyMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	mov, err := h.applyUC.Apply(c.Context(), inventory.MovementInput{
		InventoryID: in.InventoryID,
		Quantity:    in.Quantity,
		Type:        in.Type,
		Notes:       in.Notes,
	})
	if err != nil {
		return movementError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MovementResponse{
		ID:           mov.ID,
		InventoryID:  mov.InventoryID,
		Quantity:     mov.Quantity,
		Type:         mov.Type,
		Notes:        mov.Notes,
		MovementDate: mov.MovementDate,
		CreatedAt:    mov.CreatedAt,
	})
}

// ApplyBatch godoc
// @Summary      Registrar lote de movimientos (best-effort)
// @Description  Aplica los movimientos en orden y se detiene en el primer
// @Description  fallo. Los ya aplicados quedan aplicados; failed_index es -1
// @Description  si todo el lote se aplicó.
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BatchMovementRequest  true  "movements"
// @Success      200   {object}  dto.BatchMovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      207   {object}  dto.BatchMovementResponse
// @Router       /api/inventory/movements/batch [post]
func (h *MovementHandler) ApplyBatch(c *fiber.Ctx) error {
	var in dto.BatchMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if len(in.Movements) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "movements must not be empty"})
	}

	inputs := make([]inventory.MovementInput, 0, len(in.Movements))
	for _, m := range in.Movements {
		inputs = append(inputs, inventory.MovementInput{
			InventoryID: m.InventoryID,
			Quantity:    m.Quantity,
			Type:        m.Type,
			Notes:       m.Notes,
		})
	}

	res := h.applyUC.ApplyBatch(c.Context(), inputs)

	out := dto.BatchMovementResponse{
		Applied:     make([]dto.MovementResponse, 0, len(res.Applied)),
		FailedIndex: res.FailedIndex,
	}
	for _, mov := range res.Applied {
		out.Applied = append(out.Applied, dto.MovementResponse{
			ID:           mov.ID,
			InventoryID:  mov.InventoryID,
			Quantity:     mov.Quantity,
			Type:         mov.Type,
			Notes:        mov.Notes,
			MovementDate: mov.MovementDate,
			CreatedAt:    mov.CreatedAt,
		})
	}

	status := fiber.StatusOK
	if res.Err != nil {
		out.Error = res.Err.Error()
		// Lote parcialmente aplicado: 207 para distinguirlo del éxito total
		status = fiber.StatusMultiStatus
	}
	return c.Status(status).JSON(out)
}

// List godoc
// @Summary      Listar movimientos filtrados y paginados
// @Description  Orden fijo movement_date DESC. Incluye el resumen estadístico
// @Description  del conjunto visible (totales, neto, producto top, promedio).
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        movement_type  query  string  false  "IN | OUT | all"
// @Param        product_id     query  string  false  "ID de producto | all"
// @Param        date_from      query  string  false  "YYYY-MM-DD inclusive"
// @Param        date_to        query  string  false  "YYYY-MM-DD inclusive (fin de día)"
// @Param        notes          query  string  false  "Substring case-insensitive"
// @Param        page           query  int     false  "Página 1-based (default 1)"
// @Param        limit          query  int     false  "Tamaño de página (default 50, max 100)"
// @Success      200  {object}  dto.MovementListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	var req dto.MovementListRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "invalid query parameters"})
	}

	out, err := h.listUC.List(c.Context(), movements.Filters{
		MovementType: req.MovementType,
		ProductID:    req.ProductID,
		DateFrom:     req.DateFrom,
		DateTo:       req.DateTo,
		Notes:        req.Notes,
		Page:         req.Page,
		Limit:        req.Limit,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Recent godoc
// @Summary      Historial reciente de movimientos
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.MovementResponse
// @Router       /api/movements/recent [get]
func (h *MovementHandler) Recent(c *fiber.Ctx) error {
	rows, err := h.listUC.Recent(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(rows)
}
