package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/hotel-inventory/internal/application/dto"
	"github.com/jhoicas/hotel-inventory/internal/application/inventory"
)

// CountService conteos y ajustes de valor (implementado por inventory.CountUpdateUseCase).
type CountService interface {
	UpdateCountWithLog(ctx context.Context, in inventory.CountUpdateInput) (*dto.CountUpdateResult, error)
	AdjustStockValue(ctx context.Context, in inventory.ValueAdjustmentInput) (*dto.CountUpdateResult, error)
}

// InventoryHandler maneja los conteos físicos y ajustes de valor.
type InventoryHandler struct {
	uc CountService
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc CountService) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// UpdateCount godoc
// @Summary      Registrar conteo físico
// @Description  Lleva la cantidad del ítem a new_quantity y agrega una entrada stock_added o
//
//	stock_removed al ledger. Si la cantidad no cambia no se registra nada (changed=false).
//
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del ítem"
// @Param        body  body  dto.CountUpdateRequest  true  "new_quantity, reason (sale | waste | …), notes"
// @Success      200   {object}  dto.CountUpdateResult
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/items/{id}/count [post]
func (h *InventoryHandler) UpdateCount(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c)
	}
	var in dto.CountUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.NewQuantity == nil {
		return fail(c, fiber.StatusBadRequest, "VALIDATION", "new_quantity es requerido")
	}
	actor := actorFrom(c, in.UserName)
	out, err := h.uc.UpdateCountWithLog(c.UserContext(), inventory.CountUpdateInput{
		ItemID:      id,
		NewQuantity: *in.NewQuantity,
		Reason:      in.Reason,
		Notes:       in.Notes,
		UserID:      actor.UserID,
		UserName:    actor.UserName,
	})
	if err != nil {
		return writeError(c, err)
	}
	return respond(c, fiber.StatusOK, out)
}

// AdjustValue godoc
// @Summary      Ajustar valor del stock
// @Description  Cambia stock_value sin tocar la cantidad; agrega una entrada count_adjustment.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del ítem"
// @Param        body  body  dto.ValueAdjustmentRequest  true  "new_value, reason, notes"
// @Success      200   {object}  dto.CountUpdateResult
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/items/{id}/value [post]
func (h *InventoryHandler) AdjustValue(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c)
	}
	var in dto.ValueAdjustmentRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.NewValue == nil {
		return fail(c, fiber.StatusBadRequest, "VALIDATION", "new_value es requerido")
	}
	actor := actorFrom(c, in.UserName)
	out, err := h.uc.AdjustStockValue(c.UserContext(), inventory.ValueAdjustmentInput{
		ItemID:   id,
		NewValue: *in.NewValue,
		Reason:   in.Reason,
		Notes:    in.Notes,
		UserID:   actor.UserID,
		UserName: actor.UserName,
	})
	if err != nil {
		return writeError(c, err)
	}
	return respond(c, fiber.StatusOK, out)
}
