package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/hotel-inventory/internal/application/dto"
)

// ItemService operaciones de ítems que expone la API (implementado por inventory.ItemUseCase).
type ItemService interface {
	AddItem(ctx context.Context, req dto.CreateItemRequest, actor dto.Actor) (*dto.ItemResponse, error)
	UpdateItem(ctx context.Context, id int64, req dto.UpdateItemRequest, actor dto.Actor) (*dto.ItemResponse, error)
	DeleteItem(ctx context.Context, id int64, actor dto.Actor) error
	GetItem(ctx context.Context, id int64) (*dto.ItemResponse, error)
	ListItems(ctx context.Context, f dto.ItemFilter) (*dto.ItemListResponse, error)
	LowStock(ctx context.Context, category string) ([]dto.LowStockItemDTO, error)
	Expiring(ctx context.Context, days int) ([]dto.ItemResponse, error)
	GetItemLogs(ctx context.Context, itemID int64, limit int) ([]dto.LogEntryResponse, error)
}

// ItemHandler maneja las peticiones HTTP de ítems y su historial.
type ItemHandler struct {
	uc ItemService
}

// NewItemHandler construye el handler.
func NewItemHandler(uc ItemService) *ItemHandler {
	return &ItemHandler{uc: uc}
}

// Create godoc
// @Summary      Crear ítem
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateItemRequest  true  "Datos del ítem"
// @Success      201   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/items [post]
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.AddItem(c.UserContext(), in, actorFrom(c, in.UserName))
	if err != nil {
		return writeError(c, err)
	}
	return respond(c, fiber.StatusCreated, out)
}

// Update godoc
// @Summary      Actualizar ítem (no cambia la cantidad)
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del ítem"
// @Param        body  body  dto.UpdateItemRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/items/{id} [put]
func (h *ItemHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c)
	}
	var in dto.UpdateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdateItem(c.UserContext(), id, in, actorFrom(c, in.UserName))
	if err != nil {
		return writeError(c, err)
	}
	return respond(c, fiber.StatusOK, out)
}

// Delete godoc
// @Summary      Eliminar ítem (borrado lógico; el historial se conserva)
// @Tags         items
// @Produce      json
// @Param        id         path   int     true   "ID del ítem"
// @Param        user_name  query  string  false  "Usuario que elimina"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id} [delete]
func (h *ItemHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c)
	}
	if err := h.uc.DeleteItem(c.UserContext(), id, actorFrom(c, c.Query("user_name"))); err != nil {
		return writeError(c, err)
	}
	return respond(c, fiber.StatusOK, fiber.Map{"id": id, "deleted": true})
}

// Get godoc
// @Summary      Obtener ítem
// @Tags         items
// @Produce      json
// @Param        id   path  int  true  "ID del ítem"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id} [get]
func (h *ItemHandler) Get(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c)
	}
	out, err := h.uc.GetItem(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return respond(c, fiber.StatusOK, out)
}

// List godoc
// @Summary      Listar ítems
// @Tags         items
// @Produce      json
// @Param        category              query  string  false  "Categoría"
// @Param        subcategory           query  string  false  "Subcategoría"
// @Param        search                query  string  false  "Texto en nombre o marca"
// @Param        include_fixed_assets  query  bool    false  "Incluir activos fijos" default(true)
// @Param        limit                 query  int     false  "Límite" default(20)
// @Param        offset                query  int     false  "Offset" default(0)
// @Success      200  {object}  dto.ItemListResponse
// @Router       /api/items [get]
func (h *ItemHandler) List(c *fiber.Ctx) error {
	var f dto.ItemFilter
	if err := c.QueryParser(&f); err != nil {
		return fail(c, fiber.StatusBadRequest, "VALIDATION", "parámetros de consulta inválidos")
	}
	out, err := h.uc.ListItems(c.UserContext(), f)
	if err != nil {
		return writeError(c, err)
	}
	return respond(c, fiber.StatusOK, out)
}

// LowStock godoc
// @Summary      Ítems en o bajo su stock mínimo, con cantidad sugerida de pedido
// @Tags         items
// @Produce      json
// @Param        category  query  string  false  "Categoría"
// @Success      200  {array}  dto.LowStockItemDTO
// @Router       /api/items/low-stock [get]
func (h *ItemHandler) LowStock(c *fiber.Ctx) error {
	out, err := h.uc.LowStock(c.UserContext(), c.Query("category"))
	if err != nil {
		return writeError(c, err)
	}
	return respond(c, fiber.StatusOK, out)
}

// Expiring godoc
// @Summary      Ítems vencidos o por vencer
// @Tags         items
// @Produce      json
// @Param        days  query  int  false  "Ventana en días (por defecto EXPIRY_WARNING_DAYS)"
// @Success      200  {array}  dto.ItemResponse
// @Router       /api/items/expiring [get]
func (h *ItemHandler) Expiring(c *fiber.Ctx) error {
	out, err := h.uc.Expiring(c.UserContext(), c.QueryInt("days", 0))
	if err != nil {
		return writeError(c, err)
	}
	return respond(c, fiber.StatusOK, out)
}

// Logs godoc
// @Summary      Historial del ledger de un ítem (más reciente primero)
// @Tags         items
// @Produce      json
// @Param        id     path   int  true   "ID del ítem"
// @Param        limit  query  int  false  "Máximo de entradas" default(100)
// @Success      200  {array}  dto.LogEntryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id}/logs [get]
func (h *ItemHandler) Logs(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c)
	}
	out, err := h.uc.GetItemLogs(c.UserContext(), id, c.QueryInt("limit", 0))
	if err != nil {
		return writeError(c, err)
	}
	return respond(c, fiber.StatusOK, out)
}
