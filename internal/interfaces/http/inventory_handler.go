package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hanquocpodcastne-create/PHAVI/internal/application/dto"
	"github.com/hanquocpodcastne-create/PHAVI/internal/application/ledger"
	"github.com/hanquocpodcastne-create/PHAVI/internal/application/usecase"
)

// InventoryHandler maneja las peticiones HTTP de existencias: consulta y corrección
// de lotes, y el commit de documentos validados (protegido).
type InventoryHandler struct {
	lots   *usecase.LotUseCase
	commit *ledger.CommitUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(lots *usecase.LotUseCase, commit *ledger.CommitUseCase) *InventoryHandler {
	return &InventoryHandler{lots: lots, commit: commit}
}

// ListLots godoc
// @Summary      Listar lotes de inventario
// @Description  Existencias actuales enriquecidas con nombres de producto y bodega.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        warehouseId  query  string  false  "Filtrar por bodega"
// @Success      200  {object}  dto.LotListResponse
// @Router       /api/inventory/lots [get]
func (h *InventoryHandler) ListLots(c *fiber.Ctx) error {
	out, err := h.lots.List(c.UserContext(), c.Query("warehouseId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateLot godoc
// @Summary      Corregir un lote
// @Description  Ajuste manual. Cantidad en 0 elimina el lote de la colección.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del lote"
// @Param        body  body  dto.UpdateLotRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.LotResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/lots/{id} [put]
func (h *InventoryHandler) UpdateLot(c *fiber.Ctx) error {
	var in dto.UpdateLotRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.lots.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "lote no encontrado"})
	}
	return c.JSON(out)
}

// DeleteLot godoc
// @Summary      Eliminar un lote
// @Description  Ajuste manual, sin asiento en el historial.
// @Tags         inventory
// @Security     Bearer
// @Param        id  path  string  true  "ID del lote"
// @Success      204
// @Router       /api/inventory/lots/{id} [delete]
func (h *InventoryHandler) DeleteLot(c *fiber.Ctx) error {
	if err := h.lots.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Commit godoc
// @Summary      Confirmar un documento validado
// @Description  Aplica el documento al libro como unidad atómica: resuelve bodega,
// @Description  proveedor y productos, crea lotes (entradas) o asigna FEFO (salidas),
// @Description  registra las transacciones y limpia el borrador. Solo se aplican los
// @Description  renglones seleccionados. Si falta stock responde 409 con la lista
// @Description  completa de renglones problemáticos y no muta nada.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CommitTransactionRequest  true  "Documento validado"
// @Success      204
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/commit [post]
func (h *InventoryHandler) Commit(c *fiber.Ctx) error {
	var in dto.CommitTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.commit.Commit(c.UserContext(), in.ToDocument()); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
