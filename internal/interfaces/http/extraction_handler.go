package http

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/hanquocpodcastne-create/PHAVI/internal/application/dto"
	"github.com/hanquocpodcastne-create/PHAVI/internal/application/usecase"
)

// maxUploadBytes límite del archivo subido para extracción.
const maxUploadBytes = 15 << 20 // 15 MiB

// ExtractionHandler maneja la subida de documentos para extracción por IA y el
// ciclo de vida del borrador (protegido).
type ExtractionHandler struct {
	extraction *usecase.ExtractionUseCase
	drafts     *usecase.DraftUseCase
}

// NewExtractionHandler construye el handler.
func NewExtractionHandler(extraction *usecase.ExtractionUseCase, drafts *usecase.DraftUseCase) *ExtractionHandler {
	return &ExtractionHandler{extraction: extraction, drafts: drafts}
}

// Extract godoc
// @Summary      Extraer un documento con IA
// @Description  Sube una imagen o PDF de un remito. El servicio de IA devuelve el
// @Description  documento candidato, que queda guardado como borrador pendiente de
// @Description  validación. Nada toca el libro hasta el commit.
// @Tags         extraction
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file    true   "Imagen o PDF del documento"
// @Param        mode  formData  string  false  "inbound | outbound | general (default)"
// @Success      200   {object}  dto.ExtractionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/documents/extract [post]
func (h *ExtractionHandler) Extract(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "campo file requerido (multipart)"})
	}
	if fileHeader.Size > maxUploadBytes {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "FILE_TOO_LARGE", Message: "el archivo supera el límite de 15 MiB"})
	}
	f, err := fileHeader.Open()
	if err != nil {
		return respondError(c, err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return respondError(c, err)
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	out, err := h.extraction.Extract(c.UserContext(), data, mimeType, c.FormValue("mode"), fileHeader.Filename)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetDraft godoc
// @Summary      Obtener el borrador pendiente
// @Tags         extraction
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DraftResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/documents/draft [get]
func (h *ExtractionHandler) GetDraft(c *fiber.Ctx) error {
	out, err := h.drafts.Get(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "no hay borrador pendiente"})
	}
	return c.JSON(out)
}

// SaveDraft godoc
// @Summary      Guardar el borrador con las correcciones del operador
// @Tags         extraction
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveDraftRequest  true  "Borrador"
// @Success      200   {object}  dto.DraftResponse
// @Router       /api/documents/draft [put]
func (h *ExtractionHandler) SaveDraft(c *fiber.Ctx) error {
	var in dto.SaveDraftRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.drafts.Save(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ClearDraft godoc
// @Summary      Descartar el borrador pendiente
// @Tags         extraction
// @Security     Bearer
// @Success      204
// @Router       /api/documents/draft [delete]
func (h *ExtractionHandler) ClearDraft(c *fiber.Ctx) error {
	if err := h.drafts.Clear(c.UserContext()); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
