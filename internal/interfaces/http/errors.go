package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/hanquocpodcastne-create/PHAVI/internal/application/dto"
	"github.com/hanquocpodcastne-create/PHAVI/internal/domain"
)

// respondError traduce los errores de dominio a respuestas HTTP. Los errores de
// disponibilidad llevan la lista completa de renglones problemáticos en Issues.
func respondError(c *fiber.Ctx, err error) error {
	if insufficient, ok := domain.AsInsufficientStock(err); ok {
		issues := make([]dto.StockIssueDTO, 0, len(insufficient.Issues))
		for _, issue := range insufficient.Issues {
			issues = append(issues, dto.StockIssueDTO{
				ProductName:     issue.ProductName,
				LotNumber:       issue.LotNumber,
				Requested:       issue.Requested,
				Available:       issue.Available,
				ProductNotFound: issue.ProductNotFound,
				Message:         issue.String(),
			})
		}
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code:    "INSUFFICIENT_STOCK",
			Message: "stock insuficiente para confirmar el documento",
			Issues:  issues,
		})
	}

	switch {
	case errors.Is(err, domain.ErrMissingWarehouse):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_WAREHOUSE", Message: "el documento no indica bodega"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	case errors.Is(err, domain.ErrProductHasStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "PRODUCT_HAS_STOCK", Message: err.Error()})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrNoDraft):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrUnauthorized):
		// Mismo mensaje para usuario inexistente y password incorrecto.
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "usuario deshabilitado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
