package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrUserNotFound     = errors.New("usuario no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrDuplicate        = errors.New("recurso duplicado")
	ErrUnauthorized     = errors.New("no autorizado")
	ErrForbidden        = errors.New("acceso denegado")
	ErrConflict         = errors.New("conflicto con el estado actual")
	ErrMissingWarehouse = errors.New("el documento no especifica bodega")
	ErrProductHasStock  = errors.New("el producto tiene lotes con existencias")
	ErrNoDraft          = errors.New("no hay borrador pendiente")
)

// StockIssue describe un renglón de salida que no puede satisfacerse:
// producto inexistente o disponibilidad insuficiente (por lote o agregada).
type StockIssue struct {
	ProductName     string `json:"productName"`
	LotNumber       string `json:"lotNumber,omitempty"`
	Requested       int64  `json:"requested"`
	Available       int64  `json:"available"`
	ProductNotFound bool   `json:"productNotFound,omitempty"`
}

// String produce el mensaje que se muestra tal cual al operador.
func (i StockIssue) String() string {
	if i.ProductNotFound {
		return fmt.Sprintf("- %s: el producto no existe en el sistema", i.ProductName)
	}
	if i.LotNumber != "" {
		return fmt.Sprintf("- %s (lote %s): se piden %d, quedan %d en ese lote",
			i.ProductName, i.LotNumber, i.Requested, i.Available)
	}
	return fmt.Sprintf("- %s: se piden %d, el stock total es %d",
		i.ProductName, i.Requested, i.Available)
}

// InsufficientStockError agrupa TODOS los problemas de disponibilidad de un documento
// de salida. El chequeo previo recorre el documento completo sin cortar en el primer
// error, para que el operador corrija todo de una vez. El commit se aborta sin mutar nada.
type InsufficientStockError struct {
	Issues []StockIssue
}

func (e *InsufficientStockError) Error() string {
	lines := make([]string, 0, len(e.Issues)+1)
	lines = append(lines, "stock insuficiente:")
	for _, i := range e.Issues {
		lines = append(lines, i.String())
	}
	return strings.Join(lines, "\n")
}

// AsInsufficientStock devuelve el error tipado si err lo envuelve.
func AsInsufficientStock(err error) (*InsufficientStockError, bool) {
	var ise *InsufficientStockError
	if errors.As(err, &ise) {
		return ise, true
	}
	return nil, false
}
