package ports

import (
	"context"

	"github.com/hanquocpodcastne-create/PHAVI/internal/domain/entity"
)

// Modos de extracción: cada uno activa un prompt especializado.
const (
	ModeInbound  = "inbound"  // solo remitos/facturas de entrada
	ModeOutbound = "outbound" // solo remitos de salida
	ModeGeneral  = "general"  // el modelo decide el tipo leyendo el documento
)

// ExtractionService define el puerto de salida hacia el servicio de IA que lee
// documentos de bodega (imagen o PDF) y devuelve un documento candidato.
// Cualquier adaptador (Gemini, mock) debe implementar esta interfaz; la capa de
// aplicación solo conoce este contrato, no la implementación concreta.
type ExtractionService interface {
	// ExtractDocument analiza el archivo y devuelve el documento extraído.
	// data es el contenido crudo y mimeType su tipo (image/jpeg, application/pdf...).
	// El contexto debe llevar un timeout para evitar bloqueos en llamadas externas.
	ExtractDocument(ctx context.Context, data []byte, mimeType, mode string) (*entity.ExtractedDocument, error)
}
