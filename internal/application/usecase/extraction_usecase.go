package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hanquocpodcastne-create/PHAVI/internal/application/dto"
	"github.com/hanquocpodcastne-create/PHAVI/internal/application/ports"
	"github.com/hanquocpodcastne-create/PHAVI/internal/domain"
	"github.com/hanquocpodcastne-create/PHAVI/internal/domain/entity"
	"github.com/hanquocpodcastne-create/PHAVI/internal/domain/repository"
)

// extractionTimeout acota la llamada al servicio de IA.
const extractionTimeout = 60 * time.Second

// ExtractionUseCase orquesta la lectura de un documento por el servicio de IA y
// deja el resultado como borrador pendiente de validación.
type ExtractionUseCase struct {
	svc    ports.ExtractionService
	drafts repository.DraftRepository
}

// NewExtractionUseCase construye el caso de uso.
func NewExtractionUseCase(svc ports.ExtractionService, drafts repository.DraftRepository) *ExtractionUseCase {
	return &ExtractionUseCase{svc: svc, drafts: drafts}
}

// Extract envía el archivo al servicio de extracción, valida la estructura mínima
// del resultado (tipo conocido, al menos un renglón) y lo guarda como borrador.
// El documento devuelto es un CANDIDATO: nada toca el libro hasta el commit.
func (uc *ExtractionUseCase) Extract(ctx context.Context, data []byte, mimeType, mode, fileName string) (*dto.ExtractionResponse, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: archivo vacío", domain.ErrInvalidInput)
	}
	switch mode {
	case "":
		mode = ports.ModeGeneral
	case ports.ModeInbound, ports.ModeOutbound, ports.ModeGeneral:
	default:
		return nil, fmt.Errorf("%w: modo de extracción %q", domain.ErrInvalidInput, mode)
	}

	ctx, cancel := context.WithTimeout(ctx, extractionTimeout)
	defer cancel()

	doc, err := uc.svc.ExtractDocument(ctx, data, mimeType, mode)
	if err != nil {
		return nil, err
	}
	if doc.Type != entity.TransactionTypeINBOUND && doc.Type != entity.TransactionTypeOUTBOUND {
		return nil, fmt.Errorf("%w: la extracción devolvió tipo %q", domain.ErrInvalidInput, doc.Type)
	}
	if len(doc.Items) == 0 {
		return nil, fmt.Errorf("%w: la extracción no encontró renglones de mercadería", domain.ErrInvalidInput)
	}

	draft := &entity.DraftDocument{
		Document:  *doc,
		FileName:  fileName,
		UpdatedAt: time.Now(),
	}
	if err := uc.drafts.Save(ctx, draft); err != nil {
		return nil, err
	}
	log.Info().
		Str("file", fileName).
		Str("type", doc.Type).
		Int("items", len(doc.Items)).
		Msg("documento extraído y guardado como borrador")
	return &dto.ExtractionResponse{Document: *doc, FileName: fileName}, nil
}
