package usecase

import (
	"context"
	"time"

	"github.com/hanquocpodcastne-create/PHAVI/internal/application/dto"
	"github.com/hanquocpodcastne-create/PHAVI/internal/domain/entity"
	"github.com/hanquocpodcastne-create/PHAVI/internal/domain/repository"
)

// DraftUseCase gestiona el borrador transitorio: el documento extraído que el
// operador está corrigiendo en la pantalla de validación. Existe a lo sumo uno.
type DraftUseCase struct {
	drafts repository.DraftRepository
}

// NewDraftUseCase construye el caso de uso.
func NewDraftUseCase(drafts repository.DraftRepository) *DraftUseCase {
	return &DraftUseCase{drafts: drafts}
}

// Get devuelve el borrador pendiente, o (nil, nil) si no hay ninguno.
func (uc *DraftUseCase) Get(ctx context.Context) (*dto.DraftResponse, error) {
	draft, err := uc.drafts.Get(ctx)
	if err != nil {
		return nil, err
	}
	if draft == nil {
		return nil, nil
	}
	return &dto.DraftResponse{
		Document:  draft.Document,
		FileName:  draft.FileName,
		UpdatedAt: draft.UpdatedAt,
	}, nil
}

// Save guarda o reemplaza el borrador con las correcciones del operador.
func (uc *DraftUseCase) Save(ctx context.Context, in dto.SaveDraftRequest) (*dto.DraftResponse, error) {
	draft := &entity.DraftDocument{
		Document:  in.Document,
		FileName:  in.FileName,
		UpdatedAt: time.Now(),
	}
	if err := uc.drafts.Save(ctx, draft); err != nil {
		return nil, err
	}
	return &dto.DraftResponse{
		Document:  draft.Document,
		FileName:  draft.FileName,
		UpdatedAt: draft.UpdatedAt,
	}, nil
}

// Clear descarta el borrador pendiente. Sin borrador no es error.
func (uc *DraftUseCase) Clear(ctx context.Context) error {
	return uc.drafts.Clear(ctx)
}
