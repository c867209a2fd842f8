package repository

import (
	"context"

	"github.com/hanquocpodcastne-create/PHAVI/internal/domain/entity"
)

// DraftRepository define el puerto del borrador pendiente.
// Hay a lo sumo un borrador en todo el sistema; Get devuelve nil sin error si no existe.
type DraftRepository interface {
	Get(ctx context.Context) (*entity.DraftDocument, error)
	Save(ctx context.Context, draft *entity.DraftDocument) error
	Clear(ctx context.Context) error
}
