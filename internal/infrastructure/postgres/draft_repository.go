package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hanquocpodcastne-create/PHAVI/internal/domain/entity"
	"github.com/hanquocpodcastne-create/PHAVI/internal/domain/repository"
)

var _ repository.DraftRepository = (*DraftRepo)(nil)

// DraftRepo implementación del puerto DraftRepository sobre PostgreSQL. El borrador
// es único en todo el sistema: una sola fila (id = 1) con el documento como JSONB.
type DraftRepo struct {
	db querier
}

// NewDraftRepository construye el adaptador de persistencia para el borrador.
func NewDraftRepository(db querier) *DraftRepo {
	return &DraftRepo{db: db}
}

// Get devuelve el borrador pendiente, o (nil, nil) si no hay ninguno.
func (r *DraftRepo) Get(ctx context.Context) (*entity.DraftDocument, error) {
	var payload []byte
	var draft entity.DraftDocument
	err := r.db.QueryRow(ctx, `SELECT document, file_name, updated_at FROM drafts WHERE id = 1`).
		Scan(&payload, &draft.FileName, &draft.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get draft: %w", err)
	}
	if err := json.Unmarshal(payload, &draft.Document); err != nil {
		return nil, fmt.Errorf("decode draft: %w", err)
	}
	return &draft, nil
}

// Save guarda (o reemplaza) el borrador pendiente.
func (r *DraftRepo) Save(ctx context.Context, draft *entity.DraftDocument) error {
	payload, err := json.Marshal(draft.Document)
	if err != nil {
		return fmt.Errorf("encode draft: %w", err)
	}
	_, err = r.db.Exec(ctx, `
		INSERT INTO drafts (id, document, file_name, updated_at)
		VALUES (1, $1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET document = $1, file_name = $2, updated_at = $3`,
		payload, draft.FileName, draft.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	return nil
}

// Clear elimina el borrador pendiente. Sin borrador no es error.
func (r *DraftRepo) Clear(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM drafts WHERE id = 1`); err != nil {
		return fmt.Errorf("clear draft: %w", err)
	}
	return nil
}
