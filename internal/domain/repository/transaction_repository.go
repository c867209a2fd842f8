package repository

import (
	"context"

	"github.com/hanquocpodcastne-create/PHAVI/internal/domain/entity"
)

// TransactionRepository define el puerto del historial de transacciones.
// El historial es append-only: no hay Update, solo alta y borrado manual.
type TransactionRepository interface {
	List(ctx context.Context) ([]*entity.Transaction, error)
	GetByID(ctx context.Context, id string) (*entity.Transaction, error)
	Create(ctx context.Context, txn *entity.Transaction) error
	Delete(ctx context.Context, id string) error
}
