package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hanquocpodcastne-create/PHAVI/internal/domain/entity"
	"github.com/hanquocpodcastne-create/PHAVI/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación del puerto TransactionRepository sobre PostgreSQL.
// El historial es de solo-agregar; el borrado existe como corrección manual y no
// revierte lotes.
type TransactionRepo struct {
	db querier
}

// NewTransactionRepository construye el adaptador de persistencia para transacciones.
func NewTransactionRepository(db querier) *TransactionRepo {
	return &TransactionRepo{db: db}
}

const txnColumns = `id, type, product_id, warehouse_id, quantity, date, document_id, related_party_name, created_at`

func scanTransaction(row pgx.Row) (*entity.Transaction, error) {
	var t entity.Transaction
	err := row.Scan(&t.ID, &t.Type, &t.ProductID, &t.WarehouseID, &t.Quantity,
		&t.Date, &t.DocumentID, &t.RelatedPartyName, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// List devuelve el historial completo, más reciente primero.
func (r *TransactionRepo) List(ctx context.Context) ([]*entity.Transaction, error) {
	rows, err := r.db.Query(ctx, `SELECT `+txnColumns+` FROM transactions ORDER BY date DESC, created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// GetByID obtiene una transacción por ID. Devuelve (nil, nil) si no existe.
func (r *TransactionRepo) GetByID(ctx context.Context, id string) (*entity.Transaction, error) {
	t, err := scanTransaction(r.db.QueryRow(ctx, `SELECT `+txnColumns+` FROM transactions WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return t, nil
}

// Create persiste un asiento nuevo del historial.
func (r *TransactionRepo) Create(ctx context.Context, txn *entity.Transaction) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO transactions (id, type, product_id, warehouse_id, quantity, date, document_id, related_party_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		txn.ID, txn.Type, txn.ProductID, txn.WarehouseID, txn.Quantity,
		txn.Date, txn.DocumentID, txn.RelatedPartyName, txn.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// Delete elimina una transacción por ID.
func (r *TransactionRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	return nil
}
