package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hanquocpodcastne-create/PHAVI/internal/domain"
	"github.com/hanquocpodcastne-create/PHAVI/internal/domain/entity"
	"github.com/hanquocpodcastne-create/PHAVI/internal/domain/repository"
)

var _ repository.InventoryLotRepository = (*InventoryLotRepo)(nil)

// InventoryLotRepo implementación del puerto InventoryLotRepository sobre PostgreSQL.
// La colección solo guarda lotes con cantidad positiva: los drenados se borran al
// confirmar el documento que los vació.
type InventoryLotRepo struct {
	db querier
}

// NewInventoryLotRepository construye el adaptador de persistencia para lotes.
func NewInventoryLotRepository(db querier) *InventoryLotRepo {
	return &InventoryLotRepo{db: db}
}

const lotColumns = `id, product_id, warehouse_id, quantity, lot_number, expiry_date, created_at`

func scanLot(row pgx.Row) (*entity.InventoryLot, error) {
	var l entity.InventoryLot
	err := row.Scan(&l.ID, &l.ProductID, &l.WarehouseID, &l.Quantity, &l.LotNumber, &l.ExpiryDate, &l.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// List devuelve todos los lotes en orden de alta.
func (r *InventoryLotRepo) List(ctx context.Context) ([]*entity.InventoryLot, error) {
	return r.queryLots(ctx, `SELECT `+lotColumns+` FROM inventory_lots ORDER BY created_at, id`)
}

// ListByWarehouse devuelve los lotes de una bodega en orden de alta.
func (r *InventoryLotRepo) ListByWarehouse(ctx context.Context, warehouseID string) ([]*entity.InventoryLot, error) {
	return r.queryLots(ctx, `SELECT `+lotColumns+` FROM inventory_lots WHERE warehouse_id = $1 ORDER BY created_at, id`, warehouseID)
}

func (r *InventoryLotRepo) queryLots(ctx context.Context, sql string, args ...any) ([]*entity.InventoryLot, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list lots: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryLot
	for rows.Next() {
		l, err := scanLot(rows)
		if err != nil {
			return nil, fmt.Errorf("scan lot: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

// GetByID obtiene un lote por ID. Devuelve (nil, nil) si no existe.
func (r *InventoryLotRepo) GetByID(ctx context.Context, id string) (*entity.InventoryLot, error) {
	l, err := scanLot(r.db.QueryRow(ctx, `SELECT `+lotColumns+` FROM inventory_lots WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lot: %w", err)
	}
	return l, nil
}

// ExistsByProduct indica si el producto tiene algún lote (se usa para vetar su borrado).
func (r *InventoryLotRepo) ExistsByProduct(ctx context.Context, productID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM inventory_lots WHERE product_id = $1)`, productID).
		Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists lot by product: %w", err)
	}
	return exists, nil
}

// Create persiste un lote nuevo.
func (r *InventoryLotRepo) Create(ctx context.Context, lot *entity.InventoryLot) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO inventory_lots (id, product_id, warehouse_id, quantity, lot_number, expiry_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		lot.ID, lot.ProductID, lot.WarehouseID, lot.Quantity, lot.LotNumber, lot.ExpiryDate, lot.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert lot: %w", err)
	}
	return nil
}

// Update actualiza un lote existente.
func (r *InventoryLotRepo) Update(ctx context.Context, lot *entity.InventoryLot) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE inventory_lots SET quantity = $2, lot_number = $3, expiry_date = $4
		WHERE id = $1`,
		lot.ID, lot.Quantity, lot.LotNumber, lot.ExpiryDate,
	)
	if err != nil {
		return fmt.Errorf("update lot: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un lote por ID.
func (r *InventoryLotRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM inventory_lots WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete lot: %w", err)
	}
	return nil
}
