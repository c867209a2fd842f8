package entity

import "time"

// InventoryLot es la unidad de existencias: un lote discreto de un producto en una bodega.
// Los lotes nunca se fusionan: una entrada crea un lote nuevo y una salida los drena (FEFO).
// Quantity nunca es negativa; un lote que llega a 0 tras asignar se elimina al persistir.
// ExpiryDate nil significa "no vence" y ordena después de todo lote con fecha.
type InventoryLot struct {
	ID          string
	ProductID   string
	WarehouseID string
	Quantity    int64
	LotNumber   string
	ExpiryDate  *time.Time
	CreatedAt   time.Time
}

// Clone devuelve una copia profunda del lote (la copia de trabajo del committer
// no debe compartir punteros con el estado persistido).
func (l *InventoryLot) Clone() *InventoryLot {
	c := *l
	if l.ExpiryDate != nil {
		exp := *l.ExpiryDate
		c.ExpiryDate = &exp
	}
	return &c
}
