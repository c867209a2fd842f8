package entity

import "time"

// Tipos de transacción del libro de inventario.
const (
	TransactionTypeINBOUND  = "INBOUND"  // entrada
	TransactionTypeOUTBOUND = "OUTBOUND" // salida
)

// Transaction es un asiento del historial, inmutable una vez creado (solo se permite
// borrarlo como corrección manual, y el borrado NO revierte los lotes afectados).
// Quantity es la cantidad solicitada del renglón, siempre positiva, sin importar
// cuántos lotes se tocaron para satisfacerla.
type Transaction struct {
	ID               string
	Type             string
	ProductID        string
	WarehouseID      string
	Quantity         int64
	Date             time.Time
	DocumentID       string
	RelatedPartyName string // proveedor en INBOUND, cliente en OUTBOUND
	CreatedAt        time.Time
}
