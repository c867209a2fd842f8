package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
// Code es el identificador externo preferido (debería ser único, no se fuerza);
// CostPrice es el último costo unitario conocido. El stock vive en InventoryLot.
type Product struct {
	ID        string
	Code      string
	Name      string
	Category  string
	Unit      string
	CostPrice decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}
