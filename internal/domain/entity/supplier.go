package entity

import "time"

// Supplier representa un proveedor. Se crea automáticamente en la primera
// entrada (INBOUND) que referencia un nombre desconocido.
type Supplier struct {
	ID        string
	Name      string
	Contact   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
