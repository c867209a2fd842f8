package entity

import "time"

// Warehouse representa una bodega física.
// El committer la crea automáticamente cuando un documento referencia un nombre desconocido.
type Warehouse struct {
	ID        string
	Name      string
	Location  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
