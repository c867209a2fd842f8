package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin            = "admin"
	RoleInventoryManager = "inventory_manager"
	RoleStaff            = "staff"
)

// User representa un operador del sistema.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
