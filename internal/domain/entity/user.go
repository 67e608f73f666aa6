package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin      = "admin"
	RoleBrandOwner = "brand_owner"
)

// User representa un usuario del panel administrativo.
// Los brand_owner están atados a una marca (BrandID); los admin no.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, brand_owner
	BrandID      string // vacío para admin
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
