package entity

import "time"

// Roles válidos para User. El rol se asigna al registrarse y no cambia después.
const (
	RoleBuyer  = "buyer"
	RoleSeller = "seller"
)

// User representa una cuenta del marketplace. PasswordHash nunca viaja al cliente.
type User struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string // único en la colección
	PasswordHash string // bcrypt hash, nunca plano después de persistir
	Role         string // buyer | seller
	Gender       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsValidRole indica si el rol pertenece al conjunto cerrado buyer/seller.
func IsValidRole(role string) bool {
	return role == RoleBuyer || role == RoleSeller
}
