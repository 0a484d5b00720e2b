package entity

import "time"

// Roles válidos para User.
const (
	RoleJobseeker = "jobseeker"
	RoleEmployer  = "employer"
)

// ValidRole indica si el rol es uno de los soportados.
func ValidRole(role string) bool {
	return role == RoleJobseeker || role == RoleEmployer
}

// User representa una cuenta del job board. Inmutable después del registro
// en este alcance; si Role es employer puede poseer ofertas.
type User struct {
	ID           string
	Fullname     string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // jobseeker | employer
	CreatedAt    time.Time
}
