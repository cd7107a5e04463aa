package entity

// Roles de usuario.
const (
	RoleAdmin    = "admin"
	RoleOperator = "operator"
)

// User usuario de la aplicación; su ID es el actor estampado en los campos de auditoría.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         string
	Audit
}
