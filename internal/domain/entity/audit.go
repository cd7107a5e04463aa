package entity

import "time"

// Audit campos de auditoría y borrado lógico comunes a todas las tablas.
// Una fila viva cumple IsDelete == false y DeletedAt == nil; ambos campos
// se actualizan siempre juntos.
type Audit struct {
	CreatedAt time.Time
	CreatedBy *string
	UpdatedAt time.Time
	UpdatedBy *string
	DeletedAt *time.Time
	DeletedBy *string
	IsDelete  bool
}
