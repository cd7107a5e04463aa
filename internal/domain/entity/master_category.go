package entity

// MasterCategory raíz de la jerarquía de clasificación.
type MasterCategory struct {
	ID          string
	NameEN      *string
	NameCN      *string
	Description *string
	Audit
}
