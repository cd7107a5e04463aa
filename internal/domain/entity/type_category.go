package entity

// TypeCategory tercer nivel de la jerarquía, con referencia débil a Category.
type TypeCategory struct {
	ID          string
	CategoryID  *string
	NameEN      *string
	NameCN      *string
	Description *string
	Code        *string
	Audit
}
