package entity

// Category segundo nivel de la jerarquía. La referencia a MasterCategory es débil
// (master_category_id nullable) y MasterCategoryNameEN es una copia denormalizada
// que se escribe al crear/actualizar, no un join en vivo.
type Category struct {
	ID                   string
	MasterCategoryID     *string
	MasterCategoryNameEN *string
	NameEN               *string
	NameCN               *string
	Description          *string
	Code                 *string
	Audit
}
